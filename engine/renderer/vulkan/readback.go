package vulkan

import (
	vk "github.com/goki/vulkan"
)

// IsBGRA reports whether format stores the blue channel first.
func IsBGRA(format vk.Format) bool {
	switch format {
	case vk.FormatB8g8r8a8Unorm, vk.FormatB8g8r8a8Srgb, vk.FormatB8g8r8a8Snorm:
		return true
	}
	return false
}

func colorBarrier(image vk.Image, from, to vk.ImageLayout, srcAccess, dstAccess vk.AccessFlagBits) vk.ImageMemoryBarrier {
	return vk.ImageMemoryBarrier{
		SType:               vk.StructureTypeImageMemoryBarrier,
		SrcAccessMask:       vk.AccessFlags(srcAccess),
		DstAccessMask:       vk.AccessFlags(dstAccess),
		OldLayout:           from,
		NewLayout:           to,
		SrcQueueFamilyIndex: vk.QueueFamilyIgnored,
		DstQueueFamilyIndex: vk.QueueFamilyIgnored,
		Image:               image,
		SubresourceRange: vk.ImageSubresourceRange{
			AspectMask: vk.ImageAspectFlags(vk.ImageAspectColorBit),
			LevelCount: 1,
			LayerCount: 1,
		},
	}
}

// CopyPresentedImage copies a presented swapchain image into dst and blocks until the copy completes.
// The image is moved to a transfer layout for the copy and returned to the present layout after it.
//
// Parameters:
//   - pool: the command pool to record with
//   - image: a swapchain image in the present layout
//   - extent: the image size
//   - dst: a buffer of at least width*height*4 bytes
//
// Returns:
//   - error: error if recording or submission fails
func CopyPresentedImage(pool *CommandPool, image vk.Image, extent vk.Extent2D, dst *Buffer) error {
	device := pool.device
	buffers, err := pool.Allocate(1)
	if err != nil {
		return err
	}
	defer pool.Free(buffers)
	cmd := buffers[0]

	fence, err := NewFence(device, false)
	if err != nil {
		return err
	}
	defer fence.Destroy()

	beginInfo := vk.CommandBufferBeginInfo{
		SType: vk.StructureTypeCommandBufferBeginInfo,
		Flags: vk.CommandBufferUsageFlags(vk.CommandBufferUsageOneTimeSubmitBit),
	}
	if res := vk.BeginCommandBuffer(cmd, &beginInfo); res != vk.Success {
		return resultError("vkBeginCommandBuffer", res)
	}

	vk.CmdPipelineBarrier(cmd,
		vk.PipelineStageFlags(vk.PipelineStageTransferBit),
		vk.PipelineStageFlags(vk.PipelineStageTransferBit),
		0, 0, nil, 0, nil, 1, []vk.ImageMemoryBarrier{
			colorBarrier(image, vk.ImageLayoutPresentSrc, vk.ImageLayoutTransferSrcOptimal,
				vk.AccessMemoryReadBit, vk.AccessTransferReadBit),
		})

	region := vk.BufferImageCopy{
		ImageSubresource: vk.ImageSubresourceLayers{
			AspectMask: vk.ImageAspectFlags(vk.ImageAspectColorBit),
			LayerCount: 1,
		},
		ImageExtent: vk.Extent3D{Width: extent.Width, Height: extent.Height, Depth: 1},
	}
	vk.CmdCopyImageToBuffer(cmd, image, vk.ImageLayoutTransferSrcOptimal, dst.Handle, 1, []vk.BufferImageCopy{region})

	vk.CmdPipelineBarrier(cmd,
		vk.PipelineStageFlags(vk.PipelineStageTransferBit),
		vk.PipelineStageFlags(vk.PipelineStageBottomOfPipeBit),
		0, 0, nil, 0, nil, 1, []vk.ImageMemoryBarrier{
			colorBarrier(image, vk.ImageLayoutTransferSrcOptimal, vk.ImageLayoutPresentSrc,
				vk.AccessTransferReadBit, vk.AccessMemoryReadBit),
		})

	if res := vk.EndCommandBuffer(cmd); res != vk.Success {
		return resultError("vkEndCommandBuffer", res)
	}

	submit := vk.SubmitInfo{
		SType:              vk.StructureTypeSubmitInfo,
		CommandBufferCount: 1,
		PCommandBuffers:    buffers,
	}
	if res := vk.QueueSubmit(device.Queue, 1, []vk.SubmitInfo{submit}, fence.Handle); res != vk.Success {
		return resultError("vkQueueSubmit", res)
	}
	fence.Wait()
	return nil
}
