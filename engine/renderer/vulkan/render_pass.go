package vulkan

import vk "github.com/goki/vulkan"

// RenderPass is a single subpass, single color attachment render pass that clears and presents.
type RenderPass struct {
	device *Device
	Handle vk.RenderPass
	Format vk.Format
}

// NewRenderPass creates the presentation render pass for a color format.
//
// Parameters:
//   - device: the logical device
//   - format: the swapchain image format
//
// Returns:
//   - *RenderPass: the render pass
//   - error: error if creation fails
func NewRenderPass(device *Device, format vk.Format) (*RenderPass, error) {
	colorAttachment := vk.AttachmentDescription{
		Format:         format,
		Samples:        vk.SampleCount1Bit,
		LoadOp:         vk.AttachmentLoadOpClear,
		StoreOp:        vk.AttachmentStoreOpStore,
		StencilLoadOp:  vk.AttachmentLoadOpDontCare,
		StencilStoreOp: vk.AttachmentStoreOpDontCare,
		InitialLayout:  vk.ImageLayoutUndefined,
		FinalLayout:    vk.ImageLayoutPresentSrc,
	}
	subpass := vk.SubpassDescription{
		PipelineBindPoint:    vk.PipelineBindPointGraphics,
		ColorAttachmentCount: 1,
		PColorAttachments: []vk.AttachmentReference{{
			Attachment: 0,
			Layout:     vk.ImageLayoutColorAttachmentOptimal,
		}},
	}
	dependency := vk.SubpassDependency{
		SrcSubpass:      vk.SubpassExternal,
		DstSubpass:      0,
		SrcStageMask:    vk.PipelineStageFlags(vk.PipelineStageColorAttachmentOutputBit),
		DstStageMask:    vk.PipelineStageFlags(vk.PipelineStageColorAttachmentOutputBit),
		DstAccessMask:   vk.AccessFlags(vk.AccessColorAttachmentReadBit | vk.AccessColorAttachmentWriteBit),
		DependencyFlags: vk.DependencyFlags(vk.DependencyByRegionBit),
	}

	createInfo := vk.RenderPassCreateInfo{
		SType:           vk.StructureTypeRenderPassCreateInfo,
		AttachmentCount: 1,
		PAttachments:    []vk.AttachmentDescription{colorAttachment},
		SubpassCount:    1,
		PSubpasses:      []vk.SubpassDescription{subpass},
		DependencyCount: 1,
		PDependencies:   []vk.SubpassDependency{dependency},
	}

	var handle vk.RenderPass
	if res := vk.CreateRenderPass(device.Handle, &createInfo, nil, &handle); res != vk.Success {
		return nil, resultError("vkCreateRenderPass", res)
	}
	return &RenderPass{device: device.Retain(), Handle: handle, Format: format}, nil
}

// Destroy destroys the render pass and releases the device.
func (r *RenderPass) Destroy() {
	if r.device == nil {
		return
	}
	vk.DestroyRenderPass(r.device.Handle, r.Handle, nil)
	r.device.Release()
	r.device = nil
}
