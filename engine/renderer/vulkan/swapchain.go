package vulkan

import (
	"fmt"

	vk "github.com/goki/vulkan"
)

// ChooseSurfaceFormat prefers B8G8R8A8_SRGB with an sRGB non-linear color space and otherwise
// returns the first format. Formats must already be dereferenced.
//
// Parameters:
//   - formats: the formats the surface supports
//
// Returns:
//   - vk.SurfaceFormat: the chosen format
//   - error: error if formats is empty
func ChooseSurfaceFormat(formats []vk.SurfaceFormat) (vk.SurfaceFormat, error) {
	if len(formats) == 0 {
		return vk.SurfaceFormat{}, fmt.Errorf("surface has no pixel formats")
	}
	for _, f := range formats {
		if f.Format == vk.FormatB8g8r8a8Srgb && f.ColorSpace == vk.ColorSpaceSrgbNonlinear {
			return f, nil
		}
	}
	return formats[0], nil
}

// ChoosePresentMode prefers MAILBOX and falls back to FIFO, which every device supports. When
// vsync is off IMMEDIATE is preferred over both.
//
// Parameters:
//   - modes: the present modes the surface supports
//   - vsync: false to prefer tearing immediate presentation
//
// Returns:
//   - vk.PresentMode: the chosen mode
func ChoosePresentMode(modes []vk.PresentMode, vsync bool) vk.PresentMode {
	has := func(want vk.PresentMode) bool {
		for _, m := range modes {
			if m == want {
				return true
			}
		}
		return false
	}
	if !vsync && has(vk.PresentModeImmediate) {
		return vk.PresentModeImmediate
	}
	if has(vk.PresentModeMailbox) {
		return vk.PresentModeMailbox
	}
	return vk.PresentModeFifo
}

// ChooseImageCount requests one image more than the minimum, clamped to the maximum when the
// surface has one (a maximum of 0 means unbounded).
func ChooseImageCount(minCount, maxCount uint32) uint32 {
	count := minCount + 1
	if maxCount > 0 && count > maxCount {
		count = maxCount
	}
	return count
}

// ChooseExtent returns the surface's current extent, or the window size clamped to the surface
// limits when the current extent is the 0xFFFFFFFF "any size" marker.
//
// Parameters:
//   - current: the surface's current extent
//   - minExtent: the smallest supported extent
//   - maxExtent: the largest supported extent
//   - width: the window width in pixels
//   - height: the window height in pixels
//
// Returns:
//   - vk.Extent2D: the swapchain extent
func ChooseExtent(current, minExtent, maxExtent vk.Extent2D, width, height uint32) vk.Extent2D {
	if current.Width != vk.MaxUint32 {
		return current
	}
	return vk.Extent2D{
		Width:  clampUint32(width, minExtent.Width, maxExtent.Width),
		Height: clampUint32(height, minExtent.Height, maxExtent.Height),
	}
}

func clampUint32(v, lo, hi uint32) uint32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SurfaceFormats returns the dereferenced formats a device supports for a surface.
func SurfaceFormats(physical *PhysicalDevice, surface *Surface) []vk.SurfaceFormat {
	var count uint32
	vk.GetPhysicalDeviceSurfaceFormats(physical.Handle, surface.Handle, &count, nil)
	formats := make([]vk.SurfaceFormat, count)
	vk.GetPhysicalDeviceSurfaceFormats(physical.Handle, surface.Handle, &count, formats)
	for i := range formats {
		formats[i].Deref()
	}
	return formats
}

func surfacePresentModes(physical *PhysicalDevice, surface *Surface) []vk.PresentMode {
	var count uint32
	vk.GetPhysicalDeviceSurfacePresentModes(physical.Handle, surface.Handle, &count, nil)
	modes := make([]vk.PresentMode, count)
	vk.GetPhysicalDeviceSurfacePresentModes(physical.Handle, surface.Handle, &count, modes)
	return modes
}

// SwapchainConfig describes a swapchain to build.
type SwapchainConfig struct {
	Surface    *Surface
	RenderPass *RenderPass
	Format     vk.SurfaceFormat
	Width      uint32
	Height     uint32
	VSync      bool
}

// Swapchain owns the native swapchain and one image view and framebuffer per image. A swapchain
// with a zero extent is empty: it owns nothing and cannot be rendered to.
type Swapchain struct {
	device       *Device
	Handle       vk.Swapchain
	Format       vk.Format
	Extent       vk.Extent2D
	Images       []vk.Image
	Views        []vk.ImageView
	Framebuffers []vk.Framebuffer
}

// NewSwapchain creates a swapchain and its per-image views and framebuffers. Images are usable as
// color attachments and as transfer sources for read-back.
//
// Parameters:
//   - device: the logical device
//   - cfg: the surface, render pass, format, window size and vsync preference
//
// Returns:
//   - *Swapchain: the swapchain, empty if the surface has zero area
//   - error: error if any native object cannot be created
func NewSwapchain(device *Device, cfg SwapchainConfig) (*Swapchain, error) {
	var caps vk.SurfaceCapabilities
	if res := vk.GetPhysicalDeviceSurfaceCapabilities(device.Physical.Handle, cfg.Surface.Handle, &caps); res != vk.Success {
		return nil, resultError("vkGetPhysicalDeviceSurfaceCapabilities", res)
	}
	caps.Deref()
	caps.CurrentExtent.Deref()
	caps.MinImageExtent.Deref()
	caps.MaxImageExtent.Deref()

	s := &Swapchain{device: device.Retain(), Format: cfg.Format.Format}
	s.Extent = ChooseExtent(caps.CurrentExtent, caps.MinImageExtent, caps.MaxImageExtent, cfg.Width, cfg.Height)
	if s.Extent.Width == 0 || s.Extent.Height == 0 {
		return s, nil
	}

	preTransform := vk.SurfaceTransformIdentityBit
	if vk.SurfaceTransformFlagBits(caps.SupportedTransforms)&preTransform == 0 {
		preTransform = caps.CurrentTransform
	}

	createInfo := vk.SwapchainCreateInfo{
		SType:            vk.StructureTypeSwapchainCreateInfo,
		Surface:          cfg.Surface.Handle,
		MinImageCount:    ChooseImageCount(caps.MinImageCount, caps.MaxImageCount),
		ImageFormat:      cfg.Format.Format,
		ImageColorSpace:  cfg.Format.ColorSpace,
		ImageExtent:      s.Extent,
		ImageArrayLayers: 1,
		ImageUsage:       vk.ImageUsageFlags(vk.ImageUsageColorAttachmentBit | vk.ImageUsageTransferSrcBit),
		ImageSharingMode: vk.SharingModeExclusive,
		PreTransform:     preTransform,
		CompositeAlpha:   vk.CompositeAlphaOpaqueBit,
		PresentMode:      ChoosePresentMode(surfacePresentModes(device.Physical, cfg.Surface), cfg.VSync),
		Clipped:          vk.True,
		OldSwapchain:     vk.NullSwapchain,
	}
	if res := vk.CreateSwapchain(device.Handle, &createInfo, nil, &s.Handle); res != vk.Success {
		s.Destroy()
		return nil, resultError("vkCreateSwapchain", res)
	}

	var count uint32
	vk.GetSwapchainImages(device.Handle, s.Handle, &count, nil)
	s.Images = make([]vk.Image, count)
	vk.GetSwapchainImages(device.Handle, s.Handle, &count, s.Images)

	for _, image := range s.Images {
		view, err := s.createView(image)
		if err != nil {
			s.Destroy()
			return nil, err
		}
		s.Views = append(s.Views, view)

		fb, err := s.createFramebuffer(cfg.RenderPass, view)
		if err != nil {
			s.Destroy()
			return nil, err
		}
		s.Framebuffers = append(s.Framebuffers, fb)
	}
	return s, nil
}

func (s *Swapchain) createView(image vk.Image) (vk.ImageView, error) {
	createInfo := vk.ImageViewCreateInfo{
		SType:    vk.StructureTypeImageViewCreateInfo,
		Image:    image,
		ViewType: vk.ImageViewType2d,
		Format:   s.Format,
		SubresourceRange: vk.ImageSubresourceRange{
			AspectMask: vk.ImageAspectFlags(vk.ImageAspectColorBit),
			LevelCount: 1,
			LayerCount: 1,
		},
	}
	var view vk.ImageView
	if res := vk.CreateImageView(s.device.Handle, &createInfo, nil, &view); res != vk.Success {
		return vk.NullImageView, resultError("vkCreateImageView", res)
	}
	return view, nil
}

func (s *Swapchain) createFramebuffer(renderPass *RenderPass, view vk.ImageView) (vk.Framebuffer, error) {
	createInfo := vk.FramebufferCreateInfo{
		SType:           vk.StructureTypeFramebufferCreateInfo,
		RenderPass:      renderPass.Handle,
		AttachmentCount: 1,
		PAttachments:    []vk.ImageView{view},
		Width:           s.Extent.Width,
		Height:          s.Extent.Height,
		Layers:          1,
	}
	var fb vk.Framebuffer
	if res := vk.CreateFramebuffer(s.device.Handle, &createInfo, nil, &fb); res != vk.Success {
		return vk.NullFramebuffer, resultError("vkCreateFramebuffer", res)
	}
	return fb, nil
}

// Empty reports whether the swapchain has no images.
func (s *Swapchain) Empty() bool {
	return len(s.Framebuffers) == 0
}

// Destroy destroys framebuffers, image views and the swapchain, in that order, then releases the device.
// The caller must ensure the device is idle.
func (s *Swapchain) Destroy() {
	if s.device == nil {
		return
	}
	for _, fb := range s.Framebuffers {
		vk.DestroyFramebuffer(s.device.Handle, fb, nil)
	}
	for _, view := range s.Views {
		vk.DestroyImageView(s.device.Handle, view, nil)
	}
	if s.Handle != vk.NullSwapchain {
		vk.DestroySwapchain(s.device.Handle, s.Handle, nil)
	}
	s.Framebuffers, s.Views, s.Images = nil, nil, nil
	s.Handle = vk.NullSwapchain
	s.device.Release()
	s.device = nil
}
