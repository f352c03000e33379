package renderer

// RendererBuilderOption is a functional option applied to the renderer configuration during NewRenderer.
type RendererBuilderOption func(*rendererConfig)

// WithMinVersion sets the lowest API version the renderer may fall back to.
// Only OpenGL and OpenGL ES negotiate versions.
//
// Parameters:
//   - v: the minimum version
//
// Returns:
//   - RendererBuilderOption: a function that applies the minimum version
func WithMinVersion(v Version) RendererBuilderOption {
	return func(c *rendererConfig) {
		c.minVersion = v
	}
}

// WithMaxVersion sets the API version the renderer tries first.
//
// Parameters:
//   - v: the maximum version
//
// Returns:
//   - RendererBuilderOption: a function that applies the maximum version
func WithMaxVersion(v Version) RendererBuilderOption {
	return func(c *rendererConfig) {
		c.maxVersion = v
	}
}

// WithDeviceType sets the preferred class of GPU for backends that choose between adapters.
//
// Parameters:
//   - t: the preferred device type
//
// Returns:
//   - RendererBuilderOption: a function that applies the device type
func WithDeviceType(t DeviceType) RendererBuilderOption {
	return func(c *rendererConfig) {
		c.deviceType = t
	}
}

// WithValidation enables API validation layers (Vulkan) or the debug layer (DirectX12) when available.
//
// Parameters:
//   - enabled: true to request validation
//
// Returns:
//   - RendererBuilderOption: a function that applies the validation option
func WithValidation(enabled bool) RendererBuilderOption {
	return func(c *rendererConfig) {
		c.validation = enabled
	}
}

// WithPresentMode sets how frames are delivered to the display.
//
// Parameters:
//   - mode: the PresentMode to use (VSync or Uncapped)
//
// Returns:
//   - RendererBuilderOption: a function that applies the present mode
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(c *rendererConfig) {
		c.presentMode = mode
	}
}
