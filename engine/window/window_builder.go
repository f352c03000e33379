package window

// WindowBuilderOption configures a window before it is opened.
type WindowBuilderOption func(w *engineWindow)

// WithTitle sets the title bar text.
func WithTitle(title string) WindowBuilderOption {
	return func(w *engineWindow) {
		w.title = title
	}
}

// WithSize sets the initial size. Non-positive values keep the default.
//
// Parameters:
//   - width: initial width in pixels
//   - height: initial height in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithSize(width, height int) WindowBuilderOption {
	return func(w *engineWindow) {
		if width > 0 {
			w.width = width
		}
		if height > 0 {
			w.height = height
		}
	}
}

// WithSizeLimits bounds how far the user can resize the window. The initial size is clamped into
// the limits. Pass 0 for any bound that should stay open.
//
// Parameters:
//   - minWidth, minHeight: smallest allowed size in pixels
//   - maxWidth, maxHeight: largest allowed size in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithSizeLimits(minWidth, minHeight, maxWidth, maxHeight int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.limits = sizeLimits{
			minWidth:  minWidth,
			minHeight: minHeight,
			maxWidth:  maxWidth,
			maxHeight: maxHeight,
		}
	}
}

// WithResizable controls whether the user can resize the window. Defaults to true.
func WithResizable(resizable bool) WindowBuilderOption {
	return func(w *engineWindow) {
		w.hints.resizable = resizable
	}
}

// WithVisible controls whether the window is shown. Hidden windows still own a framebuffer and
// can be rendered to and read back.
func WithVisible(visible bool) WindowBuilderOption {
	return func(w *engineWindow) {
		w.hints.visible = visible
	}
}

// WithSamples requests a multisampled default framebuffer for OpenGL contexts.
//
// Parameters:
//   - samples: samples per pixel; 0 disables multisampling
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithSamples(samples int) WindowBuilderOption {
	return func(w *engineWindow) {
		if samples < 0 {
			samples = 0
		}
		w.hints.samples = samples
	}
}

// WithDebugContext requests OpenGL debug contexts from CreateContext.
func WithDebugContext(debug bool) WindowBuilderOption {
	return func(w *engineWindow) {
		w.hints.debugContext = debug
	}
}
