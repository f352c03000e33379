package engine

import (
	"time"

	"github.com/Carmen-Shannon/oxy-rad/engine/renderer"
	"github.com/Carmen-Shannon/oxy-rad/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithTickRate sets the engine tick rate in frames per second.
// The tick callback will be called at this rate for logic updates.
// Values <= 0 will be treated as the default (60Hz).
//
// Parameters:
//   - fps: target ticks per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			fps = 60.0
		}
		e.engineTickRate = time.Duration(float64(time.Second) / fps)
	}
}

// WithWindow sets a custom configured window for the engine to use rather than allowing the engine
// to create one with default options when Run starts.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithRendererFactory sets the function that builds the session renderer. The default creates an
// OpenGL renderer with default options.
//
// Parameters:
//   - factory: called once on the render thread when Run starts
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRendererFactory(factory RendererFactory) EngineBuilderOption {
	return func(e *engine) {
		if factory != nil {
			e.rendererFactory = factory
		}
	}
}

// WithRenderer is shorthand for a factory that calls renderer.NewRenderer with the given type and options.
//
// Parameters:
//   - rendererType: the graphics API to use
//   - options: renderer options forwarded to renderer.NewRenderer
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderer(rendererType renderer.RendererType, options ...renderer.RendererBuilderOption) EngineBuilderOption {
	return WithRendererFactory(func(w window.Window) (renderer.Renderer, error) {
		return renderer.NewRenderer(rendererType, w, options...)
	})
}

// WithCommandQueueSize sets the capacity of the render command queue used by Submit.
// Values <= 0 keep the default (64).
//
// Parameters:
//   - size: maximum number of pending commands
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCommandQueueSize(size int) EngineBuilderOption {
	return func(e *engine) {
		if size > 0 {
			e.commandQueueSize = size
		}
	}
}

// WithFrameClear sets which buffers BeginFrame clears each frame (default renderer.ClearAll).
//
// Parameters:
//   - clear: the buffers to clear
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithFrameClear(clear renderer.ClearType) EngineBuilderOption {
	return func(e *engine) {
		e.frameClear = clear
	}
}

// WithRenderFrameLimit sets an optional render frame rate cap in frames per second.
// Pass 0 to uncap the render loop (default).
//
// Parameters:
//   - fps: maximum render frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			e.renderFrameLimit = 0
			return
		}
		e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
	}
}
