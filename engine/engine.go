package engine

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/oxy-rad/engine/profiler"
	"github.com/Carmen-Shannon/oxy-rad/engine/renderer"
	"github.com/Carmen-Shannon/oxy-rad/engine/window"
)

// RendererFactory builds the Renderer for a window. It is called on the render thread once the
// session starts.
type RendererFactory func(w window.Window) (renderer.Renderer, error)

// Command is a unit of work executed on the render thread with the session's Renderer.
type Command func(r renderer.Renderer)

// engine implements the Engine interface.
// Coordinates the logic goroutine with the render thread that owns the window.
type engine struct {
	tickRateChannel  chan time.Duration // Channel for dynamic tick rate updates
	commandQueue     chan Command
	commandQueueSize int

	running atomic.Bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window          window.Window
	renderer        renderer.Renderer
	rendererFactory RendererFactory

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate time.Duration
	tickCallback   func(deltaTime float32)
	renderCallback func(r renderer.Renderer, deltaTime float32)
	shutdown       func(r renderer.Renderer)

	frameClear       renderer.ClearType
	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
	lastRender       time.Time

	panicErr error
}

// Engine is the main entry point for a rendering session.
// It drives the logic tick loop, the render loop, and the window message loop.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Renderer returns the session renderer. It is nil until Run has created it and after Run returns.
	// Only use it from the render thread (render callback or a submitted Command).
	//
	// Returns:
	//   - renderer.Renderer: the active renderer, or nil
	Renderer() renderer.Renderer

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the engine tick rate in frames per second.
	// The tick callback will be called at this rate for logic updates.
	//
	// Parameters:
	//   - fps: target frames per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers the function called each engine tick on the logic goroutine.
	//
	// Parameters:
	//   - callback: function to call at the configured tick rate, receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetRenderCallback registers the function called each render frame on the render thread,
	// between BeginFrame and EndFrame.
	//
	// Parameters:
	//   - callback: function receiving the renderer and the delta time in seconds
	SetRenderCallback(callback func(r renderer.Renderer, deltaTime float32))

	// SetShutdownCallback registers the function called once on the render thread after the loops
	// have stopped and before the renderer is destroyed. Use it to release handles.
	//
	// Parameters:
	//   - callback: function receiving the renderer
	SetShutdownCallback(callback func(r renderer.Renderer))

	// SetRenderFrameLimit sets an optional render frame rate cap in frames per second.
	// Pass 0 to uncap the render loop (default).
	//
	// Parameters:
	//   - fps: maximum render frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// Submit queues a Command for the render thread. Queued commands run before the next frame begins.
	// Submit never blocks.
	//
	// Parameters:
	//   - cmd: the work to run with the renderer
	//
	// Returns:
	//   - error: ErrCommandQueueFull if the queue is at capacity, ErrStopped after Quit
	Submit(cmd Command) error

	// Run creates the renderer and runs the session on the calling goroutine, which must be the
	// OS-locked main goroutine. Blocks until the window closes, Quit is called, or ctx is done.
	// The renderer is destroyed and the window closed before Run returns.
	//
	// Parameters:
	//   - ctx: cancelling the context ends the session
	//
	// Returns:
	//   - error: renderer creation failure, or a recovered render thread panic
	Run(ctx context.Context) error

	// Quit signals all engine goroutines to stop and shuts down the session.
	// Safe to call multiple times and from any goroutine; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// Options are applied directly to the engine struct via the option-builder pattern.
//
// Parameters:
//   - options: functional options for engine configuration (profiling, tick rate, renderer factory, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel:  make(chan time.Duration, 1),
		quitChannel:      make(chan struct{}),
		profiler:         profiler.NewProfiler(),
		engineTickRate:   time.Second / 60,
		frameClear:       renderer.ClearAll,
		commandQueueSize: defaultCommandQueueSize,
		rendererFactory:  defaultRendererFactory,
	}

	for _, opt := range options {
		opt(e)
	}
	e.commandQueue = make(chan Command, e.commandQueueSize)

	return e
}

// defaultRendererFactory creates an OpenGL renderer with default options.
func defaultRendererFactory(w window.Window) (renderer.Renderer, error) {
	return renderer.NewRenderer(renderer.OpenGL, w)
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Renderer() renderer.Renderer {
	return e.renderer
}

func (e *engine) Run(ctx context.Context) error {
	if e.window == nil {
		w, err := window.NewWindow()
		if err != nil {
			return fmt.Errorf("create window: %w", err)
		}
		e.window = w
	}

	r, err := e.rendererFactory(e.window)
	if err != nil {
		_ = e.window.Close()
		return fmt.Errorf("create renderer: %w", err)
	}
	e.renderer = r
	log.Printf("[Engine] running %s", r.Name())

	e.window.SetResizeCallback(func(width, height int) {
		r.Resize(width, height)
	})
	e.window.SetUpdateCallback(e.renderFrame)

	e.running.Store(true)
	e.lastRender = time.Now()
	e.handle(ctx)
	e.window.ProcessMessages()

	// The window may have been closed by the user rather than by Quit.
	e.signalQuit()
	e.wg.Wait()

	// The renderer's surfaces and loader entry points belong to the window, so it closes last.
	if e.shutdown != nil {
		e.shutdown(r)
	}
	r.Destroy()
	e.renderer = nil
	if err := e.window.Close(); err != nil {
		log.Printf("[Engine] close window: %v", err)
	}
	log.Printf("[Engine] stopped")

	return e.panicErr
}

// Quit signals all engine goroutines to stop and shuts down the engine.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.running.Store(false)
		close(e.quitChannel)
	})
}

func (e *engine) Submit(cmd Command) error {
	select {
	case <-e.quitChannel:
		return ErrStopped
	default:
	}

	select {
	case e.commandQueue <- cmd:
		return nil
	default:
		return ErrCommandQueueFull
	}
}

// handle launches the logic and quit goroutines.
// Each goroutine is tracked by the engine's WaitGroup.
func (e *engine) handle(ctx context.Context) {
	e.wg.Add(2)
	go e.handleEngine()
	go e.handleQuit(ctx)
}

// handleEngine runs the fixed-rate engine tick loop in its own goroutine.
// Fires the tick callback at the configured tick rate and listens for dynamic rate changes
// via tickRateChannel. Exits when the quit channel is closed.
func (e *engine) handleEngine() {
	defer e.wg.Done()

	ticker := time.NewTicker(e.engineTickRate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now

			if e.tickCallback != nil {
				e.tickCallback(dt)
			}
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.engineTickRate = newRate
		}
	}
}

// renderFrame runs one frame on the render thread. It is the window's update callback, so it
// executes between message pumps. A quit request only stops the message loop; Run tears down.
// Panics are recovered and turned into a quit.
func (e *engine) renderFrame() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Engine] render thread recovered from panic: %v", r)
			e.panicErr = fmt.Errorf("render thread panic: %v", r)
			e.signalQuit()
		}
	}()

	select {
	case <-e.quitChannel:
		e.window.RequestClose()
		return
	default:
	}

	now := time.Now()
	dt := float32(now.Sub(e.lastRender).Seconds())
	e.lastRender = now

	e.drainCommands()

	e.renderer.BeginFrame(e.frameClear)
	if e.renderCallback != nil {
		e.renderCallback(e.renderer, dt)
	}
	e.renderer.EndFrame()

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick(time.Now())
	}

	// Frame rate limiting
	if e.renderFrameLimit > 0 {
		elapsed := time.Since(now)
		if remaining := e.renderFrameLimit - elapsed; remaining > 0 {
			time.Sleep(remaining)
		}
	}
}

// drainCommands runs the commands queued before this frame. Commands queued while draining wait
// for the next frame.
func (e *engine) drainCommands() {
	for n := len(e.commandQueue); n > 0; n-- {
		cmd := <-e.commandQueue
		cmd(e.renderer)
	}
}

// handleQuit blocks until the quit channel is closed or the context is done, then decrements the WaitGroup.
func (e *engine) handleQuit(ctx context.Context) {
	defer e.wg.Done()
	select {
	case <-ctx.Done():
		e.signalQuit()
	case <-e.quitChannel:
	}
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetTickRate sets the engine tick rate in frames per second.
// If the engine is running, the change takes effect immediately.
func (e *engine) SetTickRate(fps float64) {
	if fps <= 0 {
		fps = 60
	}
	newRate := time.Duration(float64(time.Second) / fps)

	if e.running.Load() {
		// Non-blocking send - if channel is full, replace the pending value
		select {
		case e.tickRateChannel <- newRate:
		default:
			select {
			case <-e.tickRateChannel:
			default:
			}
			e.tickRateChannel <- newRate
		}
	} else {
		e.engineTickRate = newRate
	}
}

// SetTickCallback registers the function called each engine tick.
func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

// SetRenderCallback registers the function called each render frame.
func (e *engine) SetRenderCallback(callback func(r renderer.Renderer, deltaTime float32)) {
	e.renderCallback = callback
}

func (e *engine) SetShutdownCallback(callback func(r renderer.Renderer)) {
	e.shutdown = callback
}

// SetRenderFrameLimit sets an optional render frame rate cap.
// Pass 0 to uncap the render loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		e.renderFrameLimit = 0
		return
	}
	e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
}
