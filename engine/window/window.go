package window

import (
	"runtime"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
)

// Window is a native window that renderers present into. It owns the message loop and the
// graphics hooks each backend needs: an OpenGL context, a Vulkan surface, a WebGPU surface
// descriptor or a raw OS handle.
type Window interface {
	// ProcessMessages runs the message loop on the calling goroutine, invoking the update callback
	// once per iteration. Returns when the window closes or RequestClose is called.
	ProcessMessages()

	// RequestClose asks the message loop to stop after the current iteration. The native window and
	// everything created from it stay valid until Close.
	RequestClose()

	// IsRunning reports whether the message loop would keep iterating.
	//
	// Returns:
	//   - bool: false once the user closed the window, RequestClose was called, or Close ran
	IsRunning() bool

	// Close destroys the native window and releases the windowing library. Surfaces, contexts and
	// loader entry points obtained from the window are invalid afterwards.
	//
	// Returns:
	//   - error: error if the window was never created or is already closed
	Close() error

	// Width returns the framebuffer width in pixels.
	Width() int

	// Height returns the framebuffer height in pixels.
	Height() int

	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the framebuffer size changes.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	SetScrollCallback(callback func(delta float32))
	SetKeyDownCallback(callback func(keyCode uint32))
	SetKeyUpCallback(callback func(keyCode uint32))
	SetMiddleMouseDownCallback(callback func(x, y int32))
	SetMiddleMouseUpCallback(callback func(x, y int32))
	SetMouseMoveCallback(callback func(x, y int32))

	// CreateContext gives the window an OpenGL or OpenGL ES context of the requested version and
	// makes it current on the calling thread. Desktop contexts of version 3.2 and above are core
	// profile and forward compatible. On failure the previous window and context stay in place, so
	// callers may retry with a lower version.
	//
	// Parameters:
	//   - major: the context major version
	//   - minor: the context minor version
	//   - es: true for an OpenGL ES context
	//
	// Returns:
	//   - error: error if the platform cannot create a context of that version
	CreateContext(major, minor int, es bool) error

	// SwapBuffers presents the back buffer of the current OpenGL context.
	SwapBuffers()

	// SetSwapInterval sets the number of vertical blanks to wait before swapping buffers.
	//
	// Parameters:
	//   - interval: 0 for immediate swaps, 1 to sync to vertical blank
	SetSwapInterval(interval int)

	// GetProcAddress looks up an OpenGL function in the current context.
	//
	// Parameters:
	//   - name: the function name, e.g. "glClear"
	//
	// Returns:
	//   - unsafe.Pointer: the function address, or nil if it is unavailable
	GetProcAddress(name string) unsafe.Pointer

	// VulkanProcAddr returns the vkGetInstanceProcAddr loader entry point. It is valid until Close.
	//
	// Returns:
	//   - unsafe.Pointer: the loader entry point, or nil if Vulkan is unavailable
	VulkanProcAddr() unsafe.Pointer

	// VulkanInstanceExtensions returns the instance extensions required to present to this window.
	VulkanInstanceExtensions() []string

	// CreateVulkanSurface creates a VkSurfaceKHR for the window.
	//
	// Parameters:
	//   - instance: the vk.Instance to create the surface with
	//
	// Returns:
	//   - uintptr: pointer to the created surface handle, for vk.SurfaceFromPointer
	//   - error: error if the surface cannot be created
	CreateVulkanSurface(instance any) (uintptr, error)

	// SurfaceDescriptor returns a platform-appropriate wgpu.SurfaceDescriptor for the window, or
	// nil if the window is not open.
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// NativeHandle returns the OS window handle (HWND on Windows, 0 elsewhere).
	NativeHandle() uintptr
}

// sizeLimits bounds the framebuffer size. A zero bound is unconstrained.
type sizeLimits struct {
	minWidth, minHeight int
	maxWidth, maxHeight int
}

// clamp fits a requested size into the limits.
func (l sizeLimits) clamp(width, height int) (int, int) {
	if l.minWidth > 0 && width < l.minWidth {
		width = l.minWidth
	}
	if l.maxWidth > 0 && width > l.maxWidth {
		width = l.maxWidth
	}
	if l.minHeight > 0 && height < l.minHeight {
		height = l.minHeight
	}
	if l.maxHeight > 0 && height > l.maxHeight {
		height = l.maxHeight
	}
	return width, height
}

// contextHints are applied every time the native window is (re)created.
type contextHints struct {
	resizable    bool
	visible      bool
	samples      int
	debugContext bool
}

// engineWindow implements Window on top of GLFW.
type engineWindow struct {
	title  string
	width  int
	height int
	limits sizeLimits
	hints  contextHints

	// internalWindow is the live *glfwWindow, or nil before creation and after Close.
	internalWindow any

	onUpdate          func()
	onResize          func(width, height int)
	onScroll          func(delta float32)
	onKeyDown         func(keyCode uint32)
	onKeyUp           func(keyCode uint32)
	onMiddleMouseDown func(x, y int32)
	onMiddleMouseUp   func(x, y int32)
	onMouseMove       func(x, y int32)
}

var _ Window = &engineWindow{}

// newEngineWindow applies options over the defaults without touching the platform.
func newEngineWindow(options ...WindowBuilderOption) *engineWindow {
	w := &engineWindow{
		title:  "oxy-rad",
		width:  1280,
		height: 720,
		hints: contextHints{
			resizable: true,
			visible:   true,
		},
	}
	for _, opt := range options {
		opt(w)
	}
	w.width, w.height = w.limits.clamp(w.width, w.height)
	return w
}

// NewWindow opens a window without a client API. OpenGL backends attach a context later with
// CreateContext. Must be called from the main goroutine.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the open window
//   - error: error if the windowing library or the window cannot be initialized
func NewWindow(options ...WindowBuilderOption) (Window, error) {
	w := newEngineWindow(options...)
	if err := newPlatformWindow(w); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() && platformProcessMessages(w) {
		if w.onUpdate != nil {
			w.onUpdate()
		}
		runtime.Gosched()
	}
}

func (w *engineWindow) RequestClose()   { platformRequestClose(w) }
func (w *engineWindow) IsRunning() bool { return platformIsRunningCheck(w) }
func (w *engineWindow) Close() error    { return platformCloseWindow(w) }
func (w *engineWindow) Width() int      { return w.width }
func (w *engineWindow) Height() int     { return w.height }

func (w *engineWindow) SetUpdateCallback(callback func())                    { w.onUpdate = callback }
func (w *engineWindow) SetResizeCallback(callback func(width, height int))   { w.onResize = callback }
func (w *engineWindow) SetScrollCallback(callback func(delta float32))       { w.onScroll = callback }
func (w *engineWindow) SetKeyDownCallback(callback func(keyCode uint32))     { w.onKeyDown = callback }
func (w *engineWindow) SetKeyUpCallback(callback func(keyCode uint32))       { w.onKeyUp = callback }
func (w *engineWindow) SetMiddleMouseDownCallback(callback func(x, y int32)) { w.onMiddleMouseDown = callback }
func (w *engineWindow) SetMiddleMouseUpCallback(callback func(x, y int32))   { w.onMiddleMouseUp = callback }
func (w *engineWindow) SetMouseMoveCallback(callback func(x, y int32))       { w.onMouseMove = callback }

func (w *engineWindow) CreateContext(major, minor int, es bool) error {
	return platformCreateContext(w, major, minor, es)
}

func (w *engineWindow) SwapBuffers()                   { platformSwapBuffers(w) }
func (w *engineWindow) SetSwapInterval(interval int)   { platformSetSwapInterval(interval) }
func (w *engineWindow) VulkanProcAddr() unsafe.Pointer { return platformVulkanProcAddr() }
func (w *engineWindow) NativeHandle() uintptr          { return platformNativeHandle(w) }

func (w *engineWindow) GetProcAddress(name string) unsafe.Pointer {
	return platformGetProcAddress(name)
}

func (w *engineWindow) VulkanInstanceExtensions() []string {
	return platformVulkanInstanceExtensions(w)
}

func (w *engineWindow) CreateVulkanSurface(instance any) (uintptr, error) {
	return platformCreateVulkanSurface(w, instance)
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

// replaceWindow creates a successor to current and releases current only once the successor
// exists. On failure current is returned unchanged and stays usable.
func replaceWindow[T any](current T, create func() (T, error), release func(T)) (T, error) {
	next, err := create()
	if err != nil {
		return current, err
	}
	release(current)
	return next, nil
}
