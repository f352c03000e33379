package window

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// glfwWindow holds the GLFW-specific window state.
type glfwWindow struct {
	parent  *engineWindow
	window  *glfw.Window
	running bool
}

// newPlatformWindow initializes GLFW and opens a window without a client API.
//
// GLFW reference: https://www.glfw.org/docs/latest/window_guide.html
// go-gl/glfw: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw
func newPlatformWindow(w *engineWindow) error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	applyWindowHints(w)
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	gw, err := createGLFWWindow(w)
	if err != nil {
		glfw.Terminate()
		return err
	}
	w.internalWindow = gw
	return nil
}

// applyWindowHints resets GLFW's hints to the window's configuration.
func applyWindowHints(w *engineWindow) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, glfwBool(w.hints.resizable))
	glfw.WindowHint(glfw.Visible, glfwBool(w.hints.visible))
	glfw.WindowHint(glfw.Samples, w.hints.samples)
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

// glfwLimit maps an open bound to GLFW's DontCare.
func glfwLimit(v int) int {
	if v <= 0 {
		return glfw.DontCare
	}
	return v
}

// createGLFWWindow opens a GLFW window with the current hints and wires the input callbacks.
// The caller decides when it becomes the internal window.
func createGLFWWindow(w *engineWindow) (*glfwWindow, error) {
	win, err := glfw.CreateWindow(w.width, w.height, w.title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}
	win.SetSizeLimits(
		glfwLimit(w.limits.minWidth), glfwLimit(w.limits.minHeight),
		glfwLimit(w.limits.maxWidth), glfwLimit(w.limits.maxHeight),
	)

	gw := &glfwWindow{
		parent:  w,
		window:  win,
		running: true,
	}

	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		switch action {
		case glfw.Press, glfw.Repeat:
			if w.onKeyDown != nil {
				w.onKeyDown(uint32(key))
			}
		case glfw.Release:
			if w.onKeyUp != nil {
				w.onKeyUp(uint32(key))
			}
		}
	})

	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		if w.onScroll != nil {
			w.onScroll(float32(yoff))
		}
	})

	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if button != glfw.MouseButtonMiddle {
			return
		}
		xpos, ypos := win.GetCursorPos()
		switch action {
		case glfw.Press:
			if w.onMiddleMouseDown != nil {
				w.onMiddleMouseDown(int32(xpos), int32(ypos))
			}
		case glfw.Release:
			if w.onMiddleMouseUp != nil {
				w.onMiddleMouseUp(int32(xpos), int32(ypos))
			}
		}
	})

	win.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		if w.onMouseMove != nil {
			w.onMouseMove(int32(xpos), int32(ypos))
		}
	})

	// Framebuffer size, not window size: on high-DPI displays the two differ and
	// renderers need pixel dimensions.
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.width = width
		w.height = height
		if w.onResize != nil {
			w.onResize(width, height)
		}
	})

	w.width, w.height = win.GetFramebufferSize()
	return gw, nil
}

// platformCreateContext opens a window carrying an OpenGL or OpenGL ES context of the requested
// version, makes it current and only then destroys the previous window. If GLFW refuses the
// version the previous window is kept, so the version walk can try the next candidate.
//
// Reference: https://www.glfw.org/docs/latest/window_guide.html#window_hints_ctx
func platformCreateContext(w *engineWindow, major, minor int, es bool) error {
	if w.internalWindow == nil {
		return fmt.Errorf("window is not initialized")
	}
	current := w.internalWindow.(*glfwWindow)

	next, err := replaceWindow(current, func() (*glfwWindow, error) {
		applyWindowHints(w)
		if es {
			glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
		} else {
			glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
		}
		glfw.WindowHint(glfw.ContextVersionMajor, major)
		glfw.WindowHint(glfw.ContextVersionMinor, minor)
		glfw.WindowHint(glfw.OpenGLDebugContext, glfwBool(w.hints.debugContext))
		if !es && (major > 3 || (major == 3 && minor >= 2)) {
			glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
			glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
		}
		return createGLFWWindow(w)
	}, func(old *glfwWindow) {
		old.window.Destroy()
	})
	if err != nil {
		return fmt.Errorf("context %d.%d (es=%t): %w", major, minor, es, err)
	}

	w.internalWindow = next
	next.window.MakeContextCurrent()
	return nil
}

func platformSwapBuffers(w *engineWindow) {
	if w.internalWindow == nil {
		return
	}
	w.internalWindow.(*glfwWindow).window.SwapBuffers()
}

func platformSetSwapInterval(interval int) {
	glfw.SwapInterval(interval)
}

func platformGetProcAddress(name string) unsafe.Pointer {
	return glfw.GetProcAddress(name)
}

func platformVulkanProcAddr() unsafe.Pointer {
	if !glfw.VulkanSupported() {
		return nil
	}
	return glfw.GetVulkanGetInstanceProcAddress()
}

func platformVulkanInstanceExtensions(w *engineWindow) []string {
	if w.internalWindow == nil {
		return nil
	}
	return w.internalWindow.(*glfwWindow).window.GetRequiredInstanceExtensions()
}

// platformCreateVulkanSurface creates a window surface through GLFW. The returned pointer is
// converted to a vk.Surface by the caller with vk.SurfaceFromPointer.
func platformCreateVulkanSurface(w *engineWindow, instance any) (uintptr, error) {
	if w.internalWindow == nil {
		return 0, fmt.Errorf("window is not initialized")
	}
	return w.internalWindow.(*glfwWindow).window.CreateWindowSurface(instance, nil)
}

// platformGetSurfaceDescriptor creates a platform-appropriate wgpu.SurfaceDescriptor from the GLFW window.
// Uses the wgpuglfw bridge package which has per-platform implementations (Windows, X11, Wayland, macOS).
//
// Reference: https://pkg.go.dev/github.com/cogentcore/webgpu/wgpuglfw#GetSurfaceDescriptor
func platformGetSurfaceDescriptor(w *engineWindow) *wgpu.SurfaceDescriptor {
	if w.internalWindow == nil {
		return nil
	}
	gw := w.internalWindow.(*glfwWindow)
	return wgpuglfw.GetSurfaceDescriptor(gw.window)
}

// platformIsRunningCheck returns whether the GLFW window is still active.
// Returns false if the internal window is nil, the running flag is cleared, or GLFW reports ShouldClose.
func platformIsRunningCheck(w *engineWindow) bool {
	if w.internalWindow == nil {
		return false
	}
	gw := w.internalWindow.(*glfwWindow)
	return gw.running && !gw.window.ShouldClose()
}

// platformRequestClose flags the window so the message loop exits. Nothing is destroyed.
func platformRequestClose(w *engineWindow) {
	if w.internalWindow == nil {
		return
	}
	gw := w.internalWindow.(*glfwWindow)
	gw.running = false
	gw.window.SetShouldClose(true)
}

// platformCloseWindow destroys the GLFW window and terminates the GLFW library, which also unloads
// the Vulkan loader GLFW opened.
func platformCloseWindow(w *engineWindow) error {
	if w.internalWindow == nil {
		return fmt.Errorf("window is not initialized")
	}
	gw := w.internalWindow.(*glfwWindow)
	gw.running = false
	gw.window.Destroy()
	w.internalWindow = nil
	glfw.Terminate()
	return nil
}

// platformProcessMessages polls GLFW for pending events without blocking.
//
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#PollEvents
func platformProcessMessages(w *engineWindow) bool {
	glfw.PollEvents()
	return platformIsRunningCheck(w)
}
