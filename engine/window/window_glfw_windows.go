//go:build windows

package window

import "unsafe"

func platformNativeHandle(w *engineWindow) uintptr {
	if w.internalWindow == nil {
		return 0
	}
	return uintptr(unsafe.Pointer(w.internalWindow.(*glfwWindow).window.GetWin32Window()))
}
