//go:build !windows

package window

func platformNativeHandle(w *engineWindow) uintptr {
	return 0
}
