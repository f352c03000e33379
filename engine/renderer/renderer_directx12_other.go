//go:build !windows

package renderer

import "fmt"

type directXWindow interface{}

func newDirectX12Renderer(w directXWindow, cfg rendererConfig) (*directXRenderer, error) {
	return nil, fmt.Errorf("DirectX12 requires windows: %w", ErrUnsupportedAPI)
}
