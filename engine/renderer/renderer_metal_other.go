//go:build !darwin

package renderer

import "fmt"

type metalWindow interface{}

func newMetalRenderer(w metalWindow, cfg rendererConfig) (Renderer, error) {
	return nil, fmt.Errorf("Metal requires darwin: %w", ErrUnsupportedAPI)
}
