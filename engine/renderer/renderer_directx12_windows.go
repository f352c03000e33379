//go:build windows

package renderer

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-rad/engine/renderer/directx"
	"golang.org/x/sys/windows"
)

type directXWindow interface {
	Width() int
	Height() int
	NativeHandle() uintptr
}

func newDirectX12Renderer(w directXWindow, cfg rendererConfig) (*directXRenderer, error) {
	ctx, err := directx.NewContext(directx.ContextConfig{
		Window:     windows.Handle(w.NativeHandle()),
		Width:      uint32(w.Width()),
		Height:     uint32(w.Height()),
		Debug:      cfg.validation,
		Preference: dxPreference(cfg.deviceType),
	})
	switch {
	case err == nil:
	case errors.Is(err, directx.ErrUnavailable), errors.Is(err, directx.ErrNoAdapter), directx.IsNoInterface(err):
		return nil, fmt.Errorf("%v: %w", err, ErrUnsupportedAPI)
	default:
		return nil, fmt.Errorf("%v: %w", err, ErrError)
	}

	return &directXRenderer{
		clearState: newClearState(w.Width(), w.Height()),
		release:    ctx.Release,
	}, nil
}
