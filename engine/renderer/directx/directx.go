// Package directx wraps the subset of DXGI and Direct3D 12 needed to bring up a device, a command
// queue and a flip-model swapchain. COM calls are made through vtables with golang.org/x/sys/windows;
// the adapter selection policy is plain Go and available on every platform.
package directx

import (
	"errors"
	"fmt"
)

// FrameCount is the number of swapchain buffers.
const FrameCount = 2

// HRESULT codes inspected by callers.
const (
	E_NOINTERFACE        = 0x80004002
	DXGI_ERROR_NOT_FOUND = 0x887A0002
)

// ErrUnavailable is returned when d3d12.dll or dxgi.dll cannot be loaded.
var ErrUnavailable = errors.New("direct3d 12 unavailable")

// ErrNoAdapter is returned when no hardware adapter is present.
var ErrNoAdapter = errors.New("no hardware adapter")

// ErrorCode is a failed HRESULT and the call that produced it.
type ErrorCode struct {
	Name string
	Code uint32
}

func (e ErrorCode) Error() string {
	return fmt.Sprintf("%s: %#x", e.Name, e.Code)
}

// IsNoInterface reports whether err is an E_NOINTERFACE failure.
func IsNoInterface(err error) bool {
	var code ErrorCode
	return errors.As(err, &code) && code.Code == E_NOINTERFACE
}

// Preference mirrors DXGI_GPU_PREFERENCE.
type Preference uint32

const (
	PreferenceUnspecified Preference = iota
	PreferenceMinimumPower
	PreferenceHighPerformance
)

func (p Preference) String() string {
	switch p {
	case PreferenceMinimumPower:
		return "minimum power"
	case PreferenceHighPerformance:
		return "high performance"
	}
	return "unspecified"
}

// ByGpuPreference reports whether adapters are enumerated with EnumAdapterByGpuPreference rather than
// EnumAdapters1.
func (p Preference) ByGpuPreference() bool {
	return p != PreferenceUnspecified
}

// AdapterDesc is the part of DXGI_ADAPTER_DESC1 used for selection.
type AdapterDesc struct {
	Description          string
	VendorID             uint32
	DeviceID             uint32
	DedicatedVideoMemory uint64
	Software             bool
}

// SelectAdapter returns the index of the first hardware adapter in enumeration order. Enumeration order
// already reflects the GPU preference.
//
// Parameters:
//   - adapters: the adapters in enumeration order
//
// Returns:
//   - int: index into adapters
//   - error: ErrNoAdapter if every adapter is a software adapter
func SelectAdapter(adapters []AdapterDesc) (int, error) {
	for i, a := range adapters {
		if !a.Software {
			return i, nil
		}
	}
	return -1, ErrNoAdapter
}
