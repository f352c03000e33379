// Package vulkan holds the Vulkan objects the renderer is built from. Every object created from a
// logical Device retains it, so the device is destroyed only after its last child.
package vulkan

import (
	"errors"
	"fmt"
	"unsafe"

	vk "github.com/goki/vulkan"
)

// MaxFramesInFlight is the number of frames the CPU may record ahead of the GPU.
const MaxFramesInFlight = 2

var (
	// ErrUnavailable is returned when no Vulkan loader or no suitable device exists.
	ErrUnavailable = errors.New("vulkan unavailable")
	// ErrInvalidSPIRV is returned for bytecode that is empty or not a whole number of 32-bit words.
	ErrInvalidSPIRV = errors.New("invalid SPIR-V")
)

// Init loads the Vulkan loader through the given vkGetInstanceProcAddr.
//
// Parameters:
//   - procAddr: the loader entry point, usually from the windowing library
//
// Returns:
//   - error: ErrUnavailable if procAddr is nil or the loader cannot be initialised
func Init(procAddr unsafe.Pointer) error {
	if procAddr == nil {
		return fmt.Errorf("no vkGetInstanceProcAddr: %w", ErrUnavailable)
	}
	vk.SetGetInstanceProcAddr(procAddr)
	if err := vk.Init(); err != nil {
		return fmt.Errorf("%v: %w", err, ErrUnavailable)
	}
	return nil
}

func resultError(call string, res vk.Result) error {
	return fmt.Errorf("%s failed: %d", call, res)
}

func safeString(s string) string {
	return s + "\x00"
}

func safeStrings(list []string) []string {
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = safeString(s)
	}
	return out
}

func sliceUint32(data []byte) []uint32 {
	return unsafe.Slice((*uint32)(unsafe.Pointer(&data[0])), len(data)/4)
}
