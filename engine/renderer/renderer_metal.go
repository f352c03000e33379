package renderer

import "github.com/cogentcore/webgpu/wgpu"

// copyBytesPerRowAlignment is the row pitch alignment WebGPU requires for texture to buffer copies.
const copyBytesPerRowAlignment = 256

func paddedBytesPerRow(width uint32) uint32 {
	row := width * 4
	return (row + copyBytesPerRowAlignment - 1) / copyBytesPerRowAlignment * copyBytesPerRowAlignment
}

// unpadRows copies height rows of rowBytes from src, whose rows are pitch bytes apart, into dst.
func unpadRows(dst, src []byte, rowBytes, pitch, height int) {
	for y := 0; y < height; y++ {
		copy(dst[y*rowBytes:(y+1)*rowBytes], src[y*pitch:y*pitch+rowBytes])
	}
}

func wgpuPresentMode(mode PresentMode) wgpu.PresentMode {
	switch mode {
	case PresentModeUncapped:
		return wgpu.PresentModeImmediate
	default:
		return wgpu.PresentModeFifo
	}
}

func wgpuPowerPreference(deviceType DeviceType) wgpu.PowerPreference {
	switch deviceType {
	case DeviceHighPerformance:
		return wgpu.PowerPreferenceHighPerformance
	case DeviceLowPower:
		return wgpu.PowerPreferenceLowPower
	}
	return wgpu.PowerPreferenceUndefined
}

func wgpuIsBGRA(format wgpu.TextureFormat) bool {
	return format == wgpu.TextureFormatBGRA8Unorm || format == wgpu.TextureFormatBGRA8UnormSrgb
}
