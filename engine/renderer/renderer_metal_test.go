package renderer

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestPaddedBytesPerRow(t *testing.T) {
	assert.Equal(t, uint32(256), paddedBytesPerRow(1))
	assert.Equal(t, uint32(256), paddedBytesPerRow(64))
	assert.Equal(t, uint32(512), paddedBytesPerRow(65))
	assert.Equal(t, uint32(3328), paddedBytesPerRow(800))
}

func TestUnpadRows(t *testing.T) {
	src := []byte{
		1, 2, 3, 4, 0, 0, 0, 0,
		5, 6, 7, 8, 0, 0, 0, 0,
	}
	dst := make([]byte, 8)
	unpadRows(dst, src, 4, 8, 2)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, dst)
}

func TestWGPUPresentMode(t *testing.T) {
	assert.Equal(t, wgpu.PresentModeFifo, wgpuPresentMode(PresentModeVSync))
	assert.Equal(t, wgpu.PresentModeImmediate, wgpuPresentMode(PresentModeUncapped))
}

func TestWGPUPowerPreference(t *testing.T) {
	assert.Equal(t, wgpu.PowerPreferenceUndefined, wgpuPowerPreference(DeviceDefault))
	assert.Equal(t, wgpu.PowerPreferenceHighPerformance, wgpuPowerPreference(DeviceHighPerformance))
	assert.Equal(t, wgpu.PowerPreferenceLowPower, wgpuPowerPreference(DeviceLowPower))
	assert.True(t, wgpuIsBGRA(wgpu.TextureFormatBGRA8UnormSrgb))
	assert.False(t, wgpuIsBGRA(wgpu.TextureFormatRGBA8Unorm))
}
