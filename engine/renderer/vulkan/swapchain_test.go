package vulkan

import (
	"testing"

	vk "github.com/goki/vulkan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChooseSurfaceFormat(t *testing.T) {
	_, err := ChooseSurfaceFormat(nil)
	require.Error(t, err)

	unorm := vk.SurfaceFormat{Format: vk.FormatB8g8r8a8Unorm, ColorSpace: vk.ColorSpaceSrgbNonlinear}
	srgb := vk.SurfaceFormat{Format: vk.FormatB8g8r8a8Srgb, ColorSpace: vk.ColorSpaceSrgbNonlinear}

	got, err := ChooseSurfaceFormat([]vk.SurfaceFormat{unorm, srgb})
	require.NoError(t, err)
	assert.Equal(t, srgb, got)

	got, err = ChooseSurfaceFormat([]vk.SurfaceFormat{unorm})
	require.NoError(t, err)
	assert.Equal(t, unorm, got)
}

func TestChoosePresentMode(t *testing.T) {
	all := []vk.PresentMode{vk.PresentModeFifo, vk.PresentModeImmediate, vk.PresentModeMailbox}

	assert.Equal(t, vk.PresentModeMailbox, ChoosePresentMode(all, true))
	assert.Equal(t, vk.PresentModeImmediate, ChoosePresentMode(all, false))
	assert.Equal(t, vk.PresentModeFifo, ChoosePresentMode([]vk.PresentMode{vk.PresentModeFifo}, true))
	assert.Equal(t, vk.PresentModeFifo, ChoosePresentMode(nil, false))
	assert.Equal(t, vk.PresentModeMailbox, ChoosePresentMode([]vk.PresentMode{vk.PresentModeMailbox}, false))
}

func TestChooseImageCount(t *testing.T) {
	assert.Equal(t, uint32(3), ChooseImageCount(2, 8))
	assert.Equal(t, uint32(2), ChooseImageCount(2, 2))
	assert.Equal(t, uint32(4), ChooseImageCount(3, 0))
}

func TestChooseExtent(t *testing.T) {
	minExtent := vk.Extent2D{Width: 1, Height: 1}
	maxExtent := vk.Extent2D{Width: 4096, Height: 2048}

	current := vk.Extent2D{Width: 800, Height: 600}
	assert.Equal(t, current, ChooseExtent(current, minExtent, maxExtent, 1024, 768))

	anySize := vk.Extent2D{Width: vk.MaxUint32, Height: vk.MaxUint32}
	assert.Equal(t, vk.Extent2D{Width: 1024, Height: 768}, ChooseExtent(anySize, minExtent, maxExtent, 1024, 768))
	assert.Equal(t, vk.Extent2D{Width: 4096, Height: 1}, ChooseExtent(anySize, minExtent, maxExtent, 10000, 0))

	minimized := vk.Extent2D{}
	assert.Equal(t, minimized, ChooseExtent(minimized, minExtent, maxExtent, 0, 0))
}
