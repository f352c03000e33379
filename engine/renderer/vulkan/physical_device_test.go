package vulkan

import (
	"testing"

	vk "github.com/goki/vulkan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var drawAndPresent = []QueueFamily{{Count: 1, Graphics: true, Present: true}}

func TestChoosePhysicalDevicePreference(t *testing.T) {
	candidates := []DeviceCandidate{
		{Name: "cpu", Type: vk.PhysicalDeviceTypeCpu, Swapchain: true, QueueFamilies: drawAndPresent},
		{Name: "integrated", Type: vk.PhysicalDeviceTypeIntegratedGpu, Swapchain: true, QueueFamilies: drawAndPresent},
		{Name: "virtual", Type: vk.PhysicalDeviceTypeVirtualGpu, Swapchain: true, QueueFamilies: drawAndPresent},
		{Name: "discrete", Type: vk.PhysicalDeviceTypeDiscreteGpu, Swapchain: true, QueueFamilies: drawAndPresent},
	}

	index, _, err := ChoosePhysicalDevice(candidates, false)
	require.NoError(t, err)
	assert.Equal(t, "discrete", candidates[index].Name)

	index, _, err = ChoosePhysicalDevice(candidates, true)
	require.NoError(t, err)
	assert.Equal(t, "integrated", candidates[index].Name)

	index, _, err = ChoosePhysicalDevice(candidates[:1], false)
	require.NoError(t, err)
	assert.Equal(t, "cpu", candidates[index].Name)
}

func TestChoosePhysicalDeviceFilters(t *testing.T) {
	tests := []struct {
		name      string
		candidate DeviceCandidate
	}{
		{"no swapchain", DeviceCandidate{Type: vk.PhysicalDeviceTypeDiscreteGpu, QueueFamilies: drawAndPresent}},
		{"no queues", DeviceCandidate{Type: vk.PhysicalDeviceTypeDiscreteGpu, Swapchain: true, QueueFamilies: []QueueFamily{{Graphics: true, Present: true}}}},
		{"compute only", DeviceCandidate{Type: vk.PhysicalDeviceTypeDiscreteGpu, Swapchain: true, QueueFamilies: []QueueFamily{{Count: 4, Present: true}}}},
		{"cannot present", DeviceCandidate{Type: vk.PhysicalDeviceTypeDiscreteGpu, Swapchain: true, QueueFamilies: []QueueFamily{{Count: 4, Graphics: true}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fallback := DeviceCandidate{Name: "integrated", Type: vk.PhysicalDeviceTypeIntegratedGpu, Swapchain: true, QueueFamilies: drawAndPresent}

			_, _, err := ChoosePhysicalDevice([]DeviceCandidate{tt.candidate}, false)
			assert.ErrorIs(t, err, ErrUnavailable)

			index, _, err := ChoosePhysicalDevice([]DeviceCandidate{tt.candidate, fallback}, false)
			require.NoError(t, err)
			assert.Equal(t, 1, index)
		})
	}
}

func TestChoosePhysicalDeviceQueueFamily(t *testing.T) {
	candidate := DeviceCandidate{
		Type:      vk.PhysicalDeviceTypeDiscreteGpu,
		Swapchain: true,
		QueueFamilies: []QueueFamily{
			{Count: 2, Graphics: true},
			{Count: 1, Present: true},
			{Count: 1, Graphics: true, Present: true},
		},
	}
	_, family, err := ChoosePhysicalDevice([]DeviceCandidate{candidate}, false)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), family)
}
