package vulkan

import (
	"fmt"

	vk "github.com/goki/vulkan"
)

const swapchainExtension = "VK_KHR_swapchain"

// QueueFamily summarises one queue family of a physical device.
type QueueFamily struct {
	Count    uint32
	Graphics bool
	Present  bool
}

// DeviceCandidate summarises a physical device for selection.
type DeviceCandidate struct {
	Name          string
	Type          vk.PhysicalDeviceType
	Swapchain     bool
	QueueFamilies []QueueFamily
}

// DeviceTypePreference returns the order in which device types are considered.
//
// Parameters:
//   - lowPower: prefer integrated over discrete GPUs
//
// Returns:
//   - []vk.PhysicalDeviceType: device types, most preferred first
func DeviceTypePreference(lowPower bool) []vk.PhysicalDeviceType {
	if lowPower {
		return []vk.PhysicalDeviceType{
			vk.PhysicalDeviceTypeIntegratedGpu,
			vk.PhysicalDeviceTypeDiscreteGpu,
			vk.PhysicalDeviceTypeVirtualGpu,
			vk.PhysicalDeviceTypeCpu,
		}
	}
	return []vk.PhysicalDeviceType{
		vk.PhysicalDeviceTypeDiscreteGpu,
		vk.PhysicalDeviceTypeIntegratedGpu,
		vk.PhysicalDeviceTypeVirtualGpu,
		vk.PhysicalDeviceTypeCpu,
	}
}

// suitableFamily returns the first queue family that can both draw and present.
func suitableFamily(c DeviceCandidate) (uint32, bool) {
	if !c.Swapchain {
		return 0, false
	}
	for i, f := range c.QueueFamilies {
		if f.Count > 0 && f.Graphics && f.Present {
			return uint32(i), true
		}
	}
	return 0, false
}

// ChoosePhysicalDevice picks the most preferred suitable device. A device is suitable when it
// supports VK_KHR_swapchain and has a queue family with graphics and present support.
//
// Parameters:
//   - candidates: the devices to choose from
//   - lowPower: prefer integrated over discrete GPUs
//
// Returns:
//   - int: index of the chosen candidate
//   - uint32: index of its graphics and present queue family
//   - error: ErrUnavailable if no candidate is suitable
func ChoosePhysicalDevice(candidates []DeviceCandidate, lowPower bool) (int, uint32, error) {
	for _, t := range DeviceTypePreference(lowPower) {
		for i, c := range candidates {
			if c.Type != t {
				continue
			}
			if family, ok := suitableFamily(c); ok {
				return i, family, nil
			}
		}
	}
	return 0, 0, fmt.Errorf("no device with %s and a graphics queue among %d: %w", swapchainExtension, len(candidates), ErrUnavailable)
}

// PhysicalDevice is the GPU the renderer draws with.
type PhysicalDevice struct {
	Handle      vk.PhysicalDevice
	Name        string
	Type        vk.PhysicalDeviceType
	QueueFamily uint32
}

// SelectPhysicalDevice enumerates the GPUs of an instance and picks one that can present to surface.
//
// Parameters:
//   - instance: the instance to enumerate
//   - surface: the surface the device must present to
//   - lowPower: prefer integrated over discrete GPUs
//
// Returns:
//   - *PhysicalDevice: the chosen device
//   - error: ErrUnavailable if no device is suitable
func SelectPhysicalDevice(instance *Instance, surface *Surface, lowPower bool) (*PhysicalDevice, error) {
	var count uint32
	if res := vk.EnumeratePhysicalDevices(instance.Handle, &count, nil); res != vk.Success {
		return nil, resultError("vkEnumeratePhysicalDevices", res)
	}
	if count == 0 {
		return nil, fmt.Errorf("no Vulkan-capable GPUs found: %w", ErrUnavailable)
	}
	gpus := make([]vk.PhysicalDevice, count)
	vk.EnumeratePhysicalDevices(instance.Handle, &count, gpus)

	candidates := make([]DeviceCandidate, len(gpus))
	for i, gpu := range gpus {
		candidates[i] = describe(gpu, surface)
	}

	index, family, err := ChoosePhysicalDevice(candidates, lowPower)
	if err != nil {
		return nil, err
	}
	return &PhysicalDevice{
		Handle:      gpus[index],
		Name:        candidates[index].Name,
		Type:        candidates[index].Type,
		QueueFamily: family,
	}, nil
}

func describe(gpu vk.PhysicalDevice, surface *Surface) DeviceCandidate {
	var props vk.PhysicalDeviceProperties
	vk.GetPhysicalDeviceProperties(gpu, &props)
	props.Deref()

	c := DeviceCandidate{
		Name:      vk.ToString(props.DeviceName[:]),
		Type:      props.DeviceType,
		Swapchain: hasDeviceExtension(gpu, swapchainExtension),
	}

	var count uint32
	vk.GetPhysicalDeviceQueueFamilyProperties(gpu, &count, nil)
	families := make([]vk.QueueFamilyProperties, count)
	vk.GetPhysicalDeviceQueueFamilyProperties(gpu, &count, families)
	for i, f := range families {
		f.Deref()
		var present vk.Bool32
		vk.GetPhysicalDeviceSurfaceSupport(gpu, uint32(i), surface.Handle, &present)
		c.QueueFamilies = append(c.QueueFamilies, QueueFamily{
			Count:    f.QueueCount,
			Graphics: f.QueueFlags&vk.QueueFlags(vk.QueueGraphicsBit) != 0,
			Present:  present.B(),
		})
	}
	return c
}

func hasDeviceExtension(gpu vk.PhysicalDevice, name string) bool {
	var count uint32
	if res := vk.EnumerateDeviceExtensionProperties(gpu, "", &count, nil); res != vk.Success {
		return false
	}
	props := make([]vk.ExtensionProperties, count)
	vk.EnumerateDeviceExtensionProperties(gpu, "", &count, props)
	for _, p := range props {
		p.Deref()
		if vk.ToString(p.ExtensionName[:]) == name {
			return true
		}
	}
	return false
}

// FindMemoryType returns the index of a memory type allowed by typeBits with all of properties.
//
// Parameters:
//   - typeBits: allowed memory types from vk.MemoryRequirements
//   - properties: required property flags
//
// Returns:
//   - uint32: the memory type index
//   - error: error if no memory type matches
func (p *PhysicalDevice) FindMemoryType(typeBits uint32, properties vk.MemoryPropertyFlags) (uint32, error) {
	var memProps vk.PhysicalDeviceMemoryProperties
	vk.GetPhysicalDeviceMemoryProperties(p.Handle, &memProps)
	memProps.Deref()

	for i := uint32(0); i < memProps.MemoryTypeCount; i++ {
		memProps.MemoryTypes[i].Deref()
		if typeBits&(1<<i) != 0 && memProps.MemoryTypes[i].PropertyFlags&properties == properties {
			return i, nil
		}
	}
	return 0, fmt.Errorf("no memory type with flags %#x", properties)
}
