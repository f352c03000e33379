package vulkan

import (
	"fmt"
	"sync"

	vk "github.com/goki/vulkan"
)

// Device is a reference counted logical device. The creator holds the first reference and every
// object created from the device holds another; the native device is destroyed when the last
// reference is released.
type Device struct {
	Handle   vk.Device
	Queue    vk.Queue
	Physical *PhysicalDevice

	mu      sync.Mutex
	refs    int
	destroy func()
	after   []func()
}

// NewDevice creates a logical device with one queue from the physical device's chosen family.
//
// Parameters:
//   - physical: the physical device
//
// Returns:
//   - *Device: the device, holding one reference
//   - error: error if device creation fails
func NewDevice(physical *PhysicalDevice) (*Device, error) {
	extensions := []string{swapchainExtension}
	createInfo := vk.DeviceCreateInfo{
		SType:                vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount: 1,
		PQueueCreateInfos: []vk.DeviceQueueCreateInfo{{
			SType:            vk.StructureTypeDeviceQueueCreateInfo,
			QueueFamilyIndex: physical.QueueFamily,
			QueueCount:       1,
			PQueuePriorities: []float32{1},
		}},
		EnabledExtensionCount:   uint32(len(extensions)),
		PpEnabledExtensionNames: safeStrings(extensions),
	}

	var handle vk.Device
	if res := vk.CreateDevice(physical.Handle, &createInfo, nil, &handle); res != vk.Success {
		return nil, resultError("vkCreateDevice", res)
	}
	var queue vk.Queue
	vk.GetDeviceQueue(handle, physical.QueueFamily, 0, &queue)

	d := newDevice(func() { vk.DestroyDevice(handle, nil) })
	d.Handle, d.Queue, d.Physical = handle, queue, physical
	return d, nil
}

func newDevice(destroy func()) *Device {
	return &Device{refs: 1, destroy: destroy}
}

// Retain adds a reference.
//
// Returns:
//   - *Device: the device
func (d *Device) Retain() *Device {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.refs == 0 {
		panic("vulkan: retain of destroyed device")
	}
	d.refs++
	return d
}

// Release drops a reference, destroying the device and running AfterDestroy callbacks when it was the last.
func (d *Device) Release() {
	d.mu.Lock()
	if d.refs == 0 {
		d.mu.Unlock()
		panic("vulkan: device released more times than retained")
	}
	d.refs--
	last := d.refs == 0
	d.mu.Unlock()

	if !last {
		return
	}
	d.destroy()
	for i := len(d.after) - 1; i >= 0; i-- {
		d.after[i]()
	}
	d.after = nil
}

// Refs returns the number of live references.
func (d *Device) Refs() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.refs
}

// AfterDestroy registers fn to run after the native device is destroyed. Callbacks run in reverse
// registration order. Parents of the device, such as the surface and instance, are torn down here.
//
// Parameters:
//   - fn: the callback
func (d *Device) AfterDestroy(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.after = append(d.after, fn)
}

// WaitIdle blocks until the device has finished all submitted work.
func (d *Device) WaitIdle() {
	vk.DeviceWaitIdle(d.Handle)
}

// FindMemoryType delegates to the physical device.
func (d *Device) FindMemoryType(typeBits uint32, properties vk.MemoryPropertyFlags) (uint32, error) {
	if d.Physical == nil {
		return 0, fmt.Errorf("device has no physical device")
	}
	return d.Physical.FindMemoryType(typeBits, properties)
}
