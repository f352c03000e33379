package vulkan

import (
	"unsafe"

	vk "github.com/goki/vulkan"
)

// Buffer is a host visible, host coherent buffer.
type Buffer struct {
	device *Device
	Handle vk.Buffer
	Memory vk.DeviceMemory
	Size   int
}

// NewBuffer creates a host visible buffer of size bytes.
//
// Parameters:
//   - device: the logical device
//   - size: the size in bytes
//   - usage: how the buffer is used, e.g. vk.BufferUsageVertexBufferBit
//
// Returns:
//   - *Buffer: the buffer
//   - error: error if the buffer or its memory cannot be created
func NewBuffer(device *Device, size int, usage vk.BufferUsageFlagBits) (*Buffer, error) {
	createInfo := vk.BufferCreateInfo{
		SType:       vk.StructureTypeBufferCreateInfo,
		Size:        vk.DeviceSize(size),
		Usage:       vk.BufferUsageFlags(usage),
		SharingMode: vk.SharingModeExclusive,
	}
	var handle vk.Buffer
	if res := vk.CreateBuffer(device.Handle, &createInfo, nil, &handle); res != vk.Success {
		return nil, resultError("vkCreateBuffer", res)
	}

	var reqs vk.MemoryRequirements
	vk.GetBufferMemoryRequirements(device.Handle, handle, &reqs)
	reqs.Deref()

	memType, err := device.FindMemoryType(reqs.MemoryTypeBits,
		vk.MemoryPropertyFlags(vk.MemoryPropertyHostVisibleBit|vk.MemoryPropertyHostCoherentBit))
	if err != nil {
		vk.DestroyBuffer(device.Handle, handle, nil)
		return nil, err
	}

	allocInfo := vk.MemoryAllocateInfo{
		SType:           vk.StructureTypeMemoryAllocateInfo,
		AllocationSize:  reqs.Size,
		MemoryTypeIndex: memType,
	}
	var memory vk.DeviceMemory
	if res := vk.AllocateMemory(device.Handle, &allocInfo, nil, &memory); res != vk.Success {
		vk.DestroyBuffer(device.Handle, handle, nil)
		return nil, resultError("vkAllocateMemory", res)
	}
	vk.BindBufferMemory(device.Handle, handle, memory, 0)

	return &Buffer{device: device.Retain(), Handle: handle, Memory: memory, Size: size}, nil
}

// Write copies data into the start of the buffer.
func (b *Buffer) Write(data []byte) error {
	var ptr unsafe.Pointer
	if res := vk.MapMemory(b.device.Handle, b.Memory, 0, vk.DeviceSize(len(data)), 0, &ptr); res != vk.Success {
		return resultError("vkMapMemory", res)
	}
	vk.Memcopy(ptr, data)
	vk.UnmapMemory(b.device.Handle, b.Memory)
	return nil
}

// Read copies the start of the buffer into dst.
func (b *Buffer) Read(dst []byte) error {
	var ptr unsafe.Pointer
	if res := vk.MapMemory(b.device.Handle, b.Memory, 0, vk.DeviceSize(len(dst)), 0, &ptr); res != vk.Success {
		return resultError("vkMapMemory", res)
	}
	copy(dst, unsafe.Slice((*byte)(ptr), len(dst)))
	vk.UnmapMemory(b.device.Handle, b.Memory)
	return nil
}

// Destroy frees the buffer and its memory and releases the device.
func (b *Buffer) Destroy() {
	if b.device == nil {
		return
	}
	vk.DestroyBuffer(b.device.Handle, b.Handle, nil)
	vk.FreeMemory(b.device.Handle, b.Memory, nil)
	b.device.Release()
	b.device = nil
}
