package vulkan

import vk "github.com/goki/vulkan"

// CommandPool allocates resettable primary command buffers for the device queue family.
type CommandPool struct {
	device *Device
	Handle vk.CommandPool
}

// NewCommandPool creates a command pool whose buffers can be reset individually.
func NewCommandPool(device *Device) (*CommandPool, error) {
	createInfo := vk.CommandPoolCreateInfo{
		SType:            vk.StructureTypeCommandPoolCreateInfo,
		Flags:            vk.CommandPoolCreateFlags(vk.CommandPoolCreateResetCommandBufferBit),
		QueueFamilyIndex: device.Physical.QueueFamily,
	}
	var handle vk.CommandPool
	if res := vk.CreateCommandPool(device.Handle, &createInfo, nil, &handle); res != vk.Success {
		return nil, resultError("vkCreateCommandPool", res)
	}
	return &CommandPool{device: device.Retain(), Handle: handle}, nil
}

// Allocate allocates n primary command buffers.
func (p *CommandPool) Allocate(n int) ([]vk.CommandBuffer, error) {
	allocInfo := vk.CommandBufferAllocateInfo{
		SType:              vk.StructureTypeCommandBufferAllocateInfo,
		CommandPool:        p.Handle,
		Level:              vk.CommandBufferLevelPrimary,
		CommandBufferCount: uint32(n),
	}
	buffers := make([]vk.CommandBuffer, n)
	if res := vk.AllocateCommandBuffers(p.device.Handle, &allocInfo, buffers); res != vk.Success {
		return nil, resultError("vkAllocateCommandBuffers", res)
	}
	return buffers, nil
}

// Free returns command buffers to the pool.
func (p *CommandPool) Free(buffers []vk.CommandBuffer) {
	vk.FreeCommandBuffers(p.device.Handle, p.Handle, uint32(len(buffers)), buffers)
}

// Destroy destroys the pool, freeing its command buffers, and releases the device.
func (p *CommandPool) Destroy() {
	if p.device == nil {
		return
	}
	vk.DestroyCommandPool(p.device.Handle, p.Handle, nil)
	p.device.Release()
	p.device = nil
}

// Semaphore orders GPU work between queue operations.
type Semaphore struct {
	device *Device
	Handle vk.Semaphore
}

// NewSemaphore creates a binary semaphore.
func NewSemaphore(device *Device) (*Semaphore, error) {
	createInfo := vk.SemaphoreCreateInfo{SType: vk.StructureTypeSemaphoreCreateInfo}
	var handle vk.Semaphore
	if res := vk.CreateSemaphore(device.Handle, &createInfo, nil, &handle); res != vk.Success {
		return nil, resultError("vkCreateSemaphore", res)
	}
	return &Semaphore{device: device.Retain(), Handle: handle}, nil
}

// Destroy destroys the semaphore and releases the device.
func (s *Semaphore) Destroy() {
	if s.device == nil {
		return
	}
	vk.DestroySemaphore(s.device.Handle, s.Handle, nil)
	s.device.Release()
	s.device = nil
}

// Fence signals the CPU when submitted GPU work completes.
type Fence struct {
	device *Device
	Handle vk.Fence
}

// NewFence creates a fence, optionally already signaled.
func NewFence(device *Device, signaled bool) (*Fence, error) {
	createInfo := vk.FenceCreateInfo{SType: vk.StructureTypeFenceCreateInfo}
	if signaled {
		createInfo.Flags = vk.FenceCreateFlags(vk.FenceCreateSignaledBit)
	}
	var handle vk.Fence
	if res := vk.CreateFence(device.Handle, &createInfo, nil, &handle); res != vk.Success {
		return nil, resultError("vkCreateFence", res)
	}
	return &Fence{device: device.Retain(), Handle: handle}, nil
}

// Wait blocks without timeout until the fence is signaled.
func (f *Fence) Wait() {
	vk.WaitForFences(f.device.Handle, 1, []vk.Fence{f.Handle}, vk.True, vk.MaxUint64)
}

// Reset returns the fence to the unsignaled state.
func (f *Fence) Reset() {
	vk.ResetFences(f.device.Handle, 1, []vk.Fence{f.Handle})
}

// Destroy destroys the fence and releases the device.
func (f *Fence) Destroy() {
	if f.device == nil {
		return
	}
	vk.DestroyFence(f.device.Handle, f.Handle, nil)
	f.device.Release()
	f.device = nil
}

// Frame holds the command buffer and synchronisation objects of one frame in flight.
type Frame struct {
	Command        vk.CommandBuffer
	ImageAvailable *Semaphore
	RenderFinished *Semaphore
	InFlight       *Fence
}

// NewFrames creates MaxFramesInFlight frames with command buffers from pool.
func NewFrames(device *Device, pool *CommandPool) ([]*Frame, error) {
	buffers, err := pool.Allocate(MaxFramesInFlight)
	if err != nil {
		return nil, err
	}
	frames := make([]*Frame, 0, MaxFramesInFlight)
	for _, cmd := range buffers {
		f := &Frame{Command: cmd}
		if f.ImageAvailable, err = NewSemaphore(device); err == nil {
			if f.RenderFinished, err = NewSemaphore(device); err == nil {
				f.InFlight, err = NewFence(device, true)
			}
		}
		frames = append(frames, f)
		if err != nil {
			DestroyFrames(frames)
			return nil, err
		}
	}
	return frames, nil
}

// ResetSync replaces the frame's image-available semaphore and in-flight fence with fresh objects,
// the fence signaled. The device must be idle.
func (f *Frame) ResetSync(device *Device) error {
	sem, err := NewSemaphore(device)
	if err != nil {
		return err
	}
	fence, err := NewFence(device, true)
	if err != nil {
		sem.Destroy()
		return err
	}
	f.ImageAvailable.Destroy()
	f.InFlight.Destroy()
	f.ImageAvailable, f.InFlight = sem, fence
	return nil
}

// DestroyFrames destroys the synchronisation objects of frames in reverse creation order.
// Command buffers are freed with their pool.
func DestroyFrames(frames []*Frame) {
	for i := len(frames) - 1; i >= 0; i-- {
		f := frames[i]
		if f.InFlight != nil {
			f.InFlight.Destroy()
		}
		if f.RenderFinished != nil {
			f.RenderFinished.Destroy()
		}
		if f.ImageAvailable != nil {
			f.ImageAvailable.Destroy()
		}
	}
}
