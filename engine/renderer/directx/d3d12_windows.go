//go:build windows

package directx

import (
	"syscall"
	"unsafe"
)

const (
	D3D_FEATURE_LEVEL_12_1 = 0xc100

	D3D12_COMMAND_LIST_TYPE_DIRECT = 0

	D3D12_COMMAND_QUEUE_PRIORITY_NORMAL = 0
	D3D12_COMMAND_QUEUE_FLAG_NONE       = 0

	D3D12_DESCRIPTOR_HEAP_TYPE_RTV  = 2
	D3D12_DESCRIPTOR_HEAP_FLAG_NONE = 0

	D3D12_FENCE_FLAG_NONE = 0
)

type D3D12_COMMAND_QUEUE_DESC struct {
	Type     uint32
	Priority int32
	Flags    uint32
	NodeMask uint32
}

type D3D12_DESCRIPTOR_HEAP_DESC struct {
	Type           uint32
	NumDescriptors uint32
	Flags          uint32
	NodeMask       uint32
}

type D3D12_CPU_DESCRIPTOR_HANDLE struct {
	Ptr uintptr
}

type _ID3D12ObjectVTbl struct {
	_IUnknownVTbl
	GetPrivateData          uintptr
	SetPrivateData          uintptr
	SetPrivateDataInterface uintptr
	SetName                 uintptr
}

type _ID3D12DeviceChildVTbl struct {
	_ID3D12ObjectVTbl
	GetDevice uintptr
}

type ID3D12Debug struct {
	Vtbl *struct {
		_IUnknownVTbl
		EnableDebugLayer uintptr
	}
}

type ID3D12Device struct {
	Vtbl *struct {
		_ID3D12ObjectVTbl
		GetNodeCount                     uintptr
		CreateCommandQueue               uintptr
		CreateCommandAllocator           uintptr
		CreateGraphicsPipelineState      uintptr
		CreateComputePipelineState       uintptr
		CreateCommandList                uintptr
		CheckFeatureSupport              uintptr
		CreateDescriptorHeap             uintptr
		GetDescriptorHandleIncrementSize uintptr
		CreateRootSignature              uintptr
		CreateConstantBufferView         uintptr
		CreateShaderResourceView         uintptr
		CreateUnorderedAccessView        uintptr
		CreateRenderTargetView           uintptr
		CreateDepthStencilView           uintptr
		CreateSampler                    uintptr
		CopyDescriptors                  uintptr
		CopyDescriptorsSimple            uintptr
		GetResourceAllocationInfo        uintptr
		GetCustomHeapProperties          uintptr
		CreateCommittedResource          uintptr
		CreateHeap                       uintptr
		CreatePlacedResource             uintptr
		CreateReservedResource           uintptr
		CreateSharedHandle               uintptr
		OpenSharedHandle                 uintptr
		OpenSharedHandleByName           uintptr
		MakeResident                     uintptr
		Evict                            uintptr
		CreateFence                      uintptr
	}
}

type ID3D12CommandQueue struct {
	Vtbl *struct {
		_ID3D12DeviceChildVTbl
	}
}

type ID3D12CommandAllocator struct {
	Vtbl *struct {
		_ID3D12DeviceChildVTbl
		Reset uintptr
	}
}

type ID3D12GraphicsCommandList struct {
	Vtbl *struct {
		_ID3D12DeviceChildVTbl
		GetType uintptr
		Close   uintptr
	}
}

type ID3D12DescriptorHeap struct {
	Vtbl *struct {
		_ID3D12DeviceChildVTbl
		GetDesc                            uintptr
		GetCPUDescriptorHandleForHeapStart uintptr
	}
}

type ID3D12Fence struct {
	Vtbl *struct {
		_ID3D12DeviceChildVTbl
		GetCompletedValue    uintptr
		SetEventOnCompletion uintptr
		Signal               uintptr
	}
}

type ID3D12Resource struct {
	Vtbl *struct {
		_ID3D12DeviceChildVTbl
	}
}

func D3D12GetDebugInterface() (*ID3D12Debug, error) {
	var dbg *ID3D12Debug
	r, _, _ := _D3D12GetDebugInterface.Call(
		uintptr(unsafe.Pointer(&IID_ID3D12Debug)),
		uintptr(unsafe.Pointer(&dbg)),
	)
	if failed(r) {
		return nil, ErrorCode{Name: "D3D12GetDebugInterface", Code: uint32(r)}
	}
	return dbg, nil
}

func (d *ID3D12Debug) EnableDebugLayer() {
	syscall.SyscallN(d.Vtbl.EnableDebugLayer, uintptr(unsafe.Pointer(d)))
}

func D3D12CreateDevice(adapter *IDXGIAdapter1, featureLevel uint32) (*ID3D12Device, error) {
	var dev *ID3D12Device
	r, _, _ := _D3D12CreateDevice.Call(
		uintptr(unsafe.Pointer(adapter)),
		uintptr(featureLevel),
		uintptr(unsafe.Pointer(&IID_ID3D12Device)),
		uintptr(unsafe.Pointer(&dev)),
	)
	if failed(r) {
		return nil, ErrorCode{Name: "D3D12CreateDevice", Code: uint32(r)}
	}
	return dev, nil
}

func (d *ID3D12Device) CreateCommandQueue(desc *D3D12_COMMAND_QUEUE_DESC) (*ID3D12CommandQueue, error) {
	var queue *ID3D12CommandQueue
	r, _, _ := syscall.SyscallN(
		d.Vtbl.CreateCommandQueue,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(&IID_ID3D12CommandQueue)),
		uintptr(unsafe.Pointer(&queue)),
	)
	if failed(r) {
		return nil, ErrorCode{Name: "ID3D12Device::CreateCommandQueue", Code: uint32(r)}
	}
	return queue, nil
}

func (d *ID3D12Device) CreateCommandAllocator(listType uint32) (*ID3D12CommandAllocator, error) {
	var alloc *ID3D12CommandAllocator
	r, _, _ := syscall.SyscallN(
		d.Vtbl.CreateCommandAllocator,
		uintptr(unsafe.Pointer(d)),
		uintptr(listType),
		uintptr(unsafe.Pointer(&IID_ID3D12CommandAllocator)),
		uintptr(unsafe.Pointer(&alloc)),
	)
	if failed(r) {
		return nil, ErrorCode{Name: "ID3D12Device::CreateCommandAllocator", Code: uint32(r)}
	}
	return alloc, nil
}

func (d *ID3D12Device) CreateCommandList(listType uint32, alloc *ID3D12CommandAllocator) (*ID3D12GraphicsCommandList, error) {
	var list *ID3D12GraphicsCommandList
	r, _, _ := syscall.SyscallN(
		d.Vtbl.CreateCommandList,
		uintptr(unsafe.Pointer(d)),
		0, // nodeMask
		uintptr(listType),
		uintptr(unsafe.Pointer(alloc)),
		0, // pInitialState
		uintptr(unsafe.Pointer(&IID_ID3D12GraphicsCommandList)),
		uintptr(unsafe.Pointer(&list)),
	)
	if failed(r) {
		return nil, ErrorCode{Name: "ID3D12Device::CreateCommandList", Code: uint32(r)}
	}
	return list, nil
}

func (d *ID3D12Device) CreateDescriptorHeap(desc *D3D12_DESCRIPTOR_HEAP_DESC) (*ID3D12DescriptorHeap, error) {
	var heap *ID3D12DescriptorHeap
	r, _, _ := syscall.SyscallN(
		d.Vtbl.CreateDescriptorHeap,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(&IID_ID3D12DescriptorHeap)),
		uintptr(unsafe.Pointer(&heap)),
	)
	if failed(r) {
		return nil, ErrorCode{Name: "ID3D12Device::CreateDescriptorHeap", Code: uint32(r)}
	}
	return heap, nil
}

func (d *ID3D12Device) GetDescriptorHandleIncrementSize(heapType uint32) uint32 {
	r, _, _ := syscall.SyscallN(
		d.Vtbl.GetDescriptorHandleIncrementSize,
		uintptr(unsafe.Pointer(d)),
		uintptr(heapType),
	)
	return uint32(r)
}

func (d *ID3D12Device) CreateRenderTargetView(res *ID3D12Resource, dest D3D12_CPU_DESCRIPTOR_HANDLE) {
	syscall.SyscallN(
		d.Vtbl.CreateRenderTargetView,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(res)),
		0, // pDesc
		dest.Ptr,
	)
}

func (d *ID3D12Device) CreateFence(initialValue uint64) (*ID3D12Fence, error) {
	var fence *ID3D12Fence
	r, _, _ := syscall.SyscallN(
		d.Vtbl.CreateFence,
		uintptr(unsafe.Pointer(d)),
		uintptr(initialValue),
		D3D12_FENCE_FLAG_NONE,
		uintptr(unsafe.Pointer(&IID_ID3D12Fence)),
		uintptr(unsafe.Pointer(&fence)),
	)
	if failed(r) {
		return nil, ErrorCode{Name: "ID3D12Device::CreateFence", Code: uint32(r)}
	}
	return fence, nil
}

func (l *ID3D12GraphicsCommandList) Close() error {
	r, _, _ := syscall.SyscallN(l.Vtbl.Close, uintptr(unsafe.Pointer(l)))
	if failed(r) {
		return ErrorCode{Name: "ID3D12GraphicsCommandList::Close", Code: uint32(r)}
	}
	return nil
}

// GetCPUDescriptorHandleForHeapStart returns its struct through a hidden out pointer.
func (h *ID3D12DescriptorHeap) GetCPUDescriptorHandleForHeapStart() D3D12_CPU_DESCRIPTOR_HANDLE {
	var handle D3D12_CPU_DESCRIPTOR_HANDLE
	syscall.SyscallN(
		h.Vtbl.GetCPUDescriptorHandleForHeapStart,
		uintptr(unsafe.Pointer(h)),
		uintptr(unsafe.Pointer(&handle)),
	)
	return handle
}
