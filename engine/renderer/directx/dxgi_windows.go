//go:build windows

package directx

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	DXGI_CREATE_FACTORY_DEBUG = 0x1

	DXGI_ADAPTER_FLAG_SOFTWARE = 0x2

	DXGI_FORMAT_R8G8B8A8_UNORM = 28

	DXGI_USAGE_RENDER_TARGET_OUTPUT = 0x20

	DXGI_SWAP_EFFECT_FLIP_DISCARD = 4

	DXGI_MODE_SCANLINE_ORDER_UNSPECIFIED = 0
	DXGI_MODE_SCALING_UNSPECIFIED        = 0
)

type DXGI_SWAP_CHAIN_DESC struct {
	BufferDesc   DXGI_MODE_DESC
	SampleDesc   DXGI_SAMPLE_DESC
	BufferUsage  uint32
	BufferCount  uint32
	OutputWindow windows.Handle
	Windowed     uint32
	SwapEffect   uint32
	Flags        uint32
}

type DXGI_SAMPLE_DESC struct {
	Count   uint32
	Quality uint32
}

type DXGI_MODE_DESC struct {
	Width            uint32
	Height           uint32
	RefreshRate      DXGI_RATIONAL
	Format           uint32
	ScanlineOrdering uint32
	Scaling          uint32
}

type DXGI_RATIONAL struct {
	Numerator   uint32
	Denominator uint32
}

type LUID struct {
	LowPart  uint32
	HighPart int32
}

type DXGI_ADAPTER_DESC1 struct {
	Description           [128]uint16
	VendorId              uint32
	DeviceId              uint32
	SubSysId              uint32
	Revision              uint32
	DedicatedVideoMemory  uintptr
	DedicatedSystemMemory uintptr
	SharedSystemMemory    uintptr
	AdapterLuid           LUID
	Flags                 uint32
}

type _IDXGIObjectVTbl struct {
	_IUnknownVTbl
	SetPrivateData          uintptr
	SetPrivateDataInterface uintptr
	GetPrivateData          uintptr
	GetParent               uintptr
}

type IDXGIFactory6 struct {
	Vtbl *struct {
		_IDXGIObjectVTbl
		EnumAdapters                  uintptr
		MakeWindowAssociation         uintptr
		GetWindowAssociation          uintptr
		CreateSwapChain               uintptr
		CreateSoftwareAdapter         uintptr
		EnumAdapters1                 uintptr
		IsCurrent                     uintptr
		IsWindowedStereoEnabled       uintptr
		CreateSwapChainForHwnd        uintptr
		CreateSwapChainForCoreWindow  uintptr
		GetSharedResourceAdapterLuid  uintptr
		RegisterStereoStatusWindow    uintptr
		RegisterStereoStatusEvent     uintptr
		UnregisterStereoStatus        uintptr
		RegisterOcclusionStatusWindow uintptr
		RegisterOcclusionStatusEvent  uintptr
		UnregisterOcclusionStatus     uintptr
		CreateSwapChainForComposition uintptr
		GetCreationFlags              uintptr
		EnumAdapterByLuid             uintptr
		EnumWarpAdapter               uintptr
		CheckFeatureSupport           uintptr
		EnumAdapterByGpuPreference    uintptr
	}
}

type IDXGIAdapter1 struct {
	Vtbl *struct {
		_IDXGIObjectVTbl
		EnumOutputs           uintptr
		GetDesc               uintptr
		CheckInterfaceSupport uintptr
		GetDesc1              uintptr
	}
}

type IDXGISwapChain struct {
	Vtbl *struct {
		_IDXGIObjectVTbl
		GetDevice           uintptr
		Present             uintptr
		GetBuffer           uintptr
		SetFullscreenState  uintptr
		GetFullscreenState  uintptr
		GetDesc             uintptr
		ResizeBuffers       uintptr
		ResizeTarget        uintptr
		GetContainingOutput uintptr
		GetFrameStatistics  uintptr
		GetLastPresentCount uintptr
	}
}

type IDXGISwapChain3 struct {
	Vtbl *struct {
		_IDXGIObjectVTbl
		GetDevice                     uintptr
		Present                       uintptr
		GetBuffer                     uintptr
		SetFullscreenState            uintptr
		GetFullscreenState            uintptr
		GetDesc                       uintptr
		ResizeBuffers                 uintptr
		ResizeTarget                  uintptr
		GetContainingOutput           uintptr
		GetFrameStatistics            uintptr
		GetLastPresentCount           uintptr
		GetDesc1                      uintptr
		GetFullscreenDesc             uintptr
		GetHwnd                       uintptr
		GetCoreWindow                 uintptr
		Present1                      uintptr
		IsTemporaryMonoSupported      uintptr
		GetRestrictToOutput           uintptr
		SetBackgroundColor            uintptr
		GetBackgroundColor            uintptr
		SetRotation                   uintptr
		GetRotation                   uintptr
		SetSourceSize                 uintptr
		GetSourceSize                 uintptr
		SetMaximumFrameLatency        uintptr
		GetMaximumFrameLatency        uintptr
		GetFrameLatencyWaitableObject uintptr
		SetMatrixTransform            uintptr
		GetMatrixTransform            uintptr
		GetCurrentBackBufferIndex     uintptr
		CheckColorSpaceSupport        uintptr
		SetColorSpace1                uintptr
		ResizeBuffers1                uintptr
	}
}

func CreateDXGIFactory2(debug bool) (*IDXGIFactory6, error) {
	var flags uintptr
	if debug {
		flags = DXGI_CREATE_FACTORY_DEBUG
	}
	var factory *IDXGIFactory6
	r, _, _ := _CreateDXGIFactory2.Call(
		flags,
		uintptr(unsafe.Pointer(&IID_IDXGIFactory6)),
		uintptr(unsafe.Pointer(&factory)),
	)
	if failed(r) {
		return nil, ErrorCode{Name: "CreateDXGIFactory2", Code: uint32(r)}
	}
	return factory, nil
}

// EnumAdapters1 returns the adapter at index, or a DXGI_ERROR_NOT_FOUND ErrorCode past the end.
func (f *IDXGIFactory6) EnumAdapters1(index uint32) (*IDXGIAdapter1, error) {
	var adapter *IDXGIAdapter1
	r, _, _ := syscall.SyscallN(
		f.Vtbl.EnumAdapters1,
		uintptr(unsafe.Pointer(f)),
		uintptr(index),
		uintptr(unsafe.Pointer(&adapter)),
	)
	if failed(r) {
		return nil, ErrorCode{Name: "IDXGIFactory1::EnumAdapters1", Code: uint32(r)}
	}
	return adapter, nil
}

func (f *IDXGIFactory6) EnumAdapterByGpuPreference(index uint32, pref Preference) (*IDXGIAdapter1, error) {
	var adapter *IDXGIAdapter1
	r, _, _ := syscall.SyscallN(
		f.Vtbl.EnumAdapterByGpuPreference,
		uintptr(unsafe.Pointer(f)),
		uintptr(index),
		uintptr(pref),
		uintptr(unsafe.Pointer(&IID_IDXGIAdapter1)),
		uintptr(unsafe.Pointer(&adapter)),
	)
	if failed(r) {
		return nil, ErrorCode{Name: "IDXGIFactory6::EnumAdapterByGpuPreference", Code: uint32(r)}
	}
	return adapter, nil
}

func (f *IDXGIFactory6) CreateSwapChain(queue *ID3D12CommandQueue, desc *DXGI_SWAP_CHAIN_DESC) (*IDXGISwapChain, error) {
	var swchain *IDXGISwapChain
	r, _, _ := syscall.SyscallN(
		f.Vtbl.CreateSwapChain,
		uintptr(unsafe.Pointer(f)),
		uintptr(unsafe.Pointer(queue)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(&swchain)),
	)
	if failed(r) {
		return nil, ErrorCode{Name: "IDXGIFactory::CreateSwapChain", Code: uint32(r)}
	}
	return swchain, nil
}

func (a *IDXGIAdapter1) GetDesc1() (AdapterDesc, error) {
	var desc DXGI_ADAPTER_DESC1
	r, _, _ := syscall.SyscallN(
		a.Vtbl.GetDesc1,
		uintptr(unsafe.Pointer(a)),
		uintptr(unsafe.Pointer(&desc)),
	)
	if failed(r) {
		return AdapterDesc{}, ErrorCode{Name: "IDXGIAdapter1::GetDesc1", Code: uint32(r)}
	}
	return AdapterDesc{
		Description:          windows.UTF16ToString(desc.Description[:]),
		VendorID:             desc.VendorId,
		DeviceID:             desc.DeviceId,
		DedicatedVideoMemory: uint64(desc.DedicatedVideoMemory),
		Software:             desc.Flags&DXGI_ADAPTER_FLAG_SOFTWARE != 0,
	}, nil
}

func (s *IDXGISwapChain) QueryInterface3() (*IDXGISwapChain3, error) {
	ref, err := IUnknownQueryInterface(unsafe.Pointer(s), s.Vtbl.QueryInterface, &IID_IDXGISwapChain3)
	if err != nil {
		return nil, err
	}
	return (*IDXGISwapChain3)(unsafe.Pointer(ref)), nil
}

func (s *IDXGISwapChain3) GetBuffer(index uint32) (*ID3D12Resource, error) {
	var res *ID3D12Resource
	r, _, _ := syscall.SyscallN(
		s.Vtbl.GetBuffer,
		uintptr(unsafe.Pointer(s)),
		uintptr(index),
		uintptr(unsafe.Pointer(&IID_ID3D12Resource)),
		uintptr(unsafe.Pointer(&res)),
	)
	if failed(r) {
		return nil, ErrorCode{Name: "IDXGISwapChain::GetBuffer", Code: uint32(r)}
	}
	return res, nil
}

func (s *IDXGISwapChain3) GetCurrentBackBufferIndex() uint32 {
	r, _, _ := syscall.SyscallN(s.Vtbl.GetCurrentBackBufferIndex, uintptr(unsafe.Pointer(s)))
	return uint32(r)
}
