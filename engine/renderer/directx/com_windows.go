//go:build windows

package directx

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

type GUID struct {
	Data1   uint32
	Data2   uint16
	Data3   uint16
	Data4_0 uint8
	Data4_1 uint8
	Data4_2 uint8
	Data4_3 uint8
	Data4_4 uint8
	Data4_5 uint8
	Data4_6 uint8
	Data4_7 uint8
}

var (
	IID_IDXGIFactory6             = GUID{0xc1b6694f, 0xff09, 0x44a9, 0xb0, 0x3c, 0x77, 0x90, 0x0a, 0x0a, 0x1d, 0x17}
	IID_IDXGIAdapter1             = GUID{0x29038f61, 0x3839, 0x4626, 0x91, 0xfd, 0x08, 0x68, 0x79, 0x01, 0x1a, 0x05}
	IID_IDXGISwapChain3           = GUID{0x94d99bdb, 0xf1f8, 0x4ab0, 0xb2, 0x36, 0x7d, 0xa0, 0x17, 0x0e, 0xda, 0xb1}
	IID_ID3D12Debug               = GUID{0x344488b7, 0x6846, 0x474b, 0xb9, 0x89, 0xf0, 0x27, 0x44, 0x82, 0x45, 0xe0}
	IID_ID3D12Device              = GUID{0x189819f1, 0x1db6, 0x4b57, 0xbe, 0x54, 0x18, 0x21, 0x33, 0x9b, 0x85, 0xf7}
	IID_ID3D12CommandQueue        = GUID{0x0ec870a6, 0x5d7e, 0x4c22, 0x8c, 0xfc, 0x5b, 0xaa, 0xe0, 0x76, 0x16, 0xed}
	IID_ID3D12CommandAllocator    = GUID{0x6102dee4, 0xaf59, 0x4b09, 0xb9, 0x99, 0xb4, 0x4d, 0x73, 0xf0, 0x9b, 0x24}
	IID_ID3D12GraphicsCommandList = GUID{0x5b160d0f, 0xac1b, 0x4185, 0x8b, 0xa8, 0xb3, 0xae, 0x42, 0xa5, 0xa4, 0x55}
	IID_ID3D12DescriptorHeap      = GUID{0x8efb471d, 0x616c, 0x4f49, 0x90, 0xf7, 0x12, 0x7b, 0xb7, 0x63, 0xfa, 0x51}
	IID_ID3D12Fence               = GUID{0x0a753dcf, 0xc4d8, 0x4b91, 0xad, 0xf6, 0xbe, 0x5a, 0x60, 0xd9, 0x5a, 0x76}
	IID_ID3D12Resource            = GUID{0x696442be, 0xa72e, 0x4059, 0xbc, 0x79, 0x5b, 0x5c, 0x98, 0x04, 0x0f, 0xad}
)

var (
	d3d12 = windows.NewLazySystemDLL("d3d12.dll")

	_D3D12CreateDevice      = d3d12.NewProc("D3D12CreateDevice")
	_D3D12GetDebugInterface = d3d12.NewProc("D3D12GetDebugInterface")

	dxgi = windows.NewLazySystemDLL("dxgi.dll")

	_CreateDXGIFactory2 = dxgi.NewProc("CreateDXGIFactory2")
)

// Load resolves the DXGI and Direct3D 12 entry points.
func Load() error {
	for _, p := range []*windows.LazyProc{_D3D12CreateDevice, _D3D12GetDebugInterface, _CreateDXGIFactory2} {
		if err := p.Find(); err != nil {
			return ErrUnavailable
		}
	}
	return nil
}

type IUnknown struct {
	Vtbl *struct {
		_IUnknownVTbl
	}
}

type _IUnknownVTbl struct {
	QueryInterface uintptr
	AddRef         uintptr
	Release        uintptr
}

func IUnknownRelease(obj unsafe.Pointer, releaseMethod uintptr) {
	syscall.SyscallN(releaseMethod, uintptr(obj))
}

func IUnknownQueryInterface(obj unsafe.Pointer, queryInterfaceMethod uintptr, guid *GUID) (*IUnknown, error) {
	var ref *IUnknown
	r, _, _ := syscall.SyscallN(
		queryInterfaceMethod,
		uintptr(obj),
		uintptr(unsafe.Pointer(guid)),
		uintptr(unsafe.Pointer(&ref)),
	)
	if failed(r) {
		return nil, ErrorCode{Name: "QueryInterface", Code: uint32(r)}
	}
	return ref, nil
}

// release releases any COM object. Every interface starts with the IUnknown vtable.
func release[T any](obj *T) {
	if obj == nil {
		return
	}
	u := (*IUnknown)(unsafe.Pointer(obj))
	IUnknownRelease(unsafe.Pointer(obj), u.Vtbl.Release)
}

func failed(r uintptr) bool {
	return int32(uint32(r)) < 0
}
