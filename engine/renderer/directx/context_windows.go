//go:build windows

package directx

import (
	"errors"
	"fmt"
	"log"

	"golang.org/x/sys/windows"
)

// ContextConfig selects the adapter and debug settings of a Context.
type ContextConfig struct {
	Window     windows.Handle
	Width      uint32
	Height     uint32
	Debug      bool
	Preference Preference
}

// Context owns the device level objects of one window.
type Context struct {
	Adapter AdapterDesc

	factory    *IDXGIFactory6
	adapter    *IDXGIAdapter1
	device     *ID3D12Device
	queue      *ID3D12CommandQueue
	swapchain  *IDXGISwapChain3
	rtvHeap    *ID3D12DescriptorHeap
	rtvSize    uint32
	targets    [FrameCount]*ID3D12Resource
	allocator  *ID3D12CommandAllocator
	list       *ID3D12GraphicsCommandList
	fence      *ID3D12Fence
	FenceValue uint64
	FrameIndex uint32
}

// NewContext creates the factory, device, command queue, swapchain, render target views, command list
// and fence for a window.
//
// Parameters:
//   - cfg: the window and selection settings
//
// Returns:
//   - *Context: the context
//   - error: ErrUnavailable when Direct3D 12 cannot be loaded, ErrNoAdapter, or an ErrorCode
func NewContext(cfg ContextConfig) (c *Context, err error) {
	if err := Load(); err != nil {
		return nil, err
	}

	c = &Context{}
	defer func() {
		if err != nil {
			c.Release()
			c = nil
		}
	}()

	if cfg.Debug {
		if dbg, err := D3D12GetDebugInterface(); err == nil {
			dbg.EnableDebugLayer()
			release(dbg)
		} else {
			log.Printf("[DirectX12] debug layer unavailable: %v", err)
		}
	}

	if c.factory, err = CreateDXGIFactory2(cfg.Debug); err != nil {
		return nil, err
	}
	if err = c.selectAdapter(cfg.Preference); err != nil {
		return nil, err
	}
	if c.device, err = D3D12CreateDevice(c.adapter, D3D_FEATURE_LEVEL_12_1); err != nil {
		return nil, err
	}

	c.queue, err = c.device.CreateCommandQueue(&D3D12_COMMAND_QUEUE_DESC{
		Type:     D3D12_COMMAND_LIST_TYPE_DIRECT,
		Priority: D3D12_COMMAND_QUEUE_PRIORITY_NORMAL,
		Flags:    D3D12_COMMAND_QUEUE_FLAG_NONE,
	})
	if err != nil {
		return nil, err
	}

	if err = c.createSwapchain(cfg); err != nil {
		return nil, err
	}
	if err = c.createRenderTargets(); err != nil {
		return nil, err
	}

	if c.allocator, err = c.device.CreateCommandAllocator(D3D12_COMMAND_LIST_TYPE_DIRECT); err != nil {
		return nil, err
	}
	if c.list, err = c.device.CreateCommandList(D3D12_COMMAND_LIST_TYPE_DIRECT, c.allocator); err != nil {
		return nil, err
	}
	if err = c.list.Close(); err != nil {
		return nil, err
	}

	if c.fence, err = c.device.CreateFence(0); err != nil {
		return nil, err
	}
	c.FenceValue = 1
	return c, nil
}

func (c *Context) selectAdapter(pref Preference) error {
	var (
		adapters []*IDXGIAdapter1
		descs    []AdapterDesc
	)
	defer func() {
		for _, a := range adapters {
			if a != c.adapter {
				release(a)
			}
		}
	}()

	for i := uint32(0); ; i++ {
		var (
			a   *IDXGIAdapter1
			err error
		)
		if pref.ByGpuPreference() {
			a, err = c.factory.EnumAdapterByGpuPreference(i, pref)
		} else {
			a, err = c.factory.EnumAdapters1(i)
		}
		var code ErrorCode
		if errors.As(err, &code) && code.Code == DXGI_ERROR_NOT_FOUND {
			break
		}
		if err != nil {
			return err
		}
		adapters = append(adapters, a)

		desc, err := a.GetDesc1()
		if err != nil {
			return err
		}
		descs = append(descs, desc)
	}

	i, err := SelectAdapter(descs)
	if err != nil {
		return err
	}
	c.adapter, c.Adapter = adapters[i], descs[i]
	log.Printf("[DirectX12] using %s (%s)", c.Adapter.Description, pref)
	return nil
}

func (c *Context) createSwapchain(cfg ContextConfig) error {
	desc := DXGI_SWAP_CHAIN_DESC{
		BufferDesc: DXGI_MODE_DESC{
			Width:            cfg.Width,
			Height:           cfg.Height,
			RefreshRate:      DXGI_RATIONAL{Numerator: 0, Denominator: 1},
			Format:           DXGI_FORMAT_R8G8B8A8_UNORM,
			ScanlineOrdering: DXGI_MODE_SCANLINE_ORDER_UNSPECIFIED,
			Scaling:          DXGI_MODE_SCALING_UNSPECIFIED,
		},
		SampleDesc:   DXGI_SAMPLE_DESC{Count: 1, Quality: 0},
		BufferUsage:  DXGI_USAGE_RENDER_TARGET_OUTPUT,
		BufferCount:  FrameCount,
		OutputWindow: cfg.Window,
		Windowed:     1,
		SwapEffect:   DXGI_SWAP_EFFECT_FLIP_DISCARD,
	}
	sc, err := c.factory.CreateSwapChain(c.queue, &desc)
	if err != nil {
		return err
	}
	defer release(sc)

	if c.swapchain, err = sc.QueryInterface3(); err != nil {
		return fmt.Errorf("cast swapchain: %w", err)
	}
	c.FrameIndex = c.swapchain.GetCurrentBackBufferIndex()
	return nil
}

func (c *Context) createRenderTargets() error {
	var err error
	c.rtvHeap, err = c.device.CreateDescriptorHeap(&D3D12_DESCRIPTOR_HEAP_DESC{
		Type:           D3D12_DESCRIPTOR_HEAP_TYPE_RTV,
		NumDescriptors: FrameCount,
		Flags:          D3D12_DESCRIPTOR_HEAP_FLAG_NONE,
	})
	if err != nil {
		return err
	}
	c.rtvSize = c.device.GetDescriptorHandleIncrementSize(D3D12_DESCRIPTOR_HEAP_TYPE_RTV)

	handle := c.rtvHeap.GetCPUDescriptorHandleForHeapStart()
	for i := range c.targets {
		if c.targets[i], err = c.swapchain.GetBuffer(uint32(i)); err != nil {
			return err
		}
		c.device.CreateRenderTargetView(c.targets[i], handle)
		handle.Ptr += uintptr(c.rtvSize)
	}
	return nil
}

// Release releases every COM object in reverse creation order.
func (c *Context) Release() {
	release(c.fence)
	release(c.list)
	release(c.allocator)
	for i := len(c.targets) - 1; i >= 0; i-- {
		release(c.targets[i])
	}
	release(c.rtvHeap)
	release(c.swapchain)
	release(c.queue)
	release(c.device)
	release(c.adapter)
	release(c.factory)
	*c = Context{}
}
