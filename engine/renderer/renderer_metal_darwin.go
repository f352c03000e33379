//go:build darwin

package renderer

import (
	"errors"
	"fmt"
	"image"
	"log"

	"github.com/Carmen-Shannon/oxy-rad/common"
	"github.com/Carmen-Shannon/oxy-rad/engine/camera"
	"github.com/Carmen-Shannon/oxy-rad/engine/renderer/uniform"
	"github.com/cogentcore/webgpu/wgpu"
)

// mvpSize is the size of the per-material uniform block: one column-major mat4.
const mvpSize = 64

type metalWindow interface {
	Width() int
	Height() int
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
}

// metalRenderer drives Metal through WebGPU. Shaders are WGSL with a "main" entry point and share one
// bind group layout: binding 0 is the u_mvp uniform block, binding 1 the texture and binding 2 the
// sampler of the material's first sampler.
type metalRenderer struct {
	clearState

	window      metalWindow
	presentMode wgpu.PresentMode

	instance      *wgpu.Instance
	adapter       *wgpu.Adapter
	surface       *wgpu.Surface
	device        *wgpu.Device
	queue         *wgpu.Queue
	surfaceFormat wgpu.TextureFormat
	width         uint32
	height        uint32

	bindGroupLayout *wgpu.BindGroupLayout
	pipelineLayout  *wgpu.PipelineLayout
	sampler         *wgpu.Sampler
	whiteTexture    *textureMTL
	bindings        map[Material]*materialBindingMTL

	frameEncoder *wgpu.CommandEncoder
	framePass    *wgpu.RenderPassEncoder
	frameSurface *wgpu.Texture
	frameView    *wgpu.TextureView
	bound        *programMTL

	readback      *wgpu.Buffer
	readbackPitch uint32
	captured      bool
}

var _ Renderer = &metalRenderer{}

func newMetalRenderer(w metalWindow, cfg rendererConfig) (r *metalRenderer, err error) {
	desc := w.SurfaceDescriptor()
	if desc == nil {
		return nil, fmt.Errorf("window has no surface: %w", ErrError)
	}

	r = &metalRenderer{
		clearState:  newClearState(w.Width(), w.Height()),
		window:      w,
		presentMode: wgpuPresentMode(cfg.presentMode),
		bindings:    map[Material]*materialBindingMTL{},
	}
	defer func() {
		if err != nil {
			r.Destroy()
			r = nil
		}
	}()

	r.instance = wgpu.CreateInstance(nil)
	r.surface = r.instance.CreateSurface(desc)

	r.adapter, err = r.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: r.surface,
		PowerPreference:   wgpuPowerPreference(cfg.deviceType),
	})
	if err != nil {
		return nil, fmt.Errorf("request adapter: %v: %w", err, ErrUnsupportedAPI)
	}

	r.device, err = r.adapter.RequestDevice(&wgpu.DeviceDescriptor{Label: "Metal Device"})
	if err != nil {
		return nil, fmt.Errorf("request device: %v: %w", err, ErrError)
	}
	r.queue = r.device.GetQueue()

	if err = r.createLayouts(); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrError)
	}
	r.whiteTexture = &textureMTL{}
	white := image.NewRGBA(image.Rect(0, 0, 1, 1))
	copy(white.Pix, []byte{255, 255, 255, 255})
	r.LoadTexture(white, r.whiteTexture)

	r.configureSurface(w.Width(), w.Height())
	return r, nil
}

func (r *metalRenderer) createLayouts() error {
	var err error
	r.bindGroupLayout, err = r.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "Material Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer:     wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeUniform, MinBindingSize: mvpSize},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
			{
				Binding:    2,
				Visibility: wgpu.ShaderStageFragment,
				Sampler:    wgpu.SamplerBindingLayout{Type: wgpu.SamplerBindingTypeFiltering},
			},
		},
	})
	if err != nil {
		return err
	}

	r.pipelineLayout, err = r.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "Material Pipeline Layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{r.bindGroupLayout},
	})
	if err != nil {
		return err
	}

	r.sampler, err = r.device.CreateSampler(&wgpu.SamplerDescriptor{
		Label:         "Material Sampler",
		AddressModeU:  wgpu.AddressModeRepeat,
		AddressModeV:  wgpu.AddressModeRepeat,
		AddressModeW:  wgpu.AddressModeRepeat,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeLinear,
		MipmapFilter:  wgpu.MipmapFilterModeLinear,
		LodMinClamp:   0,
		LodMaxClamp:   32,
		MaxAnisotropy: 1,
	})
	return err
}

// configureSurface configures the surface for the given size and recreates the read-back buffer.
// A zero size leaves the surface unconfigured and frames are skipped until the next resize.
func (r *metalRenderer) configureSurface(width, height int) {
	r.width, r.height = uint32(width), uint32(height)
	if width <= 0 || height <= 0 {
		return
	}

	capabilities := r.surface.GetCapabilities(r.adapter)
	r.surfaceFormat = capabilities.Formats[0]

	r.surface.Configure(r.adapter, r.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment | wgpu.TextureUsageCopySrc,
		Format:      r.surfaceFormat,
		Width:       r.width,
		Height:      r.height,
		PresentMode: r.presentMode,
		AlphaMode:   capabilities.AlphaModes[0],
	})

	if r.readback != nil {
		r.readback.Release()
		r.readback = nil
	}
	r.captured = false
	r.readbackPitch = paddedBytesPerRow(r.width)
	buf, err := r.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Read-back Buffer",
		Size:  uint64(r.readbackPitch) * uint64(r.height),
		Usage: wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		log.Printf("[Metal] read-back buffer: %v", err)
		return
	}
	r.readback = buf
}

func (r *metalRenderer) Name() string { return "Metal" }

func (r *metalRenderer) Type() RendererType { return Metal }

func (r *metalRenderer) BeginFrame(clear ClearType) {
	if r.frameSurface != nil {
		return
	}
	w, h := r.window.Width(), r.window.Height()
	if w == 0 || h == 0 {
		return
	}
	if uint32(w) != r.width || uint32(h) != r.height {
		r.configureSurface(w, h)
	}

	surfaceTexture, err := r.surface.GetCurrentTexture()
	if err != nil {
		log.Printf("[Metal] acquire surface texture: %v", err)
		r.configureSurface(w, h)
		return
	}
	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		surfaceTexture.Release()
		log.Printf("[Metal] surface view: %v", err)
		return
	}
	encoder, err := r.device.CreateCommandEncoder(nil)
	if err != nil {
		view.Release()
		surfaceTexture.Release()
		log.Printf("[Metal] command encoder: %v", err)
		return
	}

	r.frameEncoder = encoder
	r.frameSurface = surfaceTexture
	r.frameView = view
	r.beginPass(clear.Has(ClearColor))
}

// beginPass opens a render pass on the current surface view, clearing it or keeping its contents.
func (r *metalRenderer) beginPass(clear bool) {
	loadOp := wgpu.LoadOpLoad
	if clear {
		loadOp = wgpu.LoadOpClear
	}
	c := r.clearColor
	r.framePass = r.frameEncoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       r.frameView,
				LoadOp:     loadOp,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: wgpu.Color{R: float64(c[0]), G: float64(c[1]), B: float64(c[2]), A: float64(c[3])},
			},
		},
	})
	r.bound = nil
	r.applyViewport()
}

func (r *metalRenderer) applyViewport() {
	pos, size := r.viewportPos, r.viewportSize
	if pos[0] < 0 || pos[1] < 0 || size[0] <= 0 || size[1] <= 0 ||
		uint32(pos[0]+size[0]) > r.width || uint32(pos[1]+size[1]) > r.height {
		return
	}
	r.framePass.SetViewport(float32(pos[0]), float32(pos[1]), float32(size[0]), float32(size[1]), 0, 1)
}

func (r *metalRenderer) EndFrame() {
	if r.frameSurface == nil {
		return
	}
	r.framePass.End()
	r.framePass.Release()
	r.framePass = nil

	if r.readback != nil {
		r.frameEncoder.CopyTextureToBuffer(
			&wgpu.ImageCopyTexture{
				Texture:  r.frameSurface,
				MipLevel: 0,
				Origin:   wgpu.Origin3D{},
				Aspect:   wgpu.TextureAspectAll,
			},
			&wgpu.ImageCopyBuffer{
				Buffer: r.readback,
				Layout: wgpu.TextureDataLayout{
					Offset:       0,
					BytesPerRow:  r.readbackPitch,
					RowsPerImage: r.height,
				},
			},
			&wgpu.Extent3D{Width: r.width, Height: r.height, DepthOrArrayLayers: 1},
		)
	}

	commandBuffer, err := r.frameEncoder.Finish(nil)
	if err == nil {
		r.queue.Submit(commandBuffer)
		commandBuffer.Release()
		r.surface.Present()
		r.captured = r.readback != nil
	} else {
		log.Printf("[Metal] finish frame: %v", err)
	}

	r.frameEncoder.Release()
	r.frameView.Release()
	r.frameSurface.Release()
	r.frameEncoder = nil
	r.frameView = nil
	r.frameSurface = nil
}

// Clear restarts the render pass with a clear load op. WebGPU has no mid-pass clear.
func (r *metalRenderer) Clear(clear ClearType) {
	if r.framePass == nil || !clear.Has(ClearColor) {
		return
	}
	r.framePass.End()
	r.framePass.Release()
	r.beginPass(true)
}

func (r *metalRenderer) SetClearColor(color [4]float32) { r.clearColor = color }

func (r *metalRenderer) SetClearDepth(depth float32) { r.clearDepth = depth }

func (r *metalRenderer) SetClearStencil(stencil int32) { r.clearStencil = stencil }

func (r *metalRenderer) SetViewport(pos, size [2]int32) {
	r.viewportPos, r.viewportSize = pos, size
	if r.framePass != nil {
		r.applyViewport()
	}
}

// LoadShader compiles WGSL source for the vertex or fragment stage.
func (r *metalRenderer) LoadShader(shaderType ShaderType, source []byte) (Shader, error) {
	if shaderType != ShaderVertex && shaderType != ShaderFragment {
		return nil, fmt.Errorf("Metal %s shader: %w", shaderType, ErrUnimplemented)
	}
	module, err := r.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: shaderType.String(),
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: string(source),
		},
	})
	if err != nil {
		log.Printf("[Metal] %s shader: %v", shaderType, err)
		return nil, fmt.Errorf("%s shader: %v: %w", shaderType, err, ErrShaderCompile)
	}
	return &shaderMTL{module: module, stage: shaderType}, nil
}

func (r *metalRenderer) LoadProgramVertFrag(vert, frag Shader) (Program, error) {
	vs := downcast[*shaderMTL](vert, Metal)
	fs := downcast[*shaderMTL](frag, Metal)
	if vs.stage != ShaderVertex || fs.stage != ShaderFragment {
		return nil, fmt.Errorf("program needs a vertex and a fragment shader: %w", ErrShaderCompile)
	}

	created, err := r.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "Material Render Pipeline",
		Layout: r.pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     vs.module,
			EntryPoint: "main",
			Buffers: []wgpu.VertexBufferLayout{
				{
					ArrayStride: vertexStride,
					StepMode:    wgpu.VertexStepModeVertex,
					Attributes: []wgpu.VertexAttribute{
						{Format: wgpu.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
						{Format: wgpu.VertexFormatFloat32x2, Offset: uvOffset, ShaderLocation: 1},
					},
				},
			},
		},
		Fragment: &wgpu.FragmentState{
			Module:     fs.module,
			EntryPoint: "main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    r.surfaceFormat,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		log.Printf("[Metal] create pipeline: %v", err)
		return nil, fmt.Errorf("create pipeline: %v: %w", err, ErrShaderCompile)
	}
	return &programMTL{pipeline: created}, nil
}

func (r *metalRenderer) GetUniform(program Program, name string) UniformShader {
	downcast[*programMTL](program, Metal)
	return &uniformShaderMTL{name: uniform.NewName(name)}
}

func (r *metalRenderer) GenBufferVertex(vertices []float32) Vertices {
	data := common.SliceToBytes(vertices)
	if len(data) == 0 {
		return &verticesMTL{}
	}
	buf, err := r.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Vertex Buffer",
		Size:  uint64(len(data)),
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		panic(fmt.Errorf("vertex buffer: %v: %w", err, ErrError))
	}
	r.queue.WriteBuffer(buf, 0, data)
	return &verticesMTL{buffer: buf, num: uint32(len(vertices) / floatsPerVertex)}
}

func (r *metalRenderer) GenGeometry(vertices Vertices) Geometry {
	return &geometryMTL{vertices: downcast[*verticesMTL](vertices, Metal)}
}

func (r *metalRenderer) GenMesh(geometry Geometry, material Material) *Mesh {
	downcast[*geometryMTL](geometry, Metal)
	return &Mesh{Geometry: geometry, Material: material}
}

func (r *metalRenderer) GenBufferTexture() Texture { return &textureMTL{} }

func (r *metalRenderer) GenSampler(texture Texture) Sampler {
	return &samplerMTL{texture: downcast[*textureMTL](texture, Metal)}
}

func (r *metalRenderer) LoadTexture(img image.Image, texture Texture) {
	t := downcast[*textureMTL](texture, Metal)
	staging, err := common.NewTextureStagingData(img)
	if err != nil {
		log.Printf("[Metal] load texture: %v", err)
		return
	}

	tex, err := r.device.CreateTexture(&wgpu.TextureDescriptor{
		Label:     "Texture",
		Usage:     wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
		Dimension: wgpu.TextureDimension2D,
		Size: wgpu.Extent3D{
			Width:              staging.Width,
			Height:             staging.Height,
			DepthOrArrayLayers: 1,
		},
		Format:        wgpu.TextureFormatRGBA8Unorm,
		MipLevelCount: 1,
		SampleCount:   1,
	})
	if err != nil {
		log.Printf("[Metal] create texture: %v", err)
		return
	}

	r.queue.WriteTexture(
		&wgpu.ImageCopyTexture{
			Texture:  tex,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{},
			Aspect:   wgpu.TextureAspectAll,
		},
		staging.Pixels,
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  staging.Width * 4,
			RowsPerImage: staging.Height,
		},
		&wgpu.Extent3D{
			Width:              staging.Width,
			Height:             staging.Height,
			DepthOrArrayLayers: 1,
		},
	)

	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		log.Printf("[Metal] texture view: %v", err)
		return
	}
	t.Release()
	t.texture, t.view = tex, view
	t.width, t.height = staging.Width, staging.Height
}

func (r *metalRenderer) UseProgram(program Program) {
	p := downcast[*programMTL](program, Metal)
	if r.framePass == nil || r.bound == p {
		return
	}
	r.framePass.SetPipeline(p.pipeline)
	r.bound = p
}

func (r *metalRenderer) DrawGeometry(geometry Geometry) {
	g := downcast[*geometryMTL](geometry, Metal)
	if r.framePass == nil || g.vertices.buffer == nil {
		return
	}
	r.framePass.SetVertexBuffer(0, g.vertices.buffer, 0, wgpu.WholeSize)
	r.framePass.Draw(g.vertices.num, 1, 0, 0)
}

// DrawMesh writes the material's "u_mvp" into its uniform block and binds its first sampler's texture,
// or a white texture when it has none.
func (r *metalRenderer) DrawMesh(cam camera.Camera, mesh *Mesh) {
	applyCamera(cam, mesh.Material)
	r.UseProgram(mesh.Material.Program())
	if r.framePass == nil {
		return
	}

	binding, err := r.materialBinding(mesh.Material)
	if err != nil {
		log.Printf("[Metal] bind material: %v", err)
		return
	}
	for i := 0; i < mesh.Material.NumUniforms(); i++ {
		u := mesh.Material.Uniform(i)
		if !u.Name().Equal(mvpName) || u.Data().Type() != uniform.TypeOf[uniform.Mat4]() {
			continue
		}
		mvp := uniform.Get[uniform.Mat4](u.Data())
		r.queue.WriteBuffer(binding.uniforms, 0, common.SliceToBytes(mvp[:]))
	}
	r.framePass.SetBindGroup(0, binding.group, nil)
	r.DrawGeometry(mesh.Geometry)
}

type materialBindingMTL struct {
	uniforms *wgpu.Buffer
	group    *wgpu.BindGroup
	view     *wgpu.TextureView
}

// materialBinding returns the bind group of a material, rebuilding it when the sampled texture changed.
func (r *metalRenderer) materialBinding(material Material) (*materialBindingMTL, error) {
	view := r.whiteTexture.view
	if material.NumSamplers() > 0 {
		if t := downcast[*samplerMTL](material.Sampler(0), Metal).texture; t.view != nil {
			view = t.view
		}
	}
	if view == nil {
		return nil, errors.New("no texture view")
	}

	b := r.bindings[material]
	if b != nil && b.view == view {
		return b, nil
	}
	if b == nil {
		buf, err := r.device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: "Material Uniform Buffer",
			Size:  mvpSize,
			Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		})
		if err != nil {
			return nil, err
		}
		identity := uniform.IdentityMat4()
		r.queue.WriteBuffer(buf, 0, common.SliceToBytes(identity[:]))
		b = &materialBindingMTL{uniforms: buf}
		r.bindings[material] = b
	}
	if b.group != nil {
		b.group.Release()
		b.group = nil
	}

	group, err := r.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Material Bind Group",
		Layout: r.bindGroupLayout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: b.uniforms, Offset: 0, Size: wgpu.WholeSize},
			{Binding: 1, TextureView: view},
			{Binding: 2, Sampler: r.sampler},
		},
	})
	if err != nil {
		return nil, err
	}
	b.group, b.view = group, view
	return b, nil
}

// ReadRenderBuffer maps the copy of the last presented frame.
func (r *metalRenderer) ReadRenderBuffer() Image {
	if !r.captured || r.readback == nil {
		return Image{}
	}
	size := uint64(r.readbackPitch) * uint64(r.height)

	var status wgpu.BufferMapAsyncStatus
	err := r.readback.MapAsync(wgpu.MapModeRead, 0, size, func(s wgpu.BufferMapAsyncStatus) {
		status = s
	})
	if err != nil {
		log.Printf("[Metal] map read-back buffer: %v", err)
		return Image{}
	}
	r.device.Poll(true, nil)
	if status != wgpu.BufferMapAsyncStatusSuccess {
		log.Printf("[Metal] map read-back buffer: status %d", status)
		return Image{}
	}

	img := Image{Width: r.width, Height: r.height, Pitch: r.width * 4}
	img.Pixels = make([]byte, int(img.Pitch)*int(img.Height))
	unpadRows(img.Pixels, r.readback.GetMappedRange(0, uint(size)), int(img.Pitch), int(r.readbackPitch), int(r.height))
	r.readback.Unmap()

	if wgpuIsBGRA(r.surfaceFormat) {
		common.SwapRedBlue(img.Pixels)
	}
	return img
}

func (r *metalRenderer) Resize(width, height int) {
	r.viewportPos = [2]int32{}
	r.viewportSize = [2]int32{int32(width), int32(height)}
	if r.frameSurface == nil {
		r.configureSurface(width, height)
	}
}

func (r *metalRenderer) Destroy() {
	if r.frameSurface != nil {
		r.EndFrame()
	}
	for m, b := range r.bindings {
		if b.group != nil {
			b.group.Release()
		}
		b.uniforms.Release()
		delete(r.bindings, m)
	}
	if r.whiteTexture != nil {
		r.whiteTexture.Release()
	}
	if r.readback != nil {
		r.readback.Release()
		r.readback = nil
	}
	if r.sampler != nil {
		r.sampler.Release()
	}
	if r.pipelineLayout != nil {
		r.pipelineLayout.Release()
	}
	if r.bindGroupLayout != nil {
		r.bindGroupLayout.Release()
	}
	if r.queue != nil {
		r.queue.Release()
	}
	if r.device != nil {
		r.device.Release()
	}
	if r.adapter != nil {
		r.adapter.Release()
	}
	if r.surface != nil {
		r.surface.Release()
	}
	if r.instance != nil {
		r.instance.Release()
	}
	*r = metalRenderer{}
	log.Printf("[Metal] destroyed")
}

type shaderMTL struct {
	module *wgpu.ShaderModule
	stage  ShaderType
}

func (s *shaderMTL) Backend() RendererType { return Metal }

func (s *shaderMTL) Release() {
	if s.module != nil {
		s.module.Release()
		s.module = nil
	}
}

type programMTL struct {
	pipeline *wgpu.RenderPipeline
}

func (p *programMTL) Backend() RendererType { return Metal }

func (p *programMTL) Release() {
	if p.pipeline != nil {
		p.pipeline.Release()
		p.pipeline = nil
	}
}

func (p *programMTL) GetUniform(name string, data uniform.Data) uniform.Uniform {
	return uniform.NewUniformMaterial(name, data)
}

type uniformShaderMTL struct {
	name uniform.Name
}

func (u *uniformShaderMTL) Backend() RendererType { return Metal }
func (u *uniformShaderMTL) Release()              {}
func (u *uniformShaderMTL) Name() uniform.Name    { return u.name }

type verticesMTL struct {
	buffer *wgpu.Buffer
	num    uint32
}

func (v *verticesMTL) Backend() RendererType { return Metal }

func (v *verticesMTL) Release() {
	if v.buffer != nil {
		v.buffer.Release()
		v.buffer = nil
	}
}

type geometryMTL struct {
	vertices *verticesMTL
}

func (g *geometryMTL) Backend() RendererType { return Metal }
func (g *geometryMTL) Release()              {}

type textureMTL struct {
	texture       *wgpu.Texture
	view          *wgpu.TextureView
	width, height uint32
}

func (t *textureMTL) Backend() RendererType { return Metal }

func (t *textureMTL) Release() {
	if t.view != nil {
		t.view.Release()
		t.view = nil
	}
	if t.texture != nil {
		t.texture.Release()
		t.texture = nil
	}
}

type samplerMTL struct {
	name    string
	texture *textureMTL
}

func (s *samplerMTL) Backend() RendererType { return Metal }
func (s *samplerMTL) Release()              {}
func (s *samplerMTL) Name() string          { return s.name }
func (s *samplerMTL) SetName(name string)   { s.name = name }
func (s *samplerMTL) Texture() Texture      { return s.texture }
