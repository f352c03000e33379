package renderer

import (
	"fmt"
	"image"
	"log"

	"github.com/Carmen-Shannon/oxy-rad/engine/camera"
	"github.com/Carmen-Shannon/oxy-rad/engine/renderer/directx"
	"github.com/Carmen-Shannon/oxy-rad/engine/renderer/uniform"
)

// directXRenderer brings up a Direct3D 12 device and swapchain. Drawing is not implemented: render
// paths are no-ops and shader loading returns ErrUnimplemented.
type directXRenderer struct {
	clearState

	release func()
}

var _ Renderer = &directXRenderer{}

// dxPreference maps a DeviceType to the DXGI adapter enumeration preference.
func dxPreference(deviceType DeviceType) directx.Preference {
	switch deviceType {
	case DeviceHighPerformance:
		return directx.PreferenceHighPerformance
	case DeviceLowPower:
		return directx.PreferenceMinimumPower
	}
	return directx.PreferenceUnspecified
}

func (r *directXRenderer) Name() string { return "DirectX12" }

func (r *directXRenderer) Type() RendererType { return DirectX }

func (r *directXRenderer) BeginFrame(clear ClearType) {}

func (r *directXRenderer) EndFrame() {}

func (r *directXRenderer) Clear(clear ClearType) {}

func (r *directXRenderer) SetClearColor(color [4]float32) { r.clearColor = color }

func (r *directXRenderer) SetClearDepth(depth float32) { r.clearDepth = depth }

func (r *directXRenderer) SetClearStencil(stencil int32) { r.clearStencil = stencil }

func (r *directXRenderer) SetViewport(pos, size [2]int32) {
	r.viewportPos, r.viewportSize = pos, size
}

func (r *directXRenderer) LoadShader(shaderType ShaderType, source []byte) (Shader, error) {
	return nil, fmt.Errorf("DirectX12 %s shader: %w", shaderType, ErrUnimplemented)
}

func (r *directXRenderer) LoadProgramVertFrag(vert, frag Shader) (Program, error) {
	return nil, fmt.Errorf("DirectX12 program: %w", ErrUnimplemented)
}

// GetUniform accepts a nil program: no DirectX12 program can be created yet. Programs from other
// backends are still rejected.
func (r *directXRenderer) GetUniform(program Program, name string) UniformShader {
	if program != nil {
		downcast[Handle](program, DirectX)
	}
	return &uniformShaderDX{name: uniform.NewName(name)}
}

func (r *directXRenderer) GenBufferVertex(vertices []float32) Vertices { return &verticesDX{} }

func (r *directXRenderer) GenGeometry(vertices Vertices) Geometry {
	downcast[*verticesDX](vertices, DirectX)
	return &geometryDX{}
}

func (r *directXRenderer) GenMesh(geometry Geometry, material Material) *Mesh {
	downcast[*geometryDX](geometry, DirectX)
	return &Mesh{Geometry: geometry, Material: material}
}

func (r *directXRenderer) GenBufferTexture() Texture { return &textureDX{} }

func (r *directXRenderer) GenSampler(texture Texture) Sampler {
	return &samplerDX{texture: downcast[*textureDX](texture, DirectX)}
}

func (r *directXRenderer) LoadTexture(img image.Image, texture Texture) {
	downcast[*textureDX](texture, DirectX)
}

func (r *directXRenderer) UseProgram(program Program) {
	downcast[Handle](program, DirectX)
}

func (r *directXRenderer) DrawGeometry(geometry Geometry) {
	downcast[*geometryDX](geometry, DirectX)
}

func (r *directXRenderer) DrawMesh(cam camera.Camera, mesh *Mesh) {
	downcast[*geometryDX](mesh.Geometry, DirectX)
}

func (r *directXRenderer) ReadRenderBuffer() Image { return Image{} }

func (r *directXRenderer) Resize(width, height int) {
	r.viewportPos = [2]int32{}
	r.viewportSize = [2]int32{int32(width), int32(height)}
}

func (r *directXRenderer) Destroy() {
	if r.release != nil {
		r.release()
		r.release = nil
		log.Printf("[DirectX12] destroyed")
	}
}

type verticesDX struct{}

func (v *verticesDX) Backend() RendererType { return DirectX }
func (v *verticesDX) Release()              {}

type geometryDX struct{}

func (g *geometryDX) Backend() RendererType { return DirectX }
func (g *geometryDX) Release()              {}

type uniformShaderDX struct {
	name uniform.Name
}

func (u *uniformShaderDX) Backend() RendererType { return DirectX }
func (u *uniformShaderDX) Release()              {}
func (u *uniformShaderDX) Name() uniform.Name    { return u.name }

type textureDX struct {
	width, height uint32
}

func (t *textureDX) Backend() RendererType { return DirectX }
func (t *textureDX) Release()              {}

type samplerDX struct {
	name    string
	texture *textureDX
}

func (s *samplerDX) Backend() RendererType { return DirectX }
func (s *samplerDX) Release()              {}
func (s *samplerDX) Name() string          { return s.name }
func (s *samplerDX) SetName(name string)   { s.name = name }
func (s *samplerDX) Texture() Texture      { return s.texture }
