package renderer

import (
	"fmt"
	"image"
	"log"

	"github.com/Carmen-Shannon/oxy-rad/engine/camera"
	"github.com/Carmen-Shannon/oxy-rad/engine/renderer/uniform"
	"github.com/Carmen-Shannon/oxy-rad/engine/window"
)

// Renderer defines the interface every graphics backend implements.
//
// All methods must be called from the thread that owns the window. Handles returned by
// one Renderer may only be passed back to that Renderer; passing a handle created by a
// different backend panics with ErrInvalidCast.
type Renderer interface {
	// Name returns a human readable name of the backend including its negotiated version.
	//
	// Returns:
	//   - string: the backend name
	Name() string

	// Type returns the graphics API of the backend.
	//
	// Returns:
	//   - RendererType: the backend API
	Type() RendererType

	// BeginFrame starts a frame and clears the buffers selected by clear.
	// Draw calls may be made until EndFrame.
	//
	// Parameters:
	//   - clear: the buffers to clear at the start of the frame
	BeginFrame(clear ClearType)

	// EndFrame finishes the frame and presents it.
	EndFrame()

	// Clear clears the selected buffers immediately.
	//
	// Parameters:
	//   - clear: the buffers to clear
	Clear(clear ClearType)

	// SetClearColor sets the RGBA color used when clearing the color buffer.
	//
	// Parameters:
	//   - color: RGBA components in [0, 1]
	SetClearColor(color [4]float32)

	// ClearColor returns the current clear color.
	ClearColor() [4]float32

	// SetClearDepth sets the value used when clearing the depth buffer.
	//
	// Parameters:
	//   - depth: the clear depth
	SetClearDepth(depth float32)

	// ClearDepth returns the current clear depth.
	ClearDepth() float32

	// SetClearStencil sets the value used when clearing the stencil buffer.
	//
	// Parameters:
	//   - stencil: the clear stencil value
	SetClearStencil(stencil int32)

	// ClearStencil returns the current clear stencil value.
	ClearStencil() int32

	// SetViewport sets the render viewport.
	//
	// Parameters:
	//   - pos: the lower left corner in pixels
	//   - size: the width and height in pixels
	SetViewport(pos, size [2]int32)

	// ViewportPos returns the viewport position.
	ViewportPos() [2]int32

	// ViewportSize returns the viewport size.
	ViewportSize() [2]int32

	// LoadShader compiles a shader stage. The source format depends on the backend:
	// GLSL text for OpenGL, SPIR-V for Vulkan, WGSL for Metal.
	//
	// Parameters:
	//   - shaderType: the pipeline stage
	//   - source: the shader source or bytecode
	//
	// Returns:
	//   - Shader: the compiled shader
	//   - error: ErrShaderCompile if compilation fails
	LoadShader(shaderType ShaderType, source []byte) (Shader, error)

	// LoadProgramVertFrag links a vertex and fragment shader into a program.
	//
	// Parameters:
	//   - vert: the vertex shader
	//   - frag: the fragment shader
	//
	// Returns:
	//   - Program: the linked program
	//   - error: ErrShaderCompile if linking fails
	LoadProgramVertFrag(vert, frag Shader) (Program, error)

	// GetUniform resolves a uniform of a linked program.
	//
	// Parameters:
	//   - program: the linked program
	//   - name: the uniform identifier
	//
	// Returns:
	//   - UniformShader: the resolved uniform
	GetUniform(program Program, name string) UniformShader

	// GenBufferVertex uploads interleaved vertex data. Each vertex is four floats:
	// a vec2 position followed by a vec2 texture coordinate.
	//
	// Parameters:
	//   - vertices: the vertex data
	//
	// Returns:
	//   - Vertices: the vertex buffer
	GenBufferVertex(vertices []float32) Vertices

	// GenGeometry describes how a vertex buffer feeds the vertex stage.
	//
	// Parameters:
	//   - vertices: the vertex buffer
	//
	// Returns:
	//   - Geometry: the geometry
	GenGeometry(vertices Vertices) Geometry

	// GenMesh pairs a geometry with a material.
	//
	// Parameters:
	//   - geometry: the geometry to draw
	//   - material: the material to draw it with
	//
	// Returns:
	//   - *Mesh: the mesh
	GenMesh(geometry Geometry, material Material) *Mesh

	// GenBufferTexture creates an empty texture.
	GenBufferTexture() Texture

	// GenSampler creates an unnamed sampler over a texture.
	//
	// Parameters:
	//   - texture: the texture to sample
	//
	// Returns:
	//   - Sampler: the sampler
	GenSampler(texture Texture) Sampler

	// LoadTexture uploads an image into a texture as RGBA8 and generates mipmaps where supported.
	//
	// Parameters:
	//   - img: the source image
	//   - texture: the destination texture
	LoadTexture(img image.Image, texture Texture)

	// UseProgram binds a program for subsequent draws.
	//
	// Parameters:
	//   - program: the program to bind
	UseProgram(program Program)

	// DrawGeometry draws a geometry as a triangle list with the bound program.
	//
	// Parameters:
	//   - geometry: the geometry to draw
	DrawGeometry(geometry Geometry)

	// DrawMesh uploads the camera's view-projection into the material's "u_mvp" uniform,
	// binds the material and draws the mesh geometry.
	//
	// Parameters:
	//   - cam: the camera, or nil to leave u_mvp untouched
	//   - mesh: the mesh to draw
	DrawMesh(cam camera.Camera, mesh *Mesh)

	// ReadRenderBuffer reads back the most recently rendered frame as RGBA8.
	//
	// Returns:
	//   - Image: the pixels
	ReadRenderBuffer() Image

	// Resize informs the backend that the window surface changed size.
	//
	// Parameters:
	//   - width: the new width in pixels
	//   - height: the new height in pixels
	Resize(width, height int)

	// Destroy releases every backend resource. The renderer must not be used afterwards.
	Destroy()
}

// rendererConfig is collected from builder options before a backend is constructed.
type rendererConfig struct {
	minVersion  Version
	maxVersion  Version
	deviceType  DeviceType
	validation  bool
	presentMode PresentMode
}

func defaultRendererConfig() rendererConfig {
	return rendererConfig{
		minVersion:  Version{Major: Lowest(), Minor: Lowest(), Patch: Lowest()},
		maxVersion:  Version{Major: Highest(), Minor: Highest(), Patch: Highest()},
		deviceType:  DeviceDefault,
		presentMode: PresentModeVSync,
	}
}

// NewRenderer creates a Renderer for the requested graphics API on the given window.
//
// Parameters:
//   - rendererType: the graphics API to use
//   - w: the window to render into
//   - options: functional options to configure the renderer
//
// Returns:
//   - Renderer: the renderer
//   - error: ErrUnsupportedAPI if the API is unavailable on this platform, or a wrapped backend error
func NewRenderer(rendererType RendererType, w window.Window, options ...RendererBuilderOption) (Renderer, error) {
	cfg := defaultRendererConfig()
	for _, opt := range options {
		opt(&cfg)
	}

	var (
		r   Renderer
		err error
	)
	switch rendererType {
	case OpenGL, OpenGLES:
		r, err = newOpenGLRenderer(w, rendererType == OpenGLES, cfg)
	case Vulkan:
		r, err = newVulkanRenderer(w, cfg)
	case DirectX:
		r, err = newDirectX12Renderer(w, cfg)
	case Metal:
		r, err = newMetalRenderer(w, cfg)
	default:
		err = fmt.Errorf("renderer type %d: %w", int(rendererType), ErrUnsupportedAPI)
	}
	if err != nil {
		return nil, err
	}
	log.Printf("[Renderer] created %s", r.Name())
	return r, nil
}

// clearState holds the clear values and viewport shared by every backend.
type clearState struct {
	clearColor   [4]float32
	clearDepth   float32
	clearStencil int32
	viewportPos  [2]int32
	viewportSize [2]int32
}

func newClearState(width, height int) clearState {
	return clearState{
		clearDepth:   1,
		viewportSize: [2]int32{int32(width), int32(height)},
	}
}

func (s *clearState) ClearColor() [4]float32 { return s.clearColor }
func (s *clearState) ClearDepth() float32    { return s.clearDepth }
func (s *clearState) ClearStencil() int32    { return s.clearStencil }
func (s *clearState) ViewportPos() [2]int32  { return s.viewportPos }
func (s *clearState) ViewportSize() [2]int32 { return s.viewportSize }

// Vertex layout shared by every backend: position xy followed by texture coordinates uv.
const (
	floatsPerVertex = 4
	vertexStride    = floatsPerVertex * 4
	uvOffset        = 2 * 4
)

var mvpName = uniform.NewName("u_mvp")

// applyCamera writes the camera's view-projection into every Mat4 "u_mvp" uniform of the material.
func applyCamera(cam camera.Camera, material Material) {
	if cam == nil || material == nil {
		return
	}
	for i := 0; i < material.NumUniforms(); i++ {
		u := material.Uniform(i)
		if !u.Name().Equal(mvpName) {
			continue
		}
		data := u.Data()
		if data.Type() != uniform.TypeOf[uniform.Mat4]() {
			continue
		}
		uniform.Set(data, uniform.Mat4(cam.ViewProjection()))
	}
}
