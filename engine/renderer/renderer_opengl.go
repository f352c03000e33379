package renderer

import (
	"fmt"
	"image"
	"log"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-rad/common"
	"github.com/Carmen-Shannon/oxy-rad/engine/camera"
	"github.com/Carmen-Shannon/oxy-rad/engine/renderer/opengl"
	"github.com/Carmen-Shannon/oxy-rad/engine/renderer/uniform"
)

// glSurface is the part of a window the OpenGL renderer draws into once a context exists.
type glSurface interface {
	Width() int
	Height() int
	SwapBuffers()
	SetSwapInterval(interval int)
}

// glContextWindow is a window that can create OpenGL contexts.
type glContextWindow interface {
	glSurface
	CreateContext(major, minor int, es bool) error
	GetProcAddress(name string) unsafe.Pointer
}

type openGLRenderer struct {
	clearState

	gl      opengl.Functions
	surface glSurface
	backend RendererType
	major   uint32
	minor   uint32

	// -1 until something is bound
	boundProgram int64
	boundVAO     int64
}

var _ Renderer = &openGLRenderer{}

func newOpenGLRenderer(w glContextWindow, es bool, cfg rendererConfig) (*openGLRenderer, error) {
	variant, load := glDesktop, opengl.NewDesktop
	if es {
		variant, load = glES, opengl.NewES
	}

	major, minor, err := negotiateContextVersion(cfg.minVersion, cfg.maxVersion, variant, func(major, minor uint32) error {
		return w.CreateContext(int(major), int(minor), es)
	})
	if err != nil {
		return nil, err
	}

	fns, err := load(w.GetProcAddress)
	if err != nil {
		return nil, fmt.Errorf("%s %d.%d: %v: %w", variant.name, major, minor, err, ErrUnsupportedAPI)
	}

	switch cfg.presentMode {
	case PresentModeUncapped:
		w.SetSwapInterval(0)
	default:
		w.SetSwapInterval(1)
	}

	r := newOpenGLRendererWithFunctions(fns, w, es, major, minor)
	log.Printf("[%s] context %d.%d: %s", variant.name, major, minor, fns.GetString(opengl.VERSION))
	return r, nil
}

// newOpenGLRendererWithFunctions wraps an already current context.
func newOpenGLRendererWithFunctions(fns opengl.Functions, surface glSurface, es bool, major, minor uint32) *openGLRenderer {
	backend := OpenGL
	if es {
		backend = OpenGLES
	}
	return &openGLRenderer{
		clearState:   newClearState(surface.Width(), surface.Height()),
		gl:           fns,
		surface:      surface,
		backend:      backend,
		major:        major,
		minor:        minor,
		boundProgram: -1,
		boundVAO:     -1,
	}
}

func (r *openGLRenderer) Name() string {
	return fmt.Sprintf("%s %d.%d", r.backend, r.major, r.minor)
}

func (r *openGLRenderer) Type() RendererType { return r.backend }

func (r *openGLRenderer) BeginFrame(clear ClearType) {
	r.Clear(clear)
}

func (r *openGLRenderer) EndFrame() {
	r.surface.SwapBuffers()
}

func (r *openGLRenderer) Clear(clear ClearType) {
	var mask uint32
	if clear.Has(ClearColor) {
		mask |= opengl.COLOR_BUFFER_BIT
	}
	if clear.Has(ClearDepth) {
		mask |= opengl.DEPTH_BUFFER_BIT
	}
	if clear.Has(ClearStencil) {
		mask |= opengl.STENCIL_BUFFER_BIT
	}
	if mask != 0 {
		r.gl.Clear(mask)
	}
}

func (r *openGLRenderer) SetClearColor(color [4]float32) {
	r.clearColor = color
	r.gl.ClearColor(color[0], color[1], color[2], color[3])
}

func (r *openGLRenderer) SetClearDepth(depth float32) {
	r.clearDepth = depth
	r.gl.ClearDepth(depth)
}

func (r *openGLRenderer) SetClearStencil(stencil int32) {
	r.clearStencil = stencil
	r.gl.ClearStencil(stencil)
}

func (r *openGLRenderer) SetViewport(pos, size [2]int32) {
	r.viewportPos = pos
	r.viewportSize = size
	r.gl.Viewport(pos[0], pos[1], size[0], size[1])
}

func glShaderType(shaderType ShaderType) (uint32, error) {
	switch shaderType {
	case ShaderVertex:
		return opengl.VERTEX_SHADER, nil
	case ShaderTesselationControl:
		return opengl.TESS_CONTROL_SHADER, nil
	case ShaderTesselationEvaluation:
		return opengl.TESS_EVALUATION_SHADER, nil
	case ShaderGeometry:
		return opengl.GEOMETRY_SHADER, nil
	case ShaderFragment:
		return opengl.FRAGMENT_SHADER, nil
	case ShaderCompute:
		return opengl.COMPUTE_SHADER, nil
	}
	return 0, fmt.Errorf("shader type %d: %w", int(shaderType), ErrError)
}

func (r *openGLRenderer) LoadShader(shaderType ShaderType, source []byte) (Shader, error) {
	kind, err := glShaderType(shaderType)
	if err != nil {
		return nil, err
	}
	id := r.gl.CreateShader(kind)
	if id == 0 {
		return nil, fmt.Errorf("glCreateShader(%s) returned 0: %w", shaderType, ErrError)
	}
	r.gl.ShaderSource(id, string(source))
	r.gl.CompileShader(id)

	if r.gl.GetShaderi(id, opengl.COMPILE_STATUS) == 0 {
		info := r.gl.GetShaderInfoLog(id)
		log.Printf("[%s] %s shader compile failed: %s", r.backend, shaderType, info)
		r.gl.DeleteShader(id)
		return nil, fmt.Errorf("%s shader: %s: %w", shaderType, info, ErrShaderCompile)
	}
	return &shaderGL{glHandle: r.handle(), id: id}, nil
}

func (r *openGLRenderer) LoadProgramVertFrag(vert, frag Shader) (Program, error) {
	vs := downcast[*shaderGL](vert, r.backend)
	fs := downcast[*shaderGL](frag, r.backend)

	id := r.gl.CreateProgram()
	r.gl.AttachShader(id, vs.id)
	r.gl.AttachShader(id, fs.id)
	r.gl.LinkProgram(id)
	r.gl.DetachShader(id, vs.id)
	r.gl.DetachShader(id, fs.id)

	if r.gl.GetProgrami(id, opengl.LINK_STATUS) == 0 {
		info := r.gl.GetProgramInfoLog(id)
		log.Printf("[%s] program link failed: %s", r.backend, info)
		r.gl.DeleteProgram(id)
		return nil, fmt.Errorf("link program: %s: %w", info, ErrShaderCompile)
	}
	return &programGL{glHandle: r.handle(), id: id}, nil
}

func (r *openGLRenderer) GetUniform(program Program, name string) UniformShader {
	p := downcast[*programGL](program, r.backend)
	return &uniformShaderGL{
		glHandle: r.handle(),
		name:     uniform.NewName(name),
		location: r.gl.GetUniformLocation(p.id, name),
	}
}

func (r *openGLRenderer) GenBufferVertex(vertices []float32) Vertices {
	id := r.gl.GenBuffer()
	r.gl.BindBuffer(opengl.ARRAY_BUFFER, id)
	r.gl.BufferData(opengl.ARRAY_BUFFER, vertices, opengl.STATIC_DRAW)
	r.gl.BindBuffer(opengl.ARRAY_BUFFER, 0)
	return &verticesGL{glHandle: r.handle(), id: id, num: int32(len(vertices) / floatsPerVertex)}
}

func (r *openGLRenderer) GenGeometry(vertices Vertices) Geometry {
	v := downcast[*verticesGL](vertices, r.backend)

	vao := r.gl.GenVertexArray()
	r.gl.BindVertexArray(vao)
	r.gl.BindBuffer(opengl.ARRAY_BUFFER, v.id)
	r.gl.EnableVertexAttribArray(0)
	r.gl.VertexAttribPointer(0, 2, opengl.FLOAT, false, vertexStride, 0)
	r.gl.EnableVertexAttribArray(1)
	r.gl.VertexAttribPointer(1, 2, opengl.FLOAT, false, vertexStride, uvOffset)
	r.gl.BindBuffer(opengl.ARRAY_BUFFER, 0)
	r.gl.BindVertexArray(0)
	r.boundVAO = 0

	return &geometryGL{glHandle: r.handle(), vao: vao, num: v.num}
}

func (r *openGLRenderer) GenMesh(geometry Geometry, material Material) *Mesh {
	downcast[*geometryGL](geometry, r.backend)
	return &Mesh{Geometry: geometry, Material: material}
}

func (r *openGLRenderer) GenBufferTexture() Texture {
	return &textureGL{glHandle: r.handle(), id: r.gl.GenTexture()}
}

func (r *openGLRenderer) GenSampler(texture Texture) Sampler {
	t := downcast[*textureGL](texture, r.backend)
	return &samplerGL{glHandle: r.handle(), texture: t, location: -1}
}

func (r *openGLRenderer) LoadTexture(img image.Image, texture Texture) {
	t := downcast[*textureGL](texture, r.backend)
	staging, err := common.NewTextureStagingData(img)
	if err != nil {
		log.Printf("[%s] load texture: %v", r.backend, err)
		return
	}

	r.gl.BindTexture(opengl.TEXTURE_2D, t.id)
	r.gl.TexImage2D(opengl.TEXTURE_2D, 0, opengl.RGBA, int32(staging.Width), int32(staging.Height),
		opengl.RGBA, opengl.UNSIGNED_BYTE, staging.Pixels)
	r.gl.TexParameteri(opengl.TEXTURE_2D, opengl.TEXTURE_WRAP_S, opengl.REPEAT)
	r.gl.TexParameteri(opengl.TEXTURE_2D, opengl.TEXTURE_WRAP_T, opengl.REPEAT)
	r.gl.TexParameteri(opengl.TEXTURE_2D, opengl.TEXTURE_MIN_FILTER, opengl.LINEAR_MIPMAP_LINEAR)
	r.gl.TexParameteri(opengl.TEXTURE_2D, opengl.TEXTURE_MAG_FILTER, opengl.LINEAR)
	r.gl.GenerateMipmap(opengl.TEXTURE_2D)
	t.width, t.height = staging.Width, staging.Height
}

func (r *openGLRenderer) UseProgram(program Program) {
	p := downcast[*programGL](program, r.backend)
	if r.boundProgram != int64(p.id) {
		r.gl.UseProgram(p.id)
		r.boundProgram = int64(p.id)
	}
}

func (r *openGLRenderer) bindVertexArray(g *geometryGL) {
	if r.boundVAO != int64(g.vao) {
		r.gl.BindVertexArray(g.vao)
		r.boundVAO = int64(g.vao)
	}
}

func (r *openGLRenderer) DrawGeometry(geometry Geometry) {
	g := downcast[*geometryGL](geometry, r.backend)
	r.bindVertexArray(g)
	r.gl.DrawArrays(opengl.TRIANGLES, 0, g.num)
}

func (r *openGLRenderer) DrawMesh(cam camera.Camera, mesh *Mesh) {
	applyCamera(cam, mesh.Material)

	g := downcast[*geometryGL](mesh.Geometry, r.backend)
	p := downcast[*programGL](mesh.Material.Program(), r.backend)
	r.UseProgram(p)
	r.bindVertexArray(g)

	for i := 0; i < mesh.Material.NumUniforms(); i++ {
		r.updateUniform(mesh.Material.Uniform(i))
	}
	for i := 0; i < mesh.Material.NumSamplers(); i++ {
		s := downcast[*samplerGL](mesh.Material.Sampler(i), r.backend)
		r.gl.Uniform1i(s.resolve(r.gl, p.id), int32(i))
		r.gl.ActiveTexture(opengl.TEXTURE0 + uint32(i))
		r.gl.BindTexture(opengl.TEXTURE_2D, s.texture.id)
	}

	r.gl.DrawArrays(opengl.TRIANGLES, 0, g.num)
}

// updateUniform uploads a program-bound uniform if its value changed since the last upload.
func (r *openGLRenderer) updateUniform(u uniform.Uniform) {
	ug, ok := u.(*uniformGL)
	if !ok {
		panic(fmt.Errorf("%T is not a %s uniform: %w", u, r.backend, ErrInvalidCast))
	}
	if !ug.modified {
		return
	}

	typ := ug.data.Type()
	switch typ.ElementType() {
	case uniform.Float32:
		v := ug.data.Float32s()
		switch typ.ContainerType() {
		case uniform.Single:
			r.gl.Uniform1fv(ug.location, v)
		case uniform.Vec2Container:
			r.gl.Uniform2fv(ug.location, v)
		case uniform.Vec3Container:
			r.gl.Uniform3fv(ug.location, v)
		case uniform.Vec4Container:
			r.gl.Uniform4fv(ug.location, v)
		case uniform.Mat2x2:
			r.gl.UniformMatrix2fv(ug.location, v)
		case uniform.Mat3x3:
			r.gl.UniformMatrix3fv(ug.location, v)
		case uniform.Mat4x4:
			r.gl.UniformMatrix4fv(ug.location, v)
		}
	case uniform.Int32:
		r.requireSingle(ug)
		r.gl.Uniform1i(ug.location, uniform.Get[int32](&ug.data))
	case uniform.Uint32:
		r.requireSingle(ug)
		r.gl.Uniform1ui(ug.location, uniform.Get[uint32](&ug.data))
	default:
		panic(fmt.Sprintf("%s: unsupported uniform %q of type %s", r.backend, ug.name, typ.ElementType()))
	}
	ug.modified = false
}

func (r *openGLRenderer) requireSingle(u *uniformGL) {
	if c := u.data.Type().ContainerType(); c != uniform.Single {
		panic(fmt.Sprintf("%s: unsupported uniform %q container %d", r.backend, u.name, c))
	}
}

func (r *openGLRenderer) ReadRenderBuffer() Image {
	w, h := uint32(r.surface.Width()), uint32(r.surface.Height())
	img := Image{Width: w, Height: h, Pitch: w * 4, Pixels: make([]byte, int(w)*int(h)*4)}
	r.gl.ReadPixels(0, 0, int32(w), int32(h), opengl.RGBA, opengl.UNSIGNED_BYTE, img.Pixels)
	flipRows(img.Pixels, int(img.Pitch), int(h))
	return img
}

// flipRows reverses row order in place. GL reads pixels bottom row first.
func flipRows(pixels []byte, pitch, height int) {
	tmp := make([]byte, pitch)
	for top, bottom := 0, height-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := pixels[top*pitch : (top+1)*pitch]
		b := pixels[bottom*pitch : (bottom+1)*pitch]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}

func (r *openGLRenderer) Resize(width, height int) {
	r.SetViewport([2]int32{0, 0}, [2]int32{int32(width), int32(height)})
}

// Destroy unbinds all state. The context itself is owned by the window.
func (r *openGLRenderer) Destroy() {
	r.gl.UseProgram(0)
	r.gl.BindVertexArray(0)
	r.boundProgram, r.boundVAO = -1, -1
	log.Printf("[%s] destroyed", r.backend)
}

func (r *openGLRenderer) handle() glHandle {
	return glHandle{gl: r.gl, backend: r.backend}
}

// glHandle is embedded by every OpenGL resource.
type glHandle struct {
	gl       opengl.Functions
	backend  RendererType
	released bool
}

func (h *glHandle) Backend() RendererType { return h.backend }

// release runs del once.
func (h *glHandle) release(del func()) {
	if h.released {
		return
	}
	h.released = true
	del()
}

type shaderGL struct {
	glHandle
	id uint32
}

func (s *shaderGL) Release() { s.release(func() { s.gl.DeleteShader(s.id) }) }

type programGL struct {
	glHandle
	id uint32
}

func (p *programGL) Release() { p.release(func() { p.gl.DeleteProgram(p.id) }) }

func (p *programGL) GetUniform(name string, data uniform.Data) uniform.Uniform {
	return &uniformGL{
		name:     uniform.NewName(name),
		data:     data,
		location: p.gl.GetUniformLocation(p.id, name),
		modified: true,
	}
}

// uniformGL is a uniform bound to a program location. It is uploaded on the next draw after any write.
type uniformGL struct {
	name     uniform.Name
	data     uniform.Data
	location int32
	modified bool
}

func (u *uniformGL) Name() uniform.Name { return u.name }

func (u *uniformGL) SetName(name string) { u.name.SetName(name) }

func (u *uniformGL) SetF32(v float32) {
	uniform.Set(&u.data, v)
	u.modified = true
}

func (u *uniformGL) GetF32() float32 { return uniform.Get[float32](&u.data) }

// Data marks the uniform modified, since the caller may write through the pointer.
func (u *uniformGL) Data() *uniform.Data {
	u.modified = true
	return &u.data
}

type uniformShaderGL struct {
	glHandle
	name     uniform.Name
	location int32
}

func (u *uniformShaderGL) Release() { u.release(func() {}) }

func (u *uniformShaderGL) Name() uniform.Name { return u.name }

type verticesGL struct {
	glHandle
	id  uint32
	num int32
}

func (v *verticesGL) Release() { v.release(func() { v.gl.DeleteBuffer(v.id) }) }

type geometryGL struct {
	glHandle
	vao uint32
	num int32
}

func (g *geometryGL) Release() { g.release(func() { g.gl.DeleteVertexArray(g.vao) }) }

type textureGL struct {
	glHandle
	id     uint32
	width  uint32
	height uint32
}

func (t *textureGL) Release() { t.release(func() { t.gl.DeleteTexture(t.id) }) }

type samplerGL struct {
	glHandle
	name     string
	texture  *textureGL
	location int32
	program  uint32
	resolved bool
}

func (s *samplerGL) Release() { s.release(func() {}) }

func (s *samplerGL) Name() string { return s.name }

func (s *samplerGL) SetName(name string) {
	s.name = name
	s.resolved = false
}

func (s *samplerGL) Texture() Texture { return s.texture }

// resolve looks up the sampler location in program, caching it until the program or name changes.
func (s *samplerGL) resolve(fns opengl.Functions, program uint32) int32 {
	if !s.resolved || s.program != program {
		s.location = fns.GetUniformLocation(program, s.name)
		s.program = program
		s.resolved = true
	}
	return s.location
}
