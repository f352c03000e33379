package renderer

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"github.com/Carmen-Shannon/oxy-rad/engine/camera"
	"github.com/Carmen-Shannon/oxy-rad/engine/renderer/opengl"
	"github.com/Carmen-Shannon/oxy-rad/engine/renderer/uniform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGL records calls and emulates a single-colour framebuffer.
type fakeGL struct {
	calls     []string
	nextID    uint32
	clear     [4]float32
	pixel     [4]byte
	compileOK bool
	linkOK    bool
	locations map[string]int32
}

var _ opengl.Functions = &fakeGL{}

func newFakeGL() *fakeGL {
	return &fakeGL{compileOK: true, linkOK: true, locations: map[string]int32{}}
}

func (f *fakeGL) record(format string, args ...any) { f.calls = append(f.calls, fmt.Sprintf(format, args...)) }

func (f *fakeGL) gen() uint32 {
	f.nextID++
	return f.nextID
}

func (f *fakeGL) count(call string) int {
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

func toByte(c float32) byte {
	switch {
	case c <= 0:
		return 0
	case c >= 1:
		return 255
	}
	return byte(c*255 + 0.5)
}

func (f *fakeGL) ClearColor(r, g, b, a float32) {
	f.clear = [4]float32{r, g, b, a}
	f.record("ClearColor")
}
func (f *fakeGL) ClearDepth(depth float32) { f.record("ClearDepth %v", depth) }
func (f *fakeGL) ClearStencil(s int32)     { f.record("ClearStencil %d", s) }
func (f *fakeGL) Clear(mask uint32) {
	if mask&opengl.COLOR_BUFFER_BIT != 0 {
		f.pixel = [4]byte{toByte(f.clear[0]), toByte(f.clear[1]), toByte(f.clear[2]), toByte(f.clear[3])}
	}
	f.record("Clear %#x", mask)
}
func (f *fakeGL) Viewport(x, y, w, h int32) { f.record("Viewport %d %d %d %d", x, y, w, h) }

func (f *fakeGL) CreateShader(shaderType uint32) uint32     { return f.gen() }
func (f *fakeGL) ShaderSource(shader uint32, source string) { f.record("ShaderSource %d", shader) }
func (f *fakeGL) CompileShader(shader uint32)               { f.record("CompileShader %d", shader) }
func (f *fakeGL) GetShaderi(shader, pname uint32) int32 {
	if f.compileOK {
		return 1
	}
	return 0
}
func (f *fakeGL) GetShaderInfoLog(shader uint32) string { return "0:1: syntax error" }
func (f *fakeGL) DeleteShader(shader uint32)            { f.record("DeleteShader %d", shader) }

func (f *fakeGL) CreateProgram() uint32               { return f.gen() }
func (f *fakeGL) AttachShader(program, shader uint32) { f.record("AttachShader %d %d", program, shader) }
func (f *fakeGL) DetachShader(program, shader uint32) { f.record("DetachShader %d %d", program, shader) }
func (f *fakeGL) LinkProgram(program uint32)          { f.record("LinkProgram %d", program) }
func (f *fakeGL) GetProgrami(program, pname uint32) int32 {
	if f.linkOK {
		return 1
	}
	return 0
}
func (f *fakeGL) GetProgramInfoLog(program uint32) string { return "link error" }
func (f *fakeGL) DeleteProgram(program uint32)            { f.record("DeleteProgram %d", program) }
func (f *fakeGL) UseProgram(program uint32)               { f.record("UseProgram %d", program) }

func (f *fakeGL) GetUniformLocation(program uint32, name string) int32 {
	f.record("GetUniformLocation %d %s", program, name)
	if loc, ok := f.locations[name]; ok {
		return loc
	}
	return -1
}
func (f *fakeGL) Uniform1fv(loc int32, v []float32)       { f.record("Uniform1fv %d %v", loc, v) }
func (f *fakeGL) Uniform2fv(loc int32, v []float32)       { f.record("Uniform2fv %d %v", loc, v) }
func (f *fakeGL) Uniform3fv(loc int32, v []float32)       { f.record("Uniform3fv %d %v", loc, v) }
func (f *fakeGL) Uniform4fv(loc int32, v []float32)       { f.record("Uniform4fv %d %v", loc, v) }
func (f *fakeGL) UniformMatrix2fv(loc int32, v []float32) { f.record("UniformMatrix2fv %d %v", loc, v) }
func (f *fakeGL) UniformMatrix3fv(loc int32, v []float32) { f.record("UniformMatrix3fv %d %v", loc, v) }
func (f *fakeGL) UniformMatrix4fv(loc int32, v []float32) { f.record("UniformMatrix4fv %d", loc) }
func (f *fakeGL) Uniform1i(loc, v int32)                  { f.record("Uniform1i %d %d", loc, v) }
func (f *fakeGL) Uniform1ui(loc int32, v uint32)          { f.record("Uniform1ui %d %d", loc, v) }

func (f *fakeGL) GenBuffer() uint32                { return f.gen() }
func (f *fakeGL) BindBuffer(target, buffer uint32) { f.record("BindBuffer %d", buffer) }
func (f *fakeGL) BufferData(target uint32, data []float32, usage uint32) {
	f.record("BufferData %d", len(data))
}
func (f *fakeGL) DeleteBuffer(buffer uint32) { f.record("DeleteBuffer %d", buffer) }

func (f *fakeGL) GenVertexArray() uint32               { return f.gen() }
func (f *fakeGL) BindVertexArray(vao uint32)           { f.record("BindVertexArray %d", vao) }
func (f *fakeGL) DeleteVertexArray(vao uint32)         { f.record("DeleteVertexArray %d", vao) }
func (f *fakeGL) EnableVertexAttribArray(index uint32) { f.record("EnableVertexAttribArray %d", index) }
func (f *fakeGL) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	f.record("VertexAttribPointer %d %d %d %d", index, size, stride, offset)
}

func (f *fakeGL) GenTexture() uint32                 { return f.gen() }
func (f *fakeGL) BindTexture(target, texture uint32) { f.record("BindTexture %d", texture) }
func (f *fakeGL) DeleteTexture(texture uint32)       { f.record("DeleteTexture %d", texture) }
func (f *fakeGL) ActiveTexture(unit uint32)          { f.record("ActiveTexture %d", unit-opengl.TEXTURE0) }
func (f *fakeGL) TexImage2D(target uint32, level, internalFormat, width, height int32, format, xtype uint32, pixels []byte) {
	f.record("TexImage2D %dx%d %d", width, height, len(pixels))
}
func (f *fakeGL) TexParameteri(target, pname uint32, param int32) { f.record("TexParameteri %#x %#x", pname, param) }
func (f *fakeGL) GenerateMipmap(target uint32)                    { f.record("GenerateMipmap") }

func (f *fakeGL) DrawArrays(mode uint32, first, count int32) { f.record("DrawArrays %d %d", first, count) }
func (f *fakeGL) ReadPixels(x, y, width, height int32, format, xtype uint32, pixels []byte) {
	for i := 0; i+3 < len(pixels); i += 4 {
		copy(pixels[i:i+4], f.pixel[:])
	}
}
func (f *fakeGL) GetString(name uint32) string { return "fake" }

type fakeGLWindow struct {
	width, height int
	swaps         int
	interval      int
}

func (w *fakeGLWindow) Width() int                   { return w.width }
func (w *fakeGLWindow) Height() int                  { return w.height }
func (w *fakeGLWindow) SwapBuffers()                 { w.swaps++ }
func (w *fakeGLWindow) SetSwapInterval(interval int) { w.interval = interval }

func newTestGLRenderer(es bool) (*openGLRenderer, *fakeGL, *fakeGLWindow) {
	fns := newFakeGL()
	win := &fakeGLWindow{width: 8, height: 4}
	return newOpenGLRendererWithFunctions(fns, win, es, 3, 3), fns, win
}

func meanSquaredError(pixels []byte, want [4]byte) float64 {
	var sum float64
	for i := 0; i+3 < len(pixels); i += 4 {
		for c := 0; c < 4; c++ {
			d := float64(pixels[i+c]) - float64(want[c])
			sum += d * d
		}
	}
	return sum / float64(len(pixels))
}

func TestOpenGLClearColorFidelity(t *testing.T) {
	want := [4]byte{191, 127, 63, 255}
	for _, v := range []glVariant{glDesktop, glES} {
		for major := uint32(1); int(major) < len(v.maxMinor); major++ {
			for minor := uint32(0); minor <= v.maxMinor[major]; minor++ {
				t.Run(fmt.Sprintf("%s %d.%d", v.name, major, minor), func(t *testing.T) {
					fns := newFakeGL()
					win := &fakeGLWindow{width: 16, height: 16}
					r := newOpenGLRendererWithFunctions(fns, win, v.name == glES.name, major, minor)

					r.SetClearColor([4]float32{191.0 / 255, 127.0 / 255, 63.0 / 255, 1})
					r.BeginFrame(ClearColor)
					r.EndFrame()
					img := r.ReadRenderBuffer()

					assert.Equal(t, uint32(16), img.Width)
					assert.Equal(t, uint32(16*4), img.Pitch)
					assert.LessOrEqual(t, meanSquaredError(img.Pixels, want), 1.0)
					assert.Equal(t, 1, win.swaps)
				})
			}
		}
	}
}

func TestOpenGLNameAndType(t *testing.T) {
	r, _, _ := newTestGLRenderer(false)
	assert.Equal(t, "OpenGL 3.3", r.Name())
	assert.Equal(t, OpenGL, r.Type())

	es, _, _ := newTestGLRenderer(true)
	assert.Equal(t, "OpenGLES 3.3", es.Name())
	assert.Equal(t, OpenGLES, es.Type())
}

func TestOpenGLClearState(t *testing.T) {
	r, fns, _ := newTestGLRenderer(false)

	assert.Equal(t, [4]float32{}, r.ClearColor())
	assert.Equal(t, float32(1), r.ClearDepth())
	assert.Equal(t, int32(0), r.ClearStencil())
	assert.Equal(t, [2]int32{8, 4}, r.ViewportSize())

	r.SetClearDepth(0.5)
	r.SetClearStencil(3)
	r.SetViewport([2]int32{1, 2}, [2]int32{3, 4})
	assert.Equal(t, float32(0.5), r.ClearDepth())
	assert.Equal(t, int32(3), r.ClearStencil())
	assert.Equal(t, [2]int32{1, 2}, r.ViewportPos())
	assert.Equal(t, [2]int32{3, 4}, r.ViewportSize())

	r.Clear(ClearAll)
	r.Clear(ClearNone)
	assert.Equal(t, []string{
		"ClearDepth 0.5",
		"ClearStencil 3",
		"Viewport 1 2 3 4",
		fmt.Sprintf("Clear %#x", opengl.COLOR_BUFFER_BIT|opengl.DEPTH_BUFFER_BIT|opengl.STENCIL_BUFFER_BIT),
	}, fns.calls)
}

func TestOpenGLShaderCompileFailure(t *testing.T) {
	r, fns, _ := newTestGLRenderer(false)
	fns.compileOK = false

	s, err := r.LoadShader(ShaderVertex, []byte("void main() {"))
	require.ErrorIs(t, err, ErrShaderCompile)
	assert.Nil(t, s)
	assert.Equal(t, 1, fns.count("DeleteShader 1"))
}

func TestOpenGLProgramLinkFailure(t *testing.T) {
	r, fns, _ := newTestGLRenderer(false)
	vs, err := r.LoadShader(ShaderVertex, []byte("v"))
	require.NoError(t, err)
	fs, err := r.LoadShader(ShaderFragment, []byte("f"))
	require.NoError(t, err)

	fns.linkOK = false
	p, err := r.LoadProgramVertFrag(vs, fs)
	require.ErrorIs(t, err, ErrShaderCompile)
	assert.Nil(t, p)
	assert.Equal(t, 1, fns.count("DeleteProgram 3"))
	assert.Equal(t, 1, fns.count("DetachShader 3 1"))
}

func TestOpenGLUseProgramCache(t *testing.T) {
	r, fns, _ := newTestGLRenderer(false)
	vs, _ := r.LoadShader(ShaderVertex, []byte("v"))
	fs, _ := r.LoadShader(ShaderFragment, []byte("f"))
	p, err := r.LoadProgramVertFrag(vs, fs)
	require.NoError(t, err)

	r.UseProgram(p)
	r.UseProgram(p)
	assert.Equal(t, 1, fns.count("UseProgram 3"))
}

func TestOpenGLGeometryLayout(t *testing.T) {
	r, fns, _ := newTestGLRenderer(false)
	v := r.GenBufferVertex(make([]float32, 6*4))
	g := r.GenGeometry(v)

	assert.Equal(t, int32(6), v.(*verticesGL).num)
	assert.Equal(t, int32(6), g.(*geometryGL).num)
	assert.Equal(t, 1, fns.count("VertexAttribPointer 0 2 16 0"))
	assert.Equal(t, 1, fns.count("VertexAttribPointer 1 2 16 8"))

	r.DrawGeometry(g)
	r.DrawGeometry(g)
	// once while recording the layout, once for the first draw
	assert.Equal(t, 2, fns.count("BindVertexArray 2"))
	assert.Equal(t, 2, fns.count("DrawArrays 0 6"))

	g.Release()
	g.Release()
	assert.Equal(t, 1, fns.count("DeleteVertexArray 2"))
}

func TestOpenGLLoadTexture(t *testing.T) {
	r, fns, _ := newTestGLRenderer(false)
	tex := r.GenBufferTexture()

	img := image.NewGray(image.Rect(0, 0, 2, 3))
	img.Set(1, 1, color.Gray{Y: 200})
	r.LoadTexture(img, tex)

	assert.Equal(t, 1, fns.count("TexImage2D 2x3 24"))
	assert.Equal(t, 1, fns.count(fmt.Sprintf("TexParameteri %#x %#x", opengl.TEXTURE_MIN_FILTER, opengl.LINEAR_MIPMAP_LINEAR)))
	assert.Equal(t, 1, fns.count("GenerateMipmap"))
	assert.Equal(t, uint32(2), tex.(*textureGL).width)
}

// testMaterial is a minimal material for draw tests.
type testMaterial struct {
	program  Program
	uniforms []uniform.Uniform
	samplers []Sampler
}

func (m *testMaterial) Program() Program              { return m.program }
func (m *testMaterial) NumUniforms() int              { return len(m.uniforms) }
func (m *testMaterial) Uniform(i int) uniform.Uniform { return m.uniforms[i] }
func (m *testMaterial) NumSamplers() int              { return len(m.samplers) }
func (m *testMaterial) Sampler(i int) Sampler         { return m.samplers[i] }

func TestOpenGLDrawMesh(t *testing.T) {
	r, fns, _ := newTestGLRenderer(false)
	fns.locations["u_mvp"] = 4
	fns.locations["u_time"] = 5
	fns.locations["u_color"] = 6

	vs, _ := r.LoadShader(ShaderVertex, []byte("v"))
	fs, _ := r.LoadShader(ShaderFragment, []byte("f"))
	p, err := r.LoadProgramVertFrag(vs, fs)
	require.NoError(t, err)

	sampler := r.GenSampler(r.GenBufferTexture())
	sampler.SetName("u_color")
	time := p.GetUniform("u_time", uniform.NewData(float32(0.25)))
	mat := &testMaterial{
		program:  p,
		uniforms: []uniform.Uniform{p.GetUniform("u_mvp", uniform.NewData(uniform.IdentityMat4())), time},
		samplers: []Sampler{sampler},
	}
	mesh := r.GenMesh(r.GenGeometry(r.GenBufferVertex(make([]float32, 12))), mat)

	cam := camera.NewCamera()
	r.DrawMesh(cam, mesh)
	assert.Equal(t, 1, fns.count("UniformMatrix4fv 4"))
	assert.Equal(t, 1, fns.count("Uniform1fv 5 [0.25]"))
	assert.Equal(t, 1, fns.count("Uniform1i 6 0"))
	assert.Equal(t, 1, fns.count("ActiveTexture 0"))
	assert.Equal(t, 1, fns.count("DrawArrays 0 3"))

	// unchanged uniforms are not uploaded again; the camera always rewrites u_mvp
	r.DrawMesh(cam, mesh)
	assert.Equal(t, 2, fns.count("UniformMatrix4fv 4"))
	assert.Equal(t, 1, fns.count("Uniform1fv 5 [0.25]"))

	time.SetF32(0.5)
	r.DrawMesh(nil, mesh)
	assert.Equal(t, 1, fns.count("Uniform1fv 5 [0.5]"))
	assert.Equal(t, 2, fns.count("UniformMatrix4fv 4"))
	assert.Equal(t, 1, fns.count("GetUniformLocation 3 u_color"))
}

func TestOpenGLIntegerUniforms(t *testing.T) {
	r, fns, _ := newTestGLRenderer(false)
	fns.locations["u_i"] = 1
	fns.locations["u_u"] = 2
	p := &programGL{glHandle: r.handle(), id: 9}

	r.updateUniform(p.GetUniform("u_i", uniform.NewData(int32(-7))))
	r.updateUniform(p.GetUniform("u_u", uniform.NewData(uint32(7))))
	assert.Equal(t, 1, fns.count("Uniform1i 1 -7"))
	assert.Equal(t, 1, fns.count("Uniform1ui 2 7"))

	assert.Panics(t, func() {
		r.updateUniform(p.GetUniform("u_d", uniform.NewData(float64(1))))
	})
	assert.Panics(t, func() {
		r.updateUniform(uniform.NewUniformMaterial("u_m", uniform.NewData(float32(1))))
	})
}

func TestOpenGLCrossBackendHandlePanics(t *testing.T) {
	gl, _, _ := newTestGLRenderer(false)
	es, _, _ := newTestGLRenderer(true)

	tex := es.GenBufferTexture()
	assert.PanicsWithError(t, "OpenGLES handle passed to OpenGL: invalid cast", func() {
		gl.GenSampler(tex)
	})
}

func TestOpenGLReadRenderBufferFlipsRows(t *testing.T) {
	pixels := []byte{1, 1, 2, 2, 3, 3}
	flipRows(pixels, 2, 3)
	assert.Equal(t, []byte{3, 3, 2, 2, 1, 1}, pixels)
}

func TestOpenGLResize(t *testing.T) {
	r, fns, _ := newTestGLRenderer(false)
	r.Resize(640, 480)
	assert.Equal(t, [2]int32{640, 480}, r.ViewportSize())
	assert.Equal(t, 1, fns.count("Viewport 0 0 640 480"))
}
