package assets

import (
	"encoding/binary"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-rad/engine/renderer"
)

func spirvWords(words ...uint32) []byte {
	b := make([]byte, 4*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint32(b[i*4:], w)
	}
	return b
}

func TestShaderPath(t *testing.T) {
	tests := []struct {
		name     string
		rt       renderer.RendererType
		stage    renderer.ShaderType
		expected string
	}{
		{"gl vertex", renderer.OpenGL, renderer.ShaderVertex, "gl/basic.vert"},
		{"gles fragment", renderer.OpenGLES, renderer.ShaderFragment, "gles/basic.frag"},
		{"vulkan fragment", renderer.Vulkan, renderer.ShaderFragment, "spirv/basic.frag.spv"},
		{"metal vertex", renderer.Metal, renderer.ShaderVertex, "wgsl/basic.vert.wgsl"},
		{"directx compute", renderer.DirectX, renderer.ShaderCompute, "hlsl/basic.comp.hlsl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ShaderPath(tt.rt, "basic", tt.stage)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p)

			rt, name, stage, ok := ParseShaderPath(p)
			require.True(t, ok)
			assert.Equal(t, tt.rt, rt)
			assert.Equal(t, "basic", name)
			assert.Equal(t, tt.stage, stage)
		})
	}

	_, err := ShaderPath(renderer.RendererType(42), "basic", renderer.ShaderVertex)
	assert.ErrorIs(t, err, ErrNoShaderLayout)
}

func TestParseShaderPathRejectsForeignFiles(t *testing.T) {
	for _, p := range []string{
		"basic.vert",
		"gl/basic.txt",
		"gl/sub/basic.vert",
		"spirv/basic.vert",
		"wgsl/.vert.wgsl",
		"textures/basic.vert",
	} {
		_, _, _, ok := ParseShaderPath(p)
		assert.False(t, ok, p)
	}
}

func TestValidateSPIRV(t *testing.T) {
	assert.NoError(t, ValidateSPIRV(spirvWords(spirvMagic, 0x00010000)))

	be := make([]byte, 4)
	binary.BigEndian.PutUint32(be, spirvMagic)
	assert.NoError(t, ValidateSPIRV(be))

	assert.ErrorIs(t, ValidateSPIRV(nil), ErrInvalidSPIRV)
	assert.ErrorIs(t, ValidateSPIRV(append(spirvWords(spirvMagic), 0)), ErrInvalidSPIRV)
	assert.ErrorIs(t, ValidateSPIRV(spirvWords(0xdeadbeef)), ErrInvalidSPIRV)
}

func TestReadShader(t *testing.T) {
	fsys := fstest.MapFS{
		"shaders/gl/basic.vert":        {Data: []byte("#version 330 core\nvoid main() {}\n")},
		"shaders/gl/empty.frag":        {Data: []byte{}},
		"shaders/spirv/basic.vert.spv": {Data: spirvWords(spirvMagic, 1, 2)},
		"shaders/spirv/torn.vert.spv":  {Data: []byte{0x03, 0x02, 0x23, 0x07, 0x00}},
		"custom/gles/basic.vert":       {Data: []byte("#version 300 es\n")},
	}
	l := NewLoader(fsys, WithWorkers(1))

	src, err := l.ReadShader(renderer.OpenGL, "basic", renderer.ShaderVertex)
	require.NoError(t, err)
	assert.Contains(t, string(src), "#version 330")

	_, err = l.ReadShader(renderer.OpenGL, "empty", renderer.ShaderFragment)
	assert.ErrorIs(t, err, ErrEmptyShader)

	_, err = l.ReadShader(renderer.OpenGL, "missing", renderer.ShaderVertex)
	assert.Error(t, err)

	code, err := l.ReadShader(renderer.Vulkan, "basic", renderer.ShaderVertex)
	require.NoError(t, err)
	assert.Len(t, code, 12)

	_, err = l.ReadShader(renderer.Vulkan, "torn", renderer.ShaderVertex)
	assert.ErrorIs(t, err, ErrInvalidSPIRV)

	custom := NewLoader(fsys, WithShaderRoot("custom/"))
	src, err = custom.ReadShader(renderer.OpenGLES, "basic", renderer.ShaderVertex)
	require.NoError(t, err)
	assert.Contains(t, string(src), "300 es")
}

// stubRenderer records the stages it compiles; every other Renderer method is unused.
type stubRenderer struct {
	renderer.Renderer

	rendererType renderer.RendererType
	compiled     []renderer.ShaderType
	linkErr      error
}

type stubShader struct {
	stage    renderer.ShaderType
	released bool
}

func (s *stubShader) Backend() renderer.RendererType { return renderer.OpenGL }
func (s *stubShader) Release()                       { s.released = true }

type stubProgram struct {
	renderer.Program

	vert, frag renderer.Shader
}

func (r *stubRenderer) Type() renderer.RendererType { return r.rendererType }

func (r *stubRenderer) LoadShader(stage renderer.ShaderType, source []byte) (renderer.Shader, error) {
	r.compiled = append(r.compiled, stage)
	return &stubShader{stage: stage}, nil
}

func (r *stubRenderer) LoadProgramVertFrag(vert, frag renderer.Shader) (renderer.Program, error) {
	if r.linkErr != nil {
		return nil, r.linkErr
	}
	return &stubProgram{vert: vert, frag: frag}, nil
}

func TestLoadProgram(t *testing.T) {
	fsys := fstest.MapFS{
		"shaders/gl/basic.vert": {Data: []byte("v")},
		"shaders/gl/basic.frag": {Data: []byte("f")},
		"shaders/gl/half.vert":  {Data: []byte("v")},
	}
	l := NewLoader(fsys)

	r := &stubRenderer{rendererType: renderer.OpenGL}
	program, err := l.LoadProgram(r, "basic")
	require.NoError(t, err)
	require.NotNil(t, program)
	assert.Equal(t, []renderer.ShaderType{renderer.ShaderVertex, renderer.ShaderFragment}, r.compiled)

	_, err = l.LoadProgram(r, "half")
	assert.Error(t, err)

	r = &stubRenderer{rendererType: renderer.OpenGL, linkErr: renderer.ErrShaderCompile}
	_, err = l.LoadProgram(r, "basic")
	assert.ErrorIs(t, err, renderer.ErrShaderCompile)
}
