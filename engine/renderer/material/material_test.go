package material

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-rad/engine/renderer"
	"github.com/Carmen-Shannon/oxy-rad/engine/renderer/uniform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProgram struct {
	bound []string
}

func (p *fakeProgram) Backend() renderer.RendererType { return renderer.OpenGL }
func (p *fakeProgram) Release()                       {}

func (p *fakeProgram) GetUniform(name string, data uniform.Data) uniform.Uniform {
	p.bound = append(p.bound, name)
	return uniform.NewUniformMaterial(name, data)
}

type fakeSampler struct {
	name string
}

func (s *fakeSampler) Backend() renderer.RendererType { return renderer.OpenGL }
func (s *fakeSampler) Release()                       {}
func (s *fakeSampler) Name() string                   { return s.name }
func (s *fakeSampler) SetName(name string)            { s.name = name }
func (s *fakeSampler) Texture() renderer.Texture      { return nil }

func TestNewMaterialBasic(t *testing.T) {
	program := &fakeProgram{}
	sampler := &fakeSampler{}

	m := NewMaterialBasic(program, sampler)

	assert.Same(t, program, m.Program())
	require.Equal(t, 1, m.NumUniforms())
	require.Equal(t, 1, m.NumSamplers())

	mvp := m.Uniform(0)
	assert.Equal(t, "u_mvp", mvp.Name().String())
	assert.Equal(t, uniform.TypeOf[uniform.Mat4](), mvp.Data().Type())
	assert.Equal(t, uniform.IdentityMat4(), uniform.Get[uniform.Mat4](mvp.Data()))

	assert.Equal(t, "u_color", m.Sampler(0).Name())
	assert.Equal(t, []string{"u_mvp"}, program.bound)
}

func TestNewMaterialPreservesOrder(t *testing.T) {
	program := &fakeProgram{}
	a, b := &fakeSampler{name: "a"}, &fakeSampler{name: "b"}

	m := NewMaterial(program,
		WithUniform("u_time", uniform.NewData(float32(0))),
		WithSampler("u_first", a),
		WithUniform("u_tint", uniform.NewData(uniform.Vec4{1, 1, 1, 1})),
		WithSampler("u_second", b),
	)

	require.Equal(t, 2, m.NumUniforms())
	assert.Equal(t, "u_time", m.Uniform(0).Name().String())
	assert.Equal(t, "u_tint", m.Uniform(1).Name().String())

	require.Equal(t, 2, m.NumSamplers())
	assert.Equal(t, "u_first", m.Sampler(0).Name())
	assert.Equal(t, "u_second", m.Sampler(1).Name())
}

func TestNewMaterialEmpty(t *testing.T) {
	m := NewMaterial(&fakeProgram{})
	assert.Zero(t, m.NumUniforms())
	assert.Zero(t, m.NumSamplers())
}
