package material

import (
	"github.com/Carmen-Shannon/oxy-rad/engine/renderer"
	"github.com/Carmen-Shannon/oxy-rad/engine/renderer/uniform"
)

// material is the implementation of renderer.Material.
type material struct {
	program  renderer.Program
	uniforms []uniform.Uniform
	samplers []renderer.Sampler
}

var _ renderer.Material = &material{}

// NewMaterial creates a material drawing with program. Uniforms and samplers are added by options
// in the order given and cannot be changed afterwards.
//
// Parameters:
//   - program: the linked program the material draws with
//   - options: functional options adding uniforms and samplers
//
// Returns:
//   - renderer.Material: the material
func NewMaterial(program renderer.Program, options ...MaterialBuilderOption) renderer.Material {
	m := &material{program: program}
	for _, opt := range options {
		opt(m)
	}
	return m
}

// NewMaterialBasic creates the basic textured material: a "u_mvp" Mat4 uniform initialised to identity
// and one sampler bound to the "u_color" slot.
//
// Parameters:
//   - program: the linked program the material draws with
//   - sampler: the sampler to bind; it is renamed to "u_color"
//
// Returns:
//   - renderer.Material: the material
func NewMaterialBasic(program renderer.Program, sampler renderer.Sampler) renderer.Material {
	return NewMaterial(program,
		WithUniform("u_mvp", uniform.NewData(uniform.IdentityMat4())),
		WithSampler("u_color", sampler),
	)
}

func (m *material) Program() renderer.Program { return m.program }

func (m *material) NumUniforms() int { return len(m.uniforms) }

func (m *material) Uniform(i int) uniform.Uniform { return m.uniforms[i] }

func (m *material) NumSamplers() int { return len(m.samplers) }

func (m *material) Sampler(i int) renderer.Sampler { return m.samplers[i] }
