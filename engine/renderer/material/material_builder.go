package material

import (
	"github.com/Carmen-Shannon/oxy-rad/engine/renderer"
	"github.com/Carmen-Shannon/oxy-rad/engine/renderer/uniform"
)

// MaterialBuilderOption is a function that configures a material instance during construction.
type MaterialBuilderOption func(*material)

// WithUniform is an option builder that binds a named uniform of the material's program.
//
// Parameters:
//   - name: the uniform identifier in shader source
//   - data: the initial value
//
// Returns:
//   - MaterialBuilderOption: a function that appends the uniform to a material
func WithUniform(name string, data uniform.Data) MaterialBuilderOption {
	return func(m *material) {
		m.uniforms = append(m.uniforms, m.program.GetUniform(name, data))
	}
}

// WithSampler is an option builder that binds a sampler to a named shader slot.
//
// Parameters:
//   - name: the sampler slot name; the sampler is renamed to it
//   - sampler: the sampler to bind
//
// Returns:
//   - MaterialBuilderOption: a function that appends the sampler to a material
func WithSampler(name string, sampler renderer.Sampler) MaterialBuilderOption {
	return func(m *material) {
		sampler.SetName(name)
		m.samplers = append(m.samplers, sampler)
	}
}
