package renderer

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-rad/engine/renderer/uniform"
)

// Handle is implemented by every resource a Renderer creates.
type Handle interface {
	// Backend returns the API of the renderer that created the handle.
	//
	// Returns:
	//   - RendererType: the creating backend
	Backend() RendererType

	// Release frees the native resource. Calling it more than once is a no-op.
	Release()
}

// Shader is a compiled single-stage shader.
type Shader interface {
	Handle
}

// Program is a linked set of shaders ready for drawing.
type Program interface {
	Handle

	// GetUniform binds a named uniform of the program to an initial value.
	//
	// Parameters:
	//   - name: the uniform identifier in shader source
	//   - data: the initial value
	//
	// Returns:
	//   - uniform.Uniform: the program-bound uniform
	GetUniform(name string, data uniform.Data) uniform.Uniform
}

// Vertices is a GPU buffer of interleaved vertex data.
type Vertices interface {
	Handle
}

// Geometry describes how a vertex buffer is fed to the vertex stage.
type Geometry interface {
	Handle
}

// Texture is a GPU image.
type Texture interface {
	Handle
}

// Sampler binds a texture to a named shader slot.
type Sampler interface {
	Handle

	// Name returns the shader slot name.
	Name() string

	// SetName renames the shader slot.
	//
	// Parameters:
	//   - name: the new slot name
	SetName(name string)

	// Texture returns the sampled texture.
	Texture() Texture
}

// UniformShader is a uniform location resolved from a linked program.
type UniformShader interface {
	Handle

	// Name returns the uniform identifier.
	Name() uniform.Name
}

// Material is a program with a fixed, ordered set of uniforms and samplers.
type Material interface {
	// Program returns the program the material draws with.
	Program() Program

	// NumUniforms returns the number of uniforms.
	NumUniforms() int

	// Uniform returns the uniform at index i.
	//
	// Parameters:
	//   - i: index in [0, NumUniforms)
	//
	// Returns:
	//   - uniform.Uniform: the uniform
	Uniform(i int) uniform.Uniform

	// NumSamplers returns the number of samplers.
	NumSamplers() int

	// Sampler returns the sampler at index i.
	//
	// Parameters:
	//   - i: index in [0, NumSamplers)
	//
	// Returns:
	//   - Sampler: the sampler
	Sampler(i int) Sampler
}

// Mesh pairs a geometry with the material used to draw it.
type Mesh struct {
	Geometry Geometry
	Material Material
}

// Release frees the mesh geometry. The material is shared and released by its owner.
func (m *Mesh) Release() {
	if m.Geometry != nil {
		m.Geometry.Release()
	}
}

// Image is an RGBA8 pixel buffer read back from a render target.
type Image struct {
	Width  uint32
	Height uint32
	Pitch  uint32
	Pixels []byte
}

// downcast converts a handle to the concrete type of the given backend.
// A handle from another backend is a programming error and panics.
func downcast[T any](h Handle, want RendererType) T {
	if h == nil {
		panic(fmt.Errorf("nil %T handle passed to %s: %w", *new(T), want, ErrInvalidCast))
	}
	if h.Backend() != want {
		panic(fmt.Errorf("%s handle passed to %s: %w", h.Backend(), want, ErrInvalidCast))
	}
	v, ok := h.(T)
	if !ok {
		panic(fmt.Errorf("%T is not a %T: %w", h, *new(T), ErrInvalidCast))
	}
	return v
}
