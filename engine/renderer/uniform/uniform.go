package uniform

// Uniform is a named, typed value bound to a shader program.
type Uniform interface {
	// Name returns the uniform identifier.
	//
	// Returns:
	//   - Name: the hashed identifier
	Name() Name

	// SetName renames the uniform.
	//
	// Parameters:
	//   - name: the new identifier
	SetName(name string)

	// SetF32 overwrites a Float32 Single value. It panics if the stored type differs.
	//
	// Parameters:
	//   - v: the new value
	SetF32(v float32)

	// GetF32 reads a Float32 Single value. It panics if the stored type differs.
	//
	// Returns:
	//   - float32: the stored value
	GetF32() float32

	// Data returns the tagged value for typed access through Get and Set.
	//
	// Returns:
	//   - *Data: the stored value
	Data() *Data
}

// UniformMaterial is an API-independent uniform held by a material before it is bound to a program.
type UniformMaterial struct {
	name Name
	data Data
}

var _ Uniform = &UniformMaterial{}

// NewUniformMaterial creates a named material uniform.
//
// Parameters:
//   - name: the uniform identifier
//   - data: the initial value
//
// Returns:
//   - *UniformMaterial: the uniform
func NewUniformMaterial(name string, data Data) *UniformMaterial {
	return &UniformMaterial{name: NewName(name), data: data}
}

func (u *UniformMaterial) Name() Name { return u.name }

func (u *UniformMaterial) SetName(name string) { u.name.SetName(name) }

func (u *UniformMaterial) SetF32(v float32) { Set(&u.data, v) }

func (u *UniformMaterial) GetF32() float32 { return Get[float32](&u.data) }

func (u *UniformMaterial) Data() *Data { return &u.data }
