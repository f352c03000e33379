// Package uniform describes shader uniform values independently of any graphics API.
// A uniform is a named, typed value; the type is expressed as an element type paired with a container shape.
package uniform

// ElementType is the scalar type of every component in a uniform value.
type ElementType uint8

const (
	Float16 ElementType = iota
	Float32
	Float64
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
)

var elementNames = [...]string{"f16", "f32", "f64", "i8", "i16", "i32", "i64", "u8", "u16", "u32", "u64"}

func (e ElementType) String() string {
	if int(e) < len(elementNames) {
		return elementNames[e]
	}
	return "unknown"
}

// ContainerType is the shape that holds the elements of a uniform value.
type ContainerType uint8

const (
	Single ContainerType = iota
	Vec2Container
	Vec3Container
	Vec4Container
	Mat2x2
	Mat3x3
	Mat4x4
)

var containerComponents = [...]uint16{1, 2, 3, 4, 4, 9, 16}

// Components returns the number of scalar components the container holds.
func (c ContainerType) Components() uint16 {
	if int(c) < len(containerComponents) {
		return containerComponents[c]
	}
	return 0
}

// Type identifies the element and container of a uniform value.
// It packs into exactly four bytes.
type Type struct {
	Element       uint8
	Container     uint8
	NumComponents uint16
}

// NewType builds a Type from its element and container, deriving the component count.
//
// Parameters:
//   - element: the scalar element type
//   - container: the container shape
//
// Returns:
//   - Type: the packed uniform type
func NewType(element ElementType, container ContainerType) Type {
	return Type{
		Element:       uint8(element),
		Container:     uint8(container),
		NumComponents: container.Components(),
	}
}

// ElementType returns the element of the type.
func (t Type) ElementType() ElementType { return ElementType(t.Element) }

// ContainerType returns the container of the type.
func (t Type) ContainerType() ContainerType { return ContainerType(t.Container) }

// Vec2 is a two component float32 vector.
type Vec2 [2]float32

// Vec3 is a three component float32 vector.
type Vec3 [3]float32

// Vec4 is a four component float32 vector.
type Vec4 [4]float32

// Mat2 is a column-major 2x2 float32 matrix.
type Mat2 [4]float32

// Mat3 is a column-major 3x3 float32 matrix.
type Mat3 [9]float32

// Mat4 is a column-major 4x4 float32 matrix.
type Mat4 [16]float32

// IdentityMat4 returns the 4x4 identity matrix.
func IdentityMat4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}
