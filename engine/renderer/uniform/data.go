package uniform

// Value enumerates the Go types a uniform can hold.
type Value interface {
	float32 | float64 |
		int8 | int16 | int32 | int64 |
		uint8 | uint16 | uint32 | uint64 |
		Vec2 | Vec3 | Vec4 | Mat2 | Mat3 | Mat4
}

// Data is a tagged uniform value. The tag always matches the stored payload.
type Data struct {
	typ   Type
	value any
}

// TypeOf returns the uniform Type describing the Go type T.
func TypeOf[T Value]() Type {
	var zero T
	return typeOfValue(zero)
}

func typeOfValue(v any) Type {
	switch v.(type) {
	case float32:
		return NewType(Float32, Single)
	case float64:
		return NewType(Float64, Single)
	case int8:
		return NewType(Int8, Single)
	case int16:
		return NewType(Int16, Single)
	case int32:
		return NewType(Int32, Single)
	case int64:
		return NewType(Int64, Single)
	case uint8:
		return NewType(Uint8, Single)
	case uint16:
		return NewType(Uint16, Single)
	case uint32:
		return NewType(Uint32, Single)
	case uint64:
		return NewType(Uint64, Single)
	case Vec2:
		return NewType(Float32, Vec2Container)
	case Vec3:
		return NewType(Float32, Vec3Container)
	case Vec4:
		return NewType(Float32, Vec4Container)
	case Mat2:
		return NewType(Float32, Mat2x2)
	case Mat3:
		return NewType(Float32, Mat3x3)
	case Mat4:
		return NewType(Float32, Mat4x4)
	}
	panic("Invalid cast")
}

// NewData wraps a value together with its type tag.
//
// Parameters:
//   - v: the initial value
//
// Returns:
//   - Data: the tagged value
func NewData[T Value](v T) Data {
	return Data{typ: typeOfValue(v), value: v}
}

// Type returns the type tag of the stored value.
func (d Data) Type() Type { return d.typ }

// Get reads the stored value as T. It panics with "Invalid cast" when T does not match the tag.
func Get[T Value](d *Data) T {
	v, ok := d.value.(T)
	if !ok || d.typ != TypeOf[T]() {
		panic("Invalid cast")
	}
	return v
}

// Set overwrites the stored value. It panics with "Invalid cast" when T does not match the tag.
func Set[T Value](d *Data, v T) {
	if d.typ != TypeOf[T]() {
		panic("Invalid cast")
	}
	d.value = v
}

// Float32s returns the components of a Float32 value as a slice, in column-major order for matrices.
// It panics with "Invalid cast" for any non-Float32 element type.
func (d *Data) Float32s() []float32 {
	switch v := d.value.(type) {
	case float32:
		return []float32{v}
	case Vec2:
		return v[:]
	case Vec3:
		return v[:]
	case Vec4:
		return v[:]
	case Mat2:
		return v[:]
	case Mat3:
		return v[:]
	case Mat4:
		return v[:]
	}
	panic("Invalid cast")
}
