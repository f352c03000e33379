package common

import (
	"unsafe"

	"github.com/chewxy/math32"
)

// Vec2 is a two component float32 vector.
type Vec2 = [2]float32

// Vec3 is a three component float32 vector.
type Vec3 = [3]float32

// Vec4 is a four component float32 vector, also used for RGBA colors.
type Vec4 = [4]float32

// Mat4 is a 4x4 float32 matrix stored in column-major order.
type Mat4 = [16]float32

// Identity resets a 4x4 matrix (flat slice) to the identity matrix.
// The matrix is stored in column-major order.
//
// Parameters:
//   - m: destination slice (must be at least 16 elements)
func Identity(m []float32) {
	for i := range m {
		m[i] = 0
	}
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
}

// IdentityMat4 returns a new identity matrix.
func IdentityMat4() Mat4 {
	var m Mat4
	Identity(m[:])
	return m
}

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	totalBytes := int(size) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), totalBytes)
}

// Mul4 multiplies two 4x4 matrices and stores the result in out.
// All matrices are stored in column-major order.
// Result: out = a * b
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - a: left-hand matrix (16 elements)
//   - b: right-hand matrix (16 elements)
func Mul4(out, a, b []float32) {
	var buf [16]float32
	for i := 0; i < 4; i++ { // column of B
		for j := 0; j < 4; j++ { // row of A
			sum := float32(0)
			for k := 0; k < 4; k++ {
				sum += a[k*4+j] * b[i*4+k]
			}
			buf[i*4+j] = sum
		}
	}
	copy(out, buf[:])
}

// PerspectiveRHGL creates a right-handed perspective projection matrix with an OpenGL
// clip space depth range of [-1, 1].
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
func PerspectiveRHGL(out []float32, fovY, aspect, near, far float32) {
	f := 1.0 / math32.Tan(fovY/2.0)
	rangeInv := 1.0 / (near - far)
	Identity(out)

	out[0] = f / aspect
	out[5] = f
	out[10] = (near + far) * rangeInv
	out[11] = -1.0
	out[14] = 2.0 * near * far * rangeInv
	out[15] = 0.0
}

// OrthographicRHGL creates a right-handed orthographic projection matrix with an OpenGL
// clip space depth range of [-1, 1].
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - left, right: horizontal extents of the view volume
//   - bottom, top: vertical extents of the view volume
//   - near, far: depth extents of the view volume
func OrthographicRHGL(out []float32, left, right, bottom, top, near, far float32) {
	rcpWidth := 1.0 / (right - left)
	rcpHeight := 1.0 / (top - bottom)
	rcpDepth := 1.0 / (near - far)
	Identity(out)

	out[0] = 2.0 * rcpWidth
	out[5] = 2.0 * rcpHeight
	out[10] = 2.0 * rcpDepth
	out[12] = -(left + right) * rcpWidth
	out[13] = -(top + bottom) * rcpHeight
	out[14] = (near + far) * rcpDepth
}

// LookAtRH creates a right-handed view matrix that positions and orients the camera.
// The resulting matrix transforms world coordinates to view/camera space.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - eye: camera position in world space
//   - center: target point the camera looks at
//   - up: up vector defining camera orientation (typically 0,1,0)
func LookAtRH(out []float32, eye, center, up Vec3) {
	// forward points from the eye toward the target
	f := normalize3(Vec3{center[0] - eye[0], center[1] - eye[1], center[2] - eye[2]})
	s := normalize3(cross3(f, up))
	u := cross3(s, f)

	out[0], out[4], out[8], out[12] = s[0], s[1], s[2], -dot3(s, eye)
	out[1], out[5], out[9], out[13] = u[0], u[1], u[2], -dot3(u, eye)
	out[2], out[6], out[10], out[14] = -f[0], -f[1], -f[2], dot3(f, eye)
	out[3], out[7], out[11], out[15] = 0, 0, 0, 1
}

func dot3(a, b Vec3) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func cross3(a, b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func normalize3(v Vec3) Vec3 {
	l := math32.Sqrt(dot3(v, v))
	if l == 0 {
		return v
	}
	return Vec3{v[0] / l, v[1] / l, v[2] / l}
}
