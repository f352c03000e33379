package common

import (
	"image"
	"image/color"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func transformPoint(m Mat4, p Vec3) Vec4 {
	var out Vec4
	in := Vec4{p[0], p[1], p[2], 1}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[row] += m[col*4+row] * in[col]
		}
	}
	return out
}

func TestMul4Identity(t *testing.T) {
	a := Mat4{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	id := IdentityMat4()

	var out Mat4
	Mul4(out[:], a[:], id[:])
	assert.Equal(t, a, out)

	Mul4(out[:], id[:], a[:])
	assert.Equal(t, a, out)
}

func TestLookAtRHMapsTargetOntoNegativeZ(t *testing.T) {
	var view Mat4
	LookAtRH(view[:], Vec3{0, 0, 0}, Vec3{0, 0, 1}, Vec3{0, 1, 0})

	p := transformPoint(view, Vec3{0, 0, 5})
	assert.InDelta(t, 0, p[0], 1e-5)
	assert.InDelta(t, 0, p[1], 1e-5)
	assert.InDelta(t, -5, p[2], 1e-5)

	up := transformPoint(view, Vec3{0, 2, 0})
	assert.InDelta(t, 2, up[1], 1e-5)
}

func TestPerspectiveRHGLDepthRange(t *testing.T) {
	var proj Mat4
	near, far := float32(0.1), float32(100)
	PerspectiveRHGL(proj[:], math32.Pi/2, 1, near, far)

	n := transformPoint(proj, Vec3{0, 0, -near})
	f := transformPoint(proj, Vec3{0, 0, -far})
	assert.InDelta(t, -1, n[2]/n[3], 1e-4)
	assert.InDelta(t, 1, f[2]/f[3], 1e-3)
}

func TestOrthographicRHGLMapsCorners(t *testing.T) {
	var proj Mat4
	OrthographicRHGL(proj[:], -2, 2, -1, 1, 0, 10)

	lo := transformPoint(proj, Vec3{-2, -1, 0})
	hi := transformPoint(proj, Vec3{2, 1, -10})
	assert.InDelta(t, -1, lo[0], 1e-6)
	assert.InDelta(t, -1, lo[1], 1e-6)
	assert.InDelta(t, -1, lo[2], 1e-6)
	assert.InDelta(t, 1, hi[0], 1e-6)
	assert.InDelta(t, 1, hi[1], 1e-6)
	assert.InDelta(t, 1, hi[2], 1e-6)
}

func TestSliceToBytes(t *testing.T) {
	assert.Nil(t, SliceToBytes([]float32{}))
	assert.Len(t, SliceToBytes([]float32{1, 2, 3}), 12)
}

func TestNewTextureStagingData(t *testing.T) {
	_, err := NewTextureStagingData(nil)
	assert.Error(t, err)

	gray := image.NewGray(image.Rect(0, 0, 2, 1))
	gray.SetGray(1, 0, color.Gray{Y: 200})

	data, err := NewTextureStagingData(gray)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), data.Width)
	assert.Equal(t, uint32(1), data.Height)
	assert.Equal(t, []byte{0, 0, 0, 255, 200, 200, 200, 255}, data.Pixels)
}
