package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gradient paints each row with a distinct red value so row order is observable.
func gradient(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(y), G: uint8(x), B: 7, A: 255})
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestToRGBA(t *testing.T) {
	tests := []struct {
		name    string
		height  int
		workers int
		flipV   bool
	}{
		{"small inline", 8, 4, false},
		{"small flipped", 8, 4, true},
		{"parallel bands", 200, 4, false},
		{"parallel flipped", 200, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLoader(fstest.MapFS{}, WithWorkers(tt.workers))
			src := gradient(5, tt.height)

			dst := l.ToRGBA(src, tt.flipV)
			require.Equal(t, image.Rect(0, 0, 5, tt.height), dst.Rect)
			assert.Equal(t, 5*4, dst.Stride)

			for y := 0; y < tt.height; y++ {
				want := uint8(y)
				if tt.flipV {
					want = uint8(tt.height - 1 - y)
				}
				got := dst.RGBAAt(3, y)
				require.Equal(t, color.RGBA{R: want, G: 3, B: 7, A: 255}, got, "row %d", y)
			}
		})
	}
}

func TestToRGBAOffsetBounds(t *testing.T) {
	l := NewLoader(fstest.MapFS{}, WithWorkers(1))
	sub := gradient(6, 6).SubImage(image.Rect(2, 2, 4, 5))

	dst := l.ToRGBA(sub, true)
	require.Equal(t, image.Rect(0, 0, 2, 3), dst.Rect)
	assert.Equal(t, color.RGBA{R: 4, G: 2, B: 7, A: 255}, dst.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 2, G: 3, B: 7, A: 255}, dst.RGBAAt(1, 2))
}

func TestLoadImage(t *testing.T) {
	fsys := fstest.MapFS{
		"textures/grad.png": {Data: encodePNG(t, gradient(4, 4))},
		"textures/bad.png":  {Data: []byte("not an image")},
	}
	l := NewLoader(fsys)

	img, err := l.LoadImage("textures/grad.png", false)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 4), img.Rect)
	assert.Equal(t, uint8(3), img.RGBAAt(0, 3).R)

	img, err = l.LoadImage("textures/grad.png", true)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), img.RGBAAt(0, 3).R)

	_, err = l.LoadImage("textures/bad.png", false)
	assert.Error(t, err)

	_, err = l.LoadImage("textures/missing.png", false)
	assert.Error(t, err)
}
