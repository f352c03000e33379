// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import (
	"fmt"
	"image"
	"image/draw"
)

// TextureStagingData holds RGBA pixel data for a texture pending GPU upload.
type TextureStagingData struct {
	// Pixels is the byte slice representing the actual pixel data for the texture. It should be in RGBA format, with 4 bytes per pixel.
	Pixels []byte
	// Width is the width of the texture in pixels.
	Width uint32
	// Height is the height of the texture in pixels.
	Height uint32
}

// NewTextureStagingData converts any decoded image into tightly packed RGBA staging data.
// An *image.RGBA whose rows are already tightly packed is used without copying.
//
// Parameters:
//   - img: the decoded source image
//
// Returns:
//   - TextureStagingData: the RGBA pixels and dimensions of the image
//   - error: error if the image is nil or empty
func NewTextureStagingData(img image.Image) (TextureStagingData, error) {
	if img == nil {
		return TextureStagingData{}, fmt.Errorf("image is nil")
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == 0 || height == 0 {
		return TextureStagingData{}, fmt.Errorf("image has zero area")
	}

	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != width*4 {
		rgba = image.NewRGBA(image.Rect(0, 0, width, height))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}

	return TextureStagingData{
		Pixels: rgba.Pix[:width*height*4],
		Width:  uint32(width),
		Height: uint32(height),
	}, nil
}
