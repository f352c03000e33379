package assets

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"sync"

	"github.com/Carmen-Shannon/automation/tools/worker"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// minRowsPerTask keeps small images on the calling goroutine.
const minRowsPerTask = 64

// LoadImage decodes a PNG, JPEG, BMP or WebP image and converts it to tightly packed RGBA.
//
// Parameters:
//   - name: slash-separated path of the image within the loader's file system
//   - flipV: if true, the rows are flipped so the first row is the bottom of the image (OpenGL)
//
// Returns:
//   - *image.RGBA: the converted image with bounds starting at (0, 0)
//   - error: an open or decode error
func (l *Loader) LoadImage(name string, flipV bool) (*image.RGBA, error) {
	f, err := l.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", name, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", name, err)
	}

	rgba := l.ToRGBA(img, flipV)
	log.Printf("[Assets] loaded image %s (%s %dx%d)", name, format, rgba.Rect.Dx(), rgba.Rect.Dy())
	return rgba, nil
}

// ToRGBA converts img to a new *image.RGBA, optionally flipped vertically. Row bands of large
// images are converted in parallel on the loader's worker pool.
//
// Parameters:
//   - img: the source image
//   - flipV: if true, the rows are flipped vertically
//
// Returns:
//   - *image.RGBA: the converted image with bounds starting at (0, 0)
func (l *Loader) ToRGBA(img image.Image, flipV bool) *image.RGBA {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	if width == 0 || height == 0 {
		return dst
	}

	bands := min(l.workers, height/minRowsPerTask)
	if bands <= 1 {
		convertRows(dst, img, 0, height, flipV)
		return dst
	}

	rowsPerBand := (height + bands - 1) / bands
	var wg sync.WaitGroup
	for id := 0; id < bands; id++ {
		y0 := id * rowsPerBand
		y1 := min(y0+rowsPerBand, height)
		if y0 >= y1 {
			break
		}
		wg.Add(1)
		l.pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				convertRows(dst, img, y0, y1, flipV)
				return nil, nil
			},
		})
	}
	wg.Wait()
	return dst
}

// convertRows fills dst rows [y0, y1) from src. Bands touch disjoint destination rows.
func convertRows(dst *image.RGBA, src image.Image, y0, y1 int, flipV bool) {
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if !flipV {
		draw.Draw(dst, image.Rect(0, y0, width, y1), src, image.Pt(bounds.Min.X, bounds.Min.Y+y0), draw.Src)
		return
	}
	for y := y0; y < y1; y++ {
		srcY := bounds.Min.Y + height - 1 - y
		draw.Draw(dst, image.Rect(0, y, width, y+1), src, image.Pt(bounds.Min.X, srcY), draw.Src)
	}
}
