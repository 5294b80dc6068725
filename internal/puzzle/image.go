package puzzle

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Load decodes an image file. PNG, JPEG, GIF, BMP and WebP are recognised;
// anything else, and single-channel images, yield ErrUnsupportedImage.
func Load(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("puzzle: open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedImage, path)
		}
		return nil, fmt.Errorf("puzzle: decode %s: %w", path, err)
	}
	if channels(img.ColorModel()) < 3 {
		return nil, fmt.Errorf("%w: %s is a single-channel %s", ErrUnsupportedImage, path, format)
	}
	return ToRGBA(img), nil
}

// SampleImage renders a colourful picture with distinct regions so every
// tile is recognisable without an asset on disk.
func SampleImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return img
	}
	cx, cy := float64(w)/2, float64(h)/2
	radius := math.Min(cx, cy) * 0.6
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			fx := float64(x) / float64(w)
			fy := float64(y) / float64(h)
			c := color.RGBA{
				R: uint8(40 + 180*fx),
				G: uint8(60 + 150*fy),
				B: uint8(200 - 120*fx*fy),
				A: 255,
			}
			dx, dy := float64(x)-cx, float64(y)-cy
			if math.Hypot(dx, dy) < radius {
				c = color.RGBA{R: 250, G: uint8(200 - 100*fy), B: 60, A: 255}
			}
			// Checker stripes on the bottom band
			if fy > 0.8 && ((x/4)+(y/2))%2 == 0 {
				c = color.RGBA{R: 30, G: 30, B: 30, A: 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
