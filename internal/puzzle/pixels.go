package puzzle

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
)

// Clone returns a deep copy of img rebased to the origin.
func Clone(img *image.RGBA) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}

// ToRGBA converts any image into a fresh *image.RGBA anchored at the origin.
func ToRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}

// MirrorHorizontal flips img left-to-right in place. Applying it twice
// restores the original pixels.
func MirrorHorizontal(img *image.RGBA) {
	b := img.Bounds()
	w := b.Dx()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Min.X, y)+w*4]
		for l, r := 0, w-1; l < r; l, r = l+1, r-1 {
			li, ri := l*4, r*4
			for c := 0; c < 4; c++ {
				row[li+c], row[ri+c] = row[ri+c], row[li+c]
			}
		}
	}
}

// Invert replaces every colour channel v with 255-v in place. Alpha is kept.
func Invert(img *image.RGBA) {
	b := img.Bounds()
	w := b.Dx()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y) : img.PixOffset(b.Min.X, y)+w*4]
		for i := 0; i < len(row); i += 4 {
			row[i] = 255 - row[i]
			row[i+1] = 255 - row[i+1]
			row[i+2] = 255 - row[i+2]
		}
	}
}

// Fill paints img with a single colour.
func Fill(img *image.RGBA, c color.RGBA) {
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// Equal reports whether two images have the same size and identical pixels.
func Equal(a, b *image.RGBA) bool {
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Dx() != bb.Dx() || ab.Dy() != bb.Dy() {
		return false
	}
	w := ab.Dx() * 4
	for y := 0; y < ab.Dy(); y++ {
		ra := a.Pix[a.PixOffset(ab.Min.X, ab.Min.Y+y) : a.PixOffset(ab.Min.X, ab.Min.Y+y)+w]
		rb := b.Pix[b.PixOffset(bb.Min.X, bb.Min.Y+y) : b.PixOffset(bb.Min.X, bb.Min.Y+y)+w]
		if !bytes.Equal(ra, rb) {
			return false
		}
	}
	return true
}
