package puzzle

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestMirrorHorizontalTwiceRestores(t *testing.T) {
	img := gradient(7, 4)
	orig := Clone(img)

	MirrorHorizontal(img)
	if img.RGBAAt(0, 0) != orig.RGBAAt(6, 0) || img.RGBAAt(6, 3) != orig.RGBAAt(0, 3) {
		t.Error("MirrorHorizontal should swap left and right columns")
	}
	if img.RGBAAt(3, 2) != orig.RGBAAt(3, 2) {
		t.Error("middle column of an odd-width image should stay in place")
	}

	MirrorHorizontal(img)
	if !Equal(img, orig) {
		t.Error("mirroring twice should restore the original")
	}
}

func TestInvert(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{10, 200, 0, 255})
	img.SetRGBA(1, 0, color.RGBA{255, 0, 128, 100})

	Invert(img)
	if got := img.RGBAAt(0, 0); got != (color.RGBA{245, 55, 255, 255}) {
		t.Errorf("inverted pixel = %v", got)
	}
	if got := img.RGBAAt(1, 0); got.A != 100 {
		t.Errorf("alpha should be preserved, got %d", got.A)
	}

	Invert(img)
	if got := img.RGBAAt(0, 0); got != (color.RGBA{10, 200, 0, 255}) {
		t.Errorf("double inversion = %v, want original", got)
	}
}

func TestEqual(t *testing.T) {
	a := gradient(4, 4)
	b := Clone(a)
	if !Equal(a, b) {
		t.Error("clone should be equal")
	}
	b.SetRGBA(3, 3, color.RGBA{1, 2, 3, 4})
	if Equal(a, b) {
		t.Error("modified clone should differ")
	}
	if Equal(a, gradient(4, 5)) {
		t.Error("different sizes should differ")
	}

	sub := gradient(8, 8).SubImage(image.Rect(2, 2, 6, 6)).(*image.RGBA)
	if Equal(sub, gradient(4, 4)) {
		t.Error("offset subimage has different content")
	}
	if !Equal(sub, Clone(sub)) {
		t.Error("subimage should equal its rebased clone")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "tile.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := png.Encode(f, gradient(6, 6)); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !Equal(img, gradient(6, 6)) {
		t.Error("loaded image differs from the encoded one")
	}

	bad := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(bad, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(bad); !errors.Is(err, ErrUnsupportedImage) {
		t.Errorf("Load(text) error = %v, want ErrUnsupportedImage", err)
	}

	gray := filepath.Join(dir, "gray.png")
	f, err = os.Create(gray)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := png.Encode(f, image.NewGray(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()
	if _, err := Load(gray); !errors.Is(err, ErrUnsupportedImage) {
		t.Errorf("Load(gray) error = %v, want ErrUnsupportedImage", err)
	}
}

func TestSampleImage(t *testing.T) {
	img := SampleImage(32, 24)
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 24 {
		t.Fatalf("SampleImage size = %v", img.Bounds())
	}
	if img.RGBAAt(0, 0) == img.RGBAAt(16, 12) {
		t.Error("corner and centre should differ")
	}
}
