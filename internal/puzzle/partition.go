package puzzle

import (
	"image"
	"image/color"
	stddraw "image/draw"

	"golang.org/x/image/draw"

	"github.com/vovakirdan/tile-puzzles/internal/core"
)

// Piece is one rectangular cell of the partitioned image.
// Absolute is its identity, assigned once at partition time. Its current slot
// is not stored here: the board's order list is the single source of truth.
type Piece struct {
	Absolute int
	Pixels   *image.RGBA
	Flipped  bool // Orientation flag, used by the flipping variant
}

// Tiles is the result of partitioning an image.
type Tiles struct {
	Image  *image.RGBA // Resized and cropped source, the solved picture
	Tile   core.Point  // Pixel size of one tile
	Pieces []*Piece    // Row-major, Pieces[y*n+x] covers grid cell (x, y)
}

// Partition resizes src to output (when output is non-zero), crops each
// dimension down to a multiple of n and cuts the result into n×n pieces of
// equal size.
//
// The crop removes dimension mod n pixels from the right and bottom edges.
// Everything downstream relies on tiles dividing the image exactly.
func Partition(src image.Image, n int, output core.Point) (Tiles, error) {
	if err := CheckImage(src); err != nil {
		return Tiles{}, err
	}
	b := src.Bounds()
	if n <= 0 {
		return Tiles{}, &GeometryError{PiecesPerSide: n, Width: b.Dx(), Height: b.Dy(), Reason: "pieces per side must be positive"}
	}
	if output.X < 0 || output.Y < 0 {
		return Tiles{}, &GeometryError{PiecesPerSide: n, Width: output.X, Height: output.Y, Reason: "output size must not be negative"}
	}

	resized := resize(src, output)

	w := resized.Bounds().Dx()
	h := resized.Bounds().Dy()
	w -= w % n
	h -= h % n
	tile := core.Pt(w/n, h/n)
	if tile.X == 0 || tile.Y == 0 {
		return Tiles{}, &GeometryError{PiecesPerSide: n, Width: resized.Bounds().Dx(), Height: resized.Bounds().Dy(), Reason: "image too small for requested tiles"}
	}

	full := image.NewRGBA(image.Rect(0, 0, w, h))
	stddraw.Draw(full, full.Bounds(), resized, image.Point{}, stddraw.Src)

	pieces := make([]*Piece, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			px := image.NewRGBA(image.Rect(0, 0, tile.X, tile.Y))
			origin := image.Pt(x*tile.X, y*tile.Y)
			stddraw.Draw(px, px.Bounds(), full, origin, stddraw.Src)
			abs := y*n + x
			pieces[abs] = &Piece{Absolute: abs, Pixels: px}
		}
	}

	return Tiles{Image: full, Tile: tile, Pieces: pieces}, nil
}

// Resize scales src to size with nearest-neighbour sampling. A zero size, or
// the image's own size, yields an unscaled RGBA copy.
func Resize(src image.Image, size core.Point) *image.RGBA {
	return resize(src, size)
}

func resize(src image.Image, size core.Point) *image.RGBA {
	b := src.Bounds()
	if size.X == 0 || size.Y == 0 || (size.X == b.Dx() && size.Y == b.Dy()) {
		return ToRGBA(src)
	}
	dst := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// CheckImage rejects missing, empty and single-channel images with
// ErrUnsupportedImage.
func CheckImage(src image.Image) error {
	if src == nil || src.Bounds().Empty() || channels(src.ColorModel()) < 3 {
		return ErrUnsupportedImage
	}
	return nil
}

// channels returns the number of colour channels a model carries.
func channels(m color.Model) int {
	switch m {
	case color.GrayModel, color.Gray16Model, color.AlphaModel, color.Alpha16Model:
		return 1
	case color.YCbCrModel, color.CMYKModel:
		return 3
	default:
		return 4
	}
}
