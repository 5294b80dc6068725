// Package puzzle implements the shared puzzle state engine: slicing an image
// into an n×n grid of pieces, the order list that records which piece sits in
// which slot, pointer-to-tile mapping and image compositing.
//
// The engine is synchronous and tick-driven. A Board and the variants built on
// it are not safe for concurrent use and must not be re-entered from inside a
// HandleInput call.
package puzzle

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGeometry is returned when the grid size or the image size
	// cannot produce non-empty tiles.
	ErrInvalidGeometry = errors.New("puzzle: invalid geometry")

	// ErrUnsupportedImage is returned for missing, empty or single-channel images.
	ErrUnsupportedImage = errors.New("puzzle: unsupported image format")

	// ErrInvalidOrder is returned when an arrangement is not a permutation of
	// the board's pieces.
	ErrInvalidOrder = errors.New("puzzle: order list is not a permutation")
)

// GeometryError describes why a grid could not be built.
type GeometryError struct {
	PiecesPerSide int
	Width         int
	Height        int
	Reason        string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("puzzle: invalid geometry (%d pieces per side, %dx%d image): %s",
		e.PiecesPerSide, e.Width, e.Height, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidGeometry) match.
func (e *GeometryError) Is(target error) bool {
	return target == ErrInvalidGeometry
}
