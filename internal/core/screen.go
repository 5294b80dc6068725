package core

import (
	"image"
	"image/color"
)

// HalfBlock is the glyph used to draw two vertically stacked pixels in one
// terminal cell: the foreground paints the upper pixel, the background the lower.
const HalfBlock = '▀'

// Cell is one terminal cell. A colour with zero alpha means "terminal default".
type Cell struct {
	Rune rune
	FG   color.RGBA
	BG   color.RGBA
}

// Screen is a 2D cell buffer. It decouples drawing from the terminal: puzzles
// and the overworld produce images, the screen turns them into cells and the
// platform handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := Min(oldW, width)
	copyH := Min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills the entire screen with default-coloured spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' '}
		}
	}
}

// Set places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// Get returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// DrawImage paints img with its top-left pixel at cell (x, y). Every cell
// covers one pixel column and two pixel rows.
func (s *Screen) DrawImage(x, y int, img image.Image) {
	if img == nil {
		return
	}
	b := img.Bounds()
	for py := b.Min.Y; py < b.Max.Y; py += 2 {
		row := y + (py-b.Min.Y)/2
		for px := b.Min.X; px < b.Max.X; px++ {
			top := color.RGBAModel.Convert(img.At(px, py)).(color.RGBA)
			var bottom color.RGBA
			if py+1 < b.Max.Y {
				bottom = color.RGBAModel.Convert(img.At(px, py+1)).(color.RGBA)
			}
			s.Set(x+px-b.Min.X, row, Cell{Rune: HalfBlock, FG: top, BG: bottom})
		}
	}
}

// CellToPixel converts a cell coordinate into the pixel coordinate of the
// upper half of that cell, using the same layout as DrawImage.
func CellToPixel(x, y int) Point {
	return Point{X: x, Y: y * 2}
}
