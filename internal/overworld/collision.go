// Package overworld implements the walkable map that leads into puzzles:
// a collision map, a player that steps across it and a viewport that
// follows the player over the rendered map image.
package overworld

import (
	"errors"
	"fmt"
	"image"
	"strconv"

	"github.com/vovakirdan/tile-puzzles/internal/core"
)

// CellKind classifies a map cell for movement.
type CellKind uint8

const (
	CellFloor CellKind = iota
	CellWall
	CellTrigger // Blocks movement and starts an interaction
	CellBridge  // Walkable on the upper layer
)

// BridgeBlue marks bridge cells in collision images.
const BridgeBlue = 133

// Cell is one map cell.
type Cell struct {
	Kind    CellKind
	Trigger string // Trigger key for CellTrigger
}

// CollisionMap is a grid of cells, row-major.
type CollisionMap struct {
	w, h  int
	cells []Cell
}

var errEmptyMap = errors.New("overworld: empty map")

// NewCollisionMap returns an all-floor map.
func NewCollisionMap(w, h int) *CollisionMap {
	return &CollisionMap{w: w, h: h, cells: make([]Cell, w*h)}
}

// ParseLayout builds a map from text rows: '#' wall, '.' or ' ' floor,
// '=' bridge, '@' floor with the player start, '0'-'9' triggers.
// Every row must have the same width and exactly one '@' must appear.
func ParseLayout(rows []string) (*CollisionMap, core.Point, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, core.Point{}, errEmptyMap
	}
	m := NewCollisionMap(len(rows[0]), len(rows))
	start := core.Pt(-1, -1)

	for y, row := range rows {
		if len(row) != m.w {
			return nil, core.Point{}, fmt.Errorf("overworld: row %d has width %d, want %d", y, len(row), m.w)
		}
		for x := 0; x < len(row); x++ {
			var c Cell
			switch ch := row[x]; {
			case ch == '#':
				c.Kind = CellWall
			case ch == '=':
				c.Kind = CellBridge
			case ch == '.' || ch == ' ':
			case ch == '@':
				if start.X >= 0 {
					return nil, core.Point{}, fmt.Errorf("overworld: second start at (%d,%d)", x, y)
				}
				start = core.Pt(x, y)
			case ch >= '0' && ch <= '9':
				c = Cell{Kind: CellTrigger, Trigger: string(ch)}
			default:
				return nil, core.Point{}, fmt.Errorf("overworld: unknown cell %q at (%d,%d)", ch, x, y)
			}
			m.cells[y*m.w+x] = c
		}
	}
	if start.X < 0 {
		return nil, core.Point{}, errors.New("overworld: layout has no start '@'")
	}
	return m, start, nil
}

// FromImage builds a map from a collision image, one pixel per cell:
// a non-zero red channel is a wall, a non-zero green channel is a trigger
// keyed by its decimal value, and blue == BridgeBlue is a bridge.
func FromImage(img image.Image) (*CollisionMap, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, errEmptyMap
	}
	m := NewCollisionMap(b.Dx(), b.Dy())
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			r8, g8, b8 := r>>8, g>>8, bl>>8
			var c Cell
			switch {
			case r8 != 0:
				c.Kind = CellWall
			case g8 != 0:
				c = Cell{Kind: CellTrigger, Trigger: strconv.Itoa(int(g8))}
			case b8 == BridgeBlue:
				c.Kind = CellBridge
			}
			m.cells[y*m.w+x] = c
		}
	}
	return m, nil
}

// Size returns the map size in cells.
func (m *CollisionMap) Size() core.Point { return core.Pt(m.w, m.h) }

// InBounds reports whether p lies on the map.
func (m *CollisionMap) InBounds(p core.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < m.w && p.Y < m.h
}

// At returns the cell at p. Cells off the map are walls.
func (m *CollisionMap) At(p core.Point) Cell {
	if !m.InBounds(p) {
		return Cell{Kind: CellWall}
	}
	return m.cells[p.Y*m.w+p.X]
}

// Set replaces the cell at p. Off-map writes are ignored.
func (m *CollisionMap) Set(p core.Point, c Cell) {
	if m.InBounds(p) {
		m.cells[p.Y*m.w+p.X] = c
	}
}

// Triggers returns the position of every trigger cell, keyed by trigger.
func (m *CollisionMap) Triggers() map[string][]core.Point {
	out := make(map[string][]core.Point)
	for i, c := range m.cells {
		if c.Kind == CellTrigger {
			out[c.Trigger] = append(out[c.Trigger], core.Pt(i%m.w, i/m.w))
		}
	}
	return out
}
