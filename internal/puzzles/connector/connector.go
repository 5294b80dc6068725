// Package connector implements a colour-routing puzzle. Locked anchor tiles
// are seeded with colours; the player paints the free tiles until every
// colour forms one orthogonally connected region.
package connector

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/vovakirdan/tile-puzzles/internal/core"
	"github.com/vovakirdan/tile-puzzles/internal/puzzle"
	"github.com/vovakirdan/tile-puzzles/internal/registry"
)

const (
	ID    = "connector"
	Title = "Connector"
)

func init() {
	registry.Register(registry.Info{ID: ID, Title: Title, DefaultSize: 5},
		func(src image.Image, opts puzzle.Options, rng puzzle.Rand) (registry.Puzzle, error) {
			return New(src, opts, rng)
		})
}

// Color is an index into Palette. White is neutral; the others must connect.
type Color uint8

const (
	White Color = iota
	Red
	Green
	Blue

	numColors = 4
)

// Palette holds the display colour of each Color, in click order.
var Palette = [numColors]color.RGBA{
	White: {R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	Red:   {R: 0xFF, A: 0xFF},
	Green: {G: 0xFF, A: 0xFF},
	Blue:  {B: 0xFF, A: 0xFF},
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return "unknown"
	}
}

// Next returns the colour one click away; reverse steps backwards.
func (c Color) Next(reverse bool) Color {
	if reverse {
		return (c + numColors - 1) % numColors
	}
	return (c + 1) % numColors
}

// Puzzle is a connector board.
type Puzzle struct {
	board    *puzzle.Board
	colors   []Color
	locked   []bool
	solution []Color
	moves    int
	solved   bool
	fallback bool // Random anchors never routed; corner anchors used instead
}

// New builds a board the size of src; the source pixels themselves are not
// shown. Anchors are seeded at random and the scramble is re-rolled until the
// anchors can be routed and the board is not already solved.
func New(src image.Image, opts puzzle.Options, rng puzzle.Rand) (*Puzzle, error) {
	if opts.PiecesPerSide < 2 {
		return nil, &puzzle.GeometryError{
			PiecesPerSide: opts.PiecesPerSide,
			Reason:        "connector puzzle needs at least 2 pieces per side",
		}
	}
	if err := puzzle.CheckImage(src); err != nil {
		return nil, err
	}
	blank := image.NewRGBA(image.Rect(0, 0, src.Bounds().Dx(), src.Bounds().Dy()))
	puzzle.Fill(blank, Palette[White])

	b, err := puzzle.NewBoard(blank, opts)
	if err != nil {
		return nil, err
	}
	p := &Puzzle{
		board:  b,
		colors: make([]Color, b.Total()),
		locked: make([]bool, b.Total()),
	}
	p.scramble(rng, opts.Attempts(), opts.Anchors())
	for slot := range p.colors {
		p.paint(slot)
	}
	b.Composite()
	return p, nil
}

func (p *Puzzle) scramble(rng puzzle.Rand, attempts int, prob float64) {
	n := p.board.PiecesPerSide()
	for i := 0; i < attempts; i++ {
		p.reset()
		for slot := range p.colors {
			if rng.Float64() < prob {
				clicks := int(rng.Float64() * numColors)
				for k := 0; k < clicks; k++ {
					p.colors[slot] = p.colors[slot].Next(false)
				}
				p.locked[slot] = true
			}
		}
		if IsSolved(n, p.colors) {
			continue
		}
		if sol, ok := Route(n, p.colors, p.locked); ok {
			p.solution = sol
			return
		}
	}

	// Two red anchors in opposite corners can always be joined along an edge.
	p.fallback = true
	p.reset()
	last := len(p.colors) - 1
	p.colors[0], p.colors[last] = Red, Red
	p.locked[0], p.locked[last] = true, true
	p.solution, _ = Route(n, p.colors, p.locked)
}

// Fallback reports whether the scramble gave up on random anchors.
func (p *Puzzle) Fallback() bool { return p.fallback }

func (p *Puzzle) reset() {
	for i := range p.colors {
		p.colors[i] = White
		p.locked[i] = false
	}
}

func (p *Puzzle) ID() string { return ID }
func (p *Puzzle) Title() string { return Title }
func (p *Puzzle) Board() *puzzle.Board { return p.board }
func (p *Puzzle) Image() *image.RGBA { return p.board.Image() }
func (p *Puzzle) Moves() int { return p.moves }
func (p *Puzzle) Solved() bool { return p.solved }

// ColorAt returns the colour of the tile in slot.
func (p *Puzzle) ColorAt(slot int) Color { return p.colors[slot] }

// Locked reports whether slot is an anchor.
func (p *Puzzle) Locked(slot int) bool { return p.locked[slot] }

// Colors returns a copy of the colour list.
func (p *Puzzle) Colors() []Color {
	out := make([]Color, len(p.colors))
	copy(out, p.colors)
	return out
}

// Solution returns the routing found when the board was scrambled.
func (p *Puzzle) Solution() []Color {
	out := make([]Color, len(p.solution))
	copy(out, p.solution)
	return out
}

// ClickTile cycles the colour of an unlocked tile. It returns false for
// locked tiles.
func (p *Puzzle) ClickTile(slot int, reverse bool) bool {
	if slot < 0 || slot >= len(p.colors) || p.locked[slot] {
		return false
	}
	p.colors[slot] = p.colors[slot].Next(reverse)
	p.paint(slot)
	return true
}

// paint fills the tile's pixels with its colour. Anchors get a darker frame.
func (p *Puzzle) paint(slot int) {
	px := p.board.Piece(p.board.At(slot)).Pixels
	c := Palette[p.colors[slot]]
	puzzle.Fill(px, c)
	if !p.locked[slot] {
		return
	}
	frame := color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: 0xFF}
	b := px.Bounds()
	for _, r := range []image.Rectangle{
		image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Min.Y+1),
		image.Rect(b.Min.X, b.Max.Y-1, b.Max.X, b.Max.Y),
		image.Rect(b.Min.X, b.Min.Y, b.Min.X+1, b.Max.Y),
		image.Rect(b.Max.X-1, b.Min.Y, b.Max.X, b.Max.Y),
	} {
		draw.Draw(px, r, &image.Uniform{C: frame}, image.Point{}, draw.Src)
	}
}

// Click cycles the tile in slot and checks connectivity.
func (p *Puzzle) Click(slot int, reverse bool, out *puzzle.Events) bool {
	if p.solved || !p.ClickTile(slot, reverse) {
		return false
	}
	p.moves++
	p.board.Composite()
	out.Emit(puzzle.EventTileUpdated, slot)

	if p.IsSolved() {
		p.solved = true
		out.Emit(puzzle.EventPuzzleSolved, -1)
	}
	return true
}

// IsSolved reports whether every non-white colour is connected.
func (p *Puzzle) IsSolved() bool {
	return IsSolved(p.board.PiecesPerSide(), p.colors)
}

// HandleInput cycles the tile under a pointer release: left forward, right
// backward. Keys are ignored.
func (p *Puzzle) HandleInput(ev core.InputEvent, out *puzzle.Events) {
	if p.solved || !ev.IsPointer() {
		return
	}
	if slot, ok := p.board.TileIndexAt(ev.Pos); ok {
		p.Click(slot, ev.Button == core.ButtonRight, out)
	}
}

// Hint returns the first unlocked tile whose colour differs from the
// routing found at scramble time.
func (p *Puzzle) Hint() (int, bool) {
	if p.solved || p.solution == nil {
		return -1, false
	}
	for slot, c := range p.colors {
		if !p.locked[slot] && c != p.solution[slot] {
			return slot, true
		}
	}
	return -1, false
}
