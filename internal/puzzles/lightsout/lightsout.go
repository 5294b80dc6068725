// Package lightsout implements Lights Out over an image: clicking a tile
// inverts it and its orthogonal neighbours. The goal is to turn every
// light off.
package lightsout

import (
	"image"

	"github.com/vovakirdan/tile-puzzles/internal/core"
	"github.com/vovakirdan/tile-puzzles/internal/puzzle"
	"github.com/vovakirdan/tile-puzzles/internal/registry"
)

const (
	ID    = "lightsout"
	Title = "Lights Out"
)

func init() {
	registry.Register(registry.Info{ID: ID, Title: Title, DefaultSize: 5},
		func(src image.Image, opts puzzle.Options, rng puzzle.Rand) (registry.Puzzle, error) {
			return New(src, opts, rng)
		})
}

// Puzzle is a Lights Out board. lights[slot] is true while the tile in slot
// shows inverted pixels.
type Puzzle struct {
	board  *puzzle.Board
	lights []bool
	moves  int
	solved bool
}

// New partitions src and presses total random tiles. Every press is its own
// inverse, so the result is always solvable. A scramble that ends with all
// lights off is re-rolled.
func New(src image.Image, opts puzzle.Options, rng puzzle.Rand) (*Puzzle, error) {
	b, err := puzzle.NewBoard(src, opts)
	if err != nil {
		return nil, err
	}
	p := &Puzzle{board: b, lights: make([]bool, b.Total())}

	for i := 0; i < opts.Attempts(); i++ {
		for j := 0; j < b.Total(); j++ {
			p.Invert(p.Neighbors(rng.Intn(b.Total())))
		}
		if !p.allOff() {
			break
		}
	}
	p.solved = p.allOff()
	b.Composite()
	return p, nil
}

func (p *Puzzle) ID() string { return ID }
func (p *Puzzle) Title() string { return Title }
func (p *Puzzle) Board() *puzzle.Board { return p.board }
func (p *Puzzle) Image() *image.RGBA { return p.board.Image() }
func (p *Puzzle) Moves() int { return p.moves }
func (p *Puzzle) Solved() bool { return p.solved }

// Lights returns a copy of the light list.
func (p *Puzzle) Lights() []bool {
	out := make([]bool, len(p.lights))
	copy(out, p.lights)
	return out
}

// Lit returns how many lights are on.
func (p *Puzzle) Lit() int {
	n := 0
	for _, on := range p.lights {
		if on {
			n++
		}
	}
	return n
}

func (p *Puzzle) allOff() bool {
	return p.Lit() == 0
}

// Neighbors returns slot and its orthogonal neighbours, without wraparound.
func (p *Puzzle) Neighbors(slot int) []int {
	return p.board.Neighbors(slot)
}

// Invert toggles the light and inverts the pixels of every slot in slots.
// It does not recomposite.
func (p *Puzzle) Invert(slots []int) {
	for _, slot := range slots {
		p.lights[slot] = !p.lights[slot]
		puzzle.Invert(p.board.Piece(p.board.At(slot)).Pixels)
	}
}

// Click presses the tile in slot.
func (p *Puzzle) Click(slot int, out *puzzle.Events) bool {
	if p.solved || slot < 0 || slot >= p.board.Total() {
		return false
	}
	group := p.Neighbors(slot)
	p.Invert(group)
	p.moves++
	p.board.Composite()
	for _, s := range group {
		out.Emit(puzzle.EventTileUpdated, s)
	}

	if p.allOff() {
		p.solved = true
		out.Emit(puzzle.EventPuzzleSolved, -1)
	}
	return true
}

// HandleInput presses the tile under a pointer release. Keys are ignored.
func (p *Puzzle) HandleInput(ev core.InputEvent, out *puzzle.Events) {
	if p.solved || !ev.IsPointer() {
		return
	}
	if slot, ok := p.board.TileIndexAt(ev.Pos); ok {
		p.Click(slot, out)
	}
}

// Hint returns the first press of a solution for the current lights.
func (p *Puzzle) Hint() (int, bool) {
	if p.solved {
		return -1, false
	}
	presses, ok := Solve(p.board.PiecesPerSide(), p.lights)
	if !ok || len(presses) == 0 {
		return -1, false
	}
	return presses[0], true
}
