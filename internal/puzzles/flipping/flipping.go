// Package flipping implements a puzzle where every tile may be mirrored
// left-to-right. Clicking a tile mirrors it; the picture must be restored.
package flipping

import (
	"image"

	"github.com/vovakirdan/tile-puzzles/internal/core"
	"github.com/vovakirdan/tile-puzzles/internal/puzzle"
	"github.com/vovakirdan/tile-puzzles/internal/registry"
)

const (
	ID    = "flipping"
	Title = "Flip Tiles"
)

func init() {
	registry.Register(registry.Info{ID: ID, Title: Title, DefaultSize: 4},
		func(src image.Image, opts puzzle.Options, rng puzzle.Rand) (registry.Puzzle, error) {
			return New(src, opts, rng)
		})
}

// Puzzle is a flipping puzzle. The order list stays the identity; each
// piece carries its own orientation.
type Puzzle struct {
	board  *puzzle.Board
	moves  int
	solved bool
}

// New partitions src and mirrors a random subset of tiles. Scrambles that
// leave the picture unchanged are re-rolled up to opts.Attempts() times; an
// image that looks the same under every flip starts solved.
func New(src image.Image, opts puzzle.Options, rng puzzle.Rand) (*Puzzle, error) {
	b, err := puzzle.NewBoard(src, opts)
	if err != nil {
		return nil, err
	}
	p := &Puzzle{board: b}
	p.scramble(rng, opts.Attempts())
	return p, nil
}

func (p *Puzzle) scramble(rng puzzle.Rand, attempts int) {
	for i := 0; i < attempts; i++ {
		for slot := 0; slot < p.board.Total(); slot++ {
			if rng.Intn(2) == 1 {
				p.Flip(slot)
			}
		}
		p.board.Composite()
		if !p.matches() {
			return
		}
	}
	p.solved = p.matches()
}

func (p *Puzzle) matches() bool {
	return puzzle.Equal(p.board.Image(), p.board.Reference())
}

func (p *Puzzle) ID() string { return ID }
func (p *Puzzle) Title() string { return Title }
func (p *Puzzle) Board() *puzzle.Board { return p.board }
func (p *Puzzle) Image() *image.RGBA { return p.board.Image() }
func (p *Puzzle) Moves() int { return p.moves }
func (p *Puzzle) Solved() bool { return p.solved }

// Flipped reports the orientation of the tile in slot.
func (p *Puzzle) Flipped(slot int) bool {
	return p.board.Piece(p.board.At(slot)).Flipped
}

// Flip mirrors the tile in slot and toggles its orientation flag. It does
// not recomposite.
func (p *Puzzle) Flip(slot int) {
	piece := p.board.Piece(p.board.At(slot))
	puzzle.MirrorHorizontal(piece.Pixels)
	piece.Flipped = !piece.Flipped
}

// Click flips the tile in slot and checks the whole picture against the
// reference.
func (p *Puzzle) Click(slot int, out *puzzle.Events) bool {
	if p.solved || slot < 0 || slot >= p.board.Total() {
		return false
	}
	p.Flip(slot)
	p.moves++
	p.board.Composite()
	out.Emit(puzzle.EventTileUpdated, slot)

	if p.matches() {
		p.solved = true
		out.Emit(puzzle.EventPuzzleSolved, -1)
	}
	return true
}

// HandleInput flips the tile under a pointer release. Keys are ignored.
func (p *Puzzle) HandleInput(ev core.InputEvent, out *puzzle.Events) {
	if p.solved || !ev.IsPointer() {
		return
	}
	if slot, ok := p.board.TileIndexAt(ev.Pos); ok {
		p.Click(slot, out)
	}
}

// Hint returns the first slot whose pixels differ from the reference.
func (p *Puzzle) Hint() (int, bool) {
	if p.solved {
		return -1, false
	}
	ts := p.board.TileSize()
	ref := p.board.Reference()
	for slot := 0; slot < p.board.Total(); slot++ {
		c := p.board.SlotCoord(slot)
		r := image.Rect(c.X*ts.X, c.Y*ts.Y, (c.X+1)*ts.X, (c.Y+1)*ts.Y)
		want := ref.SubImage(r).(*image.RGBA)
		if !puzzle.Equal(p.board.Piece(p.board.At(slot)).Pixels, want) {
			return slot, true
		}
	}
	return -1, false
}
