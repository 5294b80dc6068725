// Package sliding implements the classic sliding-tile puzzle: one piece is
// removed and the others shift into the gap until the picture is restored.
package sliding

import (
	"image"
	"image/color"

	"github.com/vovakirdan/tile-puzzles/internal/core"
	"github.com/vovakirdan/tile-puzzles/internal/puzzle"
	"github.com/vovakirdan/tile-puzzles/internal/registry"
)

const (
	ID    = "sliding"
	Title = "Sliding Tiles"
)

func init() {
	registry.Register(registry.Info{ID: ID, Title: Title, DefaultSize: 3},
		func(src image.Image, opts puzzle.Options, rng puzzle.Rand) (registry.Puzzle, error) {
			return New(src, opts, rng)
		})
}

// State is the lifecycle of a sliding puzzle.
type State int

const (
	StateScrambled State = iota
	StateInProgress
	StateSolved
)

func (s State) String() string {
	switch s {
	case StateScrambled:
		return "Scrambled"
	case StateInProgress:
		return "InProgress"
	case StateSolved:
		return "Solved"
	default:
		return "Unknown"
	}
}

// Puzzle is a sliding-tile puzzle. The piece with the highest absolute index
// is the blank; its pixels are hidden until the puzzle is solved.
type Puzzle struct {
	board       *puzzle.Board
	blank       int
	blankPixels *image.RGBA
	state       State
	moves       int
}

// New partitions src, hides the blank piece and scrambles the rest into a
// solvable arrangement that differs from the solved one.
func New(src image.Image, opts puzzle.Options, rng puzzle.Rand) (*Puzzle, error) {
	if opts.PiecesPerSide < 2 {
		return nil, &puzzle.GeometryError{
			PiecesPerSide: opts.PiecesPerSide,
			Reason:        "sliding puzzle needs at least 2 pieces per side",
		}
	}
	b, err := puzzle.NewBoard(src, opts)
	if err != nil {
		return nil, err
	}

	p := &Puzzle{board: b, blank: b.Total() - 1}
	piece := b.Piece(p.blank)
	p.blankPixels = puzzle.Clone(piece.Pixels)
	puzzle.Fill(piece.Pixels, color.RGBA{})

	if err := b.SetOrder(Scramble(rng, b.PiecesPerSide(), opts.Attempts())); err != nil {
		return nil, err
	}
	b.Composite()
	return p, nil
}

// Scramble returns a random solvable order for an n×n board with the blank in
// the last slot. The order never equals the identity.
func Scramble(rng puzzle.Rand, n, attempts int) puzzle.OrderList {
	total := n * n
	base := puzzle.Identity(total - 1)
	var order puzzle.OrderList
	for i := 0; i < attempts; i++ {
		rng.Shuffle(len(base), base.Swap)
		order = normalize(base, n)
		if !order.IsIdentity() {
			return order
		}
	}
	// A 3-cycle keeps parity even.
	order = puzzle.Identity(total)
	order[0], order[1], order[2] = order[1], order[2], order[0]
	return order
}

// normalize appends the blank and, when the arrangement is unsolvable, swaps
// the last two non-blank entries to flip parity.
func normalize(base puzzle.OrderList, n int) puzzle.OrderList {
	order := append(base.Clone(), len(base))
	if !Solvable(order, n) {
		order.Swap(len(base)-2, len(base)-1)
	}
	return order
}

// Solvable reports whether order can reach the identity by sliding moves.
// The blank is the piece with the highest index. Inversions are counted over
// non-blank pieces; on even widths the blank's row, counted from the bottom
// starting at 1, is added and the sum must be odd.
func Solvable(order puzzle.OrderList, n int) bool {
	blank := len(order) - 1
	inv := order.Inversions(blank)
	if n%2 == 1 {
		return inv%2 == 0
	}
	row := n - order.SlotOf(blank)/n
	return (inv+row)%2 == 1
}

func (p *Puzzle) ID() string { return ID }
func (p *Puzzle) Title() string { return Title }
func (p *Puzzle) Board() *puzzle.Board { return p.board }
func (p *Puzzle) Image() *image.RGBA { return p.board.Image() }
func (p *Puzzle) Moves() int { return p.moves }
func (p *Puzzle) Solved() bool { return p.state == StateSolved }
func (p *Puzzle) State() State { return p.state }
func (p *Puzzle) Blank() int { return p.blank }
func (p *Puzzle) BlankSlot() int { return p.board.SlotOf(p.blank) }
func (p *Puzzle) Order() puzzle.OrderList { return p.board.Order() }

// TileCanMove reports whether the tile in slot shares a row or column with
// the blank. It returns the direction the tiles would slide and the slots
// that move, starting at slot and ending next to the blank. Clicking the
// blank itself, or a tile off its row and column, returns DirNone.
func (p *Puzzle) TileCanMove(slot int) (core.Direction, []int) {
	blankSlot := p.BlankSlot()
	if slot == blankSlot || slot < 0 || slot >= p.board.Total() {
		return core.DirNone, nil
	}
	c := p.board.SlotCoord(slot)
	bc := p.board.SlotCoord(blankSlot)

	var dir core.Direction
	switch {
	case c.X == bc.X && bc.Y > c.Y:
		dir = core.DirDown
	case c.X == bc.X:
		dir = core.DirUp
	case c.Y == bc.Y && bc.X > c.X:
		dir = core.DirRight
	case c.Y == bc.Y:
		dir = core.DirLeft
	default:
		return core.DirNone, nil
	}

	var run []int
	for cur := c; cur != bc; cur = cur.Add(dir.Delta()) {
		run = append(run, p.board.SlotIndex(cur))
	}
	return dir, run
}

// move shifts the run between slot and the blank one step toward the blank.
// The blank ends up in slot.
func (p *Puzzle) move(slot int) bool {
	dir, run := p.TileCanMove(slot)
	if dir == core.DirNone {
		return false
	}
	cur := p.BlankSlot()
	for i := len(run) - 1; i >= 0; i-- {
		p.board.Swap(cur, run[i])
		cur = run[i]
	}
	return true
}

// Click applies a move at slot. It returns false when the tile cannot move
// or the puzzle is already solved.
func (p *Puzzle) Click(slot int, out *puzzle.Events) bool {
	if p.state == StateSolved || !p.move(slot) {
		return false
	}
	p.moves++
	p.state = StateInProgress

	if p.board.Order().IsIdentity() {
		// Restore the hidden piece before the final composite.
		copy(p.board.Piece(p.blank).Pixels.Pix, p.blankPixels.Pix)
		p.state = StateSolved
	}
	p.board.Composite()

	out.Emit(puzzle.EventTileUpdated, slot)
	if p.state == StateSolved {
		out.Emit(puzzle.EventPuzzleSolved, -1)
	}
	return true
}

// HandleInput moves tiles on pointer release. Arrow keys and WASD slide the
// tile next to the blank in the pressed direction.
func (p *Puzzle) HandleInput(ev core.InputEvent, out *puzzle.Events) {
	if p.state == StateSolved {
		return
	}
	switch ev.Kind {
	case core.EventPointerUp:
		if slot, ok := p.board.TileIndexAt(ev.Pos); ok {
			p.Click(slot, out)
		}
	case core.EventKeyDown:
		dir := core.KeyDirection(ev.Key)
		if dir == core.DirNone {
			return
		}
		bc := p.board.SlotCoord(p.BlankSlot())
		if slot := p.board.SlotIndex(bc.Sub(dir.Delta())); slot >= 0 {
			p.Click(slot, out)
		}
	}
}
