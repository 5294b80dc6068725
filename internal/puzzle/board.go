package puzzle

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/vovakirdan/tile-puzzles/internal/core"
)

// Options configure a board and the variants built on it.
type Options struct {
	PiecesPerSide int
	OutputSize    core.Point // Zero keeps the source size
	Position      core.Point // Screen-space origin used for pointer mapping

	MaxScrambleAttempts int     // Zero means DefaultMaxScrambleAttempts
	AnchorProbability   float64 // Connector only; zero means DefaultAnchorProbability
}

// DefaultAnchorProbability is the chance a connector tile becomes a locked anchor.
const DefaultAnchorProbability = 0.10

// Attempts returns the effective re-roll bound.
func (o Options) Attempts() int {
	if o.MaxScrambleAttempts <= 0 {
		return DefaultMaxScrambleAttempts
	}
	return o.MaxScrambleAttempts
}

// Anchors returns the effective anchor probability.
func (o Options) Anchors() float64 {
	if o.AnchorProbability <= 0 {
		return DefaultAnchorProbability
	}
	return o.AnchorProbability
}

// Board is the arrangement shared by every variant: the pieces, the order
// list placing them on the grid, and the composited picture.
type Board struct {
	n      int
	total  int
	output core.Point
	pos    core.Point
	tile   core.Point

	order     OrderList
	pieces    []*Piece
	reference *image.RGBA
	image     *image.RGBA
}

// NewBoard partitions src and arranges the pieces in solved order.
func NewBoard(src image.Image, opts Options) (*Board, error) {
	tiles, err := Partition(src, opts.PiecesPerSide, opts.OutputSize)
	if err != nil {
		return nil, err
	}
	n := opts.PiecesPerSide
	b := &Board{
		n:         n,
		total:     n * n,
		output:    core.Pt(tiles.Image.Bounds().Dx(), tiles.Image.Bounds().Dy()),
		pos:       opts.Position,
		tile:      tiles.Tile,
		order:     Identity(n * n),
		pieces:    tiles.Pieces,
		reference: tiles.Image,
	}
	b.Composite()
	return b, nil
}

// PiecesPerSide returns the grid dimension n.
func (b *Board) PiecesPerSide() int { return b.n }

// Total returns n².
func (b *Board) Total() int { return b.total }

// OutputSize returns the pixel size of the composited image after cropping.
func (b *Board) OutputSize() core.Point { return b.output }

// TileSize returns the pixel size of one tile.
func (b *Board) TileSize() core.Point { return b.tile }

// Position returns the screen-space origin.
func (b *Board) Position() core.Point { return b.pos }

// SetPosition moves the board on screen.
func (b *Board) SetPosition(p core.Point) { b.pos = p }

// Order returns a copy of the current order list.
func (b *Board) Order() OrderList { return b.order.Clone() }

// At returns the absolute index of the piece in slot.
func (b *Board) At(slot int) int { return b.order[slot] }

// SetOrder replaces the arrangement. The order must be a permutation of the
// board's pieces; on error the board is unchanged.
func (b *Board) SetOrder(o OrderList) error {
	if len(o) != b.total || !o.IsPermutation() {
		return fmt.Errorf("%w: %v", ErrInvalidOrder, []int(o))
	}
	b.order = o.Clone()
	return nil
}

// Swap exchanges the pieces in two slots.
func (b *Board) Swap(a, c int) { b.order.Swap(a, c) }

// Piece returns the piece with the given absolute index.
func (b *Board) Piece(abs int) *Piece { return b.pieces[abs] }

// SlotOf returns the slot currently holding piece abs.
func (b *Board) SlotOf(abs int) int { return b.order.SlotOf(abs) }

// PieceCoord returns the grid coordinates of the slot holding piece abs.
func (b *Board) PieceCoord(abs int) core.Point {
	return b.SlotCoord(b.SlotOf(abs))
}

// SlotCoord converts a slot index to grid coordinates.
func (b *Board) SlotCoord(slot int) core.Point {
	return core.Pt(slot%b.n, slot/b.n)
}

// SlotIndex converts grid coordinates to a slot index, or -1 when off-grid.
func (b *Board) SlotIndex(p core.Point) int {
	if p.X < 0 || p.Y < 0 || p.X >= b.n || p.Y >= b.n {
		return -1
	}
	return p.Y*b.n + p.X
}

// Neighbors returns slot followed by its orthogonal neighbours that lie on the
// grid. Rows and columns do not wrap.
func (b *Board) Neighbors(slot int) []int {
	out := []int{slot}
	c := b.SlotCoord(slot)
	for _, d := range []core.Direction{core.DirUp, core.DirDown, core.DirLeft, core.DirRight} {
		if i := b.SlotIndex(c.Add(d.Delta())); i >= 0 {
			out = append(out, i)
		}
	}
	return out
}

// Arrange rebuilds the order list from per-piece grid coordinates:
// coords[abs] is where piece abs should sit. The coordinates must cover every
// slot exactly once.
func (b *Board) Arrange(coords []core.Point) error {
	if len(coords) != b.total {
		return fmt.Errorf("%w: got %d coordinates for %d pieces", ErrInvalidOrder, len(coords), b.total)
	}
	order := make(OrderList, b.total)
	for i := range order {
		order[i] = -1
	}
	for abs, c := range coords {
		slot := b.SlotIndex(c)
		if slot < 0 || order[slot] >= 0 {
			return fmt.Errorf("%w: piece %d at %s", ErrInvalidOrder, abs, c)
		}
		order[slot] = abs
	}
	b.order = order
	return nil
}

// Bounds is the screen area the board covers, half-open on both axes.
func (b *Board) Bounds() core.Rect {
	return core.NewRect(b.pos.X, b.pos.Y, b.output.X, b.output.Y)
}

// TileIndexAt maps a screen point to the slot under it. Points outside
// Bounds report false.
func (b *Board) TileIndexAt(p core.Point) (int, bool) {
	if !b.Bounds().Contains(p) {
		return -1, false
	}
	local := p.Sub(b.pos)
	return (local.Y/b.tile.Y)*b.n + local.X/b.tile.X, true
}

// PieceAt maps a screen point to the absolute index of the piece under it.
func (b *Board) PieceAt(p core.Point) (int, bool) {
	slot, ok := b.TileIndexAt(p)
	if !ok {
		return -1, false
	}
	return b.order[slot], true
}

// Composite redraws the full image from the pieces in order-list order and
// returns it. It reads only the current pieces and order list.
func (b *Board) Composite() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.output.X, b.output.Y))
	for slot, abs := range b.order {
		c := b.SlotCoord(slot)
		r := image.Rect(c.X*b.tile.X, c.Y*b.tile.Y, (c.X+1)*b.tile.X, (c.Y+1)*b.tile.Y)
		draw.Draw(img, r, b.pieces[abs].Pixels, image.Point{}, draw.Src)
	}
	b.image = img
	return img
}

// Image returns the most recent composite.
func (b *Board) Image() *image.RGBA { return b.image }

// Reference returns the solved picture: the source resized and cropped.
func (b *Board) Reference() *image.RGBA { return b.reference }
