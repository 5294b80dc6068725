package flipping

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tile-puzzles/internal/core"
	"github.com/vovakirdan/tile-puzzles/internal/puzzle"
)

// intRand returns scripted Intn results, then zeros.
type intRand struct {
	ints []int
}

func (r *intRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}
func (r *intRand) Float64() float64 { return 0 }
func (r *intRand) Shuffle(n int, swap func(i, j int)) {}

// stripes returns an image whose every column differs, so any flip shows.
func stripes(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 7), G: uint8(y * 5), B: 90, A: 255})
		}
	}
	return img
}

func TestScrambleNotSolved(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		p, err := New(stripes(32, 32), puzzle.Options{PiecesPerSide: 4}, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		if p.Solved() {
			t.Errorf("seed %d: scramble should not start solved", seed)
		}
		if puzzle.Equal(p.Image(), p.Board().Reference()) {
			t.Errorf("seed %d: scrambled image equals the reference", seed)
		}
		if !p.Board().Order().IsIdentity() {
			t.Errorf("seed %d: flipping never permutes tiles", seed)
		}
	}
}

func TestScrambleRerollsNoop(t *testing.T) {
	// First pass flips nothing, second flips slot 0 only.
	rng := &intRand{ints: []int{0, 0, 0, 0, 1, 0, 0, 0}}
	p, err := New(stripes(16, 16), puzzle.Options{PiecesPerSide: 2}, rng)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if p.Solved() {
		t.Fatal("re-rolled scramble should not be solved")
	}
	if !p.Flipped(0) || p.Flipped(1) || p.Flipped(2) || p.Flipped(3) {
		t.Error("only slot 0 should be flipped")
	}
	if hint, ok := p.Hint(); !ok || hint != 0 {
		t.Errorf("Hint() = %d, %v, want 0", hint, ok)
	}
}

func TestSymmetricImageStartsSolved(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	puzzle.Fill(img, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	p, err := New(img, puzzle.Options{PiecesPerSide: 2, MaxScrambleAttempts: 3}, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if !p.Solved() {
		t.Error("an image unchanged by any flip has no unsolved state")
	}
}

func TestFlipTwiceRestores(t *testing.T) {
	p, err := New(stripes(16, 16), puzzle.Options{PiecesPerSide: 2}, rand.New(rand.NewSource(2)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	before := puzzle.Clone(p.Board().Piece(1).Pixels)
	flag := p.Flipped(1)

	p.Flip(1)
	if puzzle.Equal(before, p.Board().Piece(1).Pixels) {
		t.Error("a single flip should change the tile")
	}
	if p.Flipped(1) == flag {
		t.Error("a single flip should toggle the orientation flag")
	}
	p.Flip(1)
	if !puzzle.Equal(before, p.Board().Piece(1).Pixels) || p.Flipped(1) != flag {
		t.Error("flipping twice should restore the tile")
	}
}

func TestClickToSolve(t *testing.T) {
	p, err := New(stripes(24, 24), puzzle.Options{PiecesPerSide: 3}, rand.New(rand.NewSource(9)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	var flipped []int
	for slot := 0; slot < 9; slot++ {
		if p.Flipped(slot) {
			flipped = append(flipped, slot)
		}
	}

	var out puzzle.Events
	solved := 0
	ts := p.Board().TileSize()
	for _, slot := range flipped {
		c := p.Board().SlotCoord(slot)
		p.HandleInput(core.PointerUp(core.ButtonLeft, c.X*ts.X, c.Y*ts.Y), &out)
		for _, ev := range out.Drain() {
			if ev.Type == puzzle.EventPuzzleSolved {
				solved++
			}
		}
	}

	if !p.Solved() || solved != 1 {
		t.Fatalf("Solved() = %v with %d SOLVED events, want solved once", p.Solved(), solved)
	}
	if p.Moves() != len(flipped) {
		t.Errorf("Moves() = %d, want %d", p.Moves(), len(flipped))
	}
	if !puzzle.Equal(p.Image(), p.Board().Reference()) {
		t.Error("solved composite should equal the reference image")
	}

	p.HandleInput(core.PointerUp(core.ButtonLeft, 0, 0), &out)
	if out.Len() != 0 {
		t.Error("input after solve should be ignored")
	}
}

func TestIgnoredInput(t *testing.T) {
	p, err := New(stripes(16, 16), puzzle.Options{PiecesPerSide: 2}, rand.New(rand.NewSource(4)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	var out puzzle.Events
	p.HandleInput(core.PointerUp(core.ButtonLeft, 16, 0), &out)
	p.HandleInput(core.KeyPress(core.KeyUp), &out)
	if out.Len() != 0 || p.Moves() != 0 {
		t.Error("clicks outside the board and key presses should be ignored")
	}
}
