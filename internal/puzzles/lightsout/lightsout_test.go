package lightsout

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tile-puzzles/internal/core"
	"github.com/vovakirdan/tile-puzzles/internal/puzzle"
)

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

func newPuzzle(t *testing.T, n int, seed int64) *Puzzle {
	t.Helper()
	p, err := New(puzzle.SampleImage(8*n, 8*n), puzzle.Options{PiecesPerSide: n}, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return p
}

// turnOff turns every light off without counting moves.
func turnOff(t *testing.T, p *Puzzle) {
	t.Helper()
	presses, ok := Solve(p.board.PiecesPerSide(), p.lights)
	if !ok {
		t.Fatalf("lights %v should be solvable", p.lights)
	}
	for _, slot := range presses {
		p.Invert(p.Neighbors(slot))
	}
	if p.Lit() != 0 {
		t.Fatalf("Solve presses left %d lights on", p.Lit())
	}
	p.board.Composite()
}

func TestNeighbors(t *testing.T) {
	p := newPuzzle(t, 3, 1)

	tests := []struct {
		name string
		slot int
		want int
	}{
		{"corner", 0, 3},
		{"edge", 1, 4},
		{"center", 4, 5},
		{"right edge", 5, 4},
		{"far corner", 8, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(p.Neighbors(tt.slot)); got != tt.want {
				t.Errorf("len(Neighbors(%d)) = %d, want %d", tt.slot, got, tt.want)
			}
		})
	}

	// Slot 2 is the end of row 0; slot 3 starts row 1 and must not wrap in.
	for _, s := range p.Neighbors(2) {
		if s == 3 {
			t.Error("Neighbors(2) wrapped into the next row")
		}
	}
}

func TestInvertTwiceIsNoop(t *testing.T) {
	p := newPuzzle(t, 3, 2)
	lights := p.Lights()
	pixels := puzzle.Clone(p.board.Piece(4).Pixels)

	p.Invert(p.Neighbors(4))
	p.Invert(p.Neighbors(4))

	for i, on := range p.Lights() {
		if on != lights[i] {
			t.Fatalf("light %d changed after double invert", i)
		}
	}
	if !puzzle.Equal(pixels, p.board.Piece(4).Pixels) {
		t.Error("pixels changed after double invert")
	}
}

func TestSinglePressFromAllOff(t *testing.T) {
	p := newPuzzle(t, 4, 3)
	turnOff(t, p)

	for _, slot := range []int{0, 1, 5, 15} {
		group := p.Neighbors(slot)
		p.Invert(group)
		if p.Lit() != len(group) {
			t.Errorf("press %d lit %d lights, want %d", slot, p.Lit(), len(group))
		}
		p.Invert(group)
	}
}

func TestScrambleSolvable(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5} {
		for seed := int64(1); seed <= 10; seed++ {
			p := newPuzzle(t, n, seed)
			if p.Solved() || p.Lit() == 0 {
				t.Errorf("n=%d seed=%d: scramble left every light off", n, seed)
			}
			if _, ok := Solve(n, p.Lights()); !ok {
				t.Errorf("n=%d seed=%d: scramble is not solvable", n, seed)
			}
		}
	}
}

func TestScrambleRerollsAllOff(t *testing.T) {
	// Four presses on slot 0 cancel out; the second pass nets slot 0 and slot 1.
	rng := &intRand{ints: []int{0, 0, 0, 0, 0, 0, 0, 1}}
	p, err := New(puzzle.SampleImage(16, 16), puzzle.Options{PiecesPerSide: 2}, rng)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	want := []bool{false, false, true, true}
	for i, on := range p.Lights() {
		if on != want[i] {
			t.Fatalf("Lights() = %v, want %v", p.Lights(), want)
		}
	}
}

func TestSolveByClicking(t *testing.T) {
	p := newPuzzle(t, 5, 11)
	presses, ok := Solve(5, p.Lights())
	if !ok || len(presses) == 0 {
		t.Fatalf("Solve failed for %v", p.Lights())
	}
	if hint, ok := p.Hint(); !ok || hint != presses[0] {
		t.Errorf("Hint() = %d, %v, want %d", hint, ok, presses[0])
	}

	var out puzzle.Events
	solved := 0
	ts := p.board.TileSize()
	for _, slot := range presses {
		c := p.board.SlotCoord(slot)
		p.HandleInput(core.PointerUp(core.ButtonLeft, c.X*ts.X+1, c.Y*ts.Y+1), &out)
		for _, ev := range out.Drain() {
			if ev.Type == puzzle.EventPuzzleSolved {
				solved++
			}
		}
	}

	if !p.Solved() || solved != 1 {
		t.Fatalf("Solved() = %v with %d SOLVED events", p.Solved(), solved)
	}
	if p.Moves() != len(presses) {
		t.Errorf("Moves() = %d, want %d", p.Moves(), len(presses))
	}
	if !puzzle.Equal(p.Image(), p.board.Reference()) {
		t.Error("all-off board should show the original picture")
	}
	if _, ok := p.Hint(); ok {
		t.Error("solved puzzle should have no hint")
	}
}

func TestClickEmitsPerTile(t *testing.T) {
	p := newPuzzle(t, 3, 4)
	var out puzzle.Events
	p.Click(4, &out)
	updated := 0
	for _, ev := range out.Drain() {
		if ev.Type == puzzle.EventTileUpdated {
			updated++
		}
	}
	if updated != 5 {
		t.Errorf("center press emitted %d TILE_UPDATED, want 5", updated)
	}
}

func TestSolveUnsolvable(t *testing.T) {
	lights := make([]bool, 25)
	lights[0] = true
	if _, ok := Solve(5, lights); ok {
		t.Error("a lone corner light on 5x5 has no solution")
	}
	if _, ok := Solve(3, make([]bool, 4)); ok {
		t.Error("mismatched light count should fail")
	}
	presses, ok := Solve(3, make([]bool, 9))
	if !ok || len(presses) != 0 {
		t.Errorf("all-off board should need no presses, got %v", presses)
	}
}
