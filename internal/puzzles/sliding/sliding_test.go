package sliding

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tile-puzzles/internal/core"
	"github.com/vovakirdan/tile-puzzles/internal/puzzle"
)

// scriptedRand replays fixed swap sequences for successive Shuffle calls.
type scriptedRand struct {
	swaps [][][2]int
	call  int
}

func (r *scriptedRand) Intn(n int) int   { return 0 }
func (r *scriptedRand) Float64() float64 { return 0 }
func (r *scriptedRand) Shuffle(n int, swap func(i, j int)) {
	if r.call < len(r.swaps) {
		for _, s := range r.swaps[r.call] {
			swap(s[0], s[1])
		}
	}
	r.call++
}

func newPuzzle(t *testing.T, n int, rng puzzle.Rand) *Puzzle {
	t.Helper()
	p, err := New(puzzle.SampleImage(10*n, 10*n), puzzle.Options{PiecesPerSide: n}, rng)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return p
}

// setOrder puts the board into a known arrangement mid-game.
func setOrder(t *testing.T, p *Puzzle, o puzzle.OrderList) {
	t.Helper()
	if err := p.board.SetOrder(o); err != nil {
		t.Fatalf("SetOrder failed: %v", err)
	}
	p.state = StateInProgress
	p.board.Composite()
}

func clickAt(p *Puzzle, slot int) core.InputEvent {
	c := p.board.SlotCoord(slot)
	ts := p.board.TileSize()
	return core.PointerUp(core.ButtonLeft, c.X*ts.X+ts.X/2, c.Y*ts.Y+ts.Y/2)
}

func countSolved(events []puzzle.Event) int {
	n := 0
	for _, ev := range events {
		if ev.Type == puzzle.EventPuzzleSolved {
			n++
		}
	}
	return n
}

func TestScrambleSolvable(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5} {
		for seed := int64(1); seed <= 40; seed++ {
			order := Scramble(rand.New(rand.NewSource(seed)), n, puzzle.DefaultMaxScrambleAttempts)
			if !order.IsPermutation() {
				t.Fatalf("n=%d seed=%d: %v is not a permutation", n, seed, order)
			}
			if order.IsIdentity() {
				t.Errorf("n=%d seed=%d: scramble produced the identity", n, seed)
			}
			if !Solvable(order, n) {
				t.Errorf("n=%d seed=%d: scramble %v is unsolvable", n, seed, order)
			}
			if order[len(order)-1] != n*n-1 {
				t.Errorf("n=%d seed=%d: blank should start in the last slot", n, seed)
			}
		}
	}
}

func TestScrambleNeverIdentity(t *testing.T) {
	// Every shuffle leaves the base untouched.
	order := Scramble(&scriptedRand{}, 3, 5)
	if order.IsIdentity() || !Solvable(order, 3) {
		t.Errorf("fallback scramble %v should be solvable and scrambled", order)
	}
}

func TestNormalizeFixesParity(t *testing.T) {
	base := puzzle.OrderList{1, 0, 2, 3, 4, 5, 6, 7}
	if Solvable(append(base.Clone(), 8), 3) {
		t.Fatal("single transposition should be unsolvable")
	}
	got := normalize(base, 3)
	want := puzzle.OrderList{1, 0, 2, 3, 4, 5, 7, 6, 8}
	if !got.Equal(want) {
		t.Errorf("normalize = %v, want %v", got, want)
	}
	if !Solvable(got, 3) || got.IsIdentity() {
		t.Errorf("normalized order %v should be solvable and scrambled", got)
	}
}

func TestSolvable(t *testing.T) {
	tests := []struct {
		name  string
		order puzzle.OrderList
		n     int
		want  bool
	}{
		{"3x3 identity", puzzle.Identity(9), 3, true},
		{"3x3 single swap", puzzle.OrderList{1, 0, 2, 3, 4, 5, 6, 7, 8}, 3, false},
		{"3x3 blank in middle", puzzle.OrderList{0, 1, 2, 3, 8, 5, 6, 7, 4}, 3, true},
		{"2x2 blank moved left", puzzle.OrderList{0, 1, 3, 2}, 2, true},
		{"2x2 single swap", puzzle.OrderList{1, 0, 2, 3}, 2, false},
		{"4x4 fourteen fifteen", puzzle.OrderList{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 14, 13, 15}, 4, false},
		{"4x4 blank moved up", puzzle.OrderList{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 15, 12, 13, 14, 11}, 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Solvable(tt.order, tt.n); got != tt.want {
				t.Errorf("Solvable(%v) = %v, want %v", tt.order, got, tt.want)
			}
		})
	}
}

func TestNewRejectsTinyGrid(t *testing.T) {
	_, err := New(puzzle.SampleImage(10, 10), puzzle.Options{PiecesPerSide: 1}, rand.New(rand.NewSource(1)))
	if !errors.Is(err, puzzle.ErrInvalidGeometry) {
		t.Errorf("New(n=1) error = %v, want ErrInvalidGeometry", err)
	}
}

func TestNewHidesBlank(t *testing.T) {
	p := newPuzzle(t, 3, rand.New(rand.NewSource(7)))
	if p.State() != StateScrambled {
		t.Errorf("State() = %v, want Scrambled", p.State())
	}
	px := p.board.Piece(p.Blank()).Pixels
	for _, v := range px.Pix {
		if v != 0 {
			t.Fatal("blank piece pixels should be zeroed")
		}
	}
	if p.BlankSlot() != 8 {
		t.Errorf("BlankSlot() = %d, want 8", p.BlankSlot())
	}
}

func TestTileCanMove(t *testing.T) {
	p := newPuzzle(t, 3, rand.New(rand.NewSource(1)))
	setOrder(t, p, puzzle.OrderList{0, 1, 2, 3, 8, 5, 6, 7, 4})

	tests := []struct {
		slot int
		dir  core.Direction
		run  []int
	}{
		{1, core.DirDown, []int{1}},
		{7, core.DirUp, []int{7}},
		{3, core.DirRight, []int{3}},
		{5, core.DirLeft, []int{5}},
		{0, core.DirNone, nil},
		{4, core.DirNone, nil},
	}

	for _, tt := range tests {
		dir, run := p.TileCanMove(tt.slot)
		if dir != tt.dir || len(run) != len(tt.run) {
			t.Errorf("TileCanMove(%d) = %v %v, want %v %v", tt.slot, dir, run, tt.dir, tt.run)
			continue
		}
		for i := range run {
			if run[i] != tt.run[i] {
				t.Errorf("TileCanMove(%d) run = %v, want %v", tt.slot, run, tt.run)
			}
		}
	}
}

func TestMoveRun(t *testing.T) {
	p := newPuzzle(t, 3, rand.New(rand.NewSource(1)))
	setOrder(t, p, puzzle.OrderList{0, 1, 2, 3, 4, 5, 6, 8, 7})

	dir, run := p.TileCanMove(1)
	if dir != core.DirDown || len(run) != 2 {
		t.Fatalf("TileCanMove(1) = %v %v, want down over two tiles", dir, run)
	}

	var out puzzle.Events
	if !p.Click(1, &out) {
		t.Fatal("Click(1) should move the column")
	}
	want := puzzle.OrderList{0, 8, 2, 3, 1, 5, 6, 4, 7}
	if !p.Order().Equal(want) {
		t.Errorf("Order() = %v, want %v", p.Order(), want)
	}
	if p.Moves() != 1 {
		t.Errorf("Moves() = %d, want 1", p.Moves())
	}
	if !Solvable(p.Order(), 3) {
		t.Error("legal move should preserve solvability")
	}

	if p.Click(0, &out) {
		t.Error("tile off the blank's row and column should not move")
	}
	if p.Moves() != 1 {
		t.Error("rejected click should not count as a move")
	}
}

func TestClickSolvesOnce(t *testing.T) {
	p := newPuzzle(t, 2, rand.New(rand.NewSource(3)))
	setOrder(t, p, puzzle.OrderList{0, 1, 3, 2})

	var out puzzle.Events
	p.HandleInput(clickAt(p, 3), &out)

	if !p.Order().IsIdentity() {
		t.Fatalf("Order() = %v, want identity", p.Order())
	}
	events := out.Drain()
	if countSolved(events) != 1 {
		t.Errorf("expected exactly one PUZZLE_SOLVED, got %v", events)
	}
	if events[0].Type != puzzle.EventTileUpdated || events[0].Slot != 3 {
		t.Errorf("first event = %v, want TILE_UPDATED for slot 3", events[0])
	}
	if !p.Solved() || p.State() != StateSolved {
		t.Error("puzzle should be solved")
	}
	if !puzzle.Equal(p.Image(), p.board.Reference()) {
		t.Error("solved image should include the restored blank piece")
	}

	p.HandleInput(clickAt(p, 2), &out)
	if out.Len() != 0 {
		t.Errorf("input after solve should be ignored, got %v", out.Drain())
	}
}

func TestScriptedScrambleEndToEnd(t *testing.T) {
	// [1 0 2] is odd, so the last two entries are swapped: [1 2 0] + blank.
	rng := &scriptedRand{swaps: [][][2]int{{{0, 1}}}}
	p := newPuzzle(t, 2, rng)

	if want := (puzzle.OrderList{1, 2, 0, 3}); !p.Order().Equal(want) {
		t.Fatalf("scrambled order = %v, want %v", p.Order(), want)
	}

	var out puzzle.Events
	var all []puzzle.Event
	for i, slot := range []int{1, 0, 2, 3} {
		p.HandleInput(clickAt(p, slot), &out)
		events := out.Drain()
		all = append(all, events...)
		if i < 3 && p.Solved() {
			t.Fatalf("solved too early after click %d", i)
		}
	}

	if !p.Order().IsIdentity() {
		t.Errorf("Order() = %v, want identity", p.Order())
	}
	if countSolved(all) != 1 {
		t.Errorf("expected exactly one PUZZLE_SOLVED, got %v", all)
	}
	if all[len(all)-1].Type != puzzle.EventPuzzleSolved {
		t.Error("PUZZLE_SOLVED should be the last event")
	}
}

func TestKeyboardMoves(t *testing.T) {
	p := newPuzzle(t, 3, rand.New(rand.NewSource(1)))
	setOrder(t, p, puzzle.OrderList{0, 1, 2, 3, 4, 5, 6, 8, 7})

	var out puzzle.Events
	p.HandleInput(core.KeyPress(core.KeyRight), &out)
	if want := (puzzle.OrderList{0, 1, 2, 3, 4, 5, 8, 6, 7}); !p.Order().Equal(want) {
		t.Fatalf("after right: %v, want %v", p.Order(), want)
	}

	// No tile sits left of the blank.
	p.HandleInput(core.KeyPress(core.KeyRight), &out)
	if p.Moves() != 1 {
		t.Errorf("move off the board should be ignored, moves = %d", p.Moves())
	}

	p.HandleInput(core.KeyPress("a"), &out)
	p.HandleInput(core.KeyPress(core.KeyLeft), &out)
	if !p.Solved() {
		t.Errorf("Order() = %v, expected solved", p.Order())
	}
	if countSolved(out.Drain()) != 1 {
		t.Error("expected exactly one PUZZLE_SOLVED")
	}
}

func TestPointerOutsideIgnored(t *testing.T) {
	p := newPuzzle(t, 3, rand.New(rand.NewSource(5)))
	before := p.Order()

	var out puzzle.Events
	p.HandleInput(core.PointerUp(core.ButtonLeft, 30, 5), &out)
	p.HandleInput(core.PointerUp(core.ButtonLeft, -1, 5), &out)
	if out.Len() != 0 || !p.Order().Equal(before) {
		t.Error("clicks outside the board should be ignored")
	}
}

func TestSolveReachesIdentity(t *testing.T) {
	for seed := int64(1); seed <= 3; seed++ {
		p := newPuzzle(t, 3, rand.New(rand.NewSource(seed)))
		path, ok := Solve(p.Order(), 3)
		if !ok {
			t.Fatalf("seed %d: Solve failed for %v", seed, p.Order())
		}
		if hint, ok := p.Hint(); !ok || hint != path[0] {
			t.Errorf("seed %d: Hint() = %d, %v, want %d", seed, hint, ok, path[0])
		}
		var out puzzle.Events
		for _, slot := range path {
			if !p.Click(slot, &out) {
				t.Fatalf("seed %d: solver suggested illegal click %d", seed, slot)
			}
		}
		if !p.Solved() {
			t.Errorf("seed %d: following the solution should solve the puzzle", seed)
		}
		if _, ok := p.Hint(); ok {
			t.Error("solved puzzle should have no hint")
		}
	}
}

func TestSolveLimits(t *testing.T) {
	if _, ok := Solve(puzzle.Identity(16), 4); ok {
		t.Error("Solve should refuse boards larger than MaxHintSide")
	}
	if _, ok := Solve(puzzle.OrderList{1, 0, 2, 3}, 2); ok {
		t.Error("Solve should fail on unsolvable orders")
	}
	path, ok := Solve(puzzle.Identity(4), 2)
	if !ok || len(path) != 0 {
		t.Errorf("Solve(identity) = %v, %v, want empty path", path, ok)
	}
}
