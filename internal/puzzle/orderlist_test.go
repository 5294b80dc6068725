package puzzle

import "testing"

func TestOrderListPredicates(t *testing.T) {
	tests := []struct {
		name     string
		order    OrderList
		identity bool
		perm     bool
	}{
		{"identity", Identity(4), true, true},
		{"swapped", OrderList{1, 0, 2, 3}, false, true},
		{"duplicate", OrderList{0, 0, 2, 3}, false, false},
		{"gap", OrderList{0, 1, 2, 5}, false, false},
		{"empty", OrderList{}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.order.IsIdentity(); got != tt.identity {
				t.Errorf("IsIdentity() = %v, want %v", got, tt.identity)
			}
			if got := tt.order.IsPermutation(); got != tt.perm {
				t.Errorf("IsPermutation() = %v, want %v", got, tt.perm)
			}
		})
	}
}

func TestInversions(t *testing.T) {
	tests := []struct {
		order OrderList
		skip  int
		want  int
	}{
		{OrderList{0, 1, 2, 3}, -1, 0},
		{OrderList{1, 0, 2, 3}, -1, 1},
		{OrderList{3, 2, 1, 0}, -1, 6},
		{OrderList{3, 2, 1, 0}, 3, 3},
		{OrderList{1, 0, 2, 3, 4, 5, 6, 7, 8}, 8, 1},
	}

	for _, tt := range tests {
		if got := tt.order.Inversions(tt.skip); got != tt.want {
			t.Errorf("%v.Inversions(%d) = %d, want %d", tt.order, tt.skip, got, tt.want)
		}
	}
}

func TestOrderListCloneIsIndependent(t *testing.T) {
	o := Identity(3)
	c := o.Clone()
	c.Swap(0, 2)
	if !o.IsIdentity() {
		t.Error("modifying a clone changed the original")
	}
	if c.SlotOf(2) != 0 || c.SlotOf(7) != -1 {
		t.Errorf("SlotOf on %v returned wrong slots", c)
	}
}

func TestEventsFIFO(t *testing.T) {
	var ev Events
	ev.Emit(EventTileUpdated, 3)
	ev.Emit(EventTileUpdated, 1)
	ev.Emit(EventPuzzleSolved, -1)

	if ev.Len() != 3 || !ev.Has(EventPuzzleSolved) {
		t.Fatalf("expected 3 pending events including SOLVED, got %d", ev.Len())
	}

	got := ev.Drain()
	want := []Event{{EventTileUpdated, 3}, {EventTileUpdated, 1}, {EventPuzzleSolved, -1}}
	if len(got) != len(want) {
		t.Fatalf("Drain() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}

	if again := ev.Drain(); len(again) != 0 {
		t.Errorf("second Drain() = %v, want empty", again)
	}

	var nilQueue *Events
	nilQueue.Emit(EventPuzzleSolved, -1)
	if nilQueue.Len() != 0 {
		t.Error("nil queue should ignore emits")
	}
}

func TestEventTypeString(t *testing.T) {
	if EventTileUpdated.String() != "TILE_UPDATED" || EventPuzzleSolved.String() != "PUZZLE_SOLVED" {
		t.Error("unexpected event names")
	}
}
