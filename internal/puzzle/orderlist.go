package puzzle

// OrderList maps grid slots to piece identities: OrderList[slot] is the
// absolute index of the piece sitting in that slot. A valid OrderList is
// always a permutation of [0, len).
type OrderList []int

// Identity returns the solved order for total pieces.
func Identity(total int) OrderList {
	o := make(OrderList, total)
	for i := range o {
		o[i] = i
	}
	return o
}

// Clone returns an independent copy.
func (o OrderList) Clone() OrderList {
	out := make(OrderList, len(o))
	copy(out, o)
	return out
}

// IsIdentity reports whether every piece sits in its home slot.
func (o OrderList) IsIdentity() bool {
	for i, v := range o {
		if v != i {
			return false
		}
	}
	return true
}

// IsPermutation reports whether o holds every value in [0, len) exactly once.
func (o OrderList) IsPermutation() bool {
	seen := make([]bool, len(o))
	for _, v := range o {
		if v < 0 || v >= len(o) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// SlotOf returns the slot holding piece abs, or -1.
func (o OrderList) SlotOf(abs int) int {
	for i, v := range o {
		if v == abs {
			return i
		}
	}
	return -1
}

// Swap exchanges the pieces in slots a and b.
func (o OrderList) Swap(a, b int) {
	o[a], o[b] = o[b], o[a]
}

// Equal reports whether two orders are identical.
func (o OrderList) Equal(other OrderList) bool {
	if len(o) != len(other) {
		return false
	}
	for i := range o {
		if o[i] != other[i] {
			return false
		}
	}
	return true
}

// Inversions counts pairs i < j with o[i] > o[j], ignoring the value skip.
// Pass -1 to count over every entry.
func (o OrderList) Inversions(skip int) int {
	count := 0
	for i := 0; i < len(o); i++ {
		if o[i] == skip {
			continue
		}
		for j := i + 1; j < len(o); j++ {
			if o[j] == skip {
				continue
			}
			if o[i] > o[j] {
				count++
			}
		}
	}
	return count
}
