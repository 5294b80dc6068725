package sliding

import "github.com/vovakirdan/tile-puzzles/internal/puzzle"

// MaxHintSide is the largest board the breadth-first solver searches.
// A 3×3 board has 181440 reachable states; 4×4 is far beyond a keypress.
const MaxHintSide = 3

// Solve returns the shortest sequence of slots to click, each adjacent to the
// blank at the time, that turns order into the identity. ok is false when the
// board is larger than MaxHintSide or the order is unsolvable.
func Solve(order puzzle.OrderList, n int) (path []int, ok bool) {
	if n > MaxHintSide || len(order) != n*n {
		return nil, false
	}
	if order.IsIdentity() {
		return nil, true
	}

	type step struct {
		prev  string
		click int
	}
	blank := byte(len(order) - 1)
	start := encode(order)
	goal := encode(puzzle.Identity(len(order)))
	seen := map[string]step{start: {click: -1}}
	queue := []string{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		bs := indexOf(cur, blank)
		bx, by := bs%n, bs/n
		for _, d := range [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
			x, y := bx+d[0], by+d[1]
			if x < 0 || y < 0 || x >= n || y >= n {
				continue
			}
			slot := y*n + x
			next := []byte(cur)
			next[bs], next[slot] = next[slot], next[bs]
			key := string(next)
			if _, visited := seen[key]; visited {
				continue
			}
			seen[key] = step{prev: cur, click: slot}
			if key == goal {
				for k := key; seen[k].click >= 0; k = seen[k].prev {
					path = append(path, seen[k].click)
				}
				for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
					path[i], path[j] = path[j], path[i]
				}
				return path, true
			}
			queue = append(queue, key)
		}
	}
	return nil, false
}

func encode(o puzzle.OrderList) string {
	b := make([]byte, len(o))
	for i, v := range o {
		b[i] = byte(v)
	}
	return string(b)
}

func indexOf(s string, v byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == v {
			return i
		}
	}
	return -1
}

// Hint returns the next slot to click on the shortest path to the solution.
func (p *Puzzle) Hint() (int, bool) {
	if p.state == StateSolved {
		return -1, false
	}
	path, ok := Solve(p.board.Order(), p.board.PiecesPerSide())
	if !ok || len(path) == 0 {
		return -1, false
	}
	return path[0], true
}
