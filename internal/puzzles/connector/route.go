package connector

import "github.com/vovakirdan/tile-puzzles/internal/core"

var steps = [4]core.Point{{X: 1}, {Y: 1}, {X: -1}, {Y: -1}}

// IsSolved reports whether, for every non-white colour with at least two
// tiles, those tiles form a single 4-connected region on the n×n grid.
func IsSolved(n int, colors []Color) bool {
	for c := Red; c < numColors; c++ {
		first := -1
		count := 0
		for slot, sc := range colors {
			if sc == c {
				if first < 0 {
					first = slot
				}
				count++
			}
		}
		if count < 2 {
			continue
		}
		if reached := flood(n, first, func(slot int) bool { return colors[slot] == c }); len(reached) != count {
			return false
		}
	}
	return true
}

// flood returns every slot reachable from start through slots accepted by
// pass, visiting the work-list breadth-first.
func flood(n, start int, pass func(slot int) bool) map[int]bool {
	seen := map[int]bool{start: true}
	work := []int{start}
	for len(work) > 0 {
		cur := work[0]
		work = work[1:]
		x, y := cur%n, cur/n
		for _, d := range steps {
			nx, ny := x+d.X, y+d.Y
			if nx < 0 || ny < 0 || nx >= n || ny >= n {
				continue
			}
			next := ny*n + nx
			if seen[next] || !pass(next) {
				continue
			}
			seen[next] = true
			work = append(work, next)
		}
	}
	return seen
}

// Route looks for a colouring of the free tiles (unlocked and white) that
// connects every colour's anchors. Colours are routed one after another
// with shortest paths, trying every colour order. The returned slice is the
// full solved colour list.
func Route(n int, colors []Color, locked []bool) ([]Color, bool) {
	orders := [][3]Color{
		{Red, Green, Blue}, {Red, Blue, Green},
		{Green, Red, Blue}, {Green, Blue, Red},
		{Blue, Red, Green}, {Blue, Green, Red},
	}
	for _, order := range orders {
		sol := make([]Color, len(colors))
		copy(sol, colors)
		ok := true
		for _, c := range order {
			if !connect(n, sol, locked, c) {
				ok = false
				break
			}
		}
		if ok && IsSolved(n, sol) {
			return sol, true
		}
	}
	return nil, false
}

// connect grows the region of colour c from its first tile, each time
// painting the shortest free path to the nearest unconnected tile of c.
func connect(n int, sol []Color, locked []bool, c Color) bool {
	start := -1
	for slot, sc := range sol {
		if sc == c {
			start = slot
			break
		}
	}
	if start < 0 {
		return true
	}

	for {
		region := flood(n, start, func(slot int) bool { return sol[slot] == c })
		target := -1
		for slot, sc := range sol {
			if sc == c && !region[slot] {
				target = slot
				break
			}
		}
		if target < 0 {
			return true
		}

		path, ok := shortestPath(n, region, func(slot int) bool {
			return sol[slot] == c || (sol[slot] == White && !locked[slot])
		}, func(slot int) bool {
			return sol[slot] == c && !region[slot]
		})
		if !ok {
			return false
		}
		for _, slot := range path {
			sol[slot] = c
		}
	}
}

// shortestPath runs a multi-source BFS from region through passable slots and
// returns the slots between region and the first goal slot reached.
func shortestPath(n int, region map[int]bool, passable, goal func(slot int) bool) ([]int, bool) {
	prev := make(map[int]int, len(region))
	queue := make([]int, 0, len(region))
	for slot := 0; slot < n*n; slot++ {
		if region[slot] {
			prev[slot] = -1
			queue = append(queue, slot)
		}
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		x, y := cur%n, cur/n
		for _, d := range steps {
			nx, ny := x+d.X, y+d.Y
			if nx < 0 || ny < 0 || nx >= n || ny >= n {
				continue
			}
			next := ny*n + nx
			if _, seen := prev[next]; seen || !passable(next) {
				continue
			}
			prev[next] = cur
			if goal(next) {
				var path []int
				for s := prev[next]; s >= 0 && !region[s]; s = prev[s] {
					path = append(path, s)
				}
				return path, true
			}
			queue = append(queue, next)
		}
	}
	return nil, false
}
