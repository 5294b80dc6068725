package lightsout

// Solve finds a set of slots whose presses turn every light off on an n×n
// board. It row-reduces the press matrix over GF(2); presses are returned in
// ascending slot order. ok is false when lights is not reachable from the
// all-off state.
func Solve(n int, lights []bool) (presses []int, ok bool) {
	total := n * n
	if len(lights) != total {
		return nil, false
	}

	// Row i is the equation for light i: the presses that toggle it, plus
	// the light's current state in the last column.
	m := make([][]bool, total)
	for i := range m {
		row := make([]bool, total+1)
		x, y := i%n, i/n
		row[i] = true
		if x > 0 {
			row[i-1] = true
		}
		if x < n-1 {
			row[i+1] = true
		}
		if y > 0 {
			row[i-n] = true
		}
		if y < n-1 {
			row[i+n] = true
		}
		row[total] = lights[i]
		m[i] = row
	}

	pivots := make([]int, 0, total)
	r := 0
	for col := 0; col < total && r < total; col++ {
		sel := -1
		for i := r; i < total; i++ {
			if m[i][col] {
				sel = i
				break
			}
		}
		if sel < 0 {
			continue
		}
		m[r], m[sel] = m[sel], m[r]
		for i := 0; i < total; i++ {
			if i != r && m[i][col] {
				for k := col; k <= total; k++ {
					m[i][k] = m[i][k] != m[r][k]
				}
			}
		}
		pivots = append(pivots, col)
		r++
	}

	// Zero rows with a set constant are inconsistent.
	for i := r; i < total; i++ {
		if m[i][total] {
			return nil, false
		}
	}

	// Free variables stay unpressed.
	press := make([]bool, total)
	for i, col := range pivots {
		press[col] = m[i][total]
	}
	for slot, on := range press {
		if on {
			presses = append(presses, slot)
		}
	}
	return presses, true
}
