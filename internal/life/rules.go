package life

// Survives applies the B3/S23 rule to a single position: a live cell stays
// alive with 2 or 3 live neighbors, a dead cell is born with exactly 3.
func Survives(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// Transition summarizes the changes made by one generation.
type Transition struct {
	Births int
	Deaths int
}

// Stable reports whether the generation changed nothing.
func (t Transition) Stable() bool {
	return t.Births == 0 && t.Deaths == 0
}

// NextGeneration builds the generation that follows cur.
//
// Births and deaths are both decided from counts, which describe cur, and the
// result is written to a fresh set. cur is left untouched.
func NextGeneration(cur *CellSet, counts NeighborCounts) (*CellSet, Transition) {
	next := &CellSet{cells: make(map[Cell]struct{}, cur.Len())}
	var t Transition

	for c, n := range counts.Live {
		if Survives(n, true) {
			next.cells[c] = struct{}{}
		} else {
			t.Deaths++
		}
	}
	for c, n := range counts.Dead {
		if Survives(n, false) {
			next.cells[c] = struct{}{}
			t.Births++
		}
	}

	return next, t
}
