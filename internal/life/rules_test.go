package life

import "testing"

func step(cells *CellSet, block int) *CellSet {
	next, _ := NextGeneration(cells, CountNeighbors(cells, block))
	return next
}

func TestSurvives(t *testing.T) {
	tests := []struct {
		neighbors int
		alive     bool
		expected  bool
	}{
		{0, true, false},
		{1, true, false},
		{2, true, true},
		{3, true, true},
		{4, true, false},
		{8, true, false},
		{2, false, false},
		{3, false, true},
		{4, false, false},
		{0, false, false},
	}

	for _, tc := range tests {
		if got := Survives(tc.neighbors, tc.alive); got != tc.expected {
			t.Errorf("Survives(%d, %v) = %v, expected %v", tc.neighbors, tc.alive, got, tc.expected)
		}
	}
}

func TestBlockStillLife(t *testing.T) {
	block := gridCells(16, [2]int{4, 4}, [2]int{5, 4}, [2]int{4, 5}, [2]int{5, 5})

	next, tr := NextGeneration(block, CountNeighbors(block, 16))
	if !next.equal(block) {
		t.Errorf("block changed after one step: %v", next.Slice())
	}
	if !tr.Stable() {
		t.Errorf("Transition = %+v, expected stable", tr)
	}
}

func TestBlinkerOscillates(t *testing.T) {
	horizontal := gridCells(16, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	vertical := gridCells(16, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})

	gen1 := step(horizontal, 16)
	if !gen1.equal(vertical) {
		t.Fatalf("after one step got %v, expected %v", gen1.Slice(), vertical.Slice())
	}

	gen2 := step(gen1, 16)
	if !gen2.equal(horizontal) {
		t.Errorf("after two steps got %v, expected %v", gen2.Slice(), horizontal.Slice())
	}
}

func TestGliderTranslates(t *testing.T) {
	const b = 2
	glider := gridCells(b, [2]int{1, 0}, [2]int{2, 1}, [2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2})

	cur := glider
	for range 4 {
		cur = step(cur, b)
	}

	expected := glider.Translate(b, b)
	if !cur.equal(expected) {
		t.Errorf("glider after 4 steps = %v, expected %v", cur.Slice(), expected.Slice())
	}
}

func TestNextGenerationDeterministicAndIsolated(t *testing.T) {
	cells := gridCells(4,
		[2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}, [2]int{2, 1}, [2]int{1, 2},
		[2]int{7, 7}, [2]int{8, 7},
	)
	before := cells.clone()
	counts := CountNeighbors(cells, 4)

	first, t1 := NextGeneration(cells, counts)
	second, t2 := NextGeneration(cells, counts)

	if !first.equal(second) || t1 != t2 {
		t.Errorf("NextGeneration is not deterministic: %v vs %v", first.Slice(), second.Slice())
	}
	if !cells.equal(before) {
		t.Errorf("NextGeneration modified its input: %v, expected %v", cells.Slice(), before.Slice())
	}
	if first == cells {
		t.Error("NextGeneration must return a new set")
	}
}

func TestNextGenerationCountsChanges(t *testing.T) {
	// A lone pair dies out completely.
	pair := gridCells(8, [2]int{0, 0}, [2]int{1, 0})
	next, tr := NextGeneration(pair, CountNeighbors(pair, 8))

	if next.Len() != 0 {
		t.Errorf("pair survived: %v", next.Slice())
	}
	if tr.Deaths != 2 || tr.Births != 0 {
		t.Errorf("Transition = %+v, expected 2 deaths and no births", tr)
	}
}

func TestNextGenerationEmpty(t *testing.T) {
	next, tr := NextGeneration(NewCellSet(), CountNeighbors(NewCellSet(), 16))
	if next.Len() != 0 || !tr.Stable() {
		t.Errorf("empty grid produced %v (%+v)", next.Slice(), tr)
	}
}
