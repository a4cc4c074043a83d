// Package life implements the Game of Life engine: a sparse set of live cells,
// neighbor counting, the B3/S23 rule, the zoom/scroll viewport math and the
// controller that ties them together.
//
// The package has no dependencies on any frontend. Cells are stored as the
// top-left pixel of their block at the current zoom level, so every frontend
// reads positions directly and only needs the block size to draw them.
package life

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// Cell is the position of a grid cell: the top-left pixel of its block at the
// current block size.
type Cell struct {
	X, Y int
}

// Add returns the cell translated by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// CellSet is a sparse set of live cells.
// A cell is present if and only if it is alive.
type CellSet struct {
	cells map[Cell]struct{}
}

// NewCellSet creates a set holding the given cells.
func NewCellSet(cells ...Cell) *CellSet {
	s := &CellSet{cells: make(map[Cell]struct{}, len(cells))}
	for _, c := range cells {
		s.cells[c] = struct{}{}
	}
	return s
}

// Len returns the number of live cells.
func (s *CellSet) Len() int {
	return len(s.cells)
}

// Contains reports whether c is alive.
func (s *CellSet) Contains(c Cell) bool {
	_, ok := s.cells[c]
	return ok
}

// Insert marks c alive. It is a no-op if c is already present.
func (s *CellSet) Insert(c Cell) {
	s.cells[c] = struct{}{}
}

// Remove deletes c and reports whether it was present.
func (s *CellSet) Remove(c Cell) bool {
	if _, ok := s.cells[c]; !ok {
		return false
	}
	delete(s.cells, c)
	return true
}

// Toggle flips the state of c and returns whether it is alive afterwards.
func (s *CellSet) Toggle(c Cell) bool {
	if s.Remove(c) {
		return false
	}
	s.Insert(c)
	return true
}

// All yields every live cell exactly once, in no particular order.
func (s *CellSet) All() iter.Seq[Cell] {
	return maps.Keys(s.cells)
}

// Slice returns the live cells sorted by row, then column.
func (s *CellSet) Slice() []Cell {
	return slices.SortedFunc(s.All(), func(a, b Cell) int {
		if a.Y != b.Y {
			return cmp.Compare(a.Y, b.Y)
		}
		return cmp.Compare(a.X, b.X)
	})
}

// Map returns a new set with fn applied to every cell.
// Cells that collapse onto the same position are merged.
func (s *CellSet) Map(fn func(Cell) Cell) *CellSet {
	out := &CellSet{cells: make(map[Cell]struct{}, len(s.cells))}
	for c := range s.cells {
		out.cells[fn(c)] = struct{}{}
	}
	return out
}

// Translate returns a new set with every cell moved by (dx, dy).
func (s *CellSet) Translate(dx, dy int) *CellSet {
	return s.Map(func(c Cell) Cell { return c.Add(dx, dy) })
}
