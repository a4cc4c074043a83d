package life

import "maps"

// clone returns an independent copy of s.
func (s *CellSet) clone() *CellSet {
	return &CellSet{cells: maps.Clone(s.cells)}
}

// equal reports whether both sets hold exactly the same cells.
func (s *CellSet) equal(other *CellSet) bool {
	return maps.Equal(s.cells, other.cells)
}
