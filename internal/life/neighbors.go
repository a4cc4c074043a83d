package life

// neighborOffsets lists the eight unit offsets around a cell.
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Neighbors returns the eight positions adjacent to c at the given block size.
func Neighbors(c Cell, block int) [8]Cell {
	var out [8]Cell
	for i, off := range neighborOffsets {
		out[i] = c.Add(off[0]*block, off[1]*block)
	}
	return out
}

// NeighborCounts holds the live-neighbor counts of one generation.
//
// Live has an entry for every live cell, including those with no live
// neighbors (count 0). Dead has an entry only for dead positions adjacent to
// at least one live cell, so its counts are always in [1, 8].
type NeighborCounts struct {
	Live map[Cell]int
	Dead map[Cell]int
}

// CountNeighbors counts live neighbors for every position within one step of a
// live cell. Positions further away are never visited: with no live neighbor
// they cannot change state.
func CountNeighbors(cells *CellSet, block int) NeighborCounts {
	counts := NeighborCounts{
		Live: make(map[Cell]int, cells.Len()),
		Dead: make(map[Cell]int, cells.Len()*4),
	}
	for c := range cells.All() {
		counts.Live[c] = 0
	}

	for c := range cells.All() {
		for _, n := range Neighbors(c, block) {
			if _, alive := counts.Live[n]; alive {
				counts.Live[n]++
			} else {
				counts.Dead[n]++
			}
		}
	}
	return counts
}
