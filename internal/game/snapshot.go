package game

import "github.com/vovakirdan/tui-life/internal/life"

// Snapshot captures the complete session state for determinism testing.
type Snapshot struct {
	Frame      uint64
	Phase      string
	Generation int
	Population int
	Peak       int
	BlockSize  int
	Center     life.Cell
	Cells      []life.Cell // sorted by Y, then X
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	stats := g.ctrl.Stats()
	return Snapshot{
		Frame:      g.frame,
		Phase:      g.ctrl.Phase().String(),
		Generation: stats.Generation,
		Population: stats.Population,
		Peak:       stats.PeakPopulation,
		BlockSize:  g.ctrl.BlockSize(),
		Center:     g.ctrl.Viewport().Center(),
		Cells:      g.ctrl.Cells().Slice(),
	}
}
