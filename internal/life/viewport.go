package life

import "fmt"

// ZoomDirection selects which way a zoom step goes.
type ZoomDirection int

const (
	ZoomIn  ZoomDirection = iota // halve the block size
	ZoomOut                      // double the block size
)

// String returns a human-readable name for the direction.
func (d ZoomDirection) String() string {
	switch d {
	case ZoomIn:
		return "in"
	case ZoomOut:
		return "out"
	default:
		return "unknown"
	}
}

// PanDirection is the direction the viewport appears to move.
type PanDirection int

const (
	PanLeft PanDirection = iota
	PanRight
	PanUp
	PanDown
)

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod is the remainder matching floorDiv; it has the sign of b.
func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}

func mustPositiveBlock(op string, block int) {
	if block <= 0 {
		panic(fmt.Sprintf("life: %s: block size must be positive, got %d", op, block))
	}
}

// Snap returns the cell containing pixel p: p rounded down to a multiple of
// block on both axes. Panics if block <= 0.
func Snap(p Cell, block int) Cell {
	mustPositiveBlock("Snap", block)
	return Cell{
		X: p.X - floorMod(p.X, block),
		Y: p.Y - floorMod(p.Y, block),
	}
}

// Rescale moves a cell stored at oldBlock to its position at newBlock, keeping
// its offset from center (counted in blocks) unchanged. Panics if either block
// size is not positive.
func Rescale(p Cell, oldBlock, newBlock int, center Cell) Cell {
	mustPositiveBlock("Rescale", oldBlock)
	mustPositiveBlock("Rescale", newBlock)

	dx := floorDiv(p.X, oldBlock) - floorDiv(center.X, oldBlock)
	dy := floorDiv(p.Y, oldBlock) - floorDiv(center.Y, oldBlock)
	return Cell{
		X: center.X + newBlock*dx,
		Y: center.Y + newBlock*dy,
	}
}

// Scroll returns a copy of cells translated by (dx, dy). The content moves,
// not the camera: scrolling the view right means a negative dx.
func Scroll(cells *CellSet, dx, dy int) *CellSet {
	return cells.Translate(dx, dy)
}

// ZoomStep computes the block size after one zoom step. At a bound the block
// size is returned unchanged and changed is false.
func ZoomStep(dir ZoomDirection, block, minBlock, maxBlock int) (newBlock int, changed bool) {
	switch dir {
	case ZoomIn:
		if block > minBlock {
			return block / 2, true
		}
	case ZoomOut:
		if block < maxBlock {
			return block * 2, true
		}
	}
	return block, false
}

// Viewport owns the block size and the zoom center of a pixel plane.
type Viewport struct {
	cfg    Config
	block  int
	width  int
	height int
	center Cell
}

// NewViewport creates a viewport over a width x height pixel plane at the
// default block size.
func NewViewport(cfg Config, width, height int) Viewport {
	v := Viewport{cfg: cfg, block: cfg.DefaultBlock}
	v.Resize(width, height)
	return v
}

// BlockSize returns the current block size.
func (v Viewport) BlockSize() int {
	return v.block
}

// Center returns the pixel that stays fixed across zoom steps. It is the plane
// midpoint snapped down to the largest block size, so on planes whose midpoint
// is not a multiple of that size the zoom pivot sits up to one block above and
// left of the visible center.
func (v Viewport) Center() Cell {
	return v.center
}

// Size returns the pixel plane dimensions.
func (v Viewport) Size() (width, height int) {
	return v.width, v.height
}

// Resize changes the pixel plane dimensions and recomputes the center.
// The center is snapped down to the largest block size so that it lies on a
// block boundary at every zoom level. It is therefore not the exact midpoint:
// an 80x46 plane zooms about (32, 16), not (40, 23).
func (v *Viewport) Resize(width, height int) {
	v.width = max(width, 0)
	v.height = max(height, 0)
	v.center = Snap(Cell{X: v.width / 2, Y: v.height / 2}, v.cfg.MaxBlock)
}

// Reset restores the default block size.
func (v *Viewport) Reset() {
	v.block = v.cfg.DefaultBlock
}

// Snap returns the cell under pixel p at the current block size.
func (v Viewport) Snap(p Cell) Cell {
	return Snap(p, v.block)
}

// Zoom applies one zoom step and returns cells repositioned for the new block
// size. When the block size is already at a bound, cells is returned as is and
// changed is false.
func (v *Viewport) Zoom(dir ZoomDirection, cells *CellSet) (out *CellSet, changed bool) {
	next, changed := ZoomStep(dir, v.block, v.cfg.MinBlock, v.cfg.MaxBlock)
	if !changed {
		return cells, false
	}

	old := v.block
	v.block = next
	return cells.Map(func(c Cell) Cell {
		return Rescale(c, old, next, v.center)
	}), true
}

// PanDelta returns the scroll delta for one pan step: one block, applied to
// the content in the direction opposite to the pan.
func (v Viewport) PanDelta(dir PanDirection) (dx, dy int) {
	switch dir {
	case PanLeft:
		return v.block, 0
	case PanRight:
		return -v.block, 0
	case PanUp:
		return 0, v.block
	case PanDown:
		return 0, -v.block
	}
	return 0, 0
}

// Visible reports whether any part of the block at c falls inside the plane.
func (v Viewport) Visible(c Cell) bool {
	return c.X+v.block > 0 && c.X < v.width && c.Y+v.block > 0 && c.Y < v.height
}
