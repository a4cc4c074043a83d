// Package gui provides the desktop window frontend. The window itself needs
// the ebiten build tag; without it Run reports ErrNoWindow.
package gui

import (
	"errors"
	"image/color"
	"time"

	"github.com/vovakirdan/tui-life/internal/core"
)

// ErrNoWindow is returned by Run in builds without the ebiten tag.
var ErrNoWindow = errors.New("gui: the window frontend requires building with -tags ebiten")

// Palette holds the window colors.
type Palette struct {
	Background color.Color
	Grid       color.Color
	Live       color.Color
}

// DefaultPalette returns black cells on a white background with a light grid.
func DefaultPalette() Palette {
	return Palette{
		Background: color.White,
		Grid:       color.RGBA{R: 192, G: 192, B: 192, A: 255},
		Live:       color.Black,
	}
}

// WindowInput is the input state polled from the window in one frame.
type WindowInput struct {
	Enter bool // pressed this frame
	Reset bool // pressed this frame

	// Zoom fires on key release so that a held key zooms once.
	ZoomIn  bool
	ZoomOut bool

	// Arrow keys scroll every frame while held.
	Left, Right, Up, Down bool

	Clicks []core.Point
}

// Frame converts the polled state to an input frame at now.
// Opposite arrows held together cancel out.
func (in WindowInput) Frame(now time.Time) core.InputFrame {
	f := core.NewInputFrame()
	f.Time = now

	// Polling loses the order within a tick. Clicks go first.
	for _, p := range in.Clicks {
		f.Click(p.X, p.Y)
	}

	if in.Enter {
		f.Set(core.ActionConfirm)
	}
	if in.Reset {
		f.Set(core.ActionReset)
	}
	if in.ZoomIn {
		f.Set(core.ActionZoomIn)
	}
	if in.ZoomOut {
		f.Set(core.ActionZoomOut)
	}

	switch {
	case in.Left && !in.Right:
		f.Set(core.ActionPanLeft)
	case in.Right && !in.Left:
		f.Set(core.ActionPanRight)
	}
	switch {
	case in.Up && !in.Down:
		f.Set(core.ActionPanUp)
	case in.Down && !in.Up:
		f.Set(core.ActionPanDown)
	}

	return f
}

// gridLines returns the offsets of the grid lines along an axis of the given
// length.
func gridLines(length, block int) []int {
	if block <= 0 {
		return nil
	}
	lines := make([]int, 0, length/block+1)
	for p := 0; p < length; p += block {
		lines = append(lines, p)
	}
	return lines
}
