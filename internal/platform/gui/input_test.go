package gui

import (
	"slices"
	"testing"
	"time"

	"github.com/vovakirdan/tui-life/internal/core"
)

func TestWindowInputFrame(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		in       WindowInput
		expected []core.Action
	}{
		{"nothing", WindowInput{}, nil},
		{"enter", WindowInput{Enter: true}, []core.Action{core.ActionConfirm}},
		{"reset", WindowInput{Reset: true}, []core.Action{core.ActionReset}},
		{"zoom", WindowInput{ZoomIn: true, ZoomOut: true}, []core.Action{core.ActionZoomIn, core.ActionZoomOut}},
		{"held left", WindowInput{Left: true}, []core.Action{core.ActionPanLeft}},
		{"diagonal", WindowInput{Right: true, Down: true}, []core.Action{core.ActionPanRight, core.ActionPanDown}},
		{"opposites cancel", WindowInput{Left: true, Right: true, Up: true}, []core.Action{core.ActionPanUp}},
	}

	all := []core.Action{
		core.ActionConfirm, core.ActionReset, core.ActionZoomIn, core.ActionZoomOut,
		core.ActionPanLeft, core.ActionPanRight, core.ActionPanUp, core.ActionPanDown,
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.in.Frame(now)
			if !f.Time.Equal(now) {
				t.Errorf("Time = %v, expected %v", f.Time, now)
			}
			if len(f.Events) != len(tt.expected) {
				t.Errorf("Events = %v, expected %d events", f.Events, len(tt.expected))
			}
			for _, a := range all {
				want := slices.Contains(tt.expected, a)
				if f.Has(a) != want {
					t.Errorf("Has(%v) = %v, expected %v", a, f.Has(a), want)
				}
			}
		})
	}
}

func TestWindowInputClicks(t *testing.T) {
	in := WindowInput{Clicks: []core.Point{{X: 10, Y: 20}, {X: 30, Y: 40}}}
	f := in.Frame(time.Now())
	if got := f.Clicks(); !slices.Equal(got, in.Clicks) {
		t.Errorf("Clicks() = %v, expected %v", got, in.Clicks)
	}
}

func TestWindowInputClicksBeforeKeys(t *testing.T) {
	in := WindowInput{Enter: true, ZoomIn: true, Clicks: []core.Point{{X: 5, Y: 6}}}
	f := in.Frame(time.Now())

	if len(f.Events) != 3 {
		t.Fatalf("Events = %v, expected 3 events", f.Events)
	}
	if f.Events[0].Action != core.ActionClick || f.Events[0].Pos != (core.Point{X: 5, Y: 6}) {
		t.Errorf("Events[0] = %+v, expected the click", f.Events[0])
	}
}

func TestGridLines(t *testing.T) {
	if got := gridLines(64, 16); !slices.Equal(got, []int{0, 16, 32, 48}) {
		t.Errorf("gridLines(64, 16) = %v", got)
	}
	if got := gridLines(10, 4); !slices.Equal(got, []int{0, 4, 8}) {
		t.Errorf("gridLines(10, 4) = %v", got)
	}
	if got := gridLines(10, 0); got != nil {
		t.Errorf("gridLines(10, 0) = %v, expected nil", got)
	}
}

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()
	if p.Background == nil || p.Grid == nil || p.Live == nil {
		t.Errorf("DefaultPalette() has unset colors: %+v", p)
	}
}
