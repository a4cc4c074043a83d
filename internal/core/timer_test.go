package core

import (
	"testing"
	"time"
)

func TestPacerFiresOncePerPeriod(t *testing.T) {
	p := NewPacer(200 * time.Millisecond)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	if p.Due(start) {
		t.Fatal("first call should only arm the pacer")
	}

	// Frames at 30 fps for one second.
	fired := 0
	frame := time.Second / 30
	for i := 1; i <= 30; i++ {
		if p.Due(start.Add(time.Duration(i) * frame)) {
			fired++
		}
	}

	if fired != 4 && fired != 5 {
		t.Errorf("fired %d times in one second at 200ms period, expected 4 or 5", fired)
	}
}

func TestPacerNoCatchUp(t *testing.T) {
	p := NewPacer(100 * time.Millisecond)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p.Due(start)

	// A long stall still yields a single generation.
	late := start.Add(time.Second)
	if !p.Due(late) {
		t.Fatal("Due() after a stall should fire")
	}
	if p.Due(late.Add(time.Millisecond)) {
		t.Error("Due() right after firing should not fire again")
	}
	if !p.Due(late.Add(100 * time.Millisecond)) {
		t.Error("Due() one period after firing should fire")
	}
}

func TestPacerRestart(t *testing.T) {
	p := NewPacer(50 * time.Millisecond)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p.Due(start)

	p.Restart()
	if p.Due(start.Add(time.Second)) {
		t.Error("Due() right after Restart should only re-arm")
	}
}

func TestPacerDefaultPeriod(t *testing.T) {
	if got := NewPacer(0).Period(); got != 200*time.Millisecond {
		t.Errorf("Period() = %v, expected 200ms", got)
	}
}
