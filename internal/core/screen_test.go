package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		ew   int
		eh   int
	}{
		{"terminal", 80, 24, 80, 24},
		{"empty", 0, 0, 0, 0},
		{"negative size", -3, 5, 0, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(tc.w, tc.h)
			if s.Width() != tc.ew || s.Height() != tc.eh {
				t.Fatalf("size = %dx%d, expected %dx%d", s.Width(), s.Height(), tc.ew, tc.eh)
			}
			if strings.Trim(s.String(), " \n") != "" {
				t.Errorf("new screen is not blank: %q", s.String())
			}
		})
	}
}

func TestScreenOutOfBoundsIsIgnored(t *testing.T) {
	s := NewScreen(4, 2)
	for _, p := range []Point{{X: -1, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: 2}} {
		s.SetColor(p.X, p.Y, '█', ColorGreen)
		if got := s.GetCell(p.X, p.Y); got != blankCell {
			t.Errorf("GetCell(%d, %d) = %+v, expected a blank cell", p.X, p.Y, got)
		}
	}
	if s.String() != "    \n    " {
		t.Errorf("String() = %q, expected an untouched screen", s.String())
	}
}

func TestScreenDrawRectLiveBlock(t *testing.T) {
	s := NewScreen(8, 4)
	s.DrawRect(NewRect(2, 1, 4, 2), '█', ColorBrightGreen)

	expected := []string{
		"        ",
		"  ████  ",
		"  ████  ",
		"        ",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected %q", y, got, want)
		}
	}
	if c := s.GetCell(5, 2).Color; c != ColorBrightGreen {
		t.Errorf("GetCell(5, 2).Color = %v, expected bright green", c)
	}
	if c := s.GetCell(6, 2).Color; c != ColorDefault {
		t.Errorf("GetCell(6, 2).Color = %v, expected default", c)
	}
}

func TestScreenDrawRectClipsPartialBlock(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawRect(NewRect(-2, 1, 4, 8), '█', ColorGreen)

	expected := "    \n██  \n██  "
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestScreenTextAndCentering(t *testing.T) {
	s := NewScreen(12, 3)
	s.DrawTextColor(0, 0, "Gen 7", ColorYellow)
	s.DrawTextCentered(1, "Pop 3")
	s.DrawText(9, 2, "quit") // clipped at the right edge

	expected := []string{
		"Gen 7       ",
		"   Pop 3    ",
		"         qui",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected %q", y, got, want)
		}
	}
	if s.GetCell(4, 0).Color != ColorYellow {
		t.Error("DrawTextColor should color every rune")
	}
	if s.GetCell(3, 1).Color != ColorDefault {
		t.Error("DrawTextCentered should use the default color")
	}
}

func TestScreenDrawBoxAroundHint(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4))

	expected := "┌────┐\n│    │\n│    │\n└────┘"
	if got := s.String(); got != expected {
		t.Errorf("String() =\n%s\nexpected\n%s", got, expected)
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(6, 3)
	s.DrawText(0, 0, "Editing")
	s.DrawText(0, 2, "HUD")

	s.Resize(4, 2)
	if got := s.String(); got != "Edit\n    " {
		t.Errorf("after shrinking: %q", got)
	}

	s.Resize(8, 3)
	if got := s.Row(0); got != "Edit    " {
		t.Errorf("after growing, Row(0) = %q", got)
	}
	if got := s.Row(2); got != "        " {
		t.Errorf("after growing, Row(2) = %q, expected blank", got)
	}
	if got := s.Row(5); got != "        " {
		t.Errorf("Row(5) out of range = %q, expected blank", got)
	}
}

func TestScreenClearResetsColors(t *testing.T) {
	s := NewScreen(3, 1)
	s.SetColor(1, 0, '·', ColorGray)
	s.Set(2, 0, 'x')

	if got := s.GetCell(2, 0); got.Color != ColorDefault || s.Get(2, 0) != 'x' {
		t.Errorf("Set() = %+v, expected an uncolored 'x'", got)
	}

	s.Clear()
	if got := s.GetCell(1, 0); got != blankCell {
		t.Errorf("GetCell(1, 0) after Clear = %+v, expected blank", got)
	}
}
