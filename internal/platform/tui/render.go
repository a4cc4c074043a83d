package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-life/internal/core"
)

// ansiCodes maps screen colors to terminal palette indexes.
// ColorDefault has no code and renders unstyled.
var ansiCodes = [...]lipgloss.Color{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

var cellStyles = func() []lipgloss.Style {
	styles := make([]lipgloss.Style, len(ansiCodes))
	for i, code := range ansiCodes {
		styles[i] = lipgloss.NewStyle()
		if code != "" {
			styles[i] = styles[i].Foreground(code)
		}
	}
	return styles
}()

func styleFor(c core.Color) lipgloss.Style {
	if int(c) >= len(cellStyles) {
		return cellStyles[core.ColorDefault]
	}
	return cellStyles[c]
}

// RenderScreen converts a Screen buffer to a styled string, one line per row.
func RenderScreen(s *core.Screen) string {
	lines := make([]string, s.Height())
	for y := range lines {
		lines[y] = renderRow(s, y)
	}
	return strings.Join(lines, "\n")
}

// renderRow styles each run of same-colored cells with a single escape sequence.
func renderRow(s *core.Screen, y int) string {
	var sb strings.Builder
	var run []rune
	current := s.GetCell(0, y).Color

	flush := func() {
		if len(run) > 0 {
			sb.WriteString(styleFor(current).Render(string(run)))
			run = run[:0]
		}
	}

	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if cell.Color != current {
			flush()
			current = cell.Color
		}
		run = append(run, cell.Rune)
	}
	flush()
	return sb.String()
}
