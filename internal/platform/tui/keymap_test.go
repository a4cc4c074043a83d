package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-life/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"r", runeKey('r'), core.ActionReset, false},
		{"m", runeKey('m'), core.ActionZoomIn, false},
		{"minus", runeKey('-'), core.ActionZoomIn, false},
		{"p", runeKey('p'), core.ActionZoomOut, false},
		{"plus", runeKey('+'), core.ActionZoomOut, false},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionPanLeft, false},
		{"l", runeKey('l'), core.ActionPanRight, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionPanUp, false},
		{"j", runeKey('j'), core.ActionPanDown, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.expected || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tt.msg.String(), action, quit, tt.expected, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey('m'), &frame) {
		t.Error("m should not quit")
	}
	if !frame.Has(core.ActionZoomIn) {
		t.Error("m should set ActionZoomIn")
	}

	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("q should quit")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("quit is reported, not queued in the frame")
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp() should not be empty")
	}
	rows := 0
	for _, col := range keys.FullHelp() {
		rows = max(rows, len(col))
	}
	if rows > fullHelpHeight {
		t.Errorf("FullHelp() needs %d rows, only %d reserved", rows, fullHelpHeight)
	}
}
