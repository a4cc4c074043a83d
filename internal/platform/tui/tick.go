// Package tui provides the Bubble Tea frontend for Life: the terminal loop,
// key and mouse mapping, the run history browser and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per frame; it carries the frame time.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the frame rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
