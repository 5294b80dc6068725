// Package tui provides the Bubble Tea integration for the puzzle platform.
// It translates terminal mouse and key messages into normalized input events,
// drives puzzles and the overworld, and renders their images as half blocks.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// clockInterval is how often the elapsed-time display refreshes.
const clockInterval = time.Second

// TickMsg is sent to refresh the clock.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
