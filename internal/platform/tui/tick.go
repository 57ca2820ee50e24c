// Package tui provides the Bubble Tea integration for Neon Type.
// It owns the frame ticker, key mapping, the text input that feeds the
// typing buffer, the pack menu, the history view and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// loopIDs tells tick chains apart so a stale chain from a previous game
// never drives a new one.
var loopIDs atomic.Uint64

// TickMsg carries the frame timestamp the game advances to.
type TickMsg struct {
	Loop uint64
	At   time.Time
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(loop uint64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Loop: loop, At: t}
	})
}
