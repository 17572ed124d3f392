// Package tui provides the Bubble Tea integration for the game: the fixed
// tick loop, key mapping, screen rendering, the variant menu and the SSH
// server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// ID names the loop that scheduled it; a model ignores ticks of other
// loops, so a loop left behind by a model switch dies out.
type TickMsg struct {
	ID   int64
	Time time.Time
}

var lastTickID atomic.Int64

// nextTickID returns a fresh tick loop identifier.
func nextTickID() int64 {
	return lastTickID.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(id int64, tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}
