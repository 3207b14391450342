// Package tui provides the Bubble Tea integration for kaboom.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Loop identifies the tick loop that scheduled it, so a loop left behind
// by a finished game cannot drive the next one.
type TickMsg struct {
	Time time.Time
	Loop uint64
}

var lastLoop atomic.Uint64

// nextLoop returns a fresh tick loop ID.
func nextLoop() uint64 {
	return lastLoop.Add(1)
}

// tickInterval is the time between two simulation ticks at tickRate.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd returns a Bubble Tea command that sends one tick for loop at the
// specified rate.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}
