// Package tui provides the Bubble Tea integration for boxfish.
// It handles the terminal UI loop, input mapping, the scoreboard and the
// SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// maxTickDelta caps the simulated time per tick so a stalled terminal does
// not fast-forward the animations.
const maxTickDelta = 100 * time.Millisecond

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// tickDelta returns the seconds elapsed between two ticks, capped at
// maxTickDelta. A zero previous tick yields the nominal interval.
func tickDelta(prev, now time.Time, tickRate int) float64 {
	if prev.IsZero() {
		if tickRate <= 0 {
			tickRate = 60
		}
		return 1 / float64(tickRate)
	}
	d := now.Sub(prev)
	if d < 0 {
		d = 0
	}
	if d > maxTickDelta {
		d = maxTickDelta
	}
	return d.Seconds()
}
