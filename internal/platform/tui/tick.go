// Package tui provides the Bubble Tea integration for the crossing platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

// maxFrameDelta caps the elapsed time fed to a single Step.
const maxFrameDelta = 0.25

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

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

// frameClock turns tick timestamps into elapsed seconds.
type frameClock struct {
	last    time.Time
	nominal float64
}

func newFrameClock(nominal float64) frameClock {
	return frameClock{nominal: nominal}
}

// Delta returns the seconds since the previous tick and records now.
// The first tick, and any tick with a clock that went backwards, gets the
// nominal frame time.
func (c *frameClock) Delta(now time.Time) float64 {
	dt := c.nominal
	if !c.last.IsZero() && now.After(c.last) {
		dt = now.Sub(c.last).Seconds()
	}
	c.last = now
	return core.ClampF(dt, 0, maxFrameDelta)
}

// Restart forgets the previous tick.
func (c *frameClock) Restart() {
	c.last = time.Time{}
}
