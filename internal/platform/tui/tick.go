// Package tui provides the Bubble Tea integration for the ambient scenes.
// It handles the terminal UI loop, key bindings and scene orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one scene frame.
type TickMsg time.Time

// ClockMsg is sent on every wall-clock second boundary.
type ClockMsg time.Time

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

// clockCmd fires at the start of the next second after now, so the
// digits change together with the system clock.
func clockCmd(now time.Time) tea.Cmd {
	return tea.Tick(UntilNextSecond(now), func(t time.Time) tea.Msg {
		return ClockMsg(t)
	})
}

// UntilNextSecond returns the wait until the next whole second.
// Never returns zero, so a tick landing exactly on a boundary waits a full second.
func UntilNextSecond(now time.Time) time.Duration {
	next := now.Truncate(time.Second).Add(time.Second)
	return next.Sub(now)
}

// fpsMeter counts ticks over one-second windows.
type fpsMeter struct {
	start time.Time
	count int
	rate  float64
}

// Observe records a tick received at now.
func (f *fpsMeter) Observe(now time.Time) {
	if f.start.IsZero() {
		f.start = now
		return
	}
	f.count++
	if elapsed := now.Sub(f.start); elapsed >= time.Second {
		f.rate = float64(f.count) / elapsed.Seconds()
		f.start = now
		f.count = 0
	}
}

// Rate returns the frame rate of the last full window, 0 before one completed.
func (f *fpsMeter) Rate() float64 {
	return f.rate
}
