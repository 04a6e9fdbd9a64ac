// Package round derives betting-round windows from wall-clock time.
// A round is a fixed-size tumbling window; the window start doubles as
// the round identifier persisted on every bet, so the boundary used for
// intake and the boundary used for settlement are the same value.
package round

import (
	"time"

	"colour-trade/internal/model"
)

// Window is one betting round, covering [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// State is the phase of a round at a point in time.
type State struct {
	Window           Window
	Phase            model.RoundPhase
	SecondsRemaining int
}

// WindowAt returns the round window containing now for the given round
// duration.
func WindowAt(now time.Time, duration time.Duration) Window {
	start := now.Truncate(duration)
	return Window{Start: start, End: start.Add(duration)}
}

// StateAt returns the window, phase and remaining seconds at now. The
// phase is closing once the remaining time is within the closing
// buffer; bets are rejected during the closing phase.
func StateAt(now time.Time, duration, closingBuffer time.Duration) State {
	w := WindowAt(now, duration)
	remaining := w.End.Sub(now)

	phase := model.PhaseOpen
	if remaining <= closingBuffer {
		phase = model.PhaseClosing
	}

	return State{
		Window:           w,
		Phase:            phase,
		SecondsRemaining: int(remaining.Seconds()),
	}
}

// Previous returns the window immediately before w.
func (w Window) Previous(duration time.Duration) Window {
	return Window{Start: w.Start.Add(-duration), End: w.Start}
}
