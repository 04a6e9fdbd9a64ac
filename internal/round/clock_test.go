package round

import (
	"testing"
	"time"

	"colour-trade/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestWindowAt_AlignsToRoundBoundary(t *testing.T) {
	duration := 60 * time.Second
	now := time.Date(2024, 5, 1, 12, 30, 42, 500_000_000, time.UTC)

	w := WindowAt(now, duration)

	assert.Equal(t, time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2024, 5, 1, 12, 31, 0, 0, time.UTC), w.End)
	assert.True(t, w.Contains(now))
}

func TestWindowAt_SameWindowForIntakeAndSettlementInstants(t *testing.T) {
	duration := 60 * time.Second
	betTime := time.Date(2024, 5, 1, 12, 30, 3, 0, time.UTC)
	settleTime := time.Date(2024, 5, 1, 12, 30, 59, 999_000_000, time.UTC)

	assert.Equal(t, WindowAt(betTime, duration), WindowAt(settleTime, duration))
}

func TestWindowAt_BoundaryInstantStartsNewWindow(t *testing.T) {
	duration := 60 * time.Second
	boundary := time.Date(2024, 5, 1, 12, 31, 0, 0, time.UTC)

	w := WindowAt(boundary, duration)

	assert.Equal(t, boundary, w.Start)
	assert.False(t, WindowAt(boundary.Add(-time.Nanosecond), duration).Contains(boundary))
}

func TestStateAt_OpenPhase(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 30, 10, 0, time.UTC)

	st := StateAt(now, 60*time.Second, 5*time.Second)

	assert.Equal(t, model.PhaseOpen, st.Phase)
	assert.Equal(t, 50, st.SecondsRemaining)
}

func TestStateAt_ClosingPhase(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 30, 55, 0, time.UTC)

	st := StateAt(now, 60*time.Second, 5*time.Second)

	assert.Equal(t, model.PhaseClosing, st.Phase)
	assert.Equal(t, 5, st.SecondsRemaining)
}

func TestStateAt_JustBeforeClosingBuffer(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 30, 54, 999_000_000, time.UTC)

	st := StateAt(now, 60*time.Second, 5*time.Second)

	assert.Equal(t, model.PhaseOpen, st.Phase)
}

func TestPrevious(t *testing.T) {
	duration := 60 * time.Second
	w := WindowAt(time.Date(2024, 5, 1, 12, 31, 30, 0, time.UTC), duration)

	prev := w.Previous(duration)

	assert.Equal(t, time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC), prev.Start)
	assert.Equal(t, w.Start, prev.End)
}
