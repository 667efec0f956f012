package typing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock advances only when told to.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(ms int) { c.t = c.t.Add(time.Duration(ms) * time.Millisecond) }

func TestStopWithoutStart(t *testing.T) {
	tr := NewTracker(nil)
	_, err := tr.Stop()
	assert.ErrorIs(t, err, ErrNotRunning)
}

func TestStopTwice(t *testing.T) {
	tr := NewTracker(newFakeClock().Now)
	tr.Start()
	_, err := tr.Stop()
	require.NoError(t, err)

	_, err = tr.Stop()
	assert.ErrorIs(t, err, ErrNotRunning)
}

func TestTrackBeforeStartIsNoop(t *testing.T) {
	clock := newFakeClock()
	tr := NewTracker(clock.Now)
	tr.TrackKeypress("a", 1)
	tr.TrackKeypress(KeyBackspace, 0)
	tr.TrackPaste(20)

	tr.Start()
	m, err := tr.Stop()
	require.NoError(t, err)
	assert.Zero(t, m.CharacterCount)
	assert.Zero(t, m.BackspaceCount)
	assert.Empty(t, m.Corrections)
}

func TestStartClearsPreviousState(t *testing.T) {
	clock := newFakeClock()
	tr := NewTracker(clock.Now)
	tr.Start()
	clock.Advance(100)
	tr.TrackKeypress("a", 1)
	tr.TrackKeypress(KeyBackspace, 0)

	tr.Start()
	m, err := tr.Stop()
	require.NoError(t, err)
	assert.Zero(t, m.CharacterCount)
	assert.Zero(t, m.BackspaceCount)
}

func TestPauseAndHesitationThresholds(t *testing.T) {
	tests := []struct {
		name            string
		gapMs           int
		wantPauses      int
		wantHesitations int
	}{
		{"short gap", 300, 0, 0},
		{"at pause threshold", 2000, 0, 0},
		{"above pause threshold", 2001, 1, 0},
		{"at hesitation threshold", 5000, 1, 0},
		{"above hesitation threshold", 5001, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := newFakeClock()
			tr := NewTracker(clock.Now)
			tr.Start()
			clock.Advance(tt.gapMs)
			tr.TrackKeypress("x", 1)

			m, err := tr.Stop()
			require.NoError(t, err)
			assert.Equal(t, tt.wantPauses, m.PauseCount)
			assert.Equal(t, tt.wantHesitations, m.HesitationCount)
		})
	}
}

func TestPausesNeverBelowHesitations(t *testing.T) {
	clock := newFakeClock()
	tr := NewTracker(clock.Now)
	tr.Start()

	gaps := []int{100, 6000, 2500, 9000, 50, 5001, 2001, 12000}
	for _, g := range gaps {
		clock.Advance(g)
		tr.TrackKeypress("a", 1)
	}

	m, err := tr.Stop()
	require.NoError(t, err)
	assert.Equal(t, 4, m.HesitationCount)
	assert.Equal(t, 6, m.PauseCount)
	assert.GreaterOrEqual(t, m.PauseCount, m.HesitationCount)
}

func TestBackspaceCountMatchesDeletions(t *testing.T) {
	clock := newFakeClock()
	tr := NewTracker(clock.Now)
	tr.Start()

	keys := []string{"o", "l", KeyBackspace, "á", KeyDelete, "Shift", KeyBackspace, "!", "Enter"}
	for i, k := range keys {
		clock.Advance(150)
		tr.TrackKeypress(k, i)
	}

	m, err := tr.Stop()
	require.NoError(t, err)
	assert.Equal(t, 3, m.BackspaceCount)
	assert.Equal(t, 4, m.CharacterCount, "only single printable characters count")
	assert.Equal(t, []int64{450, 750, 1050}, m.CorrectionTimes())
}

func TestPasteIsTaggedSeparately(t *testing.T) {
	clock := newFakeClock()
	tr := NewTracker(clock.Now)
	tr.Start()
	clock.Advance(1000)
	tr.TrackPaste(42)
	clock.Advance(500)
	tr.TrackKeypress(KeyBackspace, 41)

	m, err := tr.Stop()
	require.NoError(t, err)
	assert.Equal(t, 42, m.CharacterCount)
	assert.Equal(t, 1, m.PasteCount())
	assert.Equal(t, []Event{
		{Kind: EventPaste, AtMs: 1000},
		{Kind: EventCorrection, AtMs: 1500},
	}, m.Corrections)
	assert.Equal(t, []int64{1500}, m.CorrectionTimes())
}

func TestPasteUpdatesLastKeyTime(t *testing.T) {
	clock := newFakeClock()
	tr := NewTracker(clock.Now)
	tr.Start()
	clock.Advance(4000)
	tr.TrackPaste(10)
	clock.Advance(1000)
	tr.TrackKeypress("a", 11)

	m, err := tr.Stop()
	require.NoError(t, err)
	assert.Zero(t, m.PauseCount, "gap is measured from the paste, not from start")
}

func TestAverageTypingSpeed(t *testing.T) {
	clock := newFakeClock()
	tr := NewTracker(clock.Now)
	tr.Start()
	for i := 0; i < 60; i++ {
		clock.Advance(500)
		tr.TrackKeypress("a", i+1)
	}

	m, err := tr.Stop()
	require.NoError(t, err)
	assert.Equal(t, int64(30000), m.TotalTimeMs)
	assert.InDelta(t, 120.0, m.AverageTypingSpeed, 0.001)
	assert.False(t, m.EndTime.Before(m.StartTime))
}

func TestAverageTypingSpeedZeroCases(t *testing.T) {
	clock := newFakeClock()
	tr := NewTracker(clock.Now)

	tr.Start()
	tr.TrackKeypress("a", 1)
	m, err := tr.Stop()
	require.NoError(t, err)
	assert.Zero(t, m.AverageTypingSpeed, "no elapsed time")

	tr.Start()
	clock.Advance(1000)
	m, err = tr.Stop()
	require.NoError(t, err)
	assert.Zero(t, m.AverageTypingSpeed, "no characters")
}

func TestSnapshotIsIndependentOfTracker(t *testing.T) {
	clock := newFakeClock()
	tr := NewTracker(clock.Now)
	tr.Start()
	clock.Advance(100)
	tr.TrackKeypress(KeyBackspace, 0)
	m, err := tr.Stop()
	require.NoError(t, err)

	tr.Start()
	clock.Advance(100)
	tr.TrackKeypress(KeyBackspace, 0)
	tr.TrackKeypress(KeyBackspace, 0)

	assert.Len(t, m.Corrections, 1)
}

func TestReportedLengthDoesNotAffectCounts(t *testing.T) {
	clock := newFakeClock()
	tr := NewTracker(clock.Now)
	tr.Start()

	clock.Advance(100)
	tr.TrackKeypress("a", 500)
	clock.Advance(100)
	tr.TrackKeypress(KeyBackspace, 0)

	m, err := tr.Stop()
	require.NoError(t, err)
	assert.Equal(t, 1, m.CharacterCount)
	assert.Equal(t, 1, m.BackspaceCount)
}
