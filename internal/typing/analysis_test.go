package typing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBurstSpeed(t *testing.T) {
	clock := newFakeClock()
	tr := NewTracker(clock.Now)
	tr.Start()

	// Ten slow keys, then ten fast keys.
	for i := 0; i < 10; i++ {
		clock.Advance(1000)
		tr.TrackKeypress("a", i)
	}
	for i := 0; i < 10; i++ {
		clock.Advance(100)
		tr.TrackKeypress("b", i)
	}

	// Fastest window: 9 intervals of 100ms = 900ms → 9 / 0.015 min = 600 cpm.
	assert.InDelta(t, 600.0, tr.BurstSpeed(), 0.001)
}

func TestBurstSpeedFewKeys(t *testing.T) {
	clock := newFakeClock()
	tr := NewTracker(clock.Now)
	tr.Start()
	assert.Zero(t, tr.BurstSpeed())

	clock.Advance(200)
	tr.TrackKeypress("a", 1)
	assert.Zero(t, tr.BurstSpeed())

	clock.Advance(200)
	tr.TrackKeypress("b", 2)
	assert.InDelta(t, 300.0, tr.BurstSpeed(), 0.001)
}

func TestConsistency(t *testing.T) {
	t.Run("perfectly regular", func(t *testing.T) {
		clock := newFakeClock()
		tr := NewTracker(clock.Now)
		tr.Start()
		for i := 0; i < 8; i++ {
			clock.Advance(200)
			tr.TrackKeypress("a", i)
		}
		assert.InDelta(t, 100.0, tr.Consistency(), 0.001)
	})

	t.Run("erratic floors at zero", func(t *testing.T) {
		clock := newFakeClock()
		tr := NewTracker(clock.Now)
		tr.Start()
		for i, g := range []int{10, 10, 10, 10, 8000, 10, 10, 10} {
			clock.Advance(g)
			tr.TrackKeypress("a", i)
		}
		assert.Zero(t, tr.Consistency())
	})

	t.Run("not enough data", func(t *testing.T) {
		tr := NewTracker(newFakeClock().Now)
		tr.Start()
		assert.Zero(t, tr.Consistency())
	})
}

func TestCorrectionRate(t *testing.T) {
	m := &TypingMetrics{CharacterCount: 40, BackspaceCount: 10}
	assert.InDelta(t, 25.0, m.CorrectionRate(), 0.001)

	assert.Zero(t, (&TypingMetrics{BackspaceCount: 3}).CorrectionRate())
}

func TestHesitationPattern(t *testing.T) {
	tests := []struct {
		name   string
		events []Event
		want   HesitationPattern
	}{
		{"no corrections", nil, PatternNone},
		{"only pastes", []Event{{EventPaste, 100}, {EventPaste, 500}}, PatternNone},
		{"beginning", []Event{{EventCorrection, 50}, {EventCorrection, 100}, {EventCorrection, 900}}, PatternBeginning},
		{"middle", []Event{{EventCorrection, 400}, {EventCorrection, 500}, {EventCorrection, 600}}, PatternMiddle},
		{"end", []Event{{EventCorrection, 800}, {EventCorrection, 950}}, PatternEnd},
		{"throughout", []Event{{EventCorrection, 100}, {EventCorrection, 500}, {EventCorrection, 900}}, PatternThroughout},
		{"paste ignored", []Event{{EventPaste, 100}, {EventPaste, 150}, {EventCorrection, 900}}, PatternEnd},
		{"zero timestamp ignored", []Event{{EventCorrection, 0}}, PatternNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &TypingMetrics{TotalTimeMs: 1000, Corrections: tt.events}
			assert.Equal(t, tt.want, m.HesitationPattern())
		})
	}
}

func TestHesitationPatternFromTracker(t *testing.T) {
	clock := newFakeClock()
	tr := NewTracker(clock.Now)
	tr.Start()
	for i := 0; i < 9; i++ {
		clock.Advance(100)
		tr.TrackKeypress("a", i)
	}
	clock.Advance(100)
	tr.TrackKeypress(KeyBackspace, 8)

	m, err := tr.Stop()
	require.NoError(t, err)
	assert.Equal(t, PatternEnd, m.HesitationPattern())
}
