package typing

import "math"

// BurstWindow is the number of consecutive keystrokes used for burst speed.
const BurstWindow = 10

// HesitationPattern describes where in the answer corrections cluster.
type HesitationPattern string

const (
	PatternNone       HesitationPattern = "none"
	PatternBeginning  HesitationPattern = "beginning"
	PatternMiddle     HesitationPattern = "middle"
	PatternEnd        HesitationPattern = "end"
	PatternThroughout HesitationPattern = "throughout"
)

// dominantShare is the fraction of corrections a third of the answer must hold
// to be reported as the pattern instead of PatternThroughout.
const dominantShare = 0.6

// BurstSpeed returns the peak characters-per-minute over any window of
// BurstWindow consecutive keystrokes. Fewer than two keystrokes yield 0.
func (t *Tracker) BurstSpeed() float64 {
	n := len(t.keyTimes)
	if n < 2 {
		return 0
	}
	window := BurstWindow
	if n < window {
		window = n
	}

	var peak float64
	for i := 0; i+window <= n; i++ {
		span := t.keyTimes[i+window-1] - t.keyTimes[i]
		if span <= 0 {
			continue
		}
		cpm := float64(window-1) / (float64(span) / 60000)
		if cpm > peak {
			peak = cpm
		}
	}
	return peak
}

// Consistency scores rhythm regularity from 0 to 100: 100 minus the
// coefficient of variation of inter-key intervals (as a percentage),
// floored at 0. Fewer than two intervals yield 0.
func (t *Tracker) Consistency() float64 {
	if len(t.keyTimes) < 3 {
		return 0
	}
	intervals := make([]float64, 0, len(t.keyTimes)-1)
	for i := 1; i < len(t.keyTimes); i++ {
		intervals = append(intervals, float64(t.keyTimes[i]-t.keyTimes[i-1]))
	}

	var sum float64
	for _, v := range intervals {
		sum += v
	}
	mean := sum / float64(len(intervals))
	if mean <= 0 {
		return 0
	}

	var variance float64
	for _, v := range intervals {
		variance += math.Pow(v-mean, 2)
	}
	variance /= float64(len(intervals))

	score := 100 - math.Sqrt(variance)/mean*100
	return math.Max(0, score)
}

// CorrectionRate returns backspaces as a percentage of characters.
func (m *TypingMetrics) CorrectionRate() float64 {
	if m.CharacterCount == 0 {
		return 0
	}
	return float64(m.BackspaceCount) / float64(m.CharacterCount) * 100
}

// HesitationPattern classifies the relative position of correction events.
// Paste events are ignored.
func (m *TypingMetrics) HesitationPattern() HesitationPattern {
	times := m.CorrectionTimes()
	var positive []int64
	for _, at := range times {
		if at > 0 {
			positive = append(positive, at)
		}
	}
	if len(positive) == 0 || m.TotalTimeMs <= 0 {
		return PatternNone
	}

	var thirds [3]int
	for _, at := range positive {
		rel := float64(at) / float64(m.TotalTimeMs)
		switch {
		case rel < 1.0/3:
			thirds[0]++
		case rel < 2.0/3:
			thirds[1]++
		default:
			thirds[2]++
		}
	}

	patterns := [3]HesitationPattern{PatternBeginning, PatternMiddle, PatternEnd}
	for i, n := range thirds {
		if float64(n)/float64(len(positive)) > dominantShare {
			return patterns[i]
		}
	}
	return PatternThroughout
}
