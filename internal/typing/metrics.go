package typing

import "time"

// Thresholds for inter-keystroke gaps, in milliseconds.
const (
	PauseThresholdMs      = 2000
	HesitationThresholdMs = 5000
)

// EventKind tags an entry in TypingMetrics.Corrections.
type EventKind string

const (
	EventCorrection EventKind = "correction"
	EventPaste      EventKind = "paste"
)

// Event is a correction or paste, timestamped relative to Start.
type Event struct {
	Kind EventKind `json:"kind"`
	AtMs int64     `json:"at_ms"`
}

// TypingMetrics is the behavioural capture for a single free-text answer.
// It is produced by Tracker.Stop and not modified afterwards.
type TypingMetrics struct {
	StartTime          time.Time `json:"start_time"`
	EndTime            time.Time `json:"end_time"`
	TotalTimeMs        int64     `json:"total_time_ms"`
	CharacterCount     int       `json:"character_count"`
	AverageTypingSpeed float64   `json:"average_typing_speed"` // characters per minute
	PauseCount         int       `json:"pause_count"`
	HesitationCount    int       `json:"hesitation_count"`
	BackspaceCount     int       `json:"backspace_count"`
	Corrections        []Event   `json:"corrections"`
}

// CorrectionTimes returns the relative timestamps of deletion events,
// excluding pastes.
func (m *TypingMetrics) CorrectionTimes() []int64 {
	var out []int64
	for _, e := range m.Corrections {
		if e.Kind == EventCorrection {
			out = append(out, e.AtMs)
		}
	}
	return out
}

// PasteCount returns how many paste events were recorded.
func (m *TypingMetrics) PasteCount() int {
	n := 0
	for _, e := range m.Corrections {
		if e.Kind == EventPaste {
			n++
		}
	}
	return n
}

// typingSpeed returns characters per minute, or 0 when either input is zero.
func typingSpeed(chars int, totalMs int64) float64 {
	if chars <= 0 || totalMs <= 0 {
		return 0
	}
	return float64(chars) / (float64(totalMs) / 60000)
}
