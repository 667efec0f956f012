package typing

import (
	"errors"
	"time"
	"unicode/utf8"
)

// ErrNotRunning is returned by Stop when Start was not called or the
// tracker was already stopped.
var ErrNotRunning = errors.New("tracker not running")

// Key names treated as deletions.
const (
	KeyBackspace = "Backspace"
	KeyDelete    = "Delete"
)

// Clock returns the current time. Tests substitute a fake.
type Clock func() time.Time

// Tracker captures keystroke timing for one answer. It is not safe for
// concurrent use; each quiz session owns its own tracker.
type Tracker struct {
	now Clock

	running     bool
	start       time.Time
	lastKey     time.Time
	chars       int
	pauses      int
	hesitations int
	backspaces  int
	corrections []Event
	keyTimes    []int64 // ms since start, one per tracked event
}

// NewTracker creates a tracker. A nil clock uses time.Now.
func NewTracker(clock Clock) *Tracker {
	if clock == nil {
		clock = time.Now
	}
	return &Tracker{now: clock}
}

// Start clears any previous state and begins a new capture.
func (t *Tracker) Start() {
	now := t.now()
	*t = Tracker{
		now:     t.now,
		running: true,
		start:   now,
		lastKey: now,
	}
}

// Running reports whether Start was called without a matching Stop.
func (t *Tracker) Running() bool {
	return t.running
}

// TrackKeypress records one key event. The second argument is the current
// input length as reported by the UI; counting uses the key alone.
func (t *Tracker) TrackKeypress(key string, _ int) {
	if !t.running {
		return
	}

	now := t.now()
	gap := now.Sub(t.lastKey).Milliseconds()
	switch {
	case gap > HesitationThresholdMs:
		t.hesitations++
		t.pauses++
	case gap > PauseThresholdMs:
		t.pauses++
	}

	elapsed := now.Sub(t.start).Milliseconds()
	if IsDeletionKey(key) {
		t.backspaces++
		t.corrections = append(t.corrections, Event{Kind: EventCorrection, AtMs: elapsed})
	} else if isPrintable(key) {
		t.chars++
	}

	t.keyTimes = append(t.keyTimes, elapsed)
	t.lastKey = now
}

// TrackPaste records a paste of n characters.
func (t *Tracker) TrackPaste(n int) {
	if !t.running {
		return
	}
	now := t.now()
	if n > 0 {
		t.chars += n
	}
	t.corrections = append(t.corrections, Event{Kind: EventPaste, AtMs: now.Sub(t.start).Milliseconds()})
	t.lastKey = now
}

// Stop finalizes the capture and returns a snapshot.
func (t *Tracker) Stop() (*TypingMetrics, error) {
	if !t.running {
		return nil, ErrNotRunning
	}
	t.running = false

	end := t.now()
	if end.Before(t.start) {
		end = t.start
	}
	total := end.Sub(t.start).Milliseconds()

	corrections := make([]Event, len(t.corrections))
	copy(corrections, t.corrections)

	return &TypingMetrics{
		StartTime:          t.start,
		EndTime:            end,
		TotalTimeMs:        total,
		CharacterCount:     t.chars,
		AverageTypingSpeed: typingSpeed(t.chars, total),
		PauseCount:         t.pauses,
		HesitationCount:    t.hesitations,
		BackspaceCount:     t.backspaces,
		Corrections:        corrections,
	}, nil
}

// IsDeletionKey reports whether key removes text.
func IsDeletionKey(key string) bool {
	return key == KeyBackspace || key == KeyDelete
}

func isPrintable(key string) bool {
	return utf8.RuneCountInString(key) == 1
}
