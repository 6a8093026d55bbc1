// Package timing holds the mutable timing settings shared between the
// scheduler and whoever adjusts them mid-playback (config watcher, CLI).
// The scheduler reads them fresh before every scheduled note, so a change
// affects the next note and never the one already sounding.
package timing

import (
	"sync"
	"time"
)

// Live is a thread-safe note-duration / note-gap pair.
type Live struct {
	mu   sync.RWMutex
	note time.Duration
	gap  time.Duration
}

// NewLive creates a live timing ref with the given starting values.
func NewLive(note, gap time.Duration) *Live {
	return &Live{note: note, gap: gap}
}

// Set replaces both values atomically.
func (l *Live) Set(note, gap time.Duration) {
	l.mu.Lock()
	l.note = note
	l.gap = gap
	l.mu.Unlock()
}

// Note returns the current note duration.
func (l *Live) Note() time.Duration {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.note
}

// Gap returns the current inter-note gap.
func (l *Live) Gap() time.Duration {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.gap
}
