package player

import (
	"time"

	"github.com/PixPMusic/gopher-scales/internal/theory"
)

// NotePlayer is the external note-player contract the scheduler drives. It
// never manages sequencing itself: the scheduler decides when each call
// happens, the player only starts and stops pitched sound.
type NotePlayer interface {
	// PlayNote starts the given pitches sounding together for the given
	// duration. It returns without waiting for the duration to elapse.
	PlayNote(pitches []theory.Pitch, velocity uint8, d time.Duration) error

	// Silence stops everything currently sounding immediately.
	Silence() error
}
