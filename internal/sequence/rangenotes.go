package sequence

import "github.com/PixPMusic/gopher-scales/internal/theory"

// RangeNote is one scale degree inside the selected range. Range notes are
// the skeleton of a traversal: the embellishment engine may attach extras
// around them but never adds, removes, or reorders them.
type RangeNote struct {
	Offset int          // semitones from the root
	Pitch  theory.Pitch // resolved absolute pitch
	Degree int          // zero-based index in the ascending built list
	// Descending marks notes traversed on the downward half of a round
	// trip. Direction-aware styles key off this.
	Descending bool
}

// BuildRangeNotes computes the ordered range-note list for the settings:
// the scale degrees inside the (widened, octave-scaled) extent span, folded
// into the traversal direction with the duplicate removed at each turnaround.
func BuildRangeNotes(s Settings) ([]RangeNote, error) {
	lo, hi := span(s)

	// Offsets inside the widened margins are admitted chromatically;
	// widening would be a no-op for most scales otherwise.
	coreLo, coreHi := lo+s.Widen, hi-s.Widen

	var ascending []RangeNote
	for off := lo; off <= hi; off++ {
		inCore := off >= coreLo && off <= coreHi
		if inCore && !s.Scale.Contains(off) {
			continue
		}
		ascending = append(ascending, RangeNote{
			Offset: off,
			Pitch:  s.Root.Transpose(off),
			Degree: len(ascending),
		})
	}
	if len(ascending) == 0 {
		return nil, &EmptyRangeError{Scale: string(s.Scale), Lo: lo, Hi: hi}
	}

	return fold(ascending, s.Direction), nil
}

// span resolves the extent to its signed semitone bounds, widens it, and
// applies the octave-span multiplier to the upper bound.
func span(s Settings) (int, int) {
	bounds := extentSpans[s.Extent]
	lo := bounds[0] - s.Widen
	hi := bounds[1]*s.OctaveSpan + s.Widen
	return lo, hi
}

// fold applies the traversal direction. Round trips drop the note that would
// repeat at the reversal point: the top note on the way back down, the bottom
// note on the way back up.
func fold(asc []RangeNote, dir Direction) []RangeNote {
	switch dir {
	case Ascending:
		return asc
	case Descending:
		return markDescending(reversed(asc), true)
	case AscendingDescending:
		out := make([]RangeNote, 0, 2*len(asc)-1)
		out = append(out, asc...)
		out = append(out, markDescending(reversed(asc[:len(asc)-1]), true)...)
		return out
	case DescendingAscending:
		out := make([]RangeNote, 0, 2*len(asc)-1)
		out = append(out, markDescending(reversed(asc), true)...)
		out = append(out, asc[1:]...)
		return out
	}
	return asc
}

func reversed(notes []RangeNote) []RangeNote {
	out := make([]RangeNote, len(notes))
	for i, n := range notes {
		out[len(notes)-1-i] = n
	}
	return out
}

func markDescending(notes []RangeNote, v bool) []RangeNote {
	for i := range notes {
		notes[i].Descending = v
	}
	return notes
}
