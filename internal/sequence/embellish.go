package sequence

import "github.com/PixPMusic/gopher-scales/internal/theory"

// Note is one playable note inside a group.
type Note struct {
	Pitch  theory.Pitch
	Offset int // semitones from the settings root
}

// Group is the unit of playback for one range note: the range note plus any
// style extras. Exactly one member (Notes[RangeIndex]) is the range note.
type Group struct {
	Notes      []Note
	RangeIndex int
	Chord      bool // members sound simultaneously instead of in sequence
	Degree     int  // the range note's scale-degree index, for status display
}

// styleHandler builds the group for one range note. Handlers never drop or
// reorder range notes; they only attach extras.
type styleHandler func(s Settings, n RangeNote) Group

// styleHandlers is the closed style registry. A style without an entry here
// is a configuration error, never a silent fallback to normal.
var styleHandlers = map[Style]styleHandler{
	StyleNormal:         buildNormal,
	StyleTwoAbove:       buildTwoAbove,
	StyleOneThreeFive:   buildOneThreeFive,
	StyleRootFirst:      buildRootFirst,
	StyleReturnRoot:     buildReturnRoot,
	StyleNeighborsFixed: buildNeighborsFixed,
	StyleNeighbors:      buildNeighbors,
	StyleChord:          buildChord,
}

// Generate computes the full group sequence for one traversal, with the
// clean-ending rule applied: the final group is reduced to its bare range
// note. Pure and deterministic; identical settings produce identical output.
func Generate(s Settings) ([]Group, error) {
	return generate(s, true)
}

// GenerateFull is Generate without the clean ending. The scheduler plays it
// for every pass of a finite playback except the last.
func GenerateFull(s Settings) ([]Group, error) {
	return generate(s, false)
}

func generate(s Settings, cleanEnd bool) ([]Group, error) {
	handler, ok := styleHandlers[s.Style]
	if !ok {
		return nil, &ConfigurationError{Field: "embellishment style", Value: string(s.Style)}
	}

	notes, err := BuildRangeNotes(s)
	if err != nil {
		return nil, err
	}

	groups := make([]Group, len(notes))
	for i, n := range notes {
		groups[i] = handler(s, n)
	}
	if cleanEnd {
		groups[len(groups)-1] = bareGroup(notes[len(notes)-1])
	}
	return groups, nil
}

// bareGroup is the clean-ending degenerate group: the range note alone.
func bareGroup(n RangeNote) Group {
	return Group{
		Notes:      []Note{{Pitch: n.Pitch, Offset: n.Offset}},
		RangeIndex: 0,
		Degree:     n.Degree,
	}
}

func buildNormal(s Settings, n RangeNote) Group {
	return bareGroup(n)
}

// buildTwoAbove appends the next two ascending scale degrees, computed
// against the ascending pattern regardless of traversal direction.
func buildTwoAbove(s Settings, n RangeNote) Group {
	return Group{
		Notes: []Note{
			noteAt(s, n.Offset),
			degreeStep(s, n.Offset, 1),
			degreeStep(s, n.Offset, 2),
		},
		RangeIndex: 0,
		Degree:     n.Degree,
	}
}

// buildOneThreeFive plays the range note, its diatonic third, and the fifth
// in sequence. Third size follows the scale family.
func buildOneThreeFive(s Settings, n RangeNote) Group {
	return Group{
		Notes: []Note{
			noteAt(s, n.Offset),
			noteAt(s, n.Offset+s.Scale.ThirdSemitones()),
			noteAt(s, n.Offset+theory.FifthSemitones),
		},
		RangeIndex: 0,
		Degree:     n.Degree,
	}
}

func buildRootFirst(s Settings, n RangeNote) Group {
	return Group{
		Notes:      []Note{noteAt(s, 0), noteAt(s, n.Offset)},
		RangeIndex: 1,
		Degree:     n.Degree,
	}
}

func buildReturnRoot(s Settings, n RangeNote) Group {
	return Group{
		Notes:      []Note{noteAt(s, n.Offset), noteAt(s, 0)},
		RangeIndex: 0,
		Degree:     n.Degree,
	}
}

func buildNeighborsFixed(s Settings, n RangeNote) Group {
	return Group{
		Notes: []Note{
			noteAt(s, n.Offset),
			degreeStep(s, n.Offset, 1),
			degreeStep(s, n.Offset, -1),
		},
		RangeIndex: 0,
		Degree:     n.Degree,
	}
}

// buildNeighbors is direction-aware: below-then-above on the ascending half,
// above-then-below on the descending half. One-way traversals follow their
// own sense throughout.
func buildNeighbors(s Settings, n RangeNote) Group {
	below := degreeStep(s, n.Offset, -1)
	above := degreeStep(s, n.Offset, 1)

	extras := []Note{below, above}
	if n.Descending {
		extras = []Note{above, below}
	}
	return Group{
		Notes:      append([]Note{noteAt(s, n.Offset)}, extras...),
		RangeIndex: 0,
		Degree:     n.Degree,
	}
}

func buildChord(s Settings, n RangeNote) Group {
	return Group{
		Notes: []Note{
			noteAt(s, n.Offset),
			noteAt(s, n.Offset+s.Scale.ThirdSemitones()),
			noteAt(s, n.Offset+theory.FifthSemitones),
		},
		RangeIndex: 0,
		Chord:      true,
		Degree:     n.Degree,
	}
}

func noteAt(s Settings, offset int) Note {
	return Note{Pitch: s.Root.Transpose(offset), Offset: offset}
}

func degreeStep(s Settings, offset, steps int) Note {
	return noteAt(s, s.Scale.StepDegrees(offset, steps))
}
