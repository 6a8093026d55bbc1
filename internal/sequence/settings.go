package sequence

import (
	"strconv"

	"github.com/PixPMusic/gopher-scales/internal/theory"
	"github.com/google/uuid"
)

// Direction is the traversal order of the range notes.
type Direction string

const (
	Ascending           Direction = "ascending"
	Descending          Direction = "descending"
	AscendingDescending Direction = "ascending_descending"
	DescendingAscending Direction = "descending_ascending"
)

// RangeExtent selects the signed semitone span searched for scale degrees.
type RangeExtent string

const (
	ExtentOneOctave   RangeExtent = "one_octave"
	ExtentOctaveThird RangeExtent = "octave_third"
	ExtentOctaveFifth RangeExtent = "octave_fifth"
	ExtentTwoOctaves  RangeExtent = "two_octaves"
	ExtentCentered    RangeExtent = "centered"
)

// extentSpans maps each extent to its signed span relative to the root.
var extentSpans = map[RangeExtent][2]int{
	ExtentOneOctave:   {0, 12},
	ExtentOctaveThird: {0, 16},
	ExtentOctaveFifth: {0, 19},
	ExtentTwoOctaves:  {0, 24},
	ExtentCentered:    {-4, 16},
}

// Style is the note-embellishment style applied per range note.
type Style string

const (
	StyleNormal         Style = "normal"
	StyleTwoAbove       Style = "two_above"
	StyleOneThreeFive   Style = "one_three_five"
	StyleRootFirst      Style = "root_first"
	StyleReturnRoot     Style = "return_root"
	StyleNeighborsFixed Style = "neighbors_fixed"
	StyleNeighbors      Style = "neighbors"
	StyleChord          Style = "chord"
)

// RepeatMode controls what happens after one full traversal.
type RepeatMode string

const (
	RepeatOff       RepeatMode = "off"
	RepeatOnce      RepeatMode = "once"
	RepeatTwice     RepeatMode = "twice"
	RepeatLoopGap   RepeatMode = "loop_gap"
	RepeatLoopNoGap RepeatMode = "loop_nogap"
)

// Loops reports whether the mode restarts the traversal indefinitely.
func (m RepeatMode) Loops() bool {
	return m == RepeatLoopGap || m == RepeatLoopNoGap
}

// Settings is one immutable, validated settings snapshot. Build it with
// Resolve; the zero value is not usable.
type Settings struct {
	ID         uuid.UUID
	Root       theory.Pitch
	Scale      theory.Scale
	Direction  Direction
	Extent     RangeExtent
	Style      Style
	Repeat     RepeatMode
	NoteMs     int
	GapMs      int
	Widen      int // extra chromatic semitones admitted on each side of the span
	OctaveSpan int // multiplier on the upper bound's distance from the root
}

// Choices is one partially-specified settings layer. Empty strings and nil
// ints mean "not chosen at this layer".
type Choices struct {
	Root       string `json:"root,omitempty"`
	Scale      string `json:"scale,omitempty"`
	Direction  string `json:"direction,omitempty"`
	Extent     string `json:"extent,omitempty"`
	Style      string `json:"style,omitempty"`
	Repeat     string `json:"repeat,omitempty"`
	NoteMs     *int   `json:"note_ms,omitempty"`
	GapMs      *int   `json:"gap_ms,omitempty"`
	Widen      *int   `json:"widen,omitempty"`
	OctaveSpan *int   `json:"octave_span,omitempty"`
}

// Defaults returns the built-in lowest-priority layer.
func Defaults() Choices {
	noteMs, gapMs, widen, span := 300, 0, 0, 1
	return Choices{
		Root:       "C4",
		Scale:      string(theory.ScaleMajor),
		Direction:  string(Ascending),
		Extent:     string(ExtentOneOctave),
		Style:      string(StyleNormal),
		Repeat:     string(RepeatOff),
		NoteMs:     &noteMs,
		GapMs:      &gapMs,
		Widen:      &widen,
		OctaveSpan: &span,
	}
}

// Resolve merges layers in priority order (earlier wins) on top of the
// built-in defaults and validates the result. Spoken overrides go first,
// saved selections second.
func Resolve(layers ...Choices) (Settings, error) {
	merged := Defaults()
	for i := len(layers) - 1; i >= 0; i-- {
		merged = overlay(merged, layers[i])
	}
	return validate(merged)
}

// overlay applies the chosen fields of top over base.
func overlay(base, top Choices) Choices {
	if top.Root != "" {
		base.Root = top.Root
	}
	if top.Scale != "" {
		base.Scale = top.Scale
	}
	if top.Direction != "" {
		base.Direction = top.Direction
	}
	if top.Extent != "" {
		base.Extent = top.Extent
	}
	if top.Style != "" {
		base.Style = top.Style
	}
	if top.Repeat != "" {
		base.Repeat = top.Repeat
	}
	if top.NoteMs != nil {
		base.NoteMs = top.NoteMs
	}
	if top.GapMs != nil {
		base.GapMs = top.GapMs
	}
	if top.Widen != nil {
		base.Widen = top.Widen
	}
	if top.OctaveSpan != nil {
		base.OctaveSpan = top.OctaveSpan
	}
	return base
}

func validate(c Choices) (Settings, error) {
	root, err := theory.ParsePitch(c.Root)
	if err != nil {
		return Settings{}, &InvalidPitchError{Input: c.Root, Err: err}
	}

	scale := theory.Scale(c.Scale)
	if !scale.Known() {
		return Settings{}, &ConfigurationError{Field: "scale", Value: c.Scale}
	}

	dir := Direction(c.Direction)
	switch dir {
	case Ascending, Descending, AscendingDescending, DescendingAscending:
	default:
		return Settings{}, &ConfigurationError{Field: "direction", Value: c.Direction}
	}

	extent := RangeExtent(c.Extent)
	if _, ok := extentSpans[extent]; !ok {
		return Settings{}, &ConfigurationError{Field: "range extent", Value: c.Extent}
	}

	style := Style(c.Style)
	if _, ok := styleHandlers[style]; !ok {
		return Settings{}, &ConfigurationError{Field: "embellishment style", Value: c.Style}
	}

	repeat := RepeatMode(c.Repeat)
	switch repeat {
	case RepeatOff, RepeatOnce, RepeatTwice, RepeatLoopGap, RepeatLoopNoGap:
	default:
		return Settings{}, &ConfigurationError{Field: "repeat mode", Value: c.Repeat}
	}

	s := Settings{
		ID:         uuid.New(),
		Root:       root,
		Scale:      scale,
		Direction:  dir,
		Extent:     extent,
		Style:      style,
		Repeat:     repeat,
		NoteMs:     *c.NoteMs,
		GapMs:      *c.GapMs,
		Widen:      *c.Widen,
		OctaveSpan: *c.OctaveSpan,
	}
	if s.NoteMs <= 0 {
		return Settings{}, &ConfigurationError{Field: "note duration", Value: itoa(s.NoteMs)}
	}
	if s.GapMs < 0 {
		return Settings{}, &ConfigurationError{Field: "note gap", Value: itoa(s.GapMs)}
	}
	if s.Widen < 0 {
		return Settings{}, &ConfigurationError{Field: "widening count", Value: itoa(s.Widen)}
	}
	if s.OctaveSpan < 1 {
		return Settings{}, &ConfigurationError{Field: "octave span", Value: itoa(s.OctaveSpan)}
	}
	return s, nil
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
