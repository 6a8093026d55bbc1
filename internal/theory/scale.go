package theory

// Scale identifies a scale type by its config key.
type Scale string

const (
	ScaleMajor           Scale = "major"
	ScaleMinor           Scale = "minor"
	ScaleHarmonicMinor   Scale = "harmonic_minor"
	ScaleMelodicMinor    Scale = "melodic_minor"
	ScaleDorian          Scale = "dorian"
	ScalePhrygian        Scale = "phrygian"
	ScaleLydian          Scale = "lydian"
	ScaleMixolydian      Scale = "mixolydian"
	ScaleAeolian         Scale = "aeolian"
	ScaleLocrian         Scale = "locrian"
	ScaleMajorPentatonic Scale = "major_pentatonic"
	ScaleMinorPentatonic Scale = "minor_pentatonic"
	ScaleBlues           Scale = "blues"
	ScaleChromatic       Scale = "chromatic"
)

// scalePatterns holds each scale's semitone offsets within one octave.
// Chromatic is handled separately (every semitone).
var scalePatterns = map[Scale][]int{
	ScaleMajor:           {0, 2, 4, 5, 7, 9, 11},
	ScaleMinor:           {0, 2, 3, 5, 7, 8, 10},
	ScaleHarmonicMinor:   {0, 2, 3, 5, 7, 8, 11},
	ScaleMelodicMinor:    {0, 2, 3, 5, 7, 9, 11},
	ScaleDorian:          {0, 2, 3, 5, 7, 9, 10},
	ScalePhrygian:        {0, 1, 3, 5, 7, 8, 10},
	ScaleLydian:          {0, 2, 4, 6, 7, 9, 11},
	ScaleMixolydian:      {0, 2, 4, 5, 7, 9, 10},
	ScaleAeolian:         {0, 2, 3, 5, 7, 8, 10},
	ScaleLocrian:         {0, 1, 3, 5, 6, 8, 10},
	ScaleMajorPentatonic: {0, 2, 4, 7, 9},
	ScaleMinorPentatonic: {0, 3, 5, 7, 10},
	ScaleBlues:           {0, 3, 5, 6, 7, 10},
	ScaleChromatic:       {0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
}

// minorFamily marks the scales whose diatonic third is minor (3 semitones).
var minorFamily = map[Scale]bool{
	ScaleMinor:           true,
	ScaleHarmonicMinor:   true,
	ScaleMelodicMinor:    true,
	ScaleDorian:          true,
	ScalePhrygian:        true,
	ScaleAeolian:         true,
	ScaleMinorPentatonic: true,
	ScaleBlues:           true,
}

// FifthSemitones is the diatonic fifth; it does not vary by scale family.
const FifthSemitones = 7

// Known reports whether s has a pattern entry.
func (s Scale) Known() bool {
	_, ok := scalePatterns[s]
	return ok
}

// Pattern returns the scale's semitone offsets within one octave.
func (s Scale) Pattern() ([]int, bool) {
	p, ok := scalePatterns[s]
	return p, ok
}

// ThirdSemitones returns the diatonic third for the scale's family:
// 3 for minor-family scales, 4 otherwise. Chromatic and unrecognized
// scales size as major.
func (s Scale) ThirdSemitones() int {
	if minorFamily[s] {
		return 3
	}
	return 4
}

// Contains reports whether a semitone offset from the root (any octave,
// negative allowed) lands on a degree of the scale.
func (s Scale) Contains(offset int) bool {
	pattern, ok := scalePatterns[s]
	if !ok {
		return false
	}
	pc := mod(offset, 12)
	for _, v := range pattern {
		if v == pc {
			return true
		}
	}
	return false
}

// StepDegrees walks the scale pattern from a semitone offset by the given
// number of degree positions, carrying octaves as the modular index wraps.
// An offset between two degrees (a widened chromatic note) steps from its
// insertion point, so one step up lands on the next degree above it.
func (s Scale) StepDegrees(offset, steps int) int {
	pattern := scalePatterns[s]
	if len(pattern) == 0 {
		return offset + steps
	}

	pc := mod(offset, 12)
	octave := floorDiv(offset, 12)

	idx, exact := patternIndex(pattern, pc)
	switch {
	case exact:
		idx += steps
	case steps > 0:
		// idx already names the next degree above pc.
		idx += steps - 1
	case steps < 0:
		idx += steps
	default:
		return offset
	}

	octave += floorDiv(idx, len(pattern))
	return octave*12 + pattern[mod(idx, len(pattern))]
}

// patternIndex locates pc in the pattern, or the index where it would be
// inserted (exact=false).
func patternIndex(pattern []int, pc int) (int, bool) {
	for i, v := range pattern {
		if v == pc {
			return i, true
		}
		if v > pc {
			return i, false
		}
	}
	return len(pattern), false
}
