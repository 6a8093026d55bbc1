package theory

import (
	"fmt"
	"strconv"
	"strings"
)

// PitchClass is a semitone offset from C (0 = C, 11 = B).
type PitchClass int

const (
	C PitchClass = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

var pitchClassNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Pitch is a concrete pitch: class plus octave. C4 is middle C (MIDI 60).
type Pitch struct {
	Class  PitchClass `json:"class"`
	Octave int        `json:"octave"`
}

// MIDI returns the MIDI note number. C-1 = 0, C4 = 60.
func (p Pitch) MIDI() int {
	return (p.Octave+1)*12 + int(p.Class)
}

// Transpose returns the pitch shifted by the given number of semitones.
func (p Pitch) Transpose(semitones int) Pitch {
	n := p.MIDI() + semitones
	return Pitch{Class: PitchClass(mod(n, 12)), Octave: floorDiv(n, 12) - 1}
}

func (p Pitch) String() string {
	return fmt.Sprintf("%s%d", pitchClassNames[mod(int(p.Class), 12)], p.Octave)
}

// ParsePitch parses note names like "C4", "F#3", "Bb2".
// Octaves may be negative ("C-1" is MIDI 0).
func ParsePitch(s string) (Pitch, error) {
	if len(s) < 2 {
		return Pitch{}, fmt.Errorf("pitch %q too short", s)
	}

	letter := strings.ToUpper(s[:1])
	offsets := map[string]int{"C": 0, "D": 2, "E": 4, "F": 5, "G": 7, "A": 9, "B": 11}
	semitone, ok := offsets[letter]
	if !ok {
		return Pitch{}, fmt.Errorf("invalid note letter in %q", s)
	}

	idx := 1
	if s[idx] == '#' {
		semitone++
		idx++
	} else if s[idx] == 'b' {
		semitone--
		idx++
	}
	if idx >= len(s) {
		return Pitch{}, fmt.Errorf("missing octave in %q", s)
	}

	octave, err := strconv.Atoi(s[idx:])
	if err != nil {
		return Pitch{}, fmt.Errorf("invalid octave in %q: %w", s, err)
	}

	midi := (octave+1)*12 + semitone
	if midi < 0 || midi > 127 {
		return Pitch{}, fmt.Errorf("pitch %q outside the MIDI range", s)
	}
	return Pitch{Class: PitchClass(mod(semitone, 12)), Octave: floorDiv(midi, 12) - 1}, nil
}

// DegreeLabel formats a zero-based scale-degree index for display ("1st", "2nd", ...).
func DegreeLabel(index int) string {
	n := index + 1
	switch {
	case n%100 >= 11 && n%100 <= 13:
		return fmt.Sprintf("%dth", n)
	case n%10 == 1:
		return fmt.Sprintf("%dst", n)
	case n%10 == 2:
		return fmt.Sprintf("%dnd", n)
	case n%10 == 3:
		return fmt.Sprintf("%drd", n)
	default:
		return fmt.Sprintf("%dth", n)
	}
}

func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
