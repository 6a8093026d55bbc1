package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStyles() []Style {
	styles := make([]Style, 0, len(styleHandlers))
	for s := range styleHandlers {
		styles = append(styles, s)
	}
	return styles
}

// The subsequence of marked range notes must equal the builder output, in
// order, for every style and a grid of scale/extent/direction combinations.
func TestRangeNotesAreSacred(t *testing.T) {
	scales := []string{"major", "minor", "dorian", "chromatic", "minor_pentatonic"}
	extents := []string{"one_octave", "two_octaves", "centered"}
	dirs := []string{
		string(Ascending), string(Descending),
		string(AscendingDescending), string(DescendingAscending),
	}

	for _, style := range allStyles() {
		for _, sc := range scales {
			for _, ex := range extents {
				for _, d := range dirs {
					s := mustResolve(t, Choices{
						Scale: sc, Extent: ex, Direction: d, Style: string(style),
					})
					notes, err := BuildRangeNotes(s)
					require.NoError(t, err)
					groups, err := Generate(s)
					require.NoError(t, err)

					require.Len(t, groups, len(notes),
						"%s/%s/%s/%s: one group per range note", style, sc, ex, d)
					for i, g := range groups {
						require.Less(t, g.RangeIndex, len(g.Notes))
						marked := g.Notes[g.RangeIndex]
						assert.Equal(t, notes[i].Offset, marked.Offset,
							"%s/%s/%s/%s: group %d marked note", style, sc, ex, d, i)
						assert.Equal(t, notes[i].Degree, g.Degree)
					}
				}
			}
		}
	}
}

// Every style's final group degenerates to the bare range note.
func TestCleanEnding(t *testing.T) {
	for _, style := range allStyles() {
		for _, d := range []string{string(Ascending), string(AscendingDescending)} {
			s := mustResolve(t, Choices{Style: string(style), Direction: d})
			groups, err := Generate(s)
			require.NoError(t, err)

			last := groups[len(groups)-1]
			assert.Len(t, last.Notes, 1, "style %s, direction %s", style, d)
			assert.False(t, last.Chord, "style %s: trimmed group cannot be a chord", style)
			assert.Equal(t, 0, last.RangeIndex)
		}
	}
}

func TestGenerateFullKeepsFinalExtras(t *testing.T) {
	s := mustResolve(t, Choices{Style: string(StyleTwoAbove)})
	groups, err := GenerateFull(s)
	require.NoError(t, err)
	assert.Len(t, groups[len(groups)-1].Notes, 3)
}

func TestGenerateIsPure(t *testing.T) {
	s := mustResolve(t, Choices{
		Scale: "harmonic_minor", Direction: string(AscendingDescending),
		Style: string(StyleNeighbors),
	})
	a, err := Generate(s)
	require.NoError(t, err)
	b, err := Generate(s)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// The diatonic third above C in C minor is Eb, not E.
func TestMinorThirdSizing(t *testing.T) {
	s := mustResolve(t, Choices{Scale: "minor", Style: string(StyleOneThreeFive)})
	groups, err := Generate(s)
	require.NoError(t, err)

	first := groups[0]
	require.Len(t, first.Notes, 3)
	assert.Equal(t, "C4", first.Notes[0].Pitch.String())
	assert.Equal(t, "D#4", first.Notes[1].Pitch.String(), "minor third above C4")
	assert.Equal(t, "G4", first.Notes[2].Pitch.String())
	assert.False(t, first.Chord)
}

func TestMajorThirdSizing(t *testing.T) {
	s := mustResolve(t, Choices{Style: string(StyleOneThreeFive)})
	groups, err := Generate(s)
	require.NoError(t, err)
	assert.Equal(t, "E4", groups[0].Notes[1].Pitch.String(), "major third above C4")
}

func TestTwoAboveStepsDegrees(t *testing.T) {
	s := mustResolve(t, Choices{Style: string(StyleTwoAbove)})
	groups, err := Generate(s)
	require.NoError(t, err)

	// B4 is the 7th degree; stepping above it must carry the octave.
	b4 := groups[6]
	require.Len(t, b4.Notes, 3)
	assert.Equal(t, "B4", b4.Notes[0].Pitch.String())
	assert.Equal(t, "C5", b4.Notes[1].Pitch.String())
	assert.Equal(t, "D5", b4.Notes[2].Pitch.String())
}

func TestRootFirstAndReturnRoot(t *testing.T) {
	s := mustResolve(t, Choices{Style: string(StyleRootFirst)})
	groups, err := Generate(s)
	require.NoError(t, err)

	g := groups[4] // G4
	require.Len(t, g.Notes, 2)
	assert.Equal(t, "C4", g.Notes[0].Pitch.String())
	assert.Equal(t, "G4", g.Notes[1].Pitch.String())
	assert.Equal(t, 1, g.RangeIndex, "the range note is the second entry")

	s = mustResolve(t, Choices{Style: string(StyleReturnRoot)})
	groups, err = Generate(s)
	require.NoError(t, err)

	g = groups[4]
	assert.Equal(t, "G4", g.Notes[0].Pitch.String())
	assert.Equal(t, "C4", g.Notes[1].Pitch.String())
	assert.Equal(t, 0, g.RangeIndex)
}

func TestNeighborsFollowsTraversalDirection(t *testing.T) {
	s := mustResolve(t, Choices{
		Style:     string(StyleNeighbors),
		Direction: string(AscendingDescending),
	})
	groups, err := Generate(s)
	require.NoError(t, err)

	// Ascending half: D4 gets below (C4) then above (E4).
	asc := groups[1]
	require.Len(t, asc.Notes, 3)
	assert.Equal(t, "D4", asc.Notes[0].Pitch.String())
	assert.Equal(t, "C4", asc.Notes[1].Pitch.String())
	assert.Equal(t, "E4", asc.Notes[2].Pitch.String())

	// Descending half: B4 (index 8) gets above (C5) then below (A4).
	desc := groups[8]
	require.Len(t, desc.Notes, 3)
	assert.Equal(t, "B4", desc.Notes[0].Pitch.String())
	assert.Equal(t, "C5", desc.Notes[1].Pitch.String())
	assert.Equal(t, "A4", desc.Notes[2].Pitch.String())
}

func TestNeighborsOneWayDescending(t *testing.T) {
	s := mustResolve(t, Choices{
		Style:     string(StyleNeighbors),
		Direction: string(Descending),
	})
	groups, err := Generate(s)
	require.NoError(t, err)

	// A pure descending traversal uses the descending sense throughout.
	top := groups[0] // C5
	assert.Equal(t, "C5", top.Notes[0].Pitch.String())
	assert.Equal(t, "D5", top.Notes[1].Pitch.String())
	assert.Equal(t, "B4", top.Notes[2].Pitch.String())
}

func TestChordStyle(t *testing.T) {
	s := mustResolve(t, Choices{Scale: "minor", Style: string(StyleChord)})
	groups, err := Generate(s)
	require.NoError(t, err)

	g := groups[0]
	assert.True(t, g.Chord)
	assert.Equal(t, 0, g.RangeIndex)
	require.Len(t, g.Notes, 3)
	assert.Equal(t, []int{0, 3, 7}, []int{g.Notes[0].Offset, g.Notes[1].Offset, g.Notes[2].Offset})
}
