package player

import (
	"path/filepath"
	"testing"

	"github.com/PixPMusic/gopher-scales/internal/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2/smf"
)

func TestExportSMF(t *testing.T) {
	s, err := sequence.Resolve(sequence.Choices{Direction: string(sequence.AscendingDescending)})
	require.NoError(t, err)
	groups, err := sequence.Generate(s)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "drill.mid")
	require.NoError(t, ExportSMF(path, s, groups))

	rd, err := smf.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, rd.Tracks, 2, "tempo track plus note track")

	tempos := rd.TempoChanges()
	require.NotEmpty(t, tempos)
	assert.Equal(t, 120.0, tempos[0].BPM)
}

func TestMsToTicks(t *testing.T) {
	// 500ms is one beat at the 120 BPM export tempo.
	assert.Equal(t, uint32(960), msToTicks(500))
	assert.Equal(t, uint32(480), msToTicks(250))
	assert.Equal(t, uint32(0), msToTicks(0))
}
