package player

import (
	"fmt"
	"sort"

	"github.com/PixPMusic/gopher-scales/internal/sequence"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Velocities used for group members. The range note is accented so the
// skeleton of the drill stays audible under its ornaments.
const (
	VelocityRange uint8 = 100
	VelocityExtra uint8 = 78
)

const (
	smfTicksPerBeat = 960
	smfTempoBPM     = 120.0
)

// msToTicks converts milliseconds to SMF ticks at the fixed export tempo
// (120 BPM: one beat = 500ms).
func msToTicks(ms int) uint32 {
	return uint32(ms) * smfTicksPerBeat / 500
}

type smfEvent struct {
	tick uint32
	msg  midi.Message
}

// ExportSMF writes one traversal of the generated sequence as a type-1
// standard MIDI file: a tempo track plus one note track. Timing comes from
// the settings snapshot; live adjustments do not apply to exports.
func ExportSMF(path string, s sequence.Settings, groups []sequence.Group) error {
	sm := smf.New()
	sm.TimeFormat = smf.MetricTicks(smfTicksPerBeat)

	var tempo smf.Track
	tempo.Add(0, smf.MetaMeter(4, 4))
	tempo.Add(0, smf.MetaTempo(smfTempoBPM))
	tempo.Close(0)
	if err := sm.Add(tempo); err != nil {
		return fmt.Errorf("error adding tempo track: %w", err)
	}

	dur := msToTicks(s.NoteMs)
	gap := msToTicks(s.GapMs)

	var events []smfEvent
	var tick uint32
	for gi, g := range groups {
		if g.Chord {
			for _, n := range g.Notes {
				key := uint8(n.Pitch.MIDI())
				events = append(events,
					smfEvent{tick, midi.NoteOn(0, key, VelocityRange)},
					smfEvent{tick + dur, midi.NoteOff(0, key)},
				)
			}
			tick += dur
		} else {
			for ni, n := range g.Notes {
				vel := VelocityExtra
				if ni == g.RangeIndex {
					vel = VelocityRange
				}
				key := uint8(n.Pitch.MIDI())
				events = append(events,
					smfEvent{tick, midi.NoteOn(0, key, vel)},
					smfEvent{tick + dur, midi.NoteOff(0, key)},
				)
				tick += dur
				if ni < len(g.Notes)-1 {
					tick += gap
				}
			}
		}
		if gi < len(groups)-1 {
			tick += gap
		}
	}

	sort.SliceStable(events, func(i, j int) bool { return events[i].tick < events[j].tick })

	var track smf.Track
	var last uint32
	for _, ev := range events {
		track.Add(ev.tick-last, ev.msg)
		last = ev.tick
	}
	track.Close(0)
	if err := sm.Add(track); err != nil {
		return fmt.Errorf("error adding note track: %w", err)
	}

	return sm.WriteFile(path)
}
