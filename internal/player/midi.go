package player

import (
	"fmt"
	"sync"
	"time"

	"github.com/PixPMusic/gopher-scales/internal/theory"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register rtmidi driver
)

// allNotesOff is MIDI CC 123.
const allNotesOff = 123

// MIDIPlayer plays notes on a MIDI output port.
type MIDIPlayer struct {
	portName string
	channel  uint8

	mu     sync.Mutex
	send   func(midi.Message) error
	active map[uint8]*time.Timer // sounding note -> pending note-off
}

// ListOutPorts returns the names of available MIDI output ports.
func ListOutPorts() []string {
	outs := midi.GetOutPorts()
	names := make([]string, 0, len(outs))
	for _, out := range outs {
		names = append(names, out.String())
	}
	return names
}

func findOutPort(name string) drivers.Out {
	for _, out := range midi.GetOutPorts() {
		if out.String() == name {
			return out
		}
	}
	return nil
}

// NewMIDIPlayer opens the named output port on the given channel (0-15).
// An empty name picks the first available port.
func NewMIDIPlayer(portName string, channel uint8) (*MIDIPlayer, error) {
	if portName == "" {
		ports := ListOutPorts()
		if len(ports) == 0 {
			return nil, fmt.Errorf("no MIDI output ports available")
		}
		portName = ports[0]
	}

	outPort := findOutPort(portName)
	if outPort == nil {
		return nil, fmt.Errorf("output port not found: %s", portName)
	}

	send, err := midi.SendTo(outPort)
	if err != nil {
		return nil, fmt.Errorf("failed to create sender for %s: %w", portName, err)
	}

	if channel > 15 {
		channel = 0
	}
	return &MIDIPlayer{
		portName: portName,
		channel:  channel,
		send:     send,
		active:   map[uint8]*time.Timer{},
	}, nil
}

// PortName returns the name of the opened output port.
func (p *MIDIPlayer) PortName() string {
	return p.portName
}

// PlayNote sends note-ons for the pitches and schedules their note-offs
// after d. A pitch already sounding is restruck: its pending note-off is
// replaced so the earlier timer cannot cut the new note short.
func (p *MIDIPlayer) PlayNote(pitches []theory.Pitch, velocity uint8, d time.Duration) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, pitch := range pitches {
		key := uint8(pitch.MIDI())
		if t, ok := p.active[key]; ok {
			t.Stop()
			if err := p.send(midi.NoteOff(p.channel, key)); err != nil {
				return fmt.Errorf("note off failed: %w", err)
			}
		}
		if err := p.send(midi.NoteOn(p.channel, key, velocity)); err != nil {
			return fmt.Errorf("note on failed: %w", err)
		}
		p.active[key] = time.AfterFunc(d, func() { p.noteOff(key) })
	}
	return nil
}

func (p *MIDIPlayer) noteOff(key uint8) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.active[key]; !ok {
		return
	}
	delete(p.active, key)
	if err := p.send(midi.NoteOff(p.channel, key)); err != nil {
		// Nothing to surface from a timer goroutine; the note will also be
		// swept by the next Silence.
		return
	}
}

// Silence stops every pending note-off timer, releases the sounding notes,
// and sends all-notes-off for anything the port may still be holding.
func (p *MIDIPlayer) Silence() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for key, t := range p.active {
		t.Stop()
		delete(p.active, key)
		if err := p.send(midi.NoteOff(p.channel, key)); err != nil {
			return fmt.Errorf("note off failed: %w", err)
		}
	}
	return p.send(midi.ControlChange(p.channel, allNotesOff, 0))
}

// Close silences the port and shuts down the MIDI driver.
func (p *MIDIPlayer) Close() error {
	err := p.Silence()
	midi.CloseDriver()
	return err
}
