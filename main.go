package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/PixPMusic/gopher-scales/internal/config"
	"github.com/PixPMusic/gopher-scales/internal/player"
	"github.com/PixPMusic/gopher-scales/internal/scheduler"
	"github.com/PixPMusic/gopher-scales/internal/sequence"
	"github.com/PixPMusic/gopher-scales/internal/timing"
)

func main() {
	var (
		listPorts = flag.Bool("list-ports", false, "list MIDI output ports and exit")
		port      = flag.String("port", "", "MIDI output port name (default: configured, else first available)")
		channel   = flag.Int("channel", -1, "MIDI channel 1-16 (default: configured)")
		export    = flag.String("export", "", "write the sequence to a MIDI file instead of playing")

		root      = flag.String("root", "", "root pitch, e.g. C4, F#3, Bb2")
		scale     = flag.String("scale", "", "scale type, e.g. major, minor, harmonic_minor, chromatic")
		direction = flag.String("direction", "", "ascending, descending, ascending_descending, descending_ascending")
		extent    = flag.String("extent", "", "one_octave, octave_third, octave_fifth, two_octaves, centered")
		style     = flag.String("style", "", "normal, two_above, one_three_five, root_first, return_root, neighbors_fixed, neighbors, chord")
		repeat    = flag.String("repeat", "", "off, once, twice, loop_gap, loop_nogap")
		noteMs    = flag.Int("note-ms", 0, "note duration in milliseconds")
		gapMs     = flag.Int("gap-ms", -1, "gap between notes in milliseconds")
		widen     = flag.Int("widen", -1, "extra chromatic semitones on each side of the range")
		octaves   = flag.Int("octaves", 0, "octave span multiplier")
	)
	flag.Parse()

	if *listPorts {
		for _, name := range player.ListOutPorts() {
			fmt.Println(name)
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Only flags the user actually passed become the top priority layer.
	overrides := sequence.Choices{}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "root":
			overrides.Root = *root
		case "scale":
			overrides.Scale = *scale
		case "direction":
			overrides.Direction = *direction
		case "extent":
			overrides.Extent = *extent
		case "style":
			overrides.Style = *style
		case "repeat":
			overrides.Repeat = *repeat
		case "note-ms":
			overrides.NoteMs = noteMs
		case "gap-ms":
			overrides.GapMs = gapMs
		case "widen":
			overrides.Widen = widen
		case "octaves":
			overrides.OctaveSpan = octaves
		}
	})

	settings, err := sequence.Resolve(overrides, cfg.Defaults)
	if err != nil {
		log.Fatalf("Failed to resolve settings: %v", err)
	}

	if *export != "" {
		groups, err := sequence.Generate(settings)
		if err != nil {
			log.Fatalf("Failed to generate sequence: %v", err)
		}
		if err := player.ExportSMF(*export, settings, groups); err != nil {
			log.Fatalf("Failed to export %s: %v", *export, err)
		}
		log.Printf("Wrote %d groups to %s", len(groups), *export)
		return
	}

	outPort := cfg.Output.Port
	if *port != "" {
		outPort = *port
	}
	ch := cfg.Output.Channel
	if *channel >= 1 && *channel <= 16 {
		ch = *channel - 1
	}

	p, err := player.NewMIDIPlayer(outPort, uint8(ch))
	if err != nil {
		log.Fatalf("Failed to open MIDI output: %v", err)
	}
	defer p.Close()
	log.Printf("Playing on %s", p.PortName())

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	live := timing.NewLive(
		time.Duration(settings.NoteMs)*time.Millisecond,
		time.Duration(settings.GapMs)*time.Millisecond,
	)

	// Timing edits saved to the config while playing apply from the next note.
	if path, err := config.ConfigPath(); err == nil {
		go func() {
			if err := config.WatchTiming(ctx, path, live); err != nil {
				log.Printf("Config watch unavailable: %v", err)
			}
		}()
	}

	sched := scheduler.New(p, live)
	pb, err := sched.Play(settings, scheduler.Callbacks{
		OnEvent: func(ev scheduler.Event) {
			fmt.Printf("%-4s %s\n", ev.PitchLabel, ev.DegreeLabel)
		},
	})
	if err != nil {
		log.Fatalf("Failed to start playback: %v", err)
	}

	select {
	case <-ctx.Done():
		sched.Stop()
	case <-pb.Done():
	}
}
