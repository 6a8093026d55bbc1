package scheduler

import (
	"sync"
	"time"

	"github.com/PixPMusic/gopher-scales/internal/player"
	"github.com/PixPMusic/gopher-scales/internal/sequence"
	"github.com/PixPMusic/gopher-scales/internal/theory"
	"github.com/PixPMusic/gopher-scales/internal/timing"
	"github.com/google/uuid"
)

// dividerPause separates full traversals in loop_gap mode. It is distinct
// from the note-to-note gap and never replaces it.
const dividerPause = 200 * time.Millisecond

// Event is one dispatched playback step.
type Event struct {
	Pitches     []theory.Pitch
	Chord       bool
	Velocity    uint8
	Duration    time.Duration
	PitchLabel  string
	DegreeLabel string
}

// Status describes the currently sounding range note, for display.
type Status struct {
	PitchLabel  string
	DegreeLabel string
}

// Callbacks receive playback notifications. Both are optional. OnStop fires
// exactly once, on natural completion or cancellation.
type Callbacks struct {
	OnEvent func(Event)
	OnStop  func()
}

// Playback is a cancellable handle to one running traversal.
type Playback struct {
	ID uuid.UUID

	stopOnce sync.Once
	stopCh   chan struct{}
	done     chan struct{}

	mu     sync.RWMutex
	status Status
}

// Stop requests cancellation. The scheduler observes it before dispatching
// the next event; nothing further sounds after that.
func (p *Playback) Stop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
}

// Done is closed when the playback has fully ended.
func (p *Playback) Done() <-chan struct{} { return p.done }

// Status returns the labels of the currently sounding event.
func (p *Playback) Status() Status {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.status
}

func (p *Playback) stopped() bool {
	select {
	case <-p.stopCh:
		return true
	default:
		return false
	}
}

// sleep waits for d, returning false if the playback was stopped first.
func (p *Playback) sleep(d time.Duration) bool {
	if d <= 0 {
		return !p.stopped()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-p.stopCh:
		return false
	case <-t.C:
		return true
	}
}

func (p *Playback) setStatus(st Status) {
	p.mu.Lock()
	p.status = st
	p.mu.Unlock()
}

// Scheduler turns group sequences into timed note-player calls. At most one
// playback is live at a time; starting a new one cancels the old one first.
type Scheduler struct {
	player player.NotePlayer
	live   *timing.Live

	mu      sync.Mutex
	current *Playback
}

// New creates a scheduler driving the given note player, reading note
// duration and gap from the live timing ref.
func New(p player.NotePlayer, live *timing.Live) *Scheduler {
	return &Scheduler{player: p, live: live}
}

// Play validates and generates the sequence for the settings, cancels any
// live playback, and starts a fresh one. Timing (note duration and gap) is
// read from the live ref before every event, so adjustments made while a
// note sounds take effect on the next note.
func (s *Scheduler) Play(settings sequence.Settings, cb Callbacks) (*Playback, error) {
	final, err := sequence.Generate(settings)
	if err != nil {
		return nil, err
	}

	// Non-final passes of a finite playback keep the last group's extras;
	// only the very last group of the whole playback is trimmed.
	full := final
	if settings.Repeat == sequence.RepeatTwice {
		if full, err = sequence.GenerateFull(settings); err != nil {
			return nil, err
		}
	}

	pb := &Playback{
		ID:     uuid.New(),
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}

	s.mu.Lock()
	old := s.current
	s.current = pb
	s.mu.Unlock()
	if old != nil {
		old.Stop()
		<-old.done
	}

	go s.run(pb, settings, full, final, cb)
	return pb, nil
}

// Stop cancels the live playback, if any, and waits for it to end.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	pb := s.current
	s.mu.Unlock()
	if pb != nil {
		pb.Stop()
		<-pb.done
	}
}

func (s *Scheduler) run(pb *Playback, settings sequence.Settings, full, final []sequence.Group, cb Callbacks) {
	defer func() {
		s.mu.Lock()
		if s.current == pb {
			s.current = nil
		}
		s.mu.Unlock()
		if cb.OnStop != nil {
			cb.OnStop()
		}
		close(pb.done)
	}()

	passes := 1
	if settings.Repeat == sequence.RepeatTwice {
		passes = 2
	}
	loop := settings.Repeat.Loops()

	for pass := 0; ; pass++ {
		groups := final
		if !loop && pass < passes-1 {
			groups = full
		}

		for gi, g := range groups {
			if !s.playGroup(pb, g, cb) {
				s.player.Silence()
				return
			}
			if gi < len(groups)-1 {
				if !pb.sleep(s.live.Gap()) {
					s.player.Silence()
					return
				}
			}
		}

		if loop {
			if settings.Repeat == sequence.RepeatLoopGap {
				if !pb.sleep(dividerPause) {
					s.player.Silence()
					return
				}
			}
			continue
		}
		if pass == passes-1 {
			return
		}
	}
}

// playGroup dispatches one group, returning false once the stop flag is
// observed.
func (s *Scheduler) playGroup(pb *Playback, g sequence.Group, cb Callbacks) bool {
	rangeNote := g.Notes[g.RangeIndex]
	degreeLabel := theory.DegreeLabel(g.Degree)

	if g.Chord {
		if pb.stopped() {
			return false
		}
		dur := s.live.Note()
		pitches := make([]theory.Pitch, len(g.Notes))
		for i, n := range g.Notes {
			pitches[i] = n.Pitch
		}
		return s.dispatch(pb, cb, Event{
			Pitches:     pitches,
			Chord:       true,
			Velocity:    player.VelocityRange,
			Duration:    dur,
			PitchLabel:  rangeNote.Pitch.String(),
			DegreeLabel: degreeLabel,
		})
	}

	for ni, n := range g.Notes {
		if pb.stopped() {
			return false
		}
		dur := s.live.Note()
		vel := player.VelocityExtra
		if ni == g.RangeIndex {
			vel = player.VelocityRange
		}
		ok := s.dispatch(pb, cb, Event{
			Pitches:     []theory.Pitch{n.Pitch},
			Velocity:    vel,
			Duration:    dur,
			PitchLabel:  n.Pitch.String(),
			DegreeLabel: degreeLabel,
		})
		if !ok {
			return false
		}
		if ni < len(g.Notes)-1 {
			if !pb.sleep(s.live.Gap()) {
				return false
			}
		}
	}
	return true
}

// dispatch plays one event and suspends for its duration.
func (s *Scheduler) dispatch(pb *Playback, cb Callbacks, ev Event) bool {
	pb.setStatus(Status{PitchLabel: ev.PitchLabel, DegreeLabel: ev.DegreeLabel})
	if err := s.player.PlayNote(ev.Pitches, ev.Velocity, ev.Duration); err != nil {
		// A dead port is not recoverable mid-playback; stop cleanly.
		pb.Stop()
		return false
	}
	if cb.OnEvent != nil {
		cb.OnEvent(ev)
	}
	return pb.sleep(ev.Duration)
}
