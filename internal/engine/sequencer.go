package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Mode is the kind of run the sequencer is executing.
type Mode string

const (
	ModeGenerate Mode = "generate"
	ModeReplay   Mode = "replay"
)

const (
	// ProgressStep is added to progress on every generate tick.
	ProgressStep = 2
	// SceneBoundary: a generate run shows the next scene whenever progress lands on a multiple of it.
	SceneBoundary = 15
	// GenerateTickUnit times duration gives the generate tick interval.
	GenerateTickUnit = 10 * time.Millisecond

	MinDuration     = 5
	MaxDuration     = 60
	DefaultDuration = 15

	MinIntensity     = 1
	MaxIntensity     = 10
	DefaultIntensity = 5
)

// PlaybackState is everything the rendering surface shows for the stage.
type PlaybackState struct {
	Scene      int
	Line       string
	Emoji      string
	Sound      string
	Background Background
	Effect     Effect
	Progress   int // 0-100
	Generating bool
	Playing    bool
}

// Idle reports whether no run is active.
func (p PlaybackState) Idle() bool { return !p.Generating && !p.Playing }

// Run identifies one timer-bounded execution. Ticks are addressed to a run by ID.
type Run struct {
	ID       uuid.UUID
	Mode     Mode
	Interval time.Duration
	Ordinal  int
}

// Step reports what a single tick did.
type Step struct {
	Stale    bool // tick addressed to a run that is no longer current
	Advanced bool // a new scene is showing
	Done     bool // the run ended on this tick
}

// HistoryRecorder receives one summary per completed generation.
type HistoryRecorder interface {
	Record(runID uuid.UUID, names []string, summary string)
	Len() int
}

// Sequencer owns the script, the playback state and the single current run.
// It is driven by Tick calls and is not safe for concurrent use.
type Sequencer struct {
	seed    RunSeed
	history HistoryRecorder

	duration  int
	intensity int

	chars  []Character
	script Script
	state  PlaybackState

	current *Run
	cursor  int
	picks   *Stream
	runs    int
}

// NewSequencer returns an idle sequencer with default settings and no script.
func NewSequencer(seed RunSeed, history HistoryRecorder) *Sequencer {
	return &Sequencer{
		seed:      seed,
		history:   history,
		duration:  DefaultDuration,
		intensity: DefaultIntensity,
		state:     PlaybackState{Background: DefaultBackground()},
	}
}

// SetDuration sets the clip duration in seconds, clamped to [MinDuration, MaxDuration].
// A running run keeps the interval it started with.
func (s *Sequencer) SetDuration(sec int) { s.duration = clamp(sec, MinDuration, MaxDuration) }

// Duration returns the configured clip duration in seconds.
func (s *Sequencer) Duration() int { return s.duration }

// SetIntensity stores the intensity, clamped to [MinIntensity, MaxIntensity]. It has no effect on
// generation or timing.
func (s *Sequencer) SetIntensity(v int) { s.intensity = clamp(v, MinIntensity, MaxIntensity) }

func (s *Sequencer) Intensity() int { return s.intensity }

// State returns a snapshot of the playback state.
func (s *Sequencer) State() PlaybackState {
	st := s.state
	st.Background.Stops = append([]string(nil), s.state.Background.Stops...)
	return st
}

// Script returns a copy of the current script.
func (s *Sequencer) Script() Script { return append(Script(nil), s.script...) }

// Characters returns a copy of the characters selected by the last generation.
func (s *Sequencer) Characters() []Character { return append([]Character(nil), s.chars...) }

func (s *Sequencer) HasScript() bool { return len(s.script) > 0 }

// Busy reports whether a run is active.
func (s *Sequencer) Busy() bool { return s.current != nil }

// CanGenerate reports whether Generate would start a run.
func (s *Sequencer) CanGenerate() bool { return !s.Busy() }

// CanPlay reports whether Play would start a run.
func (s *Sequencer) CanPlay() bool { return !s.Busy() && s.HasScript() }

// Current returns the live run, if any.
func (s *Sequencer) Current() (Run, bool) {
	if s.current == nil {
		return Run{}, false
	}
	return *s.current, true
}

// Generate starts a generate run with a freshly generated script. It is a no-op returning false
// while any run is active.
func (s *Sequencer) Generate() (Run, bool) {
	if !s.CanGenerate() {
		return Run{}, false
	}
	run, stream := s.acquire(ModeGenerate, time.Duration(s.duration)*GenerateTickUnit)
	s.state = PlaybackState{Background: DefaultBackground(), Generating: true}
	s.chars, s.script = GenerateScript(stream.Child("script"))
	return run, true
}

// Play starts a replay of the current script spread over the configured duration. It is a no-op
// returning false while any run is active or when there is no script.
func (s *Sequencer) Play() (Run, bool) {
	if !s.CanPlay() {
		return Run{}, false
	}
	interval := time.Duration(s.duration) * time.Second / time.Duration(len(s.script))
	run, _ := s.acquire(ModeReplay, interval)
	s.state.Scene = 0
	s.state.Playing = true
	return run, true
}

// Tick advances the run identified by id. Ticks for any other run are reported stale and change
// nothing; the caller must not reschedule them.
func (s *Sequencer) Tick(id uuid.UUID) Step {
	if s.current == nil || s.current.ID != id {
		return Step{Stale: true}
	}
	switch s.current.Mode {
	case ModeGenerate:
		return s.tickGenerate()
	default:
		return s.tickReplay()
	}
}

func (s *Sequencer) tickGenerate() Step {
	var step Step
	s.state.Progress = min(s.state.Progress+ProgressStep, 100)
	if s.state.Progress%SceneBoundary == 0 && s.cursor < len(s.script) {
		s.advance()
		step.Advanced = true
	}
	if s.state.Progress >= 100 {
		run := *s.current
		s.release()
		if s.history != nil {
			s.history.Record(run.ID, Names(s.chars), Summary(s.history.Len()+1, s.chars))
		}
		step.Done = true
	}
	return step
}

func (s *Sequencer) tickReplay() Step {
	if s.cursor < len(s.script) {
		s.advance()
		return Step{Advanced: true}
	}
	s.release()
	return Step{Done: true}
}

// Release ends the run identified by id if it is still current. Only the owner of a run may end it.
func (s *Sequencer) Release(id uuid.UUID) bool {
	if s.current == nil || s.current.ID != id {
		return false
	}
	s.release()
	return true
}

// Teardown ends whatever run is live. Safe to call repeatedly.
func (s *Sequencer) Teardown() { s.release() }

// acquire releases any prior run before installing the new one.
func (s *Sequencer) acquire(mode Mode, interval time.Duration) (Run, *Stream) {
	s.release()
	s.runs++
	run := &Run{ID: uuid.New(), Mode: mode, Interval: interval, Ordinal: s.runs}
	stream := s.seed.Stream(fmt.Sprintf("run#%d:%s", s.runs, mode))
	s.current = run
	s.cursor = 0
	s.picks = stream.Child("scenes")
	return *run, stream
}

func (s *Sequencer) release() {
	s.current = nil
	s.state.Generating = false
	s.state.Playing = false
}

func (s *Sequencer) advance() {
	i := s.cursor
	s.state.Scene = i
	s.state.Line = s.script[i]
	s.state.Emoji = FallbackEmoji
	if len(s.chars) > 0 {
		s.state.Emoji = s.chars[i%len(s.chars)].Emoji
	}
	s.state.Sound = Pick(s.picks, sounds)
	s.state.Background = Backgrounds()[s.picks.Intn(len(backgrounds))]
	s.state.Effect = Pick(s.picks, AllEffects)
	s.cursor++
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
