// Package audio provides fire-and-forget synthesized sound effects.
// Cues are generated waveforms mixed through a single beep speaker; if
// the audio device cannot be opened the engine degrades to silence
// rather than failing, so gameplay never depends on sound.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cue names a sound effect.
type Cue string

const (
	CueShot      Cue = "shot"
	CueDamaged   Cue = "damaged"
	CueExplosion Cue = "explosion"
	CueRedAlert  Cue = "red_alert"
)

// Player is the audio contract the game consumes. Play and Loop are
// non-blocking; Limit truncates a cue that would otherwise play out.
type Player interface {
	// Play plays a cue once. A non-zero limit truncates the cue.
	Play(c Cue, limit time.Duration)

	// Loop plays a cue repeatedly until StopAll.
	Loop(c Cue)

	// StopAll silences every playing and looping cue.
	StopAll()
}

// Nop is a Player that does nothing. Used in tests and with --no-sound.
type Nop struct{}

func (Nop) Play(Cue, time.Duration) {}
func (Nop) Loop(Cue)                {}
func (Nop) StopAll()                {}

// Engine is the beep-backed Player.
type Engine struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	loops       []*beep.Ctrl
	initialized bool
}

// NewEngine creates an engine. Call Initialize before use.
func NewEngine() *Engine {
	return &Engine{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. Failure leaves the engine silent and is
// not an error: a headless or deviceless host still gets a playable game.
func (e *Engine) Initialize() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.initialized {
		return
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return
	}
	speaker.Play(e.mixer)
	e.initialized = true
}

// Play implements Player.
func (e *Engine) Play(c Cue, limit time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return
	}

	s := cueStreamer(c)
	if limit > 0 {
		s = beep.Take(sampleRate.N(limit), s)
	}

	speaker.Lock()
	e.mixer.Add(s)
	speaker.Unlock()
}

// Loop implements Player.
func (e *Engine) Loop(c Cue) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return
	}

	gap := sampleRate.N(200 * time.Millisecond)
	ctrl := &beep.Ctrl{Streamer: newLoop(func() beep.Streamer {
		return beep.Seq(cueStreamer(c), beep.Silence(gap))
	})}
	e.loops = append(e.loops, ctrl)

	speaker.Lock()
	e.mixer.Add(ctrl)
	speaker.Unlock()
}

// StopAll implements Player. Screen transitions call this so a siren
// from the level never bleeds into the game-over screen.
func (e *Engine) StopAll() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return
	}

	speaker.Lock()
	for _, ctrl := range e.loops {
		ctrl.Paused = true
		ctrl.Streamer = nil
	}
	e.mixer.Clear()
	speaker.Unlock()
	e.loops = nil
}
