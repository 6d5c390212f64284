package heli

import (
	"github.com/vovakirdan/heli-strike/internal/audio"
	"github.com/vovakirdan/heli-strike/internal/config"
	"github.com/vovakirdan/heli-strike/internal/core"
	"github.com/vovakirdan/heli-strike/internal/level"
)

// ScreenID identifies a screen in the splash / level / terminal cycle.
type ScreenID int

const (
	ScreenSplash ScreenID = iota
	ScreenLevel
	ScreenGameOver
	ScreenWinner
)

// String returns the screen name.
func (s ScreenID) String() string {
	switch s {
	case ScreenSplash:
		return "splash"
	case ScreenLevel:
		return "level"
	case ScreenGameOver:
		return "game_over"
	case ScreenWinner:
		return "winner"
	default:
		return "unknown"
	}
}

// Director runs the screen state machine:
//
//	Splash -> Level -> {GameOver, Winner} -> Splash
//
// The splash and terminal screens advance on confirm. Entering the
// level builds a fresh world over a clone of the pristine level, so
// consumed spawn codes never leak between runs.
type Director struct {
	cfg      *config.HeliConfig
	cat      *Catalog
	atlas    *Atlas
	audio    audio.Player
	pristine *level.Level
	seed     int64

	current   ScreenID
	world     *World
	lastScore int

	// loadErr is shown on the splash screen when the last attempt to
	// start the level failed validation.
	loadErr error
}

// NewDirector builds the screen machine starting at the splash screen.
func NewDirector(cfg *config.HeliConfig, lvl *level.Level, atlas *Atlas, aud audio.Player, seed int64) *Director {
	return &Director{
		cfg:      cfg,
		cat:      NewCatalog(cfg),
		atlas:    atlas,
		audio:    aud,
		pristine: lvl,
		seed:     seed,
		current:  ScreenSplash,
	}
}

// Step advances whichever screen is active by one tick.
func (d *Director) Step(in core.InputFrame) {
	switch d.current {
	case ScreenSplash:
		if in.Has(core.ActionConfirm) {
			d.startLevel()
		}

	case ScreenLevel:
		d.world.Step(in)
		switch d.world.TakeOutcome() {
		case OutcomeGameOver:
			d.finishLevel(ScreenGameOver)
		case OutcomeWinner:
			d.finishLevel(ScreenWinner)
		}

	case ScreenGameOver, ScreenWinner:
		if in.Has(core.ActionConfirm) {
			d.current = ScreenSplash
		}
	}
}

// startLevel swaps in a fresh world. On validation failure the splash
// screen stays up and shows the error.
func (d *Director) startLevel() {
	w, err := NewWorld(d.cfg, d.cat, d.pristine.Clone(), d.atlas, d.audio, d.seed)
	if err != nil {
		d.loadErr = err
		return
	}
	d.loadErr = nil
	d.world = w
	d.current = ScreenLevel
}

// finishLevel records the run's score, silences any looping alarms,
// and moves to the terminal screen.
func (d *Director) finishLevel(next ScreenID) {
	d.lastScore = d.world.Score()
	d.audio.StopAll()
	d.world = nil
	d.current = next
}

// Current returns the active screen.
func (d *Director) Current() ScreenID { return d.current }

// World returns the running world, nil outside the level screen.
func (d *Director) World() *World { return d.world }

// LastScore returns the score of the most recently finished run.
func (d *Director) LastScore() int { return d.lastScore }

// LoadErr returns the error from the last failed level start, if any.
func (d *Director) LoadErr() error { return d.loadErr }
