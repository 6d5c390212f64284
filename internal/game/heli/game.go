package heli

import (
	"sync"

	"github.com/vovakirdan/heli-strike/internal/audio"
	"github.com/vovakirdan/heli-strike/internal/config"
	"github.com/vovakirdan/heli-strike/internal/core"
	"github.com/vovakirdan/heli-strike/internal/level"
	"github.com/vovakirdan/heli-strike/internal/registry"
)

// Game wraps the screen machine behind the platform's game interface.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.HeliConfig
	atlas   *Atlas
	dir     *Director

	// loadErr from Reset is shown instead of a playfield; Step becomes
	// a no-op so the platform can still render and quit cleanly.
	loadErr error
}

// Package-level options set by CLI flags before the platform calls Reset.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	levelIndex       int
	levelPath        string
	soundEnabled     = true
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLevel selects a bundled level by index.
func SetLevel(n int) {
	levelIndex = n
}

// SetLevelPath loads a custom level file instead of a bundled one.
func SetLevelPath(path string) {
	levelPath = path
}

// SetSound toggles the synthesized sound effects.
func SetSound(on bool) {
	soundEnabled = on
}

// The speaker can only be initialized once per process.
var (
	engineOnce sync.Once
	engine     *audio.Engine
)

func sharedAudio() audio.Player {
	if !soundEnabled {
		return audio.Nop{}
	}
	engineOnce.Do(func() {
		engine = audio.NewEngine()
		engine.Initialize()
	})
	return engine
}

// New creates a new Heli Strike game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("heli", func() registry.Game { return New() })
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "heli"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Heli Strike"
}

// Reset initializes or restarts the game at the splash screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.loadErr = nil

	cfg, err := config.LoadHeli(configPath)
	if err != nil {
		cfg = config.DefaultHeliConfig()
	}
	if difficultyPreset != "" {
		config.ApplyHeliPreset(&cfg, difficultyPreset)
	}
	if !soundEnabled {
		cfg.Audio.Enabled = false
	}
	g.cfg = cfg

	var lvl *level.Level
	if levelPath != "" {
		lvl, err = level.LoadFile(levelPath)
	} else {
		lvl, err = level.BuiltinByIndex(levelIndex)
	}
	if err != nil {
		g.loadErr = err
		g.dir = nil
		return
	}

	aud := audio.Player(audio.Nop{})
	if cfg.Audio.Enabled {
		aud = sharedAudio()
	}

	g.atlas = DefaultAtlas()
	g.dir = NewDirector(&g.cfg, lvl, g.atlas, aud, runtime.Seed)
}

// Step advances the active screen by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.dir != nil {
		g.dir.Step(in)
	}
	return core.StepResult{State: g.State()}
}

// State reports the score of the current or last run. GameOver is
// raised on the terminal screens, which is when the platform persists
// the score; returning to the splash screen clears it.
func (g *Game) State() core.GameState {
	if g.dir == nil {
		return core.GameState{GameOver: true}
	}
	st := core.GameState{Score: g.dir.LastScore()}
	if w := g.dir.World(); w != nil {
		st.Score = w.Score()
		st.Paused = w.Paused()
	}
	switch g.dir.Current() {
	case ScreenGameOver, ScreenWinner:
		st.GameOver = true
	}
	return st
}
