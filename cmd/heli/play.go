package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/heli-strike/internal/core"
	"github.com/vovakirdan/heli-strike/internal/game/heli"
	"github.com/vovakirdan/heli-strike/internal/platform/tui"
	"github.com/vovakirdan/heli-strike/internal/registry"
	"github.com/vovakirdan/heli-strike/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagLevelFile  string
	flagNoSound    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Fly a sortie",
	Long: `Start the game.

Controls:
  W/A/S/D or arrows - Move
  Space             - Fire
  Enter             - Confirm / pause
  R                 - Restart (after game over)
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - More hit points, slower enemy fire
  normal - Stock balance
  hard   - Fewer hit points, faster enemy fire

Examples:
  heli play
  heli play --level 1
  heli play --difficulty hard
  heli play --level-file ./canyon.yaml
  heli play --config ./my-heli.yaml --no-sound`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Bundled level index (see 'heli levels')")
	playCmd.Flags().StringVar(&flagLevelFile, "level-file", "", "Path to a custom level YAML")
	playCmd.Flags().BoolVar(&flagNoSound, "no-sound", false, "Disable synthesized audio")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Apply CLI options before creation
	heli.SetConfigPath(flagConfig)
	heli.SetDifficultyPreset(flagDifficulty)
	heli.SetLevel(flagLevel)
	heli.SetLevelPath(flagLevelFile)
	heli.SetSound(!flagNoSound)

	// Create game instance
	game, err := registry.Create("heli")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
