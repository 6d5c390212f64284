// heli is a terminal remake of a vertically scrolling helicopter shooter.
//
// Usage:
//
//	heli play                - Fly a sortie
//	heli levels              - List bundled levels
//	heli serve               - Start SSH server for remote play
//	heli scores              - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 40)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.heli/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/heli-strike/internal/game/heli"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "heli",
	Short: "Heli Strike - a scrolling helicopter shooter in your terminal",
	Long: `Heli Strike is a terminal remake of the classic vertically scrolling
helicopter shooter. Climb the river canyon, dodge turret fire and
enemy helicopters, and reach the top of the map to win.

Available commands:
  play     - Fly a sortie
  levels   - List bundled levels
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  heli play
  heli play --level 1 --difficulty hard
  heli serve --ssh :2222
  heli scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 40, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.heli/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
