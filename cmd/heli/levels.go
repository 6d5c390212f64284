package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/heli-strike/internal/level"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List bundled levels",
	Long:  `Shows the levels shipped with the game and their sizes.`,
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	levels, err := level.Builtin()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading bundled levels: %v\n", err)
		os.Exit(1)
	}

	if len(levels) == 0 {
		fmt.Println("No bundled levels.")
		return
	}

	fmt.Println("Bundled levels:")
	fmt.Println()

	// Calculate name column width
	maxNameLen := 4 // "Name" header
	for _, l := range levels {
		if len(l.Name) > maxNameLen {
			maxNameLen = len(l.Name)
		}
	}

	// Print header
	fmt.Printf("  %-5s  %-*s  %s\n", "Index", maxNameLen, "Name", "Size")
	fmt.Printf("  %-5s  %-*s  %s\n", "-----", maxNameLen, "----", "----")

	// Print levels
	for i, l := range levels {
		fmt.Printf("  %-5d  %-*s  %dx%d tiles\n", i, maxNameLen, l.Name, l.Width, l.Height)
	}

	fmt.Println()
	fmt.Println("Run 'heli play --level <index>' to fly one.")
}
