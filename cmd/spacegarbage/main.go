// spacegarbage is a terminal arcade game: steer a rocket through falling space
// debris while the calendar advances from 1957 and the plasma gun unlocks.
//
// Usage:
//
//	spacegarbage play        - Play in the terminal
//	spacegarbage snapshot    - Run headless and print the final screen
//	spacegarbage frames      - List the loaded art
//	spacegarbage timeline    - Show the year-by-year spawn table
//
// Global flags:
//
//	--config <path>       - Custom config YAML
//	--frames <dir>        - Art directory (default: embedded art)
//	--seed <value>        - RNG seed for reproducible games
//	--difficulty <name>   - easy, normal, hard or fixed
//	--log <path>          - Log file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagFrames     string
	flagSeed       int64
	flagDifficulty string
	flagLogPath    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spacegarbage",
	Short: "Space Garbage - dodge and shoot orbital debris in your terminal",
	Long: `Space Garbage is a terminal arcade game. Your rocket flies through a
field of falling space debris while history runs from the first Sputnik
onward. Debris gets denser every era; in 2020 you get a plasma gun.

Available commands:
  play      - Play the game
  snapshot  - Run without a terminal UI and print the final screen
  frames    - List the loaded art and its sizes
  timeline  - Show spawn rates and milestones per year

Examples:
  spacegarbage play
  spacegarbage play --difficulty hard
  spacegarbage snapshot --ticks 300 --seed 1
  spacegarbage timeline --config ./my-game.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagFrames, "frames", "", "Directory with rocket/, garbage/, explosion/ and game_over.txt")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(framesCmd)
	rootCmd.AddCommand(timelineCmd)
}
