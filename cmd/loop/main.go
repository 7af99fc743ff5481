// loop is a reflex-timing arcade game for the terminal.
//
// A marker sweeps around a ring of slots; press any key when it sits on the
// highlighted target. Every hit reverses the sweep and speeds it up.
//
// Usage:
//
//	loop                  - Play (same as "loop play")
//	loop play             - Play the game
//	loop list             - List registered games
//	loop scores           - Show high scores and recent runs
//	loop serve            - Host the game over SSH
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible targets
//	--db <path>           - Set database path (default: ~/.arcade/loop.db)
//	--config <path>       - Game config file (.yaml or .toml)
//	--difficulty <name>   - Slider preset: easy, normal, hard, fixed
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/loop-arcade/internal/games/loop"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "loop",
	Short: "Loop - a reflex-timing game for your terminal",
	Long: `Loop is a one-button timing game. A marker sweeps around a ring;
press any key when it lands on the target. Each hit reverses the sweep,
shortens the step interval and scores points scaled by the starting
settings. One miss ends the round.

Available commands:
  play     - Play the game (default)
  list     - Show registered games
  scores   - View high scores and recent runs
  serve    - Start SSH server for remote play

Examples:
  loop
  loop play --difficulty hard
  loop play --config ./configs/loop.example.toml
  loop scores --tui
  loop serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/loop.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Slider preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
