package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/loop-arcade/internal/audio"
	"github.com/vovakirdan/loop-arcade/internal/core"
	"github.com/vovakirdan/loop-arcade/internal/games/loop"
	"github.com/vovakirdan/loop-arcade/internal/platform/tui"
	"github.com/vovakirdan/loop-arcade/internal/registry"
	"github.com/vovakirdan/loop-arcade/internal/storage"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Loop",
	Long: `Start the game on the settings screen.

Controls:
  Up/Down     - Select slider (loop delay / speed multiplier)
  Left/Right  - Adjust slider
  Enter/Space - Start
  Any key     - Stop the marker (while running)
  Enter       - Restart after a miss
  Ctrl+S      - Save a screenshot
  Q/Ctrl+C    - Quit

Difficulty presets set the starting sliders:
  easy   - 1.00 s delay, 10% speed-up
  normal - 0.50 s delay, 50% speed-up
  hard   - 0.25 s delay, 90% speed-up
  fixed  - default delay, speed slider locked at 0% (interval never shrinks)

Examples:
  loop play
  loop play --difficulty easy
  loop play --config ./my-loop.yaml --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		exitf("%v", err)
	}
	defer closeLog()

	gameCfg, err := loadGameConfig(flagConfig, flagDifficulty)
	if err != nil {
		exitf("%v", err)
	}

	player, err := audio.Open(0.6, flagMute || gameCfg.Effects.Mute)
	if err != nil {
		logger.Warn("audio unavailable, continuing without sound", "err", err)
	}
	defer player.Close()

	loop.SetConfig(gameCfg)
	loop.SetAudio(player)
	loop.SetLogger(logger)

	game, err := registry.Create("loop")
	if err != nil {
		exitf("creating game: %v", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	logger.Info("starting", "fps", cfg.TickRate, "positions", gameCfg.Wheel.Positions)
	runErr := tui.Run(game, store, cfg,
		tui.WithPlayer(os.Getenv("USER")),
		tui.WithLogger(logger),
	)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		exitf("running game: %v", runErr)
	}
}
