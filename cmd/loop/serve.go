package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/loop-arcade/internal/audio"
	"github.com/vovakirdan/loop-arcade/internal/games/loop"
	"github.com/vovakirdan/loop-arcade/internal/platform/tui"
	"github.com/vovakirdan/loop-arcade/internal/registry"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Loop SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own independent game. Scores are stored
per-server and tagged with the SSH user name. Sound is disabled for
remote sessions.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  loop serve                           # Listen on :23234 with auto-generated key
  loop serve --ssh :2222               # Listen on port 2222
  loop serve --host-key ./my_host_key  # Use specific host key
  loop serve --difficulty hard         # Start every session on hard

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		exitf("%v", err)
	}
	defer closeLog()

	gameCfg, err := loadGameConfig(flagConfig, flagDifficulty)
	if err != nil {
		exitf("%v", err)
	}

	// Remote sessions have no local speaker.
	loop.SetConfig(gameCfg)
	loop.SetAudio(audio.Nop{})
	loop.SetLogger(logger)

	factory, err := registry.FactoryFor("loop")
	if err != nil {
		exitf("%v", err)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		Logger:      logger,
		NewGame:     tui.GameFactory(factory),
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		exitf("creating server: %v", err)
	}

	fmt.Printf("Starting Loop SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(cmd.Context()); err != nil {
		exitf("server: %v", err)
	}
}
