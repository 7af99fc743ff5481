// Package loop provides the Loop reflex-timing game for the arcade.
// The timing engine lives in the core subpackage; this package adapts it
// to the platform: input actions, game time, effects and rendering.
package loop

import (
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/loop-arcade/internal/audio"
	"github.com/vovakirdan/loop-arcade/internal/config"
	platformcore "github.com/vovakirdan/loop-arcade/internal/core"
	"github.com/vovakirdan/loop-arcade/internal/games/loop/core"
	"github.com/vovakirdan/loop-arcade/internal/registry"
)

// Slider indices for the settings panel.
const (
	SliderLoopDelay = iota
	SliderSpeed
	sliderCount
)

// RunSummary describes one finished round.
type RunSummary struct {
	Score           float64
	Hits            int
	Positions       int
	LoopDelay       float64
	SpeedMultiplier float64
	Multiplier      float64
	FinalInterval   float64
}

// Options configures a Game instance.
type Options struct {
	Config config.LoopConfig
	Audio  audio.Player
	Logger *log.Logger
}

// Game implements the Loop game.
type Game struct {
	cfg    config.LoopConfig
	player audio.Player
	logger *log.Logger

	session *core.Session
	fx      *visuals
	rt      platformcore.RuntimeConfig
	rng     *rand.Rand

	ticks    uint64
	now      float64
	selected int // Focused slider while Idle
	restarts int

	lastRun  RunSummary
	finished bool
	best     int // Stored high score shown on the settings screen
}

// Package-level defaults used by the registry factory.
var (
	defaultConfig = config.DefaultLoopConfig()
	defaultAudio  audio.Player
	defaultLogger *log.Logger
)

// SetConfig sets the configuration used by games created through the registry.
func SetConfig(cfg config.LoopConfig) {
	defaultConfig = cfg
}

// SetAudio sets the sound player used by games created through the registry.
func SetAudio(p audio.Player) {
	defaultAudio = p
}

// SetLogger sets the logger used by games created through the registry.
func SetLogger(l *log.Logger) {
	defaultLogger = l
}

func init() {
	registry.Register("loop", func() registry.Game {
		return New()
	})
}

// New creates a game with the package-level defaults.
func New() *Game {
	return NewWith(Options{
		Config: defaultConfig,
		Audio:  defaultAudio,
		Logger: defaultLogger,
	})
}

// NewWith creates a game with explicit options. Nil audio and logger are silent.
func NewWith(opts Options) *Game {
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Game{
		cfg:    opts.Config,
		player: opts.Audio,
		logger: opts.Logger,
		rt:     platformcore.DefaultConfig(),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "loop"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Loop"
}

// Reset initializes the game and returns to the settings panel.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.rt = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.ticks = 0
	g.now = 0
	g.restarts = 0
	g.newSession()
}

// newSession builds a fresh Idle session with sliders at their defaults.
func (g *Game) newSession() {
	g.selected = SliderLoopDelay
	g.finished = false
	g.lastRun = RunSummary{}
	g.fx = newVisuals(g.player, g.rng)

	s, err := core.NewSession(g.sessionConfig(), g.fx,
		core.WithLogger(g.logger),
		core.WithSeed(g.rng.Int63()),
	)
	if err != nil {
		// Config is validated on load; fall back to stock parameters.
		g.logger.Error("invalid session config, using defaults", "err", err)
		s, _ = core.NewSession(core.DefaultConfig(), g.fx,
			core.WithLogger(g.logger),
			core.WithSeed(g.rng.Int63()),
		)
	}
	g.session = s
}

// sessionConfig maps the loaded config onto the engine's parameters.
func (g *Game) sessionConfig() core.Config {
	sl := g.cfg.Sliders
	return core.Config{
		Positions:      g.cfg.Wheel.Positions,
		PointsPerHit:   g.cfg.Scoring.PointsPerHit,
		ReloadDelay:    g.cfg.Effects.ReloadDelay,
		IntervalFloor:  g.cfg.Wheel.IntervalFloor,
		ShakeAmplitude: g.cfg.Effects.ShakeAmplitude,
		ShakeDuration:  g.cfg.Effects.ShakeDuration,
		LoopDelay: core.Slider{
			Value: sl.LoopDelay.Default,
			Min:   sl.LoopDelay.Min,
			Max:   sl.LoopDelay.Max,
		},
		SpeedMultiplier: core.Slider{
			Value: sl.SpeedMultiplier.Default,
			Min:   sl.SpeedMultiplier.Min,
			Max:   sl.SpeedMultiplier.Max,
		},
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.ticks++
	g.now = float64(g.ticks) * g.rt.TickSeconds()

	switch g.session.State() {
	case core.StateIdle:
		g.handleSettings(in)
	case core.StateRunning:
		if in.Any() {
			g.session.Press()
		}
	case core.StateEnded:
		if in.Has(platformcore.ActionConfirm) {
			g.session.Confirm()
		}
	}

	g.session.Tick(g.now)
	g.fx.update(g.rt.TickSeconds())

	if g.session.State() == core.StateEnded && !g.finished {
		g.finished = true
		g.lastRun = g.summary()
		g.logger.Info("round over", "score", g.lastRun.Score, "hits", g.lastRun.Hits)
	}

	if g.fx.reloadRequested {
		g.restarts++
		g.newSession()
	}

	return platformcore.StepResult{State: g.State()}
}

// handleSettings applies slider navigation and the start command.
func (g *Game) handleSettings(in platformcore.InputFrame) {
	if in.Has(platformcore.ActionUp) {
		g.selected = (g.selected + sliderCount - 1) % sliderCount
	}
	if in.Has(platformcore.ActionDown) {
		g.selected = (g.selected + 1) % sliderCount
	}

	var dir float64
	if in.Has(platformcore.ActionLeft) {
		dir--
	}
	if in.Has(platformcore.ActionRight) {
		dir++
	}
	if dir != 0 {
		loopDelay, speed := g.session.Sliders()
		if g.selected == SliderLoopDelay {
			loopDelay = loopDelay.Nudge(dir * g.cfg.Sliders.LoopDelay.Step)
		} else {
			speed = speed.Nudge(dir * g.cfg.Sliders.SpeedMultiplier.Step)
		}
		g.session.SetSliders(loopDelay, speed)
	}

	if in.Has(platformcore.ActionConfirm) || in.Has(platformcore.ActionPress) {
		loopDelay, speed := g.session.Sliders()
		if err := g.session.Start(loopDelay, speed); err != nil {
			g.logger.Warn("start rejected", "err", err)
		}
	}
}

func (g *Game) summary() RunSummary {
	snap := g.session.Snapshot()
	return RunSummary{
		Score:           snap.Score,
		Hits:            snap.Hits,
		Positions:       snap.Positions,
		LoopDelay:       snap.LoopDelay.Value,
		SpeedMultiplier: snap.SpeedMultiplier.Value,
		Multiplier:      snap.Difficulty.ScoreMultiplier,
		FinalInterval:   snap.Interval,
	}
}

// LastRun returns the summary of the round that just ended.
// ok is false while a round is in progress or before the first one.
func (g *Game) LastRun() (RunSummary, bool) {
	return g.lastRun, g.finished
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	if g.session == nil {
		return platformcore.GameState{}
	}
	st := g.session.State()
	return platformcore.GameState{
		Score:    int(math.Round(g.session.Score())),
		GameOver: st == core.StateEnded || st == core.StateRestartPending,
	}
}

// SetHighScore sets the best score shown on the settings screen.
func (g *Game) SetHighScore(score int) {
	g.best = score
}

// Session exposes the engine for tests and tools.
func (g *Game) Session() *core.Session {
	return g.session
}

// Restarts returns how many times the game reloaded after a loss.
func (g *Game) Restarts() int {
	return g.restarts
}
