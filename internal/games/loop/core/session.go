package core

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"
)

// ErrInvalidTransition is returned when an operation is not allowed in the current state.
var ErrInvalidTransition = errors.New("loop: invalid state transition")

// State is the session lifecycle stage.
type State int

const (
	StateIdle           State = iota // Configuring sliders, waiting for start
	StateRunning                     // Wheel spinning, presses are judged
	StateEnded                       // Round lost, waiting for confirm
	StateRestartPending              // Faded out, reload scheduled; terminal
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StateEnded:
		return "Ended"
	case StateRestartPending:
		return "RestartPending"
	default:
		return "Unknown"
	}
}

// Event is an input to the state machine.
type Event int

const (
	EventStart Event = iota
	EventHit
	EventMiss
	EventConfirm
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventStart:
		return "Start"
	case EventHit:
		return "Hit"
	case EventMiss:
		return "Miss"
	case EventConfirm:
		return "Confirm"
	default:
		return "Unknown"
	}
}

type transitionKey struct {
	from  State
	event Event
}

// transitions lists every legal move. Anything absent is rejected.
var transitions = map[transitionKey]State{
	{StateIdle, EventStart}:    StateRunning,
	{StateRunning, EventHit}:   StateRunning,
	{StateRunning, EventMiss}:  StateEnded,
	{StateEnded, EventConfirm}: StateRestartPending,
}

// CanTransition reports whether event is accepted in state.
func CanTransition(from State, event Event) bool {
	_, ok := transitions[transitionKey{from, event}]
	return ok
}

// Outcome is the result of judging a press.
type Outcome int

const (
	OutcomeIgnored Outcome = iota // Press arrived outside Running
	OutcomeHit
	OutcomeMiss
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeHit:
		return "Hit"
	case OutcomeMiss:
		return "Miss"
	default:
		return "Ignored"
	}
}

// Config holds the fixed parameters of a session.
type Config struct {
	Positions       int     // Slots on the ring
	PointsPerHit    float64 // Base award per hit
	ReloadDelay     float64 // Seconds between fade out and reload
	IntervalFloor   float64 // Shrink floor; zero means IntervalFloor
	ShakeAmplitude  float64 // Zero means ShakeAmplitude
	ShakeDuration   float64 // Seconds; zero means ShakeDuration
	LoopDelay       Slider  // Initial preview value and range for the interval
	SpeedMultiplier Slider  // Initial preview value and range for the decay
}

// DefaultConfig returns the stock session parameters.
func DefaultConfig() Config {
	return Config{
		Positions:       8,
		PointsPerHit:    10,
		ReloadDelay:     1.0,
		IntervalFloor:   IntervalFloor,
		ShakeAmplitude:  ShakeAmplitude,
		ShakeDuration:   ShakeDuration,
		LoopDelay:       Slider{Value: 0.5, Min: 0.1, Max: 1.0},
		SpeedMultiplier: Slider{Value: 0.5, Min: 0.0, Max: 0.99},
	}
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for transition traces.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSeed seeds the target picker.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.picker = NewTargetPicker(seed)
	}
}

// WithPicker replaces the target picker.
func WithPicker(p *TargetPicker) Option {
	return func(s *Session) {
		if p != nil {
			s.picker = p
		}
	}
}

// Session is the top-level state machine of one play-through.
// It is driven from a single goroutine: Tick once per frame, plus
// Press and Confirm as input arrives.
type Session struct {
	cfg     Config
	effects Effects
	logger  *log.Logger
	picker  *TargetPicker

	state State
	now   float64

	loopDelay       Slider
	speedMultiplier Slider

	difficulty Difficulty
	wheel      *Wheel
	scorer     *Scorer
	target     int

	reload   Timer
	reloaded bool
}

// NewSession creates an Idle session. Effects may be nil.
func NewSession(cfg Config, fx Effects, opts ...Option) (*Session, error) {
	if cfg.Positions <= 0 {
		return nil, fmt.Errorf("new session: %w (got %d)", ErrInvalidPositions, cfg.Positions)
	}
	if cfg.PointsPerHit < 0 || math.IsNaN(cfg.PointsPerHit) {
		return nil, fmt.Errorf("new session: %w (got %v)", ErrInvalidPoints, cfg.PointsPerHit)
	}
	if fx == nil {
		fx = NopEffects{}
	}

	s := &Session{
		cfg:             cfg,
		effects:         fx,
		logger:          log.New(io.Discard),
		picker:          NewTargetPicker(0),
		state:           StateIdle,
		loopDelay:       cfg.LoopDelay.Clamp(),
		speedMultiplier: cfg.SpeedMultiplier.Clamp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// fire applies event through the transition table.
func (s *Session) fire(event Event) bool {
	next, ok := transitions[transitionKey{s.state, event}]
	if !ok {
		return false
	}
	if next != s.state {
		s.logger.Debug("state change", "from", s.state, "to", next, "event", event, "now", s.now)
	}
	s.state = next
	return true
}

// SetSliders updates the preview values. Ignored once the game has started.
func (s *Session) SetSliders(loopDelay, speedMultiplier Slider) {
	if s.state != StateIdle {
		return
	}
	s.loopDelay = loopDelay.Clamp()
	s.speedMultiplier = speedMultiplier.Clamp()
}

// Sliders returns the current preview values.
func (s *Session) Sliders() (loopDelay, speedMultiplier Slider) {
	return s.loopDelay, s.speedMultiplier
}

// Start resolves the difficulty from the sliders and begins the first round.
// It is only valid while Idle.
func (s *Session) Start(loopDelay, speedMultiplier Slider) error {
	if !CanTransition(s.state, EventStart) {
		return fmt.Errorf("start from %s: %w", s.state, ErrInvalidTransition)
	}

	loopDelay = loopDelay.Clamp()
	speedMultiplier = speedMultiplier.Clamp()
	difficulty := NewDifficulty(loopDelay, speedMultiplier)

	wheel, err := NewWheel(s.cfg.Positions, difficulty.InitialInterval)
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}
	wheel.SetFloor(s.cfg.IntervalFloor)

	s.loopDelay = loopDelay
	s.speedMultiplier = speedMultiplier
	s.difficulty = difficulty
	s.wheel = wheel
	s.scorer = NewScorer(s.cfg.PointsPerHit)
	s.fire(EventStart)

	s.effects.PlaySound(SoundSelect)
	s.effects.PlayAnimation(AnimSettings, TriggerStart)
	s.effects.SetLoopVisualIndex(s.wheel.Index())
	s.newRound()

	s.logger.Info("game started",
		"interval", difficulty.InitialInterval,
		"decay", difficulty.DecayFraction,
		"multiplier", difficulty.ScoreMultiplier,
	)
	return nil
}

// newRound draws the next target.
func (s *Session) newRound() {
	s.target = s.picker.Pick(s.cfg.Positions)
}

// Tick advances game time to now (seconds).
func (s *Session) Tick(now float64) {
	s.now = now

	switch s.state {
	case StateIdle:
		s.effects.RefreshConfigPreview(s.loopDelay.Value, s.speedMultiplier.Value)

	case StateRunning:
		if s.wheel.Advance(now) {
			s.effects.SetLoopVisualIndex(s.wheel.Index())
			s.effects.PlaySound(SoundTick)
		}

	case StateRestartPending:
		if s.reload.Poll(now) {
			s.reloaded = true
			s.logger.Debug("reload", "now", now)
			s.effects.ReloadScene()
		}
	}
}

// Press judges a discrete input against the marker.
// Outside Running it is ignored.
func (s *Session) Press() Outcome {
	if s.state != StateRunning {
		return OutcomeIgnored
	}

	index := s.wheel.Index()
	if index != s.target {
		s.fire(EventMiss)
		s.logger.Debug("miss", "index", index, "target", s.target, "score", s.scorer.Total())
		s.effects.PlaySound(SoundLoss)
		s.shake()
		s.effects.ShowRestartPrompt()
		return OutcomeMiss
	}

	s.fire(EventHit)
	s.effects.SpawnHitParticle(index, s.target)
	s.newRound()
	s.wheel.Reverse()
	s.wheel.Shrink(s.difficulty.DecayFraction)
	gained := s.scorer.Award(s.difficulty.ScoreMultiplier)
	s.logger.Debug("hit", "index", index, "gained", gained, "interval", s.wheel.Interval())

	s.effects.PlayAnimation(AnimLoop, TriggerExpand)
	s.effects.PlayAnimation(AnimPoints, TriggerPopText)
	s.shake()
	s.effects.PlaySound(SoundHit)
	return OutcomeHit
}

func (s *Session) shake() {
	amp, dur := s.cfg.ShakeAmplitude, s.cfg.ShakeDuration
	if amp <= 0 {
		amp = ShakeAmplitude
	}
	if dur <= 0 {
		dur = ShakeDuration
	}
	s.effects.ShakeCamera(amp, dur)
}

// Confirm accepts the restart request after a loss.
// Only the first confirm in Ended has any effect.
func (s *Session) Confirm() bool {
	if !s.fire(EventConfirm) {
		return false
	}
	s.effects.FadeOut()
	s.reload.Schedule(s.now + s.cfg.ReloadDelay)
	return true
}

// State returns the current lifecycle stage.
func (s *Session) State() State { return s.state }

// Reloaded reports whether the reload effect has been emitted.
func (s *Session) Reloaded() bool { return s.reloaded }

// ReloadTimer exposes the pending reload timer.
func (s *Session) ReloadTimer() *Timer { return &s.reload }

// Difficulty returns the resolved difficulty. Zero before Start.
func (s *Session) Difficulty() Difficulty { return s.difficulty }

// Target returns the slot the player has to hit.
func (s *Session) Target() int { return s.target }

// Positions returns the ring size.
func (s *Session) Positions() int { return s.cfg.Positions }

// Wheel returns the timing wheel, nil before Start.
func (s *Session) Wheel() *Wheel { return s.wheel }

// Score returns the accumulated points.
func (s *Session) Score() float64 {
	if s.scorer == nil {
		return 0
	}
	return s.scorer.Total()
}

// Hits returns the number of successful presses.
func (s *Session) Hits() int {
	if s.scorer == nil {
		return 0
	}
	return s.scorer.Hits()
}

// Snapshot is a read-only view of the session for rendering.
type Snapshot struct {
	State           State
	Positions       int
	Index           int
	Target          int
	Forward         bool
	Interval        float64
	Score           float64
	Hits            int
	LoopDelay       Slider
	SpeedMultiplier Slider
	Difficulty      Difficulty
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:           s.state,
		Positions:       s.cfg.Positions,
		Target:          s.target,
		Forward:         true,
		Score:           s.Score(),
		Hits:            s.Hits(),
		LoopDelay:       s.loopDelay,
		SpeedMultiplier: s.speedMultiplier,
		Difficulty:      s.difficulty,
	}
	if s.wheel != nil {
		snap.Index = s.wheel.Index()
		snap.Forward = s.wheel.Forward()
		snap.Interval = s.wheel.Interval()
	}
	return snap
}
