// Package audio synthesises and plays the game's sound effects.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// DefaultSampleRate is used for speaker output and synthesis.
const DefaultSampleRate = beep.SampleRate(44100)

// Player plays named sound effects without blocking.
type Player interface {
	Play(name string)
	Close()
}

// Nop is a Player that stays silent. Used for SSH sessions and tests.
type Nop struct{}

func (Nop) Play(string) {}
func (Nop) Close()      {}

// Speaker plays sounds on the local audio device through a beep mixer.
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	muted       bool
	initialized bool
}

// NewSpeaker creates an uninitialised speaker player.
func NewSpeaker(volume float64) *Speaker {
	return &Speaker{
		mixer:  &beep.Mixer{},
		rate:   DefaultSampleRate,
		volume: volume,
	}
}

// Init opens the audio device. Calling it again is a no-op.
func (s *Speaker) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(s.rate, s.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// SetMuted toggles output. Sounds requested while muted are dropped.
func (s *Speaker) SetMuted(muted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.muted = muted
}

// Muted reports whether output is suppressed.
func (s *Speaker) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

// Play queues a sound on the mixer. Unknown names are ignored.
func (s *Speaker) Play(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.muted {
		return
	}
	streamer := Synth(name, s.rate, s.volume)
	if streamer == nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
}

// Close drops queued sounds and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.initialized = false
}

// Open returns a Speaker when the device can be opened and a Nop otherwise,
// along with the init error so callers can log it.
func Open(volume float64, muted bool) (Player, error) {
	if muted {
		return Nop{}, nil
	}
	s := NewSpeaker(volume)
	if err := s.Init(); err != nil {
		return Nop{}, err
	}
	return s, nil
}
