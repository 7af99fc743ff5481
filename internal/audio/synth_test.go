package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion and returns the sample count.
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			for c := 0; c < 2; c++ {
				v := buf[j][c]
				if math.IsNaN(v) || v < -1.0001 || v > 1.0001 {
					t.Fatalf("sample %d out of range: %v", total+j, v)
				}
			}
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("streamer never finished")
	return total
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 100*time.Millisecond, wave, rate)
		if got := drain(t, osc); got != rate.N(100*time.Millisecond) {
			t.Errorf("wave %d streamed %d samples, expected %d", wave, got, rate.N(100*time.Millisecond))
		}
		if osc.Err() != nil {
			t.Errorf("wave %d: unexpected error %v", wave, osc.Err())
		}
	}
}

func TestEnvelopeRamps(t *testing.T) {
	rate := beep.SampleRate(1000)
	d := 100 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, rate), d, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, 100)
	n, _ := env.Stream(buf)
	if n != 100 {
		t.Fatalf("streamed %d samples, expected 100", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %v, expected 0 at attack start", buf[0][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("sustain sample = %v, expected 1", buf[50][0])
	}
	if buf[99][0] >= buf[90][0] {
		t.Errorf("release should fade: %v >= %v", buf[99][0], buf[90][0])
	}
}

func TestSynthKnownSounds(t *testing.T) {
	rate := DefaultSampleRate
	for _, name := range []string{SoundSelect, SoundTick, SoundHit, SoundLoss} {
		s := Synth(name, rate, 0.8)
		if s == nil {
			t.Fatalf("Synth(%q) returned nil", name)
		}
		if n := drain(t, s); n == 0 {
			t.Errorf("Synth(%q) produced no samples", name)
		}
	}
}

func TestSynthUnknownSound(t *testing.T) {
	if s := Synth("Fanfare", DefaultSampleRate, 1); s != nil {
		t.Error("unknown sound should return nil")
	}
}

func TestSynthSilentVolume(t *testing.T) {
	s := Synth(SoundHit, DefaultSampleRate, 0)
	buf := make([][2]float64, 256)
	n, _ := s.Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] != 0 || buf[i][1] != 0 {
			t.Fatalf("sample %d = %v, expected silence", i, buf[i])
		}
	}
}

func TestTickShorterThanHit(t *testing.T) {
	tick := drain(t, Synth(SoundTick, DefaultSampleRate, 1))
	hit := drain(t, Synth(SoundHit, DefaultSampleRate, 1))
	if tick >= hit {
		t.Errorf("tick (%d samples) should be shorter than hit (%d)", tick, hit)
	}
}
