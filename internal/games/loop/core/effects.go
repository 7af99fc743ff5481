package core

import "fmt"

// Sound names requested through Effects.PlaySound.
const (
	SoundSelect = "Select"
	SoundTick   = "Tick"
	SoundHit    = "Hit"
	SoundLoss   = "Loss"
)

// Animation targets and triggers requested through Effects.PlayAnimation.
const (
	AnimSettings   = "settings"
	AnimLoop       = "loop"
	AnimPoints     = "points"
	TriggerStart   = "StartGame"
	TriggerExpand  = "ExpandLoop"
	TriggerPopText = "ExpandText"
)

// Camera shake parameters used for both hits and misses.
const (
	ShakeAmplitude = 0.05
	ShakeDuration  = 0.5
)

// Effects receives presentation requests from the session.
// Calls are fire-and-forget: the session never inspects a result.
type Effects interface {
	PlaySound(name string)
	SpawnHitParticle(position int, spriteRef int)
	ShakeCamera(amplitude, duration float64)
	SetLoopVisualIndex(index int)
	PlayAnimation(target, trigger string)
	ShowRestartPrompt()
	RefreshConfigPreview(loopDelay, speedMultiplier float64)
	FadeOut()
	ReloadScene()
}

// NopEffects discards every request.
type NopEffects struct{}

func (NopEffects) PlaySound(string)                      {}
func (NopEffects) SpawnHitParticle(int, int)             {}
func (NopEffects) ShakeCamera(float64, float64)          {}
func (NopEffects) SetLoopVisualIndex(int)                {}
func (NopEffects) PlayAnimation(string, string)          {}
func (NopEffects) ShowRestartPrompt()                    {}
func (NopEffects) RefreshConfigPreview(float64, float64) {}
func (NopEffects) FadeOut()                              {}
func (NopEffects) ReloadScene()                          {}

// Effect is one recorded request, formatted as "Name(args)".
type Effect string

// Recorder keeps every request in order. Useful for tests and replays.
type Recorder struct {
	Effects []Effect
}

func (r *Recorder) add(format string, args ...any) {
	r.Effects = append(r.Effects, Effect(fmt.Sprintf(format, args...)))
}

func (r *Recorder) PlaySound(name string) { r.add("PlaySound(%s)", name) }
func (r *Recorder) SpawnHitParticle(position, spriteRef int) {
	r.add("SpawnHitParticle(%d,%d)", position, spriteRef)
}
func (r *Recorder) ShakeCamera(amplitude, duration float64) {
	r.add("ShakeCamera(%g,%g)", amplitude, duration)
}
func (r *Recorder) SetLoopVisualIndex(index int) { r.add("SetLoopVisualIndex(%d)", index) }
func (r *Recorder) PlayAnimation(target, trigger string) {
	r.add("PlayAnimation(%s,%s)", target, trigger)
}
func (r *Recorder) ShowRestartPrompt() { r.add("ShowRestartPrompt()") }
func (r *Recorder) RefreshConfigPreview(loopDelay, speedMultiplier float64) {
	r.add("RefreshConfigPreview(%g,%g)", loopDelay, speedMultiplier)
}
func (r *Recorder) FadeOut()     { r.add("FadeOut()") }
func (r *Recorder) ReloadScene() { r.add("ReloadScene()") }

// Has reports whether the effect was recorded at least once.
func (r *Recorder) Has(e Effect) bool {
	return r.Count(e) > 0
}

// Count returns how many times the effect was recorded.
func (r *Recorder) Count(e Effect) int {
	n := 0
	for _, got := range r.Effects {
		if got == e {
			n++
		}
	}
	return n
}

// Reset drops all recorded effects.
func (r *Recorder) Reset() {
	r.Effects = r.Effects[:0]
}
