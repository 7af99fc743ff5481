package loop

import (
	"math/rand"

	"github.com/vovakirdan/loop-arcade/internal/audio"
	"github.com/vovakirdan/loop-arcade/internal/games/loop/core"
)

// Durations (seconds) of the terminal stand-ins for the scene animations.
const (
	animDuration     = 0.25
	particleDuration = 0.6
	fadeDuration     = 0.5

	// shakeCellsPerUnit converts camera shake amplitude to terminal cells.
	shakeCellsPerUnit = 20
)

type particle struct {
	position  int
	spriteRef int
	ttl       float64
}

type animation struct {
	trigger string
	ttl     float64
}

// visuals implements core.Effects and keeps the presentation state
// the renderer reads. Sounds go straight to the audio player.
type visuals struct {
	player audio.Player
	rng    *rand.Rand

	loopIndex   int
	preview     [2]float64 // Loop delay, speed multiplier
	hasPreview  bool
	particles   []particle
	animations  map[string]animation
	shakeAmp    float64
	shakeDur    float64
	shakeLeft   float64
	shakeX      int
	shakeY      int
	prompt      bool
	fading      bool
	fadeLeft    float64
	lastSound   string
	soundsTotal int

	reloadRequested bool
}

func newVisuals(player audio.Player, rng *rand.Rand) *visuals {
	return &visuals{
		player:     player,
		rng:        rng,
		animations: make(map[string]animation),
	}
}

func (v *visuals) PlaySound(name string) {
	v.lastSound = name
	v.soundsTotal++
	v.player.Play(name)
}

func (v *visuals) SpawnHitParticle(position int, spriteRef int) {
	v.particles = append(v.particles, particle{position: position, spriteRef: spriteRef, ttl: particleDuration})
}

func (v *visuals) ShakeCamera(amplitude, duration float64) {
	v.shakeAmp = amplitude
	v.shakeDur = duration
	v.shakeLeft = duration
}

func (v *visuals) SetLoopVisualIndex(index int) {
	v.loopIndex = index
}

func (v *visuals) PlayAnimation(target, trigger string) {
	v.animations[target] = animation{trigger: trigger, ttl: animDuration}
}

func (v *visuals) ShowRestartPrompt() {
	v.prompt = true
}

func (v *visuals) RefreshConfigPreview(loopDelay, speedMultiplier float64) {
	v.preview = [2]float64{loopDelay, speedMultiplier}
	v.hasPreview = true
}

func (v *visuals) FadeOut() {
	v.fading = true
	v.fadeLeft = fadeDuration
}

func (v *visuals) ReloadScene() {
	v.reloadRequested = true
}

// update ages timed effects by dt seconds.
func (v *visuals) update(dt float64) {
	alive := v.particles[:0]
	for _, p := range v.particles {
		p.ttl -= dt
		if p.ttl > 0 {
			alive = append(alive, p)
		}
	}
	v.particles = alive

	for target, a := range v.animations {
		a.ttl -= dt
		if a.ttl <= 0 {
			delete(v.animations, target)
			continue
		}
		v.animations[target] = a
	}

	if v.fading && v.fadeLeft > 0 {
		v.fadeLeft -= dt
		if v.fadeLeft < 0 {
			v.fadeLeft = 0
		}
	}

	v.shakeX, v.shakeY = 0, 0
	if v.shakeLeft > 0 {
		v.shakeLeft -= dt
		if v.shakeLeft > 0 && v.shakeDur > 0 {
			// Magnitude decays linearly over the shake duration.
			cells := int(v.shakeAmp*shakeCellsPerUnit*v.shakeLeft/v.shakeDur + 0.5)
			if cells < 1 {
				cells = 1
			}
			v.shakeX = v.rng.Intn(2*cells+1) - cells
			v.shakeY = v.rng.Intn(3) - 1
		}
	}
}

// animating reports whether target is playing trigger.
func (v *visuals) animating(target, trigger string) bool {
	a, ok := v.animations[target]
	return ok && a.trigger == trigger
}

// fadeLevel is 0 before fading and 1 once fully faded.
func (v *visuals) fadeLevel() float64 {
	if !v.fading {
		return 0
	}
	return 1 - v.fadeLeft/fadeDuration
}

var _ core.Effects = (*visuals)(nil)
