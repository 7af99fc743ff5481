package loop

import (
	"fmt"
	"math"

	platformcore "github.com/vovakirdan/loop-arcade/internal/core"
	"github.com/vovakirdan/loop-arcade/internal/games/loop/core"
)

// Glyphs for the ring.
const (
	SlotChar       = '○'
	MarkerChar     = '●'
	TargetChar     = '◆'
	MarkerOnTarget = '◉'
)

// Minimum playable terminal size. The width fits the running HUD.
const (
	minWidth  = 50
	minHeight = 14
)

// Settings panel size, border included.
const (
	panelWidth  = 28
	panelHeight = 4
)

// hudTitleWidth is the "LOOP" title plus margins.
const hudTitleWidth = 7

var sparkGlyphs = []rune{'✦', '*', '+', '✧'}

// Render draws the current game state.
func (g *Game) Render(dst *platformcore.Screen) {
	w, h := dst.Width(), dst.Height()
	if w < minWidth || h < minHeight {
		dst.DrawTextCenteredColored(h/2, "Terminal too small", platformcore.ColorRed)
		return
	}

	snap := g.session.Snapshot()
	g.drawHUD(dst, snap)
	dst.DrawHLine(0, 1, w, '─', platformcore.ColorDim)

	arena := platformcore.NewRect(0, 2, w, h-2)
	cx, cy := arena.Center()
	ry := platformcore.Min(h/2-3, 8)
	rx := ry * 2
	if g.fx.animating(core.AnimLoop, core.TriggerExpand) {
		rx += 2
		ry++
	}
	points := platformcore.RingPoints(cx, cy, rx, ry, snap.Positions)

	if snap.State == core.StateIdle {
		g.drawIdleRing(dst, points)
		g.drawSettings(dst, snap, cy)
	} else {
		g.drawRing(dst, points, snap)
		g.drawParticles(dst, points, cx, cy)
		g.drawCenter(dst, snap, cx, cy)
	}

	if g.fx.prompt {
		dst.DrawTextCenteredColored(h-2, "MISS!  Press Enter to restart", platformcore.ColorRed)
	}

	dst.Shift(g.fx.shakeX, g.fx.shakeY)

	if level := g.fx.fadeLevel(); level > 0 {
		fadeScreen(dst, level)
	}
}

func (g *Game) drawHUD(dst *platformcore.Screen, snap core.Snapshot) {
	dst.DrawTextColored(1, 0, "LOOP", platformcore.ColorCyan)
	if snap.State == core.StateIdle {
		if g.best > 0 {
			best := fmt.Sprintf("Best: %d", g.best)
			dst.DrawTextColored(dst.Width()-len(best)-1, 0, best, platformcore.ColorYellow)
		}
		return
	}
	hud := fmt.Sprintf("Score: %.0f  Hits: %d  Interval: %.2fs  x%.2f",
		snap.Score, snap.Hits, snap.Interval, snap.Difficulty.ScoreMultiplier)
	if len(hud)+hudTitleWidth > dst.Width() {
		hud = fmt.Sprintf("%.0f pts  %d hits  %.2fs", snap.Score, snap.Hits, snap.Interval)
	}
	x := platformcore.Max(hudTitleWidth, dst.Width()-len(hud)-1)
	dst.DrawTextColored(x, 0, hud, platformcore.ColorBrightWhite)
}

func (g *Game) drawIdleRing(dst *platformcore.Screen, points []platformcore.Point) {
	for _, p := range points {
		dst.SetColored(p.X, p.Y, SlotChar, platformcore.ColorGray)
	}
}

func (g *Game) drawRing(dst *platformcore.Screen, points []platformcore.Point, snap core.Snapshot) {
	for i, p := range points {
		switch {
		case i == g.fx.loopIndex && i == snap.Target:
			dst.SetColored(p.X, p.Y, MarkerOnTarget, platformcore.ColorGreen)
		case i == g.fx.loopIndex:
			dst.SetColored(p.X, p.Y, MarkerChar, platformcore.ColorCyan)
		case i == snap.Target:
			dst.SetColored(p.X, p.Y, TargetChar, platformcore.ColorYellow)
		default:
			dst.SetColored(p.X, p.Y, SlotChar, platformcore.ColorGray)
		}
	}
}

// drawParticles places sparks just outside the slot that was hit.
func (g *Game) drawParticles(dst *platformcore.Screen, points []platformcore.Point, cx, cy int) {
	for _, pt := range g.fx.particles {
		if pt.position < 0 || pt.position >= len(points) {
			continue
		}
		p := points[pt.position]
		age := 1 - pt.ttl/particleDuration
		spread := 1 + int(age*2)
		x := p.X + sign(p.X-cx)*spread*2
		y := p.Y + sign(p.Y-cy)*spread
		glyph := sparkGlyphs[pt.spriteRef%len(sparkGlyphs)]
		dst.SetColored(x, y, glyph, platformcore.ColorMagenta)
	}
}

func (g *Game) drawCenter(dst *platformcore.Screen, snap core.Snapshot, cx, cy int) {
	score := fmt.Sprintf("%.0f", snap.Score)
	color := platformcore.ColorBrightWhite
	if g.fx.animating(core.AnimPoints, core.TriggerPopText) {
		score = "« " + score + " »"
		color = platformcore.ColorYellow
	}
	dst.DrawTextColored(cx-len([]rune(score))/2, cy, score, color)

	arrow := "cw"
	if !snap.Forward {
		arrow = "ccw"
	}
	dst.DrawTextColored(cx-len(arrow)/2, cy+1, arrow, platformcore.ColorGray)
}

func (g *Game) drawSettings(dst *platformcore.Screen, snap core.Snapshot, cy int) {
	loopDelay, speed := snap.LoopDelay.Value, snap.SpeedMultiplier.Value
	if g.fx.hasPreview {
		loopDelay, speed = g.fx.preview[0], g.fx.preview[1]
	}

	panel := platformcore.NewRect(dst.Width()/2-panelWidth/2, cy-panelHeight/2, panelWidth, panelHeight)
	dst.DrawRect(panel, ' ')
	dst.DrawBox(panel, platformcore.ColorGray)
	dst.DrawTextColored(panel.X+2, panel.Y, " Settings ", platformcore.ColorGray)

	lines := [sliderCount]string{
		sliderLine("Loop delay", FormatLoopDelay(loopDelay), snap.LoopDelay),
		sliderLine("Speed", FormatSpeed(speed), snap.SpeedMultiplier),
	}
	for i, line := range lines {
		prefix, color := "  ", platformcore.ColorDefault
		if i == g.selected {
			prefix, color = "> ", platformcore.ColorCyan
		}
		dst.DrawTextColored(panel.X+1, panel.Y+1+i, prefix+line, color)
	}

	dst.DrawTextCenteredColored(dst.Height()-2, "Enter: start  Arrows: adjust  Q: quit", platformcore.ColorGray)
}

// sliderLine formats one settings row. A slider with no range is shown locked.
func sliderLine(label, value string, s core.Slider) string {
	if s.Min == s.Max {
		return fmt.Sprintf("%-10s  %s (fixed)", label, value)
	}
	return fmt.Sprintf("%-10s  < %s >", label, value)
}

// FormatLoopDelay renders the loop delay preview, e.g. "0.50".
func FormatLoopDelay(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// FormatSpeed renders the speed multiplier preview as a percentage, e.g. "50%".
func FormatSpeed(v float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(v*100)))
}

// fadeScreen darkens every cell; past halfway the content disappears.
func fadeScreen(dst *platformcore.Screen, level float64) {
	color := platformcore.ColorGray
	if level >= 0.5 {
		color = platformcore.ColorDim
	}
	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			cell := dst.GetCell(x, y)
			r := cell.Rune
			if level >= 1 {
				r = ' '
			}
			dst.SetColored(x, y, r, color)
		}
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
