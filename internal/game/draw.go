package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/hotcold/internal/config"
	"github.com/iburimskiy/hotcold/internal/game/theme"
	"github.com/iburimskiy/hotcold/internal/hunt"
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(theme.Background)

	g.drawPlayArea(screen)
	g.drawHeader(screen)

	if g.hunt.State() == hunt.Found {
		g.drawCelebration(screen)
	}
}

func (g *Game) drawPlayArea(screen *ebiten.Image) {
	s := g.surface
	vector.DrawFilledRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), theme.TierColor(g.hunt.Tier()), false)
	vector.StrokeRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), 2, color.RGBA{R: 148, G: 163, B: 184, A: 255}, false)

	tier := g.hunt.Tier()
	switch g.hunt.State() {
	case hunt.Idle:
		cx, cy := s.X+s.W/2, s.Y+s.H/2
		g.drawCentered(screen, "Move your cursor to find the hidden treasure!", cx, cy-9, theme.LabelColor(tier))
		g.drawCentered(screen, "Music gets higher and louder as you get closer!", cx, cy+9, theme.LabelColor(tier))
	case hunt.Active:
		if label := theme.TierLabel(tier); label != "" {
			g.drawCentered(screen, label, s.X+s.W/2, s.Y+24, theme.LabelColor(tier))
		}
		g.drawTargetMarker(screen)
	}
}

// drawTargetMarker is the pulsing crosshair in the play area's top right
// corner that says a treasure is hidden.
func (g *Game) drawTargetMarker(screen *ebiten.Image) {
	s := g.surface
	cx := float32(s.X + s.W - config.MarkerInset)
	cy := float32(s.Y + config.MarkerInset)
	clr := color.NRGBA{R: 255, G: 255, B: 255, A: uint8(255 * theme.PulseAlpha(g.colorPhase))}

	r := float32(config.MarkerRadius)
	vector.StrokeCircle(screen, cx, cy, r, 2, clr, true)
	vector.StrokeCircle(screen, cx, cy, r*0.6, 2, clr, true)
	vector.DrawFilledCircle(screen, cx, cy, r*0.2, clr, true)
}

func (g *Game) drawHeader(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(g.width), config.HeaderHeight, color.RGBA{A: 128}, false)
	g.drawText(screen, g.settings.Title, config.Margin, float64(config.HeaderHeight)/2-6, theme.Text)

	g.drawButton(screen, &g.startBtn, theme.StartLabel(g.hunt.State(), g.hunt.Score()))
	g.drawButton(screen, &g.muteBtn, theme.MuteLabel(g.hunt.Muted()))
	g.drawButton(screen, &g.fanfareBtn, "Fanfare")

	scopeX := float64(g.width - config.Margin - config.ScopeWidth)
	score := fmt.Sprintf("Score: %d", g.hunt.Score())
	w, _ := text.Measure(score, g.face, 0)
	g.drawText(screen, score, scopeX-w-float64(config.ButtonGap), float64(config.HeaderHeight)/2-6, theme.Text)

	g.drawScope(screen, scopeX)

	status := "Esc/Q: quit  M: mute  F: fanfare"
	if g.driver != nil && g.driver.Silent() {
		status = "No audio device - playing without sound"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, config.Margin, g.height-config.Margin+1)
}

func (g *Game) drawButton(screen *ebiten.Image, b *button, label string) {
	var bgColor color.Color
	if b.pressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	} else if b.hovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	} else {
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255} // Normal
	}

	vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), bgColor, false)

	borderColor := color.RGBA{R: 150, G: 170, B: 200, A: 255}
	vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 2, borderColor, false)

	g.drawCentered(screen, label, float64(b.x)+float64(b.w)/2, float64(b.y)+float64(b.h)/2, theme.Text)
}

// drawScope plots the most recent bank output as a line strip.
func (g *Game) drawScope(screen *ebiten.Image, x float64) {
	h := float64(config.ButtonHeight)
	y := (float64(config.HeaderHeight) - h) / 2
	vector.StrokeRect(screen, float32(x), float32(y), config.ScopeWidth, float32(h), 1, color.RGBA{R: 71, G: 85, B: 105, A: 255}, false)

	if g.driver == nil {
		return
	}
	samples := g.driver.Scope(config.ScopeSamples)
	if len(samples) < 2 {
		return
	}

	mid := y + h/2
	step := float64(config.ScopeWidth) / float64(len(samples)-1)
	// four voices at full gain stay inside +-0.4
	scale := h / 2 / 0.4
	prevX, prevY := x, mid-clampScope(samples[0])*scale
	for i := 1; i < len(samples); i++ {
		px := x + float64(i)*step
		py := mid - clampScope(samples[i])*scale
		vector.StrokeLine(screen, float32(prevX), float32(prevY), float32(px), float32(py), 1, theme.Scope, false)
		prevX, prevY = px, py
	}
}

func clampScope(v float64) float64 {
	return theme.Clamp01(v/0.8+0.5)*0.8 - 0.4
}

// drawCelebration puts the glyph and message over the target.
func (g *Game) drawCelebration(screen *ebiten.Image) {
	c := g.hunt.Celebration()
	x, y := g.surface.Pixel(g.hunt.Target())

	hue := g.colorPhase * 360
	r, gr, b := theme.HSV(hue, 0.6, 1)
	pulse := config.PulseRadius * (1 + 0.15*math.Sin(g.colorPhase*20))
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(pulse), color.RGBA{R: r, G: gr, B: b, A: 220}, true)

	g.drawCentered(screen, c.Glyph, x, y, theme.Background)
	g.drawCentered(screen, c.Message, x, y+pulse+12, theme.Ink)
}

func (g *Game) drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, g.face, op)
}

func (g *Game) drawCentered(screen *ebiten.Image, s string, cx, cy float64, clr color.Color) {
	w, h := text.Measure(s, g.face, 0)
	g.drawText(screen, s, cx-w/2, cy-h/2, clr)
}
