// Package theme holds the HUD palette and labels. It has no ebiten
// dependency so it tests headless.
package theme

import (
	"image/color"
	"math"

	"github.com/iburimskiy/hotcold/internal/hunt"
)

// HSV converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1)
func HSV(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255)
}

func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

var (
	Background = color.RGBA{R: 17, G: 24, B: 39, A: 255}
	Text       = color.RGBA{R: 243, G: 244, B: 246, A: 255}
	Ink        = color.RGBA{A: 255}
	Scope      = color.RGBA{R: 125, G: 211, B: 252, A: 255}
)

var tierColors = map[hunt.Tier]color.RGBA{
	hunt.TierInitial:  {R: 243, G: 244, B: 246, A: 255},
	hunt.TierNear:     {R: 239, G: 68, B: 68, A: 255},
	hunt.TierWarm:     {R: 249, G: 115, B: 22, A: 255},
	hunt.TierCool:     {R: 234, G: 179, B: 8, A: 255},
	hunt.TierFar:      {R: 59, G: 130, B: 246, A: 255},
	hunt.TierRevealed: {R: 255, G: 255, B: 255, A: 255},
}

func TierColor(t hunt.Tier) color.RGBA {
	if c, ok := tierColors[t]; ok {
		return c
	}
	return tierColors[hunt.TierInitial]
}

// TierLabel is the one-word hint shown in the HUD.
func TierLabel(t hunt.Tier) string {
	switch t {
	case hunt.TierNear:
		return "Burning!"
	case hunt.TierWarm:
		return "Warm"
	case hunt.TierCool:
		return "Cool"
	case hunt.TierFar:
		return "Freezing"
	case hunt.TierRevealed:
		return "Found!"
	}
	return ""
}

// LabelColor keeps text readable on the light initial and revealed fills.
func LabelColor(t hunt.Tier) color.RGBA {
	switch t {
	case hunt.TierInitial, hunt.TierRevealed:
		return Ink
	}
	return Text
}

// StartLabel names the start button: a fresh game, a restart mid-round,
// or another go once something has been found.
func StartLabel(state hunt.RoundState, score int) string {
	switch {
	case state == hunt.Active:
		return "Restart"
	case score == 0:
		return "Start Game"
	}
	return "Play Again"
}

func MuteLabel(muted bool) string {
	if muted {
		return "Unmute sound"
	}
	return "Mute sound"
}

// PulseAlpha fades the target marker between half and full opacity.
func PulseAlpha(phase float64) float64 {
	return 0.75 + 0.25*math.Cos(phase*math.Pi)
}
