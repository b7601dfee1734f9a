// Package game is the ebiten front end: it turns pointer motion into hunt
// samples and paints the round state.
package game

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/ncruces/zenity"
	"github.com/rs/zerolog"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/hotcold/internal/audio"
	"github.com/iburimskiy/hotcold/internal/config"
	"github.com/iburimskiy/hotcold/internal/hunt"
)

var _ hunt.Feedback = (*audio.Driver)(nil)

type button struct {
	x, y, w, h int
	hovered    bool
	pressed    bool
}

func (b *button) contains(x, y int) bool {
	return x >= b.x && x <= b.x+b.w && y >= b.y && y <= b.y+b.h
}

// clicked tracks press/release over the button and reports a full click.
func (b *button) clicked(mouseX, mouseY int) bool {
	b.hovered = b.contains(mouseX, mouseY)
	if b.hovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		b.pressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		click := b.pressed && b.hovered
		b.pressed = false
		return click
	}
	return false
}

// Game implements ebiten.Game on top of a hunt.Game.
type Game struct {
	hunt     *hunt.Game
	driver   *audio.Driver
	settings config.Settings
	logger   zerolog.Logger

	width, height int
	surface       hunt.Surface
	tracker       *hunt.Tracker
	face          text.Face

	startBtn   button
	muteBtn    button
	fanfareBtn button

	colorPhase float64
	lastErr    error
}

// New builds the front end. driver may be nil for a silent game.
func New(h *hunt.Game, driver *audio.Driver, settings config.Settings, logger zerolog.Logger) *Game {
	g := &Game{
		hunt:     h,
		driver:   driver,
		settings: settings,
		logger:   logger,
		width:    settings.Width,
		height:   settings.Height,
		face:     text.NewGoXFace(basicfont.Face7x13),
	}

	top := (config.HeaderHeight - config.ButtonHeight) / 2
	titleW, _ := text.Measure(settings.Title, g.face, 0)
	x := config.Margin + int(titleW) + 2*config.ButtonGap
	g.startBtn = button{x: x, y: top, w: config.ButtonWidth, h: config.ButtonHeight}
	x += config.ButtonWidth + config.ButtonGap
	g.muteBtn = button{x: x, y: top, w: config.ButtonWidth, h: config.ButtonHeight}
	x += config.ButtonWidth + config.ButtonGap
	g.fanfareBtn = button{x: x, y: top, w: config.ButtonWidth, h: config.ButtonHeight}

	g.surface = hunt.Surface{
		X: config.Margin,
		Y: config.HeaderHeight,
		W: float64(g.width - 2*config.Margin),
		H: float64(g.height - config.HeaderHeight - config.Margin),
	}
	g.tracker = hunt.NewTracker(g.surface)
	return g
}

func (g *Game) Update() error {
	mouseX, mouseY := ebiten.CursorPosition()

	if g.startBtn.clicked(mouseX, mouseY) {
		g.hunt.Start()
	}
	if g.muteBtn.clicked(mouseX, mouseY) {
		g.hunt.ToggleMute()
	}
	if g.fanfareBtn.clicked(mouseX, mouseY) {
		g.lastErr = g.pickFanfare()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.hunt.Start()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.hunt.ToggleMute()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.lastErr = g.pickFanfare()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		if g.confirmQuit() {
			return ebiten.Termination
		}
	}

	g.pointer(mouseX, mouseY)
	g.hunt.Tick()

	g.colorPhase += config.ColorShiftSpeed
	return nil
}

func (g *Game) pointer(x, y int) {
	if p, ok := g.tracker.Sample(float64(x), float64(y)); ok {
		g.hunt.Move(p)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Close releases audio and cancels pending round work.
func (g *Game) Close() {
	g.hunt.Close()
}

func (g *Game) pickFanfare() error {
	if g.driver == nil {
		return nil
	}
	filename, err := zenity.SelectFile(
		zenity.Title("Choose a fanfare"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return fmt.Errorf("file dialog: %w", err)
	}

	if err := g.driver.UseFanfare(filename); err != nil {
		g.logger.Warn().Err(err).Str("path", filename).Msg("fanfare rejected")
		return err
	}
	return nil
}

// confirmQuit asks before leaving when configured to. A dialog that cannot
// be shown counts as consent.
func (g *Game) confirmQuit() bool {
	if !g.settings.ConfirmQuit {
		return true
	}
	err := zenity.Question(
		fmt.Sprintf("Quit the hunt? You found %d treasure(s).", g.hunt.Score()),
		zenity.Title(g.settings.Title),
		zenity.OKLabel("Quit"),
		zenity.CancelLabel("Keep playing"),
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return false
	}
	if err != nil {
		g.logger.Warn().Err(err).Msg("quit dialog failed")
	}
	return true
}
