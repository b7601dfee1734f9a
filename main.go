package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/hotcold/internal/audio"
	"github.com/iburimskiy/hotcold/internal/audio/device"
	"github.com/iburimskiy/hotcold/internal/config"
	"github.com/iburimskiy/hotcold/internal/game"
	"github.com/iburimskiy/hotcold/internal/hunt"
	"github.com/iburimskiy/hotcold/internal/log"
)

func main() {
	configFlag := flag.String("config", "", "Path to a TOML settings file (or set HOTCOLD_CONFIG)")
	seedFlag := flag.Int64("seed", 0, "Random seed for target placement (0 = time based)")
	soundFlag := flag.Bool("sound", false, "Start with sound on (the game starts muted by default)")
	logPathFlag := flag.String("logpath", "", "Directory for hotcold.log (or set HOTCOLD_LOG_PATH)")
	flag.Parse()

	settings, err := config.Load(config.ResolvePath(*configFlag))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *seedFlag != 0 {
		settings.Seed = *seedFlag
	}
	if *soundFlag {
		settings.StartMuted = false
	}

	if dir, err := log.ResolveDir(*logPathFlag); err == nil {
		log.SetDir(dir)
		if err := log.Init(settings.Level()); err != nil {
			fmt.Fprintf(os.Stderr, "logging disabled: %v\n", err)
		}
	}
	defer log.Close()
	logger := log.Logger()

	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	spk := device.NewSpeaker(beep.SampleRate(config.SampleRate))
	defer spk.Close()

	driver := audio.NewDriver(spk, logger.With().Str("component", "audio").Logger())
	if settings.Fanfare != "" {
		if err := driver.UseFanfare(settings.Fanfare); err != nil {
			logger.Warn().Err(err).Msg("fanfare not loaded")
		}
	}

	h := hunt.New(hunt.Options{
		Rand:     rand.New(rand.NewSource(seed)),
		Feedback: driver,
		Logger:   logger.With().Str("component", "hunt").Logger(),
		Muted:    settings.StartMuted,
	})

	g := game.New(h, driver, settings, logger)
	defer g.Close()

	logger.Info().Int64("seed", seed).Str("log", log.Path()).Msg("starting")

	ebiten.SetWindowSize(settings.Width, settings.Height)
	ebiten.SetWindowTitle(settings.Title)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error().Err(err).Msg("game loop failed")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
