// Package device connects the tone driver to the system speaker.
package device

import (
	"fmt"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// Speaker is an audio.Output backed by beep/speaker. The device is opened
// lazily on the first Ready call and never reopened.
type Speaker struct {
	rate    beep.SampleRate
	once    sync.Once
	initErr error
}

// NewSpeaker returns an unopened speaker at the given sample rate.
func NewSpeaker(rate beep.SampleRate) *Speaker {
	return &Speaker{rate: rate}
}

func (s *Speaker) Ready() error {
	s.once.Do(func() {
		bufferSize := s.rate.N(time.Second / 20)
		if err := speaker.Init(s.rate, bufferSize); err != nil {
			s.initErr = fmt.Errorf("init speaker: %w", err)
		}
	})
	return s.initErr
}

func (s *Speaker) Rate() beep.SampleRate { return s.rate }

func (s *Speaker) Play(st beep.Streamer) { speaker.Play(st) }

func (s *Speaker) Lock() { speaker.Lock() }

func (s *Speaker) Unlock() { speaker.Unlock() }

// Close stops everything still playing.
func (s *Speaker) Close() {
	if s.initErr != nil {
		return
	}
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
}
