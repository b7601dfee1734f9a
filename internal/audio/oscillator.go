package audio

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

const (
	// BaseFreq is the root of the chord at zero proximity.
	BaseFreq = 220.0
	// FreqSpan is added to BaseFreq at full proximity.
	FreqSpan = 880.0
	// MaxGain is the per-voice amplitude at full proximity.
	MaxGain = 0.1
	// TimeConstant is the smoothing constant for pitch and gain changes.
	TimeConstant = 0.1
)

// Ratios are the chord intervals relative to the root. The bank size is
// fixed by this table.
var Ratios = [Voices]float64{1, 1.25, 1.5, 2}

// Voices is the number of tone generators in a bank.
const Voices = 4

// Params maps a proximity value to per-voice frequencies and a shared gain.
// Gain never goes below zero; proximity itself is not clamped.
func Params(proximity float64) (freqs [Voices]float64, gain float64) {
	root := BaseFreq + FreqSpan*proximity
	for i, r := range Ratios {
		freqs[i] = math.Max(0, root*r)
	}
	gain = math.Max(0, MaxGain*proximity)
	return freqs, gain
}

type voice struct {
	freq, gain   float64 // current, per sample
	tFreq, tGain float64 // targets
	phase        float64 // 0-1
}

// Bank is a beep.Streamer mixing four sine voices. Targets move with an
// exponential approach so retargeting never jumps.
type Bank struct {
	rate  beep.SampleRate
	alpha float64

	mu     sync.Mutex
	voices [Voices]voice
}

// NewBank creates a bank at the root pitch, silent and ramping to
// MaxGain until the first retarget.
func NewBank(rate beep.SampleRate) *Bank {
	b := &Bank{
		rate:  rate,
		alpha: 1 - math.Exp(-1/(TimeConstant*float64(rate))),
	}
	for i, r := range Ratios {
		b.voices[i] = voice{
			freq:  BaseFreq * r,
			tFreq: BaseFreq * r,
			tGain: MaxGain,
		}
	}
	return b
}

// SetTarget retargets every voice from a proximity value.
func (b *Bank) SetTarget(proximity float64) {
	freqs, gain := Params(proximity)
	b.mu.Lock()
	for i := range b.voices {
		b.voices[i].tFreq = freqs[i]
		b.voices[i].tGain = gain
	}
	b.mu.Unlock()
}

// Stream implements beep.Streamer. It never runs dry.
func (b *Bank) Stream(samples [][2]float64) (int, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	sr := float64(b.rate)
	for i := range samples {
		var s float64
		for j := range b.voices {
			v := &b.voices[j]
			v.freq += (v.tFreq - v.freq) * b.alpha
			v.gain += (v.tGain - v.gain) * b.alpha
			v.phase += v.freq / sr
			v.phase -= math.Floor(v.phase)
			s += math.Sin(2*math.Pi*v.phase) * v.gain
		}
		samples[i][0] = s
		samples[i][1] = s
	}
	return len(samples), true
}

func (b *Bank) Err() error { return nil }

// levels returns the current frequency and gain of each voice.
func (b *Bank) levels() (freqs, gains [Voices]float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, v := range b.voices {
		freqs[i] = v.freq
		gains[i] = v.gain
	}
	return freqs, gains
}
