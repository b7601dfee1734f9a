// Package audio turns hot/cold distances into a continuously retuned chord.
package audio

import (
	"github.com/faiface/beep"
	"github.com/rs/zerolog"
)

// DefaultRate is used when no device is attached.
const DefaultRate beep.SampleRate = 44100

// Output is the device side of the driver. Play must be safe to call from
// the UI goroutine; Lock and Unlock guard streamer fields read by the
// device's mixing goroutine.
type Output interface {
	// Ready initialises the device on first use. Later calls return the
	// first result without retrying.
	Ready() error
	Rate() beep.SampleRate
	Play(s beep.Streamer)
	Lock()
	Unlock()
}

// Driver owns the tone bank and its lifecycle. It is driven from a single
// goroutine; only the bank's sample loop runs elsewhere.
type Driver struct {
	out    Output
	logger zerolog.Logger

	silent bool

	bank *Bank
	tap  *tap
	ctrl *beep.Ctrl

	fanfare *beep.Buffer
}

// NewDriver returns a driver that builds nothing until Start.
func NewDriver(out Output, logger zerolog.Logger) *Driver {
	return &Driver{out: out, logger: logger}
}

// Start builds and plays a bank unless one is already live. If the device
// cannot be opened the driver goes silent for the rest of the session.
func (d *Driver) Start() {
	if d.silent || d.bank != nil {
		return
	}
	if d.out == nil {
		d.silent = true
		return
	}
	if err := d.out.Ready(); err != nil {
		d.silent = true
		d.logger.Warn().Err(err).Msg("audio device unavailable, continuing without sound")
		return
	}

	d.bank = NewBank(d.out.Rate())
	d.tap = newTap(d.bank, ScopeSize)
	d.ctrl = &beep.Ctrl{Streamer: d.tap}
	d.out.Play(d.ctrl)
	d.logger.Debug().Int("voices", Voices).Msg("tone bank built")
}

// Retarget moves the live bank toward the pitch and gain for distance.
// Without a live bank it does nothing.
func (d *Driver) Retarget(distance float64) {
	if d.bank == nil {
		return
	}
	d.bank.SetTarget(1 - distance/100)
}

// Teardown detaches the bank from the device and drops every reference,
// so the next Start builds from scratch.
func (d *Driver) Teardown() {
	if d.ctrl == nil {
		return
	}
	d.out.Lock()
	// A Ctrl without a streamer reports drained and the mixer drops it.
	d.ctrl.Streamer = nil
	d.out.Unlock()

	d.bank = nil
	d.tap = nil
	d.ctrl = nil
	d.logger.Debug().Msg("tone bank torn down")
}

// Celebrate plays the fanfare once, if one is loaded.
func (d *Driver) Celebrate() {
	if d.silent || d.fanfare == nil || d.out == nil {
		return
	}
	if err := d.out.Ready(); err != nil {
		d.silent = true
		return
	}
	d.out.Play(d.fanfare.Streamer(0, d.fanfare.Len()))
}

// SetFanfare replaces the found cue. nil disables it.
func (d *Driver) SetFanfare(b *beep.Buffer) {
	d.fanfare = b
}

// UseFanfare loads path and installs it as the found cue.
func (d *Driver) UseFanfare(path string) error {
	rate := DefaultRate
	if d.out != nil {
		rate = d.out.Rate()
	}
	b, err := LoadFanfare(path, rate)
	if err != nil {
		return err
	}
	d.SetFanfare(b)
	d.logger.Info().Str("path", path).Int("samples", b.Len()).Msg("fanfare loaded")
	return nil
}

// Live reports whether a bank is currently attached.
func (d *Driver) Live() bool { return d.bank != nil }

// Silent reports whether the device failed and sound is disabled.
func (d *Driver) Silent() bool { return d.silent }

// Scope returns the last n mono samples played by the bank, or nil when
// no bank is live.
func (d *Driver) Scope(n int) []float64 {
	if d.tap == nil {
		return nil
	}
	return d.tap.snapshot(n)
}
