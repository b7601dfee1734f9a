// Package hunt holds the hot/cold game rules: target placement, distance
// mapping, and the round state machine.
package hunt

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"
)

// RevealDelay is how long a found round stays on screen before going idle.
const RevealDelay = 2 * time.Second

// RoundState is the phase of the current round.
type RoundState int

const (
	Idle RoundState = iota
	Active
	Found
)

func (s RoundState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Active:
		return "active"
	case Found:
		return "found"
	}
	return "unknown"
}

// Feedback receives round transitions and drives the audio side. The game
// never touches audio resources directly.
type Feedback interface {
	// Start makes sure a tone bank is live. It must not rebuild a live bank.
	Start()
	// Retarget steers the live bank toward a new distance.
	Retarget(distance float64)
	// Teardown stops and discards the bank.
	Teardown()
	// Celebrate plays the one-shot found cue, if any.
	Celebrate()
}

// Options configures a Game. Zero fields get defaults.
type Options struct {
	Rand     *rand.Rand
	Now      func() time.Time
	Feedback Feedback
	Logger   zerolog.Logger
	Muted    bool
}

// Game is the single-player state holder. It is not safe for concurrent
// use; all calls come from the UI loop.
type Game struct {
	rng      *rand.Rand
	now      func() time.Time
	feedback Feedback
	logger   zerolog.Logger

	state       RoundState
	round       uint64
	target      Point
	distance    float64
	measured    bool
	score       int
	muted       bool
	celebration Celebration

	reveal deferred
}

type nopFeedback struct{}

func (nopFeedback) Start()           {}
func (nopFeedback) Retarget(float64) {}
func (nopFeedback) Teardown()        {}
func (nopFeedback) Celebrate()       {}

// New creates a game in the Idle state with a zero score.
func New(opts Options) *Game {
	g := &Game{
		rng:      opts.Rand,
		now:      opts.Now,
		feedback: opts.Feedback,
		logger:   opts.Logger,
		muted:    opts.Muted,
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.now == nil {
		g.now = time.Now
	}
	if g.feedback == nil {
		g.feedback = nopFeedback{}
	}
	return g
}

// Start begins a new round with a fresh target. It also serves as restart:
// a pending return to Idle from an earlier round is cancelled.
func (g *Game) Start() {
	g.reveal.cancel()
	g.round++
	g.target = NewTarget(g.rng)
	g.distance = 0
	g.measured = false
	g.celebration = Celebration{}
	g.state = Active

	g.logger.Info().
		Uint64("round", g.round).
		Float64("target_x", g.target.X).
		Float64("target_y", g.target.Y).
		Msg("round started")

	g.syncAudio()
}

// Move handles a pointer sample in percentage space. Samples outside an
// Active round are ignored.
func (g *Game) Move(p Point) {
	if g.state != Active {
		return
	}

	d := Distance(p, g.target)
	g.distance = d
	g.measured = true

	if !g.muted {
		g.feedback.Retarget(d)
	}

	if IsFound(d) {
		g.found()
	}
}

func (g *Game) found() {
	g.state = Found
	g.celebration = pickCelebration(g.rng)
	g.score++

	g.feedback.Teardown()
	if !g.muted {
		g.feedback.Celebrate()
	}

	g.logger.Info().
		Uint64("round", g.round).
		Int("score", g.score).
		Str("emoji", g.celebration.Emoji).
		Msg("target found")

	round := g.round
	g.reveal.schedule(g.now(), RevealDelay, round, func() {
		g.endRound(round)
	})
}

func (g *Game) endRound(round uint64) {
	if round != g.round || g.state != Found {
		return
	}
	g.state = Idle
	g.feedback.Teardown()
	g.logger.Debug().Uint64("round", round).Msg("round ended")
}

// ToggleMute flips the mute flag. Any live bank is torn down whichever way
// the flag goes; when unmuting inside an Active round a fresh bank is built
// by the follow-up sync.
func (g *Game) ToggleMute() {
	g.muted = !g.muted
	g.feedback.Teardown()
	g.logger.Info().Bool("muted", g.muted).Msg("mute toggled")
	g.syncAudio()
}

// Tick runs due deferred work. Call it once per frame.
func (g *Game) Tick() {
	g.reveal.fire(g.now(), g.round)
}

// Close cancels pending work and releases audio.
func (g *Game) Close() {
	g.reveal.cancel()
	g.feedback.Teardown()
}

func (g *Game) syncAudio() {
	if g.state == Active && !g.muted {
		g.feedback.Start()
	}
}

func (g *Game) State() RoundState { return g.state }
func (g *Game) Round() uint64 { return g.round }
func (g *Game) Target() Point { return g.target }
func (g *Game) Score() int { return g.score }
func (g *Game) Muted() bool { return g.muted }
func (g *Game) Celebration() Celebration { return g.celebration }
func (g *Game) RevealPending() bool { return g.reveal.pending() }
func (g *Game) Tier() Tier { return FeedbackTier(g.distance, g.measured, g.state) }

// LastDistance returns the most recent distance and whether one has been
// measured this round.
func (g *Game) LastDistance() (float64, bool) {
	return g.distance, g.measured
}
