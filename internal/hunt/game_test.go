package hunt

import (
	"math/rand"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

type recorder struct {
	live      bool
	starts    int
	builds    int
	retargets []float64
	teardowns int
	cheers    int
}

func (r *recorder) Start() {
	r.starts++
	if !r.live {
		r.live = true
		r.builds++
	}
}

func (r *recorder) Retarget(d float64) {
	if r.live {
		r.retargets = append(r.retargets, d)
	}
}

func (r *recorder) Teardown() {
	r.teardowns++
	r.live = false
}

func (r *recorder) Celebrate() { r.cheers++ }

func newTestGame(t *testing.T, muted bool) (*Game, *recorder, *fakeClock) {
	t.Helper()
	clk := &fakeClock{t: time.Unix(1700000000, 0)}
	rec := &recorder{}
	g := New(Options{
		Rand:     rand.New(rand.NewSource(42)),
		Now:      clk.now,
		Feedback: rec,
		Logger:   zerolog.Nop(),
		Muted:    muted,
	})
	return g, rec, clk
}

// startAt starts a round and pins the target for a deterministic scenario.
func startAt(g *Game, target Point) {
	g.Start()
	g.target = target
}

func TestGameStartsIdle(t *testing.T) {
	g, rec, _ := newTestGame(t, false)
	if g.State() != Idle {
		t.Fatalf("state=%s want idle", g.State())
	}
	if g.Score() != 0 {
		t.Fatalf("score=%d want 0", g.Score())
	}
	g.Move(Point{X: 50, Y: 50})
	if _, ok := g.LastDistance(); ok {
		t.Error("moves while idle must not record a distance")
	}
	if rec.starts != 0 || len(rec.retargets) != 0 {
		t.Error("idle game must not drive audio")
	}
}

func TestStartPicksTargetAndBuildsAudio(t *testing.T) {
	g, rec, _ := newTestGame(t, false)
	g.Start()

	if g.State() != Active {
		t.Fatalf("state=%s want active", g.State())
	}
	tg := g.Target()
	if tg.X < 10 || tg.X > 89 || tg.Y < 10 || tg.Y > 89 {
		t.Fatalf("target %v out of range", tg)
	}
	if _, ok := g.LastDistance(); ok {
		t.Error("distance should be cleared on start")
	}
	if g.Tier() != TierInitial {
		t.Errorf("tier=%s want initial", g.Tier())
	}
	if rec.builds != 1 {
		t.Errorf("builds=%d want 1", rec.builds)
	}
}

func TestFoundScenario(t *testing.T) {
	g, rec, clk := newTestGame(t, false)
	startAt(g, Point{X: 50, Y: 50})

	g.Move(Point{X: 50, Y: 50})

	if g.State() != Found {
		t.Fatalf("state=%s want found", g.State())
	}
	if g.Score() != 1 {
		t.Fatalf("score=%d want 1", g.Score())
	}
	if d, ok := g.LastDistance(); !ok || d != 0 {
		t.Errorf("last distance=%v,%v want 0,true", d, ok)
	}
	c := g.Celebration()
	if !isCelebration(c) || !contains(messages, c.Message) {
		t.Errorf("celebration %+v not drawn from the fixed sets", c)
	}
	if rec.live {
		t.Error("audio bank should be torn down on found")
	}
	if rec.cheers != 1 {
		t.Errorf("cheers=%d want 1", rec.cheers)
	}
	if g.Tier() != TierRevealed {
		t.Errorf("tier=%s want revealed", g.Tier())
	}

	clk.advance(RevealDelay - time.Millisecond)
	g.Tick()
	if g.State() != Found {
		t.Fatalf("returned to idle early")
	}

	clk.advance(time.Millisecond)
	g.Tick()
	if g.State() != Idle {
		t.Fatalf("state=%s want idle after reveal delay", g.State())
	}
	if g.Score() != 1 {
		t.Errorf("score changed on return to idle: %d", g.Score())
	}
	if g.RevealPending() {
		t.Error("reveal task should be spent")
	}
}

func TestScoreIncrementsOncePerFound(t *testing.T) {
	g, rec, _ := newTestGame(t, false)
	startAt(g, Point{X: 30, Y: 30})

	g.Move(Point{X: 40, Y: 30})
	g.Move(Point{X: 30, Y: 30})
	g.Move(Point{X: 30, Y: 31})
	g.Move(Point{X: 30, Y: 30})

	if g.Score() != 1 {
		t.Fatalf("score=%d want 1", g.Score())
	}
	if len(rec.retargets) != 2 {
		t.Errorf("retargets=%d want 2, moves while found must be ignored", len(rec.retargets))
	}
}

func TestNearMissDoesNotFind(t *testing.T) {
	g, _, _ := newTestGame(t, false)
	startAt(g, Point{X: 50, Y: 50})

	g.Move(Point{X: 55, Y: 50})
	if g.State() != Active {
		t.Fatalf("distance exactly 5 must not count as found")
	}
	if g.Tier() != TierNear {
		t.Errorf("tier=%s want near", g.Tier())
	}

	g.Move(Point{X: 75, Y: 50})
	if g.Tier() != TierCool {
		t.Errorf("tier=%s want cool", g.Tier())
	}
}

func TestRestartCancelsStaleReveal(t *testing.T) {
	g, _, clk := newTestGame(t, false)
	startAt(g, Point{X: 20, Y: 20})
	g.Move(Point{X: 20, Y: 20})
	if g.State() != Found {
		t.Fatal("expected found")
	}

	clk.advance(time.Second)
	g.Start()
	round := g.Round()

	clk.advance(5 * time.Second)
	g.Tick()
	if g.State() != Active {
		t.Fatalf("stale reveal ended the new round: state=%s", g.State())
	}
	if g.Round() != round {
		t.Errorf("round changed: %d -> %d", round, g.Round())
	}
}

func TestStaleTaskIsDropped(t *testing.T) {
	var d deferred
	now := time.Unix(0, 0)
	ran := false
	d.schedule(now, time.Second, 1, func() { ran = true })

	if d.fire(now.Add(2*time.Second), 2) {
		t.Error("task for round 1 fired in round 2")
	}
	if ran {
		t.Error("stale callback ran")
	}
	if d.pending() {
		t.Error("stale task should be discarded")
	}
}

func TestCloseCancelsReveal(t *testing.T) {
	g, rec, clk := newTestGame(t, false)
	startAt(g, Point{X: 40, Y: 60})
	g.Move(Point{X: 40, Y: 60})
	g.Close()

	clk.advance(3 * time.Second)
	g.Tick()
	if g.State() != Found {
		t.Errorf("closed game changed state to %s", g.State())
	}
	if rec.live {
		t.Error("close should tear down audio")
	}
}

func TestMuteTearsDownAndStopsUpdates(t *testing.T) {
	g, rec, _ := newTestGame(t, false)
	startAt(g, Point{X: 80, Y: 80})
	g.Move(Point{X: 10, Y: 10})
	if len(rec.retargets) != 1 {
		t.Fatalf("retargets=%d want 1", len(rec.retargets))
	}

	g.ToggleMute()
	if !g.Muted() {
		t.Fatal("expected muted")
	}
	if rec.live {
		t.Fatal("mute must tear down the bank")
	}

	g.Move(Point{X: 20, Y: 20})
	g.Move(Point{X: 30, Y: 30})
	if len(rec.retargets) != 1 {
		t.Errorf("retargets=%d after mute, want 1", len(rec.retargets))
	}
	if _, ok := g.LastDistance(); !ok {
		t.Error("muted game still tracks distance")
	}
}

func TestUnmuteTearsDownThenRebuilds(t *testing.T) {
	g, rec, _ := newTestGame(t, true)
	startAt(g, Point{X: 80, Y: 80})
	if rec.builds != 0 {
		t.Fatalf("muted start built a bank")
	}

	before := rec.teardowns
	g.ToggleMute()
	if rec.teardowns != before+1 {
		t.Errorf("unmute should still tear down, teardowns=%d", rec.teardowns)
	}
	if !rec.live || rec.builds != 1 {
		t.Errorf("unmute inside an active round should rebuild, live=%v builds=%d", rec.live, rec.builds)
	}

	g.Move(Point{X: 70, Y: 80})
	if len(rec.retargets) != 1 {
		t.Errorf("retargets=%d want 1", len(rec.retargets))
	}
}

func TestMutedFoundSkipsCelebrationSound(t *testing.T) {
	g, rec, _ := newTestGame(t, true)
	startAt(g, Point{X: 50, Y: 50})
	g.Move(Point{X: 50, Y: 50})
	if g.Score() != 1 {
		t.Fatalf("score=%d want 1", g.Score())
	}
	if rec.cheers != 0 {
		t.Errorf("cheers=%d while muted", rec.cheers)
	}
}

func TestUnmuteWhileIdleDoesNotBuild(t *testing.T) {
	g, rec, _ := newTestGame(t, true)
	g.ToggleMute()
	if rec.builds != 0 {
		t.Errorf("builds=%d, idle game must not build audio", rec.builds)
	}
}

func TestScoreAccumulatesAcrossRounds(t *testing.T) {
	g, _, clk := newTestGame(t, false)
	for i := 1; i <= 3; i++ {
		g.Start()
		g.Move(g.Target())
		if g.Score() != i {
			t.Fatalf("round %d: score=%d", i, g.Score())
		}
		clk.advance(RevealDelay)
		g.Tick()
		if g.State() != Idle {
			t.Fatalf("round %d: state=%s", i, g.State())
		}
	}
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func isCelebration(c Celebration) bool {
	for _, e := range emojis {
		if e.emoji == c.Emoji && e.glyph == c.Glyph {
			return true
		}
	}
	return false
}

func TestCelebrationSets(t *testing.T) {
	if len(emojis) != 10 || len(messages) != 8 {
		t.Fatalf("sets have %d emoji and %d messages, want 10 and 8", len(emojis), len(messages))
	}
	seen := map[string]bool{}
	for _, e := range emojis {
		if seen[e.glyph] {
			t.Errorf("glyph %q maps more than one emoji", e.glyph)
		}
		seen[e.glyph] = true
		for _, r := range e.glyph {
			if r > 0x7e {
				t.Errorf("glyph %q is not drawable ASCII", e.glyph)
			}
		}
	}
	if messages[0] != "Amazing find!" || messages[7] != "Great job!" {
		t.Errorf("message set out of order: %q ... %q", messages[0], messages[7])
	}

	r := rand.New(rand.NewSource(3))
	hit := map[string]bool{}
	for i := 0; i < 2000; i++ {
		c := pickCelebration(r)
		if !isCelebration(c) || !contains(messages, c.Message) {
			t.Fatalf("picked %+v outside the fixed sets", c)
		}
		hit[c.Emoji] = true
	}
	if len(hit) != len(emojis) {
		t.Errorf("only %d of %d emoji were ever picked", len(hit), len(emojis))
	}
}
