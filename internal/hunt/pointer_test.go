package hunt

import "testing"

func TestTrackerForwardsOnlyMotion(t *testing.T) {
	tr := NewTracker(Surface{X: 0, Y: 0, W: 200, H: 100})

	p, ok := tr.Sample(100, 50)
	if !ok || p != (Point{X: 50, Y: 50}) {
		t.Fatalf("first sample = %v,%v", p, ok)
	}
	if _, ok := tr.Sample(100, 50); ok {
		t.Error("a resting cursor must not produce a sample")
	}
	if p, ok := tr.Sample(102, 50); !ok || p.X != 51 {
		t.Errorf("moved sample = %v,%v", p, ok)
	}
}

func TestTrackerIgnoresOutsideSurface(t *testing.T) {
	tr := NewTracker(Surface{X: 10, Y: 50, W: 100, H: 100})

	if _, ok := tr.Sample(5, 60); ok {
		t.Error("left of the surface")
	}
	if _, ok := tr.Sample(50, 20); ok {
		t.Error("inside the header")
	}
	// re-entering at a new spot counts
	if p, ok := tr.Sample(60, 100); !ok || p != (Point{X: 50, Y: 50}) {
		t.Errorf("re-entry = %v,%v", p, ok)
	}
}

func TestTrackerDrivesGame(t *testing.T) {
	g, rec, _ := newTestGame(t, false)
	startAt(g, Point{X: 50, Y: 50})
	tr := NewTracker(Surface{W: 100, H: 100})

	for i := 0; i < 3; i++ {
		if p, ok := tr.Sample(20, 20); ok {
			g.Move(p)
		}
	}
	if n := len(rec.retargets); n != 1 {
		t.Errorf("retargets=%d, want 1 for a cursor that did not move", n)
	}
}
