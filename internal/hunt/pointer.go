package hunt

// Tracker turns raw cursor positions into pointer samples. A position is
// forwarded only when it differs from the previous one and lies on the
// surface, so a resting cursor never counts as movement.
type Tracker struct {
	surface Surface

	x, y float64
	seen bool
}

func NewTracker(s Surface) *Tracker {
	return &Tracker{surface: s}
}

// Sample records the cursor at (px, py) and reports the normalized point
// when it is a real move inside the surface.
func (t *Tracker) Sample(px, py float64) (Point, bool) {
	if t.seen && px == t.x && py == t.y {
		return Point{}, false
	}
	t.x, t.y, t.seen = px, py, true
	return t.surface.Normalize(px, py)
}
