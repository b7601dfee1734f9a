package hunt

import (
	"math"
	"math/rand"
)

const (
	// FoundRadius is the distance below which the target counts as found.
	FoundRadius = 5.0

	// Target coordinates are drawn from [TargetMin, TargetMin+TargetSpan).
	TargetMin  = 10
	TargetSpan = 80
)

// Point is a position in play-area percentage space, 0-100 on each axis.
type Point struct {
	X, Y float64
}

// Distance is the Euclidean distance between p and t in percentage space.
// No aspect correction is applied: on a non-square play area one unit of X
// and one unit of Y cover different pixel lengths.
func Distance(p, t Point) float64 {
	return math.Hypot(p.X-t.X, p.Y-t.Y)
}

// IsFound reports whether a sample at distance d hits the target.
func IsFound(d float64) bool {
	return d < FoundRadius
}

// Proximity maps a distance to a linear closeness value. It is 1 on the
// target and goes negative beyond distance 100.
func Proximity(d float64) float64 {
	return 1 - d/100
}

// NewTarget picks a target with integer coordinates in [10, 89] on each axis.
func NewTarget(r *rand.Rand) Point {
	return Point{
		X: float64(r.Intn(TargetSpan) + TargetMin),
		Y: float64(r.Intn(TargetSpan) + TargetMin),
	}
}

// Tier is a visual feedback band.
type Tier int

const (
	TierInitial Tier = iota
	TierNear
	TierWarm
	TierCool
	TierFar
	TierRevealed
)

var tierNames = [...]string{"initial", "near", "warm", "cool", "far", "revealed"}

func (t Tier) String() string {
	if t < 0 || int(t) >= len(tierNames) {
		return "unknown"
	}
	return tierNames[t]
}

// FeedbackTier classifies a distance into a background band. measured is
// false until the first sample of a round has been taken.
func FeedbackTier(d float64, measured bool, s RoundState) Tier {
	switch {
	case s == Found:
		return TierRevealed
	case !measured:
		return TierInitial
	case d < 10:
		return TierNear
	case d < 20:
		return TierWarm
	case d < 30:
		return TierCool
	default:
		return TierFar
	}
}

// Surface is the on-screen rectangle of the play area in pixels.
type Surface struct {
	X, Y, W, H float64
}

// Normalize converts a pixel position into percentage space. ok is false
// when the position lies outside the surface.
func (s Surface) Normalize(px, py float64) (Point, bool) {
	if s.W <= 0 || s.H <= 0 {
		return Point{}, false
	}
	if px < s.X || py < s.Y || px > s.X+s.W || py > s.Y+s.H {
		return Point{}, false
	}
	return Point{
		X: (px - s.X) / s.W * 100,
		Y: (py - s.Y) / s.H * 100,
	}, true
}

// Pixel converts a percentage-space point back to screen pixels.
func (s Surface) Pixel(p Point) (float64, float64) {
	return s.X + p.X/100*s.W, s.Y + p.Y/100*s.H
}
