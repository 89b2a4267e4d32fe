package game

import (
	"math"

	"github.com/rafaelantao/tui-archery/internal/core"
)

// ringEpsilon absorbs floating-point error at ring boundaries so an impact
// landing exactly on a boundary scores the inner (better) ring.
const ringEpsilon = 1e-6

// Target is the scoring disc at the end of the range. Ring boundaries are
// concentric circles at OuterRadius*i/RingCount for i in 1..RingCount.
type Target struct {
	Distance    float64
	OuterRadius float64
	RingCount   int
	CenterX     float64
	CenterZ     float64
}

// Impact is the analytic intersection of a launch with the target plane.
type Impact struct {
	X      float64
	Z      float64
	Radial float64
	Time   float64
}

// Intersect solves the closed-form ballistic trajectory from the launch
// parameters against the plane y = Distance. It reports false when the
// launch has no forward velocity component. The result depends only on the
// launch state and gravity, never on integration step size.
func (t Target) Intersect(origin, launchVel core.Vec3, gravity float64) (Impact, bool) {
	if launchVel.Y <= 0 {
		return Impact{}, false
	}
	tHit := (t.Distance - origin.Y) / launchVel.Y
	if tHit < 0 {
		return Impact{}, false
	}
	x := origin.X + launchVel.X*tHit
	z := origin.Z + launchVel.Z*tHit - 0.5*gravity*tHit*tHit
	dx := x - t.CenterX
	dz := z - t.CenterZ
	return Impact{
		X:      x,
		Z:      z,
		Radial: math.Hypot(dx, dz),
		Time:   tHit,
	}, true
}

// RingIndex maps a radial distance from the target center to a ring number,
// 1 being the bullseye and RingCount the outermost ring. It returns 0 when
// the impact lies outside the target.
func (t Target) RingIndex(radial float64) int {
	for i := 1; i <= t.RingCount; i++ {
		boundary := t.OuterRadius * float64(i) / float64(t.RingCount)
		if radial <= boundary+ringEpsilon {
			return i
		}
	}
	return 0
}

// PointsForRing returns the score for a ring: 100 for the bullseye falling
// linearly to 10 for the outermost ring. A single-ring target is worth 100.
func (t Target) PointsForRing(ring int) int {
	if ring < 1 || ring > t.RingCount {
		return 0
	}
	if t.RingCount == 1 {
		return 100
	}
	step := 90.0 / float64(t.RingCount-1)
	return int(math.Round(100 - float64(ring-1)*step))
}
