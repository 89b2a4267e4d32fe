package game

import (
	"math"
	"testing"

	"github.com/rafaelantao/tui-archery/internal/core"
)

func TestIntersectKnownTrajectory(t *testing.T) {
	tgt := Target{Distance: 10, OuterRadius: 1.0, RingCount: 5}
	origin := core.Vec3{X: 0, Y: 0.1, Z: 0}
	vel := core.Vec3{X: 0, Y: 10, Z: 5}

	imp, ok := tgt.Intersect(origin, vel, 9.8)
	if !ok {
		t.Fatal("Intersect() should succeed for a forward launch")
	}
	if math.Abs(imp.Time-0.99) > 1e-9 {
		t.Errorf("time to plane = %v, expected 0.99", imp.Time)
	}
	wantZ := 5*0.99 - 0.5*9.8*0.99*0.99
	if math.Abs(imp.Z-wantZ) > 1e-9 {
		t.Errorf("vertical hit = %v, expected %v", imp.Z, wantZ)
	}
	if math.Abs(imp.Radial-wantZ) > 1e-9 {
		t.Errorf("radial = %v, expected %v for a centered target", imp.Radial, wantZ)
	}
}

func TestIntersectRejectsNonForwardLaunch(t *testing.T) {
	tgt := Target{Distance: 10, OuterRadius: 1.0, RingCount: 5}
	for _, vy := range []float64{0, -3} {
		if _, ok := tgt.Intersect(core.Vec3{}, core.Vec3{Y: vy, Z: 5}, 9.8); ok {
			t.Errorf("Intersect() with forward velocity %v should fail", vy)
		}
	}
}

func TestRingIndex(t *testing.T) {
	tgt := Target{Distance: 10, OuterRadius: 1.0, RingCount: 5}
	tests := []struct {
		radial float64
		want   int
	}{
		{0, 1},
		{0.15, 1},
		{0.2, 1},  // exact boundary scores the inner ring
		{0.45, 3},
		{0.8 + 5e-7, 4}, // within epsilon of the boundary
		{0.99, 5},
		{1.0, 5},
		{1.05, 0},
	}
	for _, tc := range tests {
		if got := tgt.RingIndex(tc.radial); got != tc.want {
			t.Errorf("RingIndex(%v) = %d, expected %d", tc.radial, got, tc.want)
		}
	}
}

func TestPointsForRing(t *testing.T) {
	tgt := Target{OuterRadius: 1.0, RingCount: 5}
	tests := []struct {
		ring int
		want int
	}{
		{1, 100},
		{3, 55},
		{5, 10},
		{0, 0},
		{6, 0},
	}
	for _, tc := range tests {
		if got := tgt.PointsForRing(tc.ring); got != tc.want {
			t.Errorf("PointsForRing(%d) = %d, expected %d", tc.ring, got, tc.want)
		}
	}

	single := Target{OuterRadius: 1.0, RingCount: 1}
	if got := single.PointsForRing(1); got != 100 {
		t.Errorf("single-ring PointsForRing(1) = %d, expected 100", got)
	}
}

func TestPointsDecreaseOutward(t *testing.T) {
	tgt := Target{OuterRadius: 1.2, RingCount: 7}
	prev := tgt.PointsForRing(1)
	for ring := 2; ring <= 7; ring++ {
		pts := tgt.PointsForRing(ring)
		if pts >= prev {
			t.Errorf("PointsForRing(%d) = %d, expected less than ring %d's %d", ring, pts, ring-1, prev)
		}
		prev = pts
	}
	if tgt.PointsForRing(7) != 10 {
		t.Errorf("outermost ring = %d points, expected 10", tgt.PointsForRing(7))
	}
}
