package game

import "fmt"

// MissReason explains why a shot scored nothing.
type MissReason string

const (
	MissTimeout   MissReason = "Timeout"
	MissFarPlane  MissReason = "Exceeded far plane"
	MissOffTarget MissReason = "Missed target plane"
)

// ShotResult is the immutable outcome of one finalized shot. For hits the
// impact coordinates come from the analytic trajectory solution, not from
// the integrated arrow position.
type ShotResult struct {
	Hit            bool
	Ring           int
	Points         int
	RadialDistance float64
	HitX           float64
	HitZ           float64
	TimeToPlane    float64
	Reason         MissReason
}

// Summary renders the result as a one-line message for the HUD.
func (r ShotResult) Summary() string {
	if r.Hit {
		if r.Ring == 1 {
			return fmt.Sprintf("Bullseye! +%d points", r.Points)
		}
		return fmt.Sprintf("Hit ring %d! +%d points", r.Ring, r.Points)
	}
	if r.Reason != "" {
		return fmt.Sprintf("Miss: %s", r.Reason)
	}
	return "Miss"
}
