package game

import (
	"github.com/rafaelantao/tui-archery/internal/config"
	"github.com/rafaelantao/tui-archery/internal/core"
)

// Snapshot is a read-only view of the session for rendering. Slices and
// the result are copies, so a renderer may hold a snapshot across ticks.
type Snapshot struct {
	Phase      Phase
	Difficulty config.Difficulty

	YawDeg   float64
	PitchDeg float64

	ChargeRatio float64
	ShapedPower float64
	LaunchSpeed float64

	HasArrow bool
	ArrowPos core.Vec3

	HasAimPoint bool
	AimPoint    core.Vec3

	LastResult *ShotResult

	ArrowsRemaining int
	QuiverSize      int
	RoundScore      int
	AwaitingReload  bool

	Warning    string
	HitMarkers []core.Vec3

	TargetDistance float64
	ShotCount      int
	RoundCount     int
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:           s.phase,
		Difficulty:      s.difficulty,
		YawDeg:          s.aim.YawDeg,
		PitchDeg:        s.aim.PitchDeg,
		ChargeRatio:     s.ChargeRatio(),
		ShapedPower:     s.ShapedPower(),
		LaunchSpeed:     s.LaunchSpeed(),
		ArrowsRemaining: s.arrowsRemaining,
		QuiverSize:      s.cfg.Rules.QuiverSize,
		RoundScore:      s.roundScore,
		AwaitingReload:  s.awaitingReload,
		Warning:         s.warning,
		TargetDistance:  s.TargetDistance(),
		ShotCount:       s.shotCount,
		RoundCount:      s.roundCount,
	}
	if s.arrow != nil {
		snap.HasArrow = true
		snap.ArrowPos = s.arrow.Position
	}
	if p, ok := s.AimPoint(); ok {
		snap.HasAimPoint = true
		snap.AimPoint = p
	}
	if s.lastResult != nil {
		res := *s.lastResult
		snap.LastResult = &res
	}
	if len(s.hitMarkers) > 0 {
		snap.HitMarkers = append([]core.Vec3(nil), s.hitMarkers...)
	}
	return snap
}
