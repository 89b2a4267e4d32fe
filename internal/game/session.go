package game

import (
	"math"

	"github.com/rafaelantao/tui-archery/internal/config"
	"github.com/rafaelantao/tui-archery/internal/core"
)

// warningSeconds is how long a transient HUD warning stays visible.
const warningSeconds = 1.5

// originLift keeps the launch point just past the near plane so the arrow
// is visible from the first frame.
const originLift = 1e-4

// Session is one continuous play session: the shot state machine, the
// quiver, and the running round score. All mutation goes through Step and
// the explicit event methods; rendering reads a Snapshot.
//
// Field validity follows the phase: drawTime is meaningful only while
// Charging, arrow is non-nil exactly while InFlight, and resolveTimer
// counts down only during Resolve.
type Session struct {
	cfg        config.ArcheryConfig
	difficulty config.Difficulty

	phase        Phase
	aim          Aim
	drawTime     float64
	arrow        *Arrow
	lastResult   *ShotResult
	resolveTimer float64

	arrowsRemaining int
	roundScore      int
	awaitingReload  bool

	warning      string
	warningTimer float64

	hitMarkers []core.Vec3
	shotCount  int
	roundCount int
}

// NewSession creates a session in the Aiming phase with a full quiver.
// An empty difficulty falls back to the configured default.
func NewSession(cfg config.ArcheryConfig, difficulty config.Difficulty) *Session {
	if difficulty == "" {
		difficulty = cfg.Difficulty.Default
	}
	return &Session{
		cfg:             cfg,
		difficulty:      difficulty,
		phase:           PhaseAiming,
		aim:             NewAim(cfg.Aim),
		arrowsRemaining: cfg.Rules.QuiverSize,
	}
}

// Step advances the session by dt seconds. Discrete actions in the input
// frame are handled first, then the continuous update for the current
// phase runs.
func (s *Session) Step(in core.InputFrame, dt float64) {
	s.handleActions(in)

	switch s.phase {
	case PhaseAiming:
		s.aim.Update(in, dt, s.cfg.Aim)
	case PhaseCharging:
		s.aim.Update(in, dt, s.cfg.Aim)
		s.drawTime = math.Min(s.drawTime+dt, s.cfg.Physics.MaxDrawSeconds)
	case PhaseInFlight:
		s.advanceArrow(dt)
	case PhaseResolve:
		s.resolveTimer -= dt
		if s.resolveTimer <= 0 {
			s.phase = PhaseAiming
		}
	}

	if s.warningTimer > 0 {
		s.warningTimer -= dt
		if s.warningTimer <= 0 {
			s.warning = ""
		}
	}
}

func (s *Session) handleActions(in core.InputFrame) {
	switch {
	case in.Has(core.ActionDiffEasy):
		s.SetDifficulty(config.DifficultyEasy)
	case in.Has(core.ActionDiffNormal):
		s.SetDifficulty(config.DifficultyNormal)
	case in.Has(core.ActionDiffHard):
		s.SetDifficulty(config.DifficultyHard)
	}
	if in.Has(core.ActionReload) {
		s.Reload()
	}
	if in.Has(core.ActionCharge) {
		if s.phase == PhaseCharging {
			s.Release()
		} else {
			s.StartCharge()
		}
	}
}

// StartCharge begins drawing the bow. It is valid only from the Aiming
// phase with arrows remaining.
func (s *Session) StartCharge() {
	if s.phase != PhaseAiming {
		return
	}
	if s.awaitingReload || s.arrowsRemaining <= 0 {
		s.warn("Quiver empty. Press R to reload.")
		return
	}
	assertNoArrow(s.arrow)
	s.phase = PhaseCharging
	s.drawTime = 0
}

// Release fires the drawn arrow. A zero-power release or an aim with no
// forward velocity component returns to Aiming without consuming an arrow.
func (s *Session) Release() {
	if s.phase != PhaseCharging {
		return
	}
	ratio := core.ClampF(s.drawTime/s.cfg.Physics.MaxDrawSeconds, 0, 1)
	if ratio <= 0 {
		s.phase = PhaseAiming
		return
	}
	speed := s.cfg.Physics.MaxArrowSpeed * math.Pow(ratio, s.cfg.Physics.PowerExponent)
	vel := s.aim.Direction().Scale(speed)
	if vel.Y <= 0 {
		s.phase = PhaseAiming
		s.warn("Cannot shoot backward. Adjust your aim.")
		return
	}
	origin := s.launchOrigin()
	s.arrow = &Arrow{
		Position:       origin,
		Velocity:       vel,
		Origin:         origin,
		LaunchVelocity: vel,
	}
	s.lastResult = nil
	s.phase = PhaseInFlight
}

// Reload refills the quiver. It is refused while an arrow is in flight and
// is a no-op when the quiver is already full.
func (s *Session) Reload() {
	if s.phase == PhaseInFlight {
		s.warn("Wait for the arrow to land before reloading.")
		return
	}
	if !s.awaitingReload && s.arrowsRemaining == s.cfg.Rules.QuiverSize {
		return
	}
	s.arrowsRemaining = s.cfg.Rules.QuiverSize
	s.awaitingReload = false
	s.roundScore = 0
	s.hitMarkers = s.hitMarkers[:0]
	s.lastResult = nil
	s.warning = ""
	s.warningTimer = 0
}

// SetDifficulty switches the target distance. The switch is refused while
// an arrow is in flight so a live shot is never rescored against a moved
// target.
func (s *Session) SetDifficulty(d config.Difficulty) {
	if s.phase == PhaseInFlight {
		s.warn("Cannot change difficulty mid-flight.")
		return
	}
	if d == s.difficulty {
		return
	}
	if _, ok := s.cfg.Difficulty.Distances[d]; !ok {
		return
	}
	s.difficulty = d
	s.lastResult = nil
	s.hitMarkers = s.hitMarkers[:0]
}

func (s *Session) advanceArrow(dt float64) {
	if s.arrow == nil {
		// Recover from a broken invariant rather than ticking a nil arrow.
		s.phase = PhaseAiming
		return
	}
	s.arrow.Advance(dt, s.cfg.Physics.Gravity)

	// Exit priority: timeout, then target plane, then far plane.
	switch {
	case s.arrow.FlightTime >= s.cfg.Physics.ArrowTimeoutSeconds:
		s.finalize(false, MissTimeout)
	case s.arrow.Position.Y >= s.TargetDistance():
		s.finalize(true, "")
	case s.arrow.Position.Y >= s.cfg.Camera.FarPlane:
		s.finalize(false, MissFarPlane)
	}
}

// finalize scores the shot, consumes an arrow, and enters Resolve.
func (s *Session) finalize(reachedPlane bool, reason MissReason) {
	res := s.scoreShot(reachedPlane, reason)
	s.lastResult = &res
	s.arrow = nil
	s.phase = PhaseResolve
	s.resolveTimer = s.cfg.Rules.ResolveSeconds
	s.shotCount++

	if res.Hit {
		s.hitMarkers = append(s.hitMarkers, core.Vec3{
			X: res.HitX,
			Y: s.TargetDistance(),
			Z: res.HitZ,
		})
	}
	s.roundScore += res.Points
	if s.arrowsRemaining > 0 {
		s.arrowsRemaining--
	}
	if s.arrowsRemaining == 0 {
		s.awaitingReload = true
		s.roundCount++
		s.warn("Round over. Press R to reload.")
	}
}

// scoreShot derives the outcome from the launch parameters. Arrival at the
// target plane is rescored analytically so the ring does not depend on how
// far past the plane the integrated position overshot.
func (s *Session) scoreShot(reachedPlane bool, reason MissReason) ShotResult {
	res := ShotResult{TimeToPlane: s.arrow.FlightTime, Reason: reason}
	if !reachedPlane {
		return res
	}

	tgt := s.Target()
	imp, ok := tgt.Intersect(s.arrow.Origin, s.arrow.LaunchVelocity, s.cfg.Physics.Gravity)
	if !ok {
		res.Reason = MissOffTarget
		return res
	}
	res.RadialDistance = imp.Radial
	res.HitX = imp.X
	res.HitZ = imp.Z
	res.TimeToPlane = imp.Time

	ring := tgt.RingIndex(imp.Radial)
	if ring == 0 {
		res.Reason = MissOffTarget
		return res
	}
	res.Hit = true
	res.Ring = ring
	res.Points = tgt.PointsForRing(ring)
	return res
}

// Target returns the scoring target for the current difficulty.
func (s *Session) Target() Target {
	return Target{
		Distance:    s.TargetDistance(),
		OuterRadius: s.cfg.Target.OuterRadius,
		RingCount:   s.cfg.Target.RingCount,
		CenterX:     s.cfg.Target.CenterX,
		CenterZ:     s.cfg.Target.CenterZ,
	}
}

// TargetDistance returns the target plane depth for the current difficulty.
func (s *Session) TargetDistance() float64 {
	return s.cfg.TargetDistance(s.difficulty)
}

// ChargeRatio is the normalized draw progress in [0,1], zero outside the
// Charging phase.
func (s *Session) ChargeRatio() float64 {
	if s.phase != PhaseCharging {
		return 0
	}
	return core.ClampF(s.drawTime/s.cfg.Physics.MaxDrawSeconds, 0, 1)
}

// ShapedPower applies the power curve to the current charge ratio.
func (s *Session) ShapedPower() float64 {
	r := s.ChargeRatio()
	if r == 0 {
		return 0
	}
	return math.Pow(r, s.cfg.Physics.PowerExponent)
}

// LaunchSpeed is the speed the arrow would leave with if released now.
func (s *Session) LaunchSpeed() float64 {
	return s.cfg.Physics.MaxArrowSpeed * s.ShapedPower()
}

// AimPoint projects the current aim direction, ignoring gravity, onto the
// target plane. It reports false when the aim does not cross the plane.
func (s *Session) AimPoint() (core.Vec3, bool) {
	dir := s.aim.Direction()
	if dir.Y <= 1e-5 {
		return core.Vec3{}, false
	}
	origin := s.launchOrigin()
	t := (s.TargetDistance() - origin.Y) / dir.Y
	if t <= 0 {
		return core.Vec3{}, false
	}
	return origin.Add(dir.Scale(t)), true
}

func (s *Session) launchOrigin() core.Vec3 {
	return core.Vec3{
		X: 0,
		Y: s.cfg.Camera.NearPlane + originLift,
		Z: s.cfg.Camera.CameraZ,
	}
}

func (s *Session) warn(text string) {
	s.warning = text
	s.warningTimer = warningSeconds
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Difficulty returns the active difficulty.
func (s *Session) Difficulty() config.Difficulty { return s.difficulty }

// RoundScore is the accumulated score of the current quiver.
func (s *Session) RoundScore() int { return s.roundScore }

// ShotCount is the number of finalized shots since the session started.
func (s *Session) ShotCount() int { return s.shotCount }

// RoundCount is the number of completed quivers since the session started.
func (s *Session) RoundCount() int { return s.roundCount }

// LastResult returns the outcome of the most recent shot, or nil.
func (s *Session) LastResult() *ShotResult { return s.lastResult }
