package game

import (
	"math"

	"github.com/rafaelantao/tui-archery/internal/config"
	"github.com/rafaelantao/tui-archery/internal/core"
)

// Aim holds the two angular degrees of freedom of the bow. Angles are in
// degrees and stay inside the configured bounds after every update.
type Aim struct {
	YawDeg   float64
	PitchDeg float64
}

// NewAim returns the initial aim, clamped to the configured bounds.
func NewAim(cfg config.AimConfig) Aim {
	a := Aim{YawDeg: cfg.InitialYawDeg, PitchDeg: cfg.InitialPitchDeg}
	a.clamp(cfg)
	return a
}

// Update applies one frame of held directional input at the configured
// angular rates, then clamps both axes.
func (a *Aim) Update(in core.InputFrame, dt float64, cfg config.AimConfig) {
	if in.Has(core.ActionYawLeft) {
		a.YawDeg -= cfg.YawSpeedDegS * dt
	}
	if in.Has(core.ActionYawRight) {
		a.YawDeg += cfg.YawSpeedDegS * dt
	}
	if in.Has(core.ActionPitchUp) {
		a.PitchDeg += cfg.PitchSpeedDegS * dt
	}
	if in.Has(core.ActionPitchDown) {
		a.PitchDeg -= cfg.PitchSpeedDegS * dt
	}
	a.clamp(cfg)
}

func (a *Aim) clamp(cfg config.AimConfig) {
	a.YawDeg = core.ClampF(a.YawDeg, cfg.YawMinDeg, cfg.YawMaxDeg)
	a.PitchDeg = core.ClampF(a.PitchDeg, cfg.PitchMinDeg, cfg.PitchMaxDeg)
}

// Direction converts the aim angles to a unit direction vector. Y is the
// forward axis toward the target; a non-positive Y means the bow points
// away from the range.
func (a Aim) Direction() core.Vec3 {
	yaw := a.YawDeg * math.Pi / 180
	pitch := a.PitchDeg * math.Pi / 180
	cp := math.Cos(pitch)
	return core.Vec3{
		X: math.Sin(yaw) * cp,
		Y: math.Cos(yaw) * cp,
		Z: math.Sin(pitch),
	}
}
