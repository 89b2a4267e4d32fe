// Package game implements the archery simulation and scoring engine.
// It is pure logic with no platform dependencies: the TUI layer feeds it
// input frames and a dt, and reads back snapshots for rendering.
package game

// Phase is the current stage of the shot lifecycle. The machine cycles
// Aiming -> Charging -> InFlight -> Resolve -> Aiming for the life of a
// session; there is no terminal phase.
type Phase int

const (
	PhaseAiming Phase = iota
	PhaseCharging
	PhaseInFlight
	PhaseResolve
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseAiming:
		return "Aiming"
	case PhaseCharging:
		return "Charging"
	case PhaseInFlight:
		return "InFlight"
	case PhaseResolve:
		return "Resolve"
	default:
		return "Unknown"
	}
}
