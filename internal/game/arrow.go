package game

import "github.com/rafaelantao/tui-archery/internal/core"

// Arrow is the live projectile. Exactly one Arrow exists while a shot is in
// flight; Origin and LaunchVelocity never change after creation so the hit
// point can be re-derived analytically regardless of integration step size.
type Arrow struct {
	Position       core.Vec3
	Velocity       core.Vec3
	Origin         core.Vec3
	LaunchVelocity core.Vec3
	FlightTime     float64
}

// Advance integrates one tick of flight with semi-implicit Euler: gravity
// accelerates the vertical axis, then the position moves by the updated
// velocity. This drives the on-screen arrow only; scoring uses the analytic
// intersection so the outcome does not depend on dt.
func (a *Arrow) Advance(dt, gravity float64) {
	a.FlightTime += dt
	a.Velocity.Z -= gravity * dt
	a.Position = a.Position.Add(a.Velocity.Scale(dt))
}
