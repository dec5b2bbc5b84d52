// File: physics/integration.go
package physics

import "github.com/arnozoon/haxgo/stadium"

// Integrate advances every disc in discs one tick using semi-implicit
// Euler: velocity accumulates gravity first, position then
// advances by the updated velocity, and damping is applied last so it
// attenuates the velocity that will be used next tick, not this one.
// Discs with InvMass == 0 are immovable and skipped entirely.
func Integrate(discs []*stadium.Disc) {
	for _, d := range discs {
		if d.InvMass == 0 {
			continue
		}
		d.Velocity = d.Velocity.Add(d.Gravity)
		d.Position = d.Position.Add(d.Velocity)
		d.Velocity = d.Velocity.Scale(d.Damping)
	}
}
