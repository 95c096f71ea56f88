package physics

import (
	"math"

	"github.com/lixenwraith/rockstorm/core"
	"github.com/lixenwraith/rockstorm/vmath"
)

// Integrate performs explicit Euler integration: p = p + v*dt, θ = θ + ω.z*dt
// Entities without physics state are left untouched
func Integrate(e *core.Entity, dt float64) {
	k := e.Physics
	if k == nil {
		return
	}
	e.Transform.Position.X += k.LinearVel.X * dt
	e.Transform.Position.Y += k.LinearVel.Y * dt
	if k.AngularVel.Z != 0 {
		e.Transform.Rotation = vmath.QuatMul(e.Transform.Rotation, vmath.QuatFromAngleZ(k.AngularVel.Z*dt))
	}
}

// Accelerate adds dir*accel*dt to planar velocity
func Accelerate(k *core.Kinetic, dir vmath.Vec2, accel, dt float64) {
	k.LinearVel.X += dir.X * accel * dt
	k.LinearVel.Y += dir.Y * accel * dt
}

// Damp applies exponential damping v *= e^(-rate*dt) to planar velocity
func Damp(k *core.Kinetic, rate, dt float64) {
	f := math.Exp(-rate * dt)
	k.LinearVel.X *= f
	k.LinearVel.Y *= f
}

// ClampVelocity limits each planar velocity component to [-max, max]
func ClampVelocity(k *core.Kinetic, max float64) {
	k.LinearVel.X = vmath.ClampAbs(k.LinearVel.X, max)
	k.LinearVel.Y = vmath.ClampAbs(k.LinearVel.Y, max)
}

// PlanarSpeed returns the XY speed of k
func PlanarSpeed(k *core.Kinetic) float64 {
	return math.Hypot(k.LinearVel.X, k.LinearVel.Y)
}
