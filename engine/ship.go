package engine

import (
	"github.com/lixenwraith/rockstorm/core"
	"github.com/lixenwraith/rockstorm/event"
	"github.com/lixenwraith/rockstorm/physics"
	"github.com/lixenwraith/rockstorm/vmath"
)

// SpawnPlayer creates the ship at rest at pos facing +X
func SpawnPlayer(w *World, pos vmath.Vec3) *core.Entity {
	return w.Store.Insert(core.Entity{
		Kind: core.KindPlayerShip,
		Transform: core.Transform{
			Position: pos,
			Rotation: vmath.QuatIdentity,
		},
		Physics: &core.Kinetic{},
	})
}

// Thrusting reports whether in drives the current ship forward, false without a ship or after game over
func (w *World) Thrusting(in Intent) bool {
	ship := w.Ship()
	if ship == nil || w.GameOver {
		return false
	}
	return in.Thrusting(vmath.V3XY(ship.Transform.Position), w.Tuning.PointerDeadzone)
}

// steerShip applies one tick of control: orient, thrust, fire, damp, clamp
// Firing reads the velocity after thrust and before damping
func steerShip(w *World, ship *core.Entity, in Intent, dt float64) {
	if ship.Physics == nil {
		ship.Physics = &core.Kinetic{}
	}
	t := &w.Tuning

	angle := vmath.AngleZ(ship.Transform.Rotation)
	thrust := in.Thrust
	damping := t.KeyboardDamping

	if in.pointerMode() {
		delta := vmath.V2Sub(*in.PointerTarget, vmath.V3XY(ship.Transform.Position))
		if vmath.V2MagSq(delta) > 0 {
			angle = vmath.V2Angle(delta)
		}
		thrust = 0
		if in.Thrusting(vmath.V3XY(ship.Transform.Position), t.PointerDeadzone) {
			thrust = 1
		}
		damping = t.PointerDamping
	} else {
		angle += in.Rotate * t.TurnRate * dt
	}
	ship.Transform.Rotation = vmath.QuatFromAngleZ(angle)

	forward := vmath.Forward(ship.Transform.Rotation)
	if thrust != 0 {
		physics.Accelerate(ship.Physics, forward, thrust*t.ThrustAccel, dt)
	}

	if in.Fire {
		fire(w, ship, forward)
	}

	physics.Damp(ship.Physics, damping, dt)
	physics.ClampVelocity(ship.Physics, t.MaxSpeed)
}

// fire spawns one bullet when the cooldown gate is open, otherwise does nothing
func fire(w *World, ship *core.Entity, forward vmath.Vec2) *core.Entity {
	if w.Time < w.NextFireTime {
		return nil
	}
	t := &w.Tuning

	muzzle := vmath.V3AddXY(ship.Transform.Position, vmath.V2Scale(forward, t.MuzzleOffset))
	vel := vmath.V2Add(vmath.V3XY(ship.Physics.LinearVel), vmath.V2Scale(forward, t.BulletSpeed))

	bullet := w.Store.Insert(core.Entity{
		Kind: core.KindBullet,
		Transform: core.Transform{
			Position: muzzle,
			Rotation: ship.Transform.Rotation,
		},
		Physics: &core.Kinetic{LinearVel: vmath.Vec3{X: vel.X, Y: vel.Y}},
	})
	w.BulletLifetimes[bullet.ID] = newLifetime(t.BulletLifetime)
	w.NextFireTime = w.Time + t.FireCooldown

	w.emit(event.GameEvent{
		Type:     event.EventBulletFired,
		Entity:   bullet.ID,
		Position: vmath.V3XY(muzzle),
	})
	return bullet
}
