package engine

import (
	"math"

	"github.com/lixenwraith/rockstorm/core"
	"github.com/lixenwraith/rockstorm/event"
	"github.com/lixenwraith/rockstorm/parameter"
	"github.com/lixenwraith/rockstorm/vmath"
)

// applyImpactDamage converts approach speed into damage unless the invincibility window is open
// Returns the damage dealt and whether it was applied
func applyImpactDamage(w *World, speed float64) (float64, bool) {
	if w.Invincible() {
		return 0, false
	}
	damage := vmath.Clamp(speed*parameter.DamagePerSpeed, parameter.DamageMin, parameter.DamageMax)
	w.Health = math.Max(0, w.Health-damage)
	w.LastDamageTime = w.Time
	return damage, true
}

// Invincible reports whether the post-damage window is still open
func (w *World) Invincible() bool {
	return w.Time-w.LastDamageTime < parameter.InvincibilitySeconds
}

// regenerateHealth heals at the regen rate once the ship has gone undamaged for the regen delay
func regenerateHealth(w *World, dt float64) {
	if w.Health >= w.MaxHealth {
		return
	}
	if w.Time-w.LastDamageTime < w.Tuning.RegenDelay {
		return
	}
	w.Health = math.Min(w.MaxHealth, w.Health+w.Tuning.RegenRate*dt)
}

// loseLife consumes a life at zero health
// With lives left the ship is restored at the viewport center, otherwise it is removed and the game ends
func loseLife(w *World, ship *core.Entity) {
	var vel vmath.Vec2
	if ship.Physics != nil {
		vel = vmath.V3XY(ship.Physics.LinearVel)
	}
	spawnDebris(w, ship.Transform.Position, 1, vel)

	if w.Lives > 0 {
		w.Lives--
	}
	w.emit(event.GameEvent{
		Type:     event.EventShipLost,
		Entity:   ship.ID,
		Position: vmath.V3XY(ship.Transform.Position),
		Amount:   float64(w.Lives),
	})

	if w.Lives == 0 {
		w.Health = 0
		w.RemoveEntity(ship.ID)
		w.GameOver = true
		w.emit(event.GameEvent{Type: event.EventGameOver, Entity: ship.ID})
		return
	}

	w.Health = w.MaxHealth
	ship.Transform.Position = w.Center()
	ship.Transform.Rotation = vmath.QuatIdentity
	ship.Physics = &core.Kinetic{}
	if w.Tuning.RespawnInvincible {
		w.LastDamageTime = w.Time
	}
}
