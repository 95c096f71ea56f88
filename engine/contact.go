package engine

import (
	"github.com/lixenwraith/rockstorm/event"
	"github.com/lixenwraith/rockstorm/physics"
	"github.com/lixenwraith/rockstorm/vmath"
)

// Each pass collects its manifolds over a fresh snapshot before mutating the store
// Manifolds naming an entity removed earlier in the same pass are skipped

// resolveAsteroidContacts bounces collision-enabled asteroids off each other
func resolveAsteroidContacts(w *World) {
	manifolds := physics.DetectAsteroidAsteroid(w.Store.Snapshot(), w.Time)
	for _, m := range manifolds {
		a, okA := w.Store.Get(m.A)
		b, okB := w.Store.Get(m.B)
		if !okA || !okB {
			continue
		}
		physics.Resolve(a, b, m, &physics.RockToRock)
	}
}

// resolveBulletHits destroys every hit asteroid and its bullet, with a spark burst at each impact
// The full manifold list stays on the world until the next tick
func resolveBulletHits(w *World) {
	w.BulletHits = physics.DetectBulletAsteroid(w.Store.Snapshot())
	for _, m := range w.BulletHits {
		bullet, okB := w.Store.Get(m.A)
		rock, okR := w.Store.Get(m.B)
		if !okB || !okR {
			continue
		}

		impact := bullet.Transform.Position
		var dir vmath.Vec2
		if bullet.Physics != nil {
			dir = vmath.V3XY(bullet.Physics.LinearVel)
		}

		w.emit(event.GameEvent{
			Type:     event.EventBulletHit,
			Entity:   bullet.ID,
			Other:    rock.ID,
			Position: vmath.V3XY(impact),
			Amount:   rock.EffectiveScale(),
		})

		spawnSparks(w, impact, dir)
		DestroyAsteroid(w, rock.ID)
		w.RemoveEntity(bullet.ID)
	}
}

// resolveShipContacts bounces the ship off asteroids and applies gated impact damage
func resolveShipContacts(w *World) {
	manifolds := physics.DetectShipAsteroid(w.Store.Snapshot())
	for _, m := range manifolds {
		ship, okS := w.Store.Get(m.A)
		rock, okR := w.Store.Get(m.B)
		if !okS || !okR {
			continue
		}

		c, ok := physics.Resolve(ship, rock, m, &physics.ShipToRock)
		if !ok || c.ApproachSpeed <= 0 {
			continue
		}

		if damage, dealt := applyImpactDamage(w, c.ApproachSpeed); dealt {
			w.emit(event.GameEvent{
				Type:     event.EventShipDamaged,
				Entity:   ship.ID,
				Other:    rock.ID,
				Position: vmath.V3XY(ship.Transform.Position),
				Amount:   damage,
			})
		}

		if w.Health <= 0 {
			loseLife(w, ship)
			// Ship moved or is gone, remaining manifolds are stale
			return
		}
	}
}
