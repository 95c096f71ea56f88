package engine

import (
	"github.com/lixenwraith/rockstorm/core"
	"github.com/lixenwraith/rockstorm/physics"
)

// Step advances the world by dt seconds under the given control intent
//
// Order per tick:
//  1. advance world time
//  2. steer the ship (orient, thrust, fire, damp, clamp)
//  3. integrate velocities into positions
//  4. asteroid-asteroid contacts
//  5. spawn and despawn asteroids
//  6. expire bullets
//  7. bullet-asteroid contacts (destroy, fragment, sparks)
//  8. age and fade particles
//  9. ship-asteroid contacts (bounce, damage, lives)
//  10. regenerate ship health
//
// Without a ship every ship-dependent pass is skipped and the asteroid passes still run
func Step(w *World, dt float64, in Intent) {
	if dt < 0 {
		dt = 0
	}
	w.Time += dt
	w.Tick++

	in = in.Normalized()
	if ship := w.Ship(); ship != nil {
		steerShip(w, ship, in, dt)
	}

	w.Store.Each(func(e *core.Entity) bool {
		physics.Integrate(e, dt)
		return true
	})

	resolveAsteroidContacts(w)

	spawnAsteroids(w, dt)
	despawnAsteroids(w)

	expireBullets(w, dt)
	resolveBulletHits(w)

	fadeParticles(w, dt)

	resolveShipContacts(w)

	if w.Ship() != nil {
		regenerateHealth(w, dt)
	}
}
