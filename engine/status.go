package engine

import (
	"github.com/lixenwraith/rockstorm/core"
	"github.com/lixenwraith/rockstorm/physics"
	"github.com/lixenwraith/rockstorm/status"
)

// PublishStatus writes the settled world into reg
// Called between ticks by the loop that owns w
func PublishStatus(w *World, reg *status.Registry) {
	reg.Ints.Get("sim.ticks").Store(int64(w.Tick))
	reg.Floats.Get("sim.time").Set(w.Time)
	reg.Ints.Get("entity.total").Store(int64(w.Store.Count()))

	counts := w.Store.CountByKind()
	for k := 0; k < core.KindCount; k++ {
		reg.Ints.Get("entity." + core.Kind(k).String()).Store(int64(counts[k]))
	}

	reg.Ints.Get("game.score").Store(int64(w.Score))
	reg.Ints.Get("game.lives").Store(int64(w.Lives))
	reg.Bools.Get("game.over").Store(w.GameOver)
	reg.Floats.Get("ship.health").Set(w.Health)
	reg.Ints.Get("contact.bullet_hits").Store(int64(len(w.BulletHits)))
	if w.Events != nil {
		reg.Ints.Get("event.dropped").Store(int64(w.Events.Dropped()))
	}

	var fastest float64
	w.Store.Each(func(e *core.Entity) bool {
		if e.Kind == core.KindAsteroid && e.Physics != nil {
			fastest = max(fastest, physics.PlanarSpeed(e.Physics))
		}
		return true
	})
	reg.Floats.Get("asteroid.max_speed").Set(fastest)
	reg.Floats.Get("asteroid.peak_speed").Max(fastest)
}
