package engine

import (
	"github.com/lixenwraith/rockstorm/component"
	"github.com/lixenwraith/rockstorm/core"
	"github.com/lixenwraith/rockstorm/event"
	"github.com/lixenwraith/rockstorm/parameter"
	"github.com/lixenwraith/rockstorm/physics"
	"github.com/lixenwraith/rockstorm/vmath"
)

// World is the whole mutable simulation state
// Owned by the goroutine calling Step; collaborators read it between ticks
type World struct {
	Store *Store

	// Player progress
	Score          int
	Lives          int
	Health         float64
	MaxHealth      float64
	LastDamageTime float64
	GameOver       bool

	// Clock
	Time float64
	Tick uint64

	// NextFireTime gates the weapon, fire succeeds when Time >= NextFireTime
	NextFireTime float64

	// Lifetimes of bullets and fading particles, keyed by entity
	BulletLifetimes map[core.EntityID]component.Lifetime
	Fadeouts        map[core.EntityID]component.Fadeout

	// BulletHits holds the bullet-asteroid manifolds of the latest tick
	BulletHits []physics.Manifold

	// Viewport bounds for spawning and despawning
	ViewportWidth  float64
	ViewportHeight float64

	SpawnAccumulator float64

	Tuning parameter.Tuning
	Rand   vmath.Rand
	Events *event.Queue
}

// NewWorld creates a world with full health and no entities
// A nil rng is replaced by a fixed-seed generator
func NewWorld(width, height float64, rng vmath.Rand) *World {
	if rng == nil {
		rng = vmath.NewFastRand(1)
	}
	return &World{
		Store:           NewStore(),
		Lives:           parameter.InitialLives,
		Health:          parameter.InitialMaxHealth,
		MaxHealth:       parameter.InitialMaxHealth,
		LastDamageTime:  parameter.NeverDamagedTime,
		BulletLifetimes: make(map[core.EntityID]component.Lifetime),
		Fadeouts:        make(map[core.EntityID]component.Fadeout),
		ViewportWidth:   width,
		ViewportHeight:  height,
		Tuning:          parameter.DefaultTuning(),
		Rand:            rng,
		Events:          event.NewQueue(),
	}
}

// Ship returns the first player ship in insertion order, nil when none is alive
func (w *World) Ship() *core.Entity {
	var ship *core.Entity
	w.Store.Each(func(e *core.Entity) bool {
		if e.Kind == core.KindPlayerShip {
			ship = e
			return false
		}
		return true
	})
	return ship
}

// Center returns the viewport center
func (w *World) Center() vmath.Vec3 {
	return vmath.Vec3{X: w.ViewportWidth / 2, Y: w.ViewportHeight / 2}
}

// Resize updates viewport bounds used by spawn and despawn
func (w *World) Resize(width, height float64) {
	w.ViewportWidth = width
	w.ViewportHeight = height
}

// RemoveEntity deletes an entity together with any lifetime tracking it owns
func (w *World) RemoveEntity(id core.EntityID) bool {
	delete(w.BulletLifetimes, id)
	delete(w.Fadeouts, id)
	return w.Store.Remove(id)
}

func (w *World) emit(ev event.GameEvent) {
	if w.Events != nil {
		w.Events.Push(ev)
	}
}
