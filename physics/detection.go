package physics

import (
	"math"

	"github.com/lixenwraith/rockstorm/core"
	"github.com/lixenwraith/rockstorm/parameter"
	"github.com/lixenwraith/rockstorm/vmath"
)

// Detectors are pure functions over an entity snapshot; none mutate entities
// Snapshot order defines the A/B assignment of asteroid pairs

// BoundsOf classifies an entity into its collision box, false for kinds without one
func BoundsOf(e *core.Entity) (AABB, bool) {
	var half float64
	switch e.Kind {
	case core.KindBullet:
		half = parameter.BulletHalfExtent
	case core.KindAsteroid:
		half = AsteroidRadius(e)
	default:
		return AABB{}, false
	}
	p := e.Transform.Position
	return AABB{
		MinX: p.X - half,
		MinY: p.Y - half,
		MaxX: p.X + half,
		MaxY: p.Y + half,
	}, true
}

// AsteroidRadius returns the circle radius (and box half-extent) of an asteroid
func AsteroidRadius(e *core.Entity) float64 {
	return parameter.AsteroidBaseRadius * e.EffectiveScale()
}

// IntersectAABB returns the separating normal and penetration of two boxes
// The normal lies on the axis of smaller overlap (Y on a tie) and points from b toward a,
// a zero center delta on that axis resolves to the positive direction
func IntersectAABB(a, b AABB) (normal vmath.Vec2, penetration float64, ok bool) {
	overlapX := math.Min(a.MaxX, b.MaxX) - math.Max(a.MinX, b.MinX)
	overlapY := math.Min(a.MaxY, b.MaxY) - math.Max(a.MinY, b.MinY)
	if overlapX <= 0 || overlapY <= 0 {
		return vmath.Vec2{}, 0, false
	}

	ca, cb := a.Center(), b.Center()
	if overlapX < overlapY {
		nx := 1.0
		if ca.X < cb.X {
			nx = -1
		}
		return vmath.Vec2{X: nx}, overlapX, true
	}
	ny := 1.0
	if ca.Y < cb.Y {
		ny = -1
	}
	return vmath.Vec2{Y: ny}, overlapY, true
}

// DetectBulletAsteroid runs the all-pairs box test between every bullet and every asteroid
func DetectBulletAsteroid(entities []*core.Entity) []Manifold {
	var bullets, asteroids []*core.Entity
	for _, e := range entities {
		switch e.Kind {
		case core.KindBullet:
			bullets = append(bullets, e)
		case core.KindAsteroid:
			asteroids = append(asteroids, e)
		}
	}
	if len(bullets) == 0 || len(asteroids) == 0 {
		return nil
	}

	asteroidBoxes := make([]AABB, len(asteroids))
	for i, a := range asteroids {
		asteroidBoxes[i], _ = BoundsOf(a)
	}

	var manifolds []Manifold
	for _, b := range bullets {
		bulletBox, _ := BoundsOf(b)
		for i, a := range asteroids {
			normal, pen, ok := IntersectAABB(bulletBox, asteroidBoxes[i])
			if !ok {
				continue
			}
			manifolds = append(manifolds, Manifold{
				A:           b.ID,
				B:           a.ID,
				Normal:      normal,
				Penetration: pen,
			})
		}
	}
	return manifolds
}

// DetectAsteroidAsteroid runs the circle test over every pair of collision-enabled asteroids
// Asteroids whose CollisionEnableTime is after now are skipped entirely
func DetectAsteroidAsteroid(entities []*core.Entity, now float64) []Manifold {
	var asteroids []*core.Entity
	for _, e := range entities {
		if e.Kind == core.KindAsteroid && e.CollisionEnabled(now) {
			asteroids = append(asteroids, e)
		}
	}

	var manifolds []Manifold
	for i := 0; i < len(asteroids); i++ {
		a := asteroids[i]
		ra := AsteroidRadius(a)
		for j := i + 1; j < len(asteroids); j++ {
			b := asteroids[j]
			if m, ok := circleContact(a, b, ra, AsteroidRadius(b)); ok {
				manifolds = append(manifolds, m)
			}
		}
	}
	return manifolds
}

// FindShip returns the first player ship in snapshot order, nil when absent
func FindShip(entities []*core.Entity) *core.Entity {
	for _, e := range entities {
		if e.Kind == core.KindPlayerShip {
			return e
		}
	}
	return nil
}

// DetectShipAsteroid runs the circle test between the first ship and every asteroid
func DetectShipAsteroid(entities []*core.Entity) []Manifold {
	ship := FindShip(entities)
	if ship == nil {
		return nil
	}

	var manifolds []Manifold
	for _, e := range entities {
		if e.Kind != core.KindAsteroid {
			continue
		}
		if m, ok := circleContact(ship, e, parameter.ShipRadius, AsteroidRadius(e)); ok {
			manifolds = append(manifolds, m)
		}
	}
	return manifolds
}

// circleContact builds an a→b manifold when center distance is below ra+rb
// Coincident centers substitute CoincidentDistance and separate along +X
func circleContact(a, b *core.Entity, ra, rb float64) (Manifold, bool) {
	d := vmath.V2Sub(vmath.V3XY(b.Transform.Position), vmath.V3XY(a.Transform.Position))
	distSq := vmath.V2MagSq(d)
	minDist := ra + rb
	if distSq >= minDist*minDist {
		return Manifold{}, false
	}

	dist := math.Sqrt(distSq)
	normal := vmath.Vec2{X: 1}
	if dist == 0 {
		dist = parameter.CoincidentDistance
	} else {
		normal = vmath.V2Scale(d, 1/dist)
	}

	return Manifold{
		A:           a.ID,
		B:           b.ID,
		Normal:      normal,
		Penetration: minDist - dist,
	}, true
}
