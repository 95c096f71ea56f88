package engine

import (
	"math"

	"github.com/lixenwraith/rockstorm/core"
	"github.com/lixenwraith/rockstorm/event"
	"github.com/lixenwraith/rockstorm/vmath"
)

// Viewport edges for the drifting spawner
const (
	edgeTop = iota
	edgeRight
	edgeBottom
	edgeLeft
	edgeCount
)

// spawnAsteroids advances the spawn accumulator and spawns while it has reached the interval
// and the live asteroid count is below the cap
func spawnAsteroids(w *World, dt float64) {
	t := &w.Tuning
	w.SpawnAccumulator += dt
	if t.SpawnInterval <= 0 {
		return
	}

	count := w.Store.CountKind(core.KindAsteroid)
	for w.SpawnAccumulator >= t.SpawnInterval && count < t.MaxAsteroids {
		if SpawnDriftingAsteroid(w) == nil {
			break
		}
		w.SpawnAccumulator -= t.SpawnInterval
		count++
	}
}

// SpawnDriftingAsteroid places one asteroid just outside a random viewport edge, drifting toward the center
// Returns nil while the viewport has no area
func SpawnDriftingAsteroid(w *World) *core.Entity {
	if w.ViewportWidth <= 0 || w.ViewportHeight <= 0 {
		return nil
	}
	t := &w.Tuning
	rng := w.Rand
	width, height, margin := w.ViewportWidth, w.ViewportHeight, t.SpawnMargin

	// Positions along an edge span the margin ring, corners included
	alongX := vmath.RandRange(rng, -margin, width+margin)
	alongY := vmath.RandRange(rng, -margin, height+margin)

	var pos vmath.Vec3
	switch vmath.RandIntn(rng, edgeCount) {
	case edgeTop:
		pos = vmath.Vec3{X: alongX, Y: -margin}
	case edgeRight:
		pos = vmath.Vec3{X: width + margin, Y: alongY}
	case edgeBottom:
		pos = vmath.Vec3{X: alongX, Y: height + margin}
	default:
		pos = vmath.Vec3{X: -margin, Y: alongY}
	}

	toCenter := vmath.V2Sub(vmath.V3XY(w.Center()), vmath.V3XY(pos))
	heading := vmath.V2Angle(toCenter) + vmath.RandRange(rng, -t.SpawnAimJitter, t.SpawnAimJitter)
	speed := vmath.RandRange(rng, t.SpawnSpeedMin, t.SpawnSpeedMax)
	vel := vmath.V2Scale(vmath.V2FromAngle(heading), speed)

	scale := 1.0
	if n := len(t.ScaleTiers); n > 0 {
		scale = t.ScaleTiers[vmath.RandIntn(rng, n)]
	}
	scale *= 1 + vmath.RandRange(rng, -t.ScaleJitter, t.ScaleJitter)

	rock := w.Store.Insert(core.Entity{
		Kind: core.KindAsteroid,
		Transform: core.Transform{
			Position: pos,
			Rotation: vmath.QuatFromAngleZ(vmath.RandRange(rng, 0, 2*math.Pi)),
		},
		Physics: &core.Kinetic{
			LinearVel:  vmath.Vec3{X: vel.X, Y: vel.Y},
			AngularVel: vmath.Vec3{Z: vmath.RandRange(rng, -t.SpinMax, t.SpinMax)},
		},
		Scale:       scale,
		MeshVariant: vmath.RandIntn(rng, t.MeshVariants),
	})

	w.emit(event.GameEvent{
		Type:     event.EventAsteroidSpawned,
		Entity:   rock.ID,
		Position: vmath.V3XY(pos),
		Amount:   scale,
	})
	return rock
}

// despawnAsteroids removes asteroids beyond the despawn margin on any side, without fragments or sparks
func despawnAsteroids(w *World) {
	margin := w.Tuning.DespawnMargin
	minX, minY := -margin, -margin
	maxX, maxY := w.ViewportWidth+margin, w.ViewportHeight+margin

	var gone []core.EntityID
	w.Store.Each(func(e *core.Entity) bool {
		if e.Kind != core.KindAsteroid {
			return true
		}
		p := e.Transform.Position
		if p.X < minX || p.X > maxX || p.Y < minY || p.Y > maxY {
			gone = append(gone, e.ID)
		}
		return true
	})
	w.Store.RemoveBatch(gone)
}
