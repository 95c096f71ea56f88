package engine

import (
	"math"

	"github.com/lixenwraith/rockstorm/core"
	"github.com/lixenwraith/rockstorm/event"
	"github.com/lixenwraith/rockstorm/parameter"
	"github.com/lixenwraith/rockstorm/vmath"
)

// DestroyAsteroid removes an asteroid hit by a bullet, scoring it and spawning a debris burst
// Asteroids above the fragment floor are replaced by children, returned in spawn order
// Returns false when id is not a live asteroid
func DestroyAsteroid(w *World, id core.EntityID) ([]*core.Entity, bool) {
	rock, ok := w.Store.Get(id)
	if !ok || rock.Kind != core.KindAsteroid {
		return nil, false
	}

	parent := rock.Clone()
	w.RemoveEntity(id)

	scale := parent.EffectiveScale()
	w.Score += scoreFor(scale)

	var base vmath.Vec2
	if parent.Physics != nil {
		base = vmath.V3XY(parent.Physics.LinearVel)
	}
	spawnDebris(w, parent.Transform.Position, scale, base)

	if scale <= parameter.FragmentMinScale {
		w.emit(event.GameEvent{
			Type:     event.EventAsteroidVanished,
			Entity:   id,
			Position: vmath.V3XY(parent.Transform.Position),
			Amount:   scale,
		})
		return nil, true
	}

	children := fragment(w, &parent)
	w.emit(event.GameEvent{
		Type:     event.EventAsteroidFragmented,
		Entity:   id,
		Position: vmath.V3XY(parent.Transform.Position),
		Amount:   scale,
	})
	return children, true
}

// fragment spawns the evenly spread children of parent, inert to each other until the collision delay passes
func fragment(w *World, parent *core.Entity) []*core.Entity {
	t := &w.Tuning
	rng := w.Rand
	childScale := parent.EffectiveScale() * parameter.FragmentScaleFactor
	enableAt := w.Time + parameter.FragmentCollisionDelay

	children := make([]*core.Entity, 0, parameter.FragmentCount)
	for i := 0; i < parameter.FragmentCount; i++ {
		angle := 2*math.Pi*float64(i)/parameter.FragmentCount + rng.Float64()*parameter.FragmentAngleJitter
		speed := vmath.RandRange(rng, parameter.FragmentSpeedMin, parameter.FragmentSpeedMax)
		vel := vmath.V2Scale(vmath.V2FromAngle(angle), speed)

		child := w.Store.Insert(core.Entity{
			Kind: core.KindAsteroid,
			Transform: core.Transform{
				Position: parent.Transform.Position,
				Rotation: vmath.QuatFromAngleZ(vmath.RandRange(rng, 0, 2*math.Pi)),
			},
			Physics: &core.Kinetic{
				LinearVel:  vmath.Vec3{X: vel.X, Y: vel.Y},
				AngularVel: vmath.Vec3{Z: vmath.RandRange(rng, -t.SpinMax, t.SpinMax)},
			},
			Scale:               childScale,
			MeshVariant:         nearbyMesh(parent.MeshVariant, vmath.RandIntn(rng, 3)-1, t.MeshVariants),
			CollisionEnableTime: enableAt,
		})
		children = append(children, child)
	}
	return children
}

// nearbyMesh offsets a mesh variant and wraps it into [0, variants)
func nearbyMesh(variant, offset, variants int) int {
	if variants <= 0 {
		return 0
	}
	m := (variant + offset) % variants
	if m < 0 {
		m += variants
	}
	return m
}

// scoreFor returns the points for destroying an asteroid of the given scale, smaller is worth more
func scoreFor(scale float64) int {
	switch {
	case scale >= parameter.ScoreLargeMinScale:
		return parameter.ScoreLargeAsteroid
	case scale >= parameter.ScoreMediumMinScale:
		return parameter.ScoreMediumAsteroid
	default:
		return parameter.ScoreSmallAsteroid
	}
}
