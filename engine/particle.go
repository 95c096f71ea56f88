package engine

import (
	"math"

	"github.com/lixenwraith/rockstorm/core"
	"github.com/lixenwraith/rockstorm/vmath"
)

// spawnSparks emits the impact burst spread around dir, a zero dir sprays in every direction
func spawnSparks(w *World, at vmath.Vec3, dir vmath.Vec2) {
	t := &w.Tuning
	base := vmath.V2Angle(dir)
	spread := t.SparkSpread
	if vmath.V2MagSq(dir) == 0 {
		spread = math.Pi
	}

	for i := 0; i < t.SparkCount; i++ {
		angle := base + vmath.RandRange(w.Rand, -spread, spread)
		speed := vmath.RandRange(w.Rand, t.SparkSpeedMin, t.SparkSpeedMax)
		life := vmath.RandRange(w.Rand, t.SparkLifetimeMin, t.SparkLifetimeMax)
		spawnParticle(w, core.KindSpark, at, vmath.V2Scale(vmath.V2FromAngle(angle), speed), life)
	}
}

// spawnDebris emits a burst of fading fragments proportional to scale, inheriting base velocity
func spawnDebris(w *World, at vmath.Vec3, scale float64, base vmath.Vec2) {
	t := &w.Tuning
	count := int(math.Ceil(t.DebrisPerScale * scale))
	if count < t.DebrisMin {
		count = t.DebrisMin
	}

	for i := 0; i < count; i++ {
		angle := vmath.RandRange(w.Rand, 0, 2*math.Pi)
		speed := vmath.RandRange(w.Rand, t.DebrisSpeedMin, t.DebrisSpeedMax)
		life := vmath.RandRange(w.Rand, t.DebrisLifetimeMin, t.DebrisLifetimeMax)
		vel := vmath.V2Add(base, vmath.V2Scale(vmath.V2FromAngle(angle), speed))
		spawnParticle(w, core.KindDebris, at, vel, life)
	}
}

func spawnParticle(w *World, kind core.Kind, at vmath.Vec3, vel vmath.Vec2, life float64) *core.Entity {
	p := w.Store.Insert(core.Entity{
		Kind: kind,
		Transform: core.Transform{
			Position: at,
			Rotation: vmath.QuatFromAngleZ(vmath.V2Angle(vel)),
		},
		Physics:    &core.Kinetic{LinearVel: vmath.Vec3{X: vel.X, Y: vel.Y}},
		Opacity:    1,
		HasOpacity: true,
	})
	w.Fadeouts[p.ID] = newFadeout(life)
	return p
}
