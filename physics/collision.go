package physics

import (
	"github.com/lixenwraith/rockstorm/core"
	"github.com/lixenwraith/rockstorm/vmath"
)

// Contact reports what Resolve did for one manifold
type Contact struct {
	// ApproachSpeed is the relative velocity along the normal before the impulse
	// Positive means closing, zero or negative means already separating
	ApproachSpeed float64
	// Impulse is the scalar impulse applied, zero when separating
	Impulse float64
	// Corrected is the distance the pair was pushed apart
	Corrected float64
}

// Resolve applies single-pass positional correction and a restitution impulse for one manifold
// a and b must match manifold sides A and B; entities without physics state are skipped
func Resolve(a, b *core.Entity, m Manifold, p *CollisionProfile) (Contact, bool) {
	if a == nil || b == nil || a.Physics == nil || b.Physics == nil {
		return Contact{}, false
	}

	massA := p.MassA
	if massA <= 0 {
		massA = AreaMass(a.EffectiveScale())
	}
	massB := p.MassB
	if massB <= 0 {
		massB = AreaMass(b.EffectiveScale())
	}
	totalMass := massA + massB

	var c Contact

	// Positional correction beyond slop, split by the other body's mass share
	if depth := m.Penetration - p.Slop; depth > 0 {
		moveA := depth * massB / totalMass
		moveB := depth * massA / totalMass
		a.Transform.Position = vmath.V3AddXY(a.Transform.Position, vmath.V2Scale(m.Normal, -moveA))
		b.Transform.Position = vmath.V3AddXY(b.Transform.Position, vmath.V2Scale(m.Normal, moveB))
		c.Corrected = depth
	}

	// Relative velocity along the normal, positive when A closes on B
	relVel := vmath.V2Sub(vmath.V3XY(a.Physics.LinearVel), vmath.V3XY(b.Physics.LinearVel))
	c.ApproachSpeed = vmath.V2Dot(relVel, m.Normal)
	if c.ApproachSpeed <= 0 {
		return c, true
	}

	invMassSum := 1/massA + 1/massB
	j := (1 + p.Restitution) * c.ApproachSpeed / invMassSum
	c.Impulse = j

	a.Physics.LinearVel = vmath.V3AddXY(a.Physics.LinearVel, vmath.V2Scale(m.Normal, -j/massA))
	b.Physics.LinearVel = vmath.V3AddXY(b.Physics.LinearVel, vmath.V2Scale(m.Normal, j/massB))

	return c, true
}
