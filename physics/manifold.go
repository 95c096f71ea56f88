package physics

import (
	"github.com/lixenwraith/rockstorm/core"
	"github.com/lixenwraith/rockstorm/vmath"
)

// Manifold is a detected contact between two entities for the current tick
// Role of A and B depends on the producing detector:
//   - DetectBulletAsteroid: A = bullet, B = asteroid, normal points from asteroid toward bullet
//   - DetectAsteroidAsteroid: A precedes B in snapshot order, normal points from A toward B
//   - DetectShipAsteroid: A = ship, B = asteroid, normal points from ship toward asteroid
type Manifold struct {
	A, B        core.EntityID
	Normal      vmath.Vec2
	Penetration float64
}

// AABB is an axis-aligned box in world units
type AABB struct {
	MinX, MinY, MaxX, MaxY float64
}

// Center returns the box midpoint
func (b AABB) Center() vmath.Vec2 {
	return vmath.Vec2{X: (b.MinX + b.MaxX) * 0.5, Y: (b.MinY + b.MaxY) * 0.5}
}
