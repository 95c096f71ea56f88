package core

import "github.com/lixenwraith/rockstorm/vmath"

// Kinetic is the optional physics state of an entity
// An entity without Kinetic is kinematically static
type Kinetic struct {
	// LinearVel is in world units per second, Z unused
	LinearVel vmath.Vec3
	// AngularVel is in radians per second, only Z is integrated
	AngularVel vmath.Vec3
}

// Transform places an entity in the world
type Transform struct {
	Position vmath.Vec3
	// Rotation is always a rotation about Z
	Rotation vmath.Quat
}
