package vmath

import (
	"math"
)

// Vec3 is a float64 3D vector for entity positions and velocities
// Only X and Y are dynamically meaningful, Z is carried through untouched
type Vec3 struct {
	X, Y, Z float64
}

func V3Add(a, b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3Sub(a, b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3Scale(v Vec3, s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func V3MagSq(v Vec3) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3Mag(v Vec3) float64 {
	return math.Sqrt(V3MagSq(v))
}

func V3Normalize(v Vec3) Vec3 {
	mag := V3Mag(v)
	if mag == 0 {
		return Vec3{}
	}
	inv := 1.0 / mag
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3XY drops Z
func V3XY(v Vec3) Vec2 {
	return Vec2{v.X, v.Y}
}

// V3AddXY offsets the planar components by d, Z unchanged
func V3AddXY(v Vec3, d Vec2) Vec3 {
	return Vec3{v.X + d.X, v.Y + d.Y, v.Z}
}
