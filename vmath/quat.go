package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Quat is a unit quaternion; this package only ever builds rotations about Z,
// so X and Y stay zero and the angle round-trips through AngleZ
type Quat struct {
	X, Y, Z, W float64
}

// QuatIdentity is the zero rotation
var QuatIdentity = Quat{W: 1}

var axisZ = mgl64.Vec3{0, 0, 1}

// QuatFromAngleZ builds (0, 0, sin(θ/2), cos(θ/2))
func QuatFromAngleZ(theta float64) Quat {
	return quatFromMgl(mgl64.QuatRotate(theta, axisZ))
}

// AngleZ recovers θ from a z-rotation quaternion, result in (-π, π]
func AngleZ(q Quat) float64 {
	z, w := q.Z, q.W
	// q and -q are the same rotation
	if w < 0 {
		z, w = -z, -w
	}
	return 2 * math.Atan2(z, w)
}

// QuatMul composes rotations, applying b then a, renormalised against drift
func QuatMul(a, b Quat) Quat {
	return quatFromMgl(a.mgl().Mul(b.mgl()).Normalize())
}

// Forward returns the unit heading of q in the XY plane
func Forward(q Quat) Vec2 {
	v := q.mgl().Rotate(mgl64.Vec3{1, 0, 0})
	return Vec2{v[0], v[1]}
}

func (q Quat) mgl() mgl64.Quat {
	return mgl64.Quat{W: q.W, V: mgl64.Vec3{q.X, q.Y, q.Z}}
}

func quatFromMgl(m mgl64.Quat) Quat {
	return Quat{X: m.V[0], Y: m.V[1], Z: m.V[2], W: m.W}
}
