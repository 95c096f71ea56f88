package engine

import (
	"github.com/lixenwraith/rockstorm/vmath"
)

// Intent is the normalized control input for one tick
type Intent struct {
	Thrust float64 // [-1, 1], positive forward
	Rotate float64 // [-1, 1], positive counter-clockwise in world space (Y down), clockwise on screen
	Fire   bool

	// PointerActive makes the ship face PointerTarget and thrust while it is beyond the deadzone
	PointerActive bool
	PointerTarget *vmath.Vec2
}

// Normalized clamps the scalar axes into [-1, 1]
func (in Intent) Normalized() Intent {
	in.Thrust = vmath.Clamp(in.Thrust, -1, 1)
	in.Rotate = vmath.Clamp(in.Rotate, -1, 1)
	return in
}

// pointerMode reports whether pointer steering takes precedence this tick
func (in Intent) pointerMode() bool {
	return in.PointerActive && in.PointerTarget != nil
}

// Thrusting reports whether in accelerates a ship at pos forward
// Pointer mode thrusts while the target lies beyond deadzone, keyboard mode on positive thrust
func (in Intent) Thrusting(pos vmath.Vec2, deadzone float64) bool {
	if in.pointerMode() {
		return vmath.V2Mag(vmath.V2Sub(*in.PointerTarget, pos)) > deadzone
	}
	return in.Thrust > 0
}
