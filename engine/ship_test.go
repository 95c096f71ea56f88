package engine

import (
	"testing"

	"github.com/lixenwraith/rockstorm/vmath"
)

// TestWorld_Thrusting tests the thrust report follows keyboard thrust and the pointer deadzone
func TestWorld_Thrusting(t *testing.T) {
	far := vmath.Vec2{X: 500, Y: 900}
	near := vmath.Vec2{X: 510, Y: 500}

	cases := []struct {
		name string
		in   Intent
		want bool
	}{
		{"idle", Intent{}, false},
		{"forward", Intent{Thrust: 1}, true},
		{"reverse", Intent{Thrust: -1}, false},
		{"pointer far", Intent{PointerActive: true, PointerTarget: &far}, true},
		{"pointer near", Intent{PointerActive: true, PointerTarget: &near, Thrust: 1}, false},
		{"pointer without target", Intent{PointerActive: true, Thrust: 1}, true},
	}

	w := newTestWorld()
	if w.Thrusting(Intent{Thrust: 1}) {
		t.Errorf("Expected no thrust without a ship")
	}

	ship := SpawnPlayer(w, vmath.Vec3{X: 500, Y: 500})
	for _, tc := range cases {
		if got := w.Thrusting(tc.in); got != tc.want {
			t.Errorf("%s: expected thrusting %v, got %v", tc.name, tc.want, got)
		}
	}

	// Report matches what the step does to the ship
	Step(w, tickDt, Intent{PointerActive: true, PointerTarget: &far})
	if ship.Physics.LinearVel.Y <= 0 {
		t.Errorf("Expected pointer thrust to accelerate the ship, vy=%v", ship.Physics.LinearVel.Y)
	}

	w.GameOver = true
	if w.Thrusting(Intent{Thrust: 1}) {
		t.Errorf("Expected no thrust after game over")
	}
}
