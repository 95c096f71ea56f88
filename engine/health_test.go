package engine

import (
	"testing"

	"github.com/lixenwraith/rockstorm/core"
	"github.com/lixenwraith/rockstorm/event"
	"github.com/lixenwraith/rockstorm/parameter"
	"github.com/lixenwraith/rockstorm/vmath"
)

// TestHealth_StaysInBounds tests arbitrary damage and regen sequences keep health in [0, max]
func TestHealth_StaysInBounds(t *testing.T) {
	w := newTestWorld()
	SpawnPlayer(w, w.Center())
	rng := vmath.NewFastRand(7)

	for i := 0; i < 5000; i++ {
		w.Time += rng.Float64() * 0.5
		if rng.Float64() < 0.5 {
			applyImpactDamage(w, rng.Float64()*2000)
		} else {
			regenerateHealth(w, rng.Float64()*2)
		}
		if w.Health < 0 || w.Health > w.MaxHealth {
			t.Fatalf("Health %v outside [0, %v] at iteration %d", w.Health, w.MaxHealth, i)
		}
	}
}

// TestApplyImpactDamage tests damage clamping and the invincibility gate
func TestApplyImpactDamage(t *testing.T) {
	cases := []struct {
		speed float64
		want  float64
	}{
		{10, parameter.DamageMin},
		{200, 10},
		{10000, parameter.DamageMax},
	}
	for _, tc := range cases {
		w := newTestWorld()
		w.Time = 10
		got, ok := applyImpactDamage(w, tc.speed)
		if !ok || got != tc.want {
			t.Errorf("speed %v: expected %v damage, got %v (applied %v)", tc.speed, tc.want, got, ok)
		}
		if w.Health != w.MaxHealth-tc.want {
			t.Errorf("speed %v: expected health %v, got %v", tc.speed, w.MaxHealth-tc.want, w.Health)
		}

		w.Time += parameter.InvincibilitySeconds / 2
		if _, ok := applyImpactDamage(w, tc.speed); ok {
			t.Errorf("speed %v: expected second hit inside the window to be ignored", tc.speed)
		}
		w.Time += parameter.InvincibilitySeconds
		if _, ok := applyImpactDamage(w, tc.speed); !ok {
			t.Errorf("speed %v: expected hit after the window to apply", tc.speed)
		}
	}
}

// TestRegenerateHealth tests regen waits for the delay and clamps to max
func TestRegenerateHealth(t *testing.T) {
	w := newTestWorld()
	SpawnPlayer(w, vmath.Vec3{X: 100, Y: 100})
	w.Time = 10
	w.Health = 50
	w.LastDamageTime = 8

	Step(w, 0.5, Intent{})
	if w.Health != 50 {
		t.Fatalf("Expected no regen before the delay, got %v", w.Health)
	}

	Step(w, 0.5, Intent{})
	want := 50 + w.Tuning.RegenRate*0.5
	if w.Health != want {
		t.Errorf("Expected health %v after regen, got %v", want, w.Health)
	}

	w.Health = w.MaxHealth - 0.1
	Step(w, 1, Intent{})
	if w.Health != w.MaxHealth {
		t.Errorf("Expected regen clamped to max, got %v", w.Health)
	}
}

// TestStep_LoseLife tests lethal contact consumes a life and restores the ship at the center
func TestStep_LoseLife(t *testing.T) {
	w := newTestWorld()
	ship := SpawnPlayer(w, vmath.Vec3{X: 200, Y: 200})
	insertAsteroid(w, 250, 200, -300, 0, 1)
	w.Health = 5

	Step(w, tickDt, Intent{})

	if w.Lives != parameter.InitialLives-1 {
		t.Fatalf("Expected %d lives, got %d", parameter.InitialLives-1, w.Lives)
	}
	if w.Health != w.MaxHealth {
		t.Errorf("Expected health restored, got %v", w.Health)
	}
	if ship.Transform.Position != w.Center() {
		t.Errorf("Expected ship recentred, got %+v", ship.Transform.Position)
	}
	if ship.Physics.LinearVel != (vmath.Vec3{}) {
		t.Errorf("Expected ship at rest, got %+v", ship.Physics.LinearVel)
	}
	if w.LastDamageTime != w.Time {
		t.Errorf("Expected fresh invincibility window on respawn")
	}
	if w.Store.CountKind(core.KindDebris) == 0 {
		t.Errorf("Expected a debris burst at the lost ship")
	}

	seen := drainTypes(w)
	if seen[event.EventShipDamaged] != 1 || seen[event.EventShipLost] != 1 || seen[event.EventGameOver] != 0 {
		t.Errorf("Unexpected events %v", seen)
	}
}

// TestStep_GameOver tests the last life removes the ship while asteroids keep running
func TestStep_GameOver(t *testing.T) {
	w := newTestWorld()
	SpawnPlayer(w, vmath.Vec3{X: 200, Y: 200})
	rock := insertAsteroid(w, 250, 200, -300, 0, 1)
	w.Health = 5
	w.Lives = 1

	Step(w, tickDt, Intent{})

	if !w.GameOver || w.Lives != 0 {
		t.Fatalf("Expected game over with 0 lives, got over=%v lives=%d", w.GameOver, w.Lives)
	}
	if w.Ship() != nil {
		t.Fatalf("Expected ship removed")
	}
	if w.Health != 0 {
		t.Errorf("Expected health 0 at game over, got %v", w.Health)
	}
	if got := drainTypes(w)[event.EventGameOver]; got != 1 {
		t.Errorf("Expected one GameOver event, got %d", got)
	}

	x := rock.Transform.Position.X
	for i := 0; i < 10; i++ {
		Step(w, tickDt, Intent{Fire: true, Thrust: 1})
		checkWorld(t, w)
	}
	if rock.Transform.Position.X == x {
		t.Errorf("Expected asteroid to keep moving after game over")
	}
}
