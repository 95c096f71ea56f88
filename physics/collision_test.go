package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/rockstorm/core"
	"github.com/lixenwraith/rockstorm/parameter"
	"github.com/lixenwraith/rockstorm/vmath"
)

// TestResolve_HeadOnEqualMass tests equal and opposite velocities come back scaled by restitution
func TestResolve_HeadOnEqualMass(t *testing.T) {
	a := newAsteroid(1, 0, 0, 1)
	b := newAsteroid(2, 70, 0, 1)
	a.Physics.LinearVel = vmath.Vec3{X: 50}
	b.Physics.LinearVel = vmath.Vec3{X: -50}

	ms := DetectAsteroidAsteroid([]*core.Entity{a, b}, 0)
	if len(ms) != 1 {
		t.Fatalf("Expected 1 contact, got %d", len(ms))
	}

	c, ok := Resolve(a, b, ms[0], &RockToRock)
	if !ok {
		t.Fatal("Expected contact to resolve")
	}
	if math.Abs(c.ApproachSpeed-100) > tol {
		t.Errorf("Expected approach speed 100, got %v", c.ApproachSpeed)
	}

	want := 50 * parameter.RockRestitution
	if math.Abs(a.Physics.LinearVel.X+want) > tol || math.Abs(b.Physics.LinearVel.X-want) > tol {
		t.Errorf("Expected velocities ∓%v, got %v and %v", want, a.Physics.LinearVel.X, b.Physics.LinearVel.X)
	}

	// Residual penetration must not exceed slop
	dist := b.Transform.Position.X - a.Transform.Position.X
	residual := 2*parameter.AsteroidBaseRadius - dist
	if residual > parameter.RockSlop+tol {
		t.Errorf("Expected residual penetration <= slop, got %v", residual)
	}
	if math.Abs(a.Transform.Position.X+b.Transform.Position.X-70) > tol {
		t.Errorf("Expected symmetric correction about the midpoint, got %v and %v",
			a.Transform.Position.X, b.Transform.Position.X)
	}
}

// TestResolve_Separating tests that separating pairs get no impulse
func TestResolve_Separating(t *testing.T) {
	a := newAsteroid(1, 0, 0, 1)
	b := newAsteroid(2, 79.5, 0, 1)
	a.Physics.LinearVel = vmath.Vec3{X: -10}
	b.Physics.LinearVel = vmath.Vec3{X: 10}

	m := Manifold{A: 1, B: 2, Normal: vmath.Vec2{X: 1}, Penetration: 0.5}
	c, ok := Resolve(a, b, m, &RockToRock)
	if !ok {
		t.Fatal("Expected contact to resolve")
	}
	if c.Impulse != 0 || a.Physics.LinearVel.X != -10 || b.Physics.LinearVel.X != 10 {
		t.Errorf("Expected untouched velocities, got %+v a=%v b=%v", c, a.Physics.LinearVel.X, b.Physics.LinearVel.X)
	}
	// Penetration under slop leaves positions alone
	if a.Transform.Position.X != 0 || b.Transform.Position.X != 79.5 {
		t.Errorf("Expected no correction under slop")
	}
}

// TestResolve_MassWeighting tests lighter bodies move further and momentum is conserved
func TestResolve_MassWeighting(t *testing.T) {
	ship := newShip(1, 0, 0)
	rock := newAsteroid(2, 50, 0, 1)
	rock.Physics.LinearVel = vmath.Vec3{X: -100}

	m := Manifold{A: 1, B: 2, Normal: vmath.Vec2{X: 1}, Penetration: 8}
	before := parameter.ShipMass*ship.Physics.LinearVel.X + rock.Physics.LinearVel.X

	c, ok := Resolve(ship, rock, m, &ShipToRock)
	if !ok {
		t.Fatal("Expected contact to resolve")
	}
	if c.ApproachSpeed != 100 {
		t.Errorf("Expected approach speed 100, got %v", c.ApproachSpeed)
	}

	after := parameter.ShipMass*ship.Physics.LinearVel.X + rock.Physics.LinearVel.X
	if math.Abs(before-after) > 1e-6 {
		t.Errorf("Expected momentum conserved, before %v after %v", before, after)
	}

	shipMove := -ship.Transform.Position.X
	rockMove := rock.Transform.Position.X - 50
	if shipMove <= rockMove {
		t.Errorf("Expected light ship to move further: ship %v rock %v", shipMove, rockMove)
	}
	if math.Abs(shipMove+rockMove-(8-parameter.ShipSlop)) > tol {
		t.Errorf("Expected total correction %v, got %v", 8-parameter.ShipSlop, shipMove+rockMove)
	}

	// Relative normal velocity after impulse is -e times the approach
	rel := ship.Physics.LinearVel.X - rock.Physics.LinearVel.X
	if math.Abs(rel+parameter.ShipRestitution*100) > 1e-6 {
		t.Errorf("Expected separating speed %v, got %v", parameter.ShipRestitution*100, -rel)
	}
}

func TestResolve_MissingPhysics(t *testing.T) {
	a := newAsteroid(1, 0, 0, 1)
	b := newAsteroid(2, 10, 0, 1)
	b.Physics = nil
	if _, ok := Resolve(a, b, Manifold{Normal: vmath.Vec2{X: 1}, Penetration: 70}, &RockToRock); ok {
		t.Fatal("Expected static entity to be skipped")
	}
	if _, ok := Resolve(a, nil, Manifold{}, &RockToRock); ok {
		t.Fatal("Expected missing entity to be skipped")
	}
}

func TestAreaMass_Floor(t *testing.T) {
	if AreaMass(0.01) != parameter.MinMass {
		t.Errorf("Expected floor %v, got %v", parameter.MinMass, AreaMass(0.01))
	}
	if AreaMass(2) != 4 {
		t.Errorf("Expected 4, got %v", AreaMass(2))
	}
}
