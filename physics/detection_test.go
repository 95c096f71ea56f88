package physics

import (
	"math"
	"reflect"
	"testing"

	"github.com/lixenwraith/rockstorm/core"
	"github.com/lixenwraith/rockstorm/parameter"
	"github.com/lixenwraith/rockstorm/vmath"
)

const tol = 1e-9

func newAsteroid(id core.EntityID, x, y, scale float64) *core.Entity {
	return &core.Entity{
		ID:        id,
		Kind:      core.KindAsteroid,
		Transform: core.Transform{Position: vmath.Vec3{X: x, Y: y}, Rotation: vmath.QuatIdentity},
		Physics:   &core.Kinetic{},
		Scale:     scale,
	}
}

func newBullet(id core.EntityID, x, y float64) *core.Entity {
	return &core.Entity{
		ID:        id,
		Kind:      core.KindBullet,
		Transform: core.Transform{Position: vmath.Vec3{X: x, Y: y}, Rotation: vmath.QuatIdentity},
		Physics:   &core.Kinetic{},
	}
}

func newShip(id core.EntityID, x, y float64) *core.Entity {
	return &core.Entity{
		ID:        id,
		Kind:      core.KindPlayerShip,
		Transform: core.Transform{Position: vmath.Vec3{X: x, Y: y}, Rotation: vmath.QuatIdentity},
		Physics:   &core.Kinetic{},
	}
}

// TestDetectAsteroidAsteroid_CircleProperty tests contact iff distance < sum of radii with exact penetration
func TestDetectAsteroidAsteroid_CircleProperty(t *testing.T) {
	tests := []struct {
		name    string
		dx, dy  float64
		scaleB  float64
		contact bool
	}{
		{"deep overlap", 30, 0, 1, true},
		{"diagonal overlap", 40, 40, 1, true},
		{"just inside", 79.999, 0, 1, true},
		{"exact touch", 80, 0, 1, false},
		{"apart", 120, 0, 1, false},
		{"small partner", 50, 0, 0.45, true},
		{"small partner apart", 58, 0, 0.45, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newAsteroid(1, 100, 100, 1)
			b := newAsteroid(2, 100+tt.dx, 100+tt.dy, tt.scaleB)
			got := DetectAsteroidAsteroid([]*core.Entity{a, b}, 0)

			if !tt.contact {
				if len(got) != 0 {
					t.Fatalf("Expected no contact, got %+v", got)
				}
				return
			}
			if len(got) != 1 {
				t.Fatalf("Expected 1 contact, got %d", len(got))
			}
			dist := math.Hypot(tt.dx, tt.dy)
			want := parameter.AsteroidBaseRadius*(1+tt.scaleB) - dist
			if math.Abs(got[0].Penetration-want) > tol {
				t.Errorf("Expected penetration %v, got %v", want, got[0].Penetration)
			}
			if got[0].A != 1 || got[0].B != 2 {
				t.Errorf("Expected A=1 B=2 by snapshot order, got A=%d B=%d", got[0].A, got[0].B)
			}
			n := got[0].Normal
			if math.Abs(n.X-tt.dx/dist) > tol || math.Abs(n.Y-tt.dy/dist) > tol {
				t.Errorf("Expected normal toward B, got %+v", n)
			}
		})
	}
}

// TestDetectAsteroidAsteroid_SnapshotOrder tests that A is the earlier entity in the snapshot, not the lower id
func TestDetectAsteroidAsteroid_SnapshotOrder(t *testing.T) {
	a := newAsteroid(9, 0, 0, 1)
	b := newAsteroid(4, 50, 0, 1)
	got := DetectAsteroidAsteroid([]*core.Entity{a, b}, 0)
	if len(got) != 1 {
		t.Fatalf("Expected 1 contact, got %d", len(got))
	}
	if got[0].A != 9 || got[0].Normal.X != 1 {
		t.Errorf("Expected A=9 with +X normal, got %+v", got[0])
	}
}

func TestDetectAsteroidAsteroid_CoincidentCenters(t *testing.T) {
	a := newAsteroid(1, 10, 10, 1)
	b := newAsteroid(2, 10, 10, 1)
	got := DetectAsteroidAsteroid([]*core.Entity{a, b}, 0)
	if len(got) != 1 {
		t.Fatalf("Expected 1 contact, got %d", len(got))
	}
	if got[0].Normal != (vmath.Vec2{X: 1}) {
		t.Errorf("Expected +X fallback normal, got %+v", got[0].Normal)
	}
	want := 2*parameter.AsteroidBaseRadius - parameter.CoincidentDistance
	if math.Abs(got[0].Penetration-want) > tol {
		t.Errorf("Expected penetration %v, got %v", want, got[0].Penetration)
	}
}

// TestDetectAsteroidAsteroid_EnableTime tests fragments are inert until their enable time
func TestDetectAsteroidAsteroid_EnableTime(t *testing.T) {
	a := newAsteroid(1, 0, 0, 0.45)
	b := newAsteroid(2, 0, 0, 0.45)
	a.CollisionEnableTime = 1.4
	b.CollisionEnableTime = 1.4

	if got := DetectAsteroidAsteroid([]*core.Entity{a, b}, 1.2); len(got) != 0 {
		t.Fatalf("Expected fragments inert before enable time, got %d contacts", len(got))
	}
	if got := DetectAsteroidAsteroid([]*core.Entity{a, b}, 1.4); len(got) != 1 {
		t.Fatalf("Expected contact once enabled, got %d", len(got))
	}
}

func TestDetectAsteroidAsteroid_AllPairs(t *testing.T) {
	entities := []*core.Entity{
		newAsteroid(1, 0, 0, 1),
		newAsteroid(2, 10, 0, 1),
		newAsteroid(3, 20, 0, 1),
		newShip(4, 5, 0),
	}
	got := DetectAsteroidAsteroid(entities, 0)
	if len(got) != 3 {
		t.Fatalf("Expected 3 pairs without double count, got %d", len(got))
	}
}

// TestIntersectAABB_MinOverlap tests penetration equals the smaller axis overlap
func TestIntersectAABB_MinOverlap(t *testing.T) {
	tests := []struct {
		name   string
		a, b   AABB
		ok     bool
		normal vmath.Vec2
		penetr float64
	}{
		{
			name: "x shallower, a left of b",
			a:    AABB{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10},
			b:    AABB{MinX: 8, MinY: -5, MaxX: 30, MaxY: 15},
			ok:   true, normal: vmath.Vec2{X: -1}, penetr: 2,
		},
		{
			name: "y shallower, a above b",
			a:    AABB{MinX: 0, MinY: 12, MaxX: 10, MaxY: 22},
			b:    AABB{MinX: -5, MinY: 0, MaxX: 15, MaxY: 15},
			ok:   true, normal: vmath.Vec2{Y: 1}, penetr: 3,
		},
		{
			name: "equal overlap picks y",
			a:    AABB{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10},
			b:    AABB{MinX: 6, MinY: 6, MaxX: 16, MaxY: 16},
			ok:   true, normal: vmath.Vec2{Y: -1}, penetr: 4,
		},
		{
			name: "same center resolves positive",
			a:    AABB{MinX: 0, MinY: 0, MaxX: 10, MaxY: 4},
			b:    AABB{MinX: 0, MinY: 0, MaxX: 10, MaxY: 4},
			ok:   true, normal: vmath.Vec2{Y: 1}, penetr: 4,
		},
		{
			name: "touching edge",
			a:    AABB{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10},
			b:    AABB{MinX: 10, MinY: 0, MaxX: 20, MaxY: 10},
			ok:   false,
		},
		{
			name: "y separated",
			a:    AABB{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10},
			b:    AABB{MinX: 5, MinY: 11, MaxX: 20, MaxY: 20},
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, pen, ok := IntersectAABB(tt.a, tt.b)
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got %v", tt.ok, ok)
			}
			if !ok {
				return
			}
			if n != tt.normal {
				t.Errorf("Expected normal %+v, got %+v", tt.normal, n)
			}
			if math.Abs(pen-tt.penetr) > tol {
				t.Errorf("Expected penetration %v, got %v", tt.penetr, pen)
			}
		})
	}
}

func TestDetectBulletAsteroid(t *testing.T) {
	// Bullet box [42,58]x[-8,8] inside asteroid box [20,100]x[-40,40]: both overlaps 16, tie goes to Y
	bullet := newBullet(1, 50, 0)
	rock := newAsteroid(2, 60, 0, 1)
	far := newAsteroid(3, 500, 500, 1)

	got := DetectBulletAsteroid([]*core.Entity{bullet, rock, far})
	if len(got) != 1 {
		t.Fatalf("Expected 1 manifold, got %d", len(got))
	}
	m := got[0]
	if m.A != 1 || m.B != 2 {
		t.Errorf("Expected bullet=1 asteroid=2, got %+v", m)
	}
	if math.Abs(m.Penetration-16) > tol {
		t.Errorf("Expected penetration 16, got %v", m.Penetration)
	}
	if m.Normal != (vmath.Vec2{Y: 1}) {
		t.Errorf("Expected +Y normal on center tie, got %+v", m.Normal)
	}
}

// TestDetectBulletAsteroid_AllPairs tests that one bullet reports every asteroid it overlaps
func TestDetectBulletAsteroid_AllPairs(t *testing.T) {
	entities := []*core.Entity{
		newAsteroid(1, 0, 0, 1),
		newAsteroid(2, 30, 0, 1),
		newBullet(3, 15, 0),
		newBullet(4, 1000, 0),
	}
	got := DetectBulletAsteroid(entities)
	if len(got) != 2 {
		t.Fatalf("Expected 2 manifolds, got %d", len(got))
	}
}

func TestDetectShipAsteroid(t *testing.T) {
	ship := newShip(1, 0, 0)
	near := newAsteroid(2, 0, 50, 1)
	far := newAsteroid(3, 0, 58, 1)

	got := DetectShipAsteroid([]*core.Entity{near, ship, far})
	if len(got) != 1 {
		t.Fatalf("Expected 1 contact, got %d", len(got))
	}
	m := got[0]
	if m.A != 1 || m.B != 2 {
		t.Errorf("Expected ship=1 asteroid=2, got %+v", m)
	}
	if math.Abs(m.Normal.Y-1) > tol || math.Abs(m.Penetration-8) > tol {
		t.Errorf("Expected normal toward asteroid and penetration 8, got %+v", m)
	}
}

// TestDetectShipAsteroid_ShipCount tests zero ships yield nothing and multiple ships use the first
func TestDetectShipAsteroid_ShipCount(t *testing.T) {
	rock := newAsteroid(1, 0, 0, 1)
	if got := DetectShipAsteroid([]*core.Entity{rock}); got != nil {
		t.Fatalf("Expected nil without ship, got %+v", got)
	}

	first := newShip(2, 1000, 1000)
	second := newShip(3, 0, 0)
	got := DetectShipAsteroid([]*core.Entity{rock, first, second})
	if len(got) != 0 {
		t.Fatalf("Expected only the first ship to be tested, got %+v", got)
	}
}

// TestDetection_Idempotent tests repeated detection on an unmutated snapshot yields identical lists
func TestDetection_Idempotent(t *testing.T) {
	rng := vmath.NewFastRand(11)
	var entities []*core.Entity
	for i := 1; i <= 30; i++ {
		x, y := rng.Float64()*400, rng.Float64()*400
		switch i % 3 {
		case 0:
			entities = append(entities, newBullet(core.EntityID(i), x, y))
		default:
			entities = append(entities, newAsteroid(core.EntityID(i), x, y, 0.3+rng.Float64()))
		}
	}
	entities = append(entities, newShip(99, 200, 200))

	if !reflect.DeepEqual(DetectBulletAsteroid(entities), DetectBulletAsteroid(entities)) {
		t.Error("Bullet-asteroid detection not idempotent")
	}
	if !reflect.DeepEqual(DetectAsteroidAsteroid(entities, 1), DetectAsteroidAsteroid(entities, 1)) {
		t.Error("Asteroid-asteroid detection not idempotent")
	}
	if !reflect.DeepEqual(DetectShipAsteroid(entities), DetectShipAsteroid(entities)) {
		t.Error("Ship-asteroid detection not idempotent")
	}
}
