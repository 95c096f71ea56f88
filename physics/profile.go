package physics

import (
	"math"

	"github.com/lixenwraith/rockstorm/parameter"
)

// CollisionProfile defines collision response parameters for one pair category
// Profiles are pre-defined as package variables for zero allocation
type CollisionProfile struct {
	Restitution float64 // Bounce coefficient along the normal
	Slop        float64 // Penetration left uncorrected to avoid jitter
	MassA       float64 // Fixed mass of side A, 0 = area mass from scale
	MassB       float64 // Fixed mass of side B, 0 = area mass from scale
}

// RockToRock defines asteroid-asteroid contact (area masses, near-elastic)
var RockToRock = CollisionProfile{
	Restitution: parameter.RockRestitution,
	Slop:        parameter.RockSlop,
}

// ShipToRock defines ship-asteroid contact (light fixed-mass ship, softer bounce)
var ShipToRock = CollisionProfile{
	Restitution: parameter.ShipRestitution,
	Slop:        parameter.ShipSlop,
	MassA:       parameter.ShipMass,
}

// AreaMass returns the area-proportional mass of a body of the given scale
func AreaMass(scale float64) float64 {
	return math.Max(parameter.MinMass, scale*scale)
}
