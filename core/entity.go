package core

// EntityID identifies an entity for its whole lifetime, never reused within a run
// Zero is never assigned
type EntityID uint64

// Entity is the single record type for every simulation object
// Optional fields use zero as "absent", see the accessors
type Entity struct {
	ID        EntityID
	Kind      Kind
	Transform Transform

	// Physics is nil for kinematically static entities
	Physics *Kinetic

	// Scale governs collision radius and render size, 0 means 1
	Scale float64

	// MeshVariant selects the visual shape, carried through fragmentation
	MeshVariant int

	// CollisionEnableTime is the world time from which the entity takes part in
	// asteroid-asteroid contact, 0 means always
	CollisionEnableTime float64

	// Opacity in [0, 1] for fading particles, only meaningful when HasOpacity
	Opacity    float64
	HasOpacity bool
}

// EffectiveScale returns Scale with the default of 1 applied
func (e *Entity) EffectiveScale() float64 {
	if e.Scale == 0 {
		return 1
	}
	return e.Scale
}

// Alpha returns Opacity when set, otherwise fully opaque
func (e *Entity) Alpha() float64 {
	if !e.HasOpacity {
		return 1
	}
	return e.Opacity
}

// CollisionEnabled reports whether the entity participates in asteroid-asteroid contact at time now
func (e *Entity) CollisionEnabled(now float64) bool {
	return now >= e.CollisionEnableTime
}

// Clone returns a deep copy, Physics included
func (e *Entity) Clone() Entity {
	c := *e
	if e.Physics != nil {
		k := *e.Physics
		c.Physics = &k
	}
	return c
}
