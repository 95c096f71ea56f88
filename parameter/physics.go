package parameter

// Collision geometry (world units)
const (
	// AsteroidBaseRadius is the radius and box half-extent of a scale 1 asteroid
	AsteroidBaseRadius = 40.0
	// BulletHalfExtent is the fixed box half-extent of a bullet on both axes
	BulletHalfExtent = 8.0
	// ShipRadius is the fixed circle radius of the player ship
	ShipRadius = 18.0
	// CoincidentDistance replaces an exact zero center distance when building normals
	CoincidentDistance = 0.001
)

// Collision response
const (
	// MinMass floors area-based mass for tiny fragments
	MinMass = 0.01

	// RockRestitution is the asteroid-asteroid bounce coefficient
	RockRestitution = 0.85
	// RockSlop is the penetration tolerated before positional correction
	RockSlop = 1.0

	// ShipMass is the fixed mass of the ship against asteroid area mass
	ShipMass = 0.3
	// ShipRestitution is the ship-asteroid bounce coefficient
	ShipRestitution = 0.6
	// ShipSlop is the ship-asteroid penetration tolerance
	ShipSlop = 1.0
)

// Ship damage from asteroid contact
const (
	// DamagePerSpeed converts approach speed into hit points
	DamagePerSpeed = 0.05
	DamageMin      = 5.0
	DamageMax      = 25.0
	// InvincibilitySeconds is the minimum time between damage events
	InvincibilitySeconds = 0.4
)

// Fragmentation
const (
	// FragmentScaleFactor is child scale over parent scale
	FragmentScaleFactor = 0.45
	// FragmentMinScale is the scale at or below which asteroids vanish instead of splitting
	FragmentMinScale = 0.18
	// FragmentCount is the number of children per split
	FragmentCount = 6
	// FragmentSpeedMin and FragmentSpeedMax bound child speed (units/sec)
	FragmentSpeedMin = 120.0
	FragmentSpeedMax = 260.0
	// FragmentAngleJitter is the random angular offset added to each evenly spread child (radians)
	FragmentAngleJitter = 0.4
	// FragmentCollisionDelay keeps siblings inert to each other after a split (seconds)
	FragmentCollisionDelay = 0.4
)

// Score per destroyed asteroid, by size tier
const (
	ScoreLargeAsteroid  = 20
	ScoreMediumAsteroid = 50
	ScoreSmallAsteroid  = 100

	// ScoreLargeMinScale and ScoreMediumMinScale split the tiers
	ScoreLargeMinScale  = 0.8
	ScoreMediumMinScale = 0.36
)

// Player defaults
const (
	InitialLives     = 3
	InitialMaxHealth = 100.0
	// NeverDamagedTime seeds lastDamageTime so the first hit is never gated
	NeverDamagedTime = -999.0
)
