package parameter

// Tuning holds the gameplay values that may be overridden from the config file
// Fields carry toml tags so config can decode straight into it
type Tuning struct {
	// Ship control
	TurnRate          float64 `toml:"turn_rate"`          // rad/s at full rotate intent
	ThrustAccel       float64 `toml:"thrust_accel"`       // units/s²
	MaxSpeed          float64 `toml:"max_speed"`          // per-component clamp, units/s
	KeyboardDamping   float64 `toml:"keyboard_damping"`   // k in v *= e^(-k·dt)
	PointerDamping    float64 `toml:"pointer_damping"`    // k while pointer mode is active
	PointerDeadzone   float64 `toml:"pointer_deadzone"`   // pointer distance below which no thrust
	RespawnInvincible bool    `toml:"respawn_invincible"` // stamp lastDamageTime on respawn

	// Weapon
	BulletSpeed    float64 `toml:"bullet_speed"`
	BulletLifetime float64 `toml:"bullet_lifetime"`
	FireCooldown   float64 `toml:"fire_cooldown"`
	MuzzleOffset   float64 `toml:"muzzle_offset"`

	// Asteroid spawner
	SpawnInterval  float64   `toml:"spawn_interval"`
	MaxAsteroids   int       `toml:"max_asteroids"`
	SpawnMargin    float64   `toml:"spawn_margin"`
	DespawnMargin  float64   `toml:"despawn_margin"`
	SpawnSpeedMin  float64   `toml:"spawn_speed_min"`
	SpawnSpeedMax  float64   `toml:"spawn_speed_max"`
	SpawnAimJitter float64   `toml:"spawn_aim_jitter"`
	ScaleTiers     []float64 `toml:"scale_tiers"`
	ScaleJitter    float64   `toml:"scale_jitter"`
	MeshVariants   int       `toml:"mesh_variants"`
	SpinMax        float64   `toml:"spin_max"`

	// Particles
	SparkCount        int     `toml:"spark_count"`
	SparkSpeedMin     float64 `toml:"spark_speed_min"`
	SparkSpeedMax     float64 `toml:"spark_speed_max"`
	SparkSpread       float64 `toml:"spark_spread"`
	SparkLifetimeMin  float64 `toml:"spark_lifetime_min"`
	SparkLifetimeMax  float64 `toml:"spark_lifetime_max"`
	DebrisPerScale    float64 `toml:"debris_per_scale"`
	DebrisMin         int     `toml:"debris_min"`
	DebrisSpeedMin    float64 `toml:"debris_speed_min"`
	DebrisSpeedMax    float64 `toml:"debris_speed_max"`
	DebrisLifetimeMin float64 `toml:"debris_lifetime_min"`
	DebrisLifetimeMax float64 `toml:"debris_lifetime_max"`

	// Health regeneration
	RegenDelay float64 `toml:"regen_delay"` // seconds since last damage
	RegenRate  float64 `toml:"regen_rate"`  // HP/s
}

// DefaultTuning returns the stock gameplay values
func DefaultTuning() Tuning {
	return Tuning{
		TurnRate:          4.0,
		ThrustAccel:       900.0,
		MaxSpeed:          900.0,
		KeyboardDamping:   2.0,
		PointerDamping:    1.0,
		PointerDeadzone:   40.0,
		RespawnInvincible: true,

		BulletSpeed:    1400.0,
		BulletLifetime: 2.0,
		FireCooldown:   0.2,
		MuzzleOffset:   25.0,

		SpawnInterval:  2.5,
		MaxAsteroids:   10,
		SpawnMargin:    100.0,
		DespawnMargin:  200.0,
		SpawnSpeedMin:  60.0,
		SpawnSpeedMax:  150.0,
		SpawnAimJitter: 0.35,
		ScaleTiers:     []float64{0.7, 1.0, 1.4},
		ScaleJitter:    0.1,
		MeshVariants:   4,
		SpinMax:        1.0,

		SparkCount:        8,
		SparkSpeedMin:     180.0,
		SparkSpeedMax:     420.0,
		SparkSpread:       0.6,
		SparkLifetimeMin:  0.2,
		SparkLifetimeMax:  0.4,
		DebrisPerScale:    6.0,
		DebrisMin:         3,
		DebrisSpeedMin:    40.0,
		DebrisSpeedMax:    140.0,
		DebrisLifetimeMin: 0.6,
		DebrisLifetimeMax: 1.2,

		RegenDelay: 3.0,
		RegenRate:  4.0,
	}
}
