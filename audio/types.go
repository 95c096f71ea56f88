package audio

import "github.com/lixenwraith/rockstorm/parameter"

// SoundType represents different sound effects
type SoundType int

const (
	SoundFire      SoundType = iota // Bullet leaves the muzzle
	SoundImpact                     // Bullet strikes an asteroid
	SoundExplosion                  // Asteroid breaks apart or vanishes
	SoundDamage                     // Ship takes contact damage
	SoundShipLost                   // Life consumed
	SoundGameOver                   // Last life consumed
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundFire:      "fire",
	SoundImpact:    "impact",
	SoundExplosion: "explosion",
	SoundDamage:    "damage",
	SoundShipLost:  "ship_lost",
	SoundGameOver:  "game_over",
}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// AudioConfig holds output and per-effect volume settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0..1
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns enabled audio at half volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   parameter.AudioSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundFire:      0.4,
			SoundImpact:    0.6,
			SoundExplosion: 0.9,
			SoundDamage:    0.7,
			SoundShipLost:  1.0,
			SoundGameOver:  0.8,
		},
	}
}

// NewAudioConfig returns the defaults with the given switch and master volume, volume is clamped to [0, 1]
func NewAudioConfig(enabled bool, volume float64) *AudioConfig {
	cfg := DefaultAudioConfig()
	cfg.Enabled = enabled
	cfg.MasterVolume = min(max(volume, 0), 1)
	return cfg
}

// volumeFor is the effective linear gain of a sound type
func (c *AudioConfig) volumeFor(t SoundType) float64 {
	v, ok := c.EffectVolumes[t]
	if !ok {
		v = 1
	}
	return v * c.MasterVolume
}
