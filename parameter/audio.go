package parameter

import "time"

// Audio output
const (
	// AudioSampleRate is the speaker and generator sample rate (Hz)
	AudioSampleRate = 48000
	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
	// MinSoundGap throttles repeats of the same sound type
	MinSoundGap = 40 * time.Millisecond
)

// Fire Sound Timing
const (
	FireSoundDuration = 70 * time.Millisecond
	FireSoundAttack   = 2 * time.Millisecond
	FireSoundRelease  = 50 * time.Millisecond
)

// Impact Sound Timing
const (
	ImpactSoundDuration = 90 * time.Millisecond
	ImpactSoundAttack   = 3 * time.Millisecond
	ImpactSoundRelease  = 70 * time.Millisecond
)

// Explosion Sound Timing, scaled by asteroid size
const (
	ExplosionSoundMin = 180 * time.Millisecond
	ExplosionSoundMax = 600 * time.Millisecond
)

// Damage Sound Timing
const (
	DamageSoundDuration = 150 * time.Millisecond
	DamageSoundFreq     = 120.0
)

// Ship Lost and Game Over Timing
const (
	ShipLostSoundDuration = 700 * time.Millisecond
	GameOverNoteDuration  = 220 * time.Millisecond
	GameOverNoteAttack    = 5 * time.Millisecond
	GameOverNoteRelease   = 150 * time.Millisecond
)

// ThrustLoopCycle is one sweep of the engine hum
const ThrustLoopCycle = 2 * time.Second
