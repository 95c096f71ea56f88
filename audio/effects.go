package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/rockstorm/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, frequency glides linearly from freq to freqEnd
type oscillator struct {
	freq     float64
	freqEnd  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding between two frequencies over its duration
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     from,
		freqEnd:  to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.freqEnd-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates a linear attack/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain, math.Log2(0) is -Inf so zero maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// ExplosionGenerator generates a decaying crackle over a low rumble
type ExplosionGenerator struct {
	sr     beep.SampleRate
	pos    int
	total  int
	decay  float64
	rumble float64
	seed   int64
}

// NewExplosionGenerator sizes the burst by asteroid scale: bigger rocks ring longer and lower
func NewExplosionGenerator(sr beep.SampleRate, scale float64) *ExplosionGenerator {
	s := min(max(scale, 0), 1.5) / 1.5
	length := parameter.ExplosionSoundMin + time.Duration(s*float64(parameter.ExplosionSoundMax-parameter.ExplosionSoundMin))
	return &ExplosionGenerator{
		sr:     sr,
		total:  sr.N(length),
		decay:  12 - 8*s,
		rumble: 110 - 60*s,
		seed:   time.Now().UnixNano() & 0x7fffffff,
	}
}

func (g *ExplosionGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)

		// Quick attack, exponential tail
		env := math.Exp(-t * g.decay)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		sample := env * (0.3*noise + 0.35*math.Sin(2*math.Pi*g.rumble*t))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ExplosionGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a low-pitch harmonic buzz
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		// 20ms fade in
		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.6

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

// ThrustGenerator generates the looping engine hum
type ThrustGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
}

// NewThrustGenerator creates an endless hum sweeping 60-140Hz
func NewThrustGenerator(sr beep.SampleRate) *ThrustGenerator {
	return &ThrustGenerator{
		sr:      sr,
		samples: sr.N(parameter.ThrustLoopCycle),
	}
}

func (g *ThrustGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		cyclePos := float64(g.pos%g.samples) / float64(g.samples)
		freq := 60 + 80*math.Sin(cyclePos*math.Pi)

		amplitude := 0.12 * (0.6 + 0.4*math.Sin(cyclePos*math.Pi*2))
		sample := amplitude * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ThrustGenerator) Err() error {
	return nil
}

// Sound effect generators

// CreateFireSound generates a short descending zap
func CreateFireSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewSweep(1400, 500, parameter.FireSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, parameter.FireSoundDuration, parameter.FireSoundAttack, parameter.FireSoundRelease, rate)

	return newVolume(shaped, cfg.volumeFor(SoundFire))
}

// CreateImpactSound generates a short noise tick for a bullet strike
func CreateImpactSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, parameter.ImpactSoundDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, parameter.ImpactSoundDuration, parameter.ImpactSoundAttack, parameter.ImpactSoundRelease, rate)

	return newVolume(shaped, cfg.volumeFor(SoundImpact))
}

// CreateExplosionSound generates a crackle sized by asteroid scale
func CreateExplosionSound(cfg *AudioConfig, scale float64) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	return newVolume(NewExplosionGenerator(rate, scale), cfg.volumeFor(SoundExplosion))
}

// CreateDamageSound generates a harsh buzz for hull damage
func CreateDamageSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	buzz := beep.Take(rate.N(parameter.DamageSoundDuration), NewBuzzGenerator(rate, parameter.DamageSoundFreq))
	return newVolume(buzz, cfg.volumeFor(SoundDamage))
}

// CreateShipLostSound generates a long falling sweep over a large explosion
func CreateShipLostSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	fall := NewSweep(600, 80, parameter.ShipLostSoundDuration, WaveSaw, rate)
	fallShaped := NewEnvelope(fall, parameter.ShipLostSoundDuration, 0, parameter.ShipLostSoundDuration, rate)

	mixed := beep.Mix(
		newVolume(fallShaped, 0.4),
		newVolume(NewExplosionGenerator(rate, 1.5), 0.8),
	)
	return newVolume(mixed, cfg.volumeFor(SoundShipLost))
}

// CreateGameOverSound generates a three-note descending phrase
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// E4, C4, A3
	notes := []float64{329.63, 261.63, 220.0}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, freq := range notes {
		osc := NewOscillator(freq, parameter.GameOverNoteDuration, WaveSquare, rate)
		parts = append(parts, NewEnvelope(osc, parameter.GameOverNoteDuration, parameter.GameOverNoteAttack, parameter.GameOverNoteRelease, rate))
	}

	return newVolume(beep.Seq(parts...), cfg.volumeFor(SoundGameOver))
}

// GetSoundEffect returns the streamer for a sound type, amount is the asteroid scale for explosions
func GetSoundEffect(soundType SoundType, cfg *AudioConfig, amount float64) beep.Streamer {
	switch soundType {
	case SoundFire:
		return CreateFireSound(cfg)
	case SoundImpact:
		return CreateImpactSound(cfg)
	case SoundExplosion:
		return CreateExplosionSound(cfg, amount)
	case SoundDamage:
		return CreateDamageSound(cfg)
	case SoundShipLost:
		return CreateShipLostSound(cfg)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	default:
		return nil
	}
}
