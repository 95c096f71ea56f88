package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/rockstorm/event"
	"github.com/lixenwraith/rockstorm/parameter"
)

// SoundManager turns game events into mixed effects on the speaker
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	thrust      *beep.Ctrl
	lastPlayed  [soundTypeCount]time.Time
	now         func() time.Time
	initialized bool
	speaker     bool // mixer is fed by the speaker goroutine
	muted       bool
}

// NewSoundManager creates a sound manager, nil cfg uses the defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Initialize opens the speaker, a disabled config leaves the manager silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.speaker = true
	sm.initialized = true
	return nil
}

// attach enables playback into the mixer without an output device
func (sm *SoundManager) attach() {
	sm.mu.Lock()
	sm.initialized = true
	sm.mu.Unlock()
}

// Cleanup stops all sounds and detaches the mixer
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.withMixer(func() {
		if sm.thrust != nil {
			sm.thrust.Paused = true
		}
		sm.mixer.Clear()
	})
	if sm.speaker {
		speaker.Clear()
	}
	sm.thrust = nil
	sm.initialized = false
}

// withMixer runs fn holding the speaker lock when the speaker is live
func (sm *SoundManager) withMixer(fn func()) {
	if sm.speaker {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}

// SetMuted silences new sounds and pauses the engine hum
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	if muted && sm.thrust != nil {
		sm.withMixer(func() { sm.thrust.Paused = true })
	}
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	muted := !sm.muted
	sm.mu.Unlock()
	sm.SetMuted(muted)
	return muted
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play queues a sound, repeats of one type inside MinSoundGap are dropped
func (sm *SoundManager) Play(t SoundType, amount float64) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted || t < 0 || t >= soundTypeCount {
		return false
	}

	now := sm.now()
	if !sm.lastPlayed[t].IsZero() && now.Sub(sm.lastPlayed[t]) < parameter.MinSoundGap {
		return false
	}

	streamer := GetSoundEffect(t, sm.cfg, amount)
	if streamer == nil {
		return false
	}
	sm.lastPlayed[t] = now
	sm.withMixer(func() { sm.mixer.Add(streamer) })
	return true
}

// HandleEvent maps a simulation event to its sound
func (sm *SoundManager) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventBulletFired:
		sm.Play(SoundFire, 0)
	case event.EventBulletHit:
		sm.Play(SoundImpact, 0)
	case event.EventAsteroidFragmented, event.EventAsteroidVanished:
		sm.Play(SoundExplosion, ev.Amount)
	case event.EventShipDamaged:
		sm.Play(SoundDamage, ev.Amount)
	case event.EventShipLost:
		sm.Play(SoundShipLost, 0)
	case event.EventGameOver:
		sm.SetThrust(false)
		sm.Play(SoundGameOver, 0)
	}
}

// SetThrust starts or pauses the engine hum
func (sm *SoundManager) SetThrust(on bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	if !on || sm.muted {
		if sm.thrust != nil && !sm.thrust.Paused {
			sm.withMixer(func() { sm.thrust.Paused = true })
		}
		return
	}

	if sm.thrust == nil {
		rate := beep.SampleRate(sm.cfg.SampleRate)
		hum := newVolume(NewThrustGenerator(rate), sm.cfg.MasterVolume)
		sm.thrust = &beep.Ctrl{Streamer: hum, Paused: false}
		sm.withMixer(func() { sm.mixer.Add(sm.thrust) })
		return
	}
	if sm.thrust.Paused {
		sm.withMixer(func() { sm.thrust.Paused = false })
	}
}

// Active returns the number of streamers currently in the mixer
func (sm *SoundManager) Active() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	n := 0
	sm.withMixer(func() { n = sm.mixer.Len() })
	return n
}
