package config

import (
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/lixenwraith/rockstorm/parameter"
)

// Tick rate bounds accepted from configuration (steps per second)
const (
	MinTickRate = 10
	MaxTickRate = 240
)

// Viewport is the world-space play field, spawn and despawn margins are measured from it
type Viewport struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Config is the full runtime configuration
type Config struct {
	Viewport Viewport `toml:"viewport"`

	// Seed drives the simulation rng, 0 picks one from the clock
	Seed     uint64 `toml:"seed"`
	TickRate int    `toml:"tick_rate"`

	Audio  bool    `toml:"audio"`
	Volume float64 `toml:"volume"` // 0..1
	Debug  bool    `toml:"debug"`

	Tuning parameter.Tuning `toml:"tuning"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Viewport: Viewport{Width: 1600, Height: 900},
		TickRate: parameter.DefaultTickRate,
		Audio:    true,
		Volume:   0.5,
		Tuning:   parameter.DefaultTuning(),
	}
}

// Load reads path over the defaults and validates the result
// A missing file is not an error when allowMissing is set
func Load(path string, allowMissing bool) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if allowMissing && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, errors.Wrapf(err, "read config %s", path)
	}
	cfg, err := Parse(string(data))
	if err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Parse decodes TOML text over the defaults and validates the result
// Unknown keys are rejected so typos do not silently fall back to defaults
func Parse(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(err, "decode")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, errors.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid field
func (c *Config) Validate() error {
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return errors.Errorf("viewport must be positive, got %vx%v", c.Viewport.Width, c.Viewport.Height)
	}
	if c.TickRate < MinTickRate || c.TickRate > MaxTickRate {
		return errors.Errorf("tick_rate %d outside [%d, %d]", c.TickRate, MinTickRate, MaxTickRate)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return errors.Errorf("volume %v outside [0, 1]", c.Volume)
	}
	return errors.Wrap(validateTuning(&c.Tuning), "tuning")
}

// validateTuning rejects negative numbers, inverted ranges and empty scale tiers
func validateTuning(t *parameter.Tuning) error {
	v := reflect.ValueOf(t).Elem()
	typ := v.Type()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		name := typ.Field(i).Tag.Get("toml")
		switch f.Kind() {
		case reflect.Float64:
			if f.Float() < 0 {
				return errors.Errorf("%s must not be negative, got %v", name, f.Float())
			}
		case reflect.Int:
			if f.Int() < 0 {
				return errors.Errorf("%s must not be negative, got %d", name, f.Int())
			}
		}
	}

	if len(t.ScaleTiers) == 0 {
		return errors.New("scale_tiers must not be empty")
	}
	for _, s := range t.ScaleTiers {
		if s <= 0 {
			return errors.Errorf("scale_tiers entries must be positive, got %v", s)
		}
	}

	ranges := []struct {
		name     string
		min, max float64
	}{
		{"spawn_speed", t.SpawnSpeedMin, t.SpawnSpeedMax},
		{"spark_speed", t.SparkSpeedMin, t.SparkSpeedMax},
		{"spark_lifetime", t.SparkLifetimeMin, t.SparkLifetimeMax},
		{"debris_speed", t.DebrisSpeedMin, t.DebrisSpeedMax},
		{"debris_lifetime", t.DebrisLifetimeMin, t.DebrisLifetimeMax},
	}
	for _, r := range ranges {
		if r.min > r.max {
			return errors.Errorf("%s_min %v exceeds %s_max %v", r.name, r.min, r.name, r.max)
		}
	}

	if t.DespawnMargin < t.SpawnMargin {
		return errors.Errorf("despawn_margin %v must not be inside spawn_margin %v", t.DespawnMargin, t.SpawnMargin)
	}
	return nil
}
