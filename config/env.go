package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// EnvPrefix namespaces every environment override
const EnvPrefix = "ROCKSTORM_"

// ReadEnvFile returns the variables of a dotenv file without touching the process environment
// A missing file yields an empty map
func ReadEnvFile(path string) (map[string]string, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, errors.Wrapf(err, "read env file %s", path)
	}
	return vars, nil
}

// Environ returns the prefixed process environment, which wins over file values
func Environ(file map[string]string) map[string]string {
	merged := make(map[string]string, len(file))
	for k, v := range file {
		merged[k] = v
	}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(k, EnvPrefix) {
			merged[k] = v
		}
	}
	return merged
}

// ApplyEnv overlays ROCKSTORM_* values onto c and revalidates
// Recognised keys: SEED, TICK_RATE, AUDIO, VOLUME, DEBUG, WIDTH, HEIGHT
func (c *Config) ApplyEnv(env map[string]string) error {
	for key, raw := range env {
		name, ok := strings.CutPrefix(key, EnvPrefix)
		if !ok {
			continue
		}
		raw = strings.TrimSpace(raw)

		var err error
		switch name {
		case "SEED":
			c.Seed, err = strconv.ParseUint(raw, 10, 64)
		case "TICK_RATE":
			c.TickRate, err = strconv.Atoi(raw)
		case "AUDIO":
			c.Audio, err = strconv.ParseBool(raw)
		case "VOLUME":
			c.Volume, err = strconv.ParseFloat(raw, 64)
		case "DEBUG":
			c.Debug, err = strconv.ParseBool(raw)
		case "WIDTH":
			c.Viewport.Width, err = strconv.ParseFloat(raw, 64)
		case "HEIGHT":
			c.Viewport.Height, err = strconv.ParseFloat(raw, 64)
		default:
			continue
		}
		if err != nil {
			return errors.Wrapf(err, "env %s", key)
		}
	}
	return c.Validate()
}
