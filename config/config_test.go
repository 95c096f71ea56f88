package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/rockstorm/parameter"
)

// TestDefault_Valid tests the built-in configuration passes validation
func TestDefault_Valid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected defaults to validate, got %v", err)
	}
	if cfg.TickRate != parameter.DefaultTickRate {
		t.Errorf("Expected default tick rate %d, got %d", parameter.DefaultTickRate, cfg.TickRate)
	}
}

// TestParse_OverlaysDefaults tests partial files keep untouched defaults
func TestParse_OverlaysDefaults(t *testing.T) {
	cfg, err := Parse(`
seed = 77
tick_rate = 120

[viewport]
width = 1280

[tuning]
max_asteroids = 4
scale_tiers = [0.5, 2.0]
`)
	if err != nil {
		t.Fatalf("Expected parse to succeed, got %v", err)
	}
	if cfg.Seed != 77 || cfg.TickRate != 120 {
		t.Errorf("Expected seed 77 and tick rate 120, got %d and %d", cfg.Seed, cfg.TickRate)
	}
	if cfg.Viewport.Width != 1280 || cfg.Viewport.Height != 900 {
		t.Errorf("Expected viewport 1280x900, got %vx%v", cfg.Viewport.Width, cfg.Viewport.Height)
	}
	if cfg.Tuning.MaxAsteroids != 4 || len(cfg.Tuning.ScaleTiers) != 2 {
		t.Errorf("Expected tuning overrides applied, got %+v", cfg.Tuning)
	}
	if cfg.Tuning.BulletSpeed != parameter.DefaultTuning().BulletSpeed {
		t.Errorf("Expected untouched tuning to keep its default")
	}
}

// TestParse_Rejects tests invalid values and unknown keys fail with context
func TestParse_Rejects(t *testing.T) {
	cases := []struct {
		name string
		toml string
		want string
	}{
		{"zero viewport", "[viewport]\nwidth = 0", "viewport"},
		{"slow tick", "tick_rate = 5", "tick_rate"},
		{"fast tick", "tick_rate = 1000", "tick_rate"},
		{"loud", "volume = 1.5", "volume"},
		{"negative tuning", "[tuning]\nbullet_speed = -1", "bullet_speed"},
		{"empty tiers", "[tuning]\nscale_tiers = []", "scale_tiers"},
		{"inverted range", "[tuning]\nspawn_speed_min = 500", "spawn_speed"},
		{"margins", "[tuning]\ndespawn_margin = 50", "despawn_margin"},
		{"typo", "tick_rat = 60", "unknown keys: tick_rat"},
		{"syntax", "tick_rate = ", "decode"},
	}
	for _, tc := range cases {
		_, err := Parse(tc.toml)
		if err == nil {
			t.Errorf("%s: expected an error", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%s: expected error mentioning %q, got %v", tc.name, tc.want, err)
		}
	}
}

// TestLoad_File tests file loading and missing-file handling
func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rockstorm.toml")
	if err := os.WriteFile(path, []byte("debug = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path, false)
	if err != nil || !cfg.Debug {
		t.Fatalf("Expected debug loaded from file, got %+v, %v", cfg.Debug, err)
	}

	missing := filepath.Join(dir, "absent.toml")
	if _, err := Load(missing, false); err == nil {
		t.Errorf("Expected error for missing required file")
	}
	cfg, err = Load(missing, true)
	if err != nil || cfg.TickRate != parameter.DefaultTickRate {
		t.Errorf("Expected defaults for optional missing file, got %v", err)
	}
}

// TestApplyEnv tests environment overrides and their validation
func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(map[string]string{
		"ROCKSTORM_SEED":   "9",
		"ROCKSTORM_AUDIO":  "false",
		"ROCKSTORM_WIDTH":  "640",
		"ROCKSTORM_OTHER":  "ignored",
		"UNRELATED_SEED":   "1",
		"ROCKSTORM_VOLUME": " 0.25 ",
	})
	if err != nil {
		t.Fatalf("Expected env to apply, got %v", err)
	}
	if cfg.Seed != 9 || cfg.Audio || cfg.Viewport.Width != 640 || cfg.Volume != 0.25 {
		t.Errorf("Unexpected config after env: %+v", cfg)
	}

	if err := cfg.ApplyEnv(map[string]string{"ROCKSTORM_SEED": "abc"}); err == nil {
		t.Errorf("Expected parse error for bad seed")
	}
	if err := cfg.ApplyEnv(map[string]string{"ROCKSTORM_TICK_RATE": "1"}); err == nil {
		t.Errorf("Expected validation error for tick rate 1")
	}
}

// TestReadEnvFile tests dotenv parsing and the missing file case
func TestReadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("ROCKSTORM_SEED=42\n# comment\nROCKSTORM_DEBUG=true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	vars, err := ReadEnvFile(path)
	if err != nil {
		t.Fatalf("Expected env file to parse, got %v", err)
	}
	if vars["ROCKSTORM_SEED"] != "42" || vars["ROCKSTORM_DEBUG"] != "true" {
		t.Errorf("Unexpected vars %v", vars)
	}

	vars, err = ReadEnvFile(filepath.Join(dir, "none"))
	if err != nil || len(vars) != 0 {
		t.Errorf("Expected empty map for missing file, got %v, %v", vars, err)
	}

	t.Setenv("ROCKSTORM_SEED", "7")
	merged := Environ(map[string]string{"ROCKSTORM_SEED": "42", "ROCKSTORM_DEBUG": "true"})
	if merged["ROCKSTORM_SEED"] != "7" || merged["ROCKSTORM_DEBUG"] != "true" {
		t.Errorf("Expected process env to win over file, got %v", merged)
	}
}
