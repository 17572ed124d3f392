package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	if got := embeddedDefault(); got != DefaultSisyphusConfig() {
		t.Errorf("embedded YAML and DefaultSisyphusConfig() diverged:\n%+v\n%+v", got, DefaultSisyphusConfig())
	}
	if err := DefaultSisyphusConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "terrain:\n  policy: peak\ncharacter:\n  speed: 3\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadSisyphus(path)
	if err != nil {
		t.Fatalf("LoadSisyphus() failed: %v", err)
	}

	if cfg.Terrain.Policy != PolicyPeak {
		t.Errorf("policy = %q, expected %q", cfg.Terrain.Policy, PolicyPeak)
	}
	if cfg.Character.Speed != 3 {
		t.Errorf("speed = %g, expected 3", cfg.Character.Speed)
	}
	// Untouched keys keep their defaults
	if cfg.Stone.Radius != 20 || cfg.Character.Width != 10 {
		t.Errorf("missing keys should keep defaults, got radius %g width %g", cfg.Stone.Radius, cfg.Character.Width)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSisyphus(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("terrain: [unclosed"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := LoadSisyphus(broken); err == nil {
		t.Error("malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("stone:\n  radius: -1\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	_, err := LoadSisyphus(invalid)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("invalid values should wrap ErrInvalidConfig, got %v", err)
	}
}

func TestLoadFallsBackToLocalConfigs(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir) // keep the user's real config out of the test
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join("configs", "sisyphus.yaml"), []byte("stone:\n  radius: 12\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadSisyphus("")
	if err != nil {
		t.Fatalf("LoadSisyphus() failed: %v", err)
	}
	if cfg.Stone.Radius != 12 {
		t.Errorf("radius = %g, expected 12 from ./configs", cfg.Stone.Radius)
	}
}

func TestValidateCollectsAllProblems(t *testing.T) {
	cfg := DefaultSisyphusConfig()
	cfg.Terrain.Policy = "volcano"
	cfg.Character.Speed = 0
	cfg.Stone.MinPoints = 2
	cfg.Input.HoldMS = 0

	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Validate() = %v, expected ErrInvalidConfig", err)
	}

	msg := err.Error()
	for _, want := range []string{"terrain.policy", "character.speed", "stone.min_points", "input.hold_ms"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error should mention %q, got:\n%s", want, msg)
		}
	}
}

func TestValidatePeakPoints(t *testing.T) {
	tests := []struct {
		points int
		valid  bool
	}{
		{41, true},
		{3, true},
		{40, false},
		{1, false},
		{-3, false},
	}

	for _, tc := range tests {
		cfg := DefaultSisyphusConfig()
		cfg.Terrain.Policy = PolicyPeak
		cfg.Terrain.PeakPoints = tc.points
		err := cfg.Validate()
		if (err == nil) != tc.valid {
			t.Errorf("peak_points=%d: Validate() = %v, expected valid=%v", tc.points, err, tc.valid)
		}
		if err != nil && !strings.Contains(err.Error(), "terrain.peak_points") {
			t.Errorf("peak_points=%d: error should name the key, got %v", tc.points, err)
		}
	}
}

func TestValidateChecksOnlySelectedPolicy(t *testing.T) {
	random := DefaultSisyphusConfig()
	random.Terrain.PeakPoints = 0
	if err := random.Validate(); err != nil {
		t.Errorf("random policy should ignore peak_points: %v", err)
	}
	random.Terrain.PointsPerSide = 0
	if err := random.Validate(); err == nil || !strings.Contains(err.Error(), "terrain.points_per_side") {
		t.Errorf("random policy needs points_per_side, got %v", err)
	}

	peak := DefaultSisyphusConfig()
	peak.Terrain.Policy = PolicyPeak
	peak.Terrain.PointsPerSide = 0
	if err := peak.Validate(); err != nil {
		t.Errorf("peak policy should ignore points_per_side: %v", err)
	}
}

func TestValidateRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SisyphusConfig)
		key    string
	}{
		{"zero width", func(c *SisyphusConfig) { c.Character.Width = 0 }, "character.width"},
		{"negative head", func(c *SisyphusConfig) { c.Character.HeadRadius = -1 }, "character.head_radius"},
		{"max below min", func(c *SisyphusConfig) { c.Stone.MaxPoints = c.Stone.MinPoints - 1 }, "stone.max_points"},
		{"no segments", func(c *SisyphusConfig) { c.Stone.CurveSegments = 0 }, "stone.curve_segments"},
		{"fill above one", func(c *SisyphusConfig) { c.Viewport.HeightFill = 1.5 }, "viewport.height_fill"},
		{"crossed breakpoints", func(c *SisyphusConfig) { c.Viewport.MobileAspect = c.Viewport.LaptopAspect / 2 }, "viewport.mobile_aspect"},
		{"mountain below base", func(c *SisyphusConfig) { c.Viewport.MountainHeight = c.Viewport.BaseLine + 0.05 }, "viewport.mountain_height"},
		{"zero base line", func(c *SisyphusConfig) { c.Viewport.BaseLine = 0 }, "viewport.base_line"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSisyphusConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Validate() = %v, expected ErrInvalidConfig", err)
			}
			if !strings.Contains(err.Error(), tc.key) {
				t.Errorf("error should mention %q, got %v", tc.key, err)
			}
		})
	}
}

func TestDefaultYAMLDecodesToDefaults(t *testing.T) {
	var cfg SisyphusConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML should parse: %v", err)
	}
	if cfg != DefaultSisyphusConfig() {
		t.Errorf("embedded YAML should set every key:\n%+v\n%+v", cfg, DefaultSisyphusConfig())
	}
}

func TestParseAndApplyPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    Policy
		wantErr bool
	}{
		{"", "", false},
		{"random", PolicyRandom, false},
		{"peak", PolicyPeak, false},
		{"flat", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePolicy(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePolicy(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParsePolicy(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}

	cfg := DefaultSisyphusConfig()
	ApplyPolicy(&cfg, "")
	if cfg.Terrain.Policy != PolicyRandom {
		t.Error("empty policy should keep the configured one")
	}
	ApplyPolicy(&cfg, PolicyPeak)
	if cfg.Terrain.Policy != PolicyPeak {
		t.Error("ApplyPolicy should override the policy")
	}
}

func TestMarshalIncludesPolicy(t *testing.T) {
	data, err := Marshal(DefaultSisyphusConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "policy: random") {
		t.Errorf("encoded config should contain the policy, got:\n%s", data)
	}
}
