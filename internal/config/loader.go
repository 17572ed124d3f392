package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// LoadSisyphus loads the game configuration.
// Search order: customPath -> ~/.sisyphus/configs/sisyphus.yaml -> ./configs/sisyphus.yaml -> embedded default
// Files overlay the embedded defaults, so they only need the keys they change.
func LoadSisyphus(customPath string) (SisyphusConfig, error) {
	cfg := embeddedDefault()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := embeddedDefault()
		if err := yaml.Unmarshal(data, &candidate); err != nil {
			continue
		}
		if err := candidate.Validate(); err != nil {
			continue
		}
		return candidate, nil
	}

	return cfg, nil
}

// embeddedDefault parses the embedded YAML, falling back to the hardcoded
// defaults if it cannot be read.
func embeddedDefault() SisyphusConfig {
	cfg := DefaultSisyphusConfig()
	if err := yaml.Unmarshal(defaultSisyphusYAML, &cfg); err != nil {
		return DefaultSisyphusConfig()
	}
	return cfg
}

// searchPaths lists implicit config locations in priority order.
func searchPaths() []string {
	var paths []string
	if userCfgPath := userConfigPath("sisyphus.yaml"); userCfgPath != "" {
		paths = append(paths, userCfgPath)
	}
	return append(paths, filepath.Join("configs", "sisyphus.yaml"))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sisyphus", "configs", filename)
}

// Marshal encodes cfg as YAML.
func Marshal(cfg SisyphusConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// ParsePolicy converts a CLI value into a Policy.
// An empty string means "keep the configured policy".
func ParsePolicy(name string) (Policy, error) {
	switch Policy(name) {
	case "":
		return "", nil
	case PolicyRandom, PolicyPeak:
		return Policy(name), nil
	default:
		return "", fmt.Errorf("%w: unknown terrain policy %q (want %q or %q)",
			ErrInvalidConfig, name, PolicyRandom, PolicyPeak)
	}
}

// ApplyPolicy overrides the terrain policy when p is set.
func ApplyPolicy(cfg *SisyphusConfig, p Policy) {
	if p != "" {
		cfg.Terrain.Policy = p
	}
}
