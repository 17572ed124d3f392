package config

import (
	_ "embed"
)

//go:embed defaults/sisyphus.yaml
var defaultSisyphusYAML []byte

// DefaultSisyphusConfig returns the built-in configuration.
// It mirrors defaults/sisyphus.yaml and is used when the embedded file
// cannot be parsed.
func DefaultSisyphusConfig() SisyphusConfig {
	return SisyphusConfig{
		Terrain: TerrainConfig{
			Policy:        PolicyRandom,
			PointsPerSide: 20,
			PeakPoints:    41,
			LeftJitter:    JitterConfig{Span: 0.1, Shift: 0.02},
			RightJitter:   JitterConfig{Span: 0.05, Shift: 0.025},
		},
		Character: CharacterConfig{
			Width:      10,
			Height:     30,
			HeadRadius: 10,
			Speed:      2,
		},
		Stone: StoneConfig{
			Radius:           20,
			MinPoints:        8,
			MaxPoints:        12,
			RadiusJitter:     0.3,
			SpinStep:         0.1,
			ResetOffsetRadii: 2,
			CurveSegments:    6,
		},
		Viewport: ViewportConfig{
			LogicalHeight:  300,
			HeightFill:     0.8,
			LaptopAspect:   11.0 / 16.0,
			LaptopBase:     3.0 / 4.0,
			MobileAspect:   15.0 / 9.0,
			MobileBase:     3.0 / 2.0,
			MountainWidth:  0.7,
			MountainHeight: 0.8,
			BaseLine:       0.9,
		},
		Input: InputConfig{
			AssistPush: true,
			HoldMS:     550,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSisyphusYAML
}
