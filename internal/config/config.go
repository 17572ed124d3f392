// Package config provides YAML-based game configuration loading and
// validation for the Sisyphus game.
package config

// SisyphusConfig contains all tunables of the mountain, the actors and the
// viewport fitting rules.
type SisyphusConfig struct {
	Terrain   TerrainConfig   `yaml:"terrain"`
	Character CharacterConfig `yaml:"character"`
	Stone     StoneConfig     `yaml:"stone"`
	Viewport  ViewportConfig  `yaml:"viewport"`
	Input     InputConfig     `yaml:"input"`
}

// TerrainConfig selects the generation policy and its parameters.
type TerrainConfig struct {
	Policy        Policy       `yaml:"policy" validate:"oneof=random peak"` // "random" or "peak"
	PointsPerSide int          `yaml:"points_per_side"`                     // random: samples per slope
	PeakPoints    int          `yaml:"peak_points"`                         // peak: total samples, odd
	LeftJitter    JitterConfig `yaml:"left_jitter"`
	RightJitter   JitterConfig `yaml:"right_jitter"`
}

// JitterConfig describes the random vertical offset of a slope sample as
// fractions of the mountain height: offset = U[0,1)*h*Span - h*Shift.
type JitterConfig struct {
	Span  float64 `yaml:"span"`
	Shift float64 `yaml:"shift"`
}

// CharacterConfig defines the pusher's box and speed.
type CharacterConfig struct {
	Width      float64 `yaml:"width" validate:"gt=0"`
	Height     float64 `yaml:"height" validate:"gt=0"`
	HeadRadius float64 `yaml:"head_radius" validate:"gte=0"`
	Speed      float64 `yaml:"speed" validate:"gt=0"` // Logical units per frame
}

// StoneConfig defines the stone's silhouette and motion.
type StoneConfig struct {
	Radius           float64 `yaml:"radius" validate:"gt=0"`
	MinPoints        int     `yaml:"min_points" validate:"gte=3"`
	MaxPoints        int     `yaml:"max_points" validate:"gtefield=MinPoints"`
	RadiusJitter     float64 `yaml:"radius_jitter" validate:"gte=0"`  // Max extra radius as a fraction of Radius
	SpinStep         float64 `yaml:"spin_step" validate:"gte=0"`      // Radians per frame while moving
	ResetOffsetRadii float64 `yaml:"reset_offset_radii"`              // Reset x = left edge + radii*Radius
	CurveSegments    int     `yaml:"curve_segments" validate:"gte=1"` // Flattening steps per outline curve
}

// ViewportConfig holds the aspect-ratio breakpoints used to fit the play
// area into the terminal, and the mountain's share of it.
type ViewportConfig struct {
	LogicalHeight  float64 `yaml:"logical_height" validate:"gt=0"`
	HeightFill     float64 `yaml:"height_fill" validate:"gt=0,lte=1"`                 // Share of device height used
	LaptopAspect   float64 `yaml:"laptop_aspect" validate:"gt=0"`                     // h/w below this is "wide"
	LaptopBase     float64 `yaml:"laptop_base" validate:"gt=0"`                       // Canvas h/w for wide devices
	MobileAspect   float64 `yaml:"mobile_aspect" validate:"gtefield=LaptopAspect"`    // h/w above this is "tall"
	MobileBase     float64 `yaml:"mobile_base" validate:"gt=0"`                       // Canvas h/w for tall devices
	MountainWidth  float64 `yaml:"mountain_width" validate:"gt=0,lte=1"`              // Share of canvas width
	MountainHeight float64 `yaml:"mountain_height" validate:"gt=0,ltefield=BaseLine"` // Share of canvas height
	BaseLine       float64 `yaml:"base_line" validate:"gt=0,lte=1"`                   // Mountain base y as share of canvas height
}

// InputConfig tunes the input adapter.
type InputConfig struct {
	AssistPush bool `yaml:"assist_push"`             // Right also pushes while left of the peak
	HoldMS     int  `yaml:"hold_ms" validate:"gt=0"` // Key release timeout for terminals
}

// Policy names a terrain generation policy.
type Policy string

const (
	// PolicyRandom generates two jittered slopes meeting at the peak.
	PolicyRandom Policy = "random"
	// PolicyPeak generates an evenly spaced, noise-free single peak.
	PolicyPeak Policy = "peak"
)
