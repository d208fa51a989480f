package config

import (
	_ "embed"
)

//go:embed defaults/ambient.yaml
var defaultAmbientYAML []byte

// DefaultConfig returns the default ambient configuration.
func DefaultConfig() Config {
	return Config{
		Mode:    "rain",
		Level:   0,
		Density: DensityNormal,
		Wind:    "random",
		FPS:     60,
		Clock: ClockConfig{
			ShowSeconds: true,
			BounceEvery: 6,
			BlinkEvery:  30,
		},
		Theme: ThemeConfig{
			Rain:   "gray",
			Snow:   "bright-white",
			Meteor: "yellow",
			Star:   "bright-yellow",
			Tail:   "default",
			Clock:  "default",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultAmbientYAML
}
