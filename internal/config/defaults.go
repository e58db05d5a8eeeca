package config

import (
	_ "embed"
)

//go:embed defaults/shaperun.yaml
var defaultShapeRunYAML []byte

// DefaultShapeRunConfig returns the default Shape Run configuration.
// Values are tuned for one tick per display frame at 60 FPS.
func DefaultShapeRunConfig() ShapeRunConfig {
	return ShapeRunConfig{
		Viewport: Viewport{
			Width:  800,
			Height: 600,
		},
		Physics: Physics{
			Gravity:      0.8,
			JumpVelocity: -15,
			RotationStep: 2,
		},
		Player: Player{
			X:           100,
			Size:        40,
			StartOffset: 100,
		},
		Obstacles: Obstacles{
			Count:      10,
			Spacing:    300,
			Speed:      5,
			BandTop:    200,
			MinWidth:   20,
			WidthRange: 50,
			Respawn:    false,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultShapeRunYAML
}
