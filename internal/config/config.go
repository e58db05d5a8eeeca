// Package config provides YAML-based game configuration loading and
// difficulty presets for Shape Run.
package config

// ShapeRunConfig contains all configuration for the Shape Run game.
// Distances are logical playfield pixels, speeds are pixels per tick.
type ShapeRunConfig struct {
	Viewport  Viewport  `yaml:"viewport"`
	Physics   Physics   `yaml:"physics"`
	Player    Player    `yaml:"player"`
	Obstacles Obstacles `yaml:"obstacles"`
}

// Viewport defines the logical playfield size.
type Viewport struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Physics defines per-tick physics constants.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpVelocity float64 `yaml:"jump_velocity"` // Negative = up
	RotationStep float64 `yaml:"rotation_step"` // Degrees per tick
}

// Player defines player parameters.
type Player struct {
	X           float64 `yaml:"x"`
	Size        float64 `yaml:"size"`
	StartOffset float64 `yaml:"start_offset"` // Initial Y is viewport height minus this
}

// Obstacles defines obstacle spawning and movement.
type Obstacles struct {
	Count      int     `yaml:"count"`   // Obstacles in the initial batch
	Spacing    float64 `yaml:"spacing"` // Horizontal distance between spawns
	Speed      float64 `yaml:"speed"`
	BandTop    float64 `yaml:"band_top"` // Smallest obstacle top Y
	MinWidth   float64 `yaml:"min_width"`
	WidthRange float64 `yaml:"width_range"`
	Respawn    bool    `yaml:"respawn"` // Keep spawning after the initial batch
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// Floor returns the largest player Y for the configured viewport.
func (c ShapeRunConfig) Floor() float64 {
	return c.Viewport.Height - c.Player.Size
}
