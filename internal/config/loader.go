package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "shaperun.yaml"

// Load loads Shape Run configuration.
// Search order: customPath -> ~/.shaperun/configs/shaperun.yaml -> ./configs/shaperun.yaml -> embedded default.
// Files may be partial; missing keys keep their default values.
func Load(customPath string) (ShapeRunConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultShapeRunConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultShapeRunConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(fileName), filepath.Join("configs", fileName)} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultShapeRunYAML)
	if err != nil {
		return DefaultShapeRunConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the hard-coded defaults and validates the result.
func Parse(data []byte) (ShapeRunConfig, error) {
	cfg := DefaultShapeRunConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations the simulation cannot run with.
func (c ShapeRunConfig) Validate() error {
	var errs []error
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		errs = append(errs, fmt.Errorf("viewport must be positive, got %vx%v", c.Viewport.Width, c.Viewport.Height))
	}
	if c.Player.Size <= 0 || c.Player.Size > c.Viewport.Height {
		errs = append(errs, fmt.Errorf("player.size %v must be in (0, viewport.height]", c.Player.Size))
	}
	if c.Player.StartOffset < c.Player.Size || c.Player.StartOffset > c.Viewport.Height {
		errs = append(errs, fmt.Errorf("player.start_offset %v must be in [player.size, viewport.height]", c.Player.StartOffset))
	}
	if c.Obstacles.Count < 0 {
		errs = append(errs, fmt.Errorf("obstacles.count must not be negative, got %d", c.Obstacles.Count))
	}
	if c.Obstacles.BandTop < 0 || c.Obstacles.BandTop > c.Viewport.Height {
		errs = append(errs, fmt.Errorf("obstacles.band_top %v must be within the viewport", c.Obstacles.BandTop))
	}
	if c.Obstacles.MinWidth <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.min_width must be positive, got %v", c.Obstacles.MinWidth))
	}
	if c.Obstacles.WidthRange < 0 {
		errs = append(errs, fmt.Errorf("obstacles.width_range must not be negative, got %v", c.Obstacles.WidthRange))
	}
	if c.Obstacles.Spacing <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.spacing must be positive, got %v", c.Obstacles.Spacing))
	}
	if c.Obstacles.Speed <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.speed must be positive, got %v", c.Obstacles.Speed))
	}
	return errors.Join(errs...)
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg ShapeRunConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shaperun", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal and fixed leave the loaded values untouched.
func ApplyPreset(cfg *ShapeRunConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Obstacles.Speed *= 0.8
		cfg.Obstacles.Spacing *= 1.2
	case DifficultyHard:
		cfg.Obstacles.Speed *= 1.3
		cfg.Obstacles.Spacing *= 0.85
	}
}
