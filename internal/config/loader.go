package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned by Validate for unusable configurations.
var ErrInvalid = errors.New("config: invalid configuration")

// Load loads the Pong configuration.
// Search order: customPath -> ~/.pingpong/pong.yaml -> ./configs/pong.yaml -> embedded default
//
// Values missing from a file keep their defaults.
func Load(customPath string) (PongConfig, error) {
	cfg := DefaultPongConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("pong.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, cfg.Validate()
			}
			cfg = DefaultPongConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "pong.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, cfg.Validate()
		}
		cfg = DefaultPongConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultPongYAML, &cfg); err != nil {
		return DefaultPongConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns ~/.pingpong/<filename>, or "" without a home directory.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pingpong", filename)
}

// Validate reports geometry that the physics cannot run with and unknown
// match formats.
func (c PongConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("%w: field must be positive, got %gx%g", ErrInvalid, c.Field.Width, c.Field.Height)
	case c.Paddle.Width <= 0 || c.Paddle.Height <= 0:
		return fmt.Errorf("%w: paddle must be positive, got %gx%g", ErrInvalid, c.Paddle.Width, c.Paddle.Height)
	case c.Paddle.Height > c.Field.Height:
		return fmt.Errorf("%w: paddle height %g exceeds field height %g", ErrInvalid, c.Paddle.Height, c.Field.Height)
	case c.Paddle.Speed <= 0:
		return fmt.Errorf("%w: paddle speed must be positive", ErrInvalid)
	case c.Paddle.Offset < 0:
		return fmt.Errorf("%w: paddle offset must not be negative, got %g", ErrInvalid, c.Paddle.Offset)
	case 2*(c.Paddle.Offset+c.Paddle.Width) >= c.Field.Width:
		return fmt.Errorf("%w: paddles overlap: offset %g and width %g on a field %g wide",
			ErrInvalid, c.Paddle.Offset, c.Paddle.Width, c.Field.Width)
	case c.Ball.Size <= 0:
		return fmt.Errorf("%w: ball size must be positive", ErrInvalid)
	case c.Ball.Size >= c.Field.Height:
		return fmt.Errorf("%w: ball size %g must be smaller than field height %g", ErrInvalid, c.Ball.Size, c.Field.Height)
	case c.Ball.ServeSpeedX <= 0:
		return fmt.Errorf("%w: ball serve_speed_x must be positive, got %g", ErrInvalid, c.Ball.ServeSpeedX)
	case c.Ball.ServeSpeedY < 0:
		return fmt.Errorf("%w: ball serve_speed_y must not be negative, got %g", ErrInvalid, c.Ball.ServeSpeedY)
	case c.Ball.MaxSpeed <= 0:
		return fmt.Errorf("%w: ball max_speed must be positive", ErrInvalid)
	case c.Ball.BounceFactor < 1:
		return fmt.Errorf("%w: ball bounce_factor must be >= 1, got %g", ErrInvalid, c.Ball.BounceFactor)
	case c.Match.BestOf != 3 && c.Match.BestOf != 5 && c.Match.BestOf != 7:
		return fmt.Errorf("%w: match best_of must be 3, 5 or 7, got %d", ErrInvalid, c.Match.BestOf)
	}
	return nil
}

// Marshal renders the configuration as YAML.
func (c PongConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}
