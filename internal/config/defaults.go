package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Paddle: PaddleConfig{
			Width:  10,
			Height: 100,
			Speed:  7,
			Offset: 10,
		},
		Ball: BallConfig{
			Size:         7,
			ServeSpeedX:  3,
			ServeSpeedY:  2,
			MaxSpeed:     7,
			BounceFactor: 1.1,
		},
		Match: MatchConfig{
			BestOf: 5,
		},
		Audio: AudioConfig{
			Enabled:    true,
			WallBounce: "assets/wall.wav",
			PaddleHit:  "assets/collision.wav",
			Score:      "assets/win_point.wav",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPongYAML
}
