// Package config provides YAML-based configuration loading for the pong game.
package config

// PongConfig contains all configuration for a Pong match.
type PongConfig struct {
	Field  FieldConfig  `yaml:"field"`
	Paddle PaddleConfig `yaml:"paddle"`
	Ball   BallConfig   `yaml:"ball"`
	Match  MatchConfig  `yaml:"match"`
	Audio  AudioConfig  `yaml:"audio"`
}

// FieldConfig defines the logical playfield. Physics runs in these units and
// the presentation layer scales them to terminal cells.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines paddle geometry and movement.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`  // Units per tick
	Offset float64 `yaml:"offset"` // Distance from the side walls
}

// BallConfig defines ball size and speed parameters.
type BallConfig struct {
	Size         float64 `yaml:"size"`
	ServeSpeedX  float64 `yaml:"serve_speed_x"` // Initial |vx|
	ServeSpeedY  float64 `yaml:"serve_speed_y"` // |vy| drawn on every serve
	MaxSpeed     float64 `yaml:"max_speed"`     // Soft cap, see Ball.CheckCollision
	BounceFactor float64 `yaml:"bounce_factor"` // |vx| multiplier on paddle hits below the cap
}

// MatchConfig defines the match format.
type MatchConfig struct {
	BestOf int `yaml:"best_of"` // 3, 5 or 7
}

// AudioConfig points at the wav assets used for the sound cues.
// Missing files leave the corresponding cue silent.
type AudioConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WallBounce string `yaml:"wall_bounce"`
	PaddleHit  string `yaml:"paddle_hit"`
	Score      string `yaml:"score"`
}
