package pong

import (
	"github.com/vovakirdan/pingpong/internal/core"
)

// Paddle is a vertical paddle in logical playfield units.
type Paddle struct {
	X, Y  float64
	W, H  float64
	Speed float64 // Units per tick
}

// Move shifts the paddle vertically, keeping it inside [0, fieldH-H].
func (p *Paddle) Move(dy, fieldH float64) {
	p.Y = core.ClampF(p.Y+dy, 0, fieldH-p.H)
}

// AutoTrack moves the paddle center toward the ball center by at most Speed.
func (p *Paddle) AutoTrack(ball *Ball, fieldH float64) {
	diff := ball.Rect().CenterY() - p.Rect().CenterY()
	p.Move(core.ClampF(diff, -p.Speed, p.Speed), fieldH)
}

// Rect returns the paddle's bounding box.
func (p *Paddle) Rect() core.Box {
	return core.Box{X: p.X, Y: p.Y, W: p.W, H: p.H}
}
