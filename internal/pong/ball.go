package pong

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/pingpong/internal/config"
	"github.com/vovakirdan/pingpong/internal/core"
)

// Ball is the ball in logical playfield units. (X, Y) is the top-left corner.
type Ball struct {
	X, Y   float64
	W, H   float64
	VX, VY float64

	// MaxSpeed is a soft cap: paddle hits stop accelerating the ball once its
	// speed reaches it, but the speed is never clamped.
	MaxSpeed     float64
	BounceFactor float64

	originX, originY float64
	fieldH           float64
	serveY           float64
	rng              *rand.Rand
}

// NewBall creates a ball spawning at (x, y) with a random serve direction.
func NewBall(x, y, fieldH float64, cfg config.BallConfig, rng *rand.Rand) *Ball {
	b := &Ball{
		X:            x,
		Y:            y,
		W:            cfg.Size,
		H:            cfg.Size,
		MaxSpeed:     cfg.MaxSpeed,
		BounceFactor: cfg.BounceFactor,
		originX:      x,
		originY:      y,
		fieldH:       fieldH,
		serveY:       cfg.ServeSpeedY,
		rng:          rng,
	}
	b.VX = cfg.ServeSpeedX * b.randomSign()
	b.VY = b.serveY * b.randomSign()
	return b
}

// randomSign returns -1 or +1 with equal probability.
func (b *Ball) randomSign() float64 {
	if b.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// Move advances the ball by its velocity and bounces it off the top and
// bottom walls. Horizontal exits are left to the match's scoring check.
func (b *Ball) Move() {
	b.X += b.VX
	b.Y += b.VY

	if b.Y <= 0 || b.Y+b.H >= b.fieldH {
		b.VY = -b.VY
	}
}

// CheckCollision resolves a hit against either paddle and reports whether one
// happened. The player paddle is tested first; when the ball overlaps both,
// only the player side is resolved.
func (b *Ball) CheckCollision(player, ai *Paddle) bool {
	speed := b.Speed()
	rect := b.Rect()

	if rect.Intersects(player.Rect()) {
		b.reflect(speed)
		b.X = player.X + player.W
		return true
	}

	if rect.Intersects(ai.Rect()) {
		b.reflect(speed)
		b.X = ai.X - b.W
		return true
	}

	return false
}

// reflect inverts horizontal velocity, accelerating below the soft cap.
func (b *Ball) reflect(speed float64) {
	if speed < b.MaxSpeed {
		b.VX *= -b.BounceFactor
	} else {
		b.VX *= -1
	}
}

// Reset returns the ball to its spawn point and serves it toward the side
// that just lost the point. Horizontal speed gained in the rally is kept.
func (b *Ball) Reset() {
	b.X = b.originX
	b.Y = b.originY
	b.VX = -b.VX
	b.VY = b.serveY * b.randomSign()
}

// Speed returns the magnitude of the velocity vector.
func (b *Ball) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}

// Rect returns the ball's bounding box.
func (b *Ball) Rect() core.Box {
	return core.Box{X: b.X, Y: b.Y, W: b.W, H: b.H}
}
