package pong

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pingpong/internal/config"
)

func newTestBall() *Ball {
	cfg := config.DefaultPongConfig()
	return NewBall(400, 300, cfg.Field.Height, cfg.Ball, rand.New(rand.NewSource(1)))
}

func TestNewBallServe(t *testing.T) {
	b := newTestBall()

	assert.Equal(t, 400.0, b.X)
	assert.Equal(t, 300.0, b.Y)
	assert.Equal(t, 3.0, math.Abs(b.VX))
	assert.Equal(t, 2.0, math.Abs(b.VY))
}

func TestBallMoveWithoutWall(t *testing.T) {
	b := newTestBall()
	b.X, b.Y = 400, 300
	b.VX, b.VY = 3, -2

	b.Move()

	assert.Equal(t, 403.0, b.X)
	assert.Equal(t, 298.0, b.Y)
	assert.Equal(t, -2.0, b.VY, "vy must not change away from walls")
}

func TestBallMoveTopWall(t *testing.T) {
	b := newTestBall()
	b.X, b.Y = 400, 1
	b.VX, b.VY = 3, -2

	b.Move()

	assert.Equal(t, -1.0, b.Y)
	assert.Equal(t, 2.0, b.VY)
}

func TestBallMoveBottomWall(t *testing.T) {
	b := newTestBall()
	b.Y = 600 - b.H - 1
	b.VY = 2

	b.Move()

	assert.Equal(t, -2.0, b.VY)
}

func TestBallMoveFlipsOncePerCrossing(t *testing.T) {
	b := newTestBall()
	b.VX, b.VY = 0.5, 5

	for i := range 1000 {
		prev := b.VY
		b.Move()

		crossed := b.Y <= 0 || b.Y+b.H >= b.fieldH
		flipped := (prev < 0) != (b.VY < 0)
		require.Equal(t, crossed, flipped, "tick %d: crossed=%v flipped=%v", i, crossed, flipped)
		require.Equal(t, math.Abs(prev), math.Abs(b.VY), "tick %d: wall bounce must keep |vy|", i)
	}
}

func TestBallCheckCollisionPlayer(t *testing.T) {
	player := &Paddle{X: 10, Y: 250, W: 10, H: 100, Speed: 7}
	ai := &Paddle{X: 780, Y: 250, W: 10, H: 100, Speed: 7}

	b := newTestBall()
	b.X, b.Y = 15, 300
	b.VX, b.VY = -3, 2

	require.True(t, b.CheckCollision(player, ai))
	assert.InDelta(t, 3.3, b.VX, 1e-9, "below max speed the ball reflects and accelerates")
	assert.Equal(t, 2.0, b.VY)
	assert.Equal(t, player.X+player.W, b.X, "ball must sit flush against the paddle")
}

func TestBallCheckCollisionAI(t *testing.T) {
	player := &Paddle{X: 10, Y: 250, W: 10, H: 100, Speed: 7}
	ai := &Paddle{X: 780, Y: 250, W: 10, H: 100, Speed: 7}

	b := newTestBall()
	b.X, b.Y = 776, 300
	b.VX, b.VY = 3, 2

	require.True(t, b.CheckCollision(player, ai))
	assert.InDelta(t, -3.3, b.VX, 1e-9)
	assert.Equal(t, ai.X-b.W, b.X)
}

func TestBallCheckCollisionAtMaxSpeed(t *testing.T) {
	player := &Paddle{X: 10, Y: 250, W: 10, H: 100, Speed: 7}
	ai := &Paddle{X: 780, Y: 250, W: 10, H: 100, Speed: 7}

	b := newTestBall()
	b.X, b.Y = 15, 300
	b.VX, b.VY = -6.5, 3 // speed ~7.16

	require.True(t, b.CheckCollision(player, ai))
	assert.Equal(t, 6.5, b.VX, "at or above max speed the ball only reflects")
}

func TestBallSoftCapCanOvershoot(t *testing.T) {
	player := &Paddle{X: 10, Y: 250, W: 10, H: 100, Speed: 7}
	ai := &Paddle{X: 780, Y: 250, W: 10, H: 100, Speed: 7}

	b := newTestBall()
	b.X, b.Y = 15, 300
	b.VX, b.VY = -6.9, 0

	require.True(t, b.CheckCollision(player, ai))
	assert.Greater(t, b.Speed(), b.MaxSpeed, "soft cap amplifies once more when crossing the threshold")
}

func TestBallCheckCollisionMiss(t *testing.T) {
	player := &Paddle{X: 10, Y: 250, W: 10, H: 100, Speed: 7}
	ai := &Paddle{X: 780, Y: 250, W: 10, H: 100, Speed: 7}

	tests := []struct {
		name string
		x, y float64
	}{
		{"open field", 400, 300},
		{"above player paddle", 15, 200},
		{"touching player edge", 20, 300},
		{"touching ai edge", 773, 300},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := newTestBall()
			b.X, b.Y = tc.x, tc.y
			b.VX, b.VY = -3, 2

			assert.False(t, b.CheckCollision(player, ai))
			assert.Equal(t, -3.0, b.VX)
			assert.Equal(t, tc.x, b.X)
		})
	}
}

func TestBallCheckCollisionPlayerWinsTie(t *testing.T) {
	player := &Paddle{X: 0, Y: 0, W: 10, H: 600}
	ai := &Paddle{X: 12, Y: 0, W: 10, H: 600}

	b := newTestBall()
	b.X, b.Y = 8, 300 // overlaps both paddles
	b.VX, b.VY = -3, 2

	require.True(t, b.CheckCollision(player, ai))
	assert.Equal(t, player.X+player.W, b.X, "only the player side is resolved")
	assert.InDelta(t, 3.3, b.VX, 1e-9, "vx flips exactly once")
}

func TestBallReset(t *testing.T) {
	b := newTestBall()
	b.X, b.Y = -30, 120
	b.VX, b.VY = -4.4, -1

	b.Reset()

	assert.Equal(t, 400.0, b.X)
	assert.Equal(t, 300.0, b.Y)
	assert.Equal(t, 4.4, b.VX, "rally speed persists, direction flips")
	assert.Equal(t, 2.0, math.Abs(b.VY))
}
