package pong

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaddleMoveClamps(t *testing.T) {
	tests := []struct {
		name     string
		y, dy    float64
		expected float64
	}{
		{"free move up", 250, -7, 243},
		{"free move down", 250, 7, 257},
		{"clamped at top", 3, -7, 0},
		{"clamped at bottom", 497, 7, 500},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := &Paddle{X: 10, Y: tc.y, W: 10, H: 100, Speed: 7}
			p.Move(tc.dy, 600)
			assert.Equal(t, tc.expected, p.Y)
		})
	}
}

func TestPaddleAutoTrack(t *testing.T) {
	tests := []struct {
		name     string
		paddleY  float64
		ballY    float64 // ball top; ball is 7 tall so its center is ballY+3.5
		expected float64
	}{
		{"ball below, full step", 250, 396.5, 257},
		{"ball above, full step", 250, 96.5, 243},
		{"ball close, partial step", 250, 298.5, 252},
		{"ball centered, no move", 250, 296.5, 250},
		{"clamped at bottom", 495, 592, 500},
		{"clamped at top", 4, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := &Paddle{X: 780, Y: tc.paddleY, W: 10, H: 100, Speed: 7}
			b := newTestBall()
			b.Y = tc.ballY

			p.AutoTrack(b, 600)
			assert.InDelta(t, tc.expected, p.Y, 1e-9)
		})
	}
}
