// Package pong implements Pong against a CPU opponent that tracks the ball.
// The player controls the left paddle, the AI controls the right one.
// Physics run in logical playfield units; see Render for terminal output.
package pong

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/vovakirdan/pingpong/internal/config"
)

// BestOf is a match format. The first side to win a majority of the games wins.
type BestOf int

const (
	BestOf3 BestOf = 3
	BestOf5 BestOf = 5
	BestOf7 BestOf = 7
)

// ErrInvalidBestOf is returned for match formats other than 3, 5 or 7.
var ErrInvalidBestOf = errors.New("pong: best-of must be 3, 5 or 7")

// ParseBestOf validates a best-of count.
func ParseBestOf(n int) (BestOf, error) {
	switch b := BestOf(n); b {
	case BestOf3, BestOf5, BestOf7:
		return b, nil
	}
	return 0, fmt.Errorf("%w: got %d", ErrInvalidBestOf, n)
}

// WinningScore returns the points needed to win: ceil(N/2).
func (b BestOf) WinningScore() int {
	return (int(b) + 1) / 2
}

// String returns e.g. "best of 5".
func (b BestOf) String() string {
	return fmt.Sprintf("best of %d", int(b))
}

// State is the match state machine state.
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	if s == StateGameOver {
		return "GameOver"
	}
	return "Playing"
}

// Match owns the ball, both paddles and the scores, and sequences each tick.
type Match struct {
	id     string
	fieldW float64
	fieldH float64

	player *Paddle
	ai     *Paddle
	ball   *Ball

	playerScore  int
	aiScore      int
	bestOf       BestOf
	winningScore int
	gameOver     bool
	winner       Side

	game int    // 1-based number of the game in progress
	tick uint64 // Ticks simulated since the match was created
}

// NewMatch creates a match from the configuration. The seed drives serve
// directions so identical seeds and inputs replay identically.
func NewMatch(cfg config.PongConfig, seed int64) (*Match, error) {
	bestOf, err := ParseBestOf(cfg.Match.BestOf)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // gameplay randomness only
	w, h := cfg.Field.Width, cfg.Field.Height
	pc := cfg.Paddle
	paddleY := h/2 - pc.Height/2

	return &Match{
		id:     uuid.NewString(),
		fieldW: w,
		fieldH: h,
		player: &Paddle{X: pc.Offset, Y: paddleY, W: pc.Width, H: pc.Height, Speed: pc.Speed},
		ai:     &Paddle{X: w - pc.Offset - pc.Width, Y: paddleY, W: pc.Width, H: pc.Height, Speed: pc.Speed},
		ball:   NewBall(w/2, h/2, h, cfg.Ball, rng),

		bestOf:       bestOf,
		winningScore: bestOf.WinningScore(),
		game:         1,
	}, nil
}

// ID returns the match identifier. It is stable across replays.
func (m *Match) ID() string {
	return m.id
}

// State returns the current state machine state.
func (m *Match) State() State {
	if m.gameOver {
		return StateGameOver
	}
	return StatePlaying
}

// GameOver reports whether a side has reached the winning score.
func (m *Match) GameOver() bool {
	return m.gameOver
}

// Winner returns the winning side, or SideNone while playing.
func (m *Match) Winner() Side {
	return m.winner
}

// WinnerText returns the banner shown when the match is over.
func (m *Match) WinnerText() string {
	switch m.winner {
	case SidePlayer:
		return "Player Wins!"
	case SideAI:
		return "AI Wins!"
	default:
		return ""
	}
}

// Scores returns the player and AI scores.
func (m *Match) Scores() (player, ai int) {
	return m.playerScore, m.aiScore
}

// BestOf returns the current match format.
func (m *Match) BestOf() BestOf {
	return m.bestOf
}

// WinningScore returns the points needed to win.
func (m *Match) WinningScore() int {
	return m.winningScore
}

// Game returns the 1-based number of the game in progress.
func (m *Match) Game() int {
	return m.game
}

// Tick returns the number of simulated ticks.
func (m *Match) Tick() uint64 {
	return m.tick
}

// MovePlayer moves the player paddle one step up (dir < 0) or down (dir > 0).
// Input is ignored once the match is over.
func (m *Match) MovePlayer(dir int) {
	if m.gameOver || dir == 0 {
		return
	}
	step := m.player.Speed
	if dir < 0 {
		step = -step
	}
	m.player.Move(step, m.fieldH)
}

// Update advances the match by one tick and returns what happened.
// The AI paddle tracks the ball on every tick that runs, including the one
// that ends the match. Nothing moves and nil is returned while the match is over.
func (m *Match) Update() []Event {
	if m.gameOver {
		return nil
	}
	m.tick++

	var events []Event
	prevVY := m.ball.VY

	m.ball.Move()
	hit := m.ball.CheckCollision(m.player, m.ai)

	// Classify by velocity delta: a vy sign change is a wall bounce
	if (prevVY < 0) != (m.ball.VY < 0) {
		events = append(events, Event{Kind: EventWallBounce})
	}
	if hit {
		side := SideAI
		if m.ball.VX > 0 {
			side = SidePlayer
		}
		events = append(events, Event{Kind: EventPaddleHit, Side: side})
	}

	switch {
	case m.ball.X+m.ball.W <= 0:
		m.aiScore++
		events = m.scored(events, SideAI)
	case m.ball.X >= m.fieldW:
		m.playerScore++
		events = m.scored(events, SidePlayer)
	}

	m.ai.AutoTrack(m.ball, m.fieldH)

	if m.gameOver {
		events = append(events, Event{Kind: EventMatchOver, Side: m.winner})
	}
	return events
}

// scored serves a new ball after a point and checks for a winner.
func (m *Match) scored(events []Event, side Side) []Event {
	m.ball.Reset()
	m.CheckForWinner()
	return append(events, Event{Kind: EventScore, Side: side})
}

// CheckForWinner ends the match when a side reaches the winning score.
// It is a no-op once the match is over.
func (m *Match) CheckForWinner() {
	if m.gameOver {
		return
	}
	switch {
	case m.playerScore >= m.winningScore:
		m.winner = SidePlayer
		m.gameOver = true
	case m.aiScore >= m.winningScore:
		m.winner = SideAI
		m.gameOver = true
	}
}

// ResetGame starts a new game with the same format.
func (m *Match) ResetGame() {
	m.playerScore = 0
	m.aiScore = 0
	m.ball.Reset()
	m.gameOver = false
	m.winner = SideNone
	m.game++
}

// SelectReplay starts a new game in the given format. It only applies once
// the match is over and to best-of 3, 5 or 7, and reports whether it did.
func (m *Match) SelectReplay(b BestOf) bool {
	if !m.gameOver {
		return false
	}
	if _, err := ParseBestOf(int(b)); err != nil {
		return false
	}
	m.bestOf = b
	m.winningScore = b.WinningScore()
	m.ResetGame()
	return true
}
