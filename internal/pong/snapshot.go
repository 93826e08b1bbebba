package pong

import (
	"github.com/vovakirdan/pingpong/internal/core"
)

// Snapshot is a read-only copy of everything needed to draw a frame.
// It shares no memory with the match and is safe to hand to other goroutines.
type Snapshot struct {
	MatchID      string   `json:"match_id" msgpack:"match_id"`
	Game         int      `json:"game" msgpack:"game"`
	Tick         uint64   `json:"tick" msgpack:"tick"`
	FieldW       float64  `json:"field_w" msgpack:"field_w"`
	FieldH       float64  `json:"field_h" msgpack:"field_h"`
	Player       core.Box `json:"player" msgpack:"player"`
	AI           core.Box `json:"ai" msgpack:"ai"`
	Ball         core.Box `json:"ball" msgpack:"ball"`
	PlayerScore  int      `json:"player_score" msgpack:"player_score"`
	AIScore      int      `json:"ai_score" msgpack:"ai_score"`
	BestOf       int      `json:"best_of" msgpack:"best_of"`
	WinningScore int      `json:"winning_score" msgpack:"winning_score"`
	GameOver     bool     `json:"game_over" msgpack:"game_over"`
	Winner       string   `json:"winner" msgpack:"winner"`
	WinnerText   string   `json:"winner_text,omitempty" msgpack:"winner_text,omitempty"`
}

// Snapshot returns the current match state.
func (m *Match) Snapshot() Snapshot {
	return Snapshot{
		MatchID:      m.id,
		Game:         m.game,
		Tick:         m.tick,
		FieldW:       m.fieldW,
		FieldH:       m.fieldH,
		Player:       m.player.Rect(),
		AI:           m.ai.Rect(),
		Ball:         m.ball.Rect(),
		PlayerScore:  m.playerScore,
		AIScore:      m.aiScore,
		BestOf:       int(m.bestOf),
		WinningScore: m.winningScore,
		GameOver:     m.gameOver,
		Winner:       m.winner.String(),
		WinnerText:   m.WinnerText(),
	}
}
