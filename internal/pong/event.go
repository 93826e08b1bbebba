package pong

// Side identifies one of the two players.
type Side int

const (
	SideNone Side = iota
	SidePlayer
	SideAI
)

// String returns a lowercase name for the side.
func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideAI:
		return "ai"
	default:
		return "none"
	}
}

// EventKind classifies what happened during a tick.
type EventKind int

const (
	// EventWallBounce fires when the ball's vertical velocity flipped.
	EventWallBounce EventKind = iota + 1
	// EventPaddleHit fires when the ball was reflected by a paddle.
	EventPaddleHit
	// EventScore fires when the ball left the field. Side is the scorer.
	EventScore
	// EventMatchOver fires once when a side reaches the winning score.
	EventMatchOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventWallBounce:
		return "wall_bounce"
	case EventPaddleHit:
		return "paddle_hit"
	case EventScore:
		return "score"
	case EventMatchOver:
		return "match_over"
	default:
		return "unknown"
	}
}

// Event is a fire-and-forget notification produced by Match.Update.
type Event struct {
	Kind EventKind
	Side Side // Paddle owner, scorer or winner; SideNone for wall bounces
}
