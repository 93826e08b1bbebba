package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pingpong/internal/audio"
	"github.com/vovakirdan/pingpong/internal/config"
	"github.com/vovakirdan/pingpong/internal/core"
	"github.com/vovakirdan/pingpong/internal/spectate"
	"github.com/vovakirdan/pingpong/internal/storage"
)

// Env carries everything a session needs. It is built once by the entry point
// and copied into each session; Ledger and Hub may be nil.
type Env struct {
	Config  config.PongConfig
	Runtime core.RuntimeConfig
	Logger  *log.Logger
	Cues    audio.Player
	Ledger  *storage.Store
	Hub     *spectate.Hub
	Session string // player name, or the SSH user
}

// withDefaults fills in the optional collaborators.
func (e Env) withDefaults() Env {
	if e.Logger == nil {
		e.Logger = log.Default()
	}
	if e.Cues == nil {
		e.Cues = audio.Silent{}
	}
	if e.Runtime.TickRate <= 0 {
		e.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	if e.Session == "" {
		e.Session = "player"
	}
	return e
}
