package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"os/user"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/vovakirdan/pingpong/internal/audio"
	"github.com/vovakirdan/pingpong/internal/platform/tui"
	"github.com/vovakirdan/pingpong/internal/spectate"
	"github.com/vovakirdan/pingpong/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match against the computer",
	Long: `Start a match. The first side to win a majority of the games wins.

Controls:
  W/Up       - Move up
  S/Down     - Move down
  P          - Pause
  Space/R    - Play again (after game over)
  3/5/7      - Play again as best of 3, 5 or 7 (after game over)
  Tab        - Results for this session
  Ctrl+S     - Screenshot to ~/.pingpong/screenshots
  Q/Ctrl+C   - Quit

Examples:
  pingpong play
  pingpong play --best-of 3
  pingpong play --seed 42 --mute
  pingpong play --watch :8080 --log-file pong.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

var errQuit = errors.New("quit")

func runPlay(_ *cobra.Command, _ []string) error {
	logger, logCloser, err := newLogger(flagLogLevel, flagLogFile)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	rt, err := runtimeConfig(width, height)
	if err != nil {
		return err
	}

	var cues audio.Player = audio.Silent{}
	if cfg.Audio.Enabled {
		bank := audio.NewSoundBank(cfg.Audio, logger)
		if err := bank.Start(); err != nil {
			logger.Warn("audio disabled", "error", err)
		} else {
			defer bank.Close()
			cues = bank
		}
	}

	ledger, err := storage.Open()
	if err != nil {
		logger.Warn("results ledger unavailable", "error", err)
		ledger = nil
	} else {
		defer ledger.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	var hub *spectate.Hub
	if flagWatch != "" {
		hub = spectate.NewHub(logger)
		g.Go(func() error {
			return hub.ListenAndServe(gctx, flagWatch)
		})
	}

	// Logs on stderr would draw over the game.
	if flagLogFile == "" {
		logger.SetOutput(io.Discard)
	}

	env := tui.Env{
		Config:  cfg,
		Runtime: rt,
		Logger:  logger,
		Cues:    cues,
		Ledger:  ledger,
		Hub:     hub,
		Session: playerName(),
	}

	// errQuit cancels gctx so the feed stops with the game.
	g.Go(func() error {
		if err := tui.Run(gctx, env); err != nil {
			return err
		}
		return errQuit
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	return nil
}

// playerName uses the OS user for the results table.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "player"
}
