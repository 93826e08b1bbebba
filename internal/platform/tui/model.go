package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pingpong/internal/audio"
	"github.com/vovakirdan/pingpong/internal/core"
	"github.com/vovakirdan/pingpong/internal/pong"
	"github.com/vovakirdan/pingpong/internal/storage"
)

// Model is the Bubble Tea model for one player's match against the AI.
// Ticks stop while the match is over and resume on a replay key.
type Model struct {
	env         Env
	match       *pong.Match
	screen      *core.Screen
	config      core.RuntimeConfig
	inputFrame  core.InputFrame
	keys        KeyMap
	help        help.Model
	results     resultsView
	tally       storage.Tally
	ticking     bool // a TickMsg is scheduled
	paused      bool
	showResults bool
	quitting    bool
	notice      string // last screenshot/ledger message
}

// NewModel creates a model with a fresh match.
func NewModel(env Env) (Model, error) {
	env = env.withDefaults()

	cfg := env.Runtime
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		def := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	match, err := pong.NewMatch(env.Config, cfg.Seed)
	if err != nil {
		return Model{}, fmt.Errorf("tui: cannot create match: %w", err)
	}
	env.Logger = env.Logger.With("match", match.ID())

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		env:        env,
		match:      match,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)), // last row is the status line
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       h,
		results:    newResultsView(cfg.ScreenW, cfg.ScreenH),
		ticking:    true,
	}
	m.refreshResults()
	return m, nil
}

// Match returns the match driven by this model.
func (m Model) Match() *pong.Match {
	return m.match
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.env.Logger.Debug("match started", "session", m.env.Session, "format", m.match.BestOf())
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionScreenshot:
		path, err := m.saveScreenshot()
		if err != nil {
			m.env.Logger.Warn("screenshot failed", "error", err)
			m.notice = "screenshot failed"
		} else {
			m.notice = "saved " + path
		}
		return m, nil

	case core.ActionResults:
		m.showResults = !m.showResults
		m.inputFrame.Clear()
		if m.showResults {
			m.refreshResults()
		}
		return m, nil

	case core.ActionPause:
		if !m.match.GameOver() {
			m.paused = !m.paused
		}
		return m, nil

	case core.ActionRestart:
		if m.match.GameOver() {
			m.match.ResetGame()
			return m.resume()
		}
		return m, nil

	case core.ActionBestOf3, core.ActionBestOf5, core.ActionBestOf7:
		if m.match.SelectReplay(replayFormat(action)) {
			return m.resume()
		}
		return m, nil
	}

	if m.showResults {
		var cmd tea.Cmd
		m.results, cmd = m.results.update(msg)
		return m, cmd
	}

	// Movement applies on the next tick
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

func replayFormat(a core.Action) pong.BestOf {
	switch a {
	case core.ActionBestOf3:
		return pong.BestOf3
	case core.ActionBestOf7:
		return pong.BestOf7
	default:
		return pong.BestOf5
	}
}

// resume restarts the tick loop after a replay.
func (m Model) resume() (tea.Model, tea.Cmd) {
	m.env.Logger.Debug("replay", "game", m.match.Game(), "format", m.match.BestOf())
	m.paused = false
	m.showResults = false
	m.inputFrame.Clear()
	m.publish()
	if m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, tickCmd(m.config.TickRate)
}

// handleResize processes window resize events. The playfield is scaled so
// the match keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width

	m.results = newResultsView(msg.Width, msg.Height)
	m.refreshResults()
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.match.GameOver() {
		m.ticking = false
		return m, nil
	}
	// The results table covers the playfield, so the match holds until it closes.
	if m.paused || m.showResults {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	switch {
	case m.inputFrame.Has(core.ActionUp):
		m.match.MovePlayer(-1)
	case m.inputFrame.Has(core.ActionDown):
		m.match.MovePlayer(1)
	}

	m.dispatch(m.match.Update())
	m.publish()

	// Clear input for next frame
	m.inputFrame.Clear()

	if m.match.GameOver() {
		// Wait for a replay key instead of polling.
		m.ticking = false
		return m, nil
	}
	return m, tickCmd(m.config.TickRate)
}

// dispatch routes match events to audio, the log and the ledger.
func (m *Model) dispatch(events []pong.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case pong.EventWallBounce:
			m.env.Cues.Play(audio.CueWallBounce)

		case pong.EventPaddleHit:
			m.env.Cues.Play(audio.CuePaddleHit)

		case pong.EventScore:
			m.env.Cues.Play(audio.CueScore)
			player, ai := m.match.Scores()
			m.env.Logger.Debug("point", "side", ev.Side, "player", player, "ai", ai)

		case pong.EventMatchOver:
			player, ai := m.match.Scores()
			m.env.Logger.Debug("match over", "winner", ev.Side, "player", player, "ai", ai, "game", m.match.Game())
			m.record()
		}
	}
}

// record stores the finished game in the ledger. Failures are logged only.
func (m *Model) record() {
	if m.env.Ledger == nil {
		return
	}

	player, ai := m.match.Scores()
	_, err := m.env.Ledger.RecordMatch(storage.MatchResult{
		MatchID:     m.match.ID(),
		Session:     m.env.Session,
		Game:        m.match.Game(),
		BestOf:      int(m.match.BestOf()),
		PlayerScore: player,
		AIScore:     ai,
		Winner:      m.match.Winner().String(),
		Ticks:       m.match.Tick(),
	})
	if err != nil {
		m.env.Logger.Warn("cannot record result", "error", err)
		m.notice = "result not recorded"
		return
	}
	m.refreshResults()
}

func (m *Model) refreshResults() {
	if err := m.results.load(m.env.Ledger, m.env.Session); err != nil {
		m.env.Logger.Warn("cannot load results", "error", err)
		return
	}
	m.tally = m.results.tally
}

// publish sends the current frame to spectators.
func (m *Model) publish() {
	if m.env.Hub != nil {
		m.env.Hub.Publish(m.match.Snapshot())
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() (string, error) {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".pingpong", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("pong_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// draw renders the match and overlays into the screen buffer.
func (m *Model) draw() {
	m.match.Render(m.screen)
	if m.paused && !m.match.GameOver() {
		pong.DrawMessage(m.screen, "PAUSED", "P: resume  |  Q: quit")
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showResults {
		return m.results.view(m.env.Session) + "\n" + statusStyle.Render(m.help.View(m.keys))
	}

	m.draw()
	return RenderScreen(m.screen) + "\n" + m.statusLine()
}

func (m Model) statusLine() string {
	line := statusStyle.Render(m.help.View(m.keys))
	if m.match.GameOver() {
		line = noticeStyle.Render(tallyText(m.tally)) + statusStyle.Render("  •  ") + line
	}
	if m.notice != "" {
		line += statusStyle.Render("  •  ") + noticeStyle.Render(m.notice)
	}
	return line
}

// Run starts the Bubble Tea program and blocks until the player quits or ctx
// is cancelled.
func Run(ctx context.Context, env Env) error {
	model, err := NewModel(env)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
