package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jungle-runner/internal/core"
	"github.com/vovakirdan/jungle-runner/internal/games/runner"
	"github.com/vovakirdan/jungle-runner/internal/storage"
)

// RunRecorder persists finished runs. *storage.Store satisfies it.
type RunRecorder interface {
	SaveRun(run storage.RunRecord) (int64, error)
}

// SnapshotPublisher receives every frame for spectators.
type SnapshotPublisher interface {
	Publish(sessionID string, snap runner.Snapshot)
}

// Model is the Bubble Tea model that drives one runner session.
type Model struct {
	game       *runner.Game
	screen     *core.Screen
	runs       RunRecorder
	config     core.RuntimeConfig
	keys       RunnerKeyMap
	inputFrame core.InputFrame
	state      runner.State
	started    time.Time
	player     string
	sessionID  string
	publisher  SnapshotPublisher
	logger     *log.Logger
	quitting   bool
	runSaved   bool // Whether the current game over has been recorded
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithRunRecorder stores every finished run.
func WithRunRecorder(r RunRecorder) ModelOption {
	return func(m *Model) { m.runs = r }
}

// WithPlayer tags recorded runs with a player name.
func WithPlayer(name string) ModelOption {
	return func(m *Model) { m.player = name }
}

// WithPublisher streams snapshots under sessionID.
func WithPublisher(p SnapshotPublisher, sessionID string) ModelOption {
	return func(m *Model) {
		m.publisher = p
		m.sessionID = sessionID
	}
}

// WithModelLogger sets the logger for storage failures.
func WithModelLogger(l *log.Logger) ModelOption {
	return func(m *Model) { m.logger = l }
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *runner.Game, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keys:       DefaultRunnerKeyMap(),
		inputFrame: core.NewInputFrame(),
		started:    time.Now(),
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.game.Reset(cfg)
	m.state = m.game.Snapshot().State
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
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
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues the command for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	cmd, isQuit := m.keys.MapKey(msg, m.state)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.inputFrame.Push(cmd)
	return m, nil
}

// handleResize adapts the screen buffer. The world is measured in its own
// units, so the session keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation step at the elapsed time since start.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	nowMs := float64(now.Sub(m.started)) / float64(time.Millisecond)
	result := m.game.Step(&m.inputFrame, nowMs)
	m.state = result.Snapshot.State

	if m.state == runner.StateGameOver {
		if !m.runSaved {
			m.recordRun(result.Snapshot)
			m.runSaved = true
		}
	} else {
		m.runSaved = false
	}

	if m.publisher != nil {
		m.publisher.Publish(m.sessionID, result.Snapshot)
	}

	return m, tickCmd(m.config.TickRate)
}

// recordRun stores a finished run. Failures are logged and otherwise ignored.
func (m Model) recordRun(snap runner.Snapshot) {
	if m.runs == nil {
		return
	}
	cfg := m.game.Session().Config()
	run := storage.RunRecord{
		GameID:     m.game.ID(),
		Player:     m.player,
		Score:      snap.Score,
		DurationMs: int64(snap.ClockMs),
	}
	if cfg.Collectibles.ScoreValue > 0 {
		run.Bananas = snap.Score / cfg.Collectibles.ScoreValue
	}
	if _, err := m.runs.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "score", snap.Score, "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".runner", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for the given game.
func Run(game *runner.Game, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(game, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
