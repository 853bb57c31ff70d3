package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/jungle-runner/internal/config"
	"github.com/vovakirdan/jungle-runner/internal/core"
	"github.com/vovakirdan/jungle-runner/internal/games/runner"
	"github.com/vovakirdan/jungle-runner/internal/storage"
)

type memRecorder struct {
	runs []storage.RunRecord
	err  error
}

func (r *memRecorder) SaveRun(run storage.RunRecord) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.runs = append(r.runs, run)
	return int64(len(r.runs)), nil
}

type memPublisher struct {
	frames map[string]int
	last   runner.Snapshot
}

func (p *memPublisher) Publish(id string, snap runner.Snapshot) {
	if p.frames == nil {
		p.frames = map[string]int{}
	}
	p.frames[id]++
	p.last = snap
}

func newTestModel(opts ...ModelOption) Model {
	rt := core.DefaultConfig()
	rt.Seed = 11
	return NewModel(runner.New(config.DefaultRunnerConfig()), rt, opts...)
}

// tick delivers a tick at ms milliseconds after the model started.
func tick(t *testing.T, m Model, ms int) Model {
	t.Helper()
	next, _ := m.Update(TickMsg(m.started.Add(time.Duration(ms) * time.Millisecond)))
	return next.(Model)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelStartsOnEnter(t *testing.T) {
	m := newTestModel()
	if m.state != runner.StateIdle {
		t.Fatalf("initial state = %s", m.state)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m, 16)
	if m.state != runner.StatePlaying {
		t.Errorf("state after enter = %s", m.state)
	}

	m = press(t, m, runeKey('p'))
	m = tick(t, m, 32)
	if m.state != runner.StatePaused {
		t.Errorf("state after p = %s", m.state)
	}

	m = press(t, m, runeKey('p'))
	m = tick(t, m, 48)
	if m.state != runner.StatePlaying {
		t.Errorf("state after second p = %s", m.state)
	}
}

func TestModelRecordsRunOnce(t *testing.T) {
	rec := &memRecorder{}
	m := newTestModel(WithRunRecorder(rec), WithPlayer("alice"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	ms := 0
	for i := 0; i < 2000 && m.state != runner.StateGameOver; i++ {
		ms += 16
		m = tick(t, m, ms)
	}
	if m.state != runner.StateGameOver {
		t.Fatal("run never ended without input")
	}
	for i := 0; i < 5; i++ {
		ms += 16
		m = tick(t, m, ms)
	}

	if len(rec.runs) != 1 {
		t.Fatalf("recorded %d runs, want 1", len(rec.runs))
	}
	run := rec.runs[0]
	if run.GameID != "runner" || run.Player != "alice" || run.DurationMs <= 0 {
		t.Errorf("run = %+v", run)
	}

	m = press(t, m, runeKey('r'))
	m = tick(t, m, ms+16)
	if m.state != runner.StatePlaying || m.runSaved {
		t.Errorf("after restart: state %s saved %v", m.state, m.runSaved)
	}
}

func TestModelSurvivesRecorderFailure(t *testing.T) {
	rec := &memRecorder{err: errors.New("read-only database")}
	m := newTestModel(WithRunRecorder(rec))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	ms := 0
	for i := 0; i < 2000 && m.state != runner.StateGameOver; i++ {
		ms += 16
		m = tick(t, m, ms)
	}
	if m.state != runner.StateGameOver {
		t.Fatal("run never ended")
	}
}

func TestModelPublishesFrames(t *testing.T) {
	pub := &memPublisher{}
	m := newTestModel(WithPublisher(pub, "local"))

	for i := 1; i <= 3; i++ {
		m = tick(t, m, i*16)
	}
	if pub.frames["local"] != 3 {
		t.Errorf("published %d frames, want 3", pub.frames["local"])
	}
	if pub.last.State != runner.StateIdle {
		t.Errorf("last frame state = %s", pub.last.State)
	}
}

func TestModelQuitAndView(t *testing.T) {
	m := newTestModel()
	if !strings.Contains(m.View(), "JUNGLE RUNNER") {
		t.Error("home screen missing title")
	}

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("q did not return a command")
	}
	if v := next.(Model).View(); v != "" {
		t.Errorf("view after quit = %q", v)
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	m := newTestModel()
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m, 16)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
	m = tick(t, m, 32)
	if m.state != runner.StatePlaying {
		t.Errorf("resize interrupted the run: %s", m.state)
	}
}
