package runner

import (
	"errors"
	"io"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jungle-runner/internal/config"
	"github.com/vovakirdan/jungle-runner/internal/core"
)

func testConfig() config.RunnerConfig {
	return config.DefaultRunnerConfig()
}

// fakeRand returns scripted values, cycling when exhausted.
type fakeRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (f *fakeRand) Float64() float64 {
	if len(f.floats) == 0 {
		return 0
	}
	v := f.floats[f.fi%len(f.floats)]
	f.fi++
	return v
}

func (f *fakeRand) Intn(n int) int {
	if len(f.ints) == 0 {
		return 0
	}
	v := f.ints[f.ii%len(f.ints)] % n
	f.ii++
	return v
}

type memHighScores struct {
	best    int
	saved   []int
	loadErr error
	saveErr error
}

func (m *memHighScores) HighScore() (int, error) {
	if m.loadErr != nil {
		return 0, m.loadErr
	}
	return m.best, nil
}

func (m *memHighScores) SetHighScore(score int) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, score)
	m.best = score
	return nil
}

type countingSound struct {
	jumps, collects, gameOvers int
}

func (c *countingSound) PlayJump()     { c.jumps++ }
func (c *countingSound) PlayCollect()  { c.collects++ }
func (c *countingSound) PlayGameOver() { c.gameOvers++ }

type panickingSound struct{}

func (panickingSound) PlayJump()     { panic("no audio device") }
func (panickingSound) PlayCollect()  { panic("no audio device") }
func (panickingSound) PlayGameOver() { panic("no audio device") }

var errStorage = errors.New("disk full")

func newTestSession(t *testing.T, opts ...Option) *Session {
	t.Helper()
	base := []Option{WithRand(rand.New(rand.NewSource(1)))}
	return NewSession(testConfig(), append(base, opts...)...)
}

func startedSession(t *testing.T, opts ...Option) *Session {
	t.Helper()
	s := newTestSession(t, opts...)
	if !s.Apply(core.CommandStart) {
		t.Fatal("start rejected from idle")
	}
	return s
}

func mustPlayer(t *testing.T, store *Store) *PlayerBody {
	t.Helper()
	p, ok := store.Player()
	if !ok {
		t.Fatal("no player in store")
	}
	return p
}

func newBufferLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{Level: log.DebugLevel})
}
