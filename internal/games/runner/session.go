package runner

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jungle-runner/internal/config"
	"github.com/vovakirdan/jungle-runner/internal/core"
)

// State is the game state machine's current value.
type State int

const (
	StateIdle State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// HighScoreStore persists the best score across sessions.
type HighScoreStore interface {
	HighScore() (int, error)
	SetHighScore(score int) error
}

// SoundPlayer plays fire-and-forget effects. Implementations must not block.
type SoundPlayer interface {
	PlayJump()
	PlayCollect()
	PlayGameOver()
}

// TickInput is the driver-supplied timestamp for one tick.
type TickInput struct {
	CurrentTimeMs float64
}

// TickResult is what one tick produced: the events in emission order and a
// read-only snapshot for renderers.
type TickResult struct {
	Events   []Event
	Snapshot Snapshot
}

// Snapshot is an immutable copy of everything a renderer may draw.
type Snapshot struct {
	State     State
	Score     int
	HighScore int
	ClockMs   float64
	Entities  []Entity
}

// Session is one player's game: the state machine plus the world it gates.
// A Session is not safe for concurrent use; each driver owns its own.
type Session struct {
	cfg    config.RunnerConfig
	rng    Rand
	world  *World
	state  State
	score  int
	best   int
	scores HighScoreStore
	sound  SoundPlayer
	logger *log.Logger

	lastTickMs float64
	anchored   bool // lastTickMs is valid for computing the next delta
}

// Option configures a Session.
type Option func(*Session)

// WithRand injects the spawners' random source.
func WithRand(r Rand) Option {
	return func(s *Session) { s.rng = r }
}

// WithHighScoreStore attaches persistent high-score storage.
func WithHighScoreStore(hs HighScoreStore) Option {
	return func(s *Session) { s.scores = hs }
}

// WithSound attaches a sound player.
func WithSound(sp SoundPlayer) Option {
	return func(s *Session) { s.sound = sp }
}

// WithLogger sets the logger used for collaborator failures.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// NewSession creates a session in the Idle state with a fresh world.
func NewSession(cfg config.RunnerConfig, opts ...Option) *Session {
	s := &Session{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	s.world = NewWorld(&s.cfg)
	s.best = s.loadHighScore()
	return s
}

// State returns the current state.
func (s *Session) State() State { return s.state }

// Score returns the current run's score.
func (s *Session) Score() int { return s.score }

// HighScore returns the best score known to this session.
func (s *Session) HighScore() int { return s.best }

// Config returns the configuration the session runs with.
func (s *Session) Config() config.RunnerConfig { return s.cfg }

// World exposes the live world. Callers other than tests should use Snapshot.
func (s *Session) World() *World { return s.world }

// Apply executes a command against the state machine and reports whether it
// was accepted. Commands that are invalid in the current state are ignored.
func (s *Session) Apply(cmd core.Command) bool {
	switch cmd {
	case core.CommandStart:
		if s.state != StateIdle {
			return false
		}
		s.beginRun()
		return true

	case core.CommandRestart:
		if s.state != StateGameOver {
			return false
		}
		s.state = StateIdle
		s.beginRun()
		return true

	case core.CommandPause:
		if s.state != StatePlaying {
			return false
		}
		s.state = StatePaused
		return true

	case core.CommandResume:
		if s.state != StatePaused {
			return false
		}
		s.state = StatePlaying
		s.anchored = false
		return true

	case core.CommandHome:
		if s.state != StateGameOver && s.state != StatePaused {
			return false
		}
		s.world = NewWorld(&s.cfg)
		s.score = 0
		s.state = StateIdle
		return true

	case core.CommandJump:
		p, ok := s.activePlayer()
		if !ok || !Jump(p, &s.cfg) {
			return false
		}
		s.play("jump", s.soundJump)
		return true

	case core.CommandSlide:
		p, ok := s.activePlayer()
		if !ok {
			return false
		}
		return Slide(p, &s.cfg)
	}
	return false
}

// Tick runs one simulation step if Playing and applies the resulting events.
// In any other state the world is untouched.
func (s *Session) Tick(in TickInput) TickResult {
	if s.state != StatePlaying {
		return TickResult{Snapshot: s.Snapshot()}
	}

	elapsed := 0.0
	if s.anchored {
		elapsed = in.CurrentTimeMs - s.lastTickMs
	}
	s.lastTickMs = in.CurrentTimeMs
	s.anchored = true

	events := s.world.Step(&s.cfg, s.rng, elapsed)
	for _, ev := range events {
		switch ev.Kind {
		case EventItemCollected:
			s.score += ev.ScoreDelta
			s.play("collect", s.soundCollect)
		case EventGameOver:
			s.state = StateGameOver
			s.play("game-over", s.soundGameOver)
			s.recordHighScore()
		}
	}

	return TickResult{Events: events, Snapshot: s.Snapshot()}
}

// Snapshot returns a deep copy of the renderable state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		State:     s.state,
		Score:     s.score,
		HighScore: s.best,
		ClockMs:   s.world.ClockMs,
		Entities:  s.world.Store.Entities(),
	}
}

// beginRun enters Playing with a brand new world and zero score.
func (s *Session) beginRun() {
	s.world = NewWorld(&s.cfg)
	s.score = 0
	s.anchored = false
	s.best = max(s.best, s.loadHighScore())
	s.state = StatePlaying
}

func (s *Session) activePlayer() (*PlayerBody, bool) {
	if s.state != StatePlaying {
		return nil, false
	}
	return s.world.Store.Player()
}

func (s *Session) loadHighScore() int {
	if s.scores == nil {
		return 0
	}
	best, err := s.scores.HighScore()
	if err != nil {
		s.logger.Warn("could not load high score", "error", err)
		return 0
	}
	return best
}

func (s *Session) recordHighScore() {
	if s.score <= s.best {
		return
	}
	s.best = s.score
	if s.scores == nil {
		return
	}
	if err := s.scores.SetHighScore(s.score); err != nil {
		s.logger.Warn("could not save high score", "score", s.score, "error", err)
	}
}

func (s *Session) soundJump()     { s.sound.PlayJump() }
func (s *Session) soundCollect()  { s.sound.PlayCollect() }
func (s *Session) soundGameOver() { s.sound.PlayGameOver() }

// play invokes a sound hook, containing any panic so audio can never
// interrupt the tick.
func (s *Session) play(name string, fn func()) {
	if s.sound == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("sound playback failed", "sound", name, "panic", r)
		}
	}()
	fn()
}
