// Package audio plays the runner's fire-and-forget sound effects through the
// system speaker. Tones are synthesized; no assets are loaded.
package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	volume     = 0.25
)

// SoundBoard owns the speaker and mixes effects into it. Until Initialize
// succeeds every Play call is a no-op.
type SoundBoard struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	logger      *log.Logger
}

// NewSoundBoard creates a silent sound board.
func NewSoundBoard(logger *log.Logger) *SoundBoard {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &SoundBoard{
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Initialize opens the speaker. On failure the board stays silent and the
// error is returned for the caller to report.
func (sb *SoundBoard) Initialize() error {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if sb.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sb.mixer)
	sb.initialized = true
	sb.logger.Debug("speaker ready", "rate", int(sampleRate))
	return nil
}

// Enabled reports whether sounds reach the speaker.
func (sb *SoundBoard) Enabled() bool {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.initialized
}

// Close silences the board and releases the speaker.
func (sb *SoundBoard) Close() {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if !sb.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sb.initialized = false
}

// PlayJump plays a short rising chirp.
func (sb *SoundBoard) PlayJump() {
	sb.play(NewSweepGenerator(sampleRate, 320, 640, 120*time.Millisecond, volume))
}

// PlayCollect plays a bright two-step chime.
func (sb *SoundBoard) PlayCollect() {
	sb.play(beep.Seq(
		NewSweepGenerator(sampleRate, 880, 880, 60*time.Millisecond, volume),
		NewSweepGenerator(sampleRate, 1320, 1320, 110*time.Millisecond, volume),
	))
}

// PlayGameOver plays a slow falling tone.
func (sb *SoundBoard) PlayGameOver() {
	sb.play(NewSweepGenerator(sampleRate, 440, 110, 600*time.Millisecond, volume))
}

func (sb *SoundBoard) play(s beep.Streamer) {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if !sb.initialized {
		return
	}

	speaker.Lock()
	sb.mixer.Add(s)
	speaker.Unlock()
}
