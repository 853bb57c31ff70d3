// Package spectate streams live runner sessions to websocket viewers. It only
// reads snapshots; nothing a spectator sends reaches the simulation.
package spectate

import (
	"github.com/vovakirdan/jungle-runner/internal/games/runner"
)

// Frame is the JSON form of one snapshot.
type Frame struct {
	Session   string        `json:"session"`
	State     string        `json:"state"`
	Score     int           `json:"score"`
	HighScore int           `json:"highScore"`
	ClockMs   float64       `json:"clockMs"`
	Entities  []EntityFrame `json:"entities"`
}

// EntityFrame is one entity inside a Frame. Kind-specific fields are omitted
// when they do not apply.
type EntityFrame struct {
	ID      string  `json:"id"`
	Kind    string  `json:"kind"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Layer   int     `json:"layer,omitempty"`
	Type    string  `json:"type,omitempty"`
	Phase   float64 `json:"phase,omitempty"`
	Jumping bool    `json:"jumping,omitempty"`
	Sliding bool    `json:"sliding,omitempty"`
}

// FrameFromSnapshot converts a snapshot into its wire form.
func FrameFromSnapshot(sessionID string, snap runner.Snapshot) Frame {
	f := Frame{
		Session:   sessionID,
		State:     snap.State.String(),
		Score:     snap.Score,
		HighScore: snap.HighScore,
		ClockMs:   snap.ClockMs,
		Entities:  make([]EntityFrame, 0, len(snap.Entities)),
	}

	for _, e := range snap.Entities {
		pos := e.Position()
		ef := EntityFrame{
			ID:   e.ID.String(),
			Kind: e.Kind().String(),
			X:    pos.X,
			Y:    pos.Y,
		}
		switch b := e.Body.(type) {
		case *runner.PlayerBody:
			ef.Jumping = b.IsJumping
			ef.Sliding = b.IsSliding
		case *runner.BackgroundBody:
			ef.Layer = b.Layer
		case *runner.ObstacleBody:
			ef.Type = b.Type.String()
		case *runner.CollectibleBody:
			ef.Phase = b.AnimationPhase
		}
		f.Entities = append(f.Entities, ef)
	}
	return f
}
