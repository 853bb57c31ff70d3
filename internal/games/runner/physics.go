package runner

import (
	"github.com/vovakirdan/jungle-runner/internal/config"
	"github.com/vovakirdan/jungle-runner/internal/core"
)

// Integrate advances the player one tick: gravity, vertical motion, ground and
// ceiling clamps, and slide decay by the simulated time that passed.
// A missing player is skipped.
func Integrate(store *Store, cfg *config.RunnerConfig, elapsedMs float64) {
	p, ok := store.Player()
	if !ok {
		return
	}

	p.Velocity.Y += cfg.Physics.Gravity
	p.Position.Y += p.Velocity.Y

	floor := cfg.PlayerGroundY()
	p.Position.Y = core.ClampF(p.Position.Y, 0, floor)
	switch p.Position.Y {
	case floor:
		p.Velocity.Y = 0
		p.IsJumping = false
	case 0:
		p.Velocity.Y = 0
	}

	if p.IsSliding {
		p.SlideRemainingMs -= elapsedMs
		if p.SlideRemainingMs <= 0 {
			p.SlideRemainingMs = 0
			p.IsSliding = false
		}
	}
}

// Jump applies the jump impulse. No double jump: returns false while airborne.
func Jump(p *PlayerBody, cfg *config.RunnerConfig) bool {
	if p.IsJumping {
		return false
	}
	p.Velocity.Y = cfg.Physics.JumpForce
	p.IsJumping = true
	return true
}

// Slide starts a slide lasting SlideDurationMs of simulated time.
// Returns false if a slide is already running.
func Slide(p *PlayerBody, cfg *config.RunnerConfig) bool {
	if p.IsSliding {
		return false
	}
	p.IsSliding = true
	p.SlideRemainingMs = cfg.Player.SlideDurationMs
	return true
}

// PlayerRect returns the player's hitbox; its height is halved while sliding.
func PlayerRect(p *PlayerBody, cfg *config.RunnerConfig) core.RectF {
	h := cfg.Player.Height
	if p.IsSliding {
		h /= 2
	}
	return core.NewRectF(p.Position.X, p.Position.Y, cfg.Player.Width, h)
}
