package runner

import (
	"math"

	"github.com/vovakirdan/jungle-runner/internal/config"
)

// Move scrolls every world entity left by the game speed, wraps ground and
// background tiles, bobs collectibles and drops anything fully off-screen.
// nowMs is the session clock; it only drives the bobbing phase.
func Move(store *Store, cfg *config.RunnerConfig, nowMs float64) {
	speed := cfg.Physics.GameSpeed
	width := cfg.Screen.Width

	for _, g := range store.Grounds() {
		g.Body.Position.X -= speed
		if g.Body.Position.X <= -width {
			g.Body.Position.X = 0
		}
	}

	for _, b := range store.Backgrounds() {
		b.Body.Position.X -= ParallaxSpeed(speed, b.Body.Layer)
		if b.Body.Position.X <= -width {
			b.Body.Position.X = 0
		}
	}

	for _, o := range store.Obstacles() {
		o.Body.Position.X -= speed
		if o.Body.Position.X < -cfg.Obstacles.Width {
			store.Remove(o.ID)
		}
	}

	phase := BobPhase(nowMs, &cfg.Collectibles)
	for _, c := range store.Collectibles() {
		c.Body.Position.X -= speed
		c.Body.AnimationPhase = phase
		if c.Body.Position.X < -cfg.Collectibles.Size {
			store.Remove(c.ID)
		}
	}
}

// ParallaxSpeed returns the scroll speed of a background layer.
func ParallaxSpeed(speed float64, layer int) float64 {
	if layer < 1 {
		layer = 1
	}
	return speed / float64(layer*2)
}

// BobPhase returns the vertical offset shared by all collectibles at nowMs.
func BobPhase(nowMs float64, cfg *config.CollectibleConfig) float64 {
	return math.Sin(nowMs/cfg.BobPeriodMs) * cfg.BobAmplitude
}
