package runner

import (
	"github.com/vovakirdan/jungle-runner/internal/config"
	"github.com/vovakirdan/jungle-runner/internal/core"
)

// DetectCollisions tests the player against obstacles and collectibles.
// An obstacle hit yields a single game-over event and ends detection for this
// tick. Touched collectibles are removed and yield item-collected events.
func DetectCollisions(store *Store, cfg *config.RunnerConfig) []Event {
	p, ok := store.Player()
	if !ok {
		return nil
	}
	player := PlayerRect(p, cfg)

	for _, o := range store.Obstacles() {
		if player.Overlaps(ObstacleRect(o.Body, cfg), cfg.Obstacles.CollisionThreshold) {
			return []Event{{Kind: EventGameOver, Entity: o.ID}}
		}
	}

	var events []Event
	for _, c := range store.Collectibles() {
		if player.Overlaps(CollectibleRect(c.Body, cfg), 0) {
			store.Remove(c.ID)
			events = append(events, Event{
				Kind:       EventItemCollected,
				ScoreDelta: cfg.Collectibles.ScoreValue,
				Entity:     c.ID,
			})
		}
	}
	return events
}

// ObstacleRect returns an obstacle's hitbox.
func ObstacleRect(o *ObstacleBody, cfg *config.RunnerConfig) core.RectF {
	return core.NewRectF(o.Position.X, o.Position.Y, cfg.Obstacles.Width, cfg.Obstacles.Height)
}

// CollectibleRect returns a collectible's hitbox. The bob phase is visual
// only and does not move the hitbox.
func CollectibleRect(c *CollectibleBody, cfg *config.RunnerConfig) core.RectF {
	return core.NewRectF(c.Position.X, c.Position.Y, cfg.Collectibles.Size, cfg.Collectibles.Size)
}
