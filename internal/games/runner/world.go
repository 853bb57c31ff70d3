package runner

import (
	"github.com/vovakirdan/jungle-runner/internal/config"
	"github.com/vovakirdan/jungle-runner/internal/core"
)

// World is the complete simulation state of one run: the entity store, both
// spawner states and the session clock. Restarting replaces the whole World.
type World struct {
	Store        *Store
	Obstacles    SpawnerState
	Collectibles SpawnerState
	ClockMs      float64 // Simulated time spent Playing
}

// NewWorld builds the starting layout: one player on the ground, two ground
// tiles and two tiles per background layer, with both spawners reset.
func NewWorld(cfg *config.RunnerConfig) *World {
	store := NewStore()
	width := cfg.Screen.Width

	store.Add(NewEntity(0, &PlayerBody{
		Position: core.Vec2{X: cfg.Player.X, Y: cfg.PlayerGroundY()},
	}))

	for i := 0; i < 2; i++ {
		store.Add(NewEntity(uint64(i), &GroundBody{
			Position: core.Vec2{X: float64(i) * width, Y: cfg.GroundY()},
		}))
	}

	var seq uint64
	for _, layer := range cfg.Backgrounds.Layers {
		for i := 0; i < 2; i++ {
			store.Add(NewEntity(seq, &BackgroundBody{
				Position: core.Vec2{X: float64(i) * width},
				Layer:    layer,
			}))
			seq++
		}
	}

	return &World{Store: store}
}

// Step runs one tick of the pipeline in its fixed order: physics, movement,
// obstacle spawner, collectible spawner, collision. Spawner states are passed
// into their systems and stored back. elapsedMs is the simulated time since
// the previous tick.
func (w *World) Step(cfg *config.RunnerConfig, rng Rand, elapsedMs float64) []Event {
	if elapsedMs < 0 {
		elapsedMs = 0
	}
	w.ClockMs += elapsedMs

	Integrate(w.Store, cfg, elapsedMs)
	Move(w.Store, cfg, w.ClockMs)
	w.Obstacles = SpawnObstacle(w.Obstacles, w.Store, w.ClockMs, cfg, rng)
	w.Collectibles = SpawnCollectible(w.Collectibles, w.Store, w.ClockMs, cfg, rng)
	return DetectCollisions(w.Store, cfg)
}
