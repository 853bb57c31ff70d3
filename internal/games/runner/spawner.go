package runner

import (
	"github.com/vovakirdan/jungle-runner/internal/config"
	"github.com/vovakirdan/jungle-runner/internal/core"
)

// Rand is the random source the spawners draw from. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// SpawnerState is the private timer and id counter of one spawner. The zero
// value is the reset state.
type SpawnerState struct {
	LastSpawnMs float64
	NextID      uint64
}

// due reports whether strictly more than interval has passed since the last
// spawn. A tick landing exactly on the interval does not spawn.
func (st SpawnerState) due(nowMs, interval float64) bool {
	return nowMs-st.LastSpawnMs > interval
}

// SpawnObstacle inserts a random obstacle just past the right edge when the
// obstacle interval has elapsed, and returns the updated state.
func SpawnObstacle(st SpawnerState, store *Store, nowMs float64, cfg *config.RunnerConfig, rng Rand) SpawnerState {
	oc := &cfg.Obstacles
	if !st.due(nowMs, oc.SpawnIntervalMs) {
		return st
	}

	body := &ObstacleBody{
		Position: core.Vec2{
			X: cfg.Screen.Width + oc.SpawnMargin,
			Y: cfg.GroundY() - oc.Height,
		},
		Type: obstacleTypes[rng.Intn(len(obstacleTypes))],
	}
	store.Add(NewEntity(st.NextID, body))

	st.NextID++
	st.LastSpawnMs = nowMs
	return st
}

// SpawnCollectible inserts a banana at a random height band above the ground
// when the collectible interval has elapsed, and returns the updated state.
func SpawnCollectible(st SpawnerState, store *Store, nowMs float64, cfg *config.RunnerConfig, rng Rand) SpawnerState {
	cc := &cfg.Collectibles
	if !st.due(nowMs, cc.SpawnIntervalMs) {
		return st
	}

	height := cc.MinHeight + rng.Float64()*(cc.MaxHeight-cc.MinHeight)
	body := &CollectibleBody{
		Position: core.Vec2{
			X: cfg.Screen.Width + cc.SpawnMargin,
			Y: cfg.GroundY() - height,
		},
	}
	store.Add(NewEntity(st.NextID, body))

	st.NextID++
	st.LastSpawnMs = nowMs
	return st
}
