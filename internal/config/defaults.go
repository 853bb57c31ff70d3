package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in runner configuration.
// Kept in sync with defaults/runner.yaml; used when the embedded file fails to parse.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Screen: ScreenConfig{
			Width:        800,
			Height:       400,
			GroundHeight: 80,
		},
		Physics: PhysicsConfig{
			Gravity:   0.8,
			JumpForce: -15,
			GameSpeed: 5,
		},
		Player: PlayerConfig{
			X:               50,
			Width:           50,
			Height:          60,
			SlideDurationMs: 500,
		},
		Obstacles: ObstacleConfig{
			Width:              40,
			Height:             40,
			SpawnIntervalMs:    2000,
			SpawnMargin:        50,
			CollisionThreshold: 5,
		},
		Collectibles: CollectibleConfig{
			Size:            30,
			SpawnIntervalMs: 3000,
			SpawnMargin:     50,
			MinHeight:       50,
			MaxHeight:       200,
			BobAmplitude:    10,
			BobPeriodMs:     200,
			ScoreValue:      10,
		},
		Backgrounds: BackgroundConfig{
			Layers: []int{1, 2, 3},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
