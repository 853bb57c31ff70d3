// Package config provides YAML-based runner configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a loaded configuration cannot drive a simulation.
var ErrInvalidConfig = errors.New("invalid runner config")

// RunnerConfig contains every tunable of the runner simulation.
// All distances are world units, all durations simulated milliseconds.
type RunnerConfig struct {
	Screen       ScreenConfig      `yaml:"screen"`
	Physics      PhysicsConfig     `yaml:"physics"`
	Player       PlayerConfig      `yaml:"player"`
	Obstacles    ObstacleConfig    `yaml:"obstacles"`
	Collectibles CollectibleConfig `yaml:"collectibles"`
	Backgrounds  BackgroundConfig  `yaml:"backgrounds"`
}

// ScreenConfig defines the logical world viewport.
type ScreenConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// PhysicsConfig defines per-tick motion constants.
type PhysicsConfig struct {
	Gravity   float64 `yaml:"gravity"`    // Added to vertical velocity every tick (positive = down)
	JumpForce float64 `yaml:"jump_force"` // Vertical velocity set by a jump (negative = up)
	GameSpeed float64 `yaml:"game_speed"` // Horizontal scroll per tick
}

// PlayerConfig defines the player's hitbox and slide behaviour.
type PlayerConfig struct {
	X               float64 `yaml:"x"`
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	SlideDurationMs float64 `yaml:"slide_duration_ms"`
}

// ObstacleConfig defines obstacle size, spawn cadence and collision leniency.
type ObstacleConfig struct {
	Width              float64 `yaml:"width"`
	Height             float64 `yaml:"height"`
	SpawnIntervalMs    float64 `yaml:"spawn_interval_ms"`
	SpawnMargin        float64 `yaml:"spawn_margin"`
	CollisionThreshold float64 `yaml:"collision_threshold"`
}

// CollectibleConfig defines collectible size, spawn band, bobbing and value.
type CollectibleConfig struct {
	Size            float64 `yaml:"size"`
	SpawnIntervalMs float64 `yaml:"spawn_interval_ms"`
	SpawnMargin     float64 `yaml:"spawn_margin"`
	MinHeight       float64 `yaml:"min_height"` // Lowest spawn height above ground
	MaxHeight       float64 `yaml:"max_height"` // Highest spawn height above ground
	BobAmplitude    float64 `yaml:"bob_amplitude"`
	BobPeriodMs     float64 `yaml:"bob_period_ms"` // Divisor of elapsed time inside sin()
	ScoreValue      int     `yaml:"score_value"`
}

// BackgroundConfig lists the parallax layers. Each layer gets two tiles.
type BackgroundConfig struct {
	Layers []int `yaml:"layers"`
}

// GroundY returns the y coordinate of the ground's top edge.
func (c RunnerConfig) GroundY() float64 {
	return c.Screen.Height - c.Screen.GroundHeight
}

// PlayerGroundY returns the resting y of the player's top edge.
func (c RunnerConfig) PlayerGroundY() float64 {
	return c.GroundY() - c.Player.Height
}

// Validate reports the first setting that would break the simulation.
func (c RunnerConfig) Validate() error {
	checks := []struct {
		name string
		ok   bool
	}{
		{"screen.width", c.Screen.Width > 0},
		{"screen.height", c.Screen.Height > 0},
		{"screen.ground_height", c.Screen.GroundHeight >= 0 && c.Screen.GroundHeight < c.Screen.Height},
		{"physics.gravity", c.Physics.Gravity > 0},
		{"physics.jump_force", c.Physics.JumpForce < 0},
		{"physics.game_speed", c.Physics.GameSpeed > 0},
		{"player.width", c.Player.Width > 0},
		{"player.height", c.Player.Height > 0 && c.Player.Height <= c.GroundY()},
		{"player.slide_duration_ms", c.Player.SlideDurationMs > 0},
		{"obstacles.width", c.Obstacles.Width > 0},
		{"obstacles.height", c.Obstacles.Height > 0},
		{"obstacles.spawn_interval_ms", c.Obstacles.SpawnIntervalMs > 0},
		{"obstacles.collision_threshold", c.Obstacles.CollisionThreshold >= 0},
		{"collectibles.size", c.Collectibles.Size > 0},
		{"collectibles.spawn_interval_ms", c.Collectibles.SpawnIntervalMs > 0},
		{"collectibles.max_height", c.Collectibles.MaxHeight >= c.Collectibles.MinHeight},
		{"collectibles.bob_period_ms", c.Collectibles.BobPeriodMs > 0},
		{"collectibles.score_value", c.Collectibles.ScoreValue >= 0},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s out of range", ErrInvalidConfig, chk.name)
		}
	}
	for _, layer := range c.Backgrounds.Layers {
		if layer < 1 || layer > 3 {
			return fmt.Errorf("%w: backgrounds.layers contains %d, want 1..3", ErrInvalidConfig, layer)
		}
	}
	return nil
}
