package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// presetScale holds the multipliers a preset applies.
type presetScale struct {
	speed    float64 // Multiplies physics.game_speed
	interval float64 // Multiplies both spawn intervals
}

var presetScales = map[DifficultyPreset]presetScale{
	DifficultyEasy:   {speed: 0.8, interval: 1.25},
	DifficultyNormal: {speed: 1.0, interval: 1.0},
	DifficultyHard:   {speed: 1.3, interval: 0.8},
}

// ParsePreset maps a CLI value to a preset. Empty or unknown values return false.
func ParsePreset(name string) (DifficultyPreset, bool) {
	p := DifficultyPreset(name)
	_, ok := presetScales[p]
	return p, ok
}

// ApplyPreset scales the config for a difficulty preset.
// Speed stays constant for the whole session; presets only pick the constant.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	scale, ok := presetScales[preset]
	if !ok {
		return
	}
	cfg.Physics.GameSpeed *= scale.speed
	cfg.Obstacles.SpawnIntervalMs *= scale.interval
	cfg.Collectibles.SpawnIntervalMs *= scale.interval
}
