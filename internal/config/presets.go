package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty resolves a preset name. The empty string means "no preset".
func ParseDifficulty(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(name), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
// Presets only touch paddle width and serve speed; lives stay as configured.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Paddle.Width = 100
		cfg.Ball.SpeedX = 1.5
		cfg.Ball.SpeedY = -1.5
	case DifficultyHard:
		cfg.Paddle.Width = 55
		cfg.Ball.SpeedX = 3
		cfg.Ball.SpeedY = -3
	}
}
