package config

import (
	"fmt"
	"strings"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the available presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParsePreset parses a preset name. An empty name selects normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(strings.ToLower(strings.TrimSpace(name))) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", name)
}

// Description returns a one-line summary for menus.
func (p DifficultyPreset) Description() string {
	switch p {
	case DifficultyEasy:
		return "more lives, more time, slower traffic"
	case DifficultyHard:
		return "fewer lives, less time, faster traffic"
	default:
		return "arcade rules"
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded rules untouched.
func ApplyPreset(cfg *FroggerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rules.Lives += 2
		cfg.Rules.TimeTotal = cfg.Rules.TimeTotal * 3 / 2
		cfg.Rules.SpeedScale = scale(cfg.Rules.SpeedScale, 0.75)
	case DifficultyHard:
		cfg.Rules.Lives = max(1, cfg.Rules.Lives-2)
		cfg.Rules.TimeTotal = max(10*time.Second, cfg.Rules.TimeTotal*2/3)
		cfg.Rules.SpeedScale = scale(cfg.Rules.SpeedScale, 1.5)
	}
}

func scale(current, factor float64) float64 {
	if current <= 0 {
		current = 1
	}
	return current * factor
}
