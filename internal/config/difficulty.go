package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy    DifficultyPreset = "easy"
	DifficultyNormal  DifficultyPreset = "normal"
	DifficultyHard    DifficultyPreset = "hard"
	DifficultyExtreme DifficultyPreset = "extreme"
)

// Presets lists the difficulty presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyExtreme}

// ParsePreset parses a preset name case-insensitively.
func ParsePreset(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (easy, normal, hard, extreme)", s)
}

// StartLevelForPreset returns the starting level a preset selects.
func StartLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyNormal:
		return 5
	case DifficultyHard:
		return 10
	default:
		return 1
	}
}

// ApplyTetraPreset sets the start level and extreme flag for a preset.
func ApplyTetraPreset(cfg *TetraConfig, preset DifficultyPreset) {
	cfg.Game.Extreme = preset == DifficultyExtreme
	cfg.Game.StartLevel = min(StartLevelForPreset(preset), cfg.Levels.Max)
}
