package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownPreset is returned for a difficulty name that is not defined.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the accepted preset names.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParsePreset resolves a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
}

// presetScale holds the multipliers a preset applies to the base rules.
type presetScale struct {
	snakeTick  float64
	aiStep     float64
	dropMS     float64
	fireChance float64
	extraLives int
}

var presetScales = map[DifficultyPreset]presetScale{
	DifficultyEasy:   {snakeTick: 4.0 / 3, aiStep: 0.75, dropMS: 1.2, fireChance: 0.5, extraLives: 2},
	DifficultyNormal: {snakeTick: 1, aiStep: 1, dropMS: 1, fireChance: 1, extraLives: 0},
	DifficultyHard:   {snakeTick: 2.0 / 3, aiStep: 1.5, dropMS: 0.8, fireChance: 2, extraLives: -1},
}

// ApplyPreset returns a copy of cfg adjusted for the preset.
// Normal leaves the configuration untouched.
func ApplyPreset(cfg Arcade, preset DifficultyPreset) (Arcade, error) {
	s, ok := presetScales[preset]
	if !ok {
		return cfg, fmt.Errorf("%w: %q", ErrUnknownPreset, preset)
	}
	if preset == DifficultyNormal {
		return cfg, nil
	}

	cfg.Snake.TickMS = max(1, int(math.Round(float64(cfg.Snake.TickMS)*s.snakeTick)))
	cfg.Pong.Paddle.AIStep *= s.aiStep
	cfg.Tetris.BaseDropMS = max(cfg.Tetris.MinDropMS, int(math.Round(float64(cfg.Tetris.BaseDropMS)*s.dropMS)))
	cfg.Invaders.Formation.FireChance = math.Min(1, cfg.Invaders.Formation.FireChance*s.fireChance)
	cfg.Invaders.Player.Lives = max(1, cfg.Invaders.Player.Lives+s.extraLives)
	return cfg, nil
}
