package config

import (
	"fmt"
	"math"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalid, name)
	}
}

// IsFixedPreset returns true if the preset disables the speed-up.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies the speed section based on a difficulty preset.
// Normal keeps whatever the configuration file says.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.InitialMS = 200
		cfg.Speed.StepMS = 2
		cfg.Speed.MinMS = 80
	case DifficultyHard:
		cfg.Speed.InitialMS = 100
		cfg.Speed.StepMS = 3
		cfg.Speed.MinMS = 40
	case DifficultyFixed:
		cfg.Speed.StepMS = 0
	}
}

// SpeedLevel returns how far interval has progressed from the initial
// interval toward the floor, from 0.0 to 1.0.
func SpeedLevel(s SpeedConfig, interval time.Duration) float64 {
	span := float64(s.InitialMS - s.MinMS)
	if span <= 0 {
		return 0
	}
	done := float64(s.InitialMS) - float64(interval.Milliseconds())
	return clampF(done/span, 0.0, 1.0)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
