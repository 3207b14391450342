package config

import "math"

// DifficultyManager calculates enemy motion parameters from run progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// ApplyPreset sets progression and the starting level from a preset.
// The fixed preset turns progression off and keeps the configured level.
func (d *DifficultyManager) ApplyPreset(preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		d.SetEnabled(false)
		return
	}
	d.SetEnabled(true)
	d.SetInitialLevel(InitialLevelForPreset(preset))
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0). levelIndex is
// the zero-based index of the level being played.
func (d *DifficultyManager) Level(levelIndex int, score int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "level":
		progress = float64(levelIndex) / maxAt
	case "score":
		progress = float64(score) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// minDriftPeriod is the shortest drift cycle, in ticks.
const minDriftPeriod = 8

// DriftPeriod divides the base drift period by 1 + level*multiplier: a
// positive multiplier shortens the period as difficulty rises, a negative
// one (above -1) lengthens it. The result is never below minDriftPeriod.
func (d *DifficultyManager) DriftPeriod(base float64, levelIndex, score int) float64 {
	level := d.Level(levelIndex, score)
	period := base / (1.0 + level*d.cfg.Scaling.DriftSpeedMultiplier)
	if period < minDriftPeriod {
		period = minDriftPeriod
	}
	return period
}

// DriftAmplitude widens an enemy's swing as difficulty rises.
func (d *DifficultyManager) DriftAmplitude(base float64, levelIndex, score int) float64 {
	level := d.Level(levelIndex, score)
	return base + level*d.cfg.Scaling.DriftAmplitudeBonus
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
