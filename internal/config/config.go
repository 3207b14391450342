// Package config provides YAML-based game configuration loading and
// difficulty management for kaboom.
package config

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/kaboom/internal/games/kaboom/sim"
)

// KaboomConfig contains all configuration for the kaboom platformer.
type KaboomConfig struct {
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Items      ItemsConfig      `yaml:"items"`
	Animations AnimationsConfig `yaml:"animations"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the playfield in world units.
type WorldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundOffset float64 `yaml:"ground_offset"` // ground sits this far above the bottom edge
}

// GroundY returns the Y of the ground surface.
func (w WorldConfig) GroundY() float64 {
	return w.Height - w.GroundOffset
}

// PhysicsConfig defines per-tick movement constants.
type PhysicsConfig struct {
	Speed     float64 `yaml:"speed"`
	JumpPower float64 `yaml:"jump_power"`
	Gravity   float64 `yaml:"gravity"`
}

// Sim converts to the simulation's physics constants.
func (p PhysicsConfig) Sim() sim.Physics {
	return sim.Physics{Speed: p.Speed, JumpPower: p.JumpPower, Gravity: p.Gravity}
}

// PlayerConfig defines the player's spawn, size and starting stats.
type PlayerConfig struct {
	SpawnX float64 `yaml:"spawn_x"`
	SpawnY float64 `yaml:"spawn_y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Health int     `yaml:"health"`
	Bombs  int     `yaml:"bombs"`
	Lives  int     `yaml:"lives"`
}

// ScoringConfig defines level completion rewards.
type ScoringConfig struct {
	LevelBonus   int `yaml:"level_bonus"`
	TokenDivisor int `yaml:"token_divisor"` // tokens = score / divisor
}

// ItemsConfig defines potions and bombs. Durations are in ticks.
type ItemsConfig struct {
	HeartHeal    int     `yaml:"heart_heal"`
	BombCooldown int     `yaml:"bomb_cooldown"`
	BombFuse     int     `yaml:"bomb_fuse"`
	BombSize     float64 `yaml:"bomb_size"`
}

// Rules converts to the simulation's item rules. Heart potions heal up to
// maxHealth, the player's starting health.
func (i ItemsConfig) Rules(maxHealth int) sim.ItemRules {
	return sim.ItemRules{
		MaxHealth:    maxHealth,
		HeartHeal:    i.HeartHeal,
		BombCooldown: i.BombCooldown,
		BombFuse:     i.BombFuse,
		BombSize:     i.BombSize,
	}
}

// FrameConfig is one animation's frame count and ticks per frame.
type FrameConfig struct {
	Frames    int `yaml:"frames"`
	Threshold int `yaml:"threshold"`
}

// AnimationSet maps animation names (idle, run, jump, fall) to frames.
type AnimationSet map[string]FrameConfig

// FrameTable overlays the set onto base. Unknown animation names are an error.
func (s AnimationSet) FrameTable(base sim.FrameTable) (sim.FrameTable, error) {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)

	t := base
	for _, name := range names {
		anim, err := sim.ParseAnimation(name)
		if err != nil {
			return base, fmt.Errorf("config: %w", err)
		}
		fc := s[name]
		t = t.With(anim, sim.FrameSpec{Frames: fc.Frames, Threshold: fc.Threshold})
	}
	return t, nil
}

// AnimationsConfig holds the player's animation set and one per enemy kind.
type AnimationsConfig struct {
	Player  AnimationSet            `yaml:"player"`
	Enemies map[string]AnimationSet `yaml:"enemies"`
}

// PlayerFrames returns the player's frame table.
func (a AnimationsConfig) PlayerFrames() (sim.FrameTable, error) {
	return a.Player.FrameTable(sim.DefaultPlayerFrames())
}

// EnemyFrames returns a frame table per configured enemy kind.
func (a AnimationsConfig) EnemyFrames() (map[string]sim.FrameTable, error) {
	out := make(map[string]sim.FrameTable, len(a.Enemies))
	for kind, set := range a.Enemies {
		t, err := set.FrameTable(sim.DefaultEnemyFrames())
		if err != nil {
			return nil, fmt.Errorf("config: enemy %s: %w", kind, err)
		}
		out[kind] = t
	}
	return out, nil
}

// DifficultyConfig defines how enemies speed up as the run progresses.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level", "score", or "none"
	MaxAt int    `yaml:"max_at"` // level index or score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	DriftSpeedMultiplier float64 `yaml:"drift_speed_multiplier"` // drift speed is 1+this times faster at max difficulty; above -1
	DriftAmplitudeBonus  float64 `yaml:"drift_amplitude_bonus"`  // added to drift amplitude at max difficulty
}

// Validate reports the first structural problem in the config.
func (c KaboomConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("config: world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	case c.World.GroundOffset < 0 || c.World.GroundOffset >= c.World.Height:
		return fmt.Errorf("config: ground_offset %v outside world height %v", c.World.GroundOffset, c.World.Height)
	case c.Physics.Speed <= 0:
		return fmt.Errorf("config: physics.speed must be positive, got %v", c.Physics.Speed)
	case c.Physics.JumpPower <= 0:
		return fmt.Errorf("config: physics.jump_power must be positive, got %v", c.Physics.JumpPower)
	case c.Physics.Gravity <= 0:
		return fmt.Errorf("config: physics.gravity must be positive, got %v", c.Physics.Gravity)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("config: player size must be positive, got %vx%v", c.Player.Width, c.Player.Height)
	case c.Player.Width > c.World.Width:
		return fmt.Errorf("config: player wider than world")
	case c.Scoring.TokenDivisor <= 0:
		return fmt.Errorf("config: scoring.token_divisor must be positive, got %d", c.Scoring.TokenDivisor)
	case c.Difficulty.Scaling.DriftSpeedMultiplier <= -1:
		return fmt.Errorf("config: difficulty.scaling.drift_speed_multiplier must be above -1, got %v",
			c.Difficulty.Scaling.DriftSpeedMultiplier)
	case c.Items.HeartHeal < 0:
		return fmt.Errorf("config: items.heart_heal must not be negative, got %d", c.Items.HeartHeal)
	case c.Items.BombCooldown < 0 || c.Items.BombFuse < 0:
		return fmt.Errorf("config: items bomb timers must not be negative")
	case c.Items.BombSize <= 0:
		return fmt.Errorf("config: items.bomb_size must be positive, got %v", c.Items.BombSize)
	}

	if err := validateSet("player", c.Animations.Player); err != nil {
		return err
	}
	for kind, set := range c.Animations.Enemies {
		if err := validateSet("enemy "+kind, set); err != nil {
			return err
		}
	}
	return nil
}

func validateSet(owner string, set AnimationSet) error {
	for name, fc := range set {
		if _, err := sim.ParseAnimation(name); err != nil {
			return fmt.Errorf("config: %s: %w", owner, err)
		}
		if fc.Frames < 0 {
			return fmt.Errorf("config: %s %s: frames must not be negative", owner, name)
		}
		if fc.Threshold <= 0 {
			return fmt.Errorf("config: %s %s: threshold must be positive", owner, name)
		}
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficulty validates a preset name. Empty means normal.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (easy, normal, hard, fixed)", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
