package config

import (
	_ "embed"

	"github.com/vovakirdan/kaboom/internal/games/kaboom/sim"
)

//go:embed defaults/kaboom.yaml
var defaultKaboomYAML []byte

// DefaultKaboomConfig returns the default kaboom configuration.
func DefaultKaboomConfig() KaboomConfig {
	enemy := func(threshold int) AnimationSet {
		return AnimationSet{
			sim.AnimIdle.String(): {Frames: 2, Threshold: threshold},
			sim.AnimRun.String():  {Frames: 2, Threshold: threshold},
		}
	}
	return KaboomConfig{
		World: WorldConfig{
			Width:        1024,
			Height:       576,
			GroundOffset: 50,
		},
		Physics: PhysicsConfig{
			Speed:     4,
			JumpPower: 12,
			Gravity:   0.6,
		},
		Player: PlayerConfig{
			SpawnX: 100,
			SpawnY: 300,
			Width:  48,
			Height: 48,
			Health: 100,
			Bombs:  3,
			Lives:  3,
		},
		Scoring: ScoringConfig{
			LevelBonus:   200,
			TokenDivisor: 10,
		},
		Items: ItemsConfig{
			HeartHeal:    50,
			BombCooldown: 30,
			BombFuse:     90,
			BombSize:     64,
		},
		Animations: AnimationsConfig{
			Player: AnimationSet{
				sim.AnimIdle.String(): {Frames: 5, Threshold: 10},
				sim.AnimRun.String():  {Frames: 5, Threshold: 10},
				sim.AnimJump.String(): {Frames: 4, Threshold: 10},
				sim.AnimFall.String(): {Frames: 2, Threshold: 10},
			},
			Enemies: map[string]AnimationSet{
				"pirate":   enemy(15),
				"cucumber": enemy(15),
				"bigguy":   enemy(15),
				"captain":  enemy(15),
				"whale":    enemy(20),
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 4,
			},
			Scaling: ScalingConfig{
				DriftSpeedMultiplier: 1.0,
				DriftAmplitudeBonus:  40,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "kaboom", "kaboom-lite":
		return defaultKaboomYAML
	default:
		return nil
	}
}
