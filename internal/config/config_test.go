package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/kaboom/internal/games/kaboom/sim"
)

// isolate points HOME and the working directory at empty temp dirs so the
// search path only sees files the test writes.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	chdirT(t, work)
	return home, work
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg KaboomConfig
	require.NoError(t, yaml.Unmarshal(defaultKaboomYAML, &cfg))
	assert.Equal(t, DefaultKaboomConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadKaboomEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := LoadKaboom("")
	require.NoError(t, err)
	assert.Equal(t, DefaultKaboomConfig(), cfg)
	assert.Equal(t, 526.0, cfg.World.GroundY())
}

func TestLoadKaboomSearchOrder(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, filepath.Join(work, "configs", KaboomFile), "physics:\n  speed: 6\n")
	cfg, err := LoadKaboom("")
	require.NoError(t, err)
	assert.Equal(t, 6.0, cfg.Physics.Speed)
	assert.Equal(t, 12.0, cfg.Physics.JumpPower, "unset keys keep defaults")

	writeFile(t, filepath.Join(home, ".kaboom", "configs", KaboomFile), "physics:\n  speed: 7\n")
	cfg, err = LoadKaboom("")
	require.NoError(t, err)
	assert.Equal(t, 7.0, cfg.Physics.Speed, "user dir wins over ./configs")

	custom := filepath.Join(t.TempDir(), "mine.yaml")
	writeFile(t, custom, "physics:\n  speed: 8\n")
	cfg, err = LoadKaboom(custom)
	require.NoError(t, err)
	assert.Equal(t, 8.0, cfg.Physics.Speed, "custom path wins over everything")
}

func TestLoadKaboomInvalidUserFileFallsThrough(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, filepath.Join(home, ".kaboom", "configs", KaboomFile), "physics: [broken")
	writeFile(t, filepath.Join(work, "configs", KaboomFile), "physics:\n  gravity: 0.8\n")

	cfg, err := LoadKaboom("")
	require.NoError(t, err)
	assert.Equal(t, 0.8, cfg.Physics.Gravity)
}

func TestLoadKaboomCustomErrors(t *testing.T) {
	isolate(t)

	_, err := LoadKaboom(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "config: read")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "world: {width: -5}\n")
	_, err = LoadKaboom(bad)
	assert.ErrorContains(t, err, "world size must be positive")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*KaboomConfig)
		errMsg string
	}{
		{"defaults", func(*KaboomConfig) {}, ""},
		{"zero width", func(c *KaboomConfig) { c.World.Width = 0 }, "world size"},
		{"ground below world", func(c *KaboomConfig) { c.World.GroundOffset = 600 }, "ground_offset"},
		{"zero speed", func(c *KaboomConfig) { c.Physics.Speed = 0 }, "physics.speed"},
		{"negative gravity", func(c *KaboomConfig) { c.Physics.Gravity = -1 }, "physics.gravity"},
		{"zero jump", func(c *KaboomConfig) { c.Physics.JumpPower = 0 }, "physics.jump_power"},
		{"flat player", func(c *KaboomConfig) { c.Player.Height = 0 }, "player size"},
		{"huge player", func(c *KaboomConfig) { c.Player.Width = 2000 }, "wider than world"},
		{"token divisor", func(c *KaboomConfig) { c.Scoring.TokenDivisor = 0 }, "token_divisor"},
		{"drift multiplier at -1", func(c *KaboomConfig) { c.Difficulty.Scaling.DriftSpeedMultiplier = -1 }, "drift_speed_multiplier"},
		{"drift multiplier slows", func(c *KaboomConfig) { c.Difficulty.Scaling.DriftSpeedMultiplier = -0.5 }, ""},
		{"negative heal", func(c *KaboomConfig) { c.Items.HeartHeal = -1 }, "heart_heal"},
		{"negative fuse", func(c *KaboomConfig) { c.Items.BombFuse = -1 }, "bomb timers"},
		{"zero bomb", func(c *KaboomConfig) { c.Items.BombSize = 0 }, "bomb_size"},
		{"unknown animation", func(c *KaboomConfig) {
			c.Animations.Player = AnimationSet{"dance": {Frames: 1, Threshold: 1}}
		}, "unknown animation"},
		{"zero threshold", func(c *KaboomConfig) {
			c.Animations.Enemies["pirate"] = AnimationSet{"idle": {Frames: 2, Threshold: 0}}
		}, "enemy pirate idle: threshold"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultKaboomConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

func TestAnimationFrameTables(t *testing.T) {
	cfg := DefaultKaboomConfig()

	player, err := cfg.Animations.PlayerFrames()
	require.NoError(t, err)
	assert.Equal(t, sim.DefaultPlayerFrames(), player)

	cfg.Animations.Player["run"] = FrameConfig{Frames: 14, Threshold: 8}
	player, err = cfg.Animations.PlayerFrames()
	require.NoError(t, err)
	assert.Equal(t, sim.FrameSpec{Frames: 14, Threshold: 8}, player.Spec(sim.AnimRun))

	enemies, err := cfg.Animations.EnemyFrames()
	require.NoError(t, err)
	require.Contains(t, enemies, "whale")
	assert.Equal(t, 20, enemies["whale"].Spec(sim.AnimIdle).Threshold)
	assert.Equal(t, 15, enemies["whale"].Spec(sim.AnimJump).Threshold, "unset animations keep the enemy default")
}

func TestApplyKaboomPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		lives  int
		health int
	}{
		{DifficultyEasy, 5, 150},
		{DifficultyNormal, 3, 100},
		{DifficultyHard, 1, 60},
		{DifficultyFixed, 3, 100},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultKaboomConfig()
			ApplyKaboomPreset(&cfg, tc.preset)
			assert.Equal(t, tc.lives, cfg.Player.Lives)
			assert.Equal(t, tc.health, cfg.Player.Health)
			assert.Equal(t, DefaultKaboomConfig().Difficulty, cfg.Difficulty, "progression is left to the manager")
			assert.NoError(t, cfg.Validate())
		})
	}

	hard := DefaultKaboomConfig()
	ApplyKaboomPreset(&hard, DifficultyHard)
	assert.Greater(t, hard.Physics.Gravity, DefaultKaboomConfig().Physics.Gravity)
}

func TestItemRules(t *testing.T) {
	rules := DefaultKaboomConfig().Items.Rules(150)
	assert.Equal(t, sim.ItemRules{MaxHealth: 150, HeartHeal: 50, BombCooldown: 30, BombFuse: 90, BombSize: 64}, rules)
}

func TestParseDifficulty(t *testing.T) {
	p, err := ParseDifficulty("")
	require.NoError(t, err)
	assert.Equal(t, DifficultyNormal, p)

	p, err = ParseDifficulty("hard")
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, p)

	_, err = ParseDifficulty("nightmare")
	assert.Error(t, err)
	assert.True(t, IsFixedPreset(DifficultyFixed))
}

func TestGetDefaultYAML(t *testing.T) {
	assert.NotEmpty(t, GetDefaultYAML("kaboom"))
	assert.NotEmpty(t, GetDefaultYAML("kaboom-lite"))
	assert.Nil(t, GetDefaultYAML("snake"))
}
