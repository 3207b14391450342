package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/kaboom/internal/core"
)

func referenceConfig() Config {
	door := core.NewAABB(900, 430, 48, 96)
	return Config{
		Bounds:       Bounds{Width: 1024, GroundY: 526},
		Height:       576,
		Physics:      DefaultPhysics(),
		PlayerFrames: DefaultPlayerFrames(),
		EnemyFrames: map[string]FrameTable{
			"pirate": NewFrameTable(FrameSpec{Frames: 2, Threshold: 15}),
		},
		Player: Player{
			Actor: NewActor("player", 100, 300, 48, 48),
			Stats: PlayerStats{Health: 100, Bombs: 3, Lives: 3},
		},
		Enemies: []Enemy{
			NewEnemy("pirate", 400, 350, 48, 48, Motion{}),
			NewEnemy("cucumber", 600, 250, 48, 48, Motion{Kind: MotionDrift, Amplitude: 40, Period: 120}),
		},
		Platforms: []Platform{
			NewPlatform(200, 400, 192, 32),
			NewPlatform(500, 300, 192, 32),
		},
		Door: &door,
	}
}

func TestWorldStepFollowsTick(t *testing.T) {
	cfg := referenceConfig()
	w := NewWorld(cfg)

	ref := cfg.Player.Actor
	idle := core.NewInputState()
	for i := 0; i < 40; i++ {
		w.Step(idle)
		Tick(&ref, idle, cfg.Platforms, cfg.Bounds, cfg.Physics, cfg.PlayerFrames)
		require.Equal(t, ref, w.Player().Actor, "tick %d", i)
	}
	assert.Equal(t, uint64(40), w.Ticks())
}

func TestWorldIndependentOfConfig(t *testing.T) {
	cfg := referenceConfig()
	a := NewWorld(cfg)
	b := NewWorld(cfg)

	right := core.NewInputState(core.ActionMoveRight)
	for i := 0; i < 60; i++ {
		a.Step(right)
	}

	assert.Equal(t, 100.0, cfg.Player.X, "config player must not move")
	assert.Equal(t, 600.0, b.Enemies()[1].X)
	assert.NotEqual(t, a.Player().X, b.Player().X)
}

func TestWorldEnemyFrameTables(t *testing.T) {
	w := NewWorld(referenceConfig())
	for i := 0; i < 15; i++ {
		w.Step(core.NewInputState())
	}
	enemies := w.Enemies()
	assert.Equal(t, 1, enemies[0].Frame, "pirate uses its own table")
	assert.Equal(t, 0, enemies[1].Frame, "cucumber falls back to a single frame")
}

func TestWorldDoorCompletesLevel(t *testing.T) {
	w := NewWorld(referenceConfig())
	right := core.NewInputState(core.ActionMoveRight)

	completed := false
	for i := 0; i < 400 && !completed; i++ {
		completed = w.Step(right).LevelComplete
	}
	require.True(t, completed)

	d, ok := w.Door()
	require.True(t, ok)
	assert.True(t, w.Player().Bounds().Overlaps(d))
}

func TestWorldWithoutDoor(t *testing.T) {
	cfg := referenceConfig()
	cfg.Door = nil
	w := NewWorld(cfg)

	_, ok := w.Door()
	assert.False(t, ok)

	right := core.NewInputState(core.ActionMoveRight)
	for i := 0; i < 400; i++ {
		require.False(t, w.Step(right).LevelComplete)
	}
}

func TestWorldStop(t *testing.T) {
	w := NewWorld(referenceConfig())
	w.Step(core.NewInputState())
	require.True(t, w.Running())

	w.Stop()
	before := w.Snapshot()
	ev := w.Step(core.NewInputState(core.ActionMoveRight))

	assert.False(t, w.Running())
	assert.False(t, ev.LevelComplete)
	assert.Equal(t, before, w.Snapshot())
}

func TestWorldEmpty(t *testing.T) {
	w := NewWorld(Config{
		Bounds:       Bounds{Width: 320, GroundY: 200},
		Physics:      DefaultPhysics(),
		PlayerFrames: DefaultPlayerFrames(),
		Player:       Player{Actor: NewActor("player", 0, 0, 16, 16)},
	})
	for i := 0; i < 100; i++ {
		w.Step(core.NewInputState())
	}
	assert.True(t, w.Player().Grounded)
	assert.Equal(t, 184.0, w.Player().Y)
	assert.Empty(t, w.Enemies())
}
