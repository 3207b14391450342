// Package sim is the kaboom simulation core: actors, static platforms,
// fixed-step physics with landing-only collision, and the animation state
// machine. It performs no I/O and never fails; a World is owned by exactly
// one goroutine.
package sim

import "github.com/vovakirdan/kaboom/internal/core"

// DefaultPlayerFrames is the player's animation table in the reference game.
func DefaultPlayerFrames() FrameTable {
	return NewFrameTable(FrameSpec{Frames: 5, Threshold: 10}).
		With(AnimJump, FrameSpec{Frames: 4, Threshold: 10}).
		With(AnimFall, FrameSpec{Frames: 2, Threshold: 10})
}

// DefaultEnemyFrames is used for enemy kinds without their own table.
func DefaultEnemyFrames() FrameTable {
	return NewFrameTable(FrameSpec{Frames: 1, Threshold: 15})
}

// Config is everything needed to build a World.
type Config struct {
	Bounds  Bounds
	Height  float64 // world height, used by renderers only
	Physics Physics

	PlayerFrames FrameTable
	EnemyFrames  map[string]FrameTable // keyed by enemy kind

	Player    Player
	Enemies   []Enemy
	Platforms []Platform
	Potions   []Potion
	Door      *core.AABB // level exit, nil for none

	Items ItemRules
}

// StepEvents reports what happened during one World.Step.
type StepEvents struct {
	LevelComplete    bool // the player overlaps the door
	PotionsCollected int
	BombPlaced       bool
}

// World is the single mutable simulation state: one player, enemies,
// platforms, potions, placed bombs and an optional exit door.
type World struct {
	cfg          Config
	player       Player
	enemies      []Enemy
	platforms    []Platform
	potions      []Potion
	bombs        []Bomb
	bombCooldown int
	door         *core.AABB
	ticks        uint64
	running      bool
}

// NewWorld creates a running world from cfg. Enemies are respawned and
// slices copied, so one Config can seed any number of independent worlds.
func NewWorld(cfg Config) *World {
	w := &World{
		cfg:       cfg,
		player:    cfg.Player,
		enemies:   make([]Enemy, len(cfg.Enemies)),
		platforms: append([]Platform(nil), cfg.Platforms...),
		potions:   append([]Potion(nil), cfg.Potions...),
		running:   true,
	}
	for i, e := range cfg.Enemies {
		w.enemies[i] = e.respawn()
	}
	if cfg.Door != nil {
		door := *cfg.Door
		w.door = &door
	}
	return w
}

// Step advances the world by one tick. It is a no-op once stopped.
func (w *World) Step(in core.InputState) StepEvents {
	if !w.running {
		return StepEvents{}
	}

	Tick(&w.player.Actor, in, w.platforms, w.cfg.Bounds, w.cfg.Physics, w.cfg.PlayerFrames)

	for i := range w.enemies {
		w.enemies[i].step(w.cfg.Bounds.Width, w.enemyFrames(w.enemies[i].Kind))
	}

	w.ticks++

	var ev StepEvents
	ev.BombPlaced = w.stepBombs(in)
	ev.PotionsCollected = w.collectPotions()
	if w.door != nil && w.player.Bounds().Overlaps(*w.door) {
		ev.LevelComplete = true
	}
	return ev
}

func (w *World) enemyFrames(kind string) FrameTable {
	if t, ok := w.cfg.EnemyFrames[kind]; ok {
		return t
	}
	return DefaultEnemyFrames()
}

// Stop halts the world; later Steps do nothing.
func (w *World) Stop() {
	w.running = false
}

// Running reports whether the world still advances.
func (w *World) Running() bool {
	return w.running
}

// Ticks returns the number of steps taken.
func (w *World) Ticks() uint64 {
	return w.ticks
}

// Player returns the player for inspection or stat updates.
func (w *World) Player() *Player {
	return &w.player
}

// Enemies returns the live enemy list.
func (w *World) Enemies() []Enemy {
	return w.enemies
}

// Platforms returns the static platform list.
func (w *World) Platforms() []Platform {
	return w.platforms
}

// Potions returns the level's potions, collected ones included.
func (w *World) Potions() []Potion {
	return w.potions
}

// Bombs returns the placed bombs whose fuse is still burning.
func (w *World) Bombs() []Bomb {
	return w.bombs
}

// Bounds returns the world bounds.
func (w *World) Bounds() Bounds {
	return w.cfg.Bounds
}

// Height returns the world height.
func (w *World) Height() float64 {
	return w.cfg.Height
}

// Door returns the level exit, if the world has one.
func (w *World) Door() (core.AABB, bool) {
	if w.door == nil {
		return core.AABB{}, false
	}
	return *w.door, true
}
