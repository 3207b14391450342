package kaboom

import (
	"github.com/vovakirdan/kaboom/internal/config"
	"github.com/vovakirdan/kaboom/internal/core"
	"github.com/vovakirdan/kaboom/internal/games/kaboom/sim"
	"github.com/vovakirdan/kaboom/internal/levels"
)

// WorldConfig combines the game config and a level into a simulation
// config. Level values override the config's world size, ground line and
// spawn point when set. difficulty may be nil.
func WorldConfig(cfg config.KaboomConfig, lvl levels.Level, difficulty *config.DifficultyManager, levelIdx, score int) (sim.Config, error) {
	playerFrames, err := cfg.Animations.PlayerFrames()
	if err != nil {
		return sim.Config{}, err
	}
	enemyFrames, err := cfg.Animations.EnemyFrames()
	if err != nil {
		return sim.Config{}, err
	}

	width, height := cfg.World.Width, cfg.World.Height
	if lvl.WorldW > 0 {
		width = lvl.WorldW
	}
	if lvl.WorldH > 0 {
		height = lvl.WorldH
	}
	groundY := height - cfg.World.GroundOffset
	if lvl.GroundY > 0 {
		groundY = lvl.GroundY
	}

	spawnX, spawnY := cfg.Player.SpawnX, cfg.Player.SpawnY
	if lvl.Spawn != nil {
		spawnX, spawnY = lvl.Spawn.X, lvl.Spawn.Y
	}

	wc := sim.Config{
		Bounds:       sim.Bounds{Width: width, GroundY: groundY},
		Height:       height,
		Physics:      cfg.Physics.Sim(),
		PlayerFrames: playerFrames,
		EnemyFrames:  enemyFrames,
		Player: sim.Player{
			Actor: sim.NewActor("player", spawnX, spawnY, cfg.Player.Width, cfg.Player.Height),
		},
		Platforms: make([]sim.Platform, 0, len(lvl.Platforms)),
		Enemies:   make([]sim.Enemy, 0, len(lvl.Enemies)),
		Potions:   make([]sim.Potion, 0, len(lvl.Potions)),
		Items:     cfg.Items.Rules(cfg.Player.Health),
	}

	for _, p := range lvl.Potions {
		wc.Potions = append(wc.Potions, sim.NewPotion(p.Kind, p.X, p.Y, p.W, p.H))
	}

	for _, p := range lvl.Platforms {
		wc.Platforms = append(wc.Platforms, sim.NewPlatform(p.X, p.Y, p.W, p.H))
	}

	for _, e := range lvl.Enemies {
		motion := sim.Motion{
			Kind:      sim.ParseMotion(e.Motion),
			Amplitude: e.Amplitude,
			Period:    e.Period,
		}
		if motion.Kind == sim.MotionDrift && difficulty != nil {
			motion.Amplitude = difficulty.DriftAmplitude(e.Amplitude, levelIdx, score)
			motion.Period = difficulty.DriftPeriod(e.Period, levelIdx, score)
		}
		wc.Enemies = append(wc.Enemies, sim.NewEnemy(e.Kind, e.X, e.Y, e.W, e.H, motion))
	}

	if lvl.Door != nil {
		door := core.NewAABB(lvl.Door.X, lvl.Door.Y, lvl.Door.W, lvl.Door.H)
		wc.Door = &door
	}
	return wc, nil
}
