// Package levels loads kaboom level layouts from YAML and Tiled TMX files.
package levels

import (
	"fmt"

	"github.com/vovakirdan/kaboom/internal/core"
	"github.com/vovakirdan/kaboom/internal/games/kaboom/sim"
)

// Point is a position in world units.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// EnemySpawn places one enemy.
type EnemySpawn struct {
	Kind      string  `yaml:"kind"`
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	W         float64 `yaml:"w"`
	H         float64 `yaml:"h"`
	Motion    string  `yaml:"motion"`    // "static" (default) or "drift"
	Amplitude float64 `yaml:"amplitude"` // drift only
	Period    float64 `yaml:"period"`    // drift only, ticks per cycle
}

// PotionSpawn places one potion. Kind is "heart" (the default).
type PotionSpawn struct {
	Kind string  `yaml:"kind"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	W    float64 `yaml:"w"`
	H    float64 `yaml:"h"`
}

// Level is one static layout. Zero world sizes, a zero ground and a nil
// spawn mean "use the game config".
type Level struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Order  int    `yaml:"order"`
	Source string `yaml:"-"` // file the level was read from

	WorldW  float64 `yaml:"world_w"`
	WorldH  float64 `yaml:"world_h"`
	GroundY float64 `yaml:"ground_y"`

	Spawn     *Point        `yaml:"spawn"`
	Platforms []core.AABB   `yaml:"platforms"`
	Enemies   []EnemySpawn  `yaml:"enemies"`
	Potions   []PotionSpawn `yaml:"potions"`
	Door      *core.AABB    `yaml:"door"`
}

// Default enemy and potion boxes when a level omits the size.
const (
	DefaultEnemyW  = 48
	DefaultEnemyH  = 48
	DefaultPotionW = 32
	DefaultPotionH = 32
)

// normalize fills defaults that do not depend on the game config.
func (l *Level) normalize() {
	if l.Name == "" {
		l.Name = l.ID
	}
	for i := range l.Enemies {
		e := &l.Enemies[i]
		if e.W == 0 {
			e.W = DefaultEnemyW
		}
		if e.H == 0 {
			e.H = DefaultEnemyH
		}
		if e.Motion == "" {
			e.Motion = "static"
		}
	}
	for i := range l.Potions {
		p := &l.Potions[i]
		if p.Kind == "" {
			p.Kind = sim.PotionHeart
		}
		if p.W == 0 {
			p.W = DefaultPotionW
		}
		if p.H == 0 {
			p.H = DefaultPotionH
		}
	}
}

// Validate reports the first structural problem in the level.
func (l *Level) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("levels: level has no id")
	}
	if l.WorldW < 0 || l.WorldH < 0 {
		return fmt.Errorf("levels: %s: negative world size", l.ID)
	}
	for i, p := range l.Platforms {
		if p.W <= 0 || p.H <= 0 {
			return fmt.Errorf("levels: %s: platform %d has non-positive size", l.ID, i)
		}
	}
	for i, e := range l.Enemies {
		if e.Kind == "" {
			return fmt.Errorf("levels: %s: enemy %d has no kind", l.ID, i)
		}
		if e.W <= 0 || e.H <= 0 {
			return fmt.Errorf("levels: %s: enemy %d has non-positive size", l.ID, i)
		}
		switch e.Motion {
		case "static":
		case "drift":
			if e.Amplitude <= 0 || e.Period <= 0 {
				return fmt.Errorf("levels: %s: drifting enemy %d needs amplitude and period", l.ID, i)
			}
		default:
			return fmt.Errorf("levels: %s: enemy %d has unknown motion %q", l.ID, i, e.Motion)
		}
	}
	for i, p := range l.Potions {
		if p.Kind != sim.PotionHeart {
			return fmt.Errorf("levels: %s: potion %d has unknown kind %q", l.ID, i, p.Kind)
		}
		if p.W <= 0 || p.H <= 0 {
			return fmt.Errorf("levels: %s: potion %d has non-positive size", l.ID, i)
		}
	}
	if l.Door != nil && (l.Door.W <= 0 || l.Door.H <= 0) {
		return fmt.Errorf("levels: %s: door has non-positive size", l.ID)
	}
	return nil
}
