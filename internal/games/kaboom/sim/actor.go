package sim

import "github.com/vovakirdan/kaboom/internal/core"

// Actor is anything that moves and animates: the player or an enemy.
type Actor struct {
	Kind string // sprite kind, e.g. "player", "pirate"

	X, Y   float64
	VX, VY float64
	W, H   float64

	Grounded   bool
	Anim       Animation
	Frame      int
	FrameTimer int
}

// NewActor creates an actor at rest at (x, y).
func NewActor(kind string, x, y, w, h float64) Actor {
	return Actor{Kind: kind, X: x, Y: y, W: w, H: h, Anim: AnimIdle}
}

// Bounds returns the actor's current bounding box.
func (a *Actor) Bounds() core.AABB {
	return core.NewAABB(a.X, a.Y, a.W, a.H)
}

// PlayerStats is the per-run state carried by the player.
type PlayerStats struct {
	Health int
	Bombs  int
	Score  int
	Tokens int
	Lives  int
}

// Player is the input-driven actor.
type Player struct {
	Actor
	Stats PlayerStats
}

// Platform is a static rectangle actors can land on from above.
type Platform struct {
	core.AABB
}

// NewPlatform creates a platform.
func NewPlatform(x, y, w, h float64) Platform {
	return Platform{AABB: core.NewAABB(x, y, w, h)}
}
