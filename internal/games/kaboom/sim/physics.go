package sim

import "github.com/vovakirdan/kaboom/internal/core"

// Physics holds the per-tick movement constants.
type Physics struct {
	Speed     float64 // horizontal speed, units per tick
	JumpPower float64 // initial upward speed of a jump
	Gravity   float64 // added to VY every tick
}

// DefaultPhysics returns the constants of the reference game.
func DefaultPhysics() Physics {
	return Physics{Speed: 4, JumpPower: 12, Gravity: 0.6}
}

// Bounds describes the static world an actor moves in.
type Bounds struct {
	Width   float64 // actors are clamped to [0, Width-W]
	GroundY float64 // top of the ground surface
}

// Tick advances one actor by one fixed step.
//
// Ground is resolved before platforms and both may mark the actor grounded;
// a platform landing can move the actor after the ground clamp ran. Only
// downward landings on platform tops are resolved: sides and undersides
// are passable.
func Tick(a *Actor, in core.InputState, platforms []Platform, world Bounds, phys Physics, frames FrameTable) {
	switch {
	case in.Held(core.ActionMoveLeft):
		a.VX = -phys.Speed
	case in.Held(core.ActionMoveRight):
		a.VX = phys.Speed
	default:
		a.VX = 0
	}

	// Grounded still reflects the previous tick here.
	if in.Held(core.ActionJump) && a.Grounded {
		a.VY = -phys.JumpPower
		a.Grounded = false
	}

	a.VY += phys.Gravity

	a.X += a.VX
	a.Y += a.VY

	a.Grounded = false
	if a.Y+a.H >= world.GroundY {
		a.Y = world.GroundY - a.H
		a.VY = 0
		a.Grounded = true
	}

	for _, p := range platforms {
		if !a.Bounds().Overlaps(p.AABB) {
			continue
		}
		if a.VY > 0 && a.Y < p.Y {
			a.Y = p.Y - a.H
			a.VY = 0
			a.Grounded = true
		}
	}

	a.X = ClampX(a.X, a.W, world.Width)

	a.setAnimation(SelectAnimation(a.Grounded, a.VX, a.VY))
	a.advanceFrame(frames)
}

// ClampX keeps an actor of width w inside [0, worldWidth-w].
func ClampX(x, w, worldWidth float64) float64 {
	if x < 0 {
		return 0
	}
	if x > worldWidth-w {
		return worldWidth - w
	}
	return x
}
