package sim

import "fmt"

// Animation is one of the fixed animation states an actor can be in.
type Animation uint8

const (
	AnimIdle Animation = iota
	AnimRun
	AnimJump
	AnimFall

	animationCount
)

// Animations lists every animation in declaration order.
var Animations = [...]Animation{AnimIdle, AnimRun, AnimJump, AnimFall}

// String returns the animation name used in config files and snapshots.
func (a Animation) String() string {
	switch a {
	case AnimIdle:
		return "idle"
	case AnimRun:
		return "run"
	case AnimJump:
		return "jump"
	case AnimFall:
		return "fall"
	default:
		return fmt.Sprintf("Animation(%d)", uint8(a))
	}
}

// ParseAnimation converts a config name back to an Animation.
func ParseAnimation(name string) (Animation, error) {
	for _, a := range Animations {
		if a.String() == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("sim: unknown animation %q", name)
}

// FrameSpec describes one animation's frame count and how many ticks
// each frame is shown for.
type FrameSpec struct {
	Frames    int
	Threshold int
}

// FrameTable maps every animation to its FrameSpec.
type FrameTable [animationCount]FrameSpec

// NewFrameTable builds a table where every animation uses spec.
func NewFrameTable(spec FrameSpec) FrameTable {
	var t FrameTable
	for i := range t {
		t[i] = spec
	}
	return t
}

// With returns a copy of the table with a replaced entry.
func (t FrameTable) With(a Animation, spec FrameSpec) FrameTable {
	if a < animationCount {
		t[a] = spec
	}
	return t
}

// Spec returns the FrameSpec for an animation.
func (t FrameTable) Spec(a Animation) FrameSpec {
	if a >= animationCount {
		return FrameSpec{}
	}
	return t[a]
}

// SelectAnimation derives the animation from the actor's motion state.
func SelectAnimation(grounded bool, vx, vy float64) Animation {
	switch {
	case grounded && vx == 0:
		return AnimIdle
	case grounded:
		return AnimRun
	case vy < 0:
		return AnimJump
	default:
		return AnimFall
	}
}

// setAnimation switches the current animation. Switching restarts the
// animation at frame 0 with a fresh timer.
func (a *Actor) setAnimation(anim Animation) {
	if a.Anim == anim {
		return
	}
	a.Anim = anim
	a.Frame = 0
	a.FrameTimer = 0
}

// advanceFrame counts one tick against the current frame and moves to the
// next frame when the threshold is reached. An animation without frames
// stays on frame 0.
func (a *Actor) advanceFrame(frames FrameTable) {
	spec := frames.Spec(a.Anim)
	a.FrameTimer++
	if spec.Threshold <= 0 || a.FrameTimer < spec.Threshold {
		return
	}
	a.FrameTimer = 0
	if spec.Frames <= 0 {
		a.Frame = 0
		return
	}
	a.Frame = (a.Frame + 1) % spec.Frames
}
