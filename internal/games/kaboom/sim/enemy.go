package sim

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// MotionKind selects how an enemy moves.
type MotionKind uint8

const (
	MotionStatic MotionKind = iota
	MotionDrift
)

// String returns the config name of the motion kind.
func (m MotionKind) String() string {
	if m == MotionDrift {
		return "drift"
	}
	return "static"
}

// ParseMotion converts a config name to a MotionKind.
// Empty and unknown names are static.
func ParseMotion(name string) MotionKind {
	if name == "drift" {
		return MotionDrift
	}
	return MotionStatic
}

// Motion describes an enemy's movement pattern.
type Motion struct {
	Kind      MotionKind
	Amplitude float64 // max horizontal offset from the spawn X
	Period    float64 // ticks for one full left-right cycle
}

// Enemy is a non-player actor. Enemies ignore gravity and platforms and are
// never damaged: they either stand still or drift horizontally around
// their spawn point.
type Enemy struct {
	Actor
	Motion Motion

	originX float64
	drift   *drifter
}

// NewEnemy creates an enemy standing at (x, y).
func NewEnemy(kind string, x, y, w, h float64, motion Motion) Enemy {
	e := Enemy{
		Actor:   NewActor(kind, x, y, w, h),
		Motion:  motion,
		originX: x,
	}
	if motion.Kind == MotionDrift && motion.Amplitude > 0 && motion.Period > 0 {
		e.drift = newDrifter(x, motion.Amplitude, motion.Period)
	}
	return e
}

// OriginX returns the spawn X the enemy drifts around.
func (e *Enemy) OriginX() float64 {
	return e.originX
}

// respawn returns a fresh copy of the enemy at its spawn point.
func (e Enemy) respawn() Enemy {
	return NewEnemy(e.Kind, e.originX, e.Y, e.W, e.H, e.Motion)
}

// step moves the enemy and advances its animation by one tick.
// Enemies never leave the ground they spawned on, so they only idle or run.
func (e *Enemy) step(worldWidth float64, frames FrameTable) {
	if e.drift != nil {
		prev := e.X
		e.X = ClampX(e.drift.step(), e.W, worldWidth)
		e.VX = e.X - prev
	}
	e.setAnimation(SelectAnimation(true, e.VX, 0))
	e.advanceFrame(frames)
}

// drifter eases an X coordinate back and forth between
// center-amplitude and center+amplitude.
type drifter struct {
	center    float32
	amplitude float32
	period    float32
	dir       float32
	tween     *gween.Tween
}

func newDrifter(center, amplitude, period float64) *drifter {
	d := &drifter{
		center:    float32(center),
		amplitude: float32(amplitude),
		period:    float32(period),
		dir:       1,
	}
	// First leg leaves the spawn point toward the right edge of the swing.
	d.tween = gween.New(d.center, d.center+d.amplitude, d.period/4, ease.OutSine)
	return d
}

func (d *drifter) step() float64 {
	x, done := d.tween.Update(1)
	if done {
		from := d.center + d.dir*d.amplitude
		d.dir = -d.dir
		d.tween = gween.New(from, d.center+d.dir*d.amplitude, d.period/2, ease.InOutSine)
	}
	return float64(x)
}
