package sim

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/vovakirdan/kaboom/internal/core"
)

// MarshalText implements encoding.TextMarshaler.
func (a Animation) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// ActorView is the renderable state of one actor.
type ActorView struct {
	Kind     string    `yaml:"kind"`
	X        float64   `yaml:"x"`
	Y        float64   `yaml:"y"`
	W        float64   `yaml:"w"`
	H        float64   `yaml:"h"`
	Grounded bool      `yaml:"grounded"`
	Anim     Animation `yaml:"anim"`
	Frame    int       `yaml:"frame"`
}

func viewOf(a *Actor) ActorView {
	return ActorView{
		Kind:     a.Kind,
		X:        a.X,
		Y:        a.Y,
		W:        a.W,
		H:        a.H,
		Grounded: a.Grounded,
		Anim:     a.Anim,
		Frame:    a.Frame,
	}
}

// ItemView is the renderable state of a potion or a placed bomb.
type ItemView struct {
	Kind string    `yaml:"kind"`
	Box  core.AABB `yaml:",inline"`
	Fuse int       `yaml:"fuse,omitempty"` // bombs only
}

// Snapshot is the state a renderer needs after a tick.
type Snapshot struct {
	Tick      uint64      `yaml:"tick"`
	WorldW    float64     `yaml:"world_w"`
	WorldH    float64     `yaml:"world_h"`
	GroundY   float64     `yaml:"ground_y"`
	Player    ActorView   `yaml:"player"`
	Stats     PlayerStats `yaml:"stats"`
	Enemies   []ActorView `yaml:"enemies,omitempty"`
	Platforms []core.AABB `yaml:"platforms,omitempty"`
	Potions   []ItemView  `yaml:"potions,omitempty"` // uncollected only
	Bombs     []ItemView  `yaml:"bombs,omitempty"`
	Door      *core.AABB  `yaml:"door,omitempty"`
}

// Snapshot captures the current renderable state.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      w.ticks,
		WorldW:    w.cfg.Bounds.Width,
		WorldH:    w.cfg.Height,
		GroundY:   w.cfg.Bounds.GroundY,
		Player:    viewOf(&w.player.Actor),
		Stats:     w.player.Stats,
		Enemies:   make([]ActorView, len(w.enemies)),
		Platforms: make([]core.AABB, len(w.platforms)),
	}
	for i := range w.enemies {
		s.Enemies[i] = viewOf(&w.enemies[i].Actor)
	}
	for i, p := range w.platforms {
		s.Platforms[i] = p.AABB
	}
	for _, p := range w.potions {
		if !p.Collected {
			s.Potions = append(s.Potions, ItemView{Kind: p.Kind, Box: p.AABB})
		}
	}
	for _, b := range w.bombs {
		s.Bombs = append(s.Bombs, ItemView{Kind: "bomb", Box: b.AABB, Fuse: b.Fuse})
	}
	if d, ok := w.Door(); ok {
		s.Door = &d
	}
	return s
}

// Digest hashes the dynamic part of the snapshot (tick, actors, stats,
// items).
// Two runs with the same config and inputs produce the same digest.
func (s Snapshot) Digest() uint64 {
	d := xxhash.New()
	var buf [8]byte

	putU := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		//nolint:errcheck // xxhash.Digest.Write never fails
		d.Write(buf[:])
	}
	putF := func(v float64) { putU(math.Float64bits(v)) }
	putActor := func(a ActorView) {
		//nolint:errcheck // xxhash.Digest.Write never fails
		d.WriteString(a.Kind)
		putF(a.X)
		putF(a.Y)
		putU(uint64(a.Anim))
		putU(uint64(a.Frame))
		if a.Grounded {
			putU(1)
		} else {
			putU(0)
		}
	}

	putU(s.Tick)
	putActor(s.Player)
	for _, e := range s.Enemies {
		putActor(e)
	}
	putU(uint64(s.Stats.Score))
	putU(uint64(s.Stats.Tokens))
	putU(uint64(s.Stats.Health))
	putU(uint64(s.Stats.Bombs))
	putU(uint64(len(s.Potions)))
	for _, b := range s.Bombs {
		putF(b.Box.X)
		putF(b.Box.Y)
		putU(uint64(b.Fuse))
	}
	return d.Sum64()
}
