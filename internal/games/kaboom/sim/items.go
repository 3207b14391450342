package sim

import "github.com/vovakirdan/kaboom/internal/core"

// PotionHeart is the only potion kind: it restores health.
const PotionHeart = "heart"

// Potion is a pickup that is consumed on first contact with the player.
type Potion struct {
	core.AABB
	Kind      string
	Collected bool
}

// NewPotion creates an uncollected potion.
func NewPotion(kind string, x, y, w, h float64) Potion {
	return Potion{AABB: core.NewAABB(x, y, w, h), Kind: kind}
}

// Bomb is a placed bomb counting down its fuse. A bomb whose fuse runs
// out is removed; it does not interact with anything.
type Bomb struct {
	core.AABB
	Fuse int // ticks left
}

// ItemRules are the pickup and bomb constants of a world.
type ItemRules struct {
	MaxHealth    int     // heart potions never heal above this
	HeartHeal    int     // health restored per heart potion
	BombCooldown int     // ticks between two placements
	BombFuse     int     // ticks a placed bomb stays in the world
	BombSize     float64 // bomb box edge
}

// DefaultItemRules returns the rules of the reference game at 60 ticks
// per second.
func DefaultItemRules() ItemRules {
	return ItemRules{
		MaxHealth:    100,
		HeartHeal:    50,
		BombCooldown: 30,
		BombFuse:     90,
		BombSize:     64,
	}
}

// collectPotions consumes every potion the player touches and applies it.
// It returns the number collected this tick.
func (w *World) collectPotions() int {
	n := 0
	box := w.player.Bounds()
	for i := range w.potions {
		p := &w.potions[i]
		if p.Collected || !box.Overlaps(p.AABB) {
			continue
		}
		p.Collected = true
		n++
		if p.Kind == PotionHeart {
			st := &w.player.Stats
			st.Health = min(st.Health+w.cfg.Items.HeartHeal, max(w.cfg.Items.MaxHealth, st.Health))
		}
	}
	return n
}

// stepBombs burns one tick off every fuse, drops spent bombs and places a
// new one when the bomb action is held, the player has bombs and the
// cooldown is over. It reports whether a bomb was placed.
func (w *World) stepBombs(in core.InputState) bool {
	live := w.bombs[:0]
	for _, b := range w.bombs {
		b.Fuse--
		if b.Fuse > 0 {
			live = append(live, b)
		}
	}
	w.bombs = live

	if w.bombCooldown > 0 {
		w.bombCooldown--
	}
	if !in.Held(core.ActionBomb) || w.bombCooldown > 0 || w.player.Stats.Bombs <= 0 {
		return false
	}

	size := w.cfg.Items.BombSize
	p := &w.player
	w.bombs = append(w.bombs, Bomb{
		AABB: core.NewAABB(p.X+p.W/2-size/2, p.Y+p.H-size, size, size),
		Fuse: w.cfg.Items.BombFuse,
	})
	p.Stats.Bombs--
	w.bombCooldown = w.cfg.Items.BombCooldown
	return true
}
