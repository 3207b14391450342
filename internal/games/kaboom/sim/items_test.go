package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/kaboom/internal/core"
)

// itemConfig drops the player onto two hearts lying on the ground.
func itemConfig() Config {
	cfg := referenceConfig()
	cfg.Items = DefaultItemRules()
	cfg.Player.Stats.Health = 40
	cfg.Potions = []Potion{
		NewPotion(PotionHeart, 110, 490, 32, 32),
		NewPotion(PotionHeart, 600, 490, 32, 32),
	}
	return cfg
}

func TestHeartPotionHealsOnce(t *testing.T) {
	cfg := itemConfig()
	w := NewWorld(cfg)

	collected := 0
	idle := core.NewInputState()
	for i := 0; i < 120; i++ {
		collected += w.Step(idle).PotionsCollected
	}

	assert.Equal(t, 1, collected, "only the heart under the spawn is reached")
	assert.Equal(t, 90, w.Player().Stats.Health)
	assert.True(t, w.Potions()[0].Collected)
	assert.False(t, w.Potions()[1].Collected)
	assert.False(t, cfg.Potions[0].Collected, "the config keeps its own copy")

	snap := w.Snapshot()
	require.Len(t, snap.Potions, 1, "collected potions are not drawn")
	assert.Equal(t, 600.0, snap.Potions[0].Box.X)
}

func TestHeartPotionCapsAtMaxHealth(t *testing.T) {
	cfg := itemConfig()
	cfg.Player.Stats.Health = 80
	cfg.Potions = append(cfg.Potions, NewPotion(PotionHeart, 120, 480, 32, 32))
	w := NewWorld(cfg)

	idle := core.NewInputState()
	collected := 0
	for i := 0; i < 120; i++ {
		collected += w.Step(idle).PotionsCollected
	}

	assert.Equal(t, 2, collected)
	assert.Equal(t, 100, w.Player().Stats.Health)
}

func TestBombPlacementUsesStockAndCooldown(t *testing.T) {
	cfg := referenceConfig()
	cfg.Items = DefaultItemRules()
	w := NewWorld(cfg)

	bomb := core.NewInputState(core.ActionBomb)
	var placedAt []int
	for i := 1; i <= 100; i++ {
		if w.Step(bomb).BombPlaced {
			placedAt = append(placedAt, i)
		}
	}

	assert.Equal(t, []int{1, 31, 61}, placedAt, "one bomb per cooldown until the stock runs out")
	assert.Equal(t, 0, w.Player().Stats.Bombs)
	assert.Len(t, w.Bombs(), 2, "the first bomb burned out after its fuse")
	assert.Equal(t, 3, cfg.Player.Stats.Bombs)
}

func TestBombSitsAtPlayersFeet(t *testing.T) {
	cfg := referenceConfig()
	cfg.Items = DefaultItemRules()
	w := NewWorld(cfg)

	w.Step(core.NewInputState(core.ActionBomb))
	require.Len(t, w.Bombs(), 1)

	p := w.Player()
	b := w.Bombs()[0]
	assert.Equal(t, p.X+p.W/2, b.X+b.W/2)
	assert.Equal(t, p.Y+p.H, b.Bottom())
	assert.Equal(t, 90, b.Fuse)

	snap := w.Snapshot()
	require.Len(t, snap.Bombs, 1)
	assert.Equal(t, "bomb", snap.Bombs[0].Kind)
}

func TestBombNeedsStock(t *testing.T) {
	cfg := referenceConfig()
	cfg.Items = DefaultItemRules()
	cfg.Player.Stats.Bombs = 0
	w := NewWorld(cfg)

	for i := 0; i < 10; i++ {
		assert.False(t, w.Step(core.NewInputState(core.ActionBomb)).BombPlaced)
	}
	assert.Empty(t, w.Bombs())
}

func TestDigestCoversItems(t *testing.T) {
	cfg := referenceConfig()
	cfg.Items = DefaultItemRules()
	a, b := NewWorld(cfg), NewWorld(cfg)

	a.Step(core.NewInputState(core.ActionBomb))
	b.Step(core.NewInputState())

	assert.Equal(t, a.Player().Actor, b.Player().Actor)
	assert.NotEqual(t, a.Snapshot().Digest(), b.Snapshot().Digest())
}
