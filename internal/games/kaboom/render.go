package kaboom

import (
	"fmt"

	"github.com/vovakirdan/kaboom/internal/core"
	"github.com/vovakirdan/kaboom/internal/games/kaboom/sim"
)

// Visual characters for rendering
const (
	GroundTopChar = '▀'
	GroundChar    = '▓'
	PlatformChar  = '▬'
	DoorChar      = '▒'
	BlockChar     = '█'
	PotionChar    = '♥'
	BombChar      = '●'
	FuseChar      = '✶'
)

// fuseWarning is how many ticks before burning out a bomb shows its spark.
const fuseWarning = 30

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// viewport maps world coordinates onto screen cells.
type viewport struct {
	sx, sy float64
	w, h   int
}

func newViewport(dst *core.Screen, worldW, worldH float64) viewport {
	v := viewport{w: dst.Width(), h: dst.Height() - hudRows}
	if worldW > 0 {
		v.sx = float64(v.w) / worldW
	}
	if worldH > 0 && v.h > 0 {
		v.sy = float64(v.h) / worldH
	}
	return v
}

func (v viewport) col(x float64) int {
	return int(x * v.sx)
}

func (v viewport) row(y float64) int {
	return hudRows + int(y*v.sy)
}

// rect returns the screen cells covered by a world box, at least one cell.
func (v viewport) rect(b core.AABB) core.Rect {
	x0, y0 := v.col(b.X), v.row(b.Y)
	x1, y1 := v.col(b.Right()), v.row(b.Bottom())
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	snap := g.world.Snapshot()
	v := newViewport(dst, snap.WorldW, snap.WorldH)

	// Ground
	groundRow := v.row(snap.GroundY)
	dst.DrawRectColored(core.NewRect(0, groundRow, dst.Width(), 1), GroundTopChar, core.ColorBrown)
	dst.DrawRectColored(core.NewRect(0, groundRow+1, dst.Width(), dst.Height()-groundRow-1), GroundChar, core.ColorBrown)

	for _, p := range snap.Platforms {
		dst.DrawRectColored(v.rect(p), PlatformChar, core.ColorOrange)
	}

	if snap.Door != nil {
		r := v.rect(*snap.Door)
		dst.DrawRectColored(r, DoorChar, core.ColorYellow)
		dst.SetColored(r.X, r.Y, '┌', core.ColorYellow)
		dst.SetColored(r.Right()-1, r.Y, '┐', core.ColorYellow)
	}

	for _, p := range snap.Potions {
		r := v.rect(p.Box)
		dst.SetColored(r.X, r.Y, PotionChar, core.ColorBrightRed)
	}

	for _, e := range snap.Enemies {
		g.drawActor(dst, v, e)
	}

	for _, b := range snap.Bombs {
		r := v.rect(b.Box)
		x, y := r.X+r.W/2, r.Bottom()-1
		dst.SetColored(x, y, BombChar, core.ColorGray)
		if b.Fuse <= fuseWarning {
			dst.SetColored(x, y-1, FuseChar, core.ColorBrightYellow)
		}
	}
	g.drawActor(dst, v, snap.Player)

	g.drawHUD(dst, snap)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "P: resume  B: menu")
	}

	if g.gameOver {
		title := "GAME OVER"
		if g.victory {
			title = "ALL LEVELS CLEARED"
		}
		g.drawCenteredMessage(dst, title, fmt.Sprintf("Score: %d  Tokens: %d  |  Press R to restart", g.stats.Score, g.stats.Tokens))
	}
}

// drawActor draws a sprite bottom-aligned in the actor's box, or a flat
// block when the asset source has no frame for it.
func (g *Game) drawActor(dst *core.Screen, v viewport, a sim.ActorView) {
	box := v.rect(core.NewAABB(a.X, a.Y, a.W, a.H))

	sprite, ok := g.assets.Sprite(a.Kind, a.Anim, a.Frame)
	if !ok {
		dst.DrawRectColored(box, BlockChar, g.assets.Tint(a.Kind))
		return
	}

	dst.DrawSprite(box.X, box.Bottom()-len(sprite.Rows), sprite.Rows, sprite.Color)
}

// drawHUD renders the stats line.
func (g *Game) drawHUD(dst *core.Screen, snap sim.Snapshot) {
	s := snap.Stats
	left := fmt.Sprintf(" HP %d  Bombs %d  Score %d  Tokens %d  Lives %d ",
		s.Health, s.Bombs, s.Score, s.Tokens, s.Lives)
	dst.DrawTextColored(0, 0, left, core.ColorBrightWhite)

	right := fmt.Sprintf(" Level %d/%d %s ", g.levelIdx+1, g.catalogue.Len(), g.level.Name)
	dst.DrawTextColored(dst.Width()-len([]rune(right)), 0, right, core.ColorBrightCyan)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len([]rune(title)))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len([]rune(subtitle)))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
