package tui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/kaboom/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "HP 3")
	s.SetColored(5, 1, '#', core.ColorBrown)

	out := ansi.Strip(RenderScreen(s))
	assert.Equal(t, "HP 3  \n     #", out)
}

func TestEveryColorHasStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorSky; c++ {
		_, ok := colorStyles[c]
		assert.True(t, ok, "color %d", c)
	}
}
