package kaboom

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/kaboom/internal/core"
	"github.com/vovakirdan/kaboom/internal/games/kaboom/sim"
)

//go:embed assets/sprites.yaml
var defaultSpritesYAML []byte

// Sprite is one animation frame as rows of glyphs. Spaces are transparent.
type Sprite struct {
	Rows  []string
	Color core.Color
}

// AssetSource supplies sprites to the renderer. A source without a frame
// for an actor makes the renderer fall back to a flat colored block.
type AssetSource interface {
	// Sprite returns the glyph frame for an actor kind and animation.
	// frame is the simulation's frame index and may exceed the number of
	// frames the source has.
	Sprite(kind string, anim sim.Animation, frame int) (Sprite, bool)

	// Tint returns the color used for an actor kind.
	Tint(kind string) core.Color
}

// SpriteSheet is an AssetSource backed by glyph frames.
type SpriteSheet struct {
	kinds map[string]spriteKind
}

type spriteKind struct {
	color  core.Color
	frames [len(sim.Animations)][][]string
}

type spriteKindYAML struct {
	Color      string                `yaml:"color"`
	Animations map[string][][]string `yaml:"animations"`
}

// ParseSpriteSheet decodes a sprite sheet document.
func ParseSpriteSheet(data []byte) (*SpriteSheet, error) {
	var doc map[string]spriteKindYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("kaboom: parse sprites: %w", err)
	}

	sheet := &SpriteSheet{kinds: make(map[string]spriteKind, len(doc))}
	for kind, k := range doc {
		color, ok := core.ParseColor(k.Color)
		if !ok && k.Color != "" {
			return nil, fmt.Errorf("kaboom: sprites %s: unknown color %q", kind, k.Color)
		}
		sk := spriteKind{color: color}
		for name, frames := range k.Animations {
			anim, err := sim.ParseAnimation(name)
			if err != nil {
				return nil, fmt.Errorf("kaboom: sprites %s: %w", kind, err)
			}
			sk.frames[anim] = frames
		}
		sheet.kinds[kind] = sk
	}
	return sheet, nil
}

// DefaultSpriteSheet returns the embedded sprite sheet.
func DefaultSpriteSheet() (*SpriteSheet, error) {
	return ParseSpriteSheet(defaultSpritesYAML)
}

// Sprite implements AssetSource.
func (s *SpriteSheet) Sprite(kind string, anim sim.Animation, frame int) (Sprite, bool) {
	k, ok := s.kinds[kind]
	if !ok || int(anim) >= len(k.frames) {
		return Sprite{}, false
	}
	frames := k.frames[anim]
	if len(frames) == 0 {
		// Enemies without run frames keep showing idle.
		frames = k.frames[sim.AnimIdle]
		if len(frames) == 0 {
			return Sprite{}, false
		}
	}
	if frame < 0 {
		frame = 0
	}
	return Sprite{Rows: frames[frame%len(frames)], Color: k.color}, true
}

// Tint implements AssetSource.
func (s *SpriteSheet) Tint(kind string) core.Color {
	if k, ok := s.kinds[kind]; ok {
		return k.color
	}
	return placeholderTint(kind)
}

// Placeholders is an AssetSource with no frames at all: every actor is
// drawn as a flat block in its kind's color.
type Placeholders struct{}

// Sprite implements AssetSource.
func (Placeholders) Sprite(string, sim.Animation, int) (Sprite, bool) {
	return Sprite{}, false
}

// Tint implements AssetSource.
func (Placeholders) Tint(kind string) core.Color {
	return placeholderTint(kind)
}

func placeholderTint(kind string) core.Color {
	switch kind {
	case "player":
		return core.ColorBrightYellow
	case "pirate":
		return core.ColorRed
	case "cucumber":
		return core.ColorBrightGreen
	case "bigguy":
		return core.ColorMagenta
	case "captain":
		return core.ColorBlue
	case "whale":
		return core.ColorCyan
	default:
		return core.ColorWhite
	}
}
