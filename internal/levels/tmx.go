package levels

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/lafriks/go-tiled"

	"github.com/vovakirdan/kaboom/internal/core"
)

// Object group names read from TMX maps.
const (
	GroupPlatforms = "Platforms"
	GroupSpawn     = "PlayerSpawn"
	GroupEnemies   = "Enemies"
	GroupPotions   = "Potions"
	GroupDoor      = "Door"
	GroupGround    = "Ground"
)

// LoadTMX parses a Tiled map. Rectangles in the Platforms group become
// platforms; the first PlayerSpawn object is the spawn point; Enemies
// objects are named by kind and carry motion, amplitude and period
// properties; Potions objects are named by kind; the first Door object is the exit; the top of the first
// Ground object, if any, is the ground line. Map properties "id", "name"
// and "order" override the file name.
func LoadTMX(fsys fs.FS, tmxPath string) (Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return Level{}, fmt.Errorf("levels: load TMX %s: %w", tmxPath, err)
	}

	l := Level{
		ID:     stem(tmxPath),
		Source: tmxPath,
		WorldW: float64(levelMap.Width * levelMap.TileWidth),
		WorldH: float64(levelMap.Height * levelMap.TileHeight),
	}
	if props := levelMap.Properties; props != nil {
		if id := props.GetString("id"); id != "" {
			l.ID = id
		}
		l.Name = props.GetString("name")
		l.Order = props.GetInt("order")
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupPlatforms:
			for _, o := range og.Objects {
				l.Platforms = append(l.Platforms, core.NewAABB(o.X, o.Y, o.Width, o.Height))
			}
		case GroupSpawn:
			if len(og.Objects) > 0 && l.Spawn == nil {
				o := og.Objects[0]
				l.Spawn = &Point{X: o.X, Y: o.Y}
			}
		case GroupEnemies:
			for _, o := range og.Objects {
				l.Enemies = append(l.Enemies, EnemySpawn{
					Kind:      strings.ToLower(o.Name),
					X:         o.X,
					Y:         o.Y,
					W:         o.Width,
					H:         o.Height,
					Motion:    o.Properties.GetString("motion"),
					Amplitude: o.Properties.GetFloat("amplitude"),
					Period:    o.Properties.GetFloat("period"),
				})
			}
		case GroupPotions:
			for _, o := range og.Objects {
				l.Potions = append(l.Potions, PotionSpawn{
					Kind: strings.ToLower(o.Name),
					X:    o.X,
					Y:    o.Y,
					W:    o.Width,
					H:    o.Height,
				})
			}
		case GroupDoor:
			if len(og.Objects) > 0 && l.Door == nil {
				o := og.Objects[0]
				door := core.NewAABB(o.X, o.Y, o.Width, o.Height)
				l.Door = &door
			}
		case GroupGround:
			if len(og.Objects) > 0 {
				l.GroundY = og.Objects[0].Y
			}
		}
	}

	l.normalize()
	if err := l.Validate(); err != nil {
		return Level{}, err
	}
	return l, nil
}

// stem returns the file name without directory or extension.
func stem(p string) string {
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}
