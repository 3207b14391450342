package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

//go:embed builtin/*.yaml builtin/*.tmx
var builtinFS embed.FS

// Catalogue is an ordered set of levels, unique by ID.
type Catalogue struct {
	levels []Level
}

// NewCatalogue builds a catalogue. Later levels replace earlier ones with
// the same ID.
func NewCatalogue(levels ...Level) *Catalogue {
	c := &Catalogue{}
	for _, l := range levels {
		c.Add(l)
	}
	return c
}

// Add inserts or replaces a level and keeps the catalogue sorted by Order,
// then ID.
func (c *Catalogue) Add(l Level) {
	for i := range c.levels {
		if c.levels[i].ID == l.ID {
			c.levels[i] = l
			c.sort()
			return
		}
	}
	c.levels = append(c.levels, l)
	c.sort()
}

func (c *Catalogue) sort() {
	sort.SliceStable(c.levels, func(i, j int) bool {
		if c.levels[i].Order != c.levels[j].Order {
			return c.levels[i].Order < c.levels[j].Order
		}
		return c.levels[i].ID < c.levels[j].ID
	})
}

// Len returns the number of levels.
func (c *Catalogue) Len() int {
	return len(c.levels)
}

// Levels returns the levels in play order.
func (c *Catalogue) Levels() []Level {
	out := make([]Level, len(c.levels))
	copy(out, c.levels)
	return out
}

// At returns the level at play index i.
func (c *Catalogue) At(i int) (Level, bool) {
	if i < 0 || i >= len(c.levels) {
		return Level{}, false
	}
	return c.levels[i], true
}

// Index returns the play index of the level with the given ID.
func (c *Catalogue) Index(id string) (int, bool) {
	for i, l := range c.levels {
		if l.ID == id {
			return i, true
		}
	}
	return 0, false
}

// Get returns the level with the given ID.
func (c *Catalogue) Get(id string) (Level, bool) {
	i, ok := c.Index(id)
	if !ok {
		return Level{}, false
	}
	return c.levels[i], true
}

// Loader reads level files. Invalid files are skipped with a warning.
type Loader struct {
	Logger *log.Logger
}

// Builtin returns the catalogue of embedded levels.
func (ld Loader) Builtin() (*Catalogue, error) {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("levels: builtin: %w", err)
	}
	c := NewCatalogue()
	if err := ld.loadFS(c, sub, true); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadDir adds every level file at the root of fsys to c, typically an
// os.DirFS of the user's level directory. Levels with the ID of an existing
// level replace it.
func (ld Loader) LoadDir(c *Catalogue, fsys fs.FS) error {
	return ld.loadFS(c, fsys, false)
}

func (ld Loader) loadFS(c *Catalogue, fsys fs.FS, strict bool) error {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("levels: read dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()

		l, err := ld.loadFile(fsys, name)
		if err != nil {
			if strict {
				return err
			}
			ld.warn("skipping level", "file", name, "err", err)
			continue
		}
		if l == nil {
			continue
		}
		c.Add(*l)
	}
	return nil
}

// loadFile returns nil for files that are not levels.
func (ld Loader) loadFile(fsys fs.FS, name string) (*Level, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("levels: read %s: %w", name, err)
		}
		l, err := ParseYAML(data, stem(name))
		if err != nil {
			return nil, err
		}
		l.Source = name
		return &l, nil
	case ".tmx":
		l, err := LoadTMX(fsys, name)
		if err != nil {
			return nil, err
		}
		return &l, nil
	default:
		return nil, nil
	}
}

func (ld Loader) warn(msg string, keyvals ...interface{}) {
	if ld.Logger != nil {
		ld.Logger.Warn(msg, keyvals...)
	}
}
