// Package settings persists the player's last menu choices between runs.
package settings

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"
)

// AppName is the gdata application name; it selects the data directory.
const AppName = "kaboom"

const itemKey = "settings"

// Settings are the remembered choices.
type Settings struct {
	Variant    string `json:"variant"`
	Difficulty string `json:"difficulty"`
	LastLevel  string `json:"lastLevel"`
}

// Defaults returns the settings used before anything was saved.
func Defaults() Settings {
	return Settings{Variant: "kaboom", Difficulty: "normal"}
}

// itemStore is the part of gdata.Manager the store uses.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Store loads and saves Settings.
type Store struct {
	items itemStore
}

// Open opens the settings store for appName.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("settings: open: %w", err)
	}
	return &Store{items: m}, nil
}

// Load returns the saved settings. Missing data yields Defaults; fields
// absent from the saved document keep their default values.
func (s *Store) Load() (Settings, error) {
	out := Defaults()
	if s == nil || s.items == nil {
		return out, nil
	}

	data, err := s.items.LoadItem(itemKey)
	if err != nil {
		return out, fmt.Errorf("settings: load: %w", err)
	}
	if data == nil {
		// No saved settings yet, use defaults
		return out, nil
	}

	if err := json.Unmarshal(data, &out); err != nil {
		return Defaults(), fmt.Errorf("settings: parse: %w", err)
	}
	return out, nil
}

// Save writes the settings.
func (s *Store) Save(v Settings) error {
	if s == nil || s.items == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("settings: encode: %w", err)
	}
	if err := s.items.SaveItem(itemKey, data); err != nil {
		return fmt.Errorf("settings: save: %w", err)
	}
	return nil
}

// Update loads the settings, applies fn and saves the result.
func (s *Store) Update(fn func(*Settings)) error {
	v, err := s.Load()
	if err != nil {
		v = Defaults()
	}
	fn(&v)
	return s.Save(v)
}
