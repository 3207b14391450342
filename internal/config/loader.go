package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// KaboomFile is the config file name looked up in every search directory.
const KaboomFile = "kaboom.yaml"

// LoadKaboom loads kaboom configuration.
// Search order: customPath -> ~/.kaboom/configs/kaboom.yaml -> ./configs/kaboom.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it sets. A custom path that cannot be read, parsed or validated is an
// error; the other locations fall through on failure.
func LoadKaboom(customPath string) (KaboomConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return KaboomConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parseKaboom(data)
		if err != nil {
			return KaboomConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(KaboomFile); userCfgPath != "" {
		if cfg, ok := tryLoad(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryLoad(filepath.Join("configs", KaboomFile)); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := parseKaboom(defaultKaboomYAML)
	if err != nil {
		return DefaultKaboomConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func tryLoad(path string) (KaboomConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return KaboomConfig{}, false
	}
	cfg, err := parseKaboom(data)
	if err != nil {
		return KaboomConfig{}, false
	}
	return cfg, true
}

func parseKaboom(data []byte) (KaboomConfig, error) {
	cfg := DefaultKaboomConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".kaboom", "configs", filename)
}

// ApplyKaboomPreset adjusts survivability for a difficulty preset. Enemy
// progression is set on the DifficultyManager (see ApplyPreset).
func ApplyKaboomPreset(cfg *KaboomConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Player.Health = 150
		cfg.Physics.Gravity *= 0.9
	case DifficultyHard:
		cfg.Player.Lives = 1
		cfg.Player.Health = 60
		cfg.Physics.Gravity *= 1.15
	}
}
