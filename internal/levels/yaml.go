package levels

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a YAML level. fallbackID is used when the document
// has no id of its own.
func ParseYAML(data []byte, fallbackID string) (Level, error) {
	var l Level
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Level{}, fmt.Errorf("levels: parse %s: %w", fallbackID, err)
	}
	if l.ID == "" {
		l.ID = fallbackID
	}
	l.normalize()
	if err := l.Validate(); err != nil {
		return Level{}, err
	}
	return l, nil
}
