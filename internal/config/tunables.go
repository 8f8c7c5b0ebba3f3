package config

import (
	"fmt"
	"os"

	"github.com/KirkDiggler/hoopsim/internal/sim"
	"gopkg.in/yaml.v3"
)

// Tunables is the YAML document that adjusts game pacing
type Tunables struct {
	Game sim.Config `yaml:"game"`
}

// DefaultTunables returns the built-in pacing
func DefaultTunables() Tunables {
	return Tunables{Game: sim.DefaultConfig()}
}

// LoadTunables reads path over the defaults. Keys missing from the file keep
// their default value. An empty path returns the defaults.
func LoadTunables(path string) (Tunables, error) {
	t := DefaultTunables()
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Tunables{}, fmt.Errorf("read tunables: %w", err)
	}
	return ParseTunables(data)
}

// ParseTunables decodes YAML over the defaults and validates the result
func ParseTunables(data []byte) (Tunables, error) {
	t := DefaultTunables()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tunables{}, fmt.Errorf("decode tunables: %w", err)
	}
	if err := t.Game.Validate(); err != nil {
		return Tunables{}, fmt.Errorf("tunables: %w", err)
	}
	return t, nil
}
