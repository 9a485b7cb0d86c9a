package preset

import (
	"fmt"
	"log/slog"
	"sort"
)

// Registry manages the loading and lookup of field presets
type Registry struct {
	configDir string
	configs   map[string]*Config
	names     []string
}

// NewRegistry creates a new preset registry
func NewRegistry(configDir string) *Registry {
	return &Registry{
		configDir: configDir,
		configs:   make(map[string]*Config),
	}
}

// LoadPresets loads all preset configurations from the config directory
func (r *Registry) LoadPresets() error {
	configs, err := WalkConfigDirectory(r.configDir)
	if err != nil {
		return fmt.Errorf("failed to load presets from config directory: %w", err)
	}

	loaded := make(map[string]*Config, len(configs))
	for _, config := range configs {
		if _, dup := loaded[config.Name]; dup {
			return fmt.Errorf("duplicate preset name %q", config.Name)
		}
		loaded[config.Name] = config
	}

	r.configs = loaded
	r.names = r.names[:0]
	for name := range loaded {
		r.names = append(r.names, name)
	}
	sort.Strings(r.names)

	slog.Info("loaded field presets", "count", len(loaded), "configDir", r.configDir)
	return nil
}

// Get returns the preset with the given name
func (r *Registry) Get(name string) (*Config, bool) {
	config, ok := r.configs[name]
	return config, ok
}

// Names returns all loaded preset names, sorted
func (r *Registry) Names() []string {
	return r.names
}

// Count returns the number of loaded presets
func (r *Registry) Count() int {
	return len(r.configs)
}

// All returns all loaded presets in name order
func (r *Registry) All() []*Config {
	all := make([]*Config, 0, len(r.configs))
	for _, name := range r.names {
		all = append(all, r.configs[name])
	}
	return all
}
