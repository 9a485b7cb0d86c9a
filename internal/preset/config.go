// Package preset loads named field-set configurations from YAML. A
// preset declares which attribute columns an analysis uses, so callers
// can reference a curated field set instead of spelling fields out on
// every analyze call.
package preset

import (
	"fmt"

	"github.com/ringsight/fraudring-mcp/internal/detector"
)

// Config represents the YAML configuration for one field preset
type Config struct {
	// Name is the unique preset identifier (e.g., "default")
	Name string `yaml:"name"`

	// Description explains what kind of input the preset targets
	Description string `yaml:"description"`

	// Fields is the ordered field configuration; the first entry is the
	// entity identifier field
	Fields []FieldConfig `yaml:"fields"`
}

// FieldConfig defines one attribute column
type FieldConfig struct {
	// Key is the field identifier used in input data (e.g., "device_id")
	Key string `yaml:"key"`

	// DisplayName overrides the derived human-readable name
	DisplayName string `yaml:"display_name,omitempty"`

	// Color overrides the default/palette color for legend and edges
	Color string `yaml:"color,omitempty"`
}

// Validate checks structural requirements: name, at least one field,
// unique field keys. Duplicate keys are rejected outright rather than
// silently overwriting each other.
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("preset name is required")
	}
	if len(c.Fields) == 0 {
		return fmt.Errorf("preset %q must declare at least one field", c.Name)
	}
	seen := make(map[string]bool, len(c.Fields))
	for i, f := range c.Fields {
		if f.Key == "" {
			return fmt.Errorf("preset %q field[%d] key is required", c.Name, i)
		}
		if seen[f.Key] {
			return fmt.Errorf("preset %q has duplicate field key %q", c.Name, f.Key)
		}
		seen[f.Key] = true
	}
	return nil
}

// DetectorFields converts the preset into the detector's field
// configuration, preserving order.
func (c *Config) DetectorFields() []detector.Field {
	fields := make([]detector.Field, len(c.Fields))
	for i, f := range c.Fields {
		fields[i] = detector.Field{
			Key:         f.Key,
			DisplayName: f.DisplayName,
			Color:       f.Color,
		}
	}
	return fields
}
