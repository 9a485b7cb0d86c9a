package detector

import "strings"

// colorPalette is cycled through for fields that have no dedicated color.
var colorPalette = []string{
	"#007AFF", // blue
	"#FF9500", // orange
	"#AF52DE", // purple
	"#5AC8FA", // teal
	"#FF3B30", // red
	"#FFCC00", // yellow
	"#34C759", // green
	"#FF2D55", // pink
	"#5856D6", // indigo
	"#00C7BE", // mint
	"#BF5AF2", // violet
	"#FF6482", // coral
	"#64D2FF", // cyan
	"#30B0C7", // ocean
	"#AC8E68", // brown
	"#A2845E", // sand
	"#8E8E93", // gray
	"#636366", // charcoal
	"#98989D", // silver
	"#7C7C80", // steel
}

// defaultFieldColors pins well-known field keys to a stable color so the
// legend looks the same across analyses regardless of field ordering.
var defaultFieldColors = map[string]string{
	"client_id":        "#007AFF",
	"device_id":        "#FF9500",
	"password":         "#AF52DE",
	"ip":               "#5AC8FA",
	"phone_number":     "#FF3B30",
	"affiliate_source": "#34C759",
}

// fallbackEdgeColor is used when an edge references a field key the
// detector was not configured with. Should not happen in practice.
const fallbackEdgeColor = "#848484"

// Field describes one attribute column supplied by the caller. The first
// configured field is the entity identifier. DisplayName and Color are
// optional; empty values fall back to a derived display name and the
// default/palette color.
type Field struct {
	Key         string
	DisplayName string
	Color       string
}

// FieldSet holds the ordered field configuration for one detector along
// with the color and display-name lookup tables. Built once at detector
// construction and never mutated afterwards.
type FieldSet struct {
	fields       []Field
	colors       map[string]string
	displayNames map[string]string
}

// NewFieldSet assigns every field a color (explicit override, then the
// well-known defaults, then the cyclic palette keyed by field position)
// and resolves display names.
func NewFieldSet(fields []Field) *FieldSet {
	fs := &FieldSet{
		fields:       make([]Field, len(fields)),
		colors:       make(map[string]string, len(fields)),
		displayNames: make(map[string]string, len(fields)),
	}
	copy(fs.fields, fields)

	for i, f := range fs.fields {
		switch {
		case f.Color != "":
			fs.colors[f.Key] = f.Color
		case defaultFieldColors[f.Key] != "":
			fs.colors[f.Key] = defaultFieldColors[f.Key]
		default:
			fs.colors[f.Key] = colorPalette[i%len(colorPalette)]
		}

		if f.DisplayName != "" {
			fs.displayNames[f.Key] = f.DisplayName
		} else {
			fs.displayNames[f.Key] = titleize(f.Key)
		}
	}
	return fs
}

// Fields returns the configured fields in order.
func (fs *FieldSet) Fields() []Field {
	return fs.fields
}

// Len returns the number of configured fields.
func (fs *FieldSet) Len() int {
	return len(fs.fields)
}

// ColorFor returns the color assigned to a field key. Total: unknown keys
// get the fallback edge color.
func (fs *FieldSet) ColorFor(key string) string {
	if c, ok := fs.colors[key]; ok {
		return c
	}
	return fallbackEdgeColor
}

// DisplayName returns the human-readable name for a field key.
func (fs *FieldSet) DisplayName(key string) string {
	if n, ok := fs.displayNames[key]; ok {
		return n
	}
	return titleize(key)
}

// titleize turns a field key like "device_id" into "Device Id".
func titleize(key string) string {
	words := strings.Split(strings.ReplaceAll(key, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
