package analyze

import "github.com/mark3labs/mcp-go/mcp"

type FieldSpec struct {
	Key         string `json:"key" jsonschema:"description=Field identifier used as the map key in values (e.g. device_id)"`
	DisplayName string `json:"displayName,omitempty" jsonschema:"description=Optional human-readable name used in legends and tooltips (e.g. Device ID)"`
}

type AnalyzeFraudRingInput struct {
	Preset string              `json:"preset,omitempty" jsonschema:"description=Name of a shipped field preset (use list-field-presets to discover). Mutually exclusive with fields."`
	Fields []FieldSpec         `json:"fields,omitempty" jsonschema:"description=Explicit ordered field configuration. The first field is the entity identifier; every other field is matched for suspicious sharing."`
	Values map[string][]string `json:"values" jsonschema:"description=Mapping from field key to the ordered list of raw values, one entry per input row. Lists may have unequal lengths; short lists are treated as absent for the tail rows."`
}

// Spec returns the MCP tool specification for fraud ring analysis
func Spec() mcp.Tool {
	return mcp.NewTool("analyze-fraud-ring",
		mcp.WithDescription(`Detects potential fraud rings by finding entities (e.g. client identities) that share attribute values such as devices, passwords, IP addresses or phone numbers.

**Input:**
Provide the field configuration either via a preset name (see list-field-presets) or an explicit fields array, plus the values map carrying one list of raw strings per field key. Row N of the input is formed from element N of every list. Values are trimmed and lowercased before matching; empty values and the textual placeholders "nan"/"none"/"null" never form matches.

**What it computes:**
- One relationship per pair of rows sharing at least one field value, aggregating every shared field type
- A bounded [0,100] risk score per row from connection count, shared-field diversity and shared-feature frequency
- A renderer-ready graph: nodes (risk score, level None/Low/Medium/High, color) and edges (shared field types, label, color, width)

**Requirements:**
The first configured field is the entity identifier and must have at least one value; at least one other field must also have values, otherwise there is nothing to match on.

**Returns:**
An analysis id for follow-up calls (filter-graph, export-graph, get-legend, list-high-risk, list-connections), the full unfiltered graph, and summary metadata (total entities, total connections, high-risk count).

**When to use this tool:**
- Screening a batch of signups or client records for coordinated registration
- Investigating whether suspicious accounts are linked through shared infrastructure
- Producing a relationship graph for visual fraud-ring review`),
		mcp.WithInputSchema[AnalyzeFraudRingInput](),
		mcp.WithTitleAnnotation("Analyze Fraud Ring"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}
