package presets

import "github.com/mark3labs/mcp-go/mcp"

// ListPresetsSpec returns the MCP tool specification for preset listing
func ListPresetsSpec() mcp.Tool {
	return mcp.NewTool("list-field-presets",
		mcp.WithDescription(`Lists the field presets available to analyze-fraud-ring.

A preset names a curated set of fields (key, display name, edge color) for a common investigation shape, so callers can pass "preset" instead of spelling out a field list. Presets are loaded from YAML configuration at startup.

**Returns:** each preset's name, description, and fields with their resolved display names and edge colors, matching what get-legend reports for an analysis using the preset.`),
		mcp.WithTitleAnnotation("List Field Presets"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}
