package legend

import "github.com/mark3labs/mcp-go/mcp"

type GetLegendInput struct {
	AnalysisID string `json:"analysisId" jsonschema:"description=Analysis id returned by analyze-fraud-ring"`
}

// GetLegendSpec returns the MCP tool specification for the legend tool
func GetLegendSpec() mcp.Tool {
	return mcp.NewTool("get-legend",
		mcp.WithDescription(`Returns the edge-color legend for a fraud-ring graph.

The legend maps each field's display name to the hex color its single-feature edges are drawn in, e.g. {"Client ID": "#007AFF", "Device ID": "#FF9500"}.

Only fields that actually contributed at least one non-empty value to the analysis appear; an all-empty column is omitted so the legend matches what is visible in the graph. Multi-feature edges use a fixed purple (#AF52DE) and are not part of this map.`),
		mcp.WithInputSchema[GetLegendInput](),
		mcp.WithTitleAnnotation("Get Graph Legend"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}
