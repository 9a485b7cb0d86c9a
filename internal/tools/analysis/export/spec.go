package export

import "github.com/mark3labs/mcp-go/mcp"

type ExportGraphInput struct {
	AnalysisID string `json:"analysisId" jsonschema:"description=Analysis id returned by analyze-fraud-ring"`
}

// Spec returns the MCP tool specification for graph export
func Spec() mcp.Tool {
	return mcp.NewTool("export-graph",
		mcp.WithDescription(`Exports the full, unfiltered fraud-ring graph as a flat JSON document for archival or downstream rendering.

**Returns:**
- nodes and edges exactly as computed by analyze-fraud-ring
- a metadata block: total_entities, total_connections, and high_risk_count (entities with risk score >= 80)

The export reflects the last analyze-fraud-ring run for the analysis; filter-graph calls never affect it.`),
		mcp.WithInputSchema[ExportGraphInput](),
		mcp.WithTitleAnnotation("Export Fraud Ring Graph"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}
