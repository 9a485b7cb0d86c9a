package highrisk

import "github.com/mark3labs/mcp-go/mcp"

const defaultThreshold = 50

type ListHighRiskInput struct {
	AnalysisID string `json:"analysisId" jsonschema:"description=Analysis id returned by analyze-fraud-ring"`
	Threshold  *int   `json:"threshold,omitempty" jsonschema:"default=50,description=Inclusive risk-score cutoff (0-100). Defaults to 50."`
}

// Spec returns the MCP tool specification for the high-risk report
func Spec() mcp.Tool {
	return mcp.NewTool("list-high-risk",
		mcp.WithDescription(`Lists the entities in a fraud-ring analysis whose risk score meets a threshold, as a tabular report.

**Each entry contains:**
- row_id, risk_score, risk_level and connection count
- the entity's normalized field values, keyed by field key

Entries are ordered highest score first, with ties broken by row id. Use a threshold of 80 or more to match the high-risk count reported by export-graph.`),
		mcp.WithInputSchema[ListHighRiskInput](),
		mcp.WithTitleAnnotation("List High-Risk Entities"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}
