package connections

import "github.com/mark3labs/mcp-go/mcp"

type ListConnectionsInput struct {
	AnalysisID string `json:"analysisId" jsonschema:"description=Analysis id returned by analyze-fraud-ring"`
}

// Spec returns the MCP tool specification for the connections report
func Spec() mcp.Tool {
	return mcp.NewTool("list-connections",
		mcp.WithDescription(`Lists every discovered relationship in a fraud-ring analysis as a tabular report, one entry per connected row pair.

**Each entry contains:**
- row_a and row_b, the connected row ids (row_a < row_b)
- shared_features, the field keys whose values matched
- feature_count, the number of shared field types

Entries appear in the same order as the graph's edges. Useful for reviewing exactly why two entities were linked without parsing the full graph document.`),
		mcp.WithInputSchema[ListConnectionsInput](),
		mcp.WithTitleAnnotation("List Connections"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}
