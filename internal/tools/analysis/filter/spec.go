package filter

import "github.com/mark3labs/mcp-go/mcp"

type FilterGraphInput struct {
	AnalysisID   string   `json:"analysisId" jsonschema:"description=Analysis id returned by analyze-fraud-ring"`
	MinRisk      int      `json:"minRisk,omitempty" jsonschema:"default=0,description=Inclusive lower bound on node risk score (0-100)"`
	FeatureTypes []string `json:"featureTypes,omitempty" jsonschema:"description=Optional allow-list of field keys; only edges sharing at least one listed field type are kept. Omit for all field types."`
}

// Spec returns the MCP tool specification for graph filtering
func Spec() mcp.Tool {
	return mcp.NewTool("filter-graph",
		mcp.WithDescription(`Produces a reduced view of a previously computed fraud-ring graph.

**How filtering works:**
1. Nodes below minRisk are removed.
2. Edges are kept only when both endpoints survived and, if featureTypes is given, the edge shares at least one listed field type.
3. Every surviving node's feature-type count, risk level and color are recomputed from the surviving edges. A node that lost all of its edges drops to level "None" even if it was "High" in the full graph, so the filtered view is internally self-consistent rather than a masked copy.

The stored graph is never modified; call this tool as often as needed with different settings (e.g. on every visualization-settings change).

**Returns:** the filtered graph in the same nodes/edges shape as analyze-fraud-ring.`),
		mcp.WithInputSchema[FilterGraphInput](),
		mcp.WithTitleAnnotation("Filter Fraud Ring Graph"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}
