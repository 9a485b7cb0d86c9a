package analyze

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ringsight/fraudring-mcp/internal/detector"
	"github.com/ringsight/fraudring-mcp/internal/tools"
)

// AnalyzeFraudRingOutput is the tool response payload.
type AnalyzeFraudRingOutput struct {
	AnalysisID string            `json:"analysis_id"`
	Graph      detector.Graph    `json:"graph"`
	Metadata   detector.Metadata `json:"metadata"`
}

// Handler returns the tool handler function for fraud ring analysis
func Handler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleAnalyzeFraudRing(ctx, request, deps)
	}
}

func handleAnalyzeFraudRing(_ context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.AnalyticsService == nil {
		errMessage := "Analytics service is not initialized"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	if deps.Sessions == nil {
		errMessage := "Session service is not initialized"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	deps.AnalyticsService.EmitEvent(
		deps.AnalyticsService.NewToolsEvent("analyze-fraud-ring"),
	)

	var args AnalyzeFraudRingInput
	if err := request.BindArguments(&args); err != nil {
		slog.Error("error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	fields, errMessage := resolveFields(args, deps)
	if errMessage != "" {
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	if msg := checkValuePrecondition(fields, args.Values); msg != "" {
		slog.Error(msg)
		return mcp.NewToolResultError(msg), nil
	}

	analysis, err := deps.Sessions.Create(fields)
	if err != nil {
		slog.Error("error creating analysis", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	slog.Info("running fraud ring analysis",
		"analysisId", analysis.ID,
		"fields", len(fields),
		"valueLists", len(args.Values))

	graph := analysis.Detector.ProcessData(args.Values)
	export := analysis.Detector.Export()

	response, err := json.Marshal(AnalyzeFraudRingOutput{
		AnalysisID: analysis.ID,
		Graph:      graph,
		Metadata:   export.Metadata,
	})
	if err != nil {
		slog.Error("error formatting analysis results", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	slog.Info("fraud ring analysis complete",
		"analysisId", analysis.ID,
		"nodes", len(graph.Nodes),
		"edges", len(graph.Edges))

	return mcp.NewToolResultText(string(response)), nil
}

// resolveFields picks the field configuration from the preset registry or
// the explicit fields array. Returns a user-facing error message when the
// choice is ambiguous or missing.
func resolveFields(args AnalyzeFraudRingInput, deps *tools.ToolDependencies) ([]detector.Field, string) {
	switch {
	case args.Preset != "" && len(args.Fields) > 0:
		return nil, "provide either preset or fields, not both"
	case args.Preset != "":
		if deps.Presets == nil {
			return nil, "Preset registry is not initialized"
		}
		config, ok := deps.Presets.Get(args.Preset)
		if !ok {
			return nil, fmt.Sprintf("unknown preset %q. Use list-field-presets to discover available presets.", args.Preset)
		}
		return config.DetectorFields(), ""
	case len(args.Fields) > 0:
		fields := make([]detector.Field, len(args.Fields))
		for i, f := range args.Fields {
			fields[i] = detector.Field{Key: f.Key, DisplayName: f.DisplayName}
		}
		return fields, ""
	default:
		return nil, "fields parameter is required (or reference a preset). The first field is the entity identifier."
	}
}

// checkValuePrecondition enforces the caller-side contract: the entity
// identifier field needs at least one non-blank value and so does at
// least one other field, otherwise there is nothing to match on.
func checkValuePrecondition(fields []detector.Field, values map[string][]string) string {
	if len(values) == 0 {
		return "values parameter is required and cannot be empty"
	}
	if !hasNonBlank(values[fields[0].Key]) {
		return fmt.Sprintf("the entity identifier field %q must have at least one value", fields[0].Key)
	}
	for _, f := range fields[1:] {
		if hasNonBlank(values[f.Key]) {
			return ""
		}
	}
	return "at least one field besides the entity identifier must have values"
}

func hasNonBlank(values []string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}
