package highrisk

import (
	"context"
	"fmt"
	"log/slog"

	json "github.com/goccy/go-json"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ringsight/fraudring-mcp/internal/detector"
	"github.com/ringsight/fraudring-mcp/internal/tools"
)

// ListHighRiskOutput wraps the report rows with the threshold that
// produced them.
type ListHighRiskOutput struct {
	Threshold int                       `json:"threshold"`
	Entities  []detector.HighRiskEntity `json:"entities"`
}

// Handler returns the tool handler function for the high-risk report
func Handler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleListHighRisk(ctx, request, deps)
	}
}

func handleListHighRisk(_ context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
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
		deps.AnalyticsService.NewToolsEvent("list-high-risk"),
	)

	var args ListHighRiskInput
	if err := request.BindArguments(&args); err != nil {
		slog.Error("error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	if args.AnalysisID == "" {
		errMessage := "analysisId parameter is required. Run analyze-fraud-ring first."
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	threshold := defaultThreshold
	if args.Threshold != nil {
		threshold = *args.Threshold
	}
	if threshold < 0 || threshold > 100 {
		errMessage := fmt.Sprintf("threshold must be within [0, 100], got %d", threshold)
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	analysis, ok := deps.Sessions.Get(args.AnalysisID)
	if !ok {
		errMessage := fmt.Sprintf("unknown analysis id %q. Run analyze-fraud-ring first.", args.AnalysisID)
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	output := ListHighRiskOutput{
		Threshold: threshold,
		Entities:  analysis.Detector.HighRiskEntities(threshold),
	}

	response, err := json.Marshal(output)
	if err != nil {
		slog.Error("error formatting high-risk report", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(string(response)), nil
}
