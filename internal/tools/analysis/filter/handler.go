package filter

import (
	"context"
	"fmt"
	"log/slog"

	json "github.com/goccy/go-json"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ringsight/fraudring-mcp/internal/tools"
)

// Handler returns the tool handler function for graph filtering
func Handler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleFilterGraph(ctx, request, deps)
	}
}

func handleFilterGraph(_ context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
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
		deps.AnalyticsService.NewToolsEvent("filter-graph"),
	)

	var args FilterGraphInput
	if err := request.BindArguments(&args); err != nil {
		slog.Error("error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	if args.AnalysisID == "" {
		errMessage := "analysisId parameter is required. Run analyze-fraud-ring first."
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	if args.MinRisk < 0 || args.MinRisk > 100 {
		errMessage := fmt.Sprintf("minRisk must be within [0, 100], got %d", args.MinRisk)
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	analysis, ok := deps.Sessions.Get(args.AnalysisID)
	if !ok {
		errMessage := fmt.Sprintf("unknown analysis id %q. Run analyze-fraud-ring first.", args.AnalysisID)
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	slog.Info("filtering graph",
		"analysisId", args.AnalysisID,
		"minRisk", args.MinRisk,
		"featureTypes", len(args.FeatureTypes))

	graph := analysis.Detector.Filter(args.MinRisk, args.FeatureTypes)

	response, err := json.Marshal(graph)
	if err != nil {
		slog.Error("error formatting filtered graph", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(string(response)), nil
}
