package export

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ringsight/fraudring-mcp/internal/tools"
)

// Handler returns the tool handler function for graph export
func Handler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleExportGraph(ctx, request, deps)
	}
}

func handleExportGraph(_ context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
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
		deps.AnalyticsService.NewToolsEvent("export-graph"),
	)

	var args ExportGraphInput
	if err := request.BindArguments(&args); err != nil {
		slog.Error("error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	if args.AnalysisID == "" {
		errMessage := "analysisId parameter is required. Run analyze-fraud-ring first."
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	analysis, ok := deps.Sessions.Get(args.AnalysisID)
	if !ok {
		errMessage := fmt.Sprintf("unknown analysis id %q. Run analyze-fraud-ring first.", args.AnalysisID)
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	document, err := analysis.Detector.Export().JSON()
	if err != nil {
		slog.Error("error formatting export document", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	slog.Info("exported graph", "analysisId", args.AnalysisID)

	return mcp.NewToolResultText(string(document)), nil
}
