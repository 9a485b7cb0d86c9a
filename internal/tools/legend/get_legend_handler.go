package legend

import (
	"context"
	"fmt"
	"log/slog"

	json "github.com/goccy/go-json"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ringsight/fraudring-mcp/internal/tools"
)

// GetLegendHandler returns the tool handler function for the legend tool
func GetLegendHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetLegend(ctx, request, deps)
	}
}

func handleGetLegend(_ context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
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
		deps.AnalyticsService.NewToolsEvent("get-legend"),
	)

	var args GetLegendInput
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

	legend := analysis.Detector.LegendColors()

	response, err := json.Marshal(legend)
	if err != nil {
		slog.Error("error formatting legend", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(string(response)), nil
}
