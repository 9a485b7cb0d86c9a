package connections

import (
	"context"
	"fmt"
	"log/slog"

	json "github.com/goccy/go-json"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ringsight/fraudring-mcp/internal/detector"
	"github.com/ringsight/fraudring-mcp/internal/tools"
)

// ListConnectionsOutput wraps the report rows with their count.
type ListConnectionsOutput struct {
	Total       int                         `json:"total"`
	Connections []detector.ConnectionDetail `json:"connections"`
}

// Handler returns the tool handler function for the connections report
func Handler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleListConnections(ctx, request, deps)
	}
}

func handleListConnections(_ context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
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
		deps.AnalyticsService.NewToolsEvent("list-connections"),
	)

	var args ListConnectionsInput
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

	details := analysis.Detector.ConnectionDetails()
	output := ListConnectionsOutput{
		Total:       len(details),
		Connections: details,
	}

	response, err := json.Marshal(output)
	if err != nil {
		slog.Error("error formatting connections report", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(string(response)), nil
}
