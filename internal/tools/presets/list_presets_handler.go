package presets

import (
	"context"
	"log/slog"

	json "github.com/goccy/go-json"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ringsight/fraudring-mcp/internal/detector"
	"github.com/ringsight/fraudring-mcp/internal/tools"
)

// PresetSummary is one listed preset.
type PresetSummary struct {
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Fields      []PresetField `json:"fields"`
}

// PresetField is one field definition inside a listed preset.
type PresetField struct {
	Key         string `json:"key"`
	DisplayName string `json:"displayName,omitempty"`
	Color       string `json:"color,omitempty"`
}

// ListPresetsOutput is the response shape of list-field-presets.
type ListPresetsOutput struct {
	Total   int             `json:"total"`
	Presets []PresetSummary `json:"presets"`
}

// ListPresetsHandler returns the tool handler function for preset listing
func ListPresetsHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleListPresets(ctx, request, deps)
	}
}

func handleListPresets(_ context.Context, _ mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.AnalyticsService == nil {
		errMessage := "Analytics service is not initialized"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	if deps.Presets == nil {
		errMessage := "Preset registry is not initialized"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	deps.AnalyticsService.EmitEvent(
		deps.AnalyticsService.NewToolsEvent("list-field-presets"),
	)

	configs := deps.Presets.All()
	output := ListPresetsOutput{
		Total:   len(configs),
		Presets: make([]PresetSummary, 0, len(configs)),
	}
	for _, config := range configs {
		summary := PresetSummary{
			Name:        config.Name,
			Description: config.Description,
			Fields:      make([]PresetField, 0, len(config.Fields)),
		}
		// Resolve colors and display names the way an analysis would,
		// so the listing matches the legend of a run using the preset.
		fieldSet := detector.NewFieldSet(config.DetectorFields())
		for _, f := range config.Fields {
			summary.Fields = append(summary.Fields, PresetField{
				Key:         f.Key,
				DisplayName: fieldSet.DisplayName(f.Key),
				Color:       fieldSet.ColorFor(f.Key),
			})
		}
		output.Presets = append(output.Presets, summary)
	}

	response, err := json.Marshal(output)
	if err != nil {
		slog.Error("error formatting preset list", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(string(response)), nil
}
