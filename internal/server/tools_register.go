package server

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ringsight/fraudring-mcp/internal/tools"
	"github.com/ringsight/fraudring-mcp/internal/tools/analysis/analyze"
	"github.com/ringsight/fraudring-mcp/internal/tools/analysis/export"
	"github.com/ringsight/fraudring-mcp/internal/tools/analysis/filter"
	"github.com/ringsight/fraudring-mcp/internal/tools/legend"
	"github.com/ringsight/fraudring-mcp/internal/tools/presets"
	"github.com/ringsight/fraudring-mcp/internal/tools/report/connections"
	"github.com/ringsight/fraudring-mcp/internal/tools/report/highrisk"
)

// registerTools registers all enabled MCP tools and adds them to the provided MCP server.
// Tools are filtered according to the server configuration. When read-only mode is enabled
// (e.g. via the FRAUDRING_READ_ONLY environment variable or the Config.ReadOnly flag), any
// tool that creates or mutates analysis state is excluded; only tools annotated as
// readonly=true are registered.
func (s *FraudRingMCPServer) registerTools() error {
	filteredTools := s.getEnabledTools()
	s.MCPServer.AddTools(filteredTools...)
	return nil
}

type toolFilter func(tools []ToolDefinition) []ToolDefinition

type toolCategory int

const (
	analysisCategory toolCategory = 0
	reportCategory   toolCategory = 1
	legendCategory   toolCategory = 2
	presetCategory   toolCategory = 3
)

type ToolDefinition struct {
	category   toolCategory
	definition server.ServerTool
	readonly   bool
}

func (s *FraudRingMCPServer) getEnabledTools() []server.ServerTool {
	filters := make([]toolFilter, 0)

	// If read-only mode is enabled, expose only tools annotated as read-only.
	if s.config != nil && s.config.ReadOnly {
		filters = append(filters, filterWriteTools)
	}

	deps := &tools.ToolDependencies{
		Sessions:         s.sessions,
		AnalyticsService: s.anService,
		Presets:          s.presets,
	}
	toolDefs := s.getAllToolsDefs(deps)

	for _, applyFilter := range filters {
		toolDefs = applyFilter(toolDefs)
	}
	enabledTools := make([]server.ServerTool, 0)
	for _, toolDef := range toolDefs {
		enabledTools = append(enabledTools, toolDef.definition)
	}
	return enabledTools
}

func filterWriteTools(tools []ToolDefinition) []ToolDefinition {
	readOnlyTools := make([]ToolDefinition, 0, len(tools))
	for _, t := range tools {
		if t.readonly {
			readOnlyTools = append(readOnlyTools, t)
		}
	}
	return readOnlyTools
}

// getAllToolsDefs returns all available tools with their specs and handlers
func (s *FraudRingMCPServer) getAllToolsDefs(deps *tools.ToolDependencies) []ToolDefinition {
	return []ToolDefinition{
		{
			category: analysisCategory,
			definition: server.ServerTool{
				Tool:    analyze.Spec(),
				Handler: analyze.Handler(deps),
			},
			readonly: false,
		},
		{
			category: analysisCategory,
			definition: server.ServerTool{
				Tool:    filter.Spec(),
				Handler: filter.Handler(deps),
			},
			readonly: true,
		},
		{
			category: analysisCategory,
			definition: server.ServerTool{
				Tool:    export.Spec(),
				Handler: export.Handler(deps),
			},
			readonly: true,
		},
		{
			category: legendCategory,
			definition: server.ServerTool{
				Tool:    legend.GetLegendSpec(),
				Handler: legend.GetLegendHandler(deps),
			},
			readonly: true,
		},
		{
			category: reportCategory,
			definition: server.ServerTool{
				Tool:    highrisk.Spec(),
				Handler: highrisk.Handler(deps),
			},
			readonly: true,
		},
		{
			category: reportCategory,
			definition: server.ServerTool{
				Tool:    connections.Spec(),
				Handler: connections.Handler(deps),
			},
			readonly: true,
		},
		{
			category: presetCategory,
			definition: server.ServerTool{
				Tool:    presets.ListPresetsSpec(),
				Handler: presets.ListPresetsHandler(deps),
			},
			readonly: true,
		},
	}
}
