package tools

import (
	"github.com/ringsight/fraudring-mcp/internal/analytics"
	"github.com/ringsight/fraudring-mcp/internal/preset"
	"github.com/ringsight/fraudring-mcp/internal/session"
)

// ToolDependencies contains all dependencies needed by tools
type ToolDependencies struct {
	Sessions         session.Service
	AnalyticsService analytics.Service
	Presets          *preset.Registry
}
