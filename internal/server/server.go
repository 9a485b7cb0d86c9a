// Package server wires the fraud-ring analysis services into an MCP
// server and exposes them over stdio or streamable HTTP.
package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ringsight/fraudring-mcp/docs"
	"github.com/ringsight/fraudring-mcp/internal/analytics"
	"github.com/ringsight/fraudring-mcp/internal/config"
	"github.com/ringsight/fraudring-mcp/internal/preset"
	"github.com/ringsight/fraudring-mcp/internal/session"
)

const serverName = "fraudring-mcp"

// FraudRingMCPServer bundles the MCP server with the services the tool
// handlers depend on.
type FraudRingMCPServer struct {
	MCPServer *server.MCPServer
	config    *config.Config
	sessions  session.Service
	anService analytics.Service
	presets   *preset.Registry
}

// NewFraudRingMCPServer constructs the server, loads field presets and
// registers all enabled tools and prompts.
func NewFraudRingMCPServer(cfg *config.Config) (*FraudRingMCPServer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	anService := analytics.NewService(cfg.Telemetry.Endpoint, nil, cfg.Telemetry.Enabled)

	presets := preset.NewRegistry(cfg.PresetDir)
	if err := presets.LoadPresets(); err != nil {
		return nil, fmt.Errorf("failed to load field presets: %w", err)
	}

	s := &FraudRingMCPServer{
		MCPServer: server.NewMCPServer(
			serverName,
			cfg.Version,
			server.WithToolCapabilities(true),
			server.WithPromptCapabilities(true),
		),
		config:    cfg,
		sessions:  session.NewRegistry(cfg.BucketWarnSize),
		anService: anService,
		presets:   presets,
	}

	if err := s.registerTools(); err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}
	s.registerPrompts()

	return s, nil
}

// Start serves MCP over the configured transport and blocks until the
// context is cancelled or the transport shuts down.
func (s *FraudRingMCPServer) Start(ctx context.Context) error {
	s.anService.EmitEvent(s.anService.NewStartupEvent(analytics.StartupEventInfo{
		Version:   s.config.Version,
		Transport: s.config.Transport,
		ReadOnly:  s.config.ReadOnly,
	}))

	switch s.config.Transport {
	case "http":
		httpServer := server.NewStreamableHTTPServer(
			s.MCPServer,
			server.WithStateLess(true),
		)
		go func() {
			<-ctx.Done()
			if err := httpServer.Shutdown(context.Background()); err != nil {
				slog.Error("error shutting down HTTP server", "error", err)
			}
		}()
		slog.Info("serving MCP over streamable HTTP", "addr", s.config.HTTPAddr)
		return httpServer.Start(s.config.HTTPAddr)
	default:
		slog.Info("serving MCP over stdio")
		return server.ServeStdio(s.MCPServer)
	}
}

// registerPrompts adds the investigation guidance prompt.
func (s *FraudRingMCPServer) registerPrompts() {
	s.MCPServer.AddPrompt(
		mcp.NewPrompt("fraud-ring-investigation",
			mcp.WithPromptDescription("Guidance for investigating suspected fraud rings with the analysis tools"),
		),
		func(_ context.Context, _ mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
			return mcp.NewGetPromptResult(
				"Fraud ring investigation guidance",
				[]mcp.PromptMessage{
					mcp.NewPromptMessage(
						mcp.RoleAssistant,
						mcp.NewTextContent(docs.InvestigationPrompt),
					),
				},
			), nil
		},
	)
}
