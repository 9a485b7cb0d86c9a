// Package helpers provides shared scaffolding for integration tests:
// real services wired together the way the server wires them, plus
// small assertion utilities for MCP tool responses.
package helpers

import (
	"context"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ringsight/fraudring-mcp/internal/analytics"
	"github.com/ringsight/fraudring-mcp/internal/preset"
	"github.com/ringsight/fraudring-mcp/internal/session"
	"github.com/ringsight/fraudring-mcp/internal/tools"
)

// TestContext bundles real services for end-to-end tool workflows. No
// mocks: the session registry, analytics service (disabled) and preset
// registry are the production implementations.
type TestContext struct {
	T    *testing.T
	Deps *tools.ToolDependencies
}

// NewTestContext wires real services for one test.
func NewTestContext(t *testing.T, presetDir string) *TestContext {
	t.Helper()

	presets := preset.NewRegistry(presetDir)
	if err := presets.LoadPresets(); err != nil {
		t.Fatalf("failed to load presets: %v", err)
	}

	return &TestContext{
		T: t,
		Deps: &tools.ToolDependencies{
			Sessions:         session.NewRegistry(0),
			AnalyticsService: analytics.NewService("", nil, false),
			Presets:          presets,
		},
	}
}

// CallTool invokes a tool handler and fails the test on transport-level
// errors or tool error results.
func (tc *TestContext) CallTool(handler server.ToolHandlerFunc, args map[string]any) *mcp.CallToolResult {
	tc.T.Helper()

	result, err := handler(context.Background(), mcp.CallToolRequest{
		Params: mcp.CallToolParams{Arguments: args},
	})
	if err != nil {
		tc.T.Fatalf("tool handler returned error: %v", err)
	}
	if result == nil {
		tc.T.Fatal("tool handler returned nil result")
	}
	if result.IsError {
		tc.T.Fatalf("tool returned error result: %s", ResponseText(tc.T, result))
	}
	return result
}

// CallToolExpectError invokes a tool handler and fails unless the tool
// returned an error result.
func (tc *TestContext) CallToolExpectError(handler server.ToolHandlerFunc, args map[string]any) *mcp.CallToolResult {
	tc.T.Helper()

	result, err := handler(context.Background(), mcp.CallToolRequest{
		Params: mcp.CallToolParams{Arguments: args},
	})
	if err != nil {
		tc.T.Fatalf("tool handler returned error: %v", err)
	}
	if result == nil || !result.IsError {
		tc.T.Fatal("expected an error result")
	}
	return result
}

// ParseJSONResponse unmarshals the tool's text content into out.
func (tc *TestContext) ParseJSONResponse(result *mcp.CallToolResult, out any) {
	tc.T.Helper()

	text := ResponseText(tc.T, result)
	if err := json.Unmarshal([]byte(text), out); err != nil {
		tc.T.Fatalf("failed to parse tool response: %v\nresponse: %s", err, text)
	}
}

// ResponseText extracts the first text content block.
func ResponseText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	if len(result.Content) == 0 {
		t.Fatal("tool result has no content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("tool result content is %T, want text", result.Content[0])
	}
	return text.Text
}
