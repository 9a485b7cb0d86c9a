package analyze_test

import (
	"context"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/mock/gomock"

	analytics_mocks "github.com/ringsight/fraudring-mcp/internal/analytics/mocks"
	"github.com/ringsight/fraudring-mcp/internal/preset"
	"github.com/ringsight/fraudring-mcp/internal/session"
	"github.com/ringsight/fraudring-mcp/internal/tools"
	"github.com/ringsight/fraudring-mcp/internal/tools/analysis/analyze"
)

func testDeps(t *testing.T) *tools.ToolDependencies {
	t.Helper()
	ctrl := gomock.NewController(t)
	analyticsService := analytics_mocks.NewMockService(ctrl)
	analyticsService.EXPECT().NewToolsEvent("analyze-fraud-ring").AnyTimes()
	analyticsService.EXPECT().EmitEvent(gomock.Any()).AnyTimes()

	return &tools.ToolDependencies{
		Sessions:         session.NewRegistry(0),
		AnalyticsService: analyticsService,
		Presets:          preset.NewRegistry("testdata"),
	}
}

func callAnalyze(t *testing.T, deps *tools.ToolDependencies, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	handler := analyze.Handler(deps)
	result, err := handler(context.Background(), mcp.CallToolRequest{
		Params: mcp.CallToolParams{Arguments: args},
	})
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if result == nil {
		t.Fatal("handler returned nil result")
	}
	return result
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("result has no content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want TextContent", result.Content[0])
	}
	return text.Text
}

func TestAnalyzeFraudRingHandler(t *testing.T) {
	t.Run("successful analysis returns graph and analysis id", func(t *testing.T) {
		deps := testDeps(t)
		result := callAnalyze(t, deps, map[string]any{
			"fields": []map[string]any{
				{"key": "client_id"},
				{"key": "device_id"},
			},
			"values": map[string]any{
				"client_id": []string{"a", "b", "c"},
				"device_id": []string{"x", "x", "y"},
			},
		})

		if result.IsError {
			t.Fatalf("expected success, got error: %s", resultText(t, result))
		}

		var out analyze.AnalyzeFraudRingOutput
		if err := json.Unmarshal([]byte(resultText(t, result)), &out); err != nil {
			t.Fatalf("response is not JSON: %v", err)
		}
		if out.AnalysisID == "" {
			t.Error("analysis id must be set")
		}
		if len(out.Graph.Nodes) != 3 || len(out.Graph.Edges) != 1 {
			t.Errorf("graph = %d nodes / %d edges, want 3/1", len(out.Graph.Nodes), len(out.Graph.Edges))
		}
		if out.Metadata.TotalEntities != 3 || out.Metadata.TotalConnections != 1 {
			t.Errorf("metadata = %+v", out.Metadata)
		}

		// The analysis must be retrievable for follow-up tools.
		if _, ok := deps.Sessions.Get(out.AnalysisID); !ok {
			t.Error("analysis not registered in session service")
		}
	})

	t.Run("missing fields parameter", func(t *testing.T) {
		deps := testDeps(t)
		result := callAnalyze(t, deps, map[string]any{
			"values": map[string]any{"client_id": []string{"a"}},
		})
		if !result.IsError {
			t.Error("expected error result for missing fields")
		}
	})

	t.Run("missing values parameter", func(t *testing.T) {
		deps := testDeps(t)
		result := callAnalyze(t, deps, map[string]any{
			"fields": []map[string]any{{"key": "client_id"}, {"key": "device_id"}},
		})
		if !result.IsError {
			t.Error("expected error result for missing values")
		}
	})

	t.Run("identifier field without values is rejected", func(t *testing.T) {
		deps := testDeps(t)
		result := callAnalyze(t, deps, map[string]any{
			"fields": []map[string]any{{"key": "client_id"}, {"key": "device_id"}},
			"values": map[string]any{"device_id": []string{"x", "x"}},
		})
		if !result.IsError {
			t.Error("expected error result when the identifier field is empty")
		}
	})

	t.Run("single populated field is rejected", func(t *testing.T) {
		deps := testDeps(t)
		result := callAnalyze(t, deps, map[string]any{
			"fields": []map[string]any{{"key": "client_id"}, {"key": "device_id"}},
			"values": map[string]any{"client_id": []string{"a", "b"}},
		})
		if !result.IsError {
			t.Error("expected error result when only the identifier has values")
		}
	})

	t.Run("duplicate field keys are rejected", func(t *testing.T) {
		deps := testDeps(t)
		result := callAnalyze(t, deps, map[string]any{
			"fields": []map[string]any{{"key": "email"}, {"key": "email"}},
			"values": map[string]any{"email": []string{"a@x.io", "a@x.io"}},
		})
		if !result.IsError {
			t.Error("expected error result for duplicate field keys")
		}
	})

	t.Run("unknown preset", func(t *testing.T) {
		deps := testDeps(t)
		result := callAnalyze(t, deps, map[string]any{
			"preset": "no-such-preset",
			"values": map[string]any{"client_id": []string{"a"}},
		})
		if !result.IsError {
			t.Error("expected error result for unknown preset")
		}
	})

	t.Run("invalid arguments binding", func(t *testing.T) {
		deps := testDeps(t)
		handler := analyze.Handler(deps)
		result, err := handler(context.Background(), mcp.CallToolRequest{
			Params: mcp.CallToolParams{Arguments: "invalid string instead of map"},
		})
		if err != nil {
			t.Fatalf("handler returned error: %v", err)
		}
		if result == nil || !result.IsError {
			t.Error("expected error result for invalid arguments")
		}
	})

	t.Run("nil session service", func(t *testing.T) {
		deps := testDeps(t)
		deps.Sessions = nil
		result := callAnalyze(t, deps, map[string]any{})
		if !result.IsError {
			t.Error("expected error result for nil session service")
		}
	})

	t.Run("nil analytics service", func(t *testing.T) {
		deps := &tools.ToolDependencies{Sessions: session.NewRegistry(0)}
		handler := analyze.Handler(deps)
		result, err := handler(context.Background(), mcp.CallToolRequest{})
		if err != nil {
			t.Fatalf("handler returned error: %v", err)
		}
		if result == nil || !result.IsError {
			t.Error("expected error result for nil analytics service")
		}
	})
}
