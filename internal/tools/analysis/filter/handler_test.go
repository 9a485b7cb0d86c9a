package filter_test

import (
	"context"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/mock/gomock"

	analytics_mocks "github.com/ringsight/fraudring-mcp/internal/analytics/mocks"
	"github.com/ringsight/fraudring-mcp/internal/detector"
	"github.com/ringsight/fraudring-mcp/internal/session"
	session_mocks "github.com/ringsight/fraudring-mcp/internal/session/mocks"
	"github.com/ringsight/fraudring-mcp/internal/tools"
	"github.com/ringsight/fraudring-mcp/internal/tools/analysis/filter"
)

func mockAnalytics(t *testing.T) *analytics_mocks.MockService {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := analytics_mocks.NewMockService(ctrl)
	svc.EXPECT().NewToolsEvent("filter-graph").AnyTimes()
	svc.EXPECT().EmitEvent(gomock.Any()).AnyTimes()
	return svc
}

// seededAnalysis runs a small analysis: rows 1-2 share a device, row 3
// is isolated.
func seededAnalysis(t *testing.T) (session.Service, string) {
	t.Helper()
	registry := session.NewRegistry(0)
	analysis, err := registry.Create([]detector.Field{{Key: "client_id"}, {Key: "device_id"}})
	if err != nil {
		t.Fatalf("failed to create analysis: %v", err)
	}
	analysis.Detector.ProcessData(map[string][]string{
		"client_id": {"a", "b", "c"},
		"device_id": {"x", "x", "y"},
	})
	return registry, analysis.ID
}

func callFilter(t *testing.T, deps *tools.ToolDependencies, args any) *mcp.CallToolResult {
	t.Helper()
	handler := filter.Handler(deps)
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

func TestFilterGraphHandler(t *testing.T) {
	t.Run("filters by min risk", func(t *testing.T) {
		sessions, id := seededAnalysis(t)
		deps := &tools.ToolDependencies{Sessions: sessions, AnalyticsService: mockAnalytics(t)}

		result := callFilter(t, deps, map[string]any{
			"analysisId": id,
			"minRisk":    10,
		})
		if result.IsError {
			t.Fatal("expected success result")
		}

		var graph detector.Graph
		text := result.Content[0].(mcp.TextContent).Text
		if err := json.Unmarshal([]byte(text), &graph); err != nil {
			t.Fatalf("response is not a graph: %v", err)
		}
		// Rows 1 and 2 score 27; isolated row 3 scores 0 and is dropped.
		if len(graph.Nodes) != 2 || len(graph.Edges) != 1 {
			t.Errorf("graph = %d nodes / %d edges, want 2/1", len(graph.Nodes), len(graph.Edges))
		}
	})

	t.Run("feature allow-list drops unrelated edges", func(t *testing.T) {
		sessions, id := seededAnalysis(t)
		deps := &tools.ToolDependencies{Sessions: sessions, AnalyticsService: mockAnalytics(t)}

		result := callFilter(t, deps, map[string]any{
			"analysisId":   id,
			"featureTypes": []string{"password"},
		})
		if result.IsError {
			t.Fatal("expected success result")
		}

		var graph detector.Graph
		text := result.Content[0].(mcp.TextContent).Text
		if err := json.Unmarshal([]byte(text), &graph); err != nil {
			t.Fatalf("response is not a graph: %v", err)
		}
		if len(graph.Edges) != 0 {
			t.Errorf("got %d edges, want 0", len(graph.Edges))
		}
		for _, n := range graph.Nodes {
			if n.RiskLevel != detector.RiskLevelNone {
				t.Errorf("node %d level = %s, want None after losing edges", n.ID, n.RiskLevel)
			}
		}
	})

	t.Run("missing analysis id", func(t *testing.T) {
		sessions, _ := seededAnalysis(t)
		deps := &tools.ToolDependencies{Sessions: sessions, AnalyticsService: mockAnalytics(t)}
		result := callFilter(t, deps, map[string]any{"minRisk": 10})
		if !result.IsError {
			t.Error("expected error result for missing analysisId")
		}
	})

	t.Run("unknown analysis id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sessions := session_mocks.NewMockService(ctrl)
		sessions.EXPECT().Get("gone").Return(nil, false)

		deps := &tools.ToolDependencies{Sessions: sessions, AnalyticsService: mockAnalytics(t)}
		result := callFilter(t, deps, map[string]any{"analysisId": "gone"})
		if !result.IsError {
			t.Error("expected error result for unknown analysis id")
		}
	})

	t.Run("out of range min risk", func(t *testing.T) {
		sessions, id := seededAnalysis(t)
		deps := &tools.ToolDependencies{Sessions: sessions, AnalyticsService: mockAnalytics(t)}
		result := callFilter(t, deps, map[string]any{"analysisId": id, "minRisk": 150})
		if !result.IsError {
			t.Error("expected error result for minRisk > 100")
		}
	})

	t.Run("invalid arguments binding", func(t *testing.T) {
		sessions, _ := seededAnalysis(t)
		deps := &tools.ToolDependencies{Sessions: sessions, AnalyticsService: mockAnalytics(t)}
		result := callFilter(t, deps, "not a map")
		if !result.IsError {
			t.Error("expected error result for invalid arguments")
		}
	})

	t.Run("nil services", func(t *testing.T) {
		result := callFilter(t, &tools.ToolDependencies{}, map[string]any{})
		if !result.IsError {
			t.Error("expected error result for nil services")
		}
	})
}
