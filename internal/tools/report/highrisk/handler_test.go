package highrisk_test

import (
	"context"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/mock/gomock"

	analytics_mocks "github.com/ringsight/fraudring-mcp/internal/analytics/mocks"
	"github.com/ringsight/fraudring-mcp/internal/detector"
	"github.com/ringsight/fraudring-mcp/internal/session"
	"github.com/ringsight/fraudring-mcp/internal/tools"
	"github.com/ringsight/fraudring-mcp/internal/tools/report/highrisk"
)

func mockAnalytics(t *testing.T) *analytics_mocks.MockService {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := analytics_mocks.NewMockService(ctrl)
	svc.EXPECT().NewToolsEvent("list-high-risk").AnyTimes()
	svc.EXPECT().EmitEvent(gomock.Any()).AnyTimes()
	return svc
}

// seededAnalysis builds a ring where rows 1-3 share a device and rows
// 1-2 also share a password; row 4 is isolated.
func seededAnalysis(t *testing.T) (session.Service, string) {
	t.Helper()
	registry := session.NewRegistry(0)
	analysis, err := registry.Create([]detector.Field{
		{Key: "client_id"},
		{Key: "device_id"},
		{Key: "password"},
	})
	if err != nil {
		t.Fatalf("failed to create analysis: %v", err)
	}
	analysis.Detector.ProcessData(map[string][]string{
		"client_id": {"a", "b", "c", "d"},
		"device_id": {"x", "x", "x", "y"},
		"password":  {"pw", "pw", "", ""},
	})
	return registry, analysis.ID
}

func callListHighRisk(t *testing.T, deps *tools.ToolDependencies, args any) *mcp.CallToolResult {
	t.Helper()
	handler := highrisk.Handler(deps)
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

func TestListHighRiskHandler(t *testing.T) {
	t.Run("applies default threshold", func(t *testing.T) {
		sessions, id := seededAnalysis(t)
		deps := &tools.ToolDependencies{Sessions: sessions, AnalyticsService: mockAnalytics(t)}

		result := callListHighRisk(t, deps, map[string]any{"analysisId": id})
		if result.IsError {
			t.Fatal("expected success result")
		}

		var output highrisk.ListHighRiskOutput
		text := result.Content[0].(mcp.TextContent).Text
		if err := json.Unmarshal([]byte(text), &output); err != nil {
			t.Fatalf("response is not a report: %v", err)
		}
		if output.Threshold != 50 {
			t.Errorf("threshold = %d, want default 50", output.Threshold)
		}
		// Rows 1 and 2 score 56 (30 conn + 20 diversity + 6 freq), row 3
		// scores 44, row 4 scores 0.
		if len(output.Entities) != 2 {
			t.Fatalf("got %d entities, want 2", len(output.Entities))
		}
		if output.Entities[0].RowID != 1 || output.Entities[1].RowID != 2 {
			t.Errorf("entities = %d, %d; want rows 1, 2 (tie broken by row id)",
				output.Entities[0].RowID, output.Entities[1].RowID)
		}
		if output.Entities[0].Fields["client_id"] != "a" {
			t.Errorf("row 1 client_id = %q, want %q", output.Entities[0].Fields["client_id"], "a")
		}
	})

	t.Run("explicit zero threshold includes connected rows", func(t *testing.T) {
		sessions, id := seededAnalysis(t)
		deps := &tools.ToolDependencies{Sessions: sessions, AnalyticsService: mockAnalytics(t)}

		result := callListHighRisk(t, deps, map[string]any{"analysisId": id, "threshold": 0})
		if result.IsError {
			t.Fatal("expected success result")
		}

		var output highrisk.ListHighRiskOutput
		text := result.Content[0].(mcp.TextContent).Text
		if err := json.Unmarshal([]byte(text), &output); err != nil {
			t.Fatalf("response is not a report: %v", err)
		}
		if output.Threshold != 0 {
			t.Errorf("threshold = %d, want explicit 0", output.Threshold)
		}
		if len(output.Entities) != 4 {
			t.Errorf("got %d entities, want all 4 rows at threshold 0", len(output.Entities))
		}
	})

	t.Run("out of range threshold", func(t *testing.T) {
		sessions, id := seededAnalysis(t)
		deps := &tools.ToolDependencies{Sessions: sessions, AnalyticsService: mockAnalytics(t)}
		result := callListHighRisk(t, deps, map[string]any{"analysisId": id, "threshold": 101})
		if !result.IsError {
			t.Error("expected error result for threshold > 100")
		}
	})

	t.Run("missing analysis id", func(t *testing.T) {
		sessions, _ := seededAnalysis(t)
		deps := &tools.ToolDependencies{Sessions: sessions, AnalyticsService: mockAnalytics(t)}
		result := callListHighRisk(t, deps, map[string]any{})
		if !result.IsError {
			t.Error("expected error result for missing analysisId")
		}
	})

	t.Run("unknown analysis id", func(t *testing.T) {
		sessions, _ := seededAnalysis(t)
		deps := &tools.ToolDependencies{Sessions: sessions, AnalyticsService: mockAnalytics(t)}
		result := callListHighRisk(t, deps, map[string]any{"analysisId": "gone"})
		if !result.IsError {
			t.Error("expected error result for unknown analysis id")
		}
	})

	t.Run("nil services", func(t *testing.T) {
		result := callListHighRisk(t, &tools.ToolDependencies{}, map[string]any{})
		if !result.IsError {
			t.Error("expected error result for nil services")
		}
	})
}
