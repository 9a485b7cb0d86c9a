package detector

import (
	"reflect"
	"testing"
)

// testGraph: 1-2 share device_id, 2-3 share device_id+ip, node 4 isolated
// with an inflated score so threshold filters have something to keep.
func testGraph(t *testing.T) Graph {
	t.Helper()
	fs := NewFieldSet([]Field{{Key: "client_id"}, {Key: "device_id"}, {Key: "ip"}})
	records := []Record{
		{RowID: 1, Fields: map[string]string{"client_id": "a"}},
		{RowID: 2, Fields: map[string]string{"client_id": "b"}},
		{RowID: 3, Fields: map[string]string{"client_id": "c"}},
		{RowID: 4, Fields: map[string]string{"client_id": "d"}},
	}
	rels := []Relationship{
		{A: 1, B: 2, SharedFeatures: []string{"device_id"}, Value: "x"},
		{A: 2, B: 3, SharedFeatures: []string{"device_id", "ip"}},
	}
	scores, connections := computeRiskScores(records, rels)
	return buildGraph(records, rels, scores, connections, fs)
}

func TestFilterGraph(t *testing.T) {
	t.Run("min risk drops nodes and their dangling edges", func(t *testing.T) {
		g := testGraph(t)
		// Node 2 has 2 connections and 2 feature types: 30+20+6 = 56.
		// Nodes 1 and 3 score 27 and 39, node 4 scores 0.
		filtered := filterGraph(g, 50, nil)

		if len(filtered.Nodes) != 1 || filtered.Nodes[0].ID != 2 {
			t.Fatalf("surviving nodes = %+v, want only node 2", filtered.Nodes)
		}
		if len(filtered.Edges) != 0 {
			t.Errorf("got %d edges, want 0 once partners are gone", len(filtered.Edges))
		}
	})

	t.Run("surviving node attributes are recomputed from surviving edges", func(t *testing.T) {
		g := testGraph(t)
		filtered := filterGraph(g, 50, nil)

		n := filtered.Nodes[0]
		if n.FeatureTypes != 0 {
			t.Errorf("feature types = %d, want 0 after losing all edges", n.FeatureTypes)
		}
		if n.RiskLevel != RiskLevelNone {
			t.Errorf("risk level = %s, want None", n.RiskLevel)
		}
		if n.Color != colorNone {
			t.Errorf("color = %s, want %s", n.Color, colorNone)
		}
	})

	t.Run("feature allow-list restricts edges and recomputes tiers", func(t *testing.T) {
		g := testGraph(t)
		filtered := filterGraph(g, 0, []string{"ip"})

		if len(filtered.Edges) != 1 {
			t.Fatalf("got %d edges, want 1 (only the ip edge)", len(filtered.Edges))
		}
		if !reflect.DeepEqual(filtered.Edges[0].SharedFeatures, []string{"device_id", "ip"}) {
			t.Errorf("kept edge = %v", filtered.Edges[0].SharedFeatures)
		}
		byID := nodesByID(filtered)
		// Node 1 lost its only edge.
		if byID[1].RiskLevel != RiskLevelNone {
			t.Errorf("node 1 level = %s, want None", byID[1].RiskLevel)
		}
		// Nodes 2 and 3 keep the two-feature edge.
		if byID[2].RiskLevel != RiskLevelMedium || byID[3].RiskLevel != RiskLevelMedium {
			t.Errorf("node levels = %s/%s, want Medium/Medium", byID[2].RiskLevel, byID[3].RiskLevel)
		}
	})

	t.Run("empty allow-list means all feature types", func(t *testing.T) {
		g := testGraph(t)
		if got := filterGraph(g, 0, nil); len(got.Edges) != 2 {
			t.Errorf("nil allow-list kept %d edges, want 2", len(got.Edges))
		}
		if got := filterGraph(g, 0, []string{}); len(got.Edges) != 2 {
			t.Errorf("empty allow-list kept %d edges, want 2", len(got.Edges))
		}
	})

	t.Run("does not mutate the original graph", func(t *testing.T) {
		g := testGraph(t)
		before := make([]Node, len(g.Nodes))
		copy(before, g.Nodes)

		filterGraph(g, 50, []string{"ip"})

		if !reflect.DeepEqual(before, g.Nodes) {
			t.Error("filter mutated the unfiltered graph's nodes")
		}
	})

	t.Run("raising min risk never adds nodes", func(t *testing.T) {
		g := testGraph(t)
		prev := len(g.Nodes) + 1
		for minRisk := 0; minRisk <= 100; minRisk += 10 {
			n := len(filterGraph(g, minRisk, nil).Nodes)
			if n > prev {
				t.Fatalf("node count grew from %d to %d at minRisk=%d", prev, n, minRisk)
			}
			prev = n
		}
	})
}

func nodesByID(g Graph) map[int]Node {
	m := make(map[int]Node, len(g.Nodes))
	for _, n := range g.Nodes {
		m[n.ID] = n
	}
	return m
}
