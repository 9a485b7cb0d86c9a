package detector

import (
	json "github.com/goccy/go-json"
)

// highRiskExportThreshold is the risk score at or above which an entity
// counts toward the export metadata's high_risk_count.
const highRiskExportThreshold = 80

// Metadata summarizes an exported graph.
type Metadata struct {
	TotalEntities    int `json:"total_entities"`
	TotalConnections int `json:"total_connections"`
	HighRiskCount    int `json:"high_risk_count"`
}

// Export is the full graph plus its metadata block, as a flat
// serializable document.
type Export struct {
	Nodes    []Node   `json:"nodes"`
	Edges    []Edge   `json:"edges"`
	Metadata Metadata `json:"metadata"`
}

// Export snapshots the unfiltered graph with summary metadata.
func (d *Detector) Export() Export {
	d.mu.RLock()
	defer d.mu.RUnlock()

	highRisk := 0
	for _, n := range d.graph.Nodes {
		if n.RiskScore >= highRiskExportThreshold {
			highRisk++
		}
	}

	return Export{
		Nodes: d.graph.Nodes,
		Edges: d.graph.Edges,
		Metadata: Metadata{
			TotalEntities:    len(d.graph.Nodes),
			TotalConnections: len(d.graph.Edges),
			HighRiskCount:    highRisk,
		},
	}
}

// JSON renders the export as indented JSON.
func (e Export) JSON() ([]byte, error) {
	return json.MarshalIndent(e, "", "  ")
}
