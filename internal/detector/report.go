package detector

import "sort"

// HighRiskEntity is one tabular report row for an entity whose risk score
// meets the caller's threshold.
type HighRiskEntity struct {
	RowID       int               `json:"row_id"`
	RiskScore   int               `json:"risk_score"`
	RiskLevel   RiskLevel         `json:"risk_level"`
	Connections int               `json:"connections"`
	Fields      map[string]string `json:"fields"`
}

// ConnectionDetail is one tabular report row per relationship.
type ConnectionDetail struct {
	RowA           int      `json:"row_a"`
	RowB           int      `json:"row_b"`
	SharedFeatures []string `json:"shared_features"`
	FeatureCount   int      `json:"feature_count"`
}

// HighRiskEntities lists entities with risk_score >= threshold, highest
// score first, ties broken by row id for reproducible output. Field
// values are copied so callers cannot reach the detector's records.
func (d *Detector) HighRiskEntities(threshold int) []HighRiskEntity {
	d.mu.RLock()
	defer d.mu.RUnlock()

	recordsByID := make(map[int]Record, len(d.records))
	for _, rec := range d.records {
		recordsByID[rec.RowID] = rec
	}

	entities := make([]HighRiskEntity, 0)
	for _, n := range d.graph.Nodes {
		if n.RiskScore < threshold {
			continue
		}
		fields := make(map[string]string, d.fields.Len())
		if rec, ok := recordsByID[n.ID]; ok {
			for _, f := range d.fields.Fields() {
				fields[f.Key] = rec.Fields[f.Key]
			}
		}
		entities = append(entities, HighRiskEntity{
			RowID:       n.ID,
			RiskScore:   n.RiskScore,
			RiskLevel:   n.RiskLevel,
			Connections: n.Connections,
			Fields:      fields,
		})
	}

	sort.Slice(entities, func(i, j int) bool {
		if entities[i].RiskScore != entities[j].RiskScore {
			return entities[i].RiskScore > entities[j].RiskScore
		}
		return entities[i].RowID < entities[j].RowID
	})
	return entities
}

// ConnectionDetails lists every relationship in edge order.
func (d *Detector) ConnectionDetails() []ConnectionDetail {
	d.mu.RLock()
	defer d.mu.RUnlock()

	details := make([]ConnectionDetail, 0, len(d.graph.Edges))
	for _, e := range d.graph.Edges {
		shared := make([]string, len(e.SharedFeatures))
		copy(shared, e.SharedFeatures)
		details = append(details, ConnectionDetail{
			RowA:           e.From,
			RowB:           e.To,
			SharedFeatures: shared,
			FeatureCount:   len(e.SharedFeatures),
		})
	}
	return details
}
