package detector

// Risk score weights and caps. Connections dominate, feature-type
// diversity second, raw shared-feature frequency is a tie-breaker.
const (
	connectionWeight   = 15
	connectionScoreCap = 60

	diversityWeight   = 10
	diversityScoreCap = 30

	frequencyWeight   = 2
	frequencyScoreCap = 10

	riskScoreCap = 100
)

// computeRiskScores derives a bounded [0, 100] score per retained row
// from its relationship count, distinct shared-field diversity, and
// total shared-feature frequency. Rows with no relationships score 0.
// Also returns the per-row connection count, which the graph builder
// reuses for node tooltips.
func computeRiskScores(records []Record, rels []Relationship) (scores map[int]int, connections map[int]int) {
	connections = make(map[int]int, len(records))
	sharedFeatures := make(map[int][]string, len(records))

	for _, rel := range rels {
		connections[rel.A]++
		connections[rel.B]++
		sharedFeatures[rel.A] = append(sharedFeatures[rel.A], rel.SharedFeatures...)
		sharedFeatures[rel.B] = append(sharedFeatures[rel.B], rel.SharedFeatures...)
	}

	scores = make(map[int]int, len(records))
	for _, rec := range records {
		connectionScore := min(connections[rec.RowID]*connectionWeight, connectionScoreCap)

		features := sharedFeatures[rec.RowID]
		diversityScore := min(distinctCount(features)*diversityWeight, diversityScoreCap)
		frequencyScore := min(len(features)*frequencyWeight, frequencyScoreCap)

		scores[rec.RowID] = min(connectionScore+diversityScore+frequencyScore, riskScoreCap)
	}
	return scores, connections
}

func distinctCount(values []string) int {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	return len(seen)
}
