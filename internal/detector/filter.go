package detector

// filterGraph derives a reduced view of g: nodes at or above minRisk,
// edges between surviving nodes whose shared features intersect the
// allow-list (nil or empty allow-list keeps all feature types). Every
// surviving node's feature-type count, tier and color are recomputed
// strictly from the surviving edge set, so a node stripped of all its
// edges drops to tier None no matter what the unfiltered graph said.
// Pure: g is never mutated, node copies are returned.
func filterGraph(g Graph, minRisk int, featureTypes []string) Graph {
	nodes := make([]Node, 0, len(g.Nodes))
	nodeIDs := make(map[int]struct{}, len(g.Nodes))
	for _, n := range g.Nodes {
		if n.RiskScore >= minRisk {
			nodes = append(nodes, n)
			nodeIDs[n.ID] = struct{}{}
		}
	}

	var allowed map[string]struct{}
	if len(featureTypes) > 0 {
		allowed = make(map[string]struct{}, len(featureTypes))
		for _, ft := range featureTypes {
			allowed[ft] = struct{}{}
		}
	}

	edges := make([]Edge, 0, len(g.Edges))
	for _, e := range g.Edges {
		if _, ok := nodeIDs[e.From]; !ok {
			continue
		}
		if _, ok := nodeIDs[e.To]; !ok {
			continue
		}
		if allowed != nil && !sharesAllowedFeature(e.SharedFeatures, allowed) {
			continue
		}
		edges = append(edges, e)
	}

	// Recompute per-node feature types from the filtered edges only.
	survivingTypes := make(map[int]map[string]struct{}, len(nodes))
	for _, e := range edges {
		for _, id := range [2]int{e.From, e.To} {
			set, ok := survivingTypes[id]
			if !ok {
				set = make(map[string]struct{}, len(e.SharedFeatures))
				survivingTypes[id] = set
			}
			for _, f := range e.SharedFeatures {
				set[f] = struct{}{}
			}
		}
	}

	for i := range nodes {
		numTypes := len(survivingTypes[nodes[i].ID])
		level, color := riskTier(numTypes)
		nodes[i].FeatureTypes = numTypes
		nodes[i].RiskLevel = level
		nodes[i].Color = color
	}

	return Graph{Nodes: nodes, Edges: edges}
}

func sharesAllowedFeature(features []string, allowed map[string]struct{}) bool {
	for _, f := range features {
		if _, ok := allowed[f]; ok {
			return true
		}
	}
	return false
}
