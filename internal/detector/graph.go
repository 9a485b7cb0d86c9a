package detector

import (
	"fmt"
	"html"
	"strings"
)

// RiskLevel is the node tier derived from the number of distinct field
// types a row is connected by.
type RiskLevel string

const (
	RiskLevelNone   RiskLevel = "None"
	RiskLevelLow    RiskLevel = "Low"
	RiskLevelMedium RiskLevel = "Medium"
	RiskLevelHigh   RiskLevel = "High"
)

// Node tier colors, lightest for unconnected nodes up to the most
// saturated for three or more shared field types.
const (
	colorNone   = "#E5E5EA"
	colorLow    = "#B4E4FF"
	colorMedium = "#88C9FF"
	colorHigh   = "#007AFF"
)

// colorMultiFeature marks edges whose pair shares more than one field type.
const colorMultiFeature = "#AF52DE"

const (
	nodeSize       = 24
	labelMaxLen    = 30
	edgeWidthScale = 2
)

// Node is the rendering-facing projection of a Record. The unfiltered
// graph's nodes are never mutated; Filter produces fresh copies.
type Node struct {
	ID           int       `json:"id"`
	Label        string    `json:"label"`
	Title        string    `json:"title"`
	Color        string    `json:"color"`
	Size         int       `json:"size"`
	RiskScore    int       `json:"risk_score"`
	Connections  int       `json:"connections"`
	FeatureTypes int       `json:"feature_types"`
	RiskLevel    RiskLevel `json:"risk_level"`
}

// Edge is the rendering-facing projection of a Relationship. IDs are
// assigned sequentially at construction and are stable for the life of
// the unfiltered graph.
type Edge struct {
	ID             int      `json:"id"`
	From           int      `json:"from"`
	To             int      `json:"to"`
	Title          string   `json:"title"`
	Width          int      `json:"width"`
	Label          string   `json:"label"`
	SharedFeatures []string `json:"shared_features"`
	Color          string   `json:"color"`
}

// Graph is the serializable node/edge structure handed to rendering
// collaborators.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// riskTier maps a distinct-feature-type count to its level and color.
func riskTier(featureTypes int) (RiskLevel, string) {
	switch featureTypes {
	case 0:
		return RiskLevelNone, colorNone
	case 1:
		return RiskLevelLow, colorLow
	case 2:
		return RiskLevelMedium, colorMedium
	default:
		return RiskLevelHigh, colorHigh
	}
}

// buildGraph joins records, relationships and risk scores into the
// renderer-agnostic graph. Safe on an empty record set: returns a graph
// with empty (non-nil) node and edge slices.
func buildGraph(records []Record, rels []Relationship, scores, connections map[int]int, fs *FieldSet) Graph {
	featureTypes := make(map[int]map[string]struct{}, len(records))
	addTypes := func(rowID int, features []string) {
		set, ok := featureTypes[rowID]
		if !ok {
			set = make(map[string]struct{}, len(features))
			featureTypes[rowID] = set
		}
		for _, f := range features {
			set[f] = struct{}{}
		}
	}
	for _, rel := range rels {
		addTypes(rel.A, rel.SharedFeatures)
		addTypes(rel.B, rel.SharedFeatures)
	}

	nodes := make([]Node, 0, len(records))
	for _, rec := range records {
		numTypes := len(featureTypes[rec.RowID])
		level, color := riskTier(numTypes)

		label := nodeLabel(rec, fs)
		nodes = append(nodes, Node{
			ID:           rec.RowID,
			Label:        label,
			Title:        nodeTooltip(rec, fs, label, scores[rec.RowID], level, connections[rec.RowID]),
			Color:        color,
			Size:         nodeSize,
			RiskScore:    scores[rec.RowID],
			Connections:  connections[rec.RowID],
			FeatureTypes: numTypes,
			RiskLevel:    level,
		})
	}

	edges := make([]Edge, 0, len(rels))
	for i, rel := range rels {
		edges = append(edges, buildEdge(i, rel, fs))
	}

	return Graph{Nodes: nodes, Edges: edges}
}

// nodeLabel is the first configured field's value truncated for display,
// falling back to the row id when that field is empty.
func nodeLabel(rec Record, fs *FieldSet) string {
	if fs.Len() > 0 {
		if v := rec.Fields[fs.Fields()[0].Key]; v != "" {
			// Truncate by runes, not bytes, so multibyte values stay
			// valid UTF-8.
			if runes := []rune(v); len(runes) > labelMaxLen {
				return string(runes[:labelMaxLen])
			}
			return v
		}
	}
	return fmt.Sprintf("Row %d", rec.RowID)
}

// nodeTooltip renders the hover HTML: label, score and level, connection
// count, then every non-empty field with its display name.
func nodeTooltip(rec Record, fs *FieldSet, label string, score int, level RiskLevel, connections int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<b>%s</b><br>", html.EscapeString(label))
	fmt.Fprintf(&b, "Risk Score: %d (%s)<br>", score, level)
	fmt.Fprintf(&b, "Connections: %d<br>", connections)
	b.WriteString("<hr>")
	for _, f := range fs.Fields() {
		if v := rec.Fields[f.Key]; v != "" {
			fmt.Fprintf(&b, "<b>%s:</b> %s<br>", html.EscapeString(fs.DisplayName(f.Key)), html.EscapeString(v))
		}
	}
	return b.String()
}

func buildEdge(id int, rel Relationship, fs *FieldSet) Edge {
	displayNames := make([]string, len(rel.SharedFeatures))
	for i, f := range rel.SharedFeatures {
		displayNames[i] = fs.DisplayName(f)
	}
	sharedDisplay := strings.Join(displayNames, ", ")

	label := sharedDisplay
	if len(rel.SharedFeatures) > 2 {
		label = fmt.Sprintf("%d features", len(rel.SharedFeatures))
	}

	title := fmt.Sprintf("Shared: %s<br>", html.EscapeString(sharedDisplay))
	if len(rel.SharedFeatures) == 1 {
		title += fmt.Sprintf("Value: %s", html.EscapeString(rel.Value))
	}

	color := fs.ColorFor(rel.SharedFeatures[0])
	if len(rel.SharedFeatures) > 1 {
		color = colorMultiFeature
	}

	shared := make([]string, len(rel.SharedFeatures))
	copy(shared, rel.SharedFeatures)

	return Edge{
		ID:             id,
		From:           rel.A,
		To:             rel.B,
		Title:          title,
		Width:          len(rel.SharedFeatures) * edgeWidthScale,
		Label:          label,
		SharedFeatures: shared,
		Color:          color,
	}
}
