// Package detector implements the fraud-ring detection engine: it
// normalizes tabular field data into records, discovers pairwise
// relationships induced by shared field values, scores each entity's
// risk, and projects the result into a serializable node/edge graph that
// rendering collaborators can re-filter cheaply.
package detector

import "sync"

// defaultBucketWarnSize is the shared-value bucket size above which the
// relationship finder logs a warning. Pair generation is quadratic in
// bucket size.
const defaultBucketWarnSize = 250

// Detector owns all state for one analysis: the field configuration,
// normalized records, relationships, risk scores and the unfiltered
// graph. ProcessData rebuilds everything from scratch under an exclusive
// lock; Filter and the read accessors take a read lock, so concurrent
// readers are safe as long as they do not interleave with a rebuild.
type Detector struct {
	mu             sync.RWMutex
	fields         *FieldSet
	bucketWarnSize int

	records       []Record
	relationships []Relationship
	riskScores    map[int]int
	connections   map[int]int
	graph         Graph
}

// Option configures a Detector at construction.
type Option func(*Detector)

// WithBucketWarnSize overrides the shared-value bucket size that triggers
// a quadratic-blowup warning. Zero disables the warning.
func WithBucketWarnSize(n int) Option {
	return func(d *Detector) {
		d.bucketWarnSize = n
	}
}

// New creates a detector for the given ordered field configuration. The
// first field is the entity identifier.
func New(fields []Field, opts ...Option) *Detector {
	d := &Detector{
		fields:         NewFieldSet(fields),
		bucketWarnSize: defaultBucketWarnSize,
		riskScores:     map[int]int{},
		connections:    map[int]int{},
		graph:          Graph{Nodes: []Node{}, Edges: []Edge{}},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Fields returns the detector's ordered field configuration.
func (d *Detector) Fields() []Field {
	return d.fields.Fields()
}

// ProcessData runs the full pipeline over one input batch: normalize,
// find relationships, score, build graph. Prior state is fully replaced,
// never patched incrementally. Total over any map of string lists:
// degenerate input yields an empty graph, not an error.
func (d *Detector) ProcessData(fieldData map[string][]string) Graph {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.records = normalizeRecords(fieldData, d.fields)
	d.relationships = findRelationships(d.records, d.fields, d.bucketWarnSize)
	d.riskScores, d.connections = computeRiskScores(d.records, d.relationships)
	d.graph = buildGraph(d.records, d.relationships, d.riskScores, d.connections, d.fields)

	return d.graph
}

// Graph returns the unfiltered graph from the last ProcessData run.
func (d *Detector) Graph() Graph {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.graph
}

// Filter returns a reduced view of the stored graph: nodes with
// risk_score >= minRisk and, when featureTypes is non-empty, only edges
// sharing at least one allowed feature type. Derived node attributes are
// recomputed against the filtered edge set. The stored graph is not
// mutated, so Filter may be called repeatedly and concurrently.
func (d *Detector) Filter(minRisk int, featureTypes []string) Graph {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return filterGraph(d.graph, minRisk, featureTypes)
}

// LegendColors returns display name -> color for every configured field
// that has at least one non-empty value in the current records. Fields
// without data are omitted from the legend, not from the color map.
func (d *Detector) LegendColors() map[string]string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	legend := make(map[string]string)
	for _, f := range d.fields.Fields() {
		for _, rec := range d.records {
			if rec.Fields[f.Key] != "" {
				legend[d.fields.DisplayName(f.Key)] = d.fields.ColorFor(f.Key)
				break
			}
		}
	}
	return legend
}
