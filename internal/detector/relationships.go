package detector

import "log/slog"

// nullSentinels are textual missing-data placeholders that must never
// form a relationship even though they are non-empty strings.
var nullSentinels = map[string]struct{}{
	"nan":  {},
	"none": {},
	"null": {},
}

// Relationship is an aggregated undirected link between two rows. A and B
// are canonically ordered (A < B) so at most one Relationship exists per
// pair. SharedFeatures lists every field key the pair matches on, in
// first-discovery order. Value holds the literal shared value only while
// exactly one feature is shared; it is cleared as soon as a second
// feature joins the pair.
type Relationship struct {
	A              int
	B              int
	SharedFeatures []string
	Value          string
}

func (rel *Relationship) addFeature(key string) {
	for _, f := range rel.SharedFeatures {
		if f == key {
			return
		}
	}
	rel.SharedFeatures = append(rel.SharedFeatures, key)
	if len(rel.SharedFeatures) > 1 {
		rel.Value = ""
	}
}

type valueBucket struct {
	field string
	value string
	rows  []int
}

// findRelationships builds an inverted index from (field, value) to the
// rows carrying that value, then emits one aggregated Relationship per
// row pair that shares at least one indexed value. Index buckets are
// walked in insertion order (rows outer, configured fields inner) so the
// output order is deterministic for identical input.
//
// Pair generation is O(k^2) per bucket of size k. That is intrinsic to
// all-pairs shared-value detection and is the cost center of the whole
// pipeline; buckets larger than warnSize are logged so oversized
// collision groups are visible before they hurt.
func findRelationships(records []Record, fs *FieldSet, warnSize int) []Relationship {
	index := make(map[string]*valueBucket)
	var order []string

	for _, rec := range records {
		for _, f := range fs.Fields() {
			v := rec.Fields[f.Key]
			if v == "" {
				continue
			}
			if _, isNull := nullSentinels[v]; isNull {
				continue
			}
			key := f.Key + ":" + v
			b, ok := index[key]
			if !ok {
				b = &valueBucket{field: f.Key, value: v}
				index[key] = b
				order = append(order, key)
			}
			b.rows = append(b.rows, rec.RowID)
		}
	}

	pairs := make(map[[2]int]*Relationship)
	var found []*Relationship

	for _, key := range order {
		b := index[key]
		if len(b.rows) < 2 {
			continue
		}
		if warnSize > 0 && len(b.rows) > warnSize {
			slog.Warn("large shared-value bucket, pair generation is quadratic",
				"field", b.field, "rows", len(b.rows))
		}
		for i, a := range b.rows {
			for _, c := range b.rows[i+1:] {
				lo, hi := a, c
				if lo > hi {
					lo, hi = hi, lo
				}
				pairKey := [2]int{lo, hi}
				if rel, ok := pairs[pairKey]; ok {
					rel.addFeature(b.field)
					continue
				}
				rel := &Relationship{
					A:              lo,
					B:              hi,
					SharedFeatures: []string{b.field},
					Value:          b.value,
				}
				pairs[pairKey] = rel
				found = append(found, rel)
			}
		}
	}

	rels := make([]Relationship, len(found))
	for i, rel := range found {
		rels[i] = *rel
	}
	return rels
}
