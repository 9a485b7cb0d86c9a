package detector

import "strings"

// Record is one normalized input row. RowID is assigned in input order
// starting at 1 and stays stable for the lifetime of the detector, even
// when earlier rows are dropped for being entirely empty.
type Record struct {
	RowID  int
	Fields map[string]string
}

// Get returns the normalized value for a field key, or "" when absent.
func (r Record) Get(key string) string {
	return r.Fields[key]
}

// normalizeRecords aligns the raw per-field value lists to a common row
// count, trims and lowercases every value, and drops rows where every
// configured field is empty. Short lists are treated as absent for the
// tail rows. Row ids are assigned before the empty-row filter and are
// never renumbered, so they stay joinable against relationships.
func normalizeRecords(fieldData map[string][]string, fs *FieldSet) []Record {
	targetLen := 0
	for _, values := range fieldData {
		if len(values) > targetLen {
			targetLen = len(values)
		}
	}
	if targetLen == 0 {
		return nil
	}

	records := make([]Record, 0, targetLen)
	for i := 0; i < targetLen; i++ {
		rec := Record{RowID: i + 1, Fields: make(map[string]string, fs.Len())}
		empty := true
		for _, f := range fs.Fields() {
			var raw string
			if values := fieldData[f.Key]; i < len(values) {
				raw = values[i]
			}
			v := strings.ToLower(strings.TrimSpace(raw))
			rec.Fields[f.Key] = v
			if v != "" {
				empty = false
			}
		}
		if empty {
			continue
		}
		records = append(records, rec)
	}
	return records
}
