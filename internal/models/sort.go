package models

import "sort"

// SortChronologically returns a copy of records ordered by Timestamp,
// ascending. Records with equal timestamps keep their input order.
func SortChronologically(records []SourceRecord) []SourceRecord {
	sorted := make([]SourceRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})
	return sorted
}
