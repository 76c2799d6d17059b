package analytics

import "sort"

// NormalizeCodes deduplicates code records by normalized code string. Records
// with an empty code are dropped; among duplicates the record with the
// greatest creation timestamp wins. The result is sorted by creation
// timestamp descending and running the function on its own output is a no-op.
func NormalizeCodes(records []CodeRecord) []CodeRecord {
	byCode := make(map[string]CodeRecord, len(records))
	for _, rec := range records {
		if rec.Code == "" {
			continue
		}
		cur, ok := byCode[rec.Code]
		if !ok || !rec.CreatedAt.Before(cur.CreatedAt) {
			byCode[rec.Code] = rec
		}
	}

	out := make([]CodeRecord, 0, len(byCode))
	for _, rec := range byCode {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].Code < out[j].Code
	})
	return out
}
