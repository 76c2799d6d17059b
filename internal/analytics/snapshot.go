package analytics

import "time"

// Snapshot is the fully aggregated output of one pipeline run over a pair of
// code/claim collections. It is what the reward service caches and what every
// table or leaderboard read is answered from.
type Snapshot struct {
	Rows            []CodeRow        `json:"rows"`
	TopClaimers     []TopClaimer     `json:"top_claimers"`
	FastestClaimers []FastestClaimer `json:"fastest_claimers"`
	GeneratedAt     time.Time        `json:"generated_at"`
}

// BuildSnapshot runs the whole pipeline: normalize and dedupe codes, join
// claims, annotate rows, compute leaderboards. It is total over degenerate
// input: empty or nil collections produce an empty, well-formed snapshot.
func BuildSnapshot(codeDocs, claimDocs []Document, now time.Time) *Snapshot {
	codes := make([]CodeRecord, 0, len(codeDocs))
	for _, doc := range codeDocs {
		codes = append(codes, CodeRecordFromDoc(doc))
	}
	claims := make([]ClaimRecord, 0, len(claimDocs))
	for _, doc := range claimDocs {
		claims = append(claims, ClaimRecordFromDoc(doc))
	}

	codes = NormalizeCodes(codes)
	top, fastest := BuildLeaderboards(codes, claims)

	return &Snapshot{
		Rows:            BuildCodeRows(codes, claims, now),
		TopClaimers:     top,
		FastestClaimers: fastest,
		GeneratedAt:     now,
	}
}
