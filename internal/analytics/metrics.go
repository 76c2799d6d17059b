package analytics

import (
	"sort"
	"time"
)

// CodeRow is one annotated entry of the code table.
type CodeRow struct {
	CodeRecord
	Status            Status   `json:"status"`
	TotalClaimed      float64  `json:"total_claimed"`
	ClaimerCount      int      `json:"claimer_count"`
	FirstClaimSeconds *float64 `json:"first_claim_seconds,omitempty"` // nil when no claim is derivable

	// Claimants carries the names and ids of matching claims so the table
	// search can match against them. Kept in the serialized snapshot because
	// filtering runs against cached rows.
	Claimants []string `json:"claimants,omitempty"`
}

// BuildCodeRows joins claims onto the deduplicated code list and computes the
// per-code metrics: total claimed amount, distinct claimant count and
// time-to-first-claim. Claims match by normalized code string; claims whose
// code resolves to no record are simply not part of any row. A code with zero
// matching claims yields zeroed metrics, never an error.
func BuildCodeRows(codes []CodeRecord, claims []ClaimRecord, now time.Time) []CodeRow {
	byCode := make(map[string][]ClaimRecord, len(codes))
	for _, cl := range claims {
		if cl.Code == "" {
			continue
		}
		byCode[cl.Code] = append(byCode[cl.Code], cl)
	}

	rows := make([]CodeRow, 0, len(codes))
	for _, code := range codes {
		row := CodeRow{
			CodeRecord: code,
			Status:     DeriveStatus(code, now),
		}

		matched := byCode[code.Code]
		claimants := make(map[string]struct{}, len(matched))
		for _, cl := range matched {
			row.TotalClaimed += cl.Amount
			if key := cl.ClaimantKey(); key != "" {
				claimants[key] = struct{}{}
			}
			if cl.UserName != "" {
				row.Claimants = append(row.Claimants, cl.UserName)
			}
			if cl.UserID != "" {
				row.Claimants = append(row.Claimants, cl.UserID)
			}
		}
		row.ClaimerCount = len(claimants)

		if first, ok := firstClaim(matched); ok {
			if secs, ok := timeToClaimSeconds(first, code.CreatedAt); ok {
				row.FirstClaimSeconds = &secs
			}
		}

		rows = append(rows, row)
	}
	return rows
}

// firstClaim returns the earliest claim by claim timestamp.
func firstClaim(claims []ClaimRecord) (ClaimRecord, bool) {
	if len(claims) == 0 {
		return ClaimRecord{}, false
	}
	sorted := make([]ClaimRecord, len(claims))
	copy(sorted, claims)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ClaimedAt.Before(sorted[j].ClaimedAt)
	})
	return sorted[0], true
}

// timeToClaimSeconds derives the elapsed seconds between a code's creation
// and the claim. A positive precomputed value on the claim wins; otherwise
// the duration is derived from the two timestamps. Missing timestamps or a
// negative result make the value underivable.
func timeToClaimSeconds(claim ClaimRecord, codeCreatedAt time.Time) (float64, bool) {
	if claim.TimeToClaim != nil && *claim.TimeToClaim > 0 {
		return *claim.TimeToClaim, true
	}
	if codeCreatedAt.IsZero() || claim.ClaimedAt.IsZero() {
		return 0, false
	}
	secs := claim.ClaimedAt.Sub(codeCreatedAt).Seconds()
	if secs < 0 {
		return 0, false
	}
	return secs, true
}
