package analytics

import (
	"sort"
	"time"
)

const (
	topClaimersLimit     = 5
	fastestClaimersLimit = 3
	// fastestMinClaims is the claim count a claimant needs before their mean
	// time-to-claim is considered representative.
	fastestMinClaims = 3
)

// TopClaimer is one entry of the total-amount leaderboard.
type TopClaimer struct {
	Claimant     string  `json:"claimant"`
	Name         string  `json:"name,omitempty"`
	TotalClaimed float64 `json:"total_claimed"`
	ClaimCount   int     `json:"claim_count"`
}

// FastestClaimer is one entry of the mean time-to-claim leaderboard.
type FastestClaimer struct {
	Claimant   string  `json:"claimant"`
	Name       string  `json:"name,omitempty"`
	ClaimCount int     `json:"claim_count"`
	AvgSeconds float64 `json:"avg_seconds"`
}

type claimantAgg struct {
	key     string
	name    string
	total   float64
	count   int
	timings []float64
}

// BuildLeaderboards groups all claims by claimant identifier and produces the
// two leaderboards. Claims whose code has no matching record still count:
// they contribute to totals, and to timings when they carry a precomputed
// time-to-claim.
//
// Fastest Claimers normally requires at least fastestMinClaims claims plus one
// derivable timing. When no claimant clears the claim-count bar (a young
// dataset), everyone with at least one timing competes instead, so the board
// is never spuriously empty.
func BuildLeaderboards(codes []CodeRecord, claims []ClaimRecord) ([]TopClaimer, []FastestClaimer) {
	createdAt := make(map[string]time.Time, len(codes))
	for _, c := range codes {
		createdAt[c.Code] = c.CreatedAt
	}

	aggs := make(map[string]*claimantAgg, len(claims))
	var order []*claimantAgg // first-seen order keeps ties stable
	for _, cl := range claims {
		key := cl.ClaimantKey()
		if key == "" {
			continue
		}
		agg, ok := aggs[key]
		if !ok {
			agg = &claimantAgg{key: key}
			aggs[key] = agg
			order = append(order, agg)
		}
		agg.total += cl.Amount
		agg.count++
		if agg.name == "" {
			agg.name = cl.UserName
		}
		if secs, ok := timeToClaimSeconds(cl, createdAt[cl.Code]); ok {
			agg.timings = append(agg.timings, secs)
		}
	}

	return topClaimers(order), fastestClaimers(order)
}

func topClaimers(aggs []*claimantAgg) []TopClaimer {
	ranked := make([]*claimantAgg, len(aggs))
	copy(ranked, aggs)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].total > ranked[j].total
	})

	top := make([]TopClaimer, 0, topClaimersLimit)
	for _, agg := range ranked {
		if len(top) == topClaimersLimit {
			break
		}
		top = append(top, TopClaimer{
			Claimant:     agg.key,
			Name:         agg.name,
			TotalClaimed: agg.total,
			ClaimCount:   agg.count,
		})
	}
	return top
}

func fastestClaimers(aggs []*claimantAgg) []FastestClaimer {
	eligible := make([]*claimantAgg, 0, len(aggs))
	for _, agg := range aggs {
		if agg.count >= fastestMinClaims && len(agg.timings) > 0 {
			eligible = append(eligible, agg)
		}
	}
	if len(eligible) == 0 {
		// Young dataset fallback: rank anyone with a derivable timing.
		for _, agg := range aggs {
			if len(agg.timings) > 0 {
				eligible = append(eligible, agg)
			}
		}
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return meanSeconds(eligible[i].timings) < meanSeconds(eligible[j].timings)
	})

	fastest := make([]FastestClaimer, 0, fastestClaimersLimit)
	for _, agg := range eligible {
		if len(fastest) == fastestClaimersLimit {
			break
		}
		fastest = append(fastest, FastestClaimer{
			Claimant:   agg.key,
			Name:       agg.name,
			ClaimCount: agg.count,
			AvgSeconds: meanSeconds(agg.timings),
		})
	}
	return fastest
}

func meanSeconds(timings []float64) float64 {
	if len(timings) == 0 {
		return 0
	}
	var sum float64
	for _, t := range timings {
		sum += t
	}
	return sum / float64(len(timings))
}
