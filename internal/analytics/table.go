package analytics

import (
	"math"
	"sort"
	"strings"
	"time"
)

// SortKey selects the code table ordering.
type SortKey string

const (
	SortLatest            SortKey = "latest"
	SortOldest            SortKey = "oldest"
	SortMostClaimed       SortKey = "most-claimed"
	SortLeastClaimed      SortKey = "least-claimed"
	SortFastestFirstClaim SortKey = "fastest-first-claim"
	SortPoolSize          SortKey = "pool-size"
)

// Filter narrows the code table. Zero values mean "no constraint". Date
// bounds are calendar days ("2006-01-02"), inclusive on both ends,
// interpreted in the business timezone passed to BuildCodeTable.
type Filter struct {
	Search   string
	Status   Status
	DateFrom string
	DateTo   string
}

// CodeTable is one page of the filtered, sorted code table.
type CodeTable struct {
	Rows      []CodeRow `json:"rows"`
	Total     int       `json:"total"`
	Page      int       `json:"page"`
	PageSize  int       `json:"page_size"`
	PageCount int       `json:"page_count"`
}

// BuildCodeTable filters, sorts and paginates annotated rows. Day boundaries
// for the date-range filter are computed in loc, the platform's fixed
// business timezone, not the runtime's local zone: moving that boundary
// changes which codes fall on which day.
func BuildCodeTable(rows []CodeRow, filter Filter, key SortKey, page, pageSize int, loc *time.Location) CodeTable {
	filtered := filterRows(rows, filter, loc)
	sortRows(filtered, key)
	return paginate(filtered, page, pageSize)
}

func filterRows(rows []CodeRow, filter Filter, loc *time.Location) []CodeRow {
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	var from, to time.Time
	if filter.DateFrom != "" {
		if t, err := time.ParseInLocation("2006-01-02", filter.DateFrom, loc); err == nil {
			from = t
		}
	}
	if filter.DateTo != "" {
		if t, err := time.ParseInLocation("2006-01-02", filter.DateTo, loc); err == nil {
			to = t.AddDate(0, 0, 1) // inclusive upper bound: anything before next midnight
		}
	}

	out := make([]CodeRow, 0, len(rows))
	for _, row := range rows {
		if filter.Status != "" && row.Status != filter.Status {
			continue
		}
		if !from.IsZero() && row.CreatedAt.Before(from) {
			continue
		}
		if !to.IsZero() && !row.CreatedAt.Before(to) {
			continue
		}
		if search != "" && !matchesSearch(row, search) {
			continue
		}
		out = append(out, row)
	}
	return out
}

// matchesSearch reports whether the lower-cased needle is a substring of the
// code string or of any claimant name or id on the row.
func matchesSearch(row CodeRow, needle string) bool {
	if strings.Contains(strings.ToLower(row.Code), needle) {
		return true
	}
	for _, claimant := range row.Claimants {
		if strings.Contains(strings.ToLower(claimant), needle) {
			return true
		}
	}
	return false
}

func sortRows(rows []CodeRow, key SortKey) {
	switch key {
	case SortOldest:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].CreatedAt.Before(rows[j].CreatedAt)
		})
	case SortMostClaimed:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].TotalClaimed > rows[j].TotalClaimed
		})
	case SortLeastClaimed:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].TotalClaimed < rows[j].TotalClaimed
		})
	case SortFastestFirstClaim:
		// Codes without any derivable first claim sort last.
		sort.SliceStable(rows, func(i, j int) bool {
			return firstClaimOrInf(rows[i]) < firstClaimOrInf(rows[j])
		})
	case SortPoolSize:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Pool > rows[j].Pool
		})
	default: // SortLatest
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].CreatedAt.After(rows[j].CreatedAt)
		})
	}
}

func firstClaimOrInf(row CodeRow) float64 {
	if row.FirstClaimSeconds == nil {
		return math.MaxFloat64
	}
	return *row.FirstClaimSeconds
}

func paginate(rows []CodeRow, page, pageSize int) CodeTable {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page <= 0 {
		page = 1
	}

	total := len(rows)
	pageCount := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return CodeTable{
		Rows:      rows[start:end],
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
		PageCount: pageCount,
	}
}

// DefaultPageSize matches the console's fixed table page length.
const DefaultPageSize = 10
