package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var businessTZ = time.FixedZone("UTC+8", 8*3600)

func codeNames(rows []CodeRow) []string {
	names := make([]string, 0, len(rows))
	for _, r := range rows {
		names = append(names, r.Code)
	}
	return names
}

func TestBuildCodeTableSearch(t *testing.T) {
	rows := []CodeRow{
		{CodeRecord: CodeRecord{Code: "ALPHA1"}, Claimants: []string{"Bob", "u42"}},
		{CodeRecord: CodeRecord{Code: "BETA2"}, Claimants: []string{"Alice"}},
		{CodeRecord: CodeRecord{Code: "GAMMA3"}},
	}

	tests := []struct {
		name     string
		search   string
		expected []string
	}{
		{"matches code substring", "alpha", []string{"ALPHA1"}},
		{"matches claimant name", "alice", []string{"BETA2"}},
		{"matches claimant id", "U42", []string{"ALPHA1"}},
		{"no match", "zzz", []string{}},
		{"empty search matches all", "", []string{"ALPHA1", "BETA2", "GAMMA3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := BuildCodeTable(rows, Filter{Search: tt.search}, SortLatest, 1, 10, businessTZ)
			assert.Equal(t, tt.expected, codeNames(table.Rows))
		})
	}
}

func TestBuildCodeTableStatusFilter(t *testing.T) {
	rows := []CodeRow{
		{CodeRecord: CodeRecord{Code: "A"}, Status: StatusActive},
		{CodeRecord: CodeRecord{Code: "B"}, Status: StatusExpired},
	}

	table := BuildCodeTable(rows, Filter{Status: StatusExpired}, SortLatest, 1, 10, businessTZ)
	assert.Equal(t, []string{"B"}, codeNames(table.Rows))
}

func TestBuildCodeTableDateBoundaryInBusinessTimezone(t *testing.T) {
	// 2024-03-01 23:59 in the +8h business zone, i.e. 15:59 UTC.
	created := time.Date(2024, 3, 1, 23, 59, 0, 0, businessTZ).UTC()
	rows := []CodeRow{{CodeRecord: CodeRecord{Code: "EDGE", CreatedAt: created}}}

	tests := []struct {
		name     string
		filter   Filter
		included bool
	}{
		{"date_to on creation day includes", Filter{DateTo: "2024-03-01"}, true},
		{"date_to before creation day excludes", Filter{DateTo: "2024-02-28"}, false},
		{"date_from on creation day includes", Filter{DateFrom: "2024-03-01"}, true},
		{"date_from after creation day excludes", Filter{DateFrom: "2024-03-02"}, false},
		{"exact day range includes", Filter{DateFrom: "2024-03-01", DateTo: "2024-03-01"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := BuildCodeTable(rows, tt.filter, SortLatest, 1, 10, businessTZ)
			if tt.included {
				assert.Len(t, table.Rows, 1)
			} else {
				assert.Empty(t, table.Rows)
			}
		})
	}

	// The same instant read as a UTC calendar day would be 2024-03-01; in the
	// business zone a 16:30 UTC creation is already the next day.
	nextDay := time.Date(2024, 3, 1, 16, 30, 0, 0, time.UTC)
	table := BuildCodeTable(
		[]CodeRow{{CodeRecord: CodeRecord{Code: "NEXT", CreatedAt: nextDay}}},
		Filter{DateTo: "2024-03-01"}, SortLatest, 1, 10, businessTZ,
	)
	assert.Empty(t, table.Rows)
}

func TestBuildCodeTableSorts(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }
	fast := float64(30)
	slow := float64(900)

	rows := []CodeRow{
		{CodeRecord: CodeRecord{Code: "A", Pool: 10, CreatedAt: day(1)}, TotalClaimed: 500, FirstClaimSeconds: &slow},
		{CodeRecord: CodeRecord{Code: "B", Pool: 30, CreatedAt: day(3)}, TotalClaimed: 100},
		{CodeRecord: CodeRecord{Code: "C", Pool: 20, CreatedAt: day(2)}, TotalClaimed: 300, FirstClaimSeconds: &fast},
	}

	tests := []struct {
		name     string
		key      SortKey
		expected []string
	}{
		{"latest", SortLatest, []string{"B", "C", "A"}},
		{"oldest", SortOldest, []string{"A", "C", "B"}},
		{"most claimed", SortMostClaimed, []string{"A", "C", "B"}},
		{"least claimed", SortLeastClaimed, []string{"B", "C", "A"}},
		{"fastest first claim with missing last", SortFastestFirstClaim, []string{"C", "A", "B"}},
		{"pool size", SortPoolSize, []string{"B", "C", "A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := BuildCodeTable(rows, Filter{}, tt.key, 1, 10, businessTZ)
			assert.Equal(t, tt.expected, codeNames(table.Rows))
		})
	}
}

func TestBuildCodeTablePagination(t *testing.T) {
	rows := make([]CodeRow, 0, 7)
	for i := 0; i < 7; i++ {
		rows = append(rows, CodeRow{CodeRecord: CodeRecord{
			Code:      string(rune('A' + i)),
			CreatedAt: time.Date(2024, 1, 7-i, 0, 0, 0, 0, time.UTC),
		}})
	}

	table := BuildCodeTable(rows, Filter{}, SortLatest, 1, 3, businessTZ)
	assert.Equal(t, 7, table.Total)
	assert.Equal(t, 3, table.PageCount)
	require.Len(t, table.Rows, 3)
	assert.Equal(t, []string{"A", "B", "C"}, codeNames(table.Rows))

	last := BuildCodeTable(rows, Filter{}, SortLatest, 3, 3, businessTZ)
	assert.Equal(t, []string{"G"}, codeNames(last.Rows))

	beyond := BuildCodeTable(rows, Filter{}, SortLatest, 9, 3, businessTZ)
	assert.Empty(t, beyond.Rows)
	assert.Equal(t, 3, beyond.PageCount)
}
