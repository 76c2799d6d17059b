package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCodesDedup(t *testing.T) {
	older := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	records := []CodeRecord{
		{Code: "ABC", CreatedAt: older, Pool: 100},
		{Code: "ABC", CreatedAt: newer, Pool: 200},
		{Code: "", CreatedAt: newer},
		{Code: "DEF", CreatedAt: older},
	}

	out := NormalizeCodes(records)
	require.Len(t, out, 2)

	// Latest creation wins within a duplicate group; output is newest-first.
	assert.Equal(t, "ABC", out[0].Code)
	assert.Equal(t, float64(200), out[0].Pool)
	assert.Equal(t, "DEF", out[1].Code)
}

func TestNormalizeCodesIdempotent(t *testing.T) {
	records := []CodeRecord{
		{Code: "A", CreatedAt: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)},
		{Code: "B", CreatedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		{Code: "A", CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	once := NormalizeCodes(records)
	twice := NormalizeCodes(once)
	assert.Equal(t, once, twice)
}

func TestNormalizeCodesUnparseableCreatedAtIsOldest(t *testing.T) {
	out := NormalizeCodes([]CodeRecord{
		{Code: "A"}, // zero CreatedAt
		{Code: "A", CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Pool: 7},
	})
	require.Len(t, out, 1)
	assert.Equal(t, float64(7), out[0].Pool)
}

func TestNormalizeCodesEmptyInput(t *testing.T) {
	assert.Empty(t, NormalizeCodes(nil))
	assert.NotNil(t, NormalizeCodes(nil))
}
