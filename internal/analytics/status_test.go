package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStatus(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Second)
	future := now.Add(time.Hour)
	zero := float64(0)
	ten := float64(10)

	tests := []struct {
		name     string
		rec      CodeRecord
		expected Status
	}{
		{
			name:     "expiry beats positive pool",
			rec:      CodeRecord{ExpiresAt: &past, Pool: 1000},
			expected: StatusExpired,
		},
		{
			name:     "expiry beats stored active",
			rec:      CodeRecord{ExpiresAt: &past, Pool: 1000, RawStatus: "active"},
			expected: StatusExpired,
		},
		{
			name:     "expiry beats exhausted pool",
			rec:      CodeRecord{ExpiresAt: &past, Pool: 0},
			expected: StatusExpired,
		},
		{
			name:     "exhausted pool beats stored active",
			rec:      CodeRecord{Pool: 0, RawStatus: "active"},
			expected: StatusDepleted,
		},
		{
			name:     "remaining pool overrides total pool",
			rec:      CodeRecord{Pool: 1000, RemainingPool: &zero},
			expected: StatusDepleted,
		},
		{
			name:     "positive remaining pool keeps code alive",
			rec:      CodeRecord{Pool: 0, RemainingPool: &ten},
			expected: StatusActive,
		},
		{
			name:     "stored status passes through when structure is fine",
			rec:      CodeRecord{Pool: 100, RawStatus: "depleted"},
			expected: StatusDepleted,
		},
		{
			name:     "unrecognized stored status defaults to active",
			rec:      CodeRecord{Pool: 100, RawStatus: "weird"},
			expected: StatusActive,
		},
		{
			name:     "no stored status defaults to active",
			rec:      CodeRecord{Pool: 100, ExpiresAt: &future},
			expected: StatusActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveStatus(tt.rec, now))
		})
	}
}
