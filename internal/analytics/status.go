package analytics

import "time"

// Status is a code's effective state, derived at query time.
type Status string

const (
	StatusActive   Status = "active"
	StatusExpired  Status = "expired"
	StatusDepleted Status = "depleted"
)

// DeriveStatus computes the effective status of a code at the given instant.
// Structural conditions always beat the stored status field, which can go
// stale: a code past its expiry is expired no matter what was last written,
// and an unexpired code with an exhausted pool is depleted. Only when neither
// fires does a recognized stored value pass through; anything else is active.
func DeriveStatus(rec CodeRecord, now time.Time) Status {
	if rec.ExpiresAt != nil && rec.ExpiresAt.Before(now) {
		return StatusExpired
	}

	remaining := rec.Pool
	if rec.RemainingPool != nil {
		remaining = *rec.RemainingPool
	}
	if remaining <= 0 {
		return StatusDepleted
	}

	switch s := Status(rec.RawStatus); s {
	case StatusActive, StatusExpired, StatusDepleted:
		return s
	}
	return StatusActive
}
