// Package analytics computes the reward-code view models served by the admin
// console: the annotated code table and the claimant leaderboards. Every
// function is a pure transformation over already-loaded snapshots; malformed
// records are defaulted or dropped, never surfaced as errors.
package analytics

import (
	"strconv"
	"strings"
	"time"
)

// Document is one raw record from the reward document store. Field names are
// not stable across writers, so each logical attribute is resolved through an
// ordered list of candidate keys at ingestion.
type Document struct {
	ID     string
	Fields map[string]any
}

// CodeRecord is the normalized shape of a reward code document.
type CodeRecord struct {
	Code          string     `json:"code"`
	Pool          float64    `json:"pool"`
	RemainingPool *float64   `json:"remaining_pool,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	RawStatus     string     `json:"raw_status,omitempty"`
}

// ClaimRecord is the normalized shape of a reward claim document. Code is a
// soft reference: it may not resolve to any CodeRecord.
type ClaimRecord struct {
	RecordID    string    `json:"record_id"`
	UserID      string    `json:"user_id,omitempty"`
	UserName    string    `json:"user_name,omitempty"`
	UserEmail   string    `json:"user_email,omitempty"`
	Amount      float64   `json:"amount"`
	ClaimedAt   time.Time `json:"claimed_at"`
	Code        string    `json:"code"`
	TimeToClaim *float64  `json:"time_to_claim,omitempty"` // seconds, precomputed upstream
}

// ClaimantKey resolves the identifier a claim is attributed to: user id,
// email, display name, then record id, first non-empty wins.
func (c ClaimRecord) ClaimantKey() string {
	for _, v := range []string{c.UserID, c.UserEmail, c.UserName, c.RecordID} {
		if v != "" {
			return v
		}
	}
	return ""
}

// NormalizeCode canonicalizes a code string for matching.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// CodeRecordFromDoc normalizes one raw code document.
func CodeRecordFromDoc(doc Document) CodeRecord {
	rec := CodeRecord{
		Code:      NormalizeCode(asString(field(doc.Fields, "secretCode", "code", "activeCode"))),
		Pool:      asNumber(field(doc.Fields, "pool", "totalPool")),
		RawStatus: strings.ToLower(strings.TrimSpace(asString(doc.Fields["status"]))),
		CreatedAt: asTime(field(doc.Fields, "createdAt", "updatedAt")),
	}
	if v, ok := doc.Fields["remainingPool"]; ok && v != nil {
		n := asNumber(v)
		rec.RemainingPool = &n
	}
	if t := asTime(doc.Fields["expiresAt"]); !t.IsZero() {
		rec.ExpiresAt = &t
	}
	return rec
}

// ClaimRecordFromDoc normalizes one raw claim document. Emails are lower-cased
// so they behave as a case-insensitive claimant key.
func ClaimRecordFromDoc(doc Document) ClaimRecord {
	rec := ClaimRecord{
		RecordID:  doc.ID,
		UserID:    strings.TrimSpace(asString(field(doc.Fields, "userId", "uid"))),
		UserName:  strings.TrimSpace(asString(field(doc.Fields, "userName", "name"))),
		UserEmail: strings.ToLower(strings.TrimSpace(asString(field(doc.Fields, "userEmail", "email")))),
		Amount:    asNumber(field(doc.Fields, "claimAmount", "amount")),
		ClaimedAt: asTime(field(doc.Fields, "claimedAt", "timestamp", "createdAt")),
		Code:      NormalizeCode(asString(field(doc.Fields, "secretCode", "code", "rewardCode"))),
	}
	if secs, ok := asNumberOK(doc.Fields["timeToClaim"]); ok {
		rec.TimeToClaim = &secs
	} else if mins, ok := asNumberOK(doc.Fields["timeToClaimMinutes"]); ok {
		secs := mins * 60
		rec.TimeToClaim = &secs
	}
	return rec
}

// field returns the first present, non-nil, non-blank value among keys.
func field(doc map[string]any, keys ...string) any {
	for _, k := range keys {
		v, ok := doc[k]
		if !ok || v == nil {
			continue
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			continue
		}
		return v
	}
	return nil
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asNumber(v any) float64 {
	n, _ := asNumberOK(v)
	return n
}

func asNumberOK(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}

// timeLayouts covers the ISO-8601 shapes the store has been observed to emit.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// asTime coerces the timestamp shapes the document store produces into one
// comparable UTC instant. Unparseable values yield the zero time, which sorts
// as oldest everywhere downstream.
func asTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t.UTC()
	case interface{ Time() time.Time }: // bson datetime
		return t.Time().UTC()
	case string:
		for _, layout := range timeLayouts {
			if ts, err := time.Parse(layout, t); err == nil {
				return ts.UTC()
			}
		}
	case map[string]any: // structured epoch: {seconds, nanoseconds}
		if sec, ok := asNumberOK(field(t, "seconds", "_seconds")); ok {
			return time.Unix(int64(sec), 0).UTC()
		}
	default:
		if n, ok := asNumberOK(v); ok {
			return fromEpoch(int64(n))
		}
	}
	return time.Time{}
}

// fromEpoch interprets bare numbers as epoch seconds or milliseconds,
// whichever magnitude fits.
func fromEpoch(v int64) time.Time {
	if v <= 0 {
		return time.Time{}
	}
	if v < 1e12 {
		return time.Unix(v, 0).UTC()
	}
	return time.UnixMilli(v).UTC()
}
