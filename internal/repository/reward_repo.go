package repository

import (
	"context"

	"presale/adminhub/internal/analytics"
)

// RewardDocumentSource reads and writes the platform's reward document store.
// Codes and claims come back as raw documents: field names are not stable
// across the store's writers, so normalization happens downstream in the
// analytics package.
type RewardDocumentSource interface {
	FetchCodes(ctx context.Context) ([]analytics.Document, error)
	FetchClaims(ctx context.Context) ([]analytics.Document, error)
	InsertCode(ctx context.Context, fields map[string]any) error
	SetCodeStatus(ctx context.Context, code string, status string) error
}
