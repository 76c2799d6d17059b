package repository

import (
	"context"

	"github.com/google/uuid"

	"presale/adminhub/internal/model"
)

type DonationListParams struct {
	UserID   uuid.UUID
	Status   model.DonationStatus
	Page     int
	PageSize int
}

// DonationSummary is the per-status rollup shown at the top of the donations
// screen.
type DonationSummary struct {
	Status model.DonationStatus `json:"status"`
	Count  int64                `json:"count"`
	Total  float64              `json:"total"`
}

type DonationRepository interface {
	Create(ctx context.Context, donation *model.Donation) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Donation, error)
	List(ctx context.Context, params DonationListParams) ([]model.Donation, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.DonationStatus) error
	Summary(ctx context.Context) ([]DonationSummary, error)
	SummaryForUser(ctx context.Context, userID uuid.UUID) ([]DonationSummary, error)
}
