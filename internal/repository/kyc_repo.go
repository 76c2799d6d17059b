package repository

import (
	"context"

	"github.com/google/uuid"

	"presale/adminhub/internal/model"
)

type KYCListParams struct {
	UserID   uuid.UUID
	Status   model.KYCSubmissionStatus
	Page     int
	PageSize int
}

type KYCRepository interface {
	Create(ctx context.Context, submission *model.KYCSubmission) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.KYCSubmission, error)
	List(ctx context.Context, params KYCListParams) ([]model.KYCSubmission, int64, error)
	Update(ctx context.Context, submission *model.KYCSubmission) error
}
