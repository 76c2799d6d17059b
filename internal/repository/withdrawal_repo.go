package repository

import (
	"context"

	"github.com/google/uuid"

	"presale/adminhub/internal/model"
)

type WithdrawalListParams struct {
	UserID   uuid.UUID
	Status   model.WithdrawalStatus
	Page     int
	PageSize int
}

type WithdrawalRepository interface {
	Create(ctx context.Context, withdrawal *model.Withdrawal) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Withdrawal, error)
	List(ctx context.Context, params WithdrawalListParams) ([]model.Withdrawal, int64, error)
	Update(ctx context.Context, withdrawal *model.Withdrawal) error
}
