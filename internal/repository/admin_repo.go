package repository

import (
	"context"

	"github.com/google/uuid"

	"presale/adminhub/internal/model"
)

type AdminAccountRepository interface {
	Create(ctx context.Context, account *model.AdminAccount) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.AdminAccount, error)
	GetByEmail(ctx context.Context, email string) (*model.AdminAccount, error)
}
