package repository

import (
	"context"

	"github.com/google/uuid"

	"presale/adminhub/internal/model"
)

// UserListParams narrows and pages the user list.
type UserListParams struct {
	Search    string
	KYCStatus model.KYCStatus
	Page      int
	PageSize  int
}

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByExternalUID(ctx context.Context, uid string) (*model.User, error)
	List(ctx context.Context, params UserListParams) ([]model.User, int64, error)
	Update(ctx context.Context, user *model.User) error
}
