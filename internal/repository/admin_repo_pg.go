package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"presale/adminhub/internal/model"
)

type pgAdminAccountRepository struct {
	db *gorm.DB
}

func NewPGAdminAccountRepository(db *gorm.DB) AdminAccountRepository {
	return &pgAdminAccountRepository{db: db}
}

func (r *pgAdminAccountRepository) Create(ctx context.Context, account *model.AdminAccount) error {
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *pgAdminAccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.AdminAccount, error) {
	var account model.AdminAccount
	if err := r.db.WithContext(ctx).First(&account, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *pgAdminAccountRepository) GetByEmail(ctx context.Context, email string) (*model.AdminAccount, error) {
	var account model.AdminAccount
	if err := r.db.WithContext(ctx).
		Where("lower(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}
