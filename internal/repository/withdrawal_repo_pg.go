package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"presale/adminhub/internal/model"
)

type pgWithdrawalRepository struct {
	db *gorm.DB
}

func NewPGWithdrawalRepository(db *gorm.DB) WithdrawalRepository {
	return &pgWithdrawalRepository{db: db}
}

func (r *pgWithdrawalRepository) Create(ctx context.Context, withdrawal *model.Withdrawal) error {
	return r.db.WithContext(ctx).Create(withdrawal).Error
}

func (r *pgWithdrawalRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Withdrawal, error) {
	var withdrawal model.Withdrawal
	if err := r.db.WithContext(ctx).First(&withdrawal, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &withdrawal, nil
}

func (r *pgWithdrawalRepository) List(ctx context.Context, params WithdrawalListParams) ([]model.Withdrawal, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Withdrawal{})

	if params.UserID != uuid.Nil {
		query = query.Where("user_id = ?", params.UserID)
	}
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var withdrawals []model.Withdrawal
	if err := query.
		Order("created_at DESC").
		Scopes(paged(params.Page, params.PageSize)).
		Find(&withdrawals).Error; err != nil {
		return nil, 0, err
	}
	return withdrawals, total, nil
}

func (r *pgWithdrawalRepository) Update(ctx context.Context, withdrawal *model.Withdrawal) error {
	return r.db.WithContext(ctx).Save(withdrawal).Error
}
