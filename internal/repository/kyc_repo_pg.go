package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"presale/adminhub/internal/model"
)

type pgKYCRepository struct {
	db *gorm.DB
}

func NewPGKYCRepository(db *gorm.DB) KYCRepository {
	return &pgKYCRepository{db: db}
}

func (r *pgKYCRepository) Create(ctx context.Context, submission *model.KYCSubmission) error {
	return r.db.WithContext(ctx).Create(submission).Error
}

func (r *pgKYCRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.KYCSubmission, error) {
	var submission model.KYCSubmission
	if err := r.db.WithContext(ctx).First(&submission, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *pgKYCRepository) List(ctx context.Context, params KYCListParams) ([]model.KYCSubmission, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.KYCSubmission{})

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

	var submissions []model.KYCSubmission
	if err := query.
		Order("created_at DESC").
		Scopes(paged(params.Page, params.PageSize)).
		Find(&submissions).Error; err != nil {
		return nil, 0, err
	}
	return submissions, total, nil
}

func (r *pgKYCRepository) Update(ctx context.Context, submission *model.KYCSubmission) error {
	return r.db.WithContext(ctx).Save(submission).Error
}
