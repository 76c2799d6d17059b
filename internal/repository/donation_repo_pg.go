package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"presale/adminhub/internal/model"
)

type pgDonationRepository struct {
	db *gorm.DB
}

func NewPGDonationRepository(db *gorm.DB) DonationRepository {
	return &pgDonationRepository{db: db}
}

func (r *pgDonationRepository) Create(ctx context.Context, donation *model.Donation) error {
	return r.db.WithContext(ctx).Create(donation).Error
}

func (r *pgDonationRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Donation, error) {
	var donation model.Donation
	if err := r.db.WithContext(ctx).First(&donation, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &donation, nil
}

func (r *pgDonationRepository) List(ctx context.Context, params DonationListParams) ([]model.Donation, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Donation{})

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

	var donations []model.Donation
	if err := query.
		Order("donated_at DESC").
		Scopes(paged(params.Page, params.PageSize)).
		Find(&donations).Error; err != nil {
		return nil, 0, err
	}
	return donations, total, nil
}

func (r *pgDonationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.DonationStatus) error {
	return r.db.WithContext(ctx).
		Model(&model.Donation{}).
		Where("id = ?", id).
		UpdateColumn("status", status).
		Error
}

func (r *pgDonationRepository) Summary(ctx context.Context) ([]DonationSummary, error) {
	var summary []DonationSummary
	err := r.db.WithContext(ctx).
		Model(&model.Donation{}).
		Select("status, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total").
		Group("status").
		Scan(&summary).Error
	return summary, err
}

func (r *pgDonationRepository) SummaryForUser(ctx context.Context, userID uuid.UUID) ([]DonationSummary, error) {
	var summary []DonationSummary
	err := r.db.WithContext(ctx).
		Model(&model.Donation{}).
		Select("status, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&summary).Error
	return summary, err
}
