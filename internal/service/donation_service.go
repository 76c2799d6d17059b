package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"presale/adminhub/internal/model"
	"presale/adminhub/internal/repository"
)

type DonationService interface {
	List(ctx context.Context, params repository.DonationListParams) ([]model.Donation, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Donation, error)
	Confirm(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID) error
	Summary(ctx context.Context) ([]repository.DonationSummary, error)
}

type donationService struct {
	donationRepo repository.DonationRepository
	userRepo     repository.UserRepository
}

func NewDonationService(donationRepo repository.DonationRepository, userRepo repository.UserRepository) DonationService {
	return &donationService{donationRepo: donationRepo, userRepo: userRepo}
}

func (s *donationService) List(ctx context.Context, params repository.DonationListParams) ([]model.Donation, int64, error) {
	return s.donationRepo.List(ctx, params)
}

func (s *donationService) Get(ctx context.Context, id uuid.UUID) (*model.Donation, error) {
	donation, err := s.donationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDonationNotFound
		}
		return nil, err
	}
	return donation, nil
}

// Confirm moves a pending donation to confirmed and rolls its amount into the
// donor's running total.
func (s *donationService) Confirm(ctx context.Context, id uuid.UUID) error {
	donation, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if donation.Status != model.DonationStatusPending {
		return ErrInvalidTransition
	}

	if err := s.donationRepo.UpdateStatus(ctx, id, model.DonationStatusConfirmed); err != nil {
		return fmt.Errorf("confirm donation: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, donation.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil // orphaned donation, total has no home
		}
		return err
	}
	user.TotalDonated += donation.Amount
	return s.userRepo.Update(ctx, user)
}

func (s *donationService) MarkFailed(ctx context.Context, id uuid.UUID) error {
	donation, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if donation.Status != model.DonationStatusPending {
		return ErrInvalidTransition
	}
	return s.donationRepo.UpdateStatus(ctx, id, model.DonationStatusFailed)
}

func (s *donationService) Summary(ctx context.Context) ([]repository.DonationSummary, error) {
	return s.donationRepo.Summary(ctx)
}
