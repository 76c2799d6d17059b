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

// UserDetail is a user together with the per-status rollup of their donations.
type UserDetail struct {
	model.User
	Donations []repository.DonationSummary `json:"donations"`
}

type UserService interface {
	List(ctx context.Context, params repository.UserListParams) ([]model.User, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*UserDetail, error)
}

type userService struct {
	userRepo     repository.UserRepository
	donationRepo repository.DonationRepository
}

func NewUserService(userRepo repository.UserRepository, donationRepo repository.DonationRepository) UserService {
	return &userService{userRepo: userRepo, donationRepo: donationRepo}
}

func (s *userService) List(ctx context.Context, params repository.UserListParams) ([]model.User, int64, error) {
	return s.userRepo.List(ctx, params)
}

func (s *userService) Get(ctx context.Context, id uuid.UUID) (*UserDetail, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	donations, err := s.donationRepo.SummaryForUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("summarize user donations: %w", err)
	}
	if donations == nil {
		donations = []repository.DonationSummary{}
	}

	return &UserDetail{User: *user, Donations: donations}, nil
}
