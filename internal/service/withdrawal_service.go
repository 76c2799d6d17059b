package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"presale/adminhub/internal/model"
	"presale/adminhub/internal/repository"
)

type WithdrawalService interface {
	List(ctx context.Context, params repository.WithdrawalListParams) ([]model.Withdrawal, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Withdrawal, error)
	Approve(ctx context.Context, id, reviewer uuid.UUID) error
	Reject(ctx context.Context, id, reviewer uuid.UUID, note string) error
	MarkPaid(ctx context.Context, id uuid.UUID) error
}

type withdrawalService struct {
	withdrawalRepo repository.WithdrawalRepository
}

func NewWithdrawalService(withdrawalRepo repository.WithdrawalRepository) WithdrawalService {
	return &withdrawalService{withdrawalRepo: withdrawalRepo}
}

func (s *withdrawalService) List(ctx context.Context, params repository.WithdrawalListParams) ([]model.Withdrawal, int64, error) {
	return s.withdrawalRepo.List(ctx, params)
}

func (s *withdrawalService) Get(ctx context.Context, id uuid.UUID) (*model.Withdrawal, error) {
	withdrawal, err := s.withdrawalRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWithdrawalNotFound
		}
		return nil, err
	}
	return withdrawal, nil
}

func (s *withdrawalService) Approve(ctx context.Context, id, reviewer uuid.UUID) error {
	return s.review(ctx, id, reviewer, model.WithdrawalStatusApproved, "")
}

func (s *withdrawalService) Reject(ctx context.Context, id, reviewer uuid.UUID, note string) error {
	if strings.TrimSpace(note) == "" {
		return ErrNoteRequired
	}
	return s.review(ctx, id, reviewer, model.WithdrawalStatusRejected, note)
}

func (s *withdrawalService) review(ctx context.Context, id, reviewer uuid.UUID, status model.WithdrawalStatus, note string) error {
	withdrawal, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if withdrawal.Status != model.WithdrawalStatusPending {
		return ErrInvalidTransition
	}

	now := time.Now()
	withdrawal.Status = status
	withdrawal.ReviewedBy = &reviewer
	withdrawal.ReviewedAt = &now
	if note != "" {
		withdrawal.Note = note
	}
	return s.withdrawalRepo.Update(ctx, withdrawal)
}

func (s *withdrawalService) MarkPaid(ctx context.Context, id uuid.UUID) error {
	withdrawal, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if withdrawal.Status != model.WithdrawalStatusApproved {
		return ErrInvalidTransition
	}
	withdrawal.Status = model.WithdrawalStatusPaid
	return s.withdrawalRepo.Update(ctx, withdrawal)
}
