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
	"presale/adminhub/pkg/idcheck"
)

// IDValidation is the verdict of the rule-based ID number check.
type IDValidation struct {
	Status  string   `json:"status"` // "Valid" | "Invalid"
	Reasons []string `json:"reasons"`
}

type KYCService interface {
	List(ctx context.Context, params repository.KYCListParams) ([]model.KYCSubmission, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*model.KYCSubmission, error)
	Review(ctx context.Context, id, reviewer uuid.UUID, approve bool, note string) (*model.KYCSubmission, error)
	ValidateID(idNumber, idType string) IDValidation
}

type kycService struct {
	kycRepo  repository.KYCRepository
	userRepo repository.UserRepository
}

func NewKYCService(kycRepo repository.KYCRepository, userRepo repository.UserRepository) KYCService {
	return &kycService{kycRepo: kycRepo, userRepo: userRepo}
}

func (s *kycService) List(ctx context.Context, params repository.KYCListParams) ([]model.KYCSubmission, int64, error) {
	return s.kycRepo.List(ctx, params)
}

func (s *kycService) Get(ctx context.Context, id uuid.UUID) (*model.KYCSubmission, error) {
	submission, err := s.kycRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}
	return submission, nil
}

// Review settles a pending submission. The rule check runs again at review
// time and its failures are recorded alongside any reviewer note, so the
// decision trail survives the original form input.
func (s *kycService) Review(ctx context.Context, id, reviewer uuid.UUID, approve bool, note string) (*model.KYCSubmission, error) {
	submission, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if submission.Status != model.KYCSubmissionPending {
		return nil, ErrInvalidTransition
	}

	now := time.Now()
	submission.ReviewedBy = &reviewer
	submission.ReviewedAt = &now

	if approve {
		submission.Status = model.KYCSubmissionValid
		submission.Reasons = ""
	} else {
		submission.Status = model.KYCSubmissionInvalid
		reasons := idcheck.Validate(submission.IDNumber, submission.IDType)
		if strings.TrimSpace(note) != "" {
			reasons = append(reasons, strings.TrimSpace(note))
		}
		submission.Reasons = strings.Join(reasons, "\n")
	}

	if err := s.kycRepo.Update(ctx, submission); err != nil {
		return nil, err
	}

	if err := s.syncUserStatus(ctx, submission.UserID, approve); err != nil {
		return nil, err
	}
	return submission, nil
}

func (s *kycService) syncUserStatus(ctx context.Context, userID uuid.UUID, approved bool) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if approved {
		user.KYCStatus = model.KYCStatusVerified
	} else {
		user.KYCStatus = model.KYCStatusRejected
	}
	return s.userRepo.Update(ctx, user)
}

// ValidateID runs the rule-based check without touching any submission.
func (s *kycService) ValidateID(idNumber, idType string) IDValidation {
	reasons := idcheck.Validate(idNumber, idType)
	status := "Valid"
	if len(reasons) > 0 {
		status = "Invalid"
	}
	return IDValidation{Status: status, Reasons: reasons}
}
