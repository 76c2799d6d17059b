package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"presale/adminhub/internal/model"
	"presale/adminhub/internal/repository"
)

type fakeKYCRepo struct {
	submissions map[uuid.UUID]*model.KYCSubmission
}

func (f *fakeKYCRepo) Create(_ context.Context, s *model.KYCSubmission) error {
	f.submissions[s.ID] = s
	return nil
}

func (f *fakeKYCRepo) GetByID(_ context.Context, id uuid.UUID) (*model.KYCSubmission, error) {
	if s, ok := f.submissions[id]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeKYCRepo) List(_ context.Context, _ repository.KYCListParams) ([]model.KYCSubmission, int64, error) {
	out := make([]model.KYCSubmission, 0, len(f.submissions))
	for _, s := range f.submissions {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (f *fakeKYCRepo) Update(_ context.Context, s *model.KYCSubmission) error {
	f.submissions[s.ID] = s
	return nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*model.User
}

func (f *fakeUserRepo) Create(_ context.Context, u *model.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	if u, ok := f.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByExternalUID(_ context.Context, uid string) (*model.User, error) {
	for _, u := range f.users {
		if u.ExternalUID == uid {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) List(_ context.Context, _ repository.UserListParams) ([]model.User, int64, error) {
	out := make([]model.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (f *fakeUserRepo) Update(_ context.Context, u *model.User) error {
	f.users[u.ID] = u
	return nil
}

func newKYCFixture(idNumber, idType string) (KYCService, *fakeKYCRepo, *fakeUserRepo, uuid.UUID) {
	userID := uuid.New()
	submissionID := uuid.New()

	userRepo := &fakeUserRepo{users: map[uuid.UUID]*model.User{
		userID: {ID: userID, ExternalUID: "ext-1", Name: "Maria Santos", KYCStatus: model.KYCStatusPending},
	}}
	kycRepo := &fakeKYCRepo{submissions: map[uuid.UUID]*model.KYCSubmission{
		submissionID: {
			ID:       submissionID,
			UserID:   userID,
			IDType:   idType,
			IDNumber: idNumber,
			Status:   model.KYCSubmissionPending,
		},
	}}

	return NewKYCService(kycRepo, userRepo), kycRepo, userRepo, submissionID
}

func TestReviewApproveMarksUserVerified(t *testing.T) {
	svc, kycRepo, userRepo, id := newKYCFixture("A1234567890", "UMID")
	reviewer := uuid.New()

	submission, err := svc.Review(context.Background(), id, reviewer, true, "")
	require.NoError(t, err)

	assert.Equal(t, model.KYCSubmissionValid, submission.Status)
	assert.Empty(t, submission.Reasons)
	require.NotNil(t, submission.ReviewedBy)
	assert.Equal(t, reviewer, *submission.ReviewedBy)

	stored := kycRepo.submissions[id]
	assert.Equal(t, model.KYCSubmissionValid, stored.Status)

	user := userRepo.users[stored.UserID]
	assert.Equal(t, model.KYCStatusVerified, user.KYCStatus)
}

func TestReviewRejectRecordsRuleFailuresAndNote(t *testing.T) {
	// a run of identical digits trips the repeated-character rule
	svc, kycRepo, userRepo, id := newKYCFixture("0000000000000", "UMID")

	submission, err := svc.Review(context.Background(), id, uuid.New(), false, "photo does not match")
	require.NoError(t, err)

	assert.Equal(t, model.KYCSubmissionInvalid, submission.Status)
	assert.Contains(t, submission.Reasons, "photo does not match")

	stored := kycRepo.submissions[id]
	user := userRepo.users[stored.UserID]
	assert.Equal(t, model.KYCStatusRejected, user.KYCStatus)
}

func TestReviewRejectsAlreadyReviewed(t *testing.T) {
	svc, kycRepo, _, id := newKYCFixture("A1234567890", "UMID")
	kycRepo.submissions[id].Status = model.KYCSubmissionValid

	_, err := svc.Review(context.Background(), id, uuid.New(), false, "n/a")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestReviewUnknownSubmission(t *testing.T) {
	svc, _, _, _ := newKYCFixture("A1234567890", "UMID")

	_, err := svc.Review(context.Background(), uuid.New(), uuid.New(), true, "")
	assert.ErrorIs(t, err, ErrSubmissionNotFound)
}

func TestValidateIDVerdicts(t *testing.T) {
	svc, _, _, _ := newKYCFixture("A1234567890", "UMID")

	valid := svc.ValidateID("1234-5678901-2", "UMID")
	assert.Equal(t, "Valid", valid.Status)
	assert.Empty(t, valid.Reasons)

	invalid := svc.ValidateID("", "UMID")
	assert.Equal(t, "Invalid", invalid.Status)
	assert.NotEmpty(t, invalid.Reasons)
}
