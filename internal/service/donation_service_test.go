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

type fakeDonationRepo struct {
	donations map[uuid.UUID]*model.Donation
}

func (f *fakeDonationRepo) Create(_ context.Context, d *model.Donation) error {
	f.donations[d.ID] = d
	return nil
}

func (f *fakeDonationRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Donation, error) {
	if d, ok := f.donations[id]; ok {
		copied := *d
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeDonationRepo) List(_ context.Context, _ repository.DonationListParams) ([]model.Donation, int64, error) {
	out := make([]model.Donation, 0, len(f.donations))
	for _, d := range f.donations {
		out = append(out, *d)
	}
	return out, int64(len(out)), nil
}

func (f *fakeDonationRepo) UpdateStatus(_ context.Context, id uuid.UUID, status model.DonationStatus) error {
	d, ok := f.donations[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	d.Status = status
	return nil
}

func (f *fakeDonationRepo) SummaryForUser(_ context.Context, userID uuid.UUID) ([]repository.DonationSummary, error) {
	byStatus := map[model.DonationStatus]*repository.DonationSummary{}
	for _, d := range f.donations {
		if d.UserID != userID {
			continue
		}
		s, ok := byStatus[d.Status]
		if !ok {
			s = &repository.DonationSummary{Status: d.Status}
			byStatus[d.Status] = s
		}
		s.Count++
		s.Total += d.Amount
	}
	out := make([]repository.DonationSummary, 0, len(byStatus))
	for _, s := range byStatus {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeDonationRepo) Summary(_ context.Context) ([]repository.DonationSummary, error) {
	byStatus := map[model.DonationStatus]*repository.DonationSummary{}
	for _, d := range f.donations {
		s, ok := byStatus[d.Status]
		if !ok {
			s = &repository.DonationSummary{Status: d.Status}
			byStatus[d.Status] = s
		}
		s.Count++
		s.Total += d.Amount
	}
	out := make([]repository.DonationSummary, 0, len(byStatus))
	for _, s := range byStatus {
		out = append(out, *s)
	}
	return out, nil
}

func newDonationFixture(status model.DonationStatus) (DonationService, *fakeDonationRepo, *fakeUserRepo, uuid.UUID) {
	userID := uuid.New()
	donationID := uuid.New()

	userRepo := &fakeUserRepo{users: map[uuid.UUID]*model.User{
		userID: {ID: userID, ExternalUID: "ext-7", Name: "Juan Dela Cruz", TotalDonated: 50},
	}}
	donationRepo := &fakeDonationRepo{donations: map[uuid.UUID]*model.Donation{
		donationID: {ID: donationID, UserID: userID, Amount: 200, Status: status},
	}}

	return NewDonationService(donationRepo, userRepo), donationRepo, userRepo, donationID
}

func TestConfirmRollsAmountIntoUserTotal(t *testing.T) {
	svc, donationRepo, userRepo, id := newDonationFixture(model.DonationStatusPending)

	require.NoError(t, svc.Confirm(context.Background(), id))

	stored := donationRepo.donations[id]
	assert.Equal(t, model.DonationStatusConfirmed, stored.Status)

	user := userRepo.users[stored.UserID]
	assert.Equal(t, float64(250), user.TotalDonated)
}

func TestConfirmRejectsNonPending(t *testing.T) {
	svc, _, _, id := newDonationFixture(model.DonationStatusFailed)

	err := svc.Confirm(context.Background(), id)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestConfirmToleratesOrphanedDonation(t *testing.T) {
	svc, donationRepo, userRepo, id := newDonationFixture(model.DonationStatusPending)
	for k := range userRepo.users {
		delete(userRepo.users, k)
	}

	require.NoError(t, svc.Confirm(context.Background(), id))
	assert.Equal(t, model.DonationStatusConfirmed, donationRepo.donations[id].Status)
}

func TestMarkFailed(t *testing.T) {
	svc, donationRepo, _, id := newDonationFixture(model.DonationStatusPending)

	require.NoError(t, svc.MarkFailed(context.Background(), id))
	assert.Equal(t, model.DonationStatusFailed, donationRepo.donations[id].Status)
}

func TestDonationNotFound(t *testing.T) {
	svc, _, _, _ := newDonationFixture(model.DonationStatusPending)

	_, err := svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrDonationNotFound)
}
