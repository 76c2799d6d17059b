package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"presale/adminhub/internal/model"
	"presale/adminhub/internal/repository"
	"presale/adminhub/pkg/crypto"
	jwtpkg "presale/adminhub/pkg/jwt"
)

type fakeAdminRepo struct {
	accounts map[uuid.UUID]*model.AdminAccount
}

func (f *fakeAdminRepo) Create(_ context.Context, account *model.AdminAccount) error {
	f.accounts[account.ID] = account
	return nil
}

func (f *fakeAdminRepo) GetByID(_ context.Context, id uuid.UUID) (*model.AdminAccount, error) {
	if account, ok := f.accounts[id]; ok {
		return account, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAdminRepo) GetByEmail(_ context.Context, email string) (*model.AdminAccount, error) {
	for _, account := range f.accounts {
		if account.Email == email {
			return account, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func newAuthFixture(t *testing.T, status model.AdminStatus) (AuthService, *model.AdminAccount) {
	t.Helper()

	hash, err := crypto.HashPassword("hunter2!")
	require.NoError(t, err)

	account := &model.AdminAccount{
		ID:           uuid.New(),
		Email:        "ops@example.com",
		PasswordHash: hash,
		Status:       status,
	}
	repo := &fakeAdminRepo{accounts: map[uuid.UUID]*model.AdminAccount{account.ID: account}}
	manager := jwtpkg.NewManager("test-signing-key", "adminhub-test", 15*time.Minute, time.Hour)

	return NewAuthService(repo, repository.NewMemoryCacheStore(), manager), account
}

func TestLoginIssuesTokenPair(t *testing.T) {
	svc, _ := newAuthFixture(t, model.AdminStatusActive)

	tokens, err := svc.Login(context.Background(), "ops@example.com", "hunter2!")
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.NotEqual(t, tokens.AccessToken, tokens.RefreshToken)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	svc, _ := newAuthFixture(t, model.AdminStatusActive)

	_, err := svc.Login(context.Background(), "ops@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	svc, _ := newAuthFixture(t, model.AdminStatusActive)

	_, err := svc.Login(context.Background(), "nobody@example.com", "hunter2!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsDisabledAccount(t *testing.T) {
	svc, _ := newAuthFixture(t, model.AdminStatusDisabled)

	_, err := svc.Login(context.Background(), "ops@example.com", "hunter2!")
	assert.ErrorIs(t, err, ErrAccountDisabled)
}

func TestRefreshRotatesToken(t *testing.T) {
	svc, _ := newAuthFixture(t, model.AdminStatusActive)

	tokens, err := svc.Login(context.Background(), "ops@example.com", "hunter2!")
	require.NoError(t, err)

	rotated, err := svc.Refresh(context.Background(), tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)

	// the spent refresh token must not work again
	_, err = svc.Refresh(context.Background(), tokens.RefreshToken)
	assert.ErrorIs(t, err, ErrRefreshTokenInvalid)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _ := newAuthFixture(t, model.AdminStatusActive)

	tokens, err := svc.Login(context.Background(), "ops@example.com", "hunter2!")
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), tokens.AccessToken)
	assert.ErrorIs(t, err, ErrRefreshTokenInvalid)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	svc, _ := newAuthFixture(t, model.AdminStatusActive)

	tokens, err := svc.Login(context.Background(), "ops@example.com", "hunter2!")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), tokens.RefreshToken))

	_, err = svc.Refresh(context.Background(), tokens.RefreshToken)
	assert.ErrorIs(t, err, ErrRefreshTokenInvalid)
}
