package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"presale/adminhub/internal/model"
	"presale/adminhub/internal/repository"
	"presale/adminhub/pkg/crypto"
	jwtpkg "presale/adminhub/pkg/jwt"
)

// TokenSet is the pair of tokens issued to a console operator.
type TokenSet struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*TokenSet, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenSet, error)
	Logout(ctx context.Context, refreshToken string) error
}

type authService struct {
	adminRepo  repository.AdminAccountRepository
	cache      repository.CacheStore
	jwtManager *jwtpkg.Manager
}

func NewAuthService(
	adminRepo repository.AdminAccountRepository,
	cache repository.CacheStore,
	jwtManager *jwtpkg.Manager,
) AuthService {
	return &authService{
		adminRepo:  adminRepo,
		cache:      cache,
		jwtManager: jwtManager,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (*TokenSet, error) {
	account, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup admin account: %w", err)
	}

	if !crypto.CheckPassword(password, account.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	if account.Status != model.AdminStatusActive {
		return nil, ErrAccountDisabled
	}

	return s.issueTokens(account.ID)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*TokenSet, error) {
	claims, err := s.jwtManager.Validate(refreshToken)
	if err != nil || claims.TokenType != jwtpkg.TokenTypeRefresh {
		return nil, ErrRefreshTokenInvalid
	}

	revoked, err := s.cache.Exists(ctx, revokedKey(claims.ID))
	if err != nil {
		return nil, fmt.Errorf("check refresh token revocation: %w", err)
	}
	if revoked {
		return nil, ErrRefreshTokenInvalid
	}

	account, err := s.adminRepo.GetByID(ctx, mustParseUUID(claims.Subject))
	if err != nil {
		return nil, ErrRefreshTokenInvalid
	}
	if account.Status != model.AdminStatusActive {
		return nil, ErrAccountDisabled
	}

	// Rotation: the presented refresh token is spent.
	if err := s.revoke(ctx, claims); err != nil {
		return nil, err
	}
	return s.issueTokens(account.ID)
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.jwtManager.Validate(refreshToken)
	if err != nil || claims.TokenType != jwtpkg.TokenTypeRefresh {
		return ErrRefreshTokenInvalid
	}
	return s.revoke(ctx, claims)
}

func (s *authService) issueTokens(adminID uuid.UUID) (*TokenSet, error) {
	access, err := s.jwtManager.GenerateAccessToken(adminID)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	refresh, _, err := s.jwtManager.GenerateRefreshToken(adminID)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}
	return &TokenSet{AccessToken: access, RefreshToken: refresh}, nil
}

// revoke marks a refresh token's JTI as spent until the token would have
// expired anyway.
func (s *authService) revoke(ctx context.Context, claims *jwtpkg.Claims) error {
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	if err := s.cache.Set(ctx, revokedKey(claims.ID), []byte("1"), ttl); err != nil {
		return fmt.Errorf("revoke refresh token: %w", err)
	}
	return nil
}

func revokedKey(jti string) string { return "auth:revoked:" + jti }

func mustParseUUID(s string) uuid.UUID {
	id, _ := uuid.Parse(s)
	return id
}
