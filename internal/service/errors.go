package service

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrAccountDisabled     = errors.New("account is disabled")
	ErrRefreshTokenInvalid = errors.New("refresh token invalid or revoked")
	ErrUserNotFound        = errors.New("user not found")
	ErrDonationNotFound    = errors.New("donation not found")
	ErrWithdrawalNotFound  = errors.New("withdrawal not found")
	ErrSubmissionNotFound  = errors.New("kyc submission not found")
	ErrInvalidTransition   = errors.New("status transition not allowed")
	ErrNoteRequired        = errors.New("a note is required when rejecting")
)
