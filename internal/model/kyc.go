package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type KYCSubmissionStatus string

const (
	KYCSubmissionPending KYCSubmissionStatus = "pending"
	KYCSubmissionValid   KYCSubmissionStatus = "valid"
	KYCSubmissionInvalid KYCSubmissionStatus = "invalid"
)

// KYCSubmission is one identity document submitted for verification. Reasons
// holds the newline-joined rule failures recorded at review time.
type KYCSubmission struct {
	ID         uuid.UUID           `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID           `gorm:"type:uuid;not null;index" json:"user_id"`
	IDType     string              `gorm:"type:varchar(64);not null" json:"id_type"`
	IDNumber   string              `gorm:"type:varchar(64);not null" json:"id_number"`
	ImageURL   string              `gorm:"type:text" json:"image_url,omitempty"`
	Status     KYCSubmissionStatus `gorm:"type:varchar(16);not null;default:'pending';index" json:"status"`
	Reasons    string              `gorm:"type:text" json:"reasons,omitempty"`
	ReviewedBy *uuid.UUID          `gorm:"type:uuid" json:"reviewed_by,omitempty"`
	ReviewedAt *time.Time          `json:"reviewed_at,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
	DeletedAt  gorm.DeletedAt      `gorm:"index" json:"deleted_at,omitempty"`
}

func (KYCSubmission) TableName() string { return "kyc_submissions" }
