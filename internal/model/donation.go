package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DonationStatus string

const (
	DonationStatusPending   DonationStatus = "pending"
	DonationStatusConfirmed DonationStatus = "confirmed"
	DonationStatusFailed    DonationStatus = "failed"
)

type Donation struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount     float64        `gorm:"not null" json:"amount"`
	Currency   string         `gorm:"type:varchar(8);not null;default:'PHP'" json:"currency"`
	TxRef      string         `gorm:"type:varchar(128)" json:"tx_ref,omitempty"`
	Status     DonationStatus `gorm:"type:varchar(16);not null;default:'pending';index" json:"status"`
	ReceiptURL string         `gorm:"type:text" json:"receipt_url,omitempty"`
	DonatedAt  time.Time      `gorm:"not null;index" json:"donated_at"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Donation) TableName() string { return "donations" }
