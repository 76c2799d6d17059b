package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type KYCStatus string

const (
	KYCStatusPending  KYCStatus = "pending"
	KYCStatusVerified KYCStatus = "verified"
	KYCStatusRejected KYCStatus = "rejected"
)

// User mirrors a platform user for the console's screens. ExternalUID is the
// user's id in the platform's document store.
type User struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ExternalUID   string         `gorm:"type:varchar(128);uniqueIndex;not null" json:"external_uid"`
	Name          string         `gorm:"type:varchar(256)" json:"name"`
	Email         string         `gorm:"type:varchar(255)" json:"email"`
	WalletAddress string         `gorm:"type:varchar(128)" json:"wallet_address,omitempty"`
	KYCStatus     KYCStatus      `gorm:"type:varchar(16);not null;default:'pending'" json:"kyc_status"`
	TotalDonated  float64        `gorm:"not null;default:0" json:"total_donated"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (User) TableName() string { return "users" }
