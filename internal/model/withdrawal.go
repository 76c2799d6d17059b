package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WithdrawalStatus string

const (
	WithdrawalStatusPending  WithdrawalStatus = "pending"
	WithdrawalStatusApproved WithdrawalStatus = "approved"
	WithdrawalStatusRejected WithdrawalStatus = "rejected"
	WithdrawalStatusPaid     WithdrawalStatus = "paid"
)

type Withdrawal struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount      float64          `gorm:"not null" json:"amount"`
	Destination string           `gorm:"type:varchar(256);not null" json:"destination"`
	Status      WithdrawalStatus `gorm:"type:varchar(16);not null;default:'pending';index" json:"status"`
	Note        string           `gorm:"type:text" json:"note,omitempty"`
	ReviewedBy  *uuid.UUID       `gorm:"type:uuid" json:"reviewed_by,omitempty"`
	ReviewedAt  *time.Time       `json:"reviewed_at,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"deleted_at,omitempty"`
}

func (Withdrawal) TableName() string { return "withdrawals" }
