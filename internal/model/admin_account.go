package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminStatus int

const (
	AdminStatusActive   AdminStatus = 1
	AdminStatusDisabled AdminStatus = 2
)

// AdminAccount is a console operator.
type AdminAccount struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email        string         `gorm:"type:varchar(255);not null" json:"email"`
	PasswordHash string         `gorm:"type:varchar(255);not null" json:"-"`
	DisplayName  string         `gorm:"type:varchar(128)" json:"display_name"`
	Status       AdminStatus    `gorm:"type:smallint;not null;default:1" json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (AdminAccount) TableName() string { return "admin_accounts" }
