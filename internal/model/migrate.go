package model

import "gorm.io/gorm"

// AutoMigrate runs GORM auto-migration for all models and creates custom indexes.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&AdminAccount{},
		&User{},
		&Donation{},
		&Withdrawal{},
		&KYCSubmission{},
	); err != nil {
		return err
	}

	// Case-insensitive unique email for non-soft-deleted admin accounts.
	return db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_admin_accounts_email_lower " +
			"ON admin_accounts ((lower(email))) WHERE deleted_at IS NULL",
	).Error
}
