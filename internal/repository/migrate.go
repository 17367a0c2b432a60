package repository

import (
	"github.com/tmapay/escrow_service/internal/domain"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Transaction{},
		&domain.FlaggedBVN{},
		&domain.SupportMessage{},
	)
}
