package repository

import (
	"errors"

	"github.com/tmapay/escrow_service/internal/domain"
	"gorm.io/gorm"
)

type SupportRepository interface {
	CreateMessage(msg *domain.SupportMessage) (*domain.SupportMessage, error)
}

type supportRepository struct {
	db *gorm.DB
}

func NewSupportRepository(db *gorm.DB) SupportRepository {
	return &supportRepository{db: db}
}

func (r *supportRepository) CreateMessage(msg *domain.SupportMessage) (*domain.SupportMessage, error) {
	if msg == nil {
		return nil, errors.New("nil message")
	}

	if err := r.db.Create(msg).Error; err != nil {
		return nil, err
	}

	return msg, nil
}
