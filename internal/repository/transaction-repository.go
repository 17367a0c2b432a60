package repository

import (
	"errors"

	"github.com/tmapay/escrow_service/internal/domain"
	"gorm.io/gorm"
)

type TransactionRepository interface {
	CreateTransaction(tx *domain.Transaction) (*domain.Transaction, error)
	FindByPublicID(id string) (*domain.Transaction, error)
	FindByBuyerEmail(email string) ([]domain.Transaction, error)
	SaveTransaction(tx *domain.Transaction) error
	ListAll() ([]domain.Transaction, error)
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) CreateTransaction(tx *domain.Transaction) (*domain.Transaction, error) {
	if tx == nil {
		return nil, errors.New("nil transaction")
	}

	if err := r.db.Create(tx).Error; err != nil {
		return nil, err
	}

	return tx, nil
}

func (r *transactionRepository) FindByPublicID(id string) (*domain.Transaction, error) {
	tx := &domain.Transaction{}

	if err := r.db.First(tx, "public_id = ?", id).Error; err != nil {
		return nil, err
	}

	return tx, nil
}

// FindByBuyerEmail lists in creation order; the autoincrement key is the
// insertion sequence.
func (r *transactionRepository) FindByBuyerEmail(email string) ([]domain.Transaction, error) {
	var txs []domain.Transaction

	if err := r.db.Where("buyer_email = ?", email).Order("id").Find(&txs).Error; err != nil {
		return nil, err
	}

	return txs, nil
}

func (r *transactionRepository) SaveTransaction(tx *domain.Transaction) error {
	if tx == nil {
		return errors.New("nil transaction")
	}

	return r.db.Save(tx).Error
}

func (r *transactionRepository) ListAll() ([]domain.Transaction, error) {
	var txs []domain.Transaction

	if err := r.db.Order("id").Find(&txs).Error; err != nil {
		return nil, err
	}

	return txs, nil
}
