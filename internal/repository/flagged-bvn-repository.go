package repository

import (
	"github.com/tmapay/escrow_service/internal/domain"
	"gorm.io/gorm"
)

type FlaggedBVNRepository interface {
	Flag(bvn string) error
	IsFlagged(bvn string) (bool, error)
	ListBVNs() ([]string, error)
}

type flaggedBVNRepository struct {
	db *gorm.DB
}

func NewFlaggedBVNRepository(db *gorm.DB) FlaggedBVNRepository {
	return &flaggedBVNRepository{db: db}
}

// Flag is idempotent; flagging an already flagged number is a no-op.
func (r *flaggedBVNRepository) Flag(bvn string) error {
	rec := &domain.FlaggedBVN{}
	return r.db.FirstOrCreate(rec, domain.FlaggedBVN{BVN: bvn}).Error
}

func (r *flaggedBVNRepository) IsFlagged(bvn string) (bool, error) {
	var count int64
	if err := r.db.Model(&domain.FlaggedBVN{}).Where("bvn = ?", bvn).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *flaggedBVNRepository) ListBVNs() ([]string, error) {
	var bvns []string
	if err := r.db.Model(&domain.FlaggedBVN{}).Order("id").Pluck("bvn", &bvns).Error; err != nil {
		return nil, err
	}
	return bvns, nil
}
