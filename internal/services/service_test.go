package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tmapay/escrow_service/internal/dto"
	"github.com/tmapay/escrow_service/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- helpers ---

// newTestDB opens a named in-memory SQLite database, isolated per test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))

	return db
}

type fixture struct {
	account AccountService
	escrow  EscrowService
	support SupportService
	events  *fakeProducer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	txRepo := repository.NewTransactionRepository(db)
	flaggedRepo := repository.NewFlaggedBVNRepository(db)
	supportRepo := repository.NewSupportRepository(db)
	events := &fakeProducer{}

	return &fixture{
		account: NewAccountService(userRepo, flaggedRepo, events),
		escrow:  NewEscrowService(txRepo, userRepo, flaggedRepo, events),
		support: NewSupportService(supportRepo, events),
		events:  events,
	}
}

func (f *fixture) signup(t *testing.T, email, bvn string) *dto.UserSummary {
	t.Helper()

	user, err := f.account.Register(dto.SignupRequest{
		Name:  "Ada",
		Email: email,
		BVN:   bvn,
	})
	require.NoError(t, err)
	return user
}

type fakeProducer struct {
	keys []string
}

func (p *fakeProducer) PublishMessage(key, value []byte) error {
	p.keys = append(p.keys, string(key))
	return nil
}

func (p *fakeProducer) published(key string) bool {
	for _, k := range p.keys {
		if k == key {
			return true
		}
	}
	return false
}
