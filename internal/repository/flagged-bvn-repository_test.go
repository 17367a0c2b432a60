package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestFlaggedBVNRepository(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:flagged_repo_test?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	repo := NewFlaggedBVNRepository(db)

	flagged, err := repo.IsFlagged("12345678901")
	require.NoError(t, err)
	assert.False(t, flagged)

	require.NoError(t, repo.Flag("12345678901"))
	// Re-flagging the same number is a no-op, not an error.
	require.NoError(t, repo.Flag("12345678901"))
	require.NoError(t, repo.Flag("10987654321"))

	flagged, err = repo.IsFlagged("12345678901")
	require.NoError(t, err)
	assert.True(t, flagged)

	bvns, err := repo.ListBVNs()
	require.NoError(t, err)
	assert.Equal(t, []string{"12345678901", "10987654321"}, bvns)
}
