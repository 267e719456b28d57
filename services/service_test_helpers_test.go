package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"socialnet-api/database"
	"socialnet-api/models"
	"socialnet-api/repositories"
)

// newTestDB opens a private in-memory database. A single connection keeps
// the memory database alive and serializes writes, so constraint violations
// surface deterministically instead of SQLITE_BUSY.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func newTestFriendService(t *testing.T, db *gorm.DB, limiter *SendLimiter) *FriendService {
	t.Helper()
	if limiter == nil {
		limiter = NewSendLimiter(60, 1000)
	}
	return NewFriendService(
		repositories.NewUserRepository(db),
		repositories.NewFriendRequestRepository(db),
		limiter,
	)
}

func createTestUser(t *testing.T, db *gorm.DB, name, email string) *models.User {
	t.Helper()
	user := &models.User{
		ID:       uuid.New().String(),
		Name:     name,
		Email:    models.NormalizeEmail(email),
		Password: "not-a-real-hash",
	}
	require.NoError(t, repositories.NewUserRepository(db).Create(user))
	return user
}
