package repositories

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"socialnet-api/database"
	"socialnet-api/models"
)

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

func seedUsers(t *testing.T, db *gorm.DB) (string, string) {
	t.Helper()
	users := NewUserRepository(db)

	alice := &models.User{ID: uuid.New().String(), Name: "Alice", Email: "alice@example.com", Password: "x"}
	bob := &models.User{ID: uuid.New().String(), Name: "Bob", Email: "bob@example.com", Password: "x"}
	require.NoError(t, users.Create(alice))
	require.NoError(t, users.Create(bob))
	return alice.ID, bob.ID
}

func TestInsertMarksRequestOutstanding(t *testing.T) {
	db := newTestDB(t)
	repo := NewFriendRequestRepository(db)
	aliceID, bobID := seedUsers(t, db)

	request := &models.FriendRequest{SenderID: aliceID, ReceiverID: bobID}
	require.NoError(t, repo.Insert(request))

	assert.Equal(t, models.FriendRequestStatusSent, request.Status)
	require.NotNil(t, request.Outstanding)
	assert.Equal(t, uint8(1), *request.Outstanding)
}

func TestInsertDuplicateOutstandingRejectedByConstraint(t *testing.T) {
	db := newTestDB(t)
	repo := NewFriendRequestRepository(db)
	aliceID, bobID := seedUsers(t, db)

	require.NoError(t, repo.Insert(&models.FriendRequest{SenderID: aliceID, ReceiverID: bobID}))

	err := repo.Insert(&models.FriendRequest{SenderID: aliceID, ReceiverID: bobID})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// The reverse direction is a different ordered pair.
	assert.NoError(t, repo.Insert(&models.FriendRequest{SenderID: bobID, ReceiverID: aliceID}))
}

func TestExistsSentBetweenIsDirectional(t *testing.T) {
	db := newTestDB(t)
	repo := NewFriendRequestRepository(db)
	aliceID, bobID := seedUsers(t, db)

	require.NoError(t, repo.Insert(&models.FriendRequest{SenderID: aliceID, ReceiverID: bobID}))

	exists, err := repo.ExistsSentBetween(aliceID, bobID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsSentBetween(bobID, aliceID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUpdateStatusIfSentIsConditional(t *testing.T) {
	db := newTestDB(t)
	repo := NewFriendRequestRepository(db)
	aliceID, bobID := seedUsers(t, db)

	request := &models.FriendRequest{SenderID: aliceID, ReceiverID: bobID}
	require.NoError(t, repo.Insert(request))

	updated, err := repo.UpdateStatusIfSent(request.ID, models.FriendRequestStatusAccepted)
	require.NoError(t, err)
	assert.True(t, updated)

	// The status moved off "sent", so the conditional write no longer applies.
	updated, err = repo.UpdateStatusIfSent(request.ID, models.FriendRequestStatusRejected)
	require.NoError(t, err)
	assert.False(t, updated)

	stored, err := repo.FindByID(request.ID)
	require.NoError(t, err)
	assert.Equal(t, models.FriendRequestStatusAccepted, stored.Status)
	assert.Nil(t, stored.Outstanding)
}

func TestTerminalRequestFreesTheConstraint(t *testing.T) {
	db := newTestDB(t)
	repo := NewFriendRequestRepository(db)
	aliceID, bobID := seedUsers(t, db)

	first := &models.FriendRequest{SenderID: aliceID, ReceiverID: bobID}
	require.NoError(t, repo.Insert(first))

	_, err := repo.UpdateStatusIfSent(first.ID, models.FriendRequestStatusRejected)
	require.NoError(t, err)

	// Outstanding is NULL on terminal rows; a new request may be created.
	second := &models.FriendRequest{SenderID: aliceID, ReceiverID: bobID}
	assert.NoError(t, repo.Insert(second))
}

func TestFindAcceptedInvolvingCoversBothDirections(t *testing.T) {
	db := newTestDB(t)
	repo := NewFriendRequestRepository(db)
	users := NewUserRepository(db)
	aliceID, bobID := seedUsers(t, db)

	carol := &models.User{ID: uuid.New().String(), Name: "Carol", Email: "carol@example.com", Password: "x"}
	require.NoError(t, users.Create(carol))

	outgoing := &models.FriendRequest{SenderID: aliceID, ReceiverID: bobID}
	require.NoError(t, repo.Insert(outgoing))
	_, err := repo.UpdateStatusIfSent(outgoing.ID, models.FriendRequestStatusAccepted)
	require.NoError(t, err)

	incoming := &models.FriendRequest{SenderID: carol.ID, ReceiverID: aliceID}
	require.NoError(t, repo.Insert(incoming))
	_, err = repo.UpdateStatusIfSent(incoming.ID, models.FriendRequestStatusAccepted)
	require.NoError(t, err)

	// Still-pending requests must not count as friendships.
	pending := &models.FriendRequest{SenderID: bobID, ReceiverID: carol.ID}
	require.NoError(t, repo.Insert(pending))

	accepted, err := repo.FindAcceptedInvolving(aliceID)
	require.NoError(t, err)
	assert.Len(t, accepted, 2)

	accepted, err = repo.FindAcceptedInvolving(carol.ID)
	require.NoError(t, err)
	assert.Len(t, accepted, 1)
}

func TestFindByReceiverAndStatusPreloadsSender(t *testing.T) {
	db := newTestDB(t)
	repo := NewFriendRequestRepository(db)
	users := NewUserRepository(db)
	aliceID, bobID := seedUsers(t, db)

	carol := &models.User{ID: uuid.New().String(), Name: "Carol", Email: "carol@example.com", Password: "x"}
	require.NoError(t, users.Create(carol))

	require.NoError(t, repo.Insert(&models.FriendRequest{SenderID: aliceID, ReceiverID: carol.ID}))
	require.NoError(t, repo.Insert(&models.FriendRequest{SenderID: bobID, ReceiverID: carol.ID}))

	requests, total, err := repo.FindByReceiverAndStatus(carol.ID, models.FriendRequestStatusSent, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, requests, 2)

	// Sender is preloaded for the pending view.
	assert.NotEmpty(t, requests[0].Sender.Name)
	assert.NotEmpty(t, requests[1].Sender.Name)
}
