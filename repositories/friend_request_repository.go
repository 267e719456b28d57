package repositories

import (
	"gorm.io/gorm"

	"socialnet-api/models"
)

// FriendRequestRepository is pure persistence for friend requests. All
// business validation lives in services.FriendService; the only rules
// enforced here are the ones the storage layer itself guarantees (the
// outstanding-request unique index and the conditional status update).
type FriendRequestRepository struct {
	db *gorm.DB
}

func NewFriendRequestRepository(db *gorm.DB) *FriendRequestRepository {
	return &FriendRequestRepository{db: db}
}

// Insert creates a request in the sent state. If another outstanding request
// for the same (sender, receiver) pair exists, the unique index rejects the
// write and the error surfaces as gorm.ErrDuplicatedKey.
func (r *FriendRequestRepository) Insert(request *models.FriendRequest) error {
	request.Status = models.FriendRequestStatusSent
	request.Outstanding = models.OutstandingFlag()
	return r.db.Create(request).Error
}

func (r *FriendRequestRepository) FindByID(id uint) (*models.FriendRequest, error) {
	var request models.FriendRequest
	if err := r.db.First(&request, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

// ExistsSentBetween reports whether an outstanding request exists in exactly
// the sender→receiver direction. The reverse direction is deliberately not
// considered.
func (r *FriendRequestRepository) ExistsSentBetween(senderID, receiverID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.FriendRequest{}).
		Where("sender_id = ? AND receiver_id = ? AND status = ?",
			senderID, receiverID, models.FriendRequestStatusSent).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateStatusIfSent transitions a request to a terminal status as a single
// conditional write: the row only changes if its status is still "sent", so
// two concurrent transitions cannot both succeed. Returns false when no row
// changed (already terminal, or gone).
func (r *FriendRequestRepository) UpdateStatusIfSent(id uint, status models.FriendRequestStatus) (bool, error) {
	result := r.db.Model(&models.FriendRequest{}).
		Where("id = ? AND status = ?", id, models.FriendRequestStatusSent).
		Updates(map[string]interface{}{
			"status":      status,
			"outstanding": nil,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *FriendRequestRepository) FindByReceiverAndStatus(receiverID string, status models.FriendRequestStatus, page, limit int) ([]models.FriendRequest, int64, error) {
	query := r.db.Model(&models.FriendRequest{}).
		Where("receiver_id = ? AND status = ?", receiverID, status)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit

	var requests []models.FriendRequest
	if err := query.Preload("Sender").
		Order("created_at DESC").Offset(offset).Limit(limit).
		Find(&requests).Error; err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

// FindAcceptedInvolving returns every accepted request the user participates
// in, in either direction. Friend lists are derived from this set.
func (r *FriendRequestRepository) FindAcceptedInvolving(userID string) ([]models.FriendRequest, error) {
	var requests []models.FriendRequest
	err := r.db.
		Where("(sender_id = ? OR receiver_id = ?) AND status = ?",
			userID, userID, models.FriendRequestStatusAccepted).
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}
