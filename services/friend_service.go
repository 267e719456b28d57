package services

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"socialnet-api/models"
	"socialnet-api/repositories"
	"socialnet-api/utils"
)

// FriendService is the friend-request state machine plus the read views
// derived from it. States: sent (initial, only via Send), accepted and
// rejected (terminal, only via Accept/Reject, only by the receiver, only
// from sent).
type FriendService struct {
	users    *repositories.UserRepository
	requests *repositories.FriendRequestRepository
	limiter  *SendLimiter
}

func NewFriendService(users *repositories.UserRepository, requests *repositories.FriendRequestRepository, limiter *SendLimiter) *FriendService {
	return &FriendService{
		users:    users,
		requests: requests,
		limiter:  limiter,
	}
}

// Send creates an outstanding friend request from sender to the user behind
// receiverEmail. The duplicate check is advisory; the storage constraint is
// what actually guarantees at most one outstanding request per direction, so
// a lost insert race still comes back as ErrConflict.
//
// Only the exact sender→receiver direction is checked: two users may hold
// outstanding requests toward each other at the same time.
func (fs *FriendService) Send(senderID, receiverEmail string) (*models.FriendRequest, error) {
	receiver, err := fs.users.FindByEmail(receiverEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: receiver", ErrNotFound)
		}
		return nil, err
	}

	if receiver.ID == senderID {
		return nil, fmt.Errorf("%w: cannot send a friend request to yourself", ErrInvalidOperation)
	}

	if !fs.limiter.Allow(senderID) {
		return nil, ErrRateLimited
	}

	exists, err := fs.requests.ExistsSentBetween(senderID, receiver.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: friend request already sent", ErrConflict)
	}

	request := &models.FriendRequest{
		SenderID:   senderID,
		ReceiverID: receiver.ID,
	}

	if err := fs.requests.Insert(request); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			logrus.WithFields(logrus.Fields{
				"sender_id":   senderID,
				"receiver_id": receiver.ID,
			}).Debug("friend request insert lost race to concurrent send")
			return nil, fmt.Errorf("%w: friend request already sent", ErrConflict)
		}
		return nil, err
	}

	return request, nil
}

// Accept transitions a sent request to accepted on behalf of its receiver.
func (fs *FriendService) Accept(requestID uint, actingUserID string) (*models.FriendRequest, error) {
	return fs.transition(requestID, actingUserID, models.FriendRequestStatusAccepted)
}

// Reject transitions a sent request to rejected on behalf of its receiver.
func (fs *FriendService) Reject(requestID uint, actingUserID string) (*models.FriendRequest, error) {
	return fs.transition(requestID, actingUserID, models.FriendRequestStatusRejected)
}

func (fs *FriendService) transition(requestID uint, actingUserID string, target models.FriendRequestStatus) (*models.FriendRequest, error) {
	request, err := fs.requests.FindByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: friend request", ErrNotFound)
		}
		return nil, err
	}

	if request.ReceiverID != actingUserID {
		return nil, fmt.Errorf("%w: only the receiver may answer a friend request", ErrForbidden)
	}

	if request.Status != models.FriendRequestStatusSent {
		return nil, fmt.Errorf("%w: friend request already %s", ErrInvalidOperation, request.Status)
	}

	// Conditional write: the status may have changed since the load above, in
	// which case no row is affected and the transition is refused.
	updated, err := fs.requests.UpdateStatusIfSent(requestID, target)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, fmt.Errorf("%w: friend request is no longer pending", ErrInvalidOperation)
	}

	request.Status = target
	request.Outstanding = nil
	return request, nil
}

// ListFriends derives the friend list: every user connected to userID by an
// accepted request in either direction, deduplicated, never the user
// themself.
func (fs *FriendService) ListFriends(userID string) ([]models.User, error) {
	accepted, err := fs.requests.FindAcceptedInvolving(userID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	friendIDs := make([]string, 0, len(accepted))
	for _, request := range accepted {
		counterpart := request.SenderID
		if counterpart == userID {
			counterpart = request.ReceiverID
		}
		if counterpart == userID || seen[counterpart] {
			continue
		}
		seen[counterpart] = true
		friendIDs = append(friendIDs, counterpart)
	}

	return fs.users.FindByIDs(friendIDs)
}

// ListPending returns the requests awaiting an answer from userID.
func (fs *FriendService) ListPending(userID string, page, limit int) ([]models.FriendRequest, int64, error) {
	page, limit = utils.ClampPagination(page, limit, 20)
	return fs.requests.FindByReceiverAndStatus(userID, models.FriendRequestStatusSent, page, limit)
}
