package models

import "time"

type FriendRequestStatus string

const (
	FriendRequestStatusSent     FriendRequestStatus = "sent"
	FriendRequestStatusAccepted FriendRequestStatus = "accepted"
	FriendRequestStatusRejected FriendRequestStatus = "rejected"
)

// FriendRequest is the only stored relationship entity. Friendship is derived:
// two users are friends iff an accepted request exists between them in either
// direction.
//
// Outstanding is 1 while Status is "sent" and NULL once the request reaches a
// terminal state. The composite unique index on (sender_id, receiver_id,
// outstanding) therefore allows any number of terminal requests per pair but
// at most one outstanding one, enforced by the database rather than by a
// check-then-act sequence.
type FriendRequest struct {
	ID          uint                `json:"id" gorm:"primaryKey"`
	SenderID    string              `json:"sender_id" gorm:"not null;size:191;uniqueIndex:uk_friend_requests_outstanding"`
	ReceiverID  string              `json:"receiver_id" gorm:"not null;size:191;uniqueIndex:uk_friend_requests_outstanding"`
	Status      FriendRequestStatus `json:"status" gorm:"not null;default:'sent';size:20"`
	Outstanding *uint8              `json:"-" gorm:"uniqueIndex:uk_friend_requests_outstanding"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`

	Sender   User `json:"sender" gorm:"foreignKey:SenderID"`
	Receiver User `json:"receiver" gorm:"foreignKey:ReceiverID"`
}

// OutstandingFlag is the Outstanding column value for a request in the sent
// state.
func OutstandingFlag() *uint8 {
	one := uint8(1)
	return &one
}
