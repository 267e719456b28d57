// File: /models/user.go
package models

import (
	"strings"
	"time"
)

type User struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null;size:255"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null;size:255"` // stored lowercased
	Password  string    `json:"-" gorm:"not null;size:255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	SentRequests     []FriendRequest `json:"-" gorm:"foreignKey:SenderID"`
	ReceivedRequests []FriendRequest `json:"-" gorm:"foreignKey:ReceiverID"`
}

// NormalizeEmail lowercases an email address for storage and comparison.
// Uniqueness is enforced on the normalized form, not the raw input.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
