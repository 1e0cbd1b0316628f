package entities

import "time"

// Friend is a directed edge between two users. At most one edge exists per
// unordered pair; status is pending until the recipient accepts. There is no
// rejected state, deleting the edge is the only way back.
type Friend struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	FriendID  uint      `gorm:"index;not null" json:"friend_id"`
	Status    string    `gorm:"index" json:"status"` // pending|accepted
	CreatedAt time.Time `json:"created_at"`
}

const (
	FriendPending  = "pending"
	FriendAccepted = "accepted"
)
