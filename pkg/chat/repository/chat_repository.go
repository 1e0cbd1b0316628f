package repository

import (
	"time"

	"greenhouse/entities"
)

// UserSummary is what the contact list exposes about a user.
type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// MessageRow is a chat message joined with the sender's username.
type MessageRow struct {
	ID         uint      `json:"id"`
	SenderID   uint      `json:"sender_id"`
	ReceiverID uint      `json:"receiver_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	SenderName string    `json:"sender_name"`
}

type ChatRepository interface {
	UsersExcluding(userID uint) ([]UserSummary, error)
	// Conversation matches the pair in both directions, ascending, capped.
	Conversation(userID, otherID uint, limit int) ([]MessageRow, error)
	Send(m *entities.ChatMessage) error
}
