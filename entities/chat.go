package entities

import "time"

type ChatMessage struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SenderID   uint      `gorm:"index" json:"sender_id"`
	ReceiverID uint      `gorm:"index" json:"receiver_id"`
	Content    string    `gorm:"not null" json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}
