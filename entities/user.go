package entities

import "time"

type User struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Username         string    `gorm:"uniqueIndex;not null" json:"username"`
	Email            string    `gorm:"uniqueIndex;not null" json:"email"`
	Password         string    `gorm:"not null" json:"-"`
	IsVerified       bool      `json:"is_verified"`
	VerificationCode *string   `json:"-"`
	CreatedAt        time.Time `json:"created_at"`
}
