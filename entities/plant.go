package entities

import "time"

type PlantInfo struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"not null" json:"content"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

func (PlantInfo) TableName() string { return "plant_info" }

type PlantComment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PlantInfoID uint      `gorm:"index" json:"plant_info_id"`
	UserID      uint      `gorm:"index" json:"user_id"`
	Content     string    `gorm:"not null" json:"content"`
	CreatedAt   time.Time `json:"created_at"`
}

func (PlantComment) TableName() string { return "plant_info_comments" }
