package repository

import (
	"time"

	"greenhouse/entities"
)

// CommentRow is a comment joined with the commenter's username.
type CommentRow struct {
	ID          uint      `json:"id"`
	PlantInfoID uint      `json:"plant_info_id"`
	UserID      uint      `json:"user_id"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
	Username    string    `json:"username"`
}

type PlantRepository interface {
	List() ([]entities.PlantInfo, error)
	Create(p *entities.PlantInfo) error
	Comments(plantInfoID uint) ([]CommentRow, error)
	AddComment(cm *entities.PlantComment) error
}
