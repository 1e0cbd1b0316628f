package repositoryImp

import (
	"gorm.io/gorm"

	"greenhouse/entities"
	"greenhouse/pkg/chat/repository"
)

type chatRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ChatRepository { return &chatRepo{db} }

func (r *chatRepo) UsersExcluding(userID uint) ([]repository.UserSummary, error) {
	var out []repository.UserSummary
	err := r.db.Model(&entities.User{}).
		Select("id, username, email").
		Where("id != ?", userID).
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *chatRepo) Conversation(userID, otherID uint, limit int) ([]repository.MessageRow, error) {
	var out []repository.MessageRow
	err := r.db.Table("chat_messages AS m").
		Select("m.id, m.sender_id, m.receiver_id, m.content, m.created_at, u.username AS sender_name").
		Joins("JOIN users u ON m.sender_id = u.id").
		Where("(m.sender_id = ? AND m.receiver_id = ?) OR (m.sender_id = ? AND m.receiver_id = ?)",
			userID, otherID, otherID, userID).
		Order("m.created_at ASC").
		Limit(limit).
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *chatRepo) Send(m *entities.ChatMessage) error { return r.db.Create(m).Error }
