package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"greenhouse/entities"
	"greenhouse/pkg/friend/repository"
)

type friendRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FriendRepository { return &friendRepo{db} }

func (r *friendRepo) UserIDByUsername(username string) (uint, bool, error) {
	var u entities.User
	err := r.db.Select("id").Where("username = ?", username).Take(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return u.ID, true, nil
}

func (r *friendRepo) EdgeExists(a, b uint) (bool, error) {
	var n int64
	err := r.db.Model(&entities.Friend{}).
		Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)", a, b, b, a).
		Count(&n).Error
	return n > 0, err
}

func (r *friendRepo) CreatePending(userID, friendID uint) error {
	return r.db.Create(&entities.Friend{
		UserID:   userID,
		FriendID: friendID,
		Status:   entities.FriendPending,
	}).Error
}

func (r *friendRepo) Accept(requestID, recipientID uint) (int64, error) {
	res := r.db.Model(&entities.Friend{}).
		Where("id = ? AND friend_id = ? AND status = ?", requestID, recipientID, entities.FriendPending).
		Update("status", entities.FriendAccepted)
	return res.RowsAffected, res.Error
}

func (r *friendRepo) Accepted(userID uint) ([]repository.FriendUser, error) {
	var out []repository.FriendUser
	err := r.db.Raw(`
		SELECT u.id, u.username
		FROM users u
		JOIN friends f ON (u.id = f.friend_id AND f.user_id = ?)
		              OR (u.id = f.user_id AND f.friend_id = ?)
		WHERE f.status = ?`, userID, userID, entities.FriendAccepted).Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *friendRepo) PendingIncoming(userID uint) ([]repository.PendingRow, error) {
	var out []repository.PendingRow
	err := r.db.Raw(`
		SELECT u.id, u.username, f.id AS request_id
		FROM users u
		JOIN friends f ON u.id = f.user_id
		WHERE f.friend_id = ? AND f.status = ?`, userID, entities.FriendPending).Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *friendRepo) PendingOutgoing(userID uint) ([]repository.PendingRow, error) {
	var out []repository.PendingRow
	err := r.db.Raw(`
		SELECT u.id, u.username, f.id AS request_id
		FROM users u
		JOIN friends f ON u.id = f.friend_id
		WHERE f.user_id = ? AND f.status = ?`, userID, entities.FriendPending).Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *friendRepo) DeleteEdge(userID, friendID uint) error {
	return r.db.
		Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
			userID, friendID, friendID, userID).
		Delete(&entities.Friend{}).Error
}
