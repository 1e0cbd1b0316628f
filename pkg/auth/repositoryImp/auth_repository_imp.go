package repositoryImp

import (
	"greenhouse/entities"
	"greenhouse/pkg/auth/repository"
	"gorm.io/gorm"
)

type userRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.UserRepository { return &userRepo{db} }

func (r *userRepo) Create(u *entities.User) error { return r.db.Create(u).Error }

func (r *userRepo) FindByID(id uint) (*entities.User, error) {
	var u entities.User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) FindByUsername(username string) (*entities.User, error) {
	var u entities.User
	if err := r.db.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) FindByEmail(email string) (*entities.User, error) {
	var u entities.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) UsernameOrEmailTaken(username, email string) (bool, error) {
	var n int64
	err := r.db.Model(&entities.User{}).
		Where("username = ? OR email = ?", username, email).Count(&n).Error
	return n > 0, err
}

func (r *userRepo) UsernameTakenByOther(username string, id uint) (bool, error) {
	var n int64
	err := r.db.Model(&entities.User{}).
		Where("username = ? AND id != ?", username, id).Count(&n).Error
	return n > 0, err
}

func (r *userRepo) UsernameExists(username string) (bool, error) {
	var n int64
	err := r.db.Model(&entities.User{}).Where("username = ?", username).Count(&n).Error
	return n > 0, err
}

func (r *userRepo) MarkVerified(email string) error {
	return r.db.Model(&entities.User{}).Where("email = ?", email).
		Updates(map[string]any{"is_verified": true, "verification_code": nil}).Error
}

func (r *userRepo) SetVerificationCode(email, code string) error {
	return r.db.Model(&entities.User{}).Where("email = ?", email).
		Update("verification_code", code).Error
}

func (r *userRepo) UpdatePassword(id uint, hash string) error {
	return r.db.Model(&entities.User{}).Where("id = ?", id).
		Update("password", hash).Error
}

func (r *userRepo) UpdateUsername(id uint, username string) error {
	return r.db.Model(&entities.User{}).Where("id = ?", id).
		Update("username", username).Error
}
