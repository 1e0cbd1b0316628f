package repository

import "greenhouse/entities"

type UserRepository interface {
	Create(u *entities.User) error
	FindByID(id uint) (*entities.User, error)
	FindByUsername(username string) (*entities.User, error)
	FindByEmail(email string) (*entities.User, error)
	UsernameOrEmailTaken(username, email string) (bool, error)
	UsernameTakenByOther(username string, id uint) (bool, error)
	UsernameExists(username string) (bool, error)
	// MarkVerified flips is_verified and clears the stale code.
	MarkVerified(email string) error
	SetVerificationCode(email, code string) error
	UpdatePassword(id uint, hash string) error
	UpdateUsername(id uint, username string) error
}
