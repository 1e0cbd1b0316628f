package service

import "greenhouse/entities"

type AuthService interface {
	Register(username, email, password string) error
	Verify(email, code string) error
	// Login returns the sanitized user and a signed session token.
	Login(username, password string) (*entities.User, string, error)
	ResendCode(email string) error
	ChangePassword(userID uint, oldPassword, newPassword string) error
	ChangeUsername(userID uint, newUsername string) error
	CheckUsername(username string) (bool, error)
}
