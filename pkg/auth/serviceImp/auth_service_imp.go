package serviceImp

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"greenhouse/entities"
	"greenhouse/pkg/apperr"
	"greenhouse/pkg/auth/repository"
	"greenhouse/pkg/auth/service"
	"greenhouse/pkg/mailer"
)

type authService struct {
	repo      repository.UserRepository
	mail      mailer.Mailer
	jwtSecret []byte
}

func New(repo repository.UserRepository, mail mailer.Mailer, jwtSecret string) service.AuthService {
	return &authService{repo: repo, mail: mail, jwtSecret: []byte(jwtSecret)}
}

func newCode() string { return fmt.Sprintf("%06d", rand.Intn(1000000)) }

func (s *authService) Register(username, email, password string) error {
	taken, err := s.repo.UsernameOrEmailTaken(username, email)
	if err != nil {
		return err
	}
	if taken {
		return apperr.Conflict("Username or email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	code := newCode()
	u := &entities.User{Username: username, Email: email, Password: string(hash), VerificationCode: &code}
	if err := s.repo.Create(u); err != nil {
		return err
	}

	// Delivery failure is not a registration failure; the code can be resent.
	if err := s.mail.SendVerificationCode(email, code, false); err != nil {
		log.Printf("[mail] send failed for %s: %v", email, err)
	}
	return nil
}

func (s *authService) Verify(email, code string) error {
	u, err := s.repo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Invalid("Invalid verification code")
		}
		return err
	}
	if u.VerificationCode == nil || *u.VerificationCode != code {
		return apperr.Invalid("Invalid verification code")
	}
	return s.repo.MarkVerified(email)
}

func (s *authService) Login(username, password string) (*entities.User, string, error) {
	u, err := s.repo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperr.Unauthorized("Invalid username or password")
		}
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, "", apperr.Unauthorized("Invalid username or password")
	}
	if !u.IsVerified {
		return nil, "", apperr.Forbidden("Please verify your email address before logging in")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  u.ID,
		"username": u.Username,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	})
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, "", err
	}
	return u, signed, nil
}

func (s *authService) ResendCode(email string) error {
	u, err := s.repo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("User not found")
		}
		return err
	}
	if u.IsVerified {
		return apperr.Invalid("User already verified")
	}

	code := newCode()
	if err := s.repo.SetVerificationCode(email, code); err != nil {
		return err
	}
	if err := s.mail.SendVerificationCode(email, code, true); err != nil {
		log.Printf("[mail] resend failed for %s: %v", email, err)
	}
	return nil
}

func (s *authService) ChangePassword(userID uint, oldPassword, newPassword string) error {
	u, err := s.repo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("User not found")
		}
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(oldPassword)) != nil {
		return apperr.Unauthorized("Incorrect old password")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(userID, string(hash))
}

func (s *authService) ChangeUsername(userID uint, newUsername string) error {
	taken, err := s.repo.UsernameTakenByOther(newUsername, userID)
	if err != nil {
		return err
	}
	if taken {
		return apperr.Conflict("Username already taken")
	}
	return s.repo.UpdateUsername(userID, newUsername)
}

func (s *authService) CheckUsername(username string) (bool, error) {
	return s.repo.UsernameExists(username)
}
