package service

import (
	"context"
	"errors"
	"strings"

	"github.com/stylencms/internal/db"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrInvalidCredentials 表示用户名或密码错误。
var ErrInvalidCredentials = errors.New("invalid username or password")

// UserService authenticates editor accounts.
type UserService struct {
	db *gorm.DB
}

// NewUserService returns a UserService.
func NewUserService(gdb *gorm.DB) *UserService {
	return &UserService{db: gdb}
}

// Authenticate checks username and password against the stored bcrypt hash.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*db.User, error) {
	var user db.User
	if err := s.db.WithContext(ctx).Where("username = ?", strings.TrimSpace(username)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// CreateUser adds an editor account. It returns db.ErrUserExists when the
// username is taken.
func (s *UserService) CreateUser(username, password string) error {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return ErrInvalidCredentials
	}
	return db.EnsureUser(s.db, username, password)
}
