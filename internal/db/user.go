package db

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User 是可以登录编辑后台的管理员账号。
type User struct {
	gorm.Model
	Username string `gorm:"unique;not null"`
	Password string `gorm:"not null"`
}

// ErrUserExists is returned by EnsureUser when the username is already taken.
var ErrUserExists = errors.New("user already exists")

// EnsureUser 若用户名与密码均非空且账号不存在，则创建一个 bcrypt 哈希的用户。
// 账号已存在时返回 ErrUserExists。
func EnsureUser(gdb *gorm.DB, username, password string) error {
	trimmedUser := strings.TrimSpace(username)
	trimmedPassword := strings.TrimSpace(password)
	if trimmedUser == "" || trimmedPassword == "" {
		return nil
	}

	if gdb == nil {
		return errors.New("database not initialized")
	}

	var existing User
	if err := gdb.Where("username = ?", trimmedUser).First(&existing).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(trimmedPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		return gdb.Create(&User{Username: trimmedUser, Password: string(hashed)}).Error
	}

	return ErrUserExists
}
