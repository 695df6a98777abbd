package user

import (
	"errors"
	"time"

	"github.com/gofrs/uuid"
)

// ErrNotFound کاربر با این شناسه در ذخیره‌ساز نیست
var ErrNotFound = errors.New("user not found")

// ErrUsernameTaken درج با یوزرنیم تکراری به ایندکس یکتا خورده است
var ErrUsernameTaken = errors.New("username already taken")

type User struct {
	ID        uuid.UUID  `gorm:"primary_key;type:char(36)"`
	Name      string     `gorm:"not null"`
	Username  string     `gorm:"unique;not null"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
	DeletedAt *time.Time `gorm:"index"`
}
