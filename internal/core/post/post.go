package post

import (
	"errors"
	"time"

	"postapi/internal/core/user"

	"github.com/gofrs/uuid"
)

// ErrNotFound پست با این شناسه در ذخیره‌ساز نیست
var ErrNotFound = errors.New("post not found")

type Post struct {
	ID        uuid.UUID  `gorm:"primary_key;type:char(36)"`
	Title     string     `gorm:"type:varchar(255);not null"`
	Summary   string     `gorm:"type:text"`
	Content   string     `gorm:"type:text;not null"`
	UserID    *uuid.UUID `gorm:"type:char(36);index"`
	User      *user.User `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"` // ارتباط با مدل User
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
	DeletedAt *time.Time `gorm:"index"`
}
