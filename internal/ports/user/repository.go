package user

import (
	"context"

	"postapi/internal/core/user"

	"github.com/gofrs/uuid"
)

// UserRepository پورت برای ذخیره‌سازی و بازیابی کاربران
type UserRepository interface {
	Create(ctx context.Context, user *user.User) (*user.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByUsername(ctx context.Context, username string) (*user.User, error)
}

// UserDTO نمای خروجی کاربر؛ فقط همین فیلدها سریالایز می‌شوند
type UserDTO struct {
	Identifier string `json:"identifier"`
	Name       string `json:"name"`
	Username   string `json:"username"`
}

func NewUserDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		Identifier: u.ID.String(),
		Name:       u.Name,
		Username:   u.Username,
	}
}
