package database

import (
	"context"
	"errors"
	"fmt"

	"postapi/internal/core/user"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

// UserRepositoryDatabase پیاده‌سازی UserRepository برای دیتابیس
type UserRepositoryDatabase struct {
	db *gorm.DB
}

// NewUserRepositoryDatabase سازنده UserRepositoryDatabase
func NewUserRepositoryDatabase(db *gorm.DB) *UserRepositoryDatabase {
	return &UserRepositoryDatabase{db: db}
}

func (repo *UserRepositoryDatabase) Create(ctx context.Context, u *user.User) (*user.User, error) {
	if u.ID == uuid.Nil {
		id, err := uuid.NewV4()
		if err != nil {
			return nil, fmt.Errorf("generate user id: %w", err)
		}
		u.ID = id
	}

	if err := repo.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, user.ErrUsernameTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

func (repo *UserRepositoryDatabase) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	var u user.User
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, fmt.Errorf("find user %s: %w", id, err)
	}
	return &u, nil
}

func (repo *UserRepositoryDatabase) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	var u user.User
	if err := repo.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	return &u, nil
}
