package userapp

import (
	"context"
	"errors"
	"fmt"

	"postapi/internal/core/apperr"
	userEntity "postapi/internal/core/user"
	userPort "postapi/internal/ports/user"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

// UserService سرویس مدیریت کاربران
type UserService struct {
	UserRepository userPort.UserRepository
	Logger         *zap.Logger
}

func NewUserService(repo userPort.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		UserRepository: repo,
		Logger:         logger,
	}
}

// RegisterUser ثبت کاربر جدید
func (s *UserService) RegisterUser(ctx context.Context, name, username string) (*userPort.UserDTO, error) {
	// بررسی اینکه آیا کاربر با این یوزرنیم قبلاً ثبت شده است
	existing, err := s.UserRepository.FindByUsername(ctx, username)
	if err == nil && existing != nil {
		return nil, apperr.Validation("username %q already taken", username)
	}
	if err != nil && !errors.Is(err, userEntity.ErrNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	u, err := s.UserRepository.Create(ctx, &userEntity.User{
		Name:     name,
		Username: username,
	})
	// دو ثبت هم‌زمان از بررسی بالا عبور می‌کنند؛ ایندکس یکتا دومی را رد می‌کند
	if errors.Is(err, userEntity.ErrUsernameTaken) {
		return nil, apperr.Validation("username %q already taken", username)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.Logger.Info("✅ Registered user", zap.String("userID", u.ID.String()), zap.String("username", u.Username))
	return userPort.NewUserDTO(u), nil
}

func (s *UserService) FindByID(ctx context.Context, id uuid.UUID) (*userPort.UserDTO, error) {
	u, err := s.UserRepository.FindByID(ctx, id)
	if errors.Is(err, userEntity.ErrNotFound) {
		return nil, apperr.NotFound("User with UUID: %s is not found.", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user %s: %w", id, err)
	}
	return userPort.NewUserDTO(u), nil
}
