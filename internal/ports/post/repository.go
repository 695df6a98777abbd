package post

import (
	"context"
	"time"

	"postapi/internal/core/post"
	userPort "postapi/internal/ports/user"

	"github.com/gofrs/uuid"
)

// PostRepository پورت برای ذخیره‌سازی و بازیابی پست‌ها
type PostRepository interface {
	Create(ctx context.Context, post *post.Post) (*post.Post, error)
	FindByID(ctx context.Context, id uuid.UUID) (*post.Post, error)
	FindAll(ctx context.Context) ([]*post.Post, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// PostCache کش نمای پست‌ها؛ miss با (nil, nil) برمی‌گردد
type PostCache interface {
	Get(ctx context.Context, id uuid.UUID) (*PostDTO, error)
	Set(ctx context.Context, dto *PostDTO, ttl time.Duration) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreatePostInput ورودی ساخت پست؛ شناسه را ذخیره‌ساز می‌سازد
type CreatePostInput struct {
	Title   string
	Summary string
	Content string
	UserID  *uuid.UUID
}

// PostDTO نمای خروجی پست با پنج فیلد مجاز
type PostDTO struct {
	Identifier string            `json:"identifier"`
	Title      string            `json:"title"`
	Summary    string            `json:"summary"`
	Content    string            `json:"content"`
	User       *userPort.UserDTO `json:"user"`
}

func NewPostDTO(p *post.Post) *PostDTO {
	return &PostDTO{
		Identifier: p.ID.String(),
		Title:      p.Title,
		Summary:    p.Summary,
		Content:    p.Content,
		User:       userPort.NewUserDTO(p.User),
	}
}
