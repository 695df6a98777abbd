package database

import (
	"context"
	"errors"
	"fmt"

	"postapi/internal/core/post"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

// PostRepositoryDatabase پیاده‌سازی PostRepository برای دیتابیس
type PostRepositoryDatabase struct {
	db *gorm.DB
}

// NewPostRepositoryDatabase سازنده PostRepositoryDatabase
func NewPostRepositoryDatabase(db *gorm.DB) *PostRepositoryDatabase {
	return &PostRepositoryDatabase{db: db}
}

// Create درج پست؛ اگر شناسه خالی باشد UUID تازه ساخته می‌شود
func (repo *PostRepositoryDatabase) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	if p.ID == uuid.Nil {
		id, err := uuid.NewV4()
		if err != nil {
			return nil, fmt.Errorf("generate post id: %w", err)
		}
		p.ID = id
	}

	if err := repo.db.WithContext(ctx).Omit("User").Create(p).Error; err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}
	return p, nil
}

func (repo *PostRepositoryDatabase) FindByID(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	var p post.Post
	if err := repo.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, post.ErrNotFound
		}
		return nil, fmt.Errorf("find post %s: %w", id, err)
	}
	return &p, nil
}

// FindAll همه پست‌ها به ترتیب ذخیره‌ساز؛ نتیجه خالی یک slice خالی است
func (repo *PostRepositoryDatabase) FindAll(ctx context.Context) ([]*post.Post, error) {
	posts := []*post.Post{}
	if err := repo.db.WithContext(ctx).Preload("User").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("find posts: %w", err)
	}
	return posts, nil
}

func (repo *PostRepositoryDatabase) DeleteByID(ctx context.Context, id uuid.UUID) error {
	res := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&post.Post{})
	if res.Error != nil {
		return fmt.Errorf("delete post %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return post.ErrNotFound
	}
	return nil
}
