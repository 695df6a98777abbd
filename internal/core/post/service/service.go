package postapp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"postapi/internal/core/apperr"
	postEntity "postapi/internal/core/post"
	userEntity "postapi/internal/core/user"
	postPort "postapi/internal/ports/post"
	userPort "postapi/internal/ports/user"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

type PostService struct {
	PostRepository postPort.PostRepository
	UserRepository userPort.UserRepository // برای یافتن مالک پست
	Cache          postPort.PostCache
	CacheTTL       time.Duration
	Logger         *zap.Logger
}

func NewPostService(
	postRepo postPort.PostRepository,
	userRepo userPort.UserRepository,
	cache postPort.PostCache,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *PostService {
	return &PostService{
		PostRepository: postRepo,
		UserRepository: userRepo,
		Cache:          cache,
		CacheTTL:       cacheTTL,
		Logger:         logger,
	}
}

// Save ذخیره پست جدید؛ شناسه توسط ذخیره‌ساز ساخته می‌شود
func (s *PostService) Save(ctx context.Context, in postPort.CreatePostInput) (*postPort.PostDTO, error) {
	p := &postEntity.Post{
		Title:   in.Title,
		Summary: in.Summary,
		Content: in.Content,
	}

	if in.UserID != nil {
		owner, err := s.UserRepository.FindByID(ctx, *in.UserID)
		if errors.Is(err, userEntity.ErrNotFound) {
			return nil, apperr.Validation("User with UUID: %s does not exist.", *in.UserID)
		}
		if err != nil {
			return nil, fmt.Errorf("lookup owner: %w", err)
		}
		p.UserID = &owner.ID
		p.User = owner
	}

	created, err := s.PostRepository.Create(ctx, p)
	if err != nil {
		s.Logger.Error("❌ Failed to create post", zap.Error(err))
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.Logger.Info("✅ Created post", zap.String("postID", created.ID.String()))
	return postPort.NewPostDTO(created), nil
}

// FindAll همه پست‌ها؛ کش فقط برای پست‌های تکی استفاده می‌شود
func (s *PostService) FindAll(ctx context.Context) ([]*postPort.PostDTO, error) {
	posts, err := s.PostRepository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	dtos := make([]*postPort.PostDTO, 0, len(posts))
	for _, p := range posts {
		dtos = append(dtos, postPort.NewPostDTO(p))
	}
	return dtos, nil
}

func (s *PostService) FindByID(ctx context.Context, id uuid.UUID) (*postPort.PostDTO, error) {
	cached, err := s.Cache.Get(ctx, id)
	if err != nil {
		s.Logger.Warn("⚠️ Warning: could not read post cache", zap.String("postID", id.String()), zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	p, err := s.findPost(ctx, id, "Post with UUID: %s is not found.")
	if err != nil {
		return nil, err
	}

	dto := postPort.NewPostDTO(p)
	if err := s.Cache.Set(ctx, dto, s.CacheTTL); err != nil {
		s.Logger.Warn("⚠️ Warning: could not cache post", zap.String("postID", id.String()), zap.Error(err))
	}
	return dto, nil
}

// FindOwnerByPostID مالک پست؛ نبودن پست قبل از هر دسترسی به مالک بررسی می‌شود
func (s *PostService) FindOwnerByPostID(ctx context.Context, id uuid.UUID) (*userPort.UserDTO, error) {
	p, err := s.findPost(ctx, id, "Post with UUID: %s is not found.")
	if err != nil {
		return nil, err
	}

	if p.UserID == nil {
		return nil, apperr.NotFound("Owner of post with UUID: %s is not found.", id)
	}
	if p.User != nil {
		return userPort.NewUserDTO(p.User), nil
	}

	owner, err := s.UserRepository.FindByID(ctx, *p.UserID)
	if errors.Is(err, userEntity.ErrNotFound) {
		return nil, apperr.NotFound("Owner of post with UUID: %s is not found.", id)
	}
	if err != nil {
		return nil, fmt.Errorf("lookup owner of post %s: %w", id, err)
	}
	return userPort.NewUserDTO(owner), nil
}

func (s *PostService) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if _, err := s.findPost(ctx, id, "Post with UUID: %s does not exist."); err != nil {
		return err
	}

	err := s.PostRepository.DeleteByID(ctx, id)
	if errors.Is(err, postEntity.ErrNotFound) {
		return apperr.NotFound("Post with UUID: %s does not exist.", id)
	}
	if err != nil {
		return fmt.Errorf("failed to delete post %s: %w", id, err)
	}

	// کش بعد از حذف ردیف پاک می‌شود؛ شکست آن خطاست چون نسخهٔ کهنه قابل خواندن می‌ماند
	if err := s.Cache.Delete(ctx, id); err != nil {
		s.Logger.Error("❌ Failed to evict deleted post from cache", zap.String("postID", id.String()), zap.Error(err))
		return fmt.Errorf("failed to evict post %s from cache: %w", id, err)
	}

	s.Logger.Info("🗑️ Deleted post", zap.String("postID", id.String()))
	return nil
}

func (s *PostService) findPost(ctx context.Context, id uuid.UUID, notFoundFormat string) (*postEntity.Post, error) {
	p, err := s.PostRepository.FindByID(ctx, id)
	if errors.Is(err, postEntity.ErrNotFound) {
		return nil, apperr.NotFound(notFoundFormat, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find post %s: %w", id, err)
	}
	return p, nil
}
