package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	postPort "postapi/internal/ports/post"

	"github.com/go-redis/redis/v8"
	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

type PostCacheRedis struct {
	Client *redis.Client
	Logger *zap.Logger
}

func NewPostCacheRedis(client *redis.Client, logger *zap.Logger) *PostCacheRedis {
	return &PostCacheRedis{
		Client: client,
		Logger: logger,
	}
}

func postKey(id uuid.UUID) string {
	return "post:" + id.String()
}

// Get خواندن نمای پست از کش؛ در صورت miss مقدار nil بدون خطا برمی‌گردد
func (r *PostCacheRedis) Get(ctx context.Context, id uuid.UUID) (*postPort.PostDTO, error) {
	raw, err := r.Client.Get(ctx, postKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", postKey(id), err)
	}

	var dto postPort.PostDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return nil, fmt.Errorf("decode cached post %s: %w", id, err)
	}
	r.Logger.Debug("Post cache hit", zap.String("postID", id.String()))
	return &dto, nil
}

func (r *PostCacheRedis) Set(ctx context.Context, dto *postPort.PostDTO, ttl time.Duration) error {
	id, err := uuid.FromString(dto.Identifier)
	if err != nil {
		return fmt.Errorf("invalid post identifier %q: %w", dto.Identifier, err)
	}

	raw, err := json.Marshal(dto)
	if err != nil {
		return fmt.Errorf("encode post %s: %w", id, err)
	}

	if err := r.Client.Set(ctx, postKey(id), raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", postKey(id), err)
	}
	return nil
}

func (r *PostCacheRedis) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.Client.Del(ctx, postKey(id)).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", postKey(id), err)
	}
	return nil
}

// NoopPostCache وقتی Redis پیکربندی نشده استفاده می‌شود
type NoopPostCache struct{}

func (NoopPostCache) Get(context.Context, uuid.UUID) (*postPort.PostDTO, error) { return nil, nil }

func (NoopPostCache) Set(context.Context, *postPort.PostDTO, time.Duration) error { return nil }

func (NoopPostCache) Delete(context.Context, uuid.UUID) error { return nil }
