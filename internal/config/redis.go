package config

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisClient متغیر برای دسترسی به Redis؛ وقتی REDIS_ADDR خالی است nil می‌ماند
var RedisClient *redis.Client

// InitRedis اتصال به Redis را راه‌اندازی می‌کند
func InitRedis(cfg *Config) {
	if cfg.RedisAddr == "" {
		return
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// بررسی اتصال به Redis
	s, err := RedisClient.Ping(ctx).Result()
	if err != nil {
		Logger.Fatal("Error connecting to Redis:", zap.Error(err))
	}
	Logger.Info("✅ Connected to Redis", zap.String("ping", s), zap.String("addr", cfg.RedisAddr))
}
