package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort     = "8080"
	defaultCacheTTL = 300 * time.Second
)

// Config تنظیمات برنامه که از .env و متغیرهای محیطی خوانده می‌شود
type Config struct {
	AppPort       string
	AppEnv        string
	DBDSN         string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration
	PublicBaseURL string
}

// Cfg تنظیمات بارگذاری‌شده توسط Init
var Cfg *Config

// Init بارگذاری .env و خواندن تنظیمات؛ نبودن DB_DSN خطای fatal است
func Init() *Config {
	if err := godotenv.Load(); err != nil {
		Logger.Info("No .env file found, using system environment variables")
	}

	cfg, err := Load()
	if err != nil {
		Logger.Fatal(err.Error())
	}

	if cfg.RedisAddr == "" {
		Logger.Info("REDIS_ADDR is not set, post cache disabled")
	}

	Cfg = cfg
	return cfg
}

// Load تنظیمات را فقط از متغیرهای محیطی می‌خواند
func Load() (*Config, error) {
	cfg := &Config{
		AppPort:       os.Getenv("APP_PORT"),
		AppEnv:        appEnv(),
		DBDSN:         os.Getenv("DB_DSN"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		CacheTTL:      defaultCacheTTL,
		PublicBaseURL: strings.TrimRight(os.Getenv("PUBLIC_BASE_URL"), "/"),
	}

	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is not set")
	}

	if cfg.AppPort == "" {
		cfg.AppPort = defaultPort
	}

	if v := os.Getenv("REDIS_DB"); v != "" {
		redisDB, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB %q: %w", v, err)
		}
		cfg.RedisDB = redisDB
	}

	if v := os.Getenv("CACHE_TTL_SECONDS"); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil || seconds <= 0 {
			return nil, fmt.Errorf("invalid CACHE_TTL_SECONDS %q", v)
		}
		cfg.CacheTTL = time.Duration(seconds) * time.Second
	}

	return cfg, nil
}

func appEnv() string {
	if env := os.Getenv("APP_ENV"); env != "" {
		return env
	}
	return "development"
}
