package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	dbadapter "postapi/internal/adapters/database"
	"postapi/internal/adapters/httpapi"
	redisadapter "postapi/internal/adapters/redis"
	"postapi/internal/config"
	"postapi/internal/core/post"
	postapp "postapi/internal/core/post/service"
	"postapi/internal/core/user"
	userapp "postapi/internal/core/user/service"
	postPort "postapi/internal/ports/post"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.InitLogger()
	defer config.Logger.Sync() // flush buffer

	cfg := config.Init() // بارگذاری تنظیمات از .env

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// اتصال به دیتابیس و اجرای مایگریشن‌ها
	config.InitDB(cfg.DBDSN)

	if err := config.DB.AutoMigrate(
		&user.User{},
		&post.Post{},
	); err != nil {
		config.Logger.Fatal("Error during migrations:", zap.Error(err))
	}
	config.Logger.Info("✅ Database migrations completed")

	// اتصال به Redis (اختیاری)
	config.InitRedis(cfg)

	// بستن منابع بعد از اتمام کار سرور
	defer closeResources(config.Logger)

	var postCache postPort.PostCache = redisadapter.NoopPostCache{}
	if config.RedisClient != nil {
		postCache = redisadapter.NewPostCacheRedis(config.RedisClient, config.Logger)
	}

	userRepo := dbadapter.NewUserRepositoryDatabase(config.DB)                                    // آداپتر خروجی
	postRepo := dbadapter.NewPostRepositoryDatabase(config.DB)                                    // آداپتر خروجی
	userSvc := userapp.NewUserService(userRepo, config.Logger)                                    // یوزکیس/سرویس
	postSvc := postapp.NewPostService(postRepo, userRepo, postCache, cfg.CacheTTL, config.Logger) // یوزکیس/سرویس
	r := httpapi.SetupRoutes(postSvc, userSvc, cfg.PublicBaseURL, config.Logger)                  // تزریق یوزکیس به آداپتر ورودی

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		config.Logger.Info("🚀 App is running...", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			config.Logger.Fatal("Server failed to start:", zap.Error(err))
		}
	}()

	<-ctx.Done()
	config.Logger.Info("🛑 Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		config.Logger.Error("Error during server shutdown:", zap.Error(err))
	}
}

// closeResources بستن اتصالات به Redis و دیتابیس
func closeResources(logger *zap.Logger) {
	if config.RedisClient != nil {
		if err := config.RedisClient.Close(); err != nil {
			logger.Error("Error closing Redis connection:", zap.Error(err))
		}
	}

	sqlDB, err := config.DB.DB() // گرفتن *sql.DB از *gorm.DB
	if err != nil {
		logger.Error("Error getting raw DB:", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection:", zap.Error(err))
	}
}
