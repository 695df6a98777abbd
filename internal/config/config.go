package config

import (
	"log"

	"go.uber.org/zap"
)

var Logger *zap.Logger

// InitLogger لاگر zap را بر اساس APP_ENV راه‌اندازی می‌کند
func InitLogger() {
	var err error
	// production برای محیط عملیاتی، development برای توسعه
	if appEnv() == "production" {
		Logger, err = zap.NewProduction()
	} else {
		Logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to initialize zap logger: %v", err)
	}

	Logger.Info("✅ Zap logger initialized", zap.String("env", appEnv()))
}
