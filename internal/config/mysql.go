package config

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DB متغیر برای دسترسی به دیتابیس
var DB *gorm.DB

// InitDB اتصال به دیتابیس MySQL را راه‌اندازی می‌کند
func InitDB(dsn string) {
	var err error
	DB, err = OpenDB(dsn)
	if err != nil {
		Logger.Fatal("Error connecting to the database:", zap.Error(err))
	}
	Logger.Info("✅ Database connected")
}

// OpenDB یک اتصال gorm روی درایور MySQL باز می‌کند
func OpenDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		TranslateError: true, // خطای کلید تکراری به gorm.ErrDuplicatedKey تبدیل می‌شود
	})
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	return db, nil
}
