package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger لاگ هر درخواست با zap پس از پایان پردازش
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("clientIP", c.ClientIP()),
		}

		switch {
		case len(c.Errors) > 0:
			logger.Error("❌ Request failed", append(fields, zap.String("errors", c.Errors.String()))...)
		case c.Writer.Status() >= http.StatusInternalServerError:
			logger.Error("❌ Request failed", fields...)
		default:
			logger.Info("➡️ Request handled", fields...)
		}
	}
}

// Recovery جایگزین gin.Recovery با لاگ zap؛ پاسخ 500 برمی‌گرداند
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("🔥 Panic recovered",
					zap.Any("panic", rec),
					zap.String("path", c.Request.URL.Path),
					zap.ByteString("stack", debug.Stack()),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			}
		}()
		c.Next()
	}
}
