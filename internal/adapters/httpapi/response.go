package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"postapi/internal/core/apperr"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

const relAllPosts = "all-posts"

// Resource پاسخ تک‌منبع همراه با لینک‌های hypermedia (نام رابطه -> URL)
type Resource[T any] struct {
	Data  T                 `json:"data"`
	Links map[string]string `json:"links"`
}

// requestBaseURL آدرس پایه برای Location و لینک‌ها؛ مقدار تنظیم‌شده اولویت دارد
func requestBaseURL(c *gin.Context, configured string) string {
	if configured != "" {
		return configured
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	// فقط http و https از پروکسی پذیرفته می‌شود
	if proto := strings.ToLower(c.GetHeader("X-Forwarded-Proto")); proto == "http" || proto == "https" {
		scheme = proto
	}
	return scheme + "://" + c.Request.Host
}

func parseID(c *gin.Context, kind string) (uuid.UUID, error) {
	raw := c.Param("id")
	id, err := uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, apperr.Validation("invalid %s identifier %q", kind, raw)
	}
	return id, nil
}

// respondError نگاشت خطای دامنه به کد HTTP؛ بقیه خطاها 500 هستند
func respondError(c *gin.Context, err error) {
	var notFound *apperr.NotFoundError
	var invalid *apperr.ValidationError

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Message})
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Message})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
