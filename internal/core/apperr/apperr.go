package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound ریشهٔ همه خطاهای «پیدا نشد»
	ErrNotFound = errors.New("not found")
	// ErrValidation ریشهٔ همه خطاهای ورودی نامعتبر
	ErrValidation = errors.New("validation failed")
)

// NotFoundError منبع درخواستی وجود ندارد (HTTP 404)
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ValidationError ورودی از نظر ساختاری معتبر نیست (HTTP 400)
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func NotFound(format string, args ...any) error {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
