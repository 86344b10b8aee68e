package services

import (
	"errors"
	"fmt"
)

var ErrArticleNotFound = errors.New("статья не найдена")

// ValidationError — ошибка валидации с указанием поля, транслируется в 400.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
