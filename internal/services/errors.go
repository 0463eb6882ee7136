package services

import (
	"errors"
	"fmt"
)

var ErrQuizNotFound = errors.New("quiz not found")

type notFoundError struct {
	id string
}

func (e *notFoundError) Error() string {
	return fmt.Sprintf("Quiz with ID %s not found", e.id)
}

func (e *notFoundError) Is(target error) bool {
	return target == ErrQuizNotFound
}

func quizNotFound(id string) error {
	return &notFoundError{id: id}
}

// ValidationError is returned for input the store must never see.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalidf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
