package errors

import "fmt"

const (
	CodeNotFound   = "not_found"
	CodeBadRequest = "bad_request"
	CodeConflict   = "conflict"
	CodeInternal   = "internal_error"
)

// AppError is the only error type the usecases hand to the delivery layer.
// Err keeps the underlying cause for logging and is never sent to clients.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

var (
	ErrNotFound = func(format string, args ...any) *AppError {
		return &AppError{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
	}
	ErrBadRequest = func(format string, args ...any) *AppError {
		return &AppError{Code: CodeBadRequest, Message: fmt.Sprintf(format, args...)}
	}
	ErrConflict = func(format string, args ...any) *AppError {
		return &AppError{Code: CodeConflict, Message: fmt.Sprintf(format, args...)}
	}
	ErrInternal = func(message string, err error) *AppError {
		return &AppError{Code: CodeInternal, Message: message, Err: err}
	}
)
