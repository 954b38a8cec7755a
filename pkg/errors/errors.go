package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode classifies an application error
type ErrorCode int

const (
	ErrNotFound ErrorCode = iota + 1000
	ErrValidation
	ErrAuthentication
	ErrConflict
	ErrInternal
)

// AppError represents an application error
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Error constructors
func NotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    ErrNotFound,
		Message: fmt.Sprintf("%s not found", resource),
		Err:     err,
	}
}

func Validation(message string, err error) *AppError {
	return &AppError{
		Code:    ErrValidation,
		Message: message,
		Err:     err,
	}
}

func Authentication(err error) *AppError {
	return &AppError{
		Code:    ErrAuthentication,
		Message: "invalid credentials",
		Err:     err,
	}
}

func Conflict(message string, err error) *AppError {
	return &AppError{
		Code:    ErrConflict,
		Message: message,
		Err:     err,
	}
}

func Internal(err error) *AppError {
	return &AppError{
		Code:    ErrInternal,
		Message: "internal server error",
		Err:     err,
	}
}

// CodeOf extracts the error code from err, or ErrInternal for
// errors outside the taxonomy.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrInternal
}

func IsNotFound(err error) bool       { return CodeOf(err) == ErrNotFound }
func IsValidation(err error) bool     { return CodeOf(err) == ErrValidation }
func IsAuthentication(err error) bool { return CodeOf(err) == ErrAuthentication }
func IsConflict(err error) bool       { return CodeOf(err) == ErrConflict }
