package domain

import (
	"errors"
	"fmt"

	"git.appkode.ru/pub/go/failure"

	"gamedeals/pkg/errcodes"
)

// AppError is a domain error carrying a failure code.
type AppError struct {
	Code    failure.ErrorCode
	Message string
	cause   error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.cause
}

func NewError(code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// WrapError wraps err with a domain code.
func WrapError(err error, code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		cause:   err,
	}
}

// NewNetworkError reports a transport failure or an unexpected status from
// an upstream API.
func NewNetworkError(err error, message string) *AppError {
	return WrapError(err, errcodes.NetworkError, message)
}

// NewDecodeError reports an upstream body that does not match the expected
// shape.
func NewDecodeError(err error, message string) *AppError {
	return WrapError(err, errcodes.DecodeError, message)
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetCode extracts the code of the first AppError in the chain.
func GetCode(err error) (failure.ErrorCode, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}
	return "", false
}

func HasCode(err error, code failure.ErrorCode) bool {
	got, ok := GetCode(err)
	return ok && got == code
}

func IsNetworkError(err error) bool {
	return HasCode(err, errcodes.NetworkError)
}

func IsDecodeError(err error) bool {
	return HasCode(err, errcodes.DecodeError)
}
