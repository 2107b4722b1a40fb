package errors

import (
	"errors"
	"fmt"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context, preserving the code of an
// inner AppError
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   err,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WithCode attaches an error code to an existing error
func WithCode(code string, err error) error {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:    code,
		Message: err.Error(),
		Cause:   err,
	}
}

// GetCode returns the error code if it's an AppError, otherwise "UNKNOWN"
func GetCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return "UNKNOWN"
}

// IsCode reports whether err carries the given code anywhere in its chain
func IsCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// Predefined error codes
const (
	CodeLoadError          = "LOAD_ERROR"
	CodeUnsupportedFormat  = "UNSUPPORTED_FORMAT"
	CodeNetworkError       = "NETWORK_ERROR"
	CodeInsightUnavailable = "INSIGHT_UNAVAILABLE"
	CodeConfigInvalid      = "CONFIG_INVALID"
	CodeInternalError      = "INTERNAL_ERROR"
)

// Common error constructors

// LoadError marks malformed or empty tabular input
func LoadError(message string) *AppError {
	return New(CodeLoadError, message)
}

// UnsupportedFormat marks an unrecognized file type
func UnsupportedFormat(filename string) *AppError {
	return New(CodeUnsupportedFormat, fmt.Sprintf("unsupported file type: %s (use .csv or .xlsx)", filename))
}

// NetworkError marks an unreachable remote source
func NetworkError(message string, cause error) *AppError {
	return &AppError{Code: CodeNetworkError, Message: message, Cause: cause}
}

// InsightUnavailable marks a non-fatal insight failure; callers degrade
// to placeholder text
func InsightUnavailable(cause error) *AppError {
	return &AppError{Code: CodeInsightUnavailable, Message: "insight generation unavailable", Cause: cause}
}

// ConfigInvalid marks a configuration problem
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}
