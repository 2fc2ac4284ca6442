package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Configuration errors
	ErrCodeConfigNotFound ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  ErrorCode = "CONFIG_INVALID"
	ErrCodeUnknownIDE     ErrorCode = "UNKNOWN_IDE"

	// Scan errors
	ErrCodeBaseUnreadable ErrorCode = "BASE_UNREADABLE"

	// Time window errors
	ErrCodeInvalidWindow ErrorCode = "INVALID_WINDOW"

	// Git errors
	ErrCodeGitNotInstalled     ErrorCode = "GIT_NOT_INSTALLED"
	ErrCodeGitCloneFailed      ErrorCode = "GIT_CLONE_FAILED"
	ErrCodeCloneTargetNotEmpty ErrorCode = "CLONE_TARGET_NOT_EMPTY"

	// IDE launch errors
	ErrCodeIDELaunchFailed ErrorCode = "IDE_LAUNCH_FAILED"

	// Command execution errors
	ErrCodeCommandFailed ErrorCode = "COMMAND_FAILED"

	// General errors
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// GlonError represents a structured error with context
type GlonError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *GlonError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *GlonError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *GlonError) WithDetail(key string, value interface{}) *GlonError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *GlonError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new GlonError
func New(code ErrorCode, message string) *GlonError {
	return &GlonError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a GlonError
func Wrap(err error, code ErrorCode, message string) *GlonError {
	return &GlonError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is checks if an error is a specific GlonError code
func Is(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}

	glonErr, ok := err.(*GlonError)
	if !ok {
		// Try to unwrap
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return Is(unwrapper.Unwrap(), code)
		}
		return false
	}

	return glonErr.Code == code
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}

	glonErr, ok := err.(*GlonError)
	if !ok {
		// Try to unwrap
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return GetCode(unwrapper.Unwrap())
		}
		return ""
	}

	return glonErr.Code
}
