// Package errors provides the structured error type used across dotspec's
// loader and CLI layers, with category, code and contextual metadata.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeIO         ErrorType = "io"
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeInternal   ErrorType = "internal"
)

// DotspecError is a structured error type with context.
type DotspecError struct {
	Type     ErrorType
	Code     string
	Message  string
	Cause    error
	Context  map[string]any
	FilePath string
	Line     int
}

// Error implements the error interface.
func (e *DotspecError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}
	if e.FilePath != "" {
		location := e.FilePath
		if e.Line > 0 {
			location += fmt.Sprintf(":%d", e.Line)
		}
		parts = append(parts, location)
	}
	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")
	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}
	return result
}

// Unwrap returns the underlying cause error.
func (e *DotspecError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison.
func (e *DotspecError) Is(target error) bool {
	var t *DotspecError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}
	return false
}

// WithContext adds context information to the error.
func (e *DotspecError) WithContext(key string, value any) *DotspecError {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// WithLocation adds file location information.
func (e *DotspecError) WithLocation(filePath string, line int) *DotspecError {
	e.FilePath = filePath
	e.Line = line
	return e
}

// NewValidationError creates a validation error.
func NewValidationError(code, message string) *DotspecError {
	return &DotspecError{Type: ErrorTypeValidation, Code: code, Message: message}
}

// NewIOError creates an I/O error wrapping its cause.
func NewIOError(code, message string, cause error) *DotspecError {
	return &DotspecError{Type: ErrorTypeIO, Code: code, Message: message, Cause: cause}
}

// NewConfigError creates a configuration error.
func NewConfigError(code, message string, cause error) *DotspecError {
	return &DotspecError{Type: ErrorTypeConfig, Code: code, Message: message, Cause: cause}
}

// NewInternalError creates an internal error wrapping its cause.
func NewInternalError(code, message string, cause error) *DotspecError {
	return &DotspecError{Type: ErrorTypeInternal, Code: code, Message: message, Cause: cause}
}
