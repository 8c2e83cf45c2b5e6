package core

import (
	"fmt"
	"sort"
	"strings"
)

// Error codes surfaced by the config resolution pipeline.
const (
	ErrCodeStructural  = "STRUCTURAL_ERROR"
	ErrCodeUnsupported = "UNSUPPORTED_CONFIGURATION"
	ErrCodeSemantic    = "SEMANTIC_ERROR"
	ErrCodeConversion  = "CONVERSION_ERROR"
)

// ConfigValidationError is the single error type surfaced to callers at
// config-load time. The message is expected to be specific enough to fix the
// config without reading source: it names the offending field and, where
// applicable, the list of valid alternatives.
type ConfigValidationError struct {
	Code    string
	Message string
}

func (e *ConfigValidationError) Error() string {
	return e.Message
}

// NewError creates a ConfigValidationError with the given code and message.
func NewError(code, message string) *ConfigValidationError {
	return &ConfigValidationError{Code: code, Message: message}
}

// NewErrorf creates a ConfigValidationError with a formatted message.
func NewErrorf(code, format string, args ...any) *ConfigValidationError {
	return &ConfigValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// NewUnsupportedError reports an unregistered type discriminator, enumerating
// the valid alternatives in sorted order.
func NewUnsupportedError(section, name, context string, valid []string) *ConfigValidationError {
	options := make([]string, len(valid))
	copy(options, valid)
	sort.Strings(options)
	if context != "" {
		return NewErrorf(
			ErrCodeUnsupported,
			"%s type '%s' for %s must be one of: [%s]",
			titleCase(section), name, context, strings.Join(options, ", "),
		)
	}
	return NewErrorf(
		ErrCodeUnsupported,
		"%s type '%s' must be one of: [%s]",
		titleCase(section), name, strings.Join(options, ", "),
	)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
