// Package gen synthesizes Go source for annotated enums.
package gen

import (
	"errors"
	"strings"
)

// Sentinel errors for generation failures.
var (
	// ErrGenerationFailed indicates a code generation failure.
	ErrGenerationFailed = errors.New("strum: code generation failed")
	// ErrUnsupportedCapability indicates a capability the enum's shape
	// cannot support.
	ErrUnsupportedCapability = errors.New("strum: unsupported capability")
)

// GenerateError reports a failure while emitting code for one enum.
type GenerateError struct {
	Enum       string
	Capability string
	Message    string
	Cause      error
}

// Error implements the error interface.
func (e *GenerateError) Error() string {
	var b strings.Builder
	b.WriteString("strum: generating ")
	b.WriteString(e.Enum)
	if e.Capability != "" {
		b.WriteString(" capability ")
		b.WriteString(e.Capability)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerateError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the generation sentinel.
func (e *GenerateError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerateError creates a new GenerateError.
func NewGenerateError(enum, capability, message string, cause error) *GenerateError {
	return &GenerateError{Enum: enum, Capability: capability, Message: message, Cause: cause}
}
