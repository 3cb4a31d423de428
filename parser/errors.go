// Package parser discovers annotated enums in Go packages and builds
// their descriptors.
package parser

import (
	"errors"
	"strings"
)

// Sentinel errors for descriptor construction and validation failures.
var (
	// ErrInvalidAnnotation indicates a malformed or misplaced annotation.
	ErrInvalidAnnotation = errors.New("strum: invalid annotation")
	// ErrConflictingDefault indicates more than one default variant.
	ErrConflictingDefault = errors.New("strum: conflicting default variants")
	// ErrInvalidDefault indicates a default marker on an unsupported variant shape.
	ErrInvalidDefault = errors.New("strum: invalid default variant")
	// ErrDuplicateAlias indicates the same alias parses to two variants.
	ErrDuplicateAlias = errors.New("strum: duplicate alias")
	// ErrDuplicateProp indicates a repeated property key on one variant.
	ErrDuplicateProp = errors.New("strum: duplicate property key")
	// ErrUnknownCaseStyle indicates an unrecognized serialize_all value.
	ErrUnknownCaseStyle = errors.New("strum: unknown case style")
	// ErrUnknownCapability indicates an unrecognized capability flag.
	ErrUnknownCapability = errors.New("strum: unknown capability")
	// ErrUnsupportedShape indicates a @strum target that is neither a
	// const-backed named type nor a sealed interface.
	ErrUnsupportedShape = errors.New("strum: unsupported enum shape")
	// ErrNoVariants indicates an enum with no discoverable variants.
	ErrNoVariants = errors.New("strum: enum has no variants")
)

// ValidationError reports a descriptor-level failure, pointing at the
// enum, variant and annotation that caused it.
type ValidationError struct {
	Enum       string
	Variant    string
	Annotation string // offending annotation text, when known
	Message    string
	Sentinel   error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("strum: enum ")
	b.WriteString(e.Enum)
	if e.Variant != "" {
		b.WriteString(" variant ")
		b.WriteString(e.Variant)
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Annotation != "" {
		b.WriteString(" (in ")
		b.WriteString(e.Annotation)
		b.WriteString(")")
	}
	return b.String()
}

// Unwrap returns the matching sentinel.
func (e *ValidationError) Unwrap() error {
	return e.Sentinel
}

func newValidationError(sentinel error, enum, variant, annotation, message string) *ValidationError {
	return &ValidationError{
		Enum:       enum,
		Variant:    variant,
		Annotation: annotation,
		Message:    message,
		Sentinel:   sentinel,
	}
}
