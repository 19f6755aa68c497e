package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the decoding pipeline. The typed errors below match
// them with errors.Is.
var (
	// ErrFormat is returned when a decoded entry does not have the expected shape
	ErrFormat = errors.New("invalid format")

	// ErrSchema is returned when the input does not match the plan's action layout
	ErrSchema = errors.New("schema mismatch")

	// ErrValidation is returned when a well-formed batch breaks an upgrade plan rule
	ErrValidation = errors.New("validation failed")
)

// FormatError reports an entry whose text does not match its signature
type FormatError struct {
	Kind    ActionKind // empty when the signature could not be determined
	Message string
	Err     error
}

func (e *FormatError) Error() string {
	msg := e.Message
	if e.Kind != "" {
		msg = fmt.Sprintf("%s: %s", e.Kind.Method(), msg)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *FormatError) Unwrap() error { return e.Err }

func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// NewFormatError creates a FormatError with a formatted message
func NewFormatError(kind ActionKind, format string, args ...any) *FormatError {
	return &FormatError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// SchemaError reports an input whose shape does not match the expected layout
type SchemaError struct {
	Expected int
	Actual   int
	Message  string
}

func (e *SchemaError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("invalid upgrade proposal actions: expected %d actions, got %d", e.Expected, e.Actual)
}

func (e *SchemaError) Is(target error) bool { return target == ErrSchema }

// ValidationError reports a broken upgrade plan rule. Action is the 1-based
// action label (e.g. "2.1" for the first target of the second action).
type ValidationError struct {
	Action string
	Rule   string
	Value  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("action %s: %s: %s", e.Action, e.Rule, e.Value)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
