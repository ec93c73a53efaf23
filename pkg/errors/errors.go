package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures preset validation issues. Field is the dotted path
// of the offending value, e.g. "components[0].styles[1]".
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ExpressionError reports a chain expression that could not be evaluated.
// Step is the identifier that failed and Index its zero-based position in
// the chain (-1 when the whole expression is at fault).
type ExpressionError struct {
	Expr    string
	Step    string
	Index   int
	Message string
	Err     error
}

// NewExpressionError constructs an ExpressionError.
func NewExpressionError(expr, step string, index int, message string) error {
	return &ExpressionError{Expr: expr, Step: step, Index: index, Message: message}
}

func (e *ExpressionError) Error() string {
	if e == nil {
		return ""
	}
	if e.Step != "" {
		return fmt.Sprintf("expression error: %q: step %d %q: %s", e.Expr, e.Index, e.Step, e.Message)
	}
	return fmt.Sprintf("expression error: %q: %s", e.Expr, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ExpressionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RegistryError indicates a problem registering or resolving a concern factory.
type RegistryError struct {
	Concern string
	Message string
	Err     error
}

// NewRegistryError constructs a RegistryError for the given concern.
func NewRegistryError(concern string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &RegistryError{Concern: concern, Message: message, Err: err}
}

func (e *RegistryError) Error() string {
	if e == nil {
		return ""
	}
	if e.Concern != "" {
		return fmt.Sprintf("registry error [%s]: %s", e.Concern, e.Message)
	}
	return fmt.Sprintf("registry error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *RegistryError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
