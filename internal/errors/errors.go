// Package errors provides a lightweight structured error type for
// category-based classification in the CLI and build pipeline.
package errors

import "fmt"

// Category classifies a build error for reporting.
type Category string

const (
	CategoryConfig     Category = "config"
	CategoryCatalog    Category = "catalog"
	CategoryCompose    Category = "compose"
	CategoryFileSystem Category = "filesystem"
	CategoryInternal   Category = "internal"
)

// Severity indicates how critical an error is.
type Severity string

const (
	SeverityFatal   Severity = "fatal"   // stops the whole build
	SeverityError   Severity = "error"   // error, but not fatal
	SeverityWarning Severity = "warning" // continues with degraded output
)

// ContextFields carries structured context attached to a BuildError.
type ContextFields map[string]any

// BuildError is a structured error with category, severity and context.
type BuildError struct {
	Category Category      `json:"category"`
	Severity Severity      `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap exposes the cause for errors.Is / errors.As chains.
func (e *BuildError) Unwrap() error {
	return e.Cause
}

// WithContext attaches a context field and returns the error for chaining.
func (e *BuildError) WithContext(key string, value any) *BuildError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a fatal BuildError in the given category.
func New(category Category, message string) *BuildError {
	return &BuildError{Category: category, Severity: SeverityFatal, Message: message}
}

// Wrap creates a fatal BuildError wrapping an existing error.
func Wrap(err error, category Category, message string) *BuildError {
	return &BuildError{Category: category, Severity: SeverityFatal, Message: message, Cause: err}
}

// WithSeverity overrides the severity and returns the error for chaining.
func (e *BuildError) WithSeverity(s Severity) *BuildError {
	e.Severity = s
	return e
}
