package project

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for errors.Is checks.
var (
	// ErrConfig indicates a missing section, a missing required field, or a
	// value that fails schema validation.
	ErrConfig = errors.New("invalid project configuration")

	// ErrInvalidPath indicates a referenced path that cannot be resolved.
	ErrInvalidPath = errors.New("invalid path")
)

// ConfigError describes a configuration problem found before generation starts.
type ConfigError struct {
	Path    string // configuration document, empty for flag input
	Field   string // offending key, if a single one is known
	Message string
	Issues  []ValidationIssue
	Err     error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	var b strings.Builder
	b.WriteString("config")
	if e.Path != "" {
		b.WriteString(" ")
		b.WriteString(e.Path)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, ": field %q", e.Field)
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	if len(e.Issues) > 0 {
		msgs := make([]string, 0, len(e.Issues))
		for _, issue := range e.Issues {
			if issue.Path != "" {
				msgs = append(msgs, issue.Path+": "+issue.Message)
			} else {
				msgs = append(msgs, issue.Message)
			}
		}
		b.WriteString(" (")
		b.WriteString(strings.Join(msgs, "; "))
		b.WriteString(")")
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap exposes ErrConfig and the underlying cause.
func (e *ConfigError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrConfig, e.Err}
	}
	return []error{ErrConfig}
}

// InvalidPathError reports a copy_from or svg_icon path that does not resolve
// to the expected kind of filesystem entry.
type InvalidPathError struct {
	Field string
	Path  string
	Err   error
}

// Error implements the error interface.
func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Field, e.Path, e.Err)
}

// Unwrap exposes ErrInvalidPath and the underlying cause.
func (e *InvalidPathError) Unwrap() []error {
	return []error{ErrInvalidPath, e.Err}
}
