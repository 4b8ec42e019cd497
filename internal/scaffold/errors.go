package scaffold

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks.
var (
	ErrTemplate   = errors.New("template error")
	ErrFilesystem = errors.New("filesystem error")
)

// TemplateError reports a placeholder that cannot be substituted. Key is
// empty for a malformed placeholder.
type TemplateError struct {
	Template string
	Key      string
	Line     int
	Column   int
}

// Error implements the error interface.
func (e *TemplateError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("template %s: invalid placeholder at line %d, column %d", e.Template, e.Line, e.Column)
	}
	return fmt.Sprintf("template %s: no value for placeholder ${%s} at line %d, column %d", e.Template, e.Key, e.Line, e.Column)
}

// Unwrap returns ErrTemplate.
func (e *TemplateError) Unwrap() error { return ErrTemplate }

// FilesystemError reports a failed directory, write, copy or remove step.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface.
func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes ErrFilesystem and the underlying cause.
func (e *FilesystemError) Unwrap() []error {
	return []error{ErrFilesystem, e.Err}
}
