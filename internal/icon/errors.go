package icon

import (
	"errors"
	"fmt"
	"strings"
)

// ErrExternalTool matches every ExternalToolError.
var ErrExternalTool = errors.New("rasterizer failed")

// ExternalToolError reports a rasterizer that is unavailable or failed.
type ExternalToolError struct {
	Tool   string
	Args   []string
	Output string // combined stdout/stderr, trimmed
	Err    error
}

// Error implements the error interface.
func (e *ExternalToolError) Error() string {
	msg := fmt.Sprintf("rasterizer %s", e.Tool)
	if len(e.Args) > 0 {
		msg += " " + strings.Join(e.Args, " ")
	}
	msg += ": " + e.Err.Error()
	if e.Output != "" {
		msg += ": " + e.Output
	}
	return msg
}

// Unwrap exposes ErrExternalTool and the underlying cause.
func (e *ExternalToolError) Unwrap() []error {
	return []error{ErrExternalTool, e.Err}
}
