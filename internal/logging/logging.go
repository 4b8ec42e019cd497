// Package logging builds the hclog logger shared by the CLI and the
// generator.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/paw-tools/paw/internal/branding"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = hclog.Warn

// New returns a logger writing to w (stderr when nil) at the named level.
// Unknown level names fall back to DefaultLevel. PAW_JSON_LOG=1 switches
// to JSON output.
func New(name, level string, w io.Writer) hclog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      ParseLevel(level),
		JSONFormat: os.Getenv(branding.EnvVar("JSON_LOG")) == "1",
		Output:     w,
		TimeFormat: "2006-01-02T15:04:05Z",
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	})
}

// ParseLevel maps a level name to an hclog level.
func ParseLevel(level string) hclog.Level {
	l := hclog.LevelFromString(strings.TrimSpace(level))
	if l == hclog.NoLevel {
		return DefaultLevel
	}
	return l
}
