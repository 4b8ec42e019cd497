package icon

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultTool is the external rasterizer used when none is configured.
const DefaultTool = "rsvg-convert"

// defaultArgs holds argument templates for well-known tools, keyed by
// executable base name. Placeholders: {input} {width} {height} {output}.
var defaultArgs = map[string][]string{
	"rsvg-convert": {"-w", "{width}", "-h", "{height}", "-o", "{output}", "{input}"},
	"inkscape":     {"{input}", "--export-type=png", "--export-filename={output}", "-w", "{width}", "-h", "{height}"},
	"magick":       {"-background", "none", "{input}", "-resize", "{width}x{height}", "{output}"},
	"convert":      {"-background", "none", "{input}", "-resize", "{width}x{height}", "{output}"},
}

// DefaultArgs returns the argument template for a tool, falling back to the
// rsvg-convert convention for unknown tools.
func DefaultArgs(tool string) []string {
	name := strings.TrimSuffix(filepath.Base(tool), ".exe")
	if args, ok := defaultArgs[name]; ok {
		return args
	}
	return defaultArgs[DefaultTool]
}

// CommandRasterizer runs an external rasterization tool. Arguments are passed
// as a list, never through a shell.
type CommandRasterizer struct {
	Path string   // executable name or path; DefaultTool when empty
	Args []string // argument template; DefaultArgs(Path) when empty
}

// Rasterize runs the tool once and fails on a non-zero exit status or when
// the tool exits without writing dst.
func (r *CommandRasterizer) Rasterize(ctx context.Context, src string, width, height int, dst string) error {
	tool := r.Path
	if tool == "" {
		tool = DefaultTool
	}

	bin, err := exec.LookPath(tool)
	if err != nil {
		return &ExternalToolError{Tool: tool, Err: err}
	}

	tmpl := r.Args
	if len(tmpl) == 0 {
		tmpl = DefaultArgs(tool)
	}
	args := ExpandArgs(tmpl, src, width, height, dst)

	// A stale icon must not mask a tool that silently writes nothing.
	if err := os.Remove(dst); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing %s: %w", dst, err)
	}

	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return &ExternalToolError{Tool: tool, Args: args, Output: strings.TrimSpace(out.String()), Err: err}
	}

	if _, err := os.Stat(dst); err != nil {
		return &ExternalToolError{
			Tool:   tool,
			Args:   args,
			Output: strings.TrimSpace(out.String()),
			Err:    fmt.Errorf("no icon written to %s", dst),
		}
	}
	return nil
}

// ExpandArgs substitutes the {input}, {width}, {height} and {output}
// placeholders in every argument.
func ExpandArgs(tmpl []string, src string, width, height int, dst string) []string {
	r := strings.NewReplacer(
		"{input}", src,
		"{width}", strconv.Itoa(width),
		"{height}", strconv.Itoa(height),
		"{output}", dst,
	)
	args := make([]string, len(tmpl))
	for i, a := range tmpl {
		args[i] = r.Replace(a)
	}
	return args
}
