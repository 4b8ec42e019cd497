package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	styleHeading = lipgloss.NewStyle().Bold(true)
	styleOK      = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	styleWarn    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"})
	styleMiss    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"})
	styleMuted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"})
)

// printer writes status lines, styled only when w is a terminal.
type printer struct {
	w     io.Writer
	color bool
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w, color: colorEnabled(w)}
}

// colorEnabled reports whether w is a terminal and NO_COLOR is unset.
func colorEnabled(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (p *printer) render(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

func (p *printer) heading(format string, args ...any) {
	fmt.Fprintln(p.w, p.render(styleHeading, fmt.Sprintf(format, args...)))
}

func (p *printer) ok(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.render(styleOK, "[ OK ]"), fmt.Sprintf(format, args...))
}

func (p *printer) warn(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.render(styleWarn, "[WARN]"), fmt.Sprintf(format, args...))
}

func (p *printer) miss(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.render(styleMiss, "[MISS]"), fmt.Sprintf(format, args...))
}

func (p *printer) item(text string) {
	fmt.Fprintf(p.w, "  %s\n", p.render(styleMuted, text))
}
