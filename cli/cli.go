package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles for the CLI output
var (
	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// LogTo prints an informational message with a prefix to the given writer
func LogTo(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, infoStyle.Render("==> "+msg))
}

// LogErrorTo prints an error message to the given writer
func LogErrorTo(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, errorStyle.Render("✗ "+msg))
}

// LogDimTo prints a dimmed message to the given writer
func LogDimTo(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, dimStyle.Render("  "+msg))
}

// Logger writes diagnostics to stderr. Messages logged with Debugf are
// dropped unless the logger is verbose.
type Logger struct {
	w       io.Writer
	verbose bool
}

// NewLogger returns a logger writing to w
func NewLogger(w io.Writer, verbose bool) *Logger {
	return &Logger{w: w, verbose: verbose}
}

// Debugf prints an informational message when verbose output is enabled.
func (l *Logger) Debugf(format string, args ...any) {
	if !l.verbose {
		return
	}
	LogTo(l.w, format, args...)
}

// Detailf prints a dimmed detail line when verbose output is enabled.
func (l *Logger) Detailf(format string, args ...any) {
	if !l.verbose {
		return
	}
	LogDimTo(l.w, format, args...)
}
