// Package log prints leveled, optionally colored status lines for the tour CLI.
package log

import (
	"fmt"
	"io"
	"strings"
)

// Color codes
const (
	reset      = "\033[0m"
	dim        = "\033[2m"
	blue       = "\033[34m"
	cyan       = "\033[36m"
	boldRed    = "\033[1;31m"
	boldGreen  = "\033[1;32m"
	boldYellow = "\033[1;33m"
)

// Prefixes for the different log types
const (
	infoPrefix    = "info: "
	successPrefix = "ok: "
	errorPrefix   = "error: "
	warnPrefix    = "warning: "
	stepPrefix    = "> "
	debugPrefix   = "debug: "
)

// Logger writes status lines to w. Debug lines are dropped unless debug is set.
//
// Messages are written as given: paths and hints are never split, so callers and
// scripts can match them on a single line.
type Logger struct {
	w     io.Writer
	debug bool
	color bool
}

// New creates a logger writing to w. A nil w discards everything.
func New(w io.Writer, debug, color bool) *Logger {
	if w == nil {
		w = io.Discard
	}
	return &Logger{w: w, debug: debug, color: color}
}

func (l *Logger) print(color, prefix, format string, args []any) {
	msg := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	if l.color {
		_, _ = fmt.Fprintf(l.w, "%s%s%s%s\n", color, prefix, msg, reset)
		return
	}
	_, _ = fmt.Fprintf(l.w, "%s%s\n", prefix, msg)
}

// Info prints an info message
func (l *Logger) Info(format string, args ...any) { l.print(blue, infoPrefix, format, args) }

// Success prints a success message
func (l *Logger) Success(format string, args ...any) {
	l.print(boldGreen, successPrefix, format, args)
}

// Error prints an error message
func (l *Logger) Error(format string, args ...any) { l.print(boldRed, errorPrefix, format, args) }

// Warning prints a warning message
func (l *Logger) Warning(format string, args ...any) {
	l.print(boldYellow, warnPrefix, format, args)
}

// Step prints a step message
func (l *Logger) Step(format string, args ...any) { l.print(cyan, stepPrefix, format, args) }

// Debug prints a debug message if debug is enabled
func (l *Logger) Debug(format string, args ...any) {
	if !l.debug {
		return
	}
	l.print(dim, debugPrefix, format, args)
}
