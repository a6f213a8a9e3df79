// Package vlog provides a toggleable, indentation-aware diagnostic logger.
//
// A Logger writes printf-formatted messages to an output stream, prefixed
// with an indent proportional to the current nesting depth. When disabled,
// every operation is a no-op, so call sites can stay in place at zero cost.
//
// A Logger is not safe for concurrent use. Give each goroutine its own
// instance or synchronize externally; the Logger itself never locks.
package vlog

import (
	"fmt"
	"io"
	"os"
)

// indentUnit is the string appended per nesting level.
const indentUnit = "  "

// Logger writes indented diagnostic messages when enabled.
// Construct one with New or NewWithWriter. The zero value is a disabled
// logger that writes to os.Stdout once enabled.
type Logger struct {
	enabled bool
	out     io.Writer

	// indentLevel is the current nesting depth, never negative.
	indentLevel int
	// indentStrings caches the prefix for each depth: entry 0 is "",
	// entry i is entry i-1 plus one indent unit. It only ever grows.
	indentStrings []string
	// indent is the prefix for the current depth, valid only while
	// indentValid is set. Indent and Exdent invalidate it.
	indent      string
	indentValid bool
}

// New returns a Logger that writes to os.Stdout.
func New(enabled bool) *Logger {
	return NewWithWriter(enabled, os.Stdout)
}

// NewWithWriter returns a Logger that writes to w.
// A nil w falls back to os.Stdout.
func NewWithWriter(enabled bool, w io.Writer) *Logger {
	return &Logger{
		enabled:       enabled,
		out:           w,
		indentStrings: []string{""},
	}
}

// Enabled reports whether logging is enabled.
func (l *Logger) Enabled() bool {
	return l.enabled
}

// SetEnabled turns all output and indentation tracking on or off.
func (l *Logger) SetEnabled(enabled bool) {
	l.enabled = enabled
}

// Logf writes a formatted message prefixed with the current indent string.
// The indent is applied once, at the start of the message; line breaks
// within the message are not re-indented. No trailing newline is added:
// the format string controls newlines, as with fmt.Printf.
// It is a no-op when the logger is disabled.
func (l *Logger) Logf(format string, args ...any) {
	if !l.enabled {
		return
	}
	w := l.writer()
	_, _ = io.WriteString(w, l.indentString())
	_, _ = fmt.Fprintf(w, format, args...)
}

// Indent increases the indentation by one level.
// It is a no-op when the logger is disabled.
func (l *Logger) Indent() {
	if !l.enabled {
		return
	}
	l.indentLevel++
	l.indentValid = false
}

// Exdent decreases the indentation by one level. Calling Exdent at level
// zero does not decrement; it logs a warning and a stack trace instead,
// as an aid for finding the unbalanced call site.
// It is a no-op when the logger is disabled.
func (l *Logger) Exdent() {
	if !l.enabled {
		return
	}
	if l.indentLevel == 0 {
		l.Logf("Called exdent when indentation level was 0.")
		l.LogStackTrace()
		return
	}
	l.indentLevel--
	l.indentValid = false
}

// ResetIndent sets the indentation back to level zero.
// It is a no-op when the logger is disabled.
func (l *Logger) ResetIndent() {
	if !l.enabled {
		return
	}
	l.indentLevel = 0
	l.indent = ""
	l.indentValid = true
}

// indentString returns the prefix for the current indentation level,
// growing the cache as needed so each depth's string is computed at most
// once per Logger. Callers must ensure the logger is enabled.
func (l *Logger) indentString() string {
	if l.indentValid {
		return l.indent
	}
	if len(l.indentStrings) == 0 {
		l.indentStrings = []string{""}
	}
	for len(l.indentStrings) <= l.indentLevel {
		last := l.indentStrings[len(l.indentStrings)-1]
		l.indentStrings = append(l.indentStrings, last+indentUnit)
	}
	l.indent = l.indentStrings[l.indentLevel]
	l.indentValid = true
	return l.indent
}

func (l *Logger) writer() io.Writer {
	if l.out == nil {
		return os.Stdout
	}
	return l.out
}
