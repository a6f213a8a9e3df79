package vlog

import (
	"fmt"
	"runtime"
)

// stackSkip is the number of frames dropped from a captured trace:
// runtime.Callers itself, LogStackTrace, and LogStackTrace's immediate
// caller. The count only holds while the capture happens directly inside
// LogStackTrace, so that call must not move into a helper.
const stackSkip = 3

// LogStackTrace writes the current call stack, one frame per line from
// innermost to outermost, each prefixed with the current indent string and
// two spaces. The logging facility's own frames and the immediate caller
// are omitted. It is a no-op when the logger is disabled.
func (l *Logger) LogStackTrace() {
	if !l.enabled {
		return
	}
	pc := make([]uintptr, 64)
	n := runtime.Callers(stackSkip, pc)
	for n == len(pc) {
		pc = make([]uintptr, 2*len(pc))
		n = runtime.Callers(stackSkip, pc)
	}
	if n == 0 {
		return
	}
	w := l.writer()
	frames := runtime.CallersFrames(pc[:n])
	for {
		frame, more := frames.Next()
		_, _ = fmt.Fprintf(w, "%s  %s\n", l.indentString(), formatFrame(frame))
		if !more {
			break
		}
	}
}

// formatFrame renders a frame as "function (file:line)", with whatever
// parts the runtime could resolve.
func formatFrame(f runtime.Frame) string {
	name := f.Function
	if name == "" {
		name = "unknown"
	}
	return fmt.Sprintf("%s (%s:%d)", name, f.File, f.Line)
}
