package app

import (
	"log/slog"
	"runtime/debug"
)

// recoverLog must be deferred directly. A panic inside a Tk callback would
// otherwise unwind through the Tcl interpreter and take the process down.
func recoverLog(logger *slog.Logger, msg string) {
	if r := recover(); r != nil {
		if logger != nil {
			logger.Error(msg, "error", r, "stack", string(debug.Stack()))
		}
	}
}

// guard wraps fn so that a panic is logged instead of propagated.
func guard(logger *slog.Logger, name string, fn func()) func() {
	if fn == nil {
		return nil
	}
	return func() {
		defer recoverLog(logger, name+" panic")
		fn()
	}
}
