package dispatch

import "github.com/decred/slog"

// log is the package-wide logger, disabled by default; callers that care
// about dispatcher diagnostics install a real one with UseLogger. Messages
// are tagged "DISP" by the caller's backend, matching this package's
// subsystem code.
var log = slog.Disabled

// UseLogger installs logger as the package-wide logger used by the
// asynchronous and synchronous verification dispatchers.
func UseLogger(logger slog.Logger) {
	log = logger
}
