package accept

import "github.com/decred/slog"

// log is the package-wide logger, disabled by default; callers that care
// about acceptance-stage diagnostics install a real one with UseLogger.
var log = slog.Disabled

// UseLogger installs logger as the package-wide logger used by the accept
// stage's header, block, and transaction acceptors.
func UseLogger(logger slog.Logger) {
	log = logger
}
