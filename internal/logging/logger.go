package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// DebugEnv enables debug logging when set to any non-empty value.
const DebugEnv = "COUNTDOWN_DEBUG"

// DebugEnabled returns true if debug mode is enabled via COUNTDOWN_DEBUG
func DebugEnabled() bool {
	return os.Getenv(DebugEnv) != ""
}

// New returns a logger writing to w. It logs warnings and errors only,
// unless verbose is set or debug mode is enabled.
func New(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Level:  log.WarnLevel,
		Prefix: "countdown",
	})
	if verbose || DebugEnabled() {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
