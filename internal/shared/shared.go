// package shared holds the relay's config, sentinel errors and logging helpers
package shared

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// NewLogger builds the relay's [log.Logger] on w (default [os.Stderr]) with timestamps and caller reporting.
//
// Level and output format come from cfg; a zero [LogConfig] logs text at info.
func NewLogger(w io.Writer, cfg LogConfig) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	logger := log.NewWithOptions(w, log.Options{ReportTimestamp: true, ReportCaller: true})
	ApplyLogConfig(logger, cfg)
	return logger
}

// ApplyLogConfig reconfigures an existing logger once the config file and flags are known.
func ApplyLogConfig(l *log.Logger, cfg LogConfig) {
	l.SetLevel(cfg.LogLevel())
	l.SetFormatter(cfg.Formatter())
}

// WithLogger creates a child [log.Logger] with the specified key-value pairs added to all log entries.
func WithLogger(l *log.Logger, kv ...any) *log.Logger {
	return l.With(kv...)
}

// GenerateID returns a v4 [uuid.UUID] used as a request ID.
func GenerateID() string {
	return uuid.New().String()
}
