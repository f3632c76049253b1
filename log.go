package nodeeditor

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// NewLogger creates a text logger on stderr at the given level.
// The "error" key is written as "err".
func NewLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

func nopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// logf formats a diagnostic and mirrors it to the host's in-app log and to the
// editor's logger. Not part of the functional contract.
func (c *Context) logf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if c.host != nil {
		c.host.LogText("Node Editor: " + msg)
	}
	c.logger.Debug(msg, "component", "nodeeditor")
}
