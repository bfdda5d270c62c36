package testhelpers

import (
	"io"
	"log/slog"

	"github.com/mtuomisto/planfit/internal/logging"
)

// NewLogger creates a debug-level text logger writing to the given sink, set
// up the same way as the CLI logger so tests exercise the same handler chain.
func NewLogger(sink io.Writer) *slog.Logger {
	handler := logging.NewContextHandler(slog.NewTextHandler(sink, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	return slog.New(handler)
}
