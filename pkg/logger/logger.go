package logger

import (
	"log/slog"
	"os"
)

// Log is the process-wide structured logger. It defaults to a usable
// handler so packages can log before Init runs (e.g. under go test).
var Log = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// Init installs the JSON handler used in production, with debug level
// enabled so storage failures carry full context.
func Init() {
	Log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
