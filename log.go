package sheet

import (
	"log/slog"
	"os"
)

// sheetLogLevel controls the log level for grid debug logging.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var sheetLogLevel = new(slog.LevelVar)

// sheetLogger is the default logger for grids created without WithLogger.
var sheetLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: sheetLogLevel}))

// SetVerbose enables or disables verbose/debug logging for the default logger.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		sheetLogLevel.Set(slog.LevelDebug)
	} else {
		sheetLogLevel.Set(slog.LevelInfo)
	}
}
