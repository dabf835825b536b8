package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// Init initializes the logging system, writing logs to ~/.dreamscape/logs/dreamscape.log
// Uses text format for human readability.
func Init() (io.Closer, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return InitDir(filepath.Join(homeDir, ".dreamscape", "logs"))
}

// InitDir is Init with an explicit log directory. The returned closer
// releases the log file.
func InitDir(logDir string) (io.Closer, error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}

	// Open log file in append mode
	logPath := filepath.Join(logDir, "dreamscape.log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	handler := slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	// Route the standard log package to the same file so nothing writes over the TUI
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return file, nil
}

// Discard installs a logger that drops everything. Used when file logging
// cannot be set up so that diagnostics never land on the terminal.
func Discard() {
	Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	slog.SetDefault(Logger)
	log.SetOutput(io.Discard)
}
