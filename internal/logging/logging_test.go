package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitDir_WritesToFile(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	dir := filepath.Join(t.TempDir(), "logs")
	closer, err := InitDir(dir)
	if err != nil {
		t.Fatalf("InitDir() error = %v", err)
	}

	slog.Info("board item moved", "id", "3")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "dreamscape.log"))
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(data), "board item moved") {
		t.Errorf("log file missing message, got %q", data)
	}
}
