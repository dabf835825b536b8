package notifications

import (
	"strings"
	"testing"

	"github.com/thenoetrevino/dreamscape/internal/tui/state"
)

func TestRender(t *testing.T) {
	tests := []struct {
		level state.NotificationLevel
		icon  string
	}{
		{state.LevelInfo, "•"},
		{state.LevelSuccess, "✓"},
		{state.LevelError, "✗"},
	}

	for _, tt := range tests {
		got := Render(state.Notification{Level: tt.level, Message: "Task added"})
		if !strings.Contains(got, tt.icon+" Task added") {
			t.Errorf("Render(level %d) = %q, want icon %q before the message", tt.level, got, tt.icon)
		}
	}
}
