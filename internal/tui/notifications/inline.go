// Package notifications renders the short notices shown beside the tabs.
package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/dreamscape/internal/tui/state"
	"github.com/thenoetrevino/dreamscape/internal/tui/theme"
)

// Icon returns the glyph that prefixes a notice of level
func Icon(level state.NotificationLevel) string {
	switch level {
	case state.LevelError:
		return "✗"
	case state.LevelSuccess:
		return "✓"
	default:
		return "•"
	}
}

// Render draws n as a single padded line
func Render(n state.Notification) string {
	fg, bg := theme.InfoFg, theme.InfoBg
	if n.Level == state.LevelError {
		fg, bg = theme.ErrorFg, theme.ErrorBg
	}

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg)).
		Padding(0, 1).
		Render(Icon(n.Level) + " " + n.Message)
}
