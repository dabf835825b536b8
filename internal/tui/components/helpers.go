package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

func padRight(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
