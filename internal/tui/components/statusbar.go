package components

import (
	"charm.land/lipgloss/v2"
)

// StatusBarProps configures the bottom line
type StatusBarProps struct {
	Width int
	Hint  string // key hints for the current mode
	Help  string // help key, shown on the right
}

// RenderStatusBar renders the mode hint on the left and the help reminder on
// the right. The hint is truncated before the reminder is dropped.
func RenderStatusBar(props StatusBarProps) string {
	hint := props.Hint
	if hint == "" {
		hint = "Dreamscape"
	}
	help := props.Help
	if help == "" {
		help = "?"
	}
	right := SubtleStyle.Render("press " + help + " for help")

	room := max(props.Width-lipgloss.Width(right)-1, 0)
	left := SubtleStyle.MaxWidth(room).Render(hint)
	gap := max(props.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)

	return left + lipgloss.NewStyle().Width(gap).Render("") + right
}
