package components

import (
	"charm.land/lipgloss/v2"
)

// RenderTabs draws the screen tabs on the left and trailing (usually an
// inline notice) flush right, filling width.
func RenderTabs(tabs []string, selectedIdx int, width int, trailing string) string {
	rendered := make([]string, len(tabs))
	for i, name := range tabs {
		style := TabStyle
		if i == selectedIdx {
			style = ActiveTabStyle
		}
		rendered[i] = style.Render(name)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)

	rest := max(width-lipgloss.Width(row), 0)
	if trailing == "" || lipgloss.Width(trailing) > rest {
		return row
	}
	right := lipgloss.PlaceHorizontal(rest-1, lipgloss.Right, trailing)
	return lipgloss.JoinHorizontal(lipgloss.Bottom, row, right)
}
