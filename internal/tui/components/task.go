package components

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/truncate"
	"github.com/thenoetrevino/dreamscape/internal/models"
	"github.com/thenoetrevino/dreamscape/internal/tui/theme"
)

// PriorityColor returns the theme color for a priority
func PriorityColor(p models.Priority) string {
	switch p {
	case models.PriorityHigh:
		return theme.PriorityHigh
	case models.PriorityLow:
		return theme.PriorityLow
	default:
		return theme.PriorityMedium
	}
}

func statusMark(s models.Status) string {
	switch s {
	case models.StatusCompleted:
		return "✓"
	case models.StatusInProgress:
		return "◐"
	default:
		return "○"
	}
}

// RenderTaskRow renders one line of the task list
func RenderTaskRow(t *models.Task, selected bool, width int) string {
	cursor := "  "
	titleStyle := NormalStyle
	if selected {
		cursor = "▸ "
		titleStyle = SelectedRowStyle
	}
	if t.Status == models.StatusCompleted {
		titleStyle = titleStyle.Strikethrough(true)
	}

	priority := lipgloss.NewStyle().
		Foreground(lipgloss.Color(PriorityColor(t.Priority))).
		Render(fmt.Sprintf("%-6s", t.Priority))

	meta := SubtleStyle.Render(fmt.Sprintf("%-11s due %s", t.Status.Label(), t.DueDate.Format(models.DateLayout)))
	row := fmt.Sprintf("%s%s %s  %s  %s", cursor, statusMark(t.Status), priority, titleStyle.Render(t.Title), meta)
	return truncate.String(row, uint(max(width, 1)))
}
