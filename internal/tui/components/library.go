package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/dreamscape/internal/library"
	"github.com/thenoetrevino/dreamscape/internal/tui/theme"
)

// DifficultyColor returns the theme color for a resource difficulty
func DifficultyColor(d library.Difficulty) string {
	switch d {
	case library.Hard:
		return theme.PriorityHigh
	case library.Easy:
		return theme.PriorityLow
	default:
		return theme.PriorityMedium
	}
}

func rowCursor(selected bool) (string, lipgloss.Style) {
	if selected {
		return "▸ ", SelectedRowStyle
	}
	return "  ", NormalStyle
}

// RenderResourceRow renders one line of the resource list
func RenderResourceRow(r library.Resource, selected bool, width int) string {
	cursor, titleStyle := rowCursor(selected)
	difficulty := lipgloss.NewStyle().
		Foreground(lipgloss.Color(DifficultyColor(r.Difficulty))).
		Render(fmt.Sprintf("%-6s", r.Difficulty))

	meta := SubtleStyle.Render(fmt.Sprintf("%-7s ★ %.1f", r.Type, r.Rating))
	row := fmt.Sprintf("%s%s  %s  %s", cursor, meta, difficulty, titleStyle.Render(r.Title))
	return truncate.String(row, uint(max(width, 1)))
}

// RenderResourceDetail renders the description panel for a resource
func RenderResourceDetail(r library.Resource, width int) string {
	width = max(width, 10)
	lines := []string{
		TitleStyle.Render(r.Title),
		wordwrap.String(r.Description, width),
		"",
		SubtleStyle.Render("#" + strings.Join(r.Tags, " #")),
		SubtleStyle.Render(r.Timeframe.Label()+" • ") +
			lipgloss.NewStyle().Foreground(lipgloss.Color(DifficultyColor(r.Difficulty))).Render(string(r.Difficulty)),
		NormalStyle.Render("View ↗ " + r.URL),
	}
	return strings.Join(lines, "\n")
}

// RenderInsightRow renders one line of the insight list
func RenderInsightRow(in library.Insight, selected bool, width int) string {
	cursor, titleStyle := rowCursor(selected)
	row := fmt.Sprintf("%s%s  %s", cursor, SubtleStyle.Render(fmt.Sprintf("%-12s", in.Category)), titleStyle.Render(in.Title))
	return truncate.String(row, uint(max(width, 1)))
}

// RenderInsightDetail renders an insight with its action steps
func RenderInsightDetail(in library.Insight, width int) string {
	width = max(width, 10)
	lines := []string{
		TitleStyle.Render(in.Title),
		wordwrap.String(in.Description, width),
		"",
		TitleStyle.Render("Action Steps"),
	}
	for _, step := range in.ActionSteps {
		lines = append(lines, "• "+wordwrap.String(step, width-2))
	}
	return strings.Join(lines, "\n")
}
