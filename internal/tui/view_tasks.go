package tui

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/dreamscape/internal/models"
	"github.com/thenoetrevino/dreamscape/internal/tui/components"
	"github.com/thenoetrevino/dreamscape/internal/tui/layers"
)

func filterLabel[T ~string](v T) string {
	if v == "" {
		return "all"
	}
	return string(v)
}

func renderTasks(m *Model) string {
	width := m.UiState.Width()
	tasks := visibleTasks(m)

	header := components.TitleStyle.Render("Tasks") + "  " + components.SubtleStyle.Render(fmt.Sprintf(
		"status: %s · priority: %s",
		filterLabel(m.TaskViewState.StatusFilter()),
		filterLabel(m.TaskViewState.PriorityFilter()),
	))

	lines := []string{" " + header, ""}
	if len(tasks) == 0 {
		lines = append(lines, "  "+components.SubtleStyle.Render("No tasks match the current filters"))
		return strings.Join(lines, "\n")
	}

	// Leave room for the header lines and the footer
	room := max(m.UiState.Height()-layers.HeaderHeight-layers.StatusBarHeight-len(lines), 1)
	start := 0
	if cursor := m.TaskViewState.Cursor(); cursor >= room {
		start = cursor - room + 1
	}

	for i := start; i < len(tasks) && i < start+room; i++ {
		lines = append(lines, components.RenderTaskRow(tasks[i], i == m.TaskViewState.Cursor(), width))
	}
	return strings.Join(lines, "\n")
}

func renderTaskAdd(m *Model) string {
	width := layers.OverlayWidth(m.UiState.Width())
	body := components.TitleStyle.Render("New task") + "\n\n" +
		m.TaskViewState.View() + "\n\n" +
		components.SubtleStyle.Render(fmt.Sprintf("priority %s · status %s · due today", models.PriorityMedium, models.StatusTodo.Label()))
	return components.OverlayBoxStyle.Width(width).Render(body)
}
