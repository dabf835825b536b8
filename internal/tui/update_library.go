package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/dreamscape/internal/library"
	"github.com/thenoetrevino/dreamscape/internal/tui/state"
)

func visibleResources(m *Model) []library.Resource {
	return library.Resources(m.ResourceViewState.Filter())
}

func visibleInsights(m *Model) []library.Insight {
	return library.Insights(m.InsightViewState.Category(), m.InsightViewState.Query())
}

// activeQuery is the list query of the current library screen
func activeQuery(m *Model) *state.ListQuery {
	if m.UiState.Screen() == state.InsightsScreen {
		return &m.InsightViewState.ListQuery
	}
	return &m.ResourceViewState.ListQuery
}

// visibleRows counts the rows of the current library screen
func visibleRows(m *Model) int {
	if m.UiState.Screen() == state.InsightsScreen {
		return len(visibleInsights(m))
	}
	return len(visibleResources(m))
}

// handleLibraryMode handles the Resources and Insights screens.
func handleLibraryMode(m *Model, msg tea.KeyPressMsg) tea.Cmd {
	m.NotificationState.Clear()

	key := msg.String()
	km := m.Config.KeyMappings
	query := activeQuery(m)

	switch key {
	case km.Quit:
		return tea.Quit
	case km.ShowHelp:
		m.UiState.SetMode(state.HelpMode)
		return nil
	case km.SwitchScreen:
		return switchScreen(m)
	case km.ToggleTheme:
		toggleTheme(m)
		return nil
	case km.Search:
		m.UiState.SetMode(state.QueryMode)
		return query.BeginQuery()
	case km.NextItem, "down":
		query.MoveCursor(1, visibleRows(m))
		return nil
	case km.PrevItem, "up":
		query.MoveCursor(-1, visibleRows(m))
		return nil
	case "esc":
		query.EndQuery(true)
		return nil
	}

	if m.UiState.Screen() == state.InsightsScreen {
		if key == km.FilterCategory {
			m.InsightViewState.CycleCategory()
		}
		return nil
	}

	switch key {
	case km.FilterType:
		m.ResourceViewState.CycleType()
	case km.FilterTimeframe:
		m.ResourceViewState.CycleTimeframe()
	case km.FilterDifficulty:
		m.ResourceViewState.CycleDifficulty()
	}
	return nil
}

// handleQueryMode edits the list query. enter keeps it, esc clears it.
func handleQueryMode(m *Model, msg tea.KeyPressMsg) tea.Cmd {
	query := activeQuery(m)

	switch msg.String() {
	case "enter":
		query.EndQuery(false)
		m.UiState.SetMode(state.NormalMode)
		return nil
	case "esc":
		query.EndQuery(true)
		m.UiState.SetMode(state.NormalMode)
		return nil
	case "up":
		query.MoveCursor(-1, visibleRows(m))
		return nil
	case "down":
		query.MoveCursor(1, visibleRows(m))
		return nil
	}
	return query.Update(msg)
}
