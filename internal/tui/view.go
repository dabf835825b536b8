package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/dreamscape/internal/tui/components"
	"github.com/thenoetrevino/dreamscape/internal/tui/layers"
	"github.com/thenoetrevino/dreamscape/internal/tui/notifications"
	"github.com/thenoetrevino/dreamscape/internal/tui/state"
	"github.com/thenoetrevino/dreamscape/internal/tui/theme"
)

// View renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true                                   // Use alternate screen buffer
	view.MouseMode = tea.MouseModeCellMotion                // Report drags, not every hover
	view.BackgroundColor = lipgloss.Color(theme.Background) // Set root background color

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	width, height := m.UiState.Width(), m.UiState.Height()

	stack := []*lipgloss.Layer{
		lipgloss.NewLayer(blankScreen(width, height)).Z(layers.ZBase),
		lipgloss.NewLayer(renderHeader(&m)).Z(layers.ZCards - 1),
		lipgloss.NewLayer(renderFooter(&m)).Y(max(height-layers.StatusBarHeight, 0)).Z(layers.ZCards - 1),
	}

	switch m.UiState.Screen() {
	case state.TasksScreen:
		stack = append(stack, lipgloss.NewLayer(renderTasks(&m)).Y(layers.HeaderHeight).Z(layers.ZCards))
	case state.AssistantScreen:
		stack = append(stack, lipgloss.NewLayer(renderAssistant(&m)).Y(layers.HeaderHeight).Z(layers.ZCards))
	case state.ResourcesScreen:
		stack = append(stack, lipgloss.NewLayer(renderResources(&m)).Y(layers.HeaderHeight).Z(layers.ZCards))
	case state.InsightsScreen:
		stack = append(stack, lipgloss.NewLayer(renderInsights(&m)).Y(layers.HeaderHeight).Z(layers.ZCards))
	default:
		stack = append(stack, boardLayers(&m)...)
	}

	if overlay := overlayLayer(&m); overlay != nil {
		stack = append(stack, overlay)
	}

	if m.CelebrationState.Showing() {
		banner := components.RenderCelebration(m.CelebrationState.Message())
		if layer := layers.CreateTopCenteredLayer(banner, width); layer != nil {
			stack = append(stack, layer)
		}
	}

	view.Content = lipgloss.NewCanvas(stack...).Render()
	return view
}

// overlayLayer returns the modal for the current mode, if any
func overlayLayer(m *Model) *lipgloss.Layer {
	var content string
	switch m.UiState.Mode() {
	case state.HelpMode:
		content = renderHelp(m)
	case state.SearchMode:
		content = renderSearch(m)
	case state.AddMenuMode:
		content = renderAddMenu(m)
	case state.EditMode:
		content = renderEdit(m)
	case state.TaskAddMode:
		content = renderTaskAdd(m)
	default:
		return nil
	}
	return layers.CreateCenteredLayer(content, m.UiState.Width(), m.UiState.Height())
}

func blankScreen(width, height int) string {
	row := strings.Repeat(" ", width)
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

func renderHeader(m *Model) string {
	tabs := make([]string, len(state.Screens))
	selected := 0
	for i, s := range state.Screens {
		tabs[i] = s.Title()
		if s == m.UiState.Screen() {
			selected = i
		}
	}

	var inline string
	if n, ok := m.NotificationState.Latest(); ok {
		inline = notifications.Render(n)
	}
	return components.RenderTabs(tabs, selected, m.UiState.Width(), inline)
}

func renderFooter(m *Model) string {
	return components.RenderStatusBar(components.StatusBarProps{
		Width: m.UiState.Width(),
		Hint:  modeHint(m),
		Help:  m.Config.KeyMappings.ShowHelp,
	})
}

// modeHint is the status bar text for the current mode and screen
func modeHint(m *Model) string {
	km := m.Config.KeyMappings
	switch m.UiState.Mode() {
	case state.AddMenuMode:
		return "i image · q quote · p progress · g goal · s search · esc cancel"
	case state.EditMode, state.TaskAddMode:
		return "enter save · esc cancel"
	case state.GrabMode:
		return km.NudgeLeft + km.NudgeDown + km.NudgeUp + km.NudgeRight + " move · " + km.GrabItem + " drop"
	case state.SearchMode:
		return "enter search/add · ↑↓ choose · esc close"
	case state.HelpMode:
		return "esc close"
	case state.QueryMode:
		return "type to filter · enter keep · esc clear"
	}

	switch m.UiState.Screen() {
	case state.TasksScreen:
		return km.AddTask + " add · " + km.CycleStatus + " status · " + km.FilterStatus + "/" + km.FilterPriority + " filter · " + km.DeleteTask + " delete"
	case state.AssistantScreen:
		if m.ChatState.Thinking() {
			return "Nano is thinking..."
		}
		return "enter send · " + km.SwitchScreen + " next screen"
	case state.ResourcesScreen:
		return km.Search + " search · " + km.FilterType + " type · " + km.FilterTimeframe + " timeframe · " + km.FilterDifficulty + " difficulty"
	case state.InsightsScreen:
		return km.Search + " search · " + km.FilterCategory + " category"
	}
	return km.AddItem + " add · " + km.GrabItem + " grab · " + km.EditItem + " edit · " + km.Search + " search · " + km.RemoveItem + " delete"
}
