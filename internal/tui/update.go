package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/dreamscape/internal/config/colors"
	"github.com/thenoetrevino/dreamscape/internal/tui/components"
	"github.com/thenoetrevino/dreamscape/internal/tui/state"
	"github.com/thenoetrevino/dreamscape/internal/tui/theme"
)

// Update handles all messages and updates the model accordingly.
// This implements the "Update" part of the Model-View-Update pattern.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := update(&m, msg)
	return m, tea.Batch(cmd, drainCelebrations(&m))
}

func update(m *Model, msg tea.Msg) tea.Cmd {
	// Check if context is cancelled (graceful shutdown)
	select {
	case <-m.Ctx.Done():
		return tea.Quit
	default:
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetWidth(msg.Width)
		m.UiState.SetHeight(msg.Height)
		return nil

	case ConfigReloadedMsg:
		return handleConfigReloaded(m, msg)

	case CelebrationTimeoutMsg:
		m.CelebrationState.Dismiss(msg.Generation)
		return nil

	case SearchResultsMsg:
		return handleSearchResults(m, msg)

	case AssistantReplyMsg:
		return handleAssistantReply(m, msg)

	case tea.KeyPressMsg:
		return handleKeyMsg(m, msg)

	case tea.MouseClickMsg:
		return handleMouseClick(m, msg)

	case tea.MouseMotionMsg:
		return handleMouseMotion(m, msg)

	case tea.MouseReleaseMsg:
		return handleMouseRelease(m, msg)
	}

	return forwardToInput(m, msg)
}

// handleKeyMsg dispatches key presses to the handler for the current mode.
func handleKeyMsg(m *Model, msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	if key == "ctrl+c" {
		return tea.Quit
	}

	// An open banner takes enter and esc before anything else
	if m.CelebrationState.Showing() && (key == "enter" || key == "esc") {
		m.CelebrationState.DismissCurrent()
		return nil
	}

	switch m.UiState.Mode() {
	case state.HelpMode:
		return handleHelpMode(m, msg)
	case state.AddMenuMode:
		return handleAddMenuMode(m, msg)
	case state.EditMode:
		return handleEditMode(m, msg)
	case state.GrabMode:
		return handleGrabMode(m, msg)
	case state.SearchMode:
		return handleSearchMode(m, msg)
	case state.TaskAddMode:
		return handleTaskAddMode(m, msg)
	case state.QueryMode:
		return handleQueryMode(m, msg)
	}

	switch m.UiState.Screen() {
	case state.TasksScreen:
		return handleTasksMode(m, msg)
	case state.AssistantScreen:
		return handleAssistantMode(m, msg)
	case state.ResourcesScreen, state.InsightsScreen:
		return handleLibraryMode(m, msg)
	default:
		return handleBoardMode(m, msg)
	}
}

// forwardToInput hands non-key messages such as cursor blinks to whichever
// text input is active.
func forwardToInput(m *Model, msg tea.Msg) tea.Cmd {
	switch m.UiState.Mode() {
	case state.EditMode:
		return m.EditState.Update(msg)
	case state.SearchMode:
		return m.SearchState.Update(msg)
	case state.TaskAddMode:
		return m.TaskViewState.Update(msg)
	case state.QueryMode:
		return activeQuery(m).Update(msg)
	}
	if m.UiState.Screen() == state.AssistantScreen {
		return m.ChatState.Update(msg)
	}
	return nil
}

func handleHelpMode(m *Model, msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case m.Config.KeyMappings.ShowHelp, m.Config.KeyMappings.Quit, "esc", "enter", "space":
		m.UiState.SetMode(state.NormalMode)
	}
	return nil
}

// switchScreen moves to the next tab, focusing the chat input when the
// assistant becomes active.
func switchScreen(m *Model) tea.Cmd {
	m.NotificationState.Clear()
	m.UiState.NextScreen()
	if m.UiState.Screen() == state.AssistantScreen {
		return m.ChatState.Focus()
	}
	m.ChatState.Blur()
	return nil
}

func handleConfigReloaded(m *Model, msg ConfigReloadedMsg) tea.Cmd {
	if msg.Config == nil {
		return nil
	}
	m.Config = msg.Config
	applyTheme(m.Config.ColorScheme)
	m.NotificationState.Add(state.LevelSuccess, "Config reloaded")
	slog.Info("config reloaded")
	return nil
}

func applyTheme(scheme colors.ColorScheme) {
	theme.Init(scheme)
	components.InitStyles()
}

// toggleTheme switches to the next built-in color preset. Custom colors
// from the config file are replaced by the preset.
func toggleTheme(m *Model) {
	name := colors.NextPreset(m.Config.ColorScheme.Preset)
	m.Config.ColorScheme = *colors.GetPreset(name)
	applyTheme(m.Config.ColorScheme)
	m.NotificationState.Add(state.LevelInfo, "Theme: "+name)
	slog.Debug("theme toggled", "preset", name)
}
