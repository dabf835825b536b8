package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/dreamscape/internal/assistant"
	"github.com/thenoetrevino/dreamscape/internal/board"
	"github.com/thenoetrevino/dreamscape/internal/models"
	"github.com/thenoetrevino/dreamscape/internal/render"
	"github.com/thenoetrevino/dreamscape/internal/tui/state"
)

// handleBoardMode handles keyboard input on the dream board in normal mode.
func handleBoardMode(m *Model, msg tea.KeyPressMsg) tea.Cmd {
	m.NotificationState.Clear()

	key := msg.String()
	km := m.Config.KeyMappings

	switch key {
	case km.Quit:
		return tea.Quit
	case km.ShowHelp:
		m.UiState.SetMode(state.HelpMode)
	case km.SwitchScreen:
		return switchScreen(m)
	case km.ToggleTheme:
		toggleTheme(m)
	case km.AddItem:
		m.UiState.SetMode(state.AddMenuMode)
	case km.Search:
		return openSearch(m)
	case km.RemoveItem:
		removeSelected(m)
	case km.NextItem, "down":
		cycleSelection(m, 1)
	case km.PrevItem, "up":
		cycleSelection(m, -1)
	case km.GrabItem:
		if item, ok := m.selectedItem(); ok {
			m.mouse.held = false
			m.Drag.Begin(item.ID)
			m.UiState.SetMode(state.GrabMode)
		}
	case km.Increment:
		stepSelected(m, render.Increment)
	case km.Decrement:
		stepSelected(m, render.Decrement)
	case km.EditItem:
		return beginEdit(m, false)
	case km.EditTarget:
		return beginEdit(m, true)
	}
	return nil
}

// handleAddMenuMode picks the kind of item to add.
func handleAddMenuMode(m *Model, msg tea.KeyPressMsg) tea.Cmd {
	var kind models.Kind
	switch msg.String() {
	case "i":
		kind = models.KindImage
	case "q":
		kind = models.KindQuote
	case "p":
		kind = models.KindProgress
	case "g":
		kind = models.KindGoal
	case "s", m.Config.KeyMappings.Search:
		return openSearch(m)
	case "esc":
		m.UiState.SetMode(state.NormalMode)
		return nil
	default:
		return nil
	}

	item := m.App.Board.Add(kind)
	m.UiState.SetSelectedItem(item.ID)
	m.UiState.SetMode(state.NormalMode)

	if kind == models.KindGoal {
		m.App.Assistant.Notify(assistant.GoalAdded(models.ParseGoal(item.Content).Label))
	}
	return nil
}

// handleGrabMode moves the grabbed item with the keyboard.
func handleGrabMode(m *Model, msg tea.KeyPressMsg) tea.Cmd {
	km := m.Config.KeyMappings
	step := m.Config.Board.Nudge

	switch msg.String() {
	case km.NudgeLeft, "left":
		m.Drag.Delta(models.Position{X: -step})
	case km.NudgeRight, "right":
		m.Drag.Delta(models.Position{X: step})
	case km.NudgeUp, "up":
		m.Drag.Delta(models.Position{Y: -step})
	case km.NudgeDown, "down":
		m.Drag.Delta(models.Position{Y: step})
	case km.GrabItem, "enter", "esc":
		m.Drag.End()
		m.UiState.SetMode(state.NormalMode)
	}

	// The item can vanish mid-drag
	if !m.Drag.Dragging() {
		m.UiState.SetMode(state.NormalMode)
	}
	return nil
}

// handleEditMode applies or cancels the inline field edit.
func handleEditMode(m *Model, msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.EditState.Reset()
		m.UiState.SetMode(state.NormalMode)
		return nil
	case "enter":
		applyEdit(m)
		m.EditState.Reset()
		m.UiState.SetMode(state.NormalMode)
		return nil
	}
	return m.EditState.Update(msg)
}

func applyEdit(m *Model) {
	item, ok := m.App.Board.Get(m.EditState.ItemID())
	if !ok {
		m.NotificationState.Add(state.LevelError, "Item no longer exists")
		return
	}
	content, ok := render.Edit(item.Kind, item.Content, m.EditState.Field(), m.EditState.Value())
	if !ok {
		return
	}
	board.Dispatch(m.App.Board, board.SetContent{ID: item.ID, Content: content})
}

// beginEdit opens the edit input on the selected item. target selects the
// goal target field instead of the first editable field.
func beginEdit(m *Model, target bool) tea.Cmd {
	item, ok := m.selectedItem()
	if !ok {
		return nil
	}
	fields := render.EditableFields(item.Kind)
	if len(fields) == 0 {
		return nil
	}

	field := fields[0]
	if target {
		if item.Kind != models.KindGoal {
			return nil
		}
		field = render.FieldTarget
	}

	m.UiState.SetMode(state.EditMode)
	return m.EditState.Begin(item.ID, field, render.For(item).FieldValue(field))
}

func stepSelected(m *Model, step func(string) string) {
	item, ok := m.selectedItem()
	if !ok || !render.Steppable(item.Kind) {
		return
	}
	board.Dispatch(m.App.Board, board.SetContent{ID: item.ID, Content: step(item.Content)})
}

// removeSelected deletes the selected item and selects the one that takes
// its place in the list.
func removeSelected(m *Model) {
	id := m.UiState.SelectedItem()
	items := m.App.Board.Items()
	idx := indexOfItem(items, id)
	if idx < 0 {
		return
	}

	board.Dispatch(m.App.Board, board.RemoveItem{ID: id})

	items = m.App.Board.Items()
	if len(items) == 0 {
		m.UiState.SetSelectedItem("")
		return
	}
	m.UiState.SetSelectedItem(items[min(idx, len(items)-1)].ID)
}

func cycleSelection(m *Model, delta int) {
	items := m.App.Board.Items()
	if len(items) == 0 {
		return
	}
	idx := indexOfItem(items, m.UiState.SelectedItem())
	if idx < 0 {
		m.UiState.SetSelectedItem(items[0].ID)
		return
	}
	next := (idx + delta + len(items)) % len(items)
	m.UiState.SetSelectedItem(items[next].ID)
}

func indexOfItem(items []models.BoardItem, id string) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
