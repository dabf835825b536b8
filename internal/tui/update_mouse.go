package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/dreamscape/internal/models"
	"github.com/thenoetrevino/dreamscape/internal/tui/state"
)

// mouseEnabled reports whether pointer drags can start in the current state
func mouseEnabled(m *Model) bool {
	return m.UiState.Screen() == state.BoardScreen && m.UiState.Mode() == state.NormalMode
}

// handleMouseClick starts a drag on the topmost item under the pointer.
func handleMouseClick(m *Model, msg tea.MouseClickMsg) tea.Cmd {
	mouse := msg.Mouse()
	if mouse.Button != tea.MouseLeft || !mouseEnabled(m) {
		return nil
	}

	m.mouse.last = cell{X: mouse.X, Y: mouse.Y}
	endMouseDrag(m)

	item, ok := m.itemAt(mouse.X, mouse.Y)
	if !ok {
		return nil
	}

	m.UiState.SetSelectedItem(item.ID)
	m.Drag.Begin(item.ID)
	m.mouse.held = m.Drag.Dragging()
	return nil
}

// handleMouseMotion converts pointer movement in cells into a board delta.
func handleMouseMotion(m *Model, msg tea.MouseMotionMsg) tea.Cmd {
	if !m.mouse.held || m.UiState.Mode() != state.NormalMode {
		return nil
	}

	mouse := msg.Mouse()
	cw, ch := m.cellSize()
	dx := mouse.X - m.mouse.last.X
	dy := mouse.Y - m.mouse.last.Y
	m.mouse.last = cell{X: mouse.X, Y: mouse.Y}

	if dx == 0 && dy == 0 {
		return nil
	}
	m.Drag.Delta(models.Position{X: dx * cw, Y: dy * ch})
	if !m.Drag.Dragging() {
		m.mouse.held = false
	}
	return nil
}

// handleMouseRelease ends a mouse drag whatever mode the release lands in.
// A keyboard grab survives releases.
func handleMouseRelease(m *Model, _ tea.MouseReleaseMsg) tea.Cmd {
	endMouseDrag(m)
	return nil
}

func endMouseDrag(m *Model) {
	if !m.mouse.held {
		return
	}
	m.mouse.held = false
	m.Drag.End()
}
