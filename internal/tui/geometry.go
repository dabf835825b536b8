package tui

import (
	"github.com/thenoetrevino/dreamscape/internal/models"
	"github.com/thenoetrevino/dreamscape/internal/tui/components"
	"github.com/thenoetrevino/dreamscape/internal/tui/layers"
)

// rect is an on-screen area in terminal cells
type rect struct {
	X, Y, W, H int
}

func (r rect) contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// cellSize returns the board units covered by one terminal column and row
func (m *Model) cellSize() (int, int) {
	return max(m.Config.Board.CellWidth, 1), max(m.Config.Board.CellHeight, 1)
}

// cardRect maps an item's board geometry onto the screen. Items dragged past
// the top or left edge are drawn against it.
func (m *Model) cardRect(item models.BoardItem) rect {
	cw, ch := m.cellSize()
	return rect{
		X: max(item.Position.X/cw, 0),
		Y: max(item.Position.Y/ch, 0) + layers.HeaderHeight,
		W: max(item.Size.Width/cw, components.MinCardWidth),
		H: max(item.Size.Height/ch, components.MinCardHeight),
	}
}

// itemAt returns the topmost item drawn over cell (x, y)
func (m *Model) itemAt(x, y int) (models.BoardItem, bool) {
	items := m.Drag.PaintOrder(m.App.Board.Items())
	for i := len(items) - 1; i >= 0; i-- {
		if m.cardRect(items[i]).contains(x, y) {
			return items[i], true
		}
	}
	return models.BoardItem{}, false
}

// selectedItem returns the item keyboard actions apply to
func (m *Model) selectedItem() (models.BoardItem, bool) {
	return m.App.Board.Get(m.UiState.SelectedItem())
}
