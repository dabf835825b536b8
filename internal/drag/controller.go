// Package drag turns pointer drags into board position updates.
package drag

import (
	"github.com/thenoetrevino/dreamscape/internal/models"
)

// Board is the part of the store a drag needs
type Board interface {
	Get(id string) (models.BoardItem, bool)
	Move(id string, position models.Position)
}

// Controller is a two-state machine: idle, or dragging exactly one item.
// Every delta is applied to the store immediately; there is no batching,
// snapping, or collision handling.
type Controller struct {
	board  Board
	active string
}

// NewController creates an idle controller over board
func NewController(board Board) *Controller {
	return &Controller{board: board}
}

// Begin starts dragging id (pointer-down). Starting a drag while another is
// active switches to the new item, so at most one item is ever dragged.
func (c *Controller) Begin(id string) {
	if _, ok := c.board.Get(id); !ok {
		return
	}
	c.active = id
}

// Delta moves the dragged item by delta (pointer-move). Ignored when idle.
func (c *Controller) Delta(delta models.Position) {
	if c.active == "" {
		return
	}
	item, ok := c.board.Get(c.active)
	if !ok {
		// Item was removed mid-drag
		c.active = ""
		return
	}
	c.board.Move(c.active, item.Position.Add(delta))
}

// End returns to idle (pointer-up), unconditionally
func (c *Controller) End() {
	c.active = ""
}

// Dragging reports whether a drag is in progress
func (c *Controller) Dragging() bool {
	return c.active != ""
}

// Active returns the dragged item's id, or "" when idle
func (c *Controller) Active() string {
	return c.active
}

// PaintOrder returns items with the dragged item moved last so it is drawn
// above everything else. The input slice is not modified.
func (c *Controller) PaintOrder(items []models.BoardItem) []models.BoardItem {
	out := make([]models.BoardItem, 0, len(items))
	var raised *models.BoardItem
	for i := range items {
		if c.active != "" && items[i].ID == c.active {
			raised = &items[i]
			continue
		}
		out = append(out, items[i])
	}
	if raised != nil {
		out = append(out, *raised)
	}
	return out
}
