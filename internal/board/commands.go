package board

import "github.com/thenoetrevino/dreamscape/internal/models"

// Command is a single mutation request against a Store.
// UI events are translated into commands and dispatched; the store never
// sees presentation types.
type Command interface {
	apply(s Store)
}

// AddItem adds an item of Kind with default content
type AddItem struct {
	Kind models.Kind
}

// AddImage adds an image item showing URL
type AddImage struct {
	URL string
}

// RemoveItem removes the item with ID
type RemoveItem struct {
	ID string
}

// SetContent replaces the content of the item with ID
type SetContent struct {
	ID      string
	Content string
}

// MoveItem places the item with ID at Position
type MoveItem struct {
	ID       string
	Position models.Position
}

func (c AddItem) apply(s Store)    { s.Add(c.Kind) }
func (c AddImage) apply(s Store)   { s.AddFromURL(c.URL) }
func (c RemoveItem) apply(s Store) { s.Remove(c.ID) }
func (c SetContent) apply(s Store) { s.UpdateContent(c.ID, c.Content) }
func (c MoveItem) apply(s Store)   { s.Move(c.ID, c.Position) }

// Dispatch applies each command to s in order
func Dispatch(s Store, cmds ...Command) {
	for _, c := range cmds {
		if c == nil {
			continue
		}
		c.apply(s)
	}
}
