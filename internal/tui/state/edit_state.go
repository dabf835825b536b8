package state

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/dreamscape/internal/render"
)

// EditState tracks inline editing of a single board item field.
type EditState struct {
	itemID string
	field  render.Field
	input  textinput.Model
}

// NewEditState creates an idle EditState.
func NewEditState() *EditState {
	return &EditState{input: textinput.New()}
}

// Begin starts editing field of item id, seeded with value.
func (s *EditState) Begin(id string, field render.Field, value string) tea.Cmd {
	s.itemID = id
	s.field = field
	s.input = textinput.New()
	s.input.Placeholder = placeholder(field)
	s.input.SetValue(value)
	s.input.CursorEnd()
	return s.input.Focus()
}

func placeholder(field render.Field) string {
	switch field {
	case render.FieldTarget:
		return "Target"
	case render.FieldLabel:
		return "Label"
	default:
		return "Your quote"
	}
}

// ItemID returns the id of the item being edited.
func (s *EditState) ItemID() string {
	return s.itemID
}

// Field returns the field being edited.
func (s *EditState) Field() render.Field {
	return s.field
}

// Value returns the current input text.
func (s *EditState) Value() string {
	return s.input.Value()
}

// Update forwards a message to the text input.
func (s *EditState) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

// View renders the text input.
func (s *EditState) View() string {
	return s.input.View()
}

// Reset ends editing.
func (s *EditState) Reset() {
	s.itemID = ""
	s.field = render.FieldNone
	s.input.Blur()
	s.input.SetValue("")
}
