package state

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// ChatState holds the assistant screen's input and the message awaiting a
// reply.
type ChatState struct {
	input    textinput.Model
	thinking bool
	pending  string
}

// NewChatState creates a focused, empty chat input.
func NewChatState() *ChatState {
	ti := textinput.New()
	ti.Placeholder = "Type your message..."
	return &ChatState{input: ti}
}

// Focus gives the input keyboard focus.
func (s *ChatState) Focus() tea.Cmd {
	return s.input.Focus()
}

// Blur removes keyboard focus.
func (s *ChatState) Blur() {
	s.input.Blur()
}

// Value returns the text being typed.
func (s *ChatState) Value() string {
	return s.input.Value()
}

// Update forwards a message to the input.
func (s *ChatState) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

// View renders the input.
func (s *ChatState) View() string {
	return s.input.View()
}

// StartThinking records text as awaiting a reply and clears the input.
func (s *ChatState) StartThinking(text string) {
	s.thinking = true
	s.pending = text
	s.input.SetValue("")
}

// StopThinking clears the pending message and returns it.
func (s *ChatState) StopThinking() string {
	text := s.pending
	s.thinking = false
	s.pending = ""
	return text
}

// Thinking reports whether a reply is pending.
func (s *ChatState) Thinking() bool {
	return s.thinking
}
