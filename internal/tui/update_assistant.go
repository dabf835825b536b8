package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/dreamscape/internal/assistant"
	"github.com/thenoetrevino/dreamscape/internal/tui/state"
)

// handleAssistantMode handles the chat screen. Every key other than the
// screen switch, help and send goes to the input.
func handleAssistantMode(m *Model, msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case m.Config.KeyMappings.SwitchScreen:
		return switchScreen(m)
	case "esc":
		m.ChatState.Blur()
		m.UiState.SetScreen(state.BoardScreen)
		return nil
	case "enter":
		return sendChatMessage(m)
	}
	return m.ChatState.Update(msg)
}

// sendChatMessage records the typed message and schedules Nano's reply.
func sendChatMessage(m *Model) tea.Cmd {
	if m.ChatState.Thinking() {
		return nil
	}
	text := m.ChatState.Value()
	if _, ok := m.App.Assistant.Ask(text); !ok {
		return nil
	}
	m.ChatState.StartThinking(text)
	return tea.Tick(assistant.ThinkingDelay, func(time.Time) tea.Msg {
		return AssistantReplyMsg{Text: text}
	})
}

func handleAssistantReply(m *Model, msg AssistantReplyMsg) tea.Cmd {
	if !m.ChatState.Thinking() {
		return nil
	}
	m.ChatState.StopThinking()
	m.App.Assistant.Answer(msg.Text)
	return nil
}
