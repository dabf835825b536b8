package tui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/dreamscape/internal/tui/components"
	"github.com/thenoetrevino/dreamscape/internal/tui/layers"
)

// renderAssistant draws the transcript bottom-up so the newest messages stay
// visible above the input.
func renderAssistant(m *Model) string {
	width := m.UiState.Width()
	room := max(m.UiState.Height()-layers.HeaderHeight-layers.StatusBarHeight, 3)

	input := " " + m.ChatState.View()
	footer := []string{""}
	if m.ChatState.Thinking() {
		footer = append(footer, " "+components.SubtleStyle.Render("Nano is thinking..."))
	}
	footer = append(footer, input)

	avail := room - len(footer)
	var blocks []string
	msgs := m.App.Assistant.Messages()
	for i := len(msgs) - 1; i >= 0 && avail > 0; i-- {
		block := components.RenderChatMessage(msgs[i], m.userName, width-2)
		h := lipgloss.Height(block) + 1
		if h > avail {
			break
		}
		avail -= h
		blocks = append([]string{block, ""}, blocks...)
	}

	return strings.Join(append(blocks, footer...), "\n")
}
