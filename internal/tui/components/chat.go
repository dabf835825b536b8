package components

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/dreamscape/internal/assistant"
)

// RenderChatMessage renders one transcript entry wrapped to width.
// userName labels the user's own messages.
func RenderChatMessage(msg assistant.Message, userName string, width int) string {
	speaker := TitleStyle.Render("Nano")
	if msg.Sender == assistant.SenderUser {
		speaker = StarStyle.Render(userName)
	}

	body := wordwrap.String(msg.Text, max(width-2, 10))
	lines := strings.Split(body, "\n")
	for i, l := range lines {
		lines[i] = "  " + NormalStyle.Render(l)
	}
	return speaker + " " + SubtleStyle.Render(msg.Timestamp.Format("15:04")) + "\n" + strings.Join(lines, "\n")
}
