package tui

import (
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/dreamscape/internal/celebration"
)

// drainCelebrations shows every celebration raised while handling the last
// message. Each banner gets its own timeout; timeouts for banners that were
// replaced carry a stale generation and do nothing.
func drainCelebrations(m *Model) tea.Cmd {
	if len(*m.pending) == 0 {
		return nil
	}
	events := *m.pending
	*m.pending = nil

	duration := m.Config.Celebration.Duration
	if duration <= 0 {
		duration = celebration.DefaultDuration
	}

	var cmds []tea.Cmd
	for _, ev := range events {
		itemID := ev.ItemID
		gen := m.CelebrationState.Show(ev.Message, func() {
			slog.Debug("celebration closed", "item_id", itemID)
		})
		cmds = append(cmds, celebrationTimeout(gen, duration))
	}
	return tea.Batch(cmds...)
}

func celebrationTimeout(gen int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return CelebrationTimeoutMsg{Generation: gen}
	})
}
