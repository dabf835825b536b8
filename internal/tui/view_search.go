package tui

import (
	"strings"

	"github.com/muesli/reflow/truncate"
	"github.com/thenoetrevino/dreamscape/internal/search"
	"github.com/thenoetrevino/dreamscape/internal/tui/components"
	"github.com/thenoetrevino/dreamscape/internal/tui/layers"
)

func renderSearch(m *Model) string {
	width := layers.OverlayWidth(m.UiState.Width())
	inner := max(width-6, 10)

	var b strings.Builder
	b.WriteString(components.TitleStyle.Render("Search Images"))
	b.WriteString("\n\n")
	b.WriteString(m.SearchState.View())
	b.WriteString("\n\n")

	results := m.SearchState.Results()
	switch {
	case m.SearchState.Loading():
		b.WriteString(components.SubtleStyle.Render("Searching..."))
	case len(results) == 0:
		b.WriteString(components.SubtleStyle.Render(search.EmptyState(m.SearchState.Searched())))
	default:
		for i, url := range results {
			line := truncate.StringWithTail(url, uint(inner-2), "…")
			if i == m.SearchState.Cursor() {
				b.WriteString(components.SelectedRowStyle.Render("▸ " + line))
			} else {
				b.WriteString(components.NormalStyle.Render("  " + line))
			}
			b.WriteString("\n")
		}
	}

	return components.OverlayBoxStyle.Width(width).Render(strings.TrimRight(b.String(), "\n"))
}
