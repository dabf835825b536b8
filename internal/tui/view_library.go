package tui

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/dreamscape/internal/tui/components"
	"github.com/thenoetrevino/dreamscape/internal/tui/layers"
	"github.com/thenoetrevino/dreamscape/internal/tui/state"
)

const (
	noResourcesMessage = "No resources found. Try adjusting your search or filters."
	noInsightsMessage  = "No insights match. Try another category or search."
)

// libraryHeader renders the title, the filter summary and the query line
func libraryHeader(m *Model, title, filters string, query *state.ListQuery) []string {
	lines := []string{" " + components.TitleStyle.Render(title) + "  " + components.SubtleStyle.Render(filters)}
	if m.UiState.Mode() == state.QueryMode || query.Query() != "" {
		lines = append(lines, "  "+query.View())
	}
	return append(lines, "")
}

func renderResources(m *Model) string {
	width := m.UiState.Width()
	vs := m.ResourceViewState
	f := vs.Filter()

	lines := libraryHeader(m, "Nano's Resource Library", fmt.Sprintf(
		"type: %s · timeframe: %s · difficulty: %s",
		filterLabel(f.Type), filterLabel(f.Timeframe), filterLabel(f.Difficulty),
	), &vs.ListQuery)

	resources := visibleResources(m)
	if len(resources) == 0 {
		lines = append(lines, "  "+components.SubtleStyle.Render(noResourcesMessage))
		return strings.Join(lines, "\n")
	}

	for i, r := range resources {
		lines = append(lines, components.RenderResourceRow(r, i == vs.Cursor(), width))
	}

	if c := vs.Cursor(); c < len(resources) {
		detail := components.RenderResourceDetail(resources[c], layers.OverlayWidth(width))
		lines = append(lines, "", indent(detail, "  "))
	}
	return strings.Join(lines, "\n")
}

func renderInsights(m *Model) string {
	width := m.UiState.Width()
	vs := m.InsightViewState

	lines := libraryHeader(m, "Nano's Insights", "category: "+filterLabel(vs.Category()), &vs.ListQuery)

	insights := visibleInsights(m)
	if len(insights) == 0 {
		lines = append(lines, "  "+components.SubtleStyle.Render(noInsightsMessage))
		return strings.Join(lines, "\n")
	}

	for i, in := range insights {
		lines = append(lines, components.RenderInsightRow(in, i == vs.Cursor(), width))
	}

	if c := vs.Cursor(); c < len(insights) {
		detail := components.RenderInsightDetail(insights[c], layers.OverlayWidth(width))
		lines = append(lines, "", indent(detail, "  "))
	}
	return strings.Join(lines, "\n")
}

func indent(s, prefix string) string {
	return prefix + strings.ReplaceAll(s, "\n", "\n"+prefix)
}
