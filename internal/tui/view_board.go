package tui

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/dreamscape/internal/render"
	"github.com/thenoetrevino/dreamscape/internal/tui/components"
	"github.com/thenoetrevino/dreamscape/internal/tui/layers"
)

// boardLayers places every card at its board position. Paint order decides
// z: the dragged card is last so it is drawn above the rest.
func boardLayers(m *Model) []*lipgloss.Layer {
	items := m.Drag.PaintOrder(m.App.Board.Items())
	if len(items) == 0 {
		empty := components.SubtleStyle.Render("Your board is empty. Press " + m.Config.KeyMappings.AddItem + " to add something.")
		return []*lipgloss.Layer{
			lipgloss.NewLayer(empty).X(2).Y(layers.HeaderHeight + 1).Z(layers.ZCards),
		}
	}

	out := make([]*lipgloss.Layer, 0, len(items))
	for i, item := range items {
		r := m.cardRect(item)
		card := components.RenderCard(components.CardProps{
			Item:     item,
			Width:    r.W,
			Height:   r.H,
			Selected: item.ID == m.UiState.SelectedItem(),
			Active:   item.ID == m.Drag.Active(),
		})
		out = append(out, lipgloss.NewLayer(card).X(r.X).Y(r.Y).Z(layers.ZCards+i))
	}
	return out
}

func renderAddMenu(m *Model) string {
	width := layers.OverlayWidth(m.UiState.Width())
	body := components.TitleStyle.Render("Add to your board") + "\n\n" +
		components.NormalStyle.Render("i  Image") + "\n" +
		components.NormalStyle.Render("q  Quote") + "\n" +
		components.NormalStyle.Render("p  Progress") + "\n" +
		components.NormalStyle.Render("g  Goal") + "\n" +
		components.NormalStyle.Render("s  Search images") + "\n\n" +
		components.SubtleStyle.Render("esc to cancel")
	return components.OverlayBoxStyle.Width(width).Render(body)
}

func renderEdit(m *Model) string {
	width := layers.OverlayWidth(m.UiState.Width())
	title := "Edit"
	switch m.EditState.Field() {
	case render.FieldText:
		title = "Edit quote"
	case render.FieldLabel:
		title = "Edit label"
	case render.FieldTarget:
		title = "Edit target"
	}
	body := components.TitleStyle.Render(title) + "\n\n" + m.EditState.View()
	return components.OverlayBoxStyle.Width(width).Render(body)
}
