package components

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"github.com/thenoetrevino/dreamscape/internal/models"
	"github.com/thenoetrevino/dreamscape/internal/render"
)

// Minimum card size in cells, border included
const (
	MinCardWidth  = 12
	MinCardHeight = 4
)

// CardProps describes one board card
type CardProps struct {
	Item     models.BoardItem
	Width    int // cells, border included
	Height   int // rows, border included
	Selected bool
	Active   bool // being dragged
}

// RenderCard renders a board item as a bordered card of exactly
// Width x Height cells
func RenderCard(props CardProps) string {
	width := max(props.Width, MinCardWidth)
	height := max(props.Height, MinCardHeight)
	innerWidth := width - 2
	innerHeight := height - 2

	lines := cardLines(render.For(props.Item), innerWidth)
	body := fitBlock(lines, innerWidth, innerHeight)

	style := CardStyle
	switch {
	case props.Active:
		style = ActiveCardStyle
	case props.Selected:
		style = SelectedCardStyle
	}
	return style.Render(body)
}

func cardLines(s render.Surface, width int) []string {
	switch s.Kind {
	case models.KindImage:
		lines := []string{TitleStyle.Render("▣ Image")}
		for _, l := range strings.Split(wrap.String(s.ImageSource, width), "\n") {
			lines = append(lines, SubtleStyle.Render(l))
		}
		return lines

	case models.KindQuote:
		var lines []string
		for _, l := range strings.Split(wordwrap.String("“"+s.Text+"”", width), "\n") {
			lines = append(lines, QuoteStyle.Render(l))
		}
		return lines

	case models.KindProgress:
		percent := fmt.Sprintf(" %3d%%", s.Value)
		return []string{
			TitleStyle.Render(s.Label),
			RenderBar(s.Fraction, width-len(percent)) + NormalStyle.Render(percent),
			SubtleStyle.Render("[-] [+]"),
		}

	case models.KindGoal:
		lines := []string{
			StarStyle.Render("★ " + s.Label),
			TargetStyle.Render("◎ Target: " + s.Target),
		}
		for _, step := range render.GoalSteps {
			lines = append(lines, SubtleStyle.Render("○ "+step))
		}
		return lines
	}
	return nil
}

// fitBlock truncates or pads lines to exactly width x height cells
func fitBlock(lines []string, width, height int) string {
	if len(lines) > height {
		lines = lines[:height]
	}
	out := make([]string, 0, height)
	for _, l := range lines {
		out = append(out, padRight(truncate.String(l, uint(width)), width))
	}
	for len(out) < height {
		out = append(out, strings.Repeat(" ", width))
	}
	return strings.Join(out, "\n")
}

// RenderBar renders a horizontal bar width cells wide, filled to fraction
func RenderBar(fraction float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(fraction*float64(width) + 0.5)
	filled = min(max(filled, 0), width)
	return BarFillStyle.Render(strings.Repeat("█", filled)) +
		BarTrackStyle.Render(strings.Repeat("░", width-filled))
}
