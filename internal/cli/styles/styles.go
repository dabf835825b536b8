package styles

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/dreamscape/internal/config/colors"
	"github.com/thenoetrevino/dreamscape/internal/library"
	"github.com/thenoetrevino/dreamscape/internal/models"
	"github.com/thenoetrevino/dreamscape/internal/render"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 60

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Kind:", "Priority:"
	ValueStyle    lipgloss.Style // For field values

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style

	barFill  lipgloss.Style
	barTrack lipgloss.Style

	priorityColors map[models.Priority]string
)

func init() {
	Init(*colors.Default())
}

// Init initializes all CLI styles with the given color scheme
func Init(scheme colors.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.CardBorder)).
		Padding(0, 1).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.CelebrationFg)).
		Background(lipgloss.Color(scheme.CelebrationBg)).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.ErrorFg)).
		Background(lipgloss.Color(scheme.ErrorBg)).
		Padding(0, 1)

	barFill = lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Accent))
	barTrack = lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.BarTrack))

	priorityColors = map[models.Priority]string{
		models.PriorityHigh:   scheme.PriorityHigh,
		models.PriorityMedium: scheme.PriorityMedium,
		models.PriorityLow:    scheme.PriorityLow,
	}
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// Bar renders a horizontal bar of width cells filled to fraction
func Bar(fraction float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(fraction*float64(width) + 0.5)
	filled = max(0, min(width, filled))
	return barFill.Render(strings.Repeat("█", filled)) +
		barTrack.Render(strings.Repeat("░", width-filled))
}

// RenderPriority renders a priority with its configured color
func RenderPriority(p models.Priority) string {
	return ColoredText(string(p), priorityColors[p])
}

// RenderTaskLine renders a one-line task summary
// Format: "[id] Title  (priority, Status, due YYYY-MM-DD)"
func RenderTaskLine(t *models.Task) string {
	return fmt.Sprintf("  [%s] %s  (%s, %s, due %s)",
		t.ID,
		ValueStyle.Render(t.Title),
		RenderPriority(t.Priority),
		t.Status.Label(),
		t.DueDate.Format(models.DateLayout))
}

// RenderResourceLine renders a one-line resource summary
// Format: "[id] Title  (type, ★ rating, timeframe, difficulty)"
func RenderResourceLine(r library.Resource) string {
	return fmt.Sprintf("  [%s] %s  (%s, ★ %.1f, %s, %s)",
		r.ID,
		ValueStyle.Render(r.Title),
		r.Type,
		r.Rating,
		r.Timeframe.Label(),
		r.Difficulty)
}

// RenderInsightLine renders a one-line insight summary followed by its steps
func RenderInsightLine(in library.Insight) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  [%s] %s  (%s)", in.ID, ValueStyle.Render(in.Title), LabelStyle.Render(string(in.Category)))
	for _, step := range in.ActionSteps {
		fmt.Fprintf(&b, "\n      • %s", step)
	}
	return b.String()
}

// RenderItemCard renders a board item as a bordered card
func RenderItemCard(item models.BoardItem) string {
	s := render.For(item)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", TitleStyle.Render(string(item.Kind)), SubtitleStyle.Render("#"+item.ID))
	fmt.Fprintf(&b, "%s (%d, %d)  %s %dx%d\n",
		LabelStyle.Render("At:"), item.Position.X, item.Position.Y,
		LabelStyle.Render("Size:"), item.Size.Width, item.Size.Height)

	switch s.Kind {
	case models.KindImage:
		b.WriteString(ValueStyle.Render(s.ImageSource))
	case models.KindQuote:
		b.WriteString(ValueStyle.Render("“" + s.Text + "”"))
	case models.KindProgress:
		fmt.Fprintf(&b, "%s\n%s %d%%", ValueStyle.Render(s.Label), Bar(s.Fraction, 30), s.Value)
	case models.KindGoal:
		fmt.Fprintf(&b, "%s\n%s %s", ValueStyle.Render("★ "+s.Label), LabelStyle.Render("Target:"), ValueStyle.Render(s.Target))
	}

	return CardStyle.Render(b.String())
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}
