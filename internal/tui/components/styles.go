package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/dreamscape/internal/tui/theme"
)

// Styles derived from the theme, rebuilt by InitStyles
var (
	TitleStyle    lipgloss.Style
	SubtleStyle   lipgloss.Style
	NormalStyle   lipgloss.Style
	StarStyle     lipgloss.Style
	TargetStyle   lipgloss.Style
	QuoteStyle    lipgloss.Style
	BarFillStyle  lipgloss.Style
	BarTrackStyle lipgloss.Style

	CardStyle         lipgloss.Style
	SelectedCardStyle lipgloss.Style
	ActiveCardStyle   lipgloss.Style

	OverlayBoxStyle     lipgloss.Style
	CelebrationBoxStyle lipgloss.Style

	TabStyle       lipgloss.Style
	ActiveTabStyle lipgloss.Style
	TabGapStyle    lipgloss.Style

	SelectedRowStyle lipgloss.Style
)

func init() {
	InitStyles()
}

// InitStyles rebuilds every style from the current theme colors.
// Call after theme.Init.
func InitStyles() {
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Highlight))
	SubtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
	NormalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))
	StarStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Star))
	TargetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Target))
	QuoteStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color(theme.Normal))
	BarFillStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Highlight))
	BarTrackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.BarTrack))

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.CardBorder)).
		Background(lipgloss.Color(theme.CardBackground))
	SelectedCardStyle = CardStyle.
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(theme.Highlight))
	ActiveCardStyle = CardStyle.
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color(theme.ActiveBorder))

	OverlayBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Background(lipgloss.Color(theme.Background)).
		Padding(1, 2)
	CelebrationBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.CelebrationBg)).
		Foreground(lipgloss.Color(theme.CelebrationFg)).
		Background(lipgloss.Color(theme.CelebrationBg)).
		Bold(true).
		Padding(1, 3)

	tabBorder := lipgloss.RoundedBorder()
	TabStyle = lipgloss.NewStyle().
		Border(tabBorder, true, true, false, true).
		BorderForeground(lipgloss.Color(theme.Subtle)).
		Foreground(lipgloss.Color(theme.Subtle)).
		Padding(0, 1)
	ActiveTabStyle = TabStyle.
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Foreground(lipgloss.Color(theme.Highlight)).
		Bold(true)
	TabGapStyle = lipgloss.NewStyle()

	SelectedRowStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Highlight))
}
