package theme

import "github.com/thenoetrevino/dreamscape/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	Background     string
	CardBackground string
	CardBorder     string
	ActiveBorder   string
	BarTrack       string
	Subtle         string
	Normal         string
	Star           string
	Target         string
	PriorityHigh   string
	PriorityMedium string
	PriorityLow    string
	CelebrationFg  string
	CelebrationBg  string
	InfoFg         string
	InfoBg         string
	ErrorFg        string
	ErrorBg        string
)

func init() {
	Init(*colors.Default())
}

// Init initializes the theme colors from the given color scheme
func Init(scheme colors.ColorScheme) {
	Highlight = scheme.Accent
	Background = scheme.Background
	CardBackground = scheme.CardBackground
	CardBorder = scheme.CardBorder
	ActiveBorder = scheme.ActiveBorder
	BarTrack = scheme.BarTrack
	Subtle = scheme.Subtle
	Normal = scheme.Normal
	Star = scheme.Star
	Target = scheme.Target
	PriorityHigh = scheme.PriorityHigh
	PriorityMedium = scheme.PriorityMedium
	PriorityLow = scheme.PriorityLow
	CelebrationFg = scheme.CelebrationFg
	CelebrationBg = scheme.CelebrationBg
	InfoFg = scheme.InfoFg
	InfoBg = scheme.InfoBg
	ErrorFg = scheme.ErrorFg
	ErrorBg = scheme.ErrorBg
}
