package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Background:     "#121212",
		CardBackground: "#1C1C1C",
		CardBorder:     "#585858",
		ActiveBorder:   "#FFFFFF",
		BarTrack:       "#3A3A3A",

		Subtle: "#585858",
		Normal: "#D0D0D0",
		Star:   "#FFFFFF",
		Target: "#D0D0D0",

		PriorityHigh:   "#FFFFFF",
		PriorityMedium: "#D0D0D0",
		PriorityLow:    "#585858",

		CelebrationFg: "#FFFFFF",
		CelebrationBg: "#000000",

		InfoFg:  "#FFFFFF",
		InfoBg:  "#3A3A3A",
		ErrorFg: "#FFFFFF",
		ErrorBg: "#585858",
	}
}
