package colors

// Default returns the default color scheme (sky blue on black)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#87CEEB",

		// Board
		Background:     "#000000",
		CardBackground: "#111827",
		CardBorder:     "#1F2937",
		ActiveBorder:   "#87CEEB",
		BarTrack:       "#1F2937",

		// Text
		Subtle: "#9CA3AF",
		Normal: "#FFFFFF",
		Star:   "#FACC15",
		Target: "#C084FC",

		// Priorities
		PriorityHigh:   "#EF4444",
		PriorityMedium: "#EAB308",
		PriorityLow:    "#22C55E",

		// Celebration
		CelebrationFg: "#87CEEB",
		CelebrationBg: "#0B0B0B",

		// Notifications
		InfoFg:  "#00AFFF",
		InfoBg:  "#00005F",
		ErrorFg: "#FF0000",
		ErrorBg: "#5F0000",
	}
}
