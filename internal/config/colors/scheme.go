package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (titles, progress bars, selected card border)
	Accent string `yaml:"accent"`

	// Board surface
	Background     string `yaml:"background"`
	CardBackground string `yaml:"card_background"`
	CardBorder     string `yaml:"card_border"`
	ActiveBorder   string `yaml:"active_border"` // card being dragged
	BarTrack       string `yaml:"bar_track"`     // unfilled part of a progress bar

	// Text colors
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`
	Star   string `yaml:"star"`   // goal label marker
	Target string `yaml:"target"` // goal target marker

	// Task priority colors
	PriorityHigh   string `yaml:"priority_high"`
	PriorityMedium string `yaml:"priority_medium"`
	PriorityLow    string `yaml:"priority_low"`

	// Celebration banner
	CelebrationFg string `yaml:"celebration_fg"`
	CelebrationBg string `yaml:"celebration_bg"`

	// Notification colors (foreground/background pairs)
	InfoFg  string `yaml:"info_fg"`
	InfoBg  string `yaml:"info_bg"`
	ErrorFg string `yaml:"error_fg"`
	ErrorBg string `yaml:"error_bg"`
}

// Presets lists the built-in scheme names in toggle order
var Presets = []string{"default", "monochrome"}

// NextPreset returns the preset after name, wrapping around. Unknown names
// start over at the first preset.
func NextPreset(name string) string {
	for i, p := range Presets {
		if p == name {
			return Presets[(i+1)%len(Presets)]
		}
	}
	return Presets[0]
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// MergeFrom overlays every non-empty field of other onto c
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	for dst, src := range c.pairs(&other) {
		if *src != "" {
			*dst = *src
		}
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	for dst, src := range c.pairs(preset) {
		if *dst == "" {
			*dst = *src
		}
	}
}

// pairs maps each color field of c to the same field of other
func (c *ColorScheme) pairs(other *ColorScheme) map[*string]*string {
	return map[*string]*string{
		&c.Accent:         &other.Accent,
		&c.Background:     &other.Background,
		&c.CardBackground: &other.CardBackground,
		&c.CardBorder:     &other.CardBorder,
		&c.ActiveBorder:   &other.ActiveBorder,
		&c.BarTrack:       &other.BarTrack,
		&c.Subtle:         &other.Subtle,
		&c.Normal:         &other.Normal,
		&c.Star:           &other.Star,
		&c.Target:         &other.Target,
		&c.PriorityHigh:   &other.PriorityHigh,
		&c.PriorityMedium: &other.PriorityMedium,
		&c.PriorityLow:    &other.PriorityLow,
		&c.CelebrationFg:  &other.CelebrationFg,
		&c.CelebrationBg:  &other.CelebrationBg,
		&c.InfoFg:         &other.InfoFg,
		&c.InfoBg:         &other.InfoBg,
		&c.ErrorFg:        &other.ErrorFg,
		&c.ErrorBg:        &other.ErrorBg,
	}
}
