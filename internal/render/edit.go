package render

import "github.com/thenoetrevino/dreamscape/internal/models"

// Edit returns the re-encoded content after replacing field with value.
// ok is false when the kind has no such field, in which case content is
// returned unchanged.
func Edit(kind models.Kind, content string, field Field, value string) (string, bool) {
	switch kind {
	case models.KindQuote:
		if field == FieldText {
			return value, true
		}
	case models.KindProgress:
		if field == FieldLabel {
			p := models.ParseProgress(content)
			p.Label = value
			return p.String(), true
		}
	case models.KindGoal:
		g := models.ParseGoal(content)
		switch field {
		case FieldLabel:
			g.Label = value
			return g.String(), true
		case FieldTarget:
			g.Target = value
			return g.String(), true
		}
	}
	return content, false
}

// Increment steps a progress content up by one step, saturating at 100
func Increment(content string) string {
	return models.ParseProgress(content).Step(models.ProgressStep).String()
}

// Decrement steps a progress content down by one step, saturating at 0
func Decrement(content string) string {
	return models.ParseProgress(content).Step(-models.ProgressStep).String()
}
