// Package render maps a board item's kind and content to a display surface
// and to the edits that surface allows. Everything here is a pure function of
// item state; callers apply the returned content through the board store.
package render

import (
	"github.com/thenoetrevino/dreamscape/internal/models"
)

// Field names an editable part of a surface
type Field int

const (
	FieldNone Field = iota
	FieldText
	FieldLabel
	FieldTarget
)

// GoalSteps is the fixed checklist shown under every goal
var GoalSteps = []string{
	"Research and plan",
	"Set milestones",
	"Track progress regularly",
}

// Surface is the kind-specific presentation of an item
type Surface struct {
	Kind models.Kind

	// image
	ImageSource string

	// quote
	Text string

	// progress and goal
	Label string

	// progress
	Value    int
	Fraction float64

	// goal
	Target string
}

// For builds the surface for item
func For(item models.BoardItem) Surface {
	return ForContent(item.Kind, item.Content)
}

// ForContent builds the surface for a kind and raw content string
func ForContent(kind models.Kind, content string) Surface {
	s := Surface{Kind: kind}
	switch kind {
	case models.KindImage:
		s.ImageSource = content
	case models.KindQuote:
		s.Text = content
	case models.KindProgress:
		p := models.ParseProgress(content)
		s.Label = p.Label
		s.Value = p.Value
		s.Fraction = p.Fraction()
	case models.KindGoal:
		g := models.ParseGoal(content)
		s.Label = g.Label
		s.Target = g.Target
	}
	return s
}

// EditableFields lists the fields a kind allows editing, in tab order
func EditableFields(kind models.Kind) []Field {
	switch kind {
	case models.KindQuote:
		return []Field{FieldText}
	case models.KindProgress:
		return []Field{FieldLabel}
	case models.KindGoal:
		return []Field{FieldLabel, FieldTarget}
	}
	return nil
}

// Steppable reports whether the kind exposes increment and decrement
func Steppable(kind models.Kind) bool {
	return kind == models.KindProgress
}

// FieldValue returns the current text of field for editing
func (s Surface) FieldValue(f Field) string {
	switch f {
	case FieldText:
		return s.Text
	case FieldLabel:
		return s.Label
	case FieldTarget:
		return s.Target
	}
	return ""
}
