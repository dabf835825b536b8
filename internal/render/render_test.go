package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/thenoetrevino/dreamscape/internal/models"
)

func TestForContent(t *testing.T) {
	tests := []struct {
		name    string
		kind    models.Kind
		content string
		want    Surface
	}{
		{
			name:    "image passes url through",
			kind:    models.KindImage,
			content: "https://example.com/a.jpg",
			want:    Surface{Kind: models.KindImage, ImageSource: "https://example.com/a.jpg"},
		},
		{
			name:    "quote keeps raw text",
			kind:    models.KindQuote,
			content: "Stay: hungry",
			want:    Surface{Kind: models.KindQuote, Text: "Stay: hungry"},
		},
		{
			name:    "progress decodes value and fraction",
			kind:    models.KindProgress,
			content: "Learn Spanish:70",
			want:    Surface{Kind: models.KindProgress, Label: "Learn Spanish", Value: 70, Fraction: 0.7},
		},
		{
			name:    "progress tolerates missing value",
			kind:    models.KindProgress,
			content: "Learn Spanish",
			want:    Surface{Kind: models.KindProgress, Label: "Learn Spanish"},
		},
		{
			name:    "goal decodes both halves",
			kind:    models.KindGoal,
			content: "Travel to Japan:2024",
			want:    Surface{Kind: models.KindGoal, Label: "Travel to Japan", Target: "2024"},
		},
		{
			name:    "goal tolerates missing target",
			kind:    models.KindGoal,
			content: "Travel",
			want:    Surface{Kind: models.KindGoal, Label: "Travel"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ForContent(tt.kind, tt.content)); diff != "" {
				t.Errorf("ForContent mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIncrementDecrement(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) string
		in   string
		want string
	}{
		{"increment clamps at 100", Increment, "Run:95", "Run:100"},
		{"increment from malformed", Increment, "Run", "Run:10"},
		{"decrement clamps at 0", Decrement, "Run:5", "Run:0"},
		{"decrement normal", Decrement, "Run:70", "Run:60"},
		{"increment at max stays", Increment, "Run:100", "Run:100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEdit(t *testing.T) {
	tests := []struct {
		name    string
		kind    models.Kind
		content string
		field   Field
		value   string
		want    string
		wantOK  bool
	}{
		{"quote text", models.KindQuote, "old", FieldText, "new words", "new words", true},
		{"progress label keeps value", models.KindProgress, "Run:40", FieldLabel, "Swim", "Swim:40", true},
		{"goal label", models.KindGoal, "Travel:2024", FieldLabel, "Move", "Move:2024", true},
		{"goal target", models.KindGoal, "Travel:2024", FieldTarget, "2030", "Travel:2030", true},
		{"goal target from missing", models.KindGoal, "Travel", FieldTarget, "soon", "Travel:soon", true},
		{"image not editable", models.KindImage, "https://x", FieldText, "y", "https://x", false},
		{"progress has no target", models.KindProgress, "Run:40", FieldTarget, "z", "Run:40", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Edit(tt.kind, tt.content, tt.field, tt.value)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Edit() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestEditableFields(t *testing.T) {
	if len(EditableFields(models.KindImage)) != 0 {
		t.Error("images have no editable fields")
	}
	if diff := cmp.Diff([]Field{FieldLabel, FieldTarget}, EditableFields(models.KindGoal)); diff != "" {
		t.Errorf("goal fields mismatch (-want +got):\n%s", diff)
	}
	if !Steppable(models.KindProgress) || Steppable(models.KindGoal) {
		t.Error("only progress items are steppable")
	}
}
