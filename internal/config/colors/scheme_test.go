package colors

import "testing"

func TestNextPreset(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"default", "monochrome"},
		{"monochrome", "default"},
		{"", "default"},
		{"solarized", "default"},
	}
	for _, tt := range tests {
		if got := NextPreset(tt.name); got != tt.want {
			t.Errorf("NextPreset(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestPresetsResolve(t *testing.T) {
	for _, name := range Presets {
		if got := GetPreset(name).Preset; got != name {
			t.Errorf("GetPreset(%q).Preset = %q", name, got)
		}
	}
}
