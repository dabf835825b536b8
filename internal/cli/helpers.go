package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/thenoetrevino/dreamscape/internal/models"
)

// ParsePriority validates a priority flag value
func ParsePriority(priority string) (models.Priority, error) {
	p := models.Priority(strings.ToLower(strings.TrimSpace(priority)))
	if !p.Valid() {
		return "", fmt.Errorf("invalid priority '%s' (must be: high, medium, low)", priority)
	}
	return p, nil
}

// ParseStatus validates a status flag value. Underscores and spaces are
// accepted in place of the dash in "in-progress".
func ParseStatus(status string) (models.Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(status))
	normalized = strings.NewReplacer("_", "-", " ", "-").Replace(normalized)
	s := models.Status(normalized)
	if !s.Valid() {
		return "", fmt.Errorf("invalid status '%s' (must be: todo, in-progress, completed)", status)
	}
	return s, nil
}

// ParseDueDate parses a YYYY-MM-DD date. Empty input yields the zero time.
func ParseDueDate(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, nil
	}
	d, err := time.Parse(models.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid due date '%s' (want YYYY-MM-DD): %w", value, err)
	}
	return d, nil
}

// FilterValue turns "all" or an empty flag into an empty filter value
func FilterValue(value string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "all" {
		return ""
	}
	return v
}

// ParseChoice validates a filter flag against allowed. "all" and an empty
// flag yield the zero value.
func ParseChoice[T ~string](name, value string, allowed []T) (T, error) {
	v := FilterValue(value)
	if v == "" {
		return "", nil
	}
	names := make([]string, 0, len(allowed))
	for _, a := range allowed {
		if string(a) == v {
			return a, nil
		}
		names = append(names, string(a))
	}
	return "", fmt.Errorf("invalid %s '%s' (must be: all, %s)", name, value, strings.Join(names, ", "))
}
