package state

import (
	"testing"

	"github.com/thenoetrevino/dreamscape/internal/library"
	"github.com/thenoetrevino/dreamscape/internal/models"
)

func TestCycleStatusFilter(t *testing.T) {
	s := NewTaskViewState()
	want := []models.Status{models.StatusTodo, models.StatusInProgress, models.StatusCompleted, ""}

	for i, w := range want {
		s.CycleStatusFilter()
		if s.StatusFilter() != w {
			t.Errorf("step %d: StatusFilter() = %q, want %q", i, s.StatusFilter(), w)
		}
	}
}

func TestCyclePriorityFilter(t *testing.T) {
	s := NewTaskViewState()
	want := []models.Priority{models.PriorityHigh, models.PriorityMedium, models.PriorityLow, ""}

	for i, w := range want {
		s.CyclePriorityFilter()
		if s.PriorityFilter() != w {
			t.Errorf("step %d: PriorityFilter() = %q, want %q", i, s.PriorityFilter(), w)
		}
	}
}

// TestMoveCursor_Bounds ensures the cursor stays within the list.
func TestMoveCursor_Bounds(t *testing.T) {
	s := NewTaskViewState()

	s.MoveCursor(-1, 3)
	if s.Cursor() != 0 {
		t.Errorf("Cursor() = %d, want 0", s.Cursor())
	}

	s.MoveCursor(5, 3)
	if s.Cursor() != 2 {
		t.Errorf("Cursor() = %d, want 2", s.Cursor())
	}

	s.ClampCursor(1)
	if s.Cursor() != 0 {
		t.Errorf("Cursor() after shrink = %d, want 0", s.Cursor())
	}

	s.MoveCursor(1, 0)
	if s.Cursor() != 0 {
		t.Errorf("Cursor() on empty list = %d, want 0", s.Cursor())
	}
}

func TestSearchState_StaleResults(t *testing.T) {
	s := NewSearchState()
	_ = s.Open()

	if s.SetResults("mountains", []string{"a"}) {
		t.Error("results for a query not in the input should be ignored")
	}
	if s.Current() {
		t.Error("Current() with no search = true")
	}

	if !s.SetResults("", nil) {
		t.Error("results for the current (empty) query should be kept")
	}
	if _, ok := s.Selected(); ok {
		t.Error("Selected() with no results should be false")
	}
}

func TestSearchState_Cursor(t *testing.T) {
	s := NewSearchState()
	s.results = []string{"a", "b", "c"}

	s.MoveCursor(1)
	s.MoveCursor(5)
	if got, _ := s.Selected(); got != "c" {
		t.Errorf("Selected() = %q, want c", got)
	}
	s.MoveCursor(-10)
	if got, _ := s.Selected(); got != "a" {
		t.Errorf("Selected() = %q, want a", got)
	}
}

func TestResourceViewState_Filter(t *testing.T) {
	s := NewResourceViewState()
	if got := s.Filter(); got != (library.ResourceFilter{}) {
		t.Fatalf("initial Filter() = %+v, want zero", got)
	}

	s.MoveCursor(2, 5)
	s.CycleType()
	s.CycleTimeframe()
	s.CycleDifficulty()
	s.CycleDifficulty()

	want := library.ResourceFilter{Type: library.TypeArticle, Timeframe: library.ShortTerm, Difficulty: library.Medium}
	if got := s.Filter(); got != want {
		t.Errorf("Filter() = %+v, want %+v", got, want)
	}
	if s.Cursor() != 0 {
		t.Errorf("changing a filter should reset the cursor, got %d", s.Cursor())
	}
}

func TestInsightViewState_CycleCategory(t *testing.T) {
	s := NewInsightViewState()
	for _, want := range append(library.Categories, "") {
		s.CycleCategory()
		if s.Category() != want {
			t.Errorf("Category() = %q, want %q", s.Category(), want)
		}
	}
}

func TestListQuery_EndQueryClears(t *testing.T) {
	s := NewInsightViewState()
	s.BeginQuery()
	s.input.SetValue("  habit ")
	if s.Query() != "habit" {
		t.Errorf("Query() = %q, want trimmed habit", s.Query())
	}

	s.EndQuery(false)
	if s.Query() != "habit" {
		t.Errorf("EndQuery(false) dropped the query")
	}
	s.EndQuery(true)
	if s.Query() != "" {
		t.Errorf("EndQuery(true) kept %q", s.Query())
	}
}
