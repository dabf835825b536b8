package state

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/dreamscape/internal/models"
)

// TaskViewState holds the Tasks screen: list filters, the cursor and the
// title input used when adding a task.
type TaskViewState struct {
	statusFilter   models.Status   // "" means all
	priorityFilter models.Priority // "" means all
	cursor         int
	input          textinput.Model
}

// NewTaskViewState creates a TaskViewState showing every task.
func NewTaskViewState() *TaskViewState {
	return &TaskViewState{input: textinput.New()}
}

// StatusFilter returns the status filter, "" for all.
func (s *TaskViewState) StatusFilter() models.Status {
	return s.statusFilter
}

// PriorityFilter returns the priority filter, "" for all.
func (s *TaskViewState) PriorityFilter() models.Priority {
	return s.priorityFilter
}

// CycleStatusFilter steps all -> todo -> in-progress -> completed -> all.
func (s *TaskViewState) CycleStatusFilter() {
	s.statusFilter = cycle(models.Statuses, s.statusFilter)
	s.cursor = 0
}

// CyclePriorityFilter steps all -> high -> medium -> low -> all.
func (s *TaskViewState) CyclePriorityFilter() {
	s.priorityFilter = cycle(models.Priorities, s.priorityFilter)
	s.cursor = 0
}

func cycle[T comparable](values []T, current T) T {
	var zero T
	if current == zero {
		return values[0]
	}
	for i, v := range values {
		if v == current {
			if i+1 < len(values) {
				return values[i+1]
			}
			return zero
		}
	}
	return zero
}

// Cursor returns the selected row.
func (s *TaskViewState) Cursor() int {
	return s.cursor
}

// MoveCursor moves the selection by delta within count rows.
func (s *TaskViewState) MoveCursor(delta, count int) {
	if count <= 0 {
		s.cursor = 0
		return
	}
	s.cursor = min(max(s.cursor+delta, 0), count-1)
}

// ClampCursor keeps the cursor inside count rows after the list shrinks.
func (s *TaskViewState) ClampCursor(count int) {
	s.MoveCursor(0, count)
}

// BeginAdd focuses an empty title input.
func (s *TaskViewState) BeginAdd() tea.Cmd {
	s.input = textinput.New()
	s.input.Placeholder = "Task title"
	s.input.CharLimit = 255
	return s.input.Focus()
}

// Title returns the title being typed.
func (s *TaskViewState) Title() string {
	return s.input.Value()
}

// Update forwards a message to the title input.
func (s *TaskViewState) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

// View renders the title input.
func (s *TaskViewState) View() string {
	return s.input.View()
}

// EndAdd blurs and clears the title input.
func (s *TaskViewState) EndAdd() {
	s.input.Blur()
	s.input.SetValue("")
}
