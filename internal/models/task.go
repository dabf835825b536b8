package models

import "time"

// Priority is a task's importance
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Priorities lists priorities from most to least urgent
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// Status is where a task is in its lifecycle
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Statuses lists statuses in workflow order
var Statuses = []Status{StatusTodo, StatusInProgress, StatusCompleted}

// Label returns the human-readable status name
func (s Status) Label() string {
	switch s {
	case StatusTodo:
		return "To Do"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	}
	return string(s)
}

// Next returns the status after s, wrapping from completed back to todo
func (s Status) Next() Status {
	for i, st := range Statuses {
		if st == s {
			return Statuses[(i+1)%len(Statuses)]
		}
	}
	return StatusTodo
}

// DateLayout is the calendar date format used for due and created dates
const DateLayout = time.DateOnly

// Task is a single item in the task manager
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    Priority  `json:"priority"`
	Status      Status    `json:"status"`
	DueDate     time.Time `json:"due_date"`
	CreatedAt   time.Time `json:"created_at"`
}

// GetID returns the task identifier for quiet CLI output
func (t *Task) GetID() string {
	return t.ID
}

// Valid reports whether p is a known priority
func (p Priority) Valid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// Valid reports whether s is a known status
func (s Status) Valid() bool {
	return s == StatusTodo || s == StatusInProgress || s == StatusCompleted
}
