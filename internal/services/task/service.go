package task

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/dreamscape/internal/celebration"
	"github.com/thenoetrevino/dreamscape/internal/models"
)

// MaxTitleLength bounds task titles
const MaxTitleLength = 255

// Service defines all task-related business operations
type Service interface {
	// Read operations
	List(ctx context.Context, filter Filter) ([]*models.Task, error)
	Get(ctx context.Context, id string) (*models.Task, error)

	// Write operations
	Create(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	UpdateStatus(ctx context.Context, id string, status models.Status) error
	Delete(ctx context.Context, id string) error
}

// Filter narrows List results. Empty fields match everything.
type Filter struct {
	Status   models.Status
	Priority models.Priority
}

func (f Filter) matches(t *models.Task) bool {
	statusMatch := f.Status == "" || t.Status == f.Status
	priorityMatch := f.Priority == "" || t.Priority == f.Priority
	return statusMatch && priorityMatch
}

// CreateTaskRequest encapsulates all data needed to create a task
type CreateTaskRequest struct {
	Title       string
	Description string
	Priority    models.Priority // Optional: empty means medium
	Status      models.Status   // Optional: empty means todo
	DueDate     time.Time       // Optional: zero means today
}

// Option configures the service
type Option func(*service)

// WithClock overrides the time source
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// WithCelebrations reports completed tasks to sink
func WithCelebrations(sink celebration.Sink) Option {
	return func(s *service) {
		s.celebrate = sink
	}
}

// WithTasks replaces the seed tasks
func WithTasks(tasks []*models.Task) Option {
	return func(s *service) {
		s.tasks = tasks
	}
}

// service implements Service over an in-memory slice
type service struct {
	tasks     []*models.Task
	now       func() time.Time
	celebrate celebration.Sink
}

// NewService creates a new task service holding the seed tasks
func NewService(opts ...Option) Service {
	s := &service{
		tasks: SeedTasks(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns tasks matching filter in insertion order
func (s *service) List(ctx context.Context, filter Filter) ([]*models.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]*models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if filter.matches(t) {
			copied := *t
			out = append(out, &copied)
		}
	}
	return out, nil
}

// Get returns one task by id
func (s *service) Get(ctx context.Context, id string) (*models.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return nil, ErrTaskNotFound
	}
	copied := *s.tasks[idx]
	return &copied, nil
}

// Create handles task creation with validation and defaults
func (s *service) Create(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateCreateTask(req); err != nil {
		return nil, err
	}

	today := s.today()
	t := &models.Task{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
		DueDate:     req.DueDate,
		CreatedAt:   today,
	}
	if t.Priority == "" {
		t.Priority = models.PriorityMedium
	}
	if t.Status == "" {
		t.Status = models.StatusTodo
	}
	if t.DueDate.IsZero() {
		t.DueDate = today
	}

	s.tasks = append(s.tasks, t)
	slog.Debug("task created", "task_id", t.ID, "priority", t.Priority)

	copied := *t
	return &copied, nil
}

// UpdateStatus changes a task's status. Moving into completed celebrates.
func (s *service) UpdateStatus(ctx context.Context, id string, status models.Status) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !status.Valid() {
		return ErrInvalidStatus
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return ErrTaskNotFound
	}

	t := s.tasks[idx]
	t.Status = status
	slog.Debug("task status updated", "task_id", id, "status", status)

	if status == models.StatusCompleted && s.celebrate != nil {
		s.celebrate(celebration.Event{
			ItemID:  t.ID,
			Label:   t.Title,
			Message: celebration.TaskMessage(t.Title),
		})
	}
	return nil
}

// Delete removes a task. Deleting an absent id is not an error.
func (s *service) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}
	s.tasks = slices.Delete(s.tasks, idx, idx+1)
	slog.Debug("task deleted", "task_id", id)
	return nil
}

func (s *service) indexOf(id string) int {
	return slices.IndexFunc(s.tasks, func(t *models.Task) bool {
		return t.ID == id
	})
}

func (s *service) today() time.Time {
	n := s.now()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
}

func validateCreateTask(req CreateTaskRequest) error {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	if req.Priority != "" && !req.Priority.Valid() {
		return ErrInvalidPriority
	}
	if req.Status != "" && !req.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}
