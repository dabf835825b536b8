package task

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/thenoetrevino/dreamscape/internal/celebration"
	"github.com/thenoetrevino/dreamscape/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

var fixedNow = time.Date(2024, 3, 9, 15, 30, 0, 0, time.UTC)

func newTestService(t *testing.T, opts ...Option) Service {
	t.Helper()
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	return NewService(opts...)
}

// ============================================================================
// LIST
// ============================================================================

func TestList_Filters(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		filter  Filter
		wantIDs []string
	}{
		{"all", Filter{}, []string{"1", "2", "3"}},
		{"status todo", Filter{Status: models.StatusTodo}, []string{"2"}},
		{"priority high", Filter{Priority: models.PriorityHigh}, []string{"1"}},
		{"both must match", Filter{Status: models.StatusTodo, Priority: models.PriorityHigh}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks, err := svc.List(ctx, tt.filter)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if len(tasks) != len(tt.wantIDs) {
				t.Fatalf("List() returned %d tasks, want %d", len(tasks), len(tt.wantIDs))
			}
			for i, task := range tasks {
				if task.ID != tt.wantIDs[i] {
					t.Errorf("task[%d].ID = %s, want %s", i, task.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestList_CancelledContext(t *testing.T) {
	svc := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.List(ctx, Filter{}); !errors.Is(err, context.Canceled) {
		t.Errorf("List() error = %v, want context.Canceled", err)
	}
}

// ============================================================================
// CREATE
// ============================================================================

func TestCreate_Defaults(t *testing.T) {
	svc := newTestService(t)

	task, err := svc.Create(context.Background(), CreateTaskRequest{Title: "  Write blog post  "})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if task.Title != "Write blog post" {
		t.Errorf("Title = %q, want trimmed", task.Title)
	}
	if task.Priority != models.PriorityMedium {
		t.Errorf("Priority = %s, want medium", task.Priority)
	}
	if task.Status != models.StatusTodo {
		t.Errorf("Status = %s, want todo", task.Status)
	}
	wantDay := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	if !task.DueDate.Equal(wantDay) || !task.CreatedAt.Equal(wantDay) {
		t.Errorf("dates = %v / %v, want %v", task.DueDate, task.CreatedAt, wantDay)
	}
	if task.ID == "" {
		t.Error("ID should be assigned")
	}

	all, _ := svc.List(context.Background(), Filter{})
	if len(all) != 4 {
		t.Errorf("List() len = %d, want 4", len(all))
	}
}

func TestCreate_Validation(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name string
		req  CreateTaskRequest
		want error
	}{
		{"empty title", CreateTaskRequest{Title: ""}, ErrEmptyTitle},
		{"blank title", CreateTaskRequest{Title: "   "}, ErrEmptyTitle},
		{"long title", CreateTaskRequest{Title: strings.Repeat("a", 256)}, ErrTitleTooLong},
		{"bad priority", CreateTaskRequest{Title: "x", Priority: "urgent"}, ErrInvalidPriority},
		{"bad status", CreateTaskRequest{Title: "x", Status: "blocked"}, ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			if !errors.Is(err, tt.want) {
				t.Errorf("Create() error = %v, want %v", err, tt.want)
			}
		})
	}
}

// ============================================================================
// STATUS + DELETE
// ============================================================================

func TestUpdateStatus_CompletedCelebrates(t *testing.T) {
	var got []celebration.Event
	svc := newTestService(t, WithCelebrations(func(ev celebration.Event) { got = append(got, ev) }))
	ctx := context.Background()

	if err := svc.UpdateStatus(ctx, "2", models.StatusInProgress); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if len(got) != 0 {
		t.Fatal("in-progress must not celebrate")
	}

	if err := svc.UpdateStatus(ctx, "2", models.StatusCompleted); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d celebrations, want 1", len(got))
	}
	if got[0].Message != "You completed: Research competitors" {
		t.Errorf("Message = %q", got[0].Message)
	}

	task, _ := svc.Get(ctx, "2")
	if task.Status != models.StatusCompleted {
		t.Errorf("Status = %s, want completed", task.Status)
	}
}

func TestUpdateStatus_Errors(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if err := svc.UpdateStatus(ctx, "zzz", models.StatusTodo); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("unknown id error = %v, want ErrTaskNotFound", err)
	}
	if err := svc.UpdateStatus(ctx, "1", "paused"); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("bad status error = %v, want ErrInvalidStatus", err)
	}
}

func TestDelete_AbsentIsNoOp(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if err := svc.Delete(ctx, "zzz"); err != nil {
		t.Errorf("Delete(absent) error = %v", err)
	}
	if err := svc.Delete(ctx, "1"); err != nil {
		t.Errorf("Delete() error = %v", err)
	}

	all, _ := svc.List(ctx, Filter{})
	if len(all) != 2 {
		t.Errorf("List() len = %d, want 2", len(all))
	}
	if _, err := svc.Get(ctx, "1"); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Get(deleted) error = %v, want ErrTaskNotFound", err)
	}
}

func TestList_ReturnsCopies(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tasks, _ := svc.List(ctx, Filter{})
	tasks[0].Title = "mutated"

	fresh, _ := svc.Get(ctx, tasks[0].ID)
	if fresh.Title == "mutated" {
		t.Error("List() must not expose internal tasks")
	}
}
