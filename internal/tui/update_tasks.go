package tui

import (
	"errors"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/dreamscape/internal/models"
	taskservice "github.com/thenoetrevino/dreamscape/internal/services/task"
	"github.com/thenoetrevino/dreamscape/internal/tui/state"
)

// visibleTasks lists the tasks that pass the current filters.
func visibleTasks(m *Model) []*models.Task {
	tasks, err := m.App.TaskService.List(m.Ctx, taskservice.Filter{
		Status:   m.TaskViewState.StatusFilter(),
		Priority: m.TaskViewState.PriorityFilter(),
	})
	if err != nil {
		slog.Error("failed to list tasks", "error", err)
		return nil
	}
	return tasks
}

func selectedTask(m *Model) (*models.Task, bool) {
	tasks := visibleTasks(m)
	cursor := m.TaskViewState.Cursor()
	if cursor < 0 || cursor >= len(tasks) {
		return nil, false
	}
	return tasks[cursor], true
}

// handleTasksMode handles keyboard input on the tasks screen.
func handleTasksMode(m *Model, msg tea.KeyPressMsg) tea.Cmd {
	m.NotificationState.Clear()

	key := msg.String()
	km := m.Config.KeyMappings

	switch key {
	case km.Quit:
		return tea.Quit
	case km.ShowHelp:
		m.UiState.SetMode(state.HelpMode)
	case km.SwitchScreen:
		return switchScreen(m)
	case km.ToggleTheme:
		toggleTheme(m)
	case km.AddTask:
		m.UiState.SetMode(state.TaskAddMode)
		return m.TaskViewState.BeginAdd()
	case km.DeleteTask:
		deleteSelectedTask(m)
	case km.CycleStatus:
		cycleSelectedTaskStatus(m)
	case km.FilterStatus:
		m.TaskViewState.CycleStatusFilter()
		m.TaskViewState.ClampCursor(len(visibleTasks(m)))
	case km.FilterPriority:
		m.TaskViewState.CyclePriorityFilter()
		m.TaskViewState.ClampCursor(len(visibleTasks(m)))
	case km.NextTask, "down":
		m.TaskViewState.MoveCursor(1, len(visibleTasks(m)))
	case km.PrevTask, "up":
		m.TaskViewState.MoveCursor(-1, len(visibleTasks(m)))
	}
	return nil
}

func deleteSelectedTask(m *Model) {
	task, ok := selectedTask(m)
	if !ok {
		return
	}
	if err := m.App.TaskService.Delete(m.Ctx, task.ID); err != nil {
		slog.Error("failed to delete task", "task_id", task.ID, "error", err)
		m.NotificationState.Add(state.LevelError, "Failed to delete task")
		return
	}
	m.TaskViewState.ClampCursor(len(visibleTasks(m)))
}

func cycleSelectedTaskStatus(m *Model) {
	task, ok := selectedTask(m)
	if !ok {
		return
	}
	if err := m.App.TaskService.UpdateStatus(m.Ctx, task.ID, task.Status.Next()); err != nil {
		slog.Error("failed to update task status", "task_id", task.ID, "error", err)
		m.NotificationState.Add(state.LevelError, "Failed to update task")
		return
	}
	m.TaskViewState.ClampCursor(len(visibleTasks(m)))
}

// handleTaskAddMode creates a task from the typed title on enter.
func handleTaskAddMode(m *Model, msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.TaskViewState.EndAdd()
		m.UiState.SetMode(state.NormalMode)
		return nil
	case "enter":
		_, err := m.App.TaskService.Create(m.Ctx, taskservice.CreateTaskRequest{
			Title: m.TaskViewState.Title(),
		})
		switch {
		case errors.Is(err, taskservice.ErrEmptyTitle):
			m.NotificationState.Add(state.LevelError, "Task title cannot be empty")
			return nil
		case err != nil:
			slog.Error("failed to create task", "error", err)
			m.NotificationState.Add(state.LevelError, "Failed to create task")
			return nil
		}
		m.TaskViewState.EndAdd()
		m.UiState.SetMode(state.NormalMode)
		m.NotificationState.Add(state.LevelSuccess, "Task added")
		return nil
	}
	return m.TaskViewState.Update(msg)
}
