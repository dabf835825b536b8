package task

import (
	"time"

	"github.com/thenoetrevino/dreamscape/internal/models"
)

func date(s string) time.Time {
	t, _ := time.Parse(models.DateLayout, s)
	return t
}

// SeedTasks returns the tasks every load starts from
func SeedTasks() []*models.Task {
	return []*models.Task{
		{
			ID:          "1",
			Title:       "Complete project proposal",
			Description: "Finish the initial draft of the business plan",
			Priority:    models.PriorityHigh,
			Status:      models.StatusInProgress,
			DueDate:     date("2023-12-15"),
			CreatedAt:   date("2023-12-01"),
		},
		{
			ID:          "2",
			Title:       "Research competitors",
			Description: "Analyze top 5 competitors in the market",
			Priority:    models.PriorityMedium,
			Status:      models.StatusTodo,
			DueDate:     date("2023-12-20"),
			CreatedAt:   date("2023-12-02"),
		},
		{
			ID:          "3",
			Title:       "Set up social media accounts",
			Description: "Create profiles on Instagram, Twitter, and LinkedIn",
			Priority:    models.PriorityLow,
			Status:      models.StatusCompleted,
			DueDate:     date("2023-12-10"),
			CreatedAt:   date("2023-12-03"),
		},
	}
}
