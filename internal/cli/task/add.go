package task

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/dreamscape/internal/cli"
	"github.com/thenoetrevino/dreamscape/internal/models"
	taskservice "github.com/thenoetrevino/dreamscape/internal/services/task"
)

// AddCmd returns the task add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task",
		Long: `Add a task to the task manager.

Examples:
  # Simple task (human-readable output)
  dreamscape tasks add --title="Book language class"

  # Quiet mode for bash capture
  TASK_ID=$(dreamscape tasks add --title="Book language class" --quiet)

  # Full example with all options
  dreamscape tasks add \
    --title="Practice speech" \
    --description="Ten minutes in front of a mirror" \
    --priority=high \
    --status=in-progress \
    --due=2024-06-01
`,
		Args: cobra.NoArgs,
		RunE: runAdd,
	}

	cmd.Flags().String("title", "", "Task title (required)")
	_ = cmd.MarkFlagRequired("title")

	cmd.Flags().String("description", "", "Task description")
	cmd.Flags().String("priority", string(models.PriorityMedium), "Priority: high, medium, low")
	cmd.Flags().String("status", string(models.StatusTodo), "Status: todo, in-progress, completed")
	cmd.Flags().String("due", "", "Due date YYYY-MM-DD (defaults to today)")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	priorityFlag, _ := cmd.Flags().GetString("priority")
	statusFlag, _ := cmd.Flags().GetString("status")
	dueFlag, _ := cmd.Flags().GetString("due")

	priority, err := cli.ParsePriority(priorityFlag)
	if err != nil {
		_ = formatter.Error("INVALID_PRIORITY", err.Error())
		return cli.WithCode(cli.ExitUsage, err)
	}
	status, err := cli.ParseStatus(statusFlag)
	if err != nil {
		_ = formatter.Error("INVALID_STATUS", err.Error())
		return cli.WithCode(cli.ExitUsage, err)
	}
	due, err := cli.ParseDueDate(dueFlag)
	if err != nil {
		_ = formatter.Error("INVALID_DUE_DATE", err.Error())
		return cli.WithCode(cli.ExitUsage, err)
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		_ = formatter.Error("INITIALIZATION_ERROR", err.Error())
		return err
	}

	task, err := cliInstance.App.TaskService.Create(ctx, taskservice.CreateTaskRequest{
		Title:       title,
		Description: description,
		Priority:    priority,
		Status:      status,
		DueDate:     due,
	})
	if err != nil {
		if errors.Is(err, taskservice.ErrEmptyTitle) || errors.Is(err, taskservice.ErrTitleTooLong) {
			_ = formatter.Error("INVALID_TITLE", err.Error())
			return cli.WithCode(cli.ExitUsage, err)
		}
		_ = formatter.Error("TASK_CREATE_ERROR", err.Error())
		return err
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(task)
	}

	formatter.Printf("✓ Task %s created: %s\n", task.ID, task.Title)
	formatter.Printf("  Priority: %s  Status: %s  Due: %s\n",
		task.Priority, task.Status.Label(), task.DueDate.Format(models.DateLayout))
	return nil
}
