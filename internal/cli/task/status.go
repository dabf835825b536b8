package task

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/dreamscape/internal/celebration"
	"github.com/thenoetrevino/dreamscape/internal/cli"
	"github.com/thenoetrevino/dreamscape/internal/cli/styles"
	taskservice "github.com/thenoetrevino/dreamscape/internal/services/task"
)

// StatusCmd returns the task status subcommand
func StatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Change a task's status",
		Long: `Change a task's status. Completing a task prints a celebration.

Examples:
  dreamscape tasks status --id=2 --status=completed
`,
		Args: cobra.NoArgs,
		RunE: runStatus,
	}

	cmd.Flags().String("id", "", "Task ID (required)")
	_ = cmd.MarkFlagRequired("id")
	cmd.Flags().String("status", "", "New status: todo, in-progress, completed (required)")
	_ = cmd.MarkFlagRequired("status")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	taskID, _ := cmd.Flags().GetString("id")
	statusFlag, _ := cmd.Flags().GetString("status")

	status, err := cli.ParseStatus(statusFlag)
	if err != nil {
		_ = formatter.Error("INVALID_STATUS", err.Error())
		return cli.WithCode(cli.ExitUsage, err)
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		_ = formatter.Error("INITIALIZATION_ERROR", err.Error())
		return err
	}

	var celebrated []celebration.Event
	cliInstance.App.OnCelebration(func(ev celebration.Event) {
		celebrated = append(celebrated, ev)
	})

	if err := cliInstance.App.TaskService.UpdateStatus(ctx, taskID, status); err != nil {
		if errors.Is(err, taskservice.ErrTaskNotFound) {
			_ = formatter.ErrorWithSuggestion("TASK_NOT_FOUND",
				fmt.Sprintf("task %s not found", taskID),
				"Use 'dreamscape tasks list' to see available tasks")
			return cli.WithCode(cli.ExitNotFound, err)
		}
		_ = formatter.Error("TASK_UPDATE_ERROR", err.Error())
		return err
	}

	task, err := cliInstance.App.TaskService.Get(ctx, taskID)
	if err != nil {
		_ = formatter.Error("TASK_FETCH_ERROR", err.Error())
		return err
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(task)
	}

	formatter.Printf("✓ Task %s is now %s\n", task.ID, task.Status.Label())
	for _, ev := range celebrated {
		formatter.Printf("%s\n", styles.SuccessStyle.Render("🎉 "+ev.Message))
	}
	return nil
}
