package task

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/dreamscape/internal/cli"
	"github.com/thenoetrevino/dreamscape/internal/cli/styles"
	"github.com/thenoetrevino/dreamscape/internal/models"
	taskservice "github.com/thenoetrevino/dreamscape/internal/services/task"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks, optionally filtered by status and priority.

Examples:
  dreamscape tasks list
  dreamscape tasks list --status=todo --priority=high
  dreamscape tasks list --json
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().String("status", "all", "Status filter: all, todo, in-progress, completed")
	cmd.Flags().String("priority", "all", "Priority filter: all, high, medium, low")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	statusFlag, _ := cmd.Flags().GetString("status")
	priorityFlag, _ := cmd.Flags().GetString("priority")

	var filter taskservice.Filter
	if v := cli.FilterValue(statusFlag); v != "" {
		status, err := cli.ParseStatus(v)
		if err != nil {
			_ = formatter.Error("INVALID_STATUS", err.Error())
			return cli.WithCode(cli.ExitUsage, err)
		}
		filter.Status = status
	}
	if v := cli.FilterValue(priorityFlag); v != "" {
		priority, err := cli.ParsePriority(v)
		if err != nil {
			_ = formatter.Error("INVALID_PRIORITY", err.Error())
			return cli.WithCode(cli.ExitUsage, err)
		}
		filter.Priority = priority
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		_ = formatter.Error("INITIALIZATION_ERROR", err.Error())
		return err
	}

	tasks, err := cliInstance.App.TaskService.List(ctx, filter)
	if err != nil {
		_ = formatter.Error("TASK_FETCH_ERROR", err.Error())
		return err
	}

	if formatter.Quiet {
		for _, t := range tasks {
			formatter.Printf("%s\n", t.ID)
		}
		return nil
	}

	if formatter.JSON {
		if tasks == nil {
			tasks = []*models.Task{}
		}
		return formatter.Success(tasks)
	}

	if len(tasks) == 0 {
		formatter.Printf("No tasks found\n")
		return nil
	}

	formatter.Printf("Found %d tasks:\n\n", len(tasks))
	for _, t := range tasks {
		formatter.Printf("%s\n", styles.RenderTaskLine(t))
	}
	return nil
}
