package task

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/dreamscape/internal/cli"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a task",
		Long:  "Delete a task by ID. Deleting an ID that does not exist succeeds without changes.",
		Args:  cobra.NoArgs,
		RunE:  runDelete,
	}

	cmd.Flags().String("id", "", "Task ID (required)")
	_ = cmd.MarkFlagRequired("id")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	taskID, _ := cmd.Flags().GetString("id")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		_ = formatter.Error("INITIALIZATION_ERROR", err.Error())
		return err
	}

	if err := cliInstance.App.TaskService.Delete(ctx, taskID); err != nil {
		_ = formatter.Error("DELETE_ERROR", err.Error())
		return err
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return formatter.Success(map[string]any{
			"deleted": taskID,
		})
	}

	formatter.Printf("✓ Task %s deleted\n", taskID)
	return nil
}
