// Package task holds the task manager commands. Each invocation starts from
// the seed tasks.
package task

import (
	"github.com/spf13/cobra"
)

// TaskCmd returns the tasks parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tasks",
		Aliases: []string{"task"},
		Short:   "Manage tasks",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(AddCmd())
	cmd.AddCommand(StatusCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}
