package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/dreamscape/internal/cli"
	"github.com/thenoetrevino/dreamscape/internal/cli/ask"
	"github.com/thenoetrevino/dreamscape/internal/cli/board"
	"github.com/thenoetrevino/dreamscape/internal/cli/library"
	"github.com/thenoetrevino/dreamscape/internal/cli/task"
	"github.com/thenoetrevino/dreamscape/internal/launcher"
)

var rootCmd = &cobra.Command{
	Use:   "dreamscape",
	Short: "Dreamscape - a terminal dream board",
	Long: `Dreamscape is a terminal dream board for the images, quotes, progress
trackers and goals you want to keep in view.

Run without a subcommand to open the board.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return launcher.Launch(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(board.SearchCmd())
	rootCmd.AddCommand(ask.AskCmd())
	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(library.ResourcesCmd())
	rootCmd.AddCommand(library.InsightsCmd())

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\nRun '%s --help' for usage.\n", err, cmd.CommandPath())
		return cli.WithCode(cli.ExitUsage, err)
	})
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return cli.ExitSuccess
	}

	// Coded errors have already been reported
	var coded *cli.CodedError
	if !errors.As(err, &coded) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return cli.ExitCode(err)
}
