// Package board holds the read-only board commands: printing the seed board and
// running an image search.
package board

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/dreamscape/internal/cli"
	"github.com/thenoetrevino/dreamscape/internal/cli/styles"
)

// BoardCmd returns the board subcommand
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Print the dream board",
		Long: `Print every item on the dream board with its position and decoded content.

Examples:
  # Cards (human-readable output)
  dreamscape board

  # JSON output for agents
  dreamscape board --json

  # Item IDs only
  dreamscape board --quiet
`,
		Args: cobra.NoArgs,
		RunE: runBoard,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runBoard(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		_ = formatter.Error("INITIALIZATION_ERROR", err.Error())
		return err
	}

	items := cliInstance.App.Board.Items()

	if formatter.Quiet {
		for _, item := range items {
			formatter.Printf("%s\n", item.ID)
		}
		return nil
	}

	if formatter.JSON {
		return formatter.Success(items)
	}

	if len(items) == 0 {
		formatter.Printf("The board is empty\n")
		return nil
	}

	cards := make([]string, 0, len(items))
	for _, item := range items {
		cards = append(cards, styles.RenderItemCard(item))
	}
	formatter.Printf("%s\n%s\n", styles.TitleStyle.Render("Dream Board"), strings.Join(cards, "\n"))
	return nil
}
