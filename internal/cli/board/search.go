package board

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/dreamscape/internal/cli"
	"github.com/thenoetrevino/dreamscape/internal/search"
)

// SearchCmd returns the image search subcommand
func SearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search for inspirational images",
		Long: `Search for images to place on the dream board.

Examples:
  dreamscape search mountains
  dreamscape search "ocean sunrise" --json
`,
		RunE: runSearch,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)
	query := strings.TrimSpace(strings.Join(args, " "))

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		_ = formatter.Error("INITIALIZATION_ERROR", err.Error())
		return err
	}

	results, err := cliInstance.App.Searcher.Images(cmd.Context(), query)
	if err != nil {
		_ = formatter.Error("SEARCH_ERROR", err.Error())
		return err
	}

	if formatter.Quiet {
		for _, url := range results {
			formatter.Printf("%s\n", url)
		}
		return nil
	}

	if formatter.JSON {
		if results == nil {
			results = []string{}
		}
		return formatter.Success(map[string]any{
			"query":   query,
			"results": results,
		})
	}

	if len(results) == 0 {
		formatter.Printf("%s\n", search.EmptyState(query))
		return nil
	}

	formatter.Printf("Found %d images for %q:\n\n", len(results), query)
	for i, url := range results {
		formatter.Printf("  %d. %s\n", i+1, url)
	}
	return nil
}
