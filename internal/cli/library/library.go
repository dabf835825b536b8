// Package library lists Nano's resource library and insights on the
// command line.
package library

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/dreamscape/internal/cli"
	"github.com/thenoetrevino/dreamscape/internal/cli/styles"
	"github.com/thenoetrevino/dreamscape/internal/library"
)

// ResourcesCmd returns the resources subcommand
func ResourcesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resources [query]",
		Short: "Browse Nano's resource library",
		Long: `List curated resources, optionally filtered by a search query and by
type, timeframe and difficulty. The query matches titles, descriptions
and tags.

Examples:
  dreamscape resources
  dreamscape resources productivity --type=tool
  dreamscape resources --timeframe=short-term --difficulty=easy --json
`,
		RunE: runResources,
	}

	cmd.Flags().String("type", "all", "Type filter: all, article, video, book, course, tool")
	cmd.Flags().String("timeframe", "all", "Timeframe filter: all, short-term, long-term")
	cmd.Flags().String("difficulty", "all", "Difficulty filter: all, easy, medium, hard")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runResources(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	typeFlag, _ := cmd.Flags().GetString("type")
	timeframeFlag, _ := cmd.Flags().GetString("timeframe")
	difficultyFlag, _ := cmd.Flags().GetString("difficulty")

	filter := library.ResourceFilter{Query: strings.Join(args, " ")}
	var err error
	if filter.Type, err = cli.ParseChoice("type", typeFlag, library.ResourceTypes); err != nil {
		_ = formatter.Error("INVALID_TYPE", err.Error())
		return cli.WithCode(cli.ExitUsage, err)
	}
	if filter.Timeframe, err = cli.ParseChoice("timeframe", timeframeFlag, library.Timeframes); err != nil {
		_ = formatter.Error("INVALID_TIMEFRAME", err.Error())
		return cli.WithCode(cli.ExitUsage, err)
	}
	if filter.Difficulty, err = cli.ParseChoice("difficulty", difficultyFlag, library.Difficulties); err != nil {
		_ = formatter.Error("INVALID_DIFFICULTY", err.Error())
		return cli.WithCode(cli.ExitUsage, err)
	}

	resources := library.Resources(filter)

	if formatter.Quiet {
		for _, r := range resources {
			formatter.Printf("%s\n", r.URL)
		}
		return nil
	}

	if formatter.JSON {
		if resources == nil {
			resources = []library.Resource{}
		}
		return formatter.Success(resources)
	}

	if len(resources) == 0 {
		formatter.Printf("No resources found\n")
		return nil
	}

	formatter.Printf("Found %d resources:\n\n", len(resources))
	for _, r := range resources {
		formatter.Printf("%s\n", styles.RenderResourceLine(r))
	}
	return nil
}

// InsightsCmd returns the insights subcommand
func InsightsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insights [query]",
		Short: "Read Nano's insights",
		Long: `List insights with their action steps, optionally filtered by category
and by a title query.

Examples:
  dreamscape insights
  dreamscape insights --category=learning
  dreamscape insights rule --json
`,
		RunE: runInsights,
	}

	cmd.Flags().String("category", "all", "Category filter: all, productivity, motivation, learning, wellness, career")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runInsights(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	categoryFlag, _ := cmd.Flags().GetString("category")
	category, err := cli.ParseChoice("category", categoryFlag, library.Categories)
	if err != nil {
		_ = formatter.Error("INVALID_CATEGORY", err.Error())
		return cli.WithCode(cli.ExitUsage, err)
	}

	insights := library.Insights(category, strings.Join(args, " "))

	if formatter.Quiet {
		for _, in := range insights {
			formatter.Printf("%s\n", in.ID)
		}
		return nil
	}

	if formatter.JSON {
		if insights == nil {
			insights = []library.Insight{}
		}
		return formatter.Success(insights)
	}

	if len(insights) == 0 {
		formatter.Printf("No insights found\n")
		return nil
	}

	formatter.Printf("Found %d insights:\n\n", len(insights))
	for _, in := range insights {
		formatter.Printf("%s\n\n", styles.RenderInsightLine(in))
	}
	return nil
}
