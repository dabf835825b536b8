// Package ask exposes the scripted assistant on the command line.
package ask

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/dreamscape/internal/assistant"
	"github.com/thenoetrevino/dreamscape/internal/cli"
)

// ErrEmptyMessage is returned when ask is called without any text
var ErrEmptyMessage = errors.New("message cannot be empty")

// AskCmd returns the ask subcommand
func AskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <message>",
		Short: "Ask Nano, the goal assistant",
		Long: `Send a message to Nano and print the reply.

Examples:
  dreamscape ask "I want to get better at public speaking"
  dreamscape ask help me set a goal --json
`,
		RunE: runAsk,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)
	text := strings.Join(args, " ")

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		_ = formatter.Error("INITIALIZATION_ERROR", err.Error())
		return err
	}

	reply, ok := cliInstance.App.Assistant.Send(text)
	if !ok {
		_ = formatter.ErrorWithSuggestion("EMPTY_MESSAGE",
			ErrEmptyMessage.Error(),
			`Try: dreamscape ask "help me set a goal"`)
		return cli.WithCode(cli.ExitUsage, ErrEmptyMessage)
	}

	if formatter.Quiet {
		formatter.Printf("%s\n", reply.Text)
		return nil
	}

	if formatter.JSON {
		return formatter.Success(reply)
	}

	formatter.Printf("%s: %s\n", assistant.SenderNano, reply.Text)
	return nil
}
