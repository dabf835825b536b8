package ask

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/dreamscape/internal/app"
	"github.com/thenoetrevino/dreamscape/internal/cli"
	"github.com/thenoetrevino/dreamscape/internal/testutil"
)

func TestAskCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"public speaking", []string{"I", "fear", "Public Speaking"}, "Improving public speaking"},
		{"goal", []string{"help me with a goal"}, "set up and track your goals"},
		{"fallback", []string{"hello"}, "Tell me more"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, _, err := testutil.ExecuteCLICommand(t, app.New(), AskCmd(), tt.args)

			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(output, "nano: "), "output %q", output)
			assert.Contains(t, output, tt.want)
		})
	}
}

func TestAskCmd_JSON(t *testing.T) {
	output, _, err := testutil.ExecuteCLICommand(t, app.New(), AskCmd(), []string{"goal", "--json"})

	require.NoError(t, err)
	data := testutil.ParseJSON(t, output)["data"].(map[string]any)
	assert.Equal(t, "nano", data["sender"])
	assert.NotEmpty(t, data["id"])
}

func TestAskCmd_Empty(t *testing.T) {
	_, stderr, err := testutil.ExecuteCLICommand(t, app.New(), AskCmd(), []string{"  "})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyMessage))
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	assert.Contains(t, stderr, "message cannot be empty")
}
