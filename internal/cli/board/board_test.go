package board

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/dreamscape/internal/app"
	"github.com/thenoetrevino/dreamscape/internal/search"
	"github.com/thenoetrevino/dreamscape/internal/testutil"
)

func TestBoardCmd(t *testing.T) {
	testApp := app.New()

	t.Run("human readable", func(t *testing.T) {
		output, _, err := testutil.ExecuteCLICommand(t, testApp, BoardCmd(), nil)

		require.NoError(t, err)
		assert.Contains(t, output, "Dream Board")
		assert.Contains(t, output, "Learn Spanish")
		assert.Contains(t, output, "70%")
		assert.Contains(t, output, "Travel to Japan")
		assert.Contains(t, output, "2024")
	})

	t.Run("quiet", func(t *testing.T) {
		output, _, err := testutil.ExecuteCLICommand(t, testApp, BoardCmd(), []string{"--quiet"})

		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2", "3", "4"}, strings.Fields(output))
	})

	t.Run("json", func(t *testing.T) {
		output, _, err := testutil.ExecuteCLICommand(t, testApp, BoardCmd(), []string{"--json"})

		require.NoError(t, err)
		result := testutil.ParseJSON(t, output)
		items, ok := result["data"].([]any)
		require.True(t, ok)
		require.Len(t, items, 4)

		third := items[2].(map[string]any)
		assert.Equal(t, "progress", third["kind"])
		assert.Equal(t, "Learn Spanish:70", third["content"])
		pos := third["position"].(map[string]any)
		assert.Equal(t, float64(200), pos["x"])
		assert.Equal(t, float64(350), pos["y"])
	})
}

func TestSearchCmd(t *testing.T) {
	testApp := app.New()

	t.Run("results", func(t *testing.T) {
		output, _, err := testutil.ExecuteCLICommand(t, testApp, SearchCmd(), []string{"mountains", "--quiet"})

		require.NoError(t, err)
		assert.Len(t, strings.Fields(output), 6)
	})

	t.Run("json", func(t *testing.T) {
		output, _, err := testutil.ExecuteCLICommand(t, testApp, SearchCmd(), []string{"ocean", "sunrise", "--json"})

		require.NoError(t, err)
		data := testutil.ParseJSON(t, output)["data"].(map[string]any)
		assert.Equal(t, "ocean sunrise", data["query"])
		assert.Len(t, data["results"], 6)
	})

	t.Run("blank query prompts", func(t *testing.T) {
		output, _, err := testutil.ExecuteCLICommand(t, testApp, SearchCmd(), nil)

		require.NoError(t, err)
		assert.Contains(t, output, search.PromptMessage)
	})
}
