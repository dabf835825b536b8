package library

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/dreamscape/internal/app"
	"github.com/thenoetrevino/dreamscape/internal/cli"
	"github.com/thenoetrevino/dreamscape/internal/testutil"
)

func TestResourcesCmd(t *testing.T) {
	testApp := app.New()

	t.Run("all resources", func(t *testing.T) {
		output, _, err := testutil.ExecuteCLICommand(t, testApp, ResourcesCmd(), nil)

		require.NoError(t, err)
		assert.Contains(t, output, "Found 6 resources")
		assert.Contains(t, output, "Pomodoro Timer")
	})

	t.Run("query and type", func(t *testing.T) {
		output, _, err := testutil.ExecuteCLICommand(t, testApp, ResourcesCmd(), []string{"productivity", "--type=tool"})

		require.NoError(t, err)
		assert.Contains(t, output, "Found 1 resources")
		assert.Contains(t, output, "Pomodoro Timer")
		assert.NotContains(t, output, "SMART")
	})

	t.Run("quiet prints urls", func(t *testing.T) {
		output, _, err := testutil.ExecuteCLICommand(t, testApp, ResourcesCmd(), []string{"--type=video", "--quiet"})

		require.NoError(t, err)
		urls := strings.Split(strings.TrimSpace(output), "\n")
		assert.Equal(t, []string{"https://example.com/language-learning", "https://example.com/mindfulness"}, urls)
	})

	t.Run("json empty list", func(t *testing.T) {
		output, _, err := testutil.ExecuteCLICommand(t, testApp, ResourcesCmd(), []string{"zzz", "--json"})

		require.NoError(t, err)
		data, ok := testutil.ParseJSON(t, output)["data"].([]any)
		require.True(t, ok, "data should be a list")
		assert.Empty(t, data)
	})

	t.Run("invalid difficulty", func(t *testing.T) {
		_, stderr, err := testutil.ExecuteCLICommand(t, testApp, ResourcesCmd(), []string{"--difficulty=extreme"})

		require.Error(t, err)
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
		assert.Contains(t, stderr, "invalid difficulty")
	})
}

func TestInsightsCmd(t *testing.T) {
	testApp := app.New()

	t.Run("category", func(t *testing.T) {
		output, _, err := testutil.ExecuteCLICommand(t, testApp, InsightsCmd(), []string{"--category=learning"})

		require.NoError(t, err)
		assert.Contains(t, output, "Found 1 insights")
		assert.Contains(t, output, "Feynman")
		assert.Contains(t, output, "Choose a concept you want to learn")
	})

	t.Run("query quiet", func(t *testing.T) {
		output, _, err := testutil.ExecuteCLICommand(t, testApp, InsightsCmd(), []string{"rule", "--quiet"})

		require.NoError(t, err)
		assert.Equal(t, "6", strings.TrimSpace(output))
	})

	t.Run("invalid category", func(t *testing.T) {
		_, _, err := testutil.ExecuteCLICommand(t, testApp, InsightsCmd(), []string{"--category=sports"})

		require.Error(t, err)
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	})
}
