package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMock_BlankQuery(t *testing.T) {
	m := NewMock()
	for _, q := range []string{"", "   ", "\t"} {
		got, err := m.Images(context.Background(), q)
		require.NoError(t, err)
		assert.Empty(t, got, "query %q", q)
	}
}

func TestMock_FixedPage(t *testing.T) {
	m := NewMock()
	first, err := m.Images(context.Background(), "mountains")
	require.NoError(t, err)
	second, err := m.Images(context.Background(), "ocean")
	require.NoError(t, err)

	assert.Len(t, first, 6)
	assert.Equal(t, first, second)

	// callers may not mutate the shared page
	first[0] = "changed"
	third, _ := m.Images(context.Background(), "x")
	assert.NotEqual(t, "changed", third[0])
}

func TestMock_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMock().Images(ctx, "success")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEmptyState(t *testing.T) {
	assert.Equal(t, PromptMessage, EmptyState(""))
	assert.Equal(t, NoResultsMessage, EmptyState("zebra"))
}
