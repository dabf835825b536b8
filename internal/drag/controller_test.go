package drag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/dreamscape/internal/board"
	"github.com/thenoetrevino/dreamscape/internal/models"
)

func TestDrag_AppliesDeltaToActiveItemOnly(t *testing.T) {
	store := board.NewStore()
	before := store.Items()
	c := NewController(store)

	c.Begin("3")
	c.Delta(models.Position{X: 10, Y: -5})
	c.End()

	got, ok := store.Get("3")
	require.True(t, ok)
	assert.Equal(t, models.Position{X: 210, Y: 345}, got.Position)

	for _, it := range before {
		if it.ID == "3" {
			continue
		}
		now, _ := store.Get(it.ID)
		assert.Equal(t, it.Position, now.Position, "item %s moved", it.ID)
	}
}

func TestDrag_DeltasAccumulate(t *testing.T) {
	store := board.NewStore()
	c := NewController(store)

	c.Begin("1")
	for range 3 {
		c.Delta(models.Position{X: 1, Y: 2})
	}

	got, _ := store.Get("1")
	assert.Equal(t, models.Position{X: 103, Y: 106}, got.Position)
}

func TestDrag_IdleIgnoresDeltas(t *testing.T) {
	store := board.NewStore()
	c := NewController(store)

	c.Delta(models.Position{X: 50, Y: 50})
	assert.False(t, c.Dragging())

	c.Begin("2")
	c.End()
	c.Delta(models.Position{X: 50, Y: 50})

	got, _ := store.Get("2")
	assert.Equal(t, models.Position{X: 400, Y: 150}, got.Position)
}

func TestDrag_BeginUnknownStaysIdle(t *testing.T) {
	c := NewController(board.NewStore())
	c.Begin("zzz")
	assert.False(t, c.Dragging())
	assert.Empty(t, c.Active())
}

func TestDrag_SingleActiveItem(t *testing.T) {
	c := NewController(board.NewStore())
	c.Begin("1")
	c.Begin("4")
	assert.Equal(t, "4", c.Active())
}

func TestDrag_RemovedMidDrag(t *testing.T) {
	store := board.NewStore()
	c := NewController(store)

	c.Begin("2")
	store.Remove("2")
	c.Delta(models.Position{X: 1, Y: 1})

	assert.False(t, c.Dragging())
	assert.Equal(t, 3, store.Len())
}

func TestPaintOrder_RaisesActive(t *testing.T) {
	store := board.NewStore()
	c := NewController(store)

	idle := c.PaintOrder(store.Items())
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(idle))

	c.Begin("2")
	raised := c.PaintOrder(store.Items())
	assert.Equal(t, []string{"1", "3", "4", "2"}, ids(raised))
}

func ids(items []models.BoardItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}
