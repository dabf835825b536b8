// Package search finds candidate images for the dream board.
package search

import (
	"context"
	"log/slog"
	"slices"
	"strings"
)

// Searcher returns an ordered list of image URLs for a free-text query
type Searcher interface {
	Images(ctx context.Context, query string) ([]string, error)
}

// mockResults is the fixed result page returned for every non-blank query
var mockResults = []string{
	"https://images.unsplash.com/photo-1506744038136-46273834b3fb?w=600&q=80",
	"https://images.unsplash.com/photo-1469474968028-56623f02e42e?w=600&q=80",
	"https://images.unsplash.com/photo-1447752875215-b2761acb3c5d?w=600&q=80",
	"https://images.unsplash.com/photo-1433086966358-54859d0ed716?w=600&q=80",
	"https://images.unsplash.com/photo-1501854140801-50d01698950b?w=600&q=80",
	"https://images.unsplash.com/photo-1441974231531-c6227db76b6e?w=600&q=80",
}

// Mock is a Searcher that ignores the query text and answers synchronously
type Mock struct{}

// NewMock creates the mock searcher
func NewMock() *Mock {
	return &Mock{}
}

// Images returns no results for a blank query and the fixed page otherwise
func (m *Mock) Images(ctx context.Context, query string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}
	slog.Debug("image search", "query", query, "results", len(mockResults))
	return slices.Clone(mockResults), nil
}

// Compile-time verification that *Mock implements Searcher
var _ Searcher = (*Mock)(nil)

// Empty-state messages for the search overlay
const (
	PromptMessage    = "Enter a search term to find inspirational images."
	NoResultsMessage = "No results found. Try a different search term."
)

// EmptyState returns the message shown when there are no results to list
func EmptyState(query string) string {
	if query == "" {
		return PromptMessage
	}
	return NoResultsMessage
}
