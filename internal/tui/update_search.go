package tui

import (
	"context"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/dreamscape/internal/board"
	"github.com/thenoetrevino/dreamscape/internal/search"
	"github.com/thenoetrevino/dreamscape/internal/tui/state"
)

// openSearch shows the image search overlay with an empty query.
func openSearch(m *Model) tea.Cmd {
	m.UiState.SetMode(state.SearchMode)
	return m.SearchState.Open()
}

func closeSearch(m *Model) {
	m.SearchState.Clear()
	m.UiState.SetMode(state.NormalMode)
}

// handleSearchMode handles input while the search overlay is open.
// Enter runs the query, or adds the highlighted result once the results
// for the typed query are in.
func handleSearchMode(m *Model, msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		closeSearch(m)
		return nil
	case "up", "ctrl+p":
		m.SearchState.MoveCursor(-1)
		return nil
	case "down", "ctrl+n":
		m.SearchState.MoveCursor(1)
		return nil
	case "enter":
		if m.SearchState.Current() {
			if url, ok := m.SearchState.Selected(); ok {
				board.Dispatch(m.App.Board, board.AddImage{URL: url})
				if items := m.App.Board.Items(); len(items) > 0 {
					m.UiState.SetSelectedItem(items[len(items)-1].ID)
				}
				closeSearch(m)
				return nil
			}
		}
		query := m.SearchState.Query()
		m.SearchState.StartSearch()
		return searchImages(m.Ctx, m.App.Searcher, query)
	}
	return m.SearchState.Update(msg)
}

// searchImages runs the query off the update loop.
func searchImages(ctx context.Context, s search.Searcher, query string) tea.Cmd {
	return func() tea.Msg {
		results, err := s.Images(ctx, query)
		return SearchResultsMsg{Query: query, Results: results, Err: err}
	}
}

func handleSearchResults(m *Model, msg SearchResultsMsg) tea.Cmd {
	if m.UiState.Mode() != state.SearchMode {
		return nil
	}
	if msg.Err != nil {
		slog.Error("image search failed", "query", msg.Query, "error", msg.Err)
		m.NotificationState.Add(state.LevelError, "Search failed")
		m.SearchState.SetResults(msg.Query, nil)
		return nil
	}
	if !m.SearchState.SetResults(msg.Query, msg.Results) {
		slog.Debug("stale search results dropped", "query", msg.Query)
	}
	return nil
}
