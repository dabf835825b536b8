package state

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// SearchState holds the image search overlay: the query being typed, the
// query the current results belong to, and the highlighted result.
type SearchState struct {
	input    textinput.Model
	searched string
	results  []string
	cursor   int
	loading  bool
}

// NewSearchState creates an empty SearchState.
func NewSearchState() *SearchState {
	return &SearchState{input: newSearchInput()}
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Search for images..."
	return ti
}

// Open focuses a fresh query input.
func (s *SearchState) Open() tea.Cmd {
	s.Clear()
	return s.input.Focus()
}

// Clear drops the query and results.
func (s *SearchState) Clear() {
	s.input = newSearchInput()
	s.searched = ""
	s.results = nil
	s.cursor = 0
	s.loading = false
}

// Query returns the text in the input.
func (s *SearchState) Query() string {
	return s.input.Value()
}

// Update forwards a message to the query input.
func (s *SearchState) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

// View renders the query input.
func (s *SearchState) View() string {
	return s.input.View()
}

// StartSearch marks a search for query as in flight.
func (s *SearchState) StartSearch() {
	s.loading = true
}

// Loading reports whether a search is in flight.
func (s *SearchState) Loading() bool {
	return s.loading
}

// SetResults stores the results for query. Results for a query other than
// the one in the input are stale and ignored.
func (s *SearchState) SetResults(query string, results []string) bool {
	if query != s.input.Value() {
		return false
	}
	s.searched = query
	s.results = results
	s.cursor = 0
	s.loading = false
	return true
}

// Searched returns the query the current results belong to.
func (s *SearchState) Searched() string {
	return s.searched
}

// Results returns the current result URLs.
func (s *SearchState) Results() []string {
	return s.results
}

// Current reports whether the results match the text in the input.
func (s *SearchState) Current() bool {
	return s.searched == s.input.Value() && s.searched != ""
}

// Cursor returns the highlighted result index.
func (s *SearchState) Cursor() int {
	return s.cursor
}

// MoveCursor moves the highlight by delta, clamped to the results.
func (s *SearchState) MoveCursor(delta int) {
	if len(s.results) == 0 {
		s.cursor = 0
		return
	}
	s.cursor = min(max(s.cursor+delta, 0), len(s.results)-1)
}

// Selected returns the highlighted result URL.
func (s *SearchState) Selected() (string, bool) {
	if s.cursor < 0 || s.cursor >= len(s.results) {
		return "", false
	}
	return s.results[s.cursor], true
}
