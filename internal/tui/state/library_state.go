package state

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/dreamscape/internal/library"
)

// ListQuery is a filterable list: a title query input and a cursor.
// The query applies live while it is being typed.
type ListQuery struct {
	input  textinput.Model
	cursor int
}

func newListQuery(placeholder string) ListQuery {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = 100
	return ListQuery{input: input}
}

// Query returns the trimmed query text.
func (q *ListQuery) Query() string {
	return strings.TrimSpace(q.input.Value())
}

// BeginQuery focuses the query input, keeping any text already there.
func (q *ListQuery) BeginQuery() tea.Cmd {
	return q.input.Focus()
}

// EndQuery blurs the input. clear drops the query text too.
func (q *ListQuery) EndQuery(clear bool) {
	q.input.Blur()
	if clear {
		q.input.SetValue("")
	}
	q.cursor = 0
}

// Update forwards a message to the query input and resets the cursor.
func (q *ListQuery) Update(msg tea.Msg) tea.Cmd {
	before := q.input.Value()
	var cmd tea.Cmd
	q.input, cmd = q.input.Update(msg)
	if q.input.Value() != before {
		q.cursor = 0
	}
	return cmd
}

// View renders the query input.
func (q *ListQuery) View() string {
	return q.input.View()
}

// Cursor returns the selected row.
func (q *ListQuery) Cursor() int {
	return q.cursor
}

// MoveCursor moves the selection by delta within count rows.
func (q *ListQuery) MoveCursor(delta, count int) {
	if count <= 0 {
		q.cursor = 0
		return
	}
	q.cursor = min(max(q.cursor+delta, 0), count-1)
}

// ResourceViewState holds the Resources screen.
type ResourceViewState struct {
	ListQuery
	resourceType library.ResourceType
	timeframe    library.Timeframe
	difficulty   library.Difficulty
}

// NewResourceViewState creates a ResourceViewState listing everything.
func NewResourceViewState() *ResourceViewState {
	return &ResourceViewState{ListQuery: newListQuery("Search resources...")}
}

// Filter returns the library filter for the current query and selectors.
func (s *ResourceViewState) Filter() library.ResourceFilter {
	return library.ResourceFilter{
		Query:      s.Query(),
		Type:       s.resourceType,
		Timeframe:  s.timeframe,
		Difficulty: s.difficulty,
	}
}

// CycleType steps all -> article -> ... -> tool -> all.
func (s *ResourceViewState) CycleType() {
	s.resourceType = cycle(library.ResourceTypes, s.resourceType)
	s.cursor = 0
}

// CycleTimeframe steps all -> short-term -> long-term -> all.
func (s *ResourceViewState) CycleTimeframe() {
	s.timeframe = cycle(library.Timeframes, s.timeframe)
	s.cursor = 0
}

// CycleDifficulty steps all -> easy -> medium -> hard -> all.
func (s *ResourceViewState) CycleDifficulty() {
	s.difficulty = cycle(library.Difficulties, s.difficulty)
	s.cursor = 0
}

// InsightViewState holds the Insights screen.
type InsightViewState struct {
	ListQuery
	category library.Category
}

// NewInsightViewState creates an InsightViewState listing every category.
func NewInsightViewState() *InsightViewState {
	return &InsightViewState{ListQuery: newListQuery("Search insights...")}
}

// Category returns the category filter, "" for all.
func (s *InsightViewState) Category() library.Category {
	return s.category
}

// CycleCategory steps all -> productivity -> ... -> career -> all.
func (s *InsightViewState) CycleCategory() {
	s.category = cycle(library.Categories, s.category)
	s.cursor = 0
}
