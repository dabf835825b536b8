package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/dreamscape/internal/app"
	"github.com/thenoetrevino/dreamscape/internal/celebration"
	"github.com/thenoetrevino/dreamscape/internal/config"
	"github.com/thenoetrevino/dreamscape/internal/drag"
	"github.com/thenoetrevino/dreamscape/internal/tui/components"
	"github.com/thenoetrevino/dreamscape/internal/tui/state"
	"github.com/thenoetrevino/dreamscape/internal/tui/theme"
	"github.com/thenoetrevino/dreamscape/internal/user"
)

// Model represents the application state for the TUI.
// State objects are pointers so that the copies bubbletea passes around
// share them.
type Model struct {
	Ctx    context.Context
	Config *config.Config
	App    *app.App

	UiState           *state.UIState
	EditState         *state.EditState
	SearchState       *state.SearchState
	CelebrationState  *state.CelebrationState
	TaskViewState     *state.TaskViewState
	ChatState         *state.ChatState
	ResourceViewState *state.ResourceViewState
	InsightViewState  *state.InsightViewState
	NotificationState *state.NotificationState

	Drag *drag.Controller

	// userName labels the user's chat messages
	userName string

	mouse *pointer

	// help holds the last rendered help page
	help *helpPage

	// pending collects celebration events raised while handling a message
	pending *[]celebration.Event
}

// cell is a terminal cell position
type cell struct {
	X, Y int
}

// pointer tracks the mouse between press and release. held is set only
// while the drag controller's active item came from a mouse press.
type pointer struct {
	last cell
	held bool
}

// InitialModel creates the TUI model over application
func InitialModel(ctx context.Context, application *app.App, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	theme.Init(cfg.ColorScheme)
	components.InitStyles()

	pending := &[]celebration.Event{}
	application.OnCelebration(func(ev celebration.Event) {
		*pending = append(*pending, ev)
	})

	m := Model{
		Ctx:               ctx,
		Config:            cfg,
		App:               application,
		UiState:           state.NewUIState(),
		EditState:         state.NewEditState(),
		SearchState:       state.NewSearchState(),
		CelebrationState:  state.NewCelebrationState(),
		TaskViewState:     state.NewTaskViewState(),
		ChatState:         state.NewChatState(),
		ResourceViewState: state.NewResourceViewState(),
		InsightViewState:  state.NewInsightViewState(),
		NotificationState: state.NewNotificationState(),
		Drag:              drag.NewController(application.Board),
		userName:          user.DisplayName(),
		mouse:             &pointer{},
		help:              &helpPage{},
		pending:           pending,
	}

	if items := application.Board.Items(); len(items) > 0 {
		m.UiState.SetSelectedItem(items[0].ID)
	}
	return m
}

// Init initializes the Bubble Tea application
func (m Model) Init() tea.Cmd {
	return nil
}
