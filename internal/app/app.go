package app

import (
	"log/slog"
	"sync"

	"github.com/thenoetrevino/dreamscape/internal/assistant"
	"github.com/thenoetrevino/dreamscape/internal/board"
	"github.com/thenoetrevino/dreamscape/internal/celebration"
	"github.com/thenoetrevino/dreamscape/internal/search"
	taskservice "github.com/thenoetrevino/dreamscape/internal/services/task"
)

// App holds all application services and provides dependency injection.
// Every App starts from the seed board and seed tasks; nothing is persisted.
type App struct {
	Board       board.Store
	TaskService taskservice.Service
	Searcher    search.Searcher
	Assistant   *assistant.Conversation

	logger *slog.Logger

	mu    sync.Mutex
	sinks []celebration.Sink
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(opts ...Option) *App {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	a := &App{
		logger: cfg.logger,
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}

	a.Board = board.NewStore(append(cfg.boardOpts, board.WithCelebrations(a.celebrate))...)
	a.TaskService = taskservice.NewService(append(cfg.taskOpts, taskservice.WithCelebrations(a.celebrate))...)

	a.Searcher = cfg.searcher
	if a.Searcher == nil {
		a.Searcher = search.NewMock()
	}
	a.Assistant = assistant.NewConversation()

	for _, sink := range cfg.sinks {
		a.OnCelebration(sink)
	}
	return a
}

// OnCelebration registers a consumer for celebration events raised by the
// board or the task manager. Sinks run synchronously in registration order.
func (a *App) OnCelebration(sink celebration.Sink) {
	if sink == nil {
		return
	}
	a.mu.Lock()
	a.sinks = append(a.sinks, sink)
	a.mu.Unlock()
}

func (a *App) celebrate(ev celebration.Event) {
	a.logger.Info("celebration", "item_id", ev.ItemID, "label", ev.Label)

	a.mu.Lock()
	sinks := append([]celebration.Sink(nil), a.sinks...)
	a.mu.Unlock()

	for _, sink := range sinks {
		sink(ev)
	}
}

// Close performs cleanup of application resources.
func (a *App) Close() error {
	a.mu.Lock()
	a.sinks = nil
	a.mu.Unlock()
	return nil
}
