package app

import (
	"log/slog"

	"github.com/thenoetrevino/dreamscape/internal/board"
	"github.com/thenoetrevino/dreamscape/internal/celebration"
	"github.com/thenoetrevino/dreamscape/internal/search"
	taskservice "github.com/thenoetrevino/dreamscape/internal/services/task"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger    *slog.Logger
	searcher  search.Searcher
	boardOpts []board.Option
	taskOpts  []taskservice.Option
	sinks     []celebration.Sink
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithSearcher replaces the mock image searcher
func WithSearcher(s search.Searcher) Option {
	return func(cfg *appConfig) {
		cfg.searcher = s
	}
}

// WithBoardOptions passes options through to the board store
func WithBoardOptions(opts ...board.Option) Option {
	return func(cfg *appConfig) {
		cfg.boardOpts = append(cfg.boardOpts, opts...)
	}
}

// WithTaskOptions passes options through to the task service
func WithTaskOptions(opts ...taskservice.Option) Option {
	return func(cfg *appConfig) {
		cfg.taskOpts = append(cfg.taskOpts, opts...)
	}
}

// WithCelebrationSink registers a celebration consumer at construction
func WithCelebrationSink(sink celebration.Sink) Option {
	return func(cfg *appConfig) {
		cfg.sinks = append(cfg.sinks, sink)
	}
}
