package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/dreamscape/internal/app"
	"github.com/thenoetrevino/dreamscape/internal/config"
	"github.com/thenoetrevino/dreamscape/internal/logging"
	"github.com/thenoetrevino/dreamscape/internal/tui"
)

// Launch starts the board TUI and blocks until it exits
func Launch(parent context.Context) error {
	// Initialize logging to file before anything else. The board still runs
	// when the log file can't be opened.
	closer, err := logging.Init()
	if err != nil {
		logging.Discard()
	} else {
		defer closer.Close()
	}

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("failed to load configuration, using defaults", "error", err)
		cfg = config.Default()
	}

	application := app.New()
	defer application.Close()

	model := tui.InitialModel(ctx, application, cfg)
	p := tea.NewProgram(model, tea.WithContext(ctx))

	watcher := watchConfig(ctx, p)
	if watcher != nil {
		defer watcher.Stop()
	}

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("error running program: %w", err)
	}
	slog.Info("board closed")
	return nil
}

// watchConfig forwards config file changes to the running program. It
// returns nil when there is nothing to watch.
func watchConfig(ctx context.Context, p *tea.Program) *config.Watcher {
	path, err := config.Path()
	if err != nil {
		slog.Warn("config watcher disabled", "error", err)
		return nil
	}

	w, err := config.NewWatcher(path, func(cfg *config.Config) {
		p.Send(tui.ConfigReloadedMsg{Config: cfg})
	})
	if err != nil {
		slog.Warn("config watcher disabled", "error", err)
		return nil
	}
	if err := w.Start(ctx); err != nil {
		w.Stop()
		slog.Warn("config watcher disabled", "error", err)
		return nil
	}
	return w
}
