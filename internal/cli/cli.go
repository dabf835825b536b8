package cli

import (
	"context"

	"github.com/thenoetrevino/dreamscape/internal/app"
)

type contextKey struct{}

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services
}

// NewCLI creates a CLI over a freshly seeded application
func NewCLI(ctx context.Context) (*CLI, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &CLI{App: app.New()}, nil
}

// WithApp returns a context carrying a, so commands operate on it instead of
// a fresh application
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, contextKey{}, a)
}

// GetCLIFromContext returns the CLI for the app stored in ctx, or a new one
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if a, ok := ctx.Value(contextKey{}).(*app.App); ok && a != nil {
		return &CLI{App: a}, nil
	}
	return NewCLI(ctx)
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	return c.App.Close()
}
