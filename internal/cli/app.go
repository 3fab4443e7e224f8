// Package cli provides the CLI application context for the cobra commands.
package cli

import (
	"context"
	"fmt"

	"github.com/tabwell/tabwell/internal/cli/styles"
	"github.com/tabwell/tabwell/internal/domain/build"
	"github.com/tabwell/tabwell/internal/infrastructure/config"
	"github.com/tabwell/tabwell/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	ConfigMgr *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// Context with logger
	ctx context.Context
}

// NewApp creates a new CLI application with all dependencies.
func NewApp() (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	})
	ctx := logging.WithContext(context.Background(), logger)

	return &App{
		Config:    cfg,
		ConfigMgr: mgr,
		Theme:     styles.NewTheme(),
		ctx:       ctx,
	}, nil
}

// Context returns the application context carrying the logger.
func (a *App) Context() context.Context {
	return a.ctx
}

// Close releases application resources.
func (a *App) Close() error {
	return nil
}
