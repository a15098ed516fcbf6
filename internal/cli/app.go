// Package cli wires configuration, logging, the trace store and the navigator for CLI commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/bnema/spatialnav/internal/cli/styles"
	"github.com/bnema/spatialnav/internal/domain/build"
	"github.com/bnema/spatialnav/internal/domain/repository"
	"github.com/bnema/spatialnav/internal/infrastructure/config"
	"github.com/bnema/spatialnav/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/spatialnav/internal/logging"
)

// Options tune NewApp.
type Options struct {
	// ConfigFile overrides the XDG config lookup.
	ConfigFile string
	// LogToFile sends logs to a rotated file instead of stderr,
	// for commands that own the terminal.
	LogToFile bool
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info
	Traces    repository.TraceRepository

	db      *sqlite.TraceDB
	logFile io.Closer

	// Context with logger
	ctx context.Context
}

// NewApp loads configuration and builds the CLI dependencies.
// The trace database is opened lazily on first use.
func NewApp(opts Options) (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, err
	}
	if opts.ConfigFile != "" {
		mgr.SetConfigFile(opts.ConfigFile)
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	cfg := mgr.Get()

	logCfg := logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	}
	var logFile io.Closer
	if opts.LogToFile {
		rotator, err := newLogRotator()
		if err != nil {
			return nil, err
		}
		logCfg.Output = rotator
		logFile = rotator
	}
	logger := logging.New(logCfg)
	ctx := logging.WithContext(context.Background(), logger)

	logger.Debug().
		Str("config", mgr.GetConfigFile()).
		Str("trace_db", cfg.Trace.DatabasePath).
		Msg("cli initialized")

	db := sqlite.NewTraceDB(cfg.Trace.DatabasePath)

	return &App{
		Config:  cfg,
		Manager: mgr,
		Theme:   styles.NewTheme(cfg),
		Traces:  sqlite.NewLazyTraceRepository(db),
		db:      db,
		logFile: logFile,
		ctx:     ctx,
	}, nil
}

func newLogRotator() (*logging.LogRotator, error) {
	stateDir, err := config.GetStateDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve log directory: %w", err)
	}
	return logging.NewLogRotator(logging.RotatorConfig{
		Dir:        filepath.Join(stateDir, "logs"),
		Name:       "spatialnav.log",
		MaxSizeMB:  5,
		MaxBackups: 3,
		MaxAgeDays: 7,
		Compress:   true,
	})
}

// Close releases all resources.
func (a *App) Close() error {
	var err error
	if a.db != nil {
		err = a.db.Close()
	}
	if a.logFile != nil {
		_ = a.logFile.Close()
	}
	return err
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return logging.FromContext(a.ctx)
}
