package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/config"
	"github.com/alexisbeaulieu97/themekit/internal/effect"
	"github.com/alexisbeaulieu97/themekit/internal/logger"
	"github.com/alexisbeaulieu97/themekit/internal/platform"
	"github.com/alexisbeaulieu97/themekit/internal/prefs"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
	apperrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// appContext bundles long-lived services created for one command.
type appContext struct {
	cfg     *config.Config
	log     *logger.Logger
	store   prefs.Store
	effects *effect.Async
	scheme  *platform.StaticSource
	manager *theme.Manager
	closers []io.Closer
}

// logTarget selects where logs go when the config names no log file.
type logTarget int

const (
	logToStderr logTarget = iota
	// logToFile writes to <dir>/themekit.log, for commands that own the terminal.
	logToFile
)

const defaultLogFile = "themekit.log"

// newAppContext loads configuration, opens the preference store and
// initializes the theme manager from it.
func newAppContext(ctx context.Context, cmd *cobra.Command, flags *rootFlags, target logTarget) (*appContext, error) {
	cfg, err := config.Load(flags.configOptions(cmd)...)
	if err != nil {
		suggestion := "Pass --dir to choose the themekit directory."
		if errors.Is(err, apperrors.ErrInvalidConfig) {
			suggestion = "Check <dir>/config.yaml and THEMEKIT_* environment variables."
		}
		return nil, newCommandError("load configuration", "reading settings", err, suggestion)
	}

	app := &appContext{cfg: cfg}

	logOut := cmd.ErrOrStderr()
	logPath := cfg.Log.File
	if logPath == "" && target == logToFile {
		logPath = filepath.Join(cfg.Dir, defaultLogFile)
	}
	if logPath != "" {
		f, err := openLogFile(logPath)
		if err != nil {
			return nil, newCommandError("open log file", logPath, err, "Check the log.file setting and directory permissions.")
		}
		app.closers = append(app.closers, f)
		logOut = f
	}

	log, err := logger.New(logger.Options{
		Level:         cfg.Log.Level,
		HumanReadable: cfg.Log.Human,
		NoColor:       logPath != "",
		Writer:        logOut,
	})
	if err != nil {
		app.closeAll()
		return nil, newCommandError("create logger", "configuring log output", err, "")
	}
	app.log = log

	store, err := prefs.Open(prefs.Backend(cfg.Storage.Backend), cfg.Storage.Path)
	if err != nil {
		app.closeAll()
		return nil, newCommandError("open preferences", cfg.Storage.Path, err, "Check storage.backend and storage.path, or pass --backend memory.")
	}
	if c, ok := store.(io.Closer); ok {
		app.closers = append(app.closers, c)
	}
	app.store = store

	app.effects = effect.NewAsync(log, 0)
	app.scheme = platform.FromSetting(cfg.Platform.Scheme, cmd.OutOrStdout())
	app.manager = theme.NewManager(
		theme.WithPreferences(store),
		theme.WithSchemeSource(app.scheme),
		theme.WithDispatcher(app.effects),
		theme.WithLogger(log),
	)
	app.manager.Initialize(ctx)

	log.WithFields(map[string]any{
		"backend": cfg.Storage.Backend,
		"path":    cfg.Storage.Path,
		"scheme":  cfg.Platform.Scheme,
	}).Debug("application ready")

	return app, nil
}

// withApp runs fn with a fresh appContext and closes it afterwards, waiting
// for pending preference writes.
func withApp(cmd *cobra.Command, flags *rootFlags, target logTarget, fn func(ctx context.Context, app *appContext) error) (err error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	app, err := newAppContext(ctx, cmd, flags, target)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), effect.DefaultTimeout)
		defer cancel()
		if closeErr := app.Close(closeCtx); closeErr != nil && err == nil {
			err = newCommandError("shut down", "flushing preferences", closeErr, "")
		}
	}()

	return fn(ctx, app)
}

// Close waits for pending side effects and releases resources.
func (a *appContext) Close(ctx context.Context) error {
	a.manager.Close()
	waitErr := a.effects.Wait(ctx)
	if waitErr != nil {
		waitErr = fmt.Errorf("waiting for pending writes: %w", waitErr)
	}
	return errors.Join(waitErr, a.closeAll())
}

func (a *appContext) closeAll() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
}
