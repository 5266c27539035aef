// Package app owns every store, use case and background service of a running
// dashboard and wires them to the command dispatcher.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/fastygo/dashboard/domain"
	"github.com/fastygo/dashboard/internal/config"
	"github.com/fastygo/dashboard/internal/infrastructure/monitor"
	"github.com/fastygo/dashboard/internal/metrics"
	"github.com/fastygo/dashboard/internal/services/lifecycle"
	"github.com/fastygo/dashboard/internal/services/notify"
	"github.com/fastygo/dashboard/internal/services/snapshot"
	"github.com/fastygo/dashboard/pkg/idgen"
	"github.com/fastygo/dashboard/repository"
	"github.com/fastygo/dashboard/repository/local"
	"github.com/fastygo/dashboard/repository/memory"
	"github.com/fastygo/dashboard/usecase"
	"github.com/fastygo/dashboard/usecase/analytics"
	"github.com/fastygo/dashboard/usecase/auth"
	"github.com/fastygo/dashboard/usecase/kanban"
	"github.com/fastygo/dashboard/usecase/notes"
	"github.com/fastygo/dashboard/usecase/settings"
)

// Options overrides the collaborators New would otherwise build from config.
type Options struct {
	Storage repository.KeyValueStore
	Clock   domain.Clock
	IDs     domain.IDGenerator
}

// App is the top-level application context.
type App struct {
	Config *config.Config
	Logger *zap.Logger

	Storage  repository.KeyValueStore
	Tasks    *memory.TaskStore
	Notes    *memory.NoteStore
	Activity *memory.ActivityStore
	Toasts   *notify.Center

	Kanban    *kanban.UseCase
	Editor    *notes.Editor
	Auth      *auth.UseCase
	Settings  *settings.UseCase
	Analytics *analytics.UseCase

	Dispatcher *usecase.Dispatcher
	Metrics    *metrics.Metrics
	Monitor    *monitor.Monitor
	Snapshots  *snapshot.Syncer
	Lifecycle  *lifecycle.Manager

	clock domain.Clock
}

// New builds the application, loads persisted state and registers every
// command and query. Background services start with Start.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger, opts Options) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Clock == nil {
		opts.Clock = domain.RealClock{}
	}
	if opts.IDs == nil {
		opts.IDs = idgen.UUID{}
	}

	a := &App{
		Config:    cfg,
		Logger:    logger,
		Lifecycle: lifecycle.New(cfg.Context.ShutdownTimeout, logger),
		clock:     opts.Clock,
	}

	storage := opts.Storage
	if storage == nil {
		var err error
		if storage, err = OpenStorage(ctx, cfg); err != nil {
			return nil, err
		}
	}
	a.Storage = storage
	a.Lifecycle.Closer("storage", storage.Close)

	a.Tasks = memory.NewTaskStore(opts.Clock, opts.IDs, logger.Named("tasks"))
	a.Notes = memory.NewNoteStore(opts.Clock, opts.IDs, logger.Named("notes"))
	a.Activity = memory.NewActivityStore(opts.Clock, opts.IDs, cfg.Activity.Limit)
	a.Toasts = notify.NewCenter(opts.Clock, opts.IDs, cfg.Notify.Duration)

	a.Kanban = kanban.New(a.Tasks, a.Activity, a.Toasts, logger.Named("kanban"))
	a.Editor = notes.NewEditor(a.Notes, a.Activity, a.Toasts, logger.Named("notes"))
	a.Auth = auth.New(local.NewSessionRepository(storage), a.Activity, a.Toasts, logger.Named("auth"))
	a.Settings = settings.New(settings.Dependencies{
		Preferences: local.NewPreferenceRepository(storage),
		Tasks:       a.Tasks,
		Notes:       a.Notes,
		Storage:     storage,
		Session:     a.Auth,
		Clock:       opts.Clock,
		Notifier:    a.Toasts,
	}, logger.Named("settings"))
	a.Analytics = analytics.New(a.Tasks, a.Notes, a.Activity, opts.Clock, logger.Named("analytics"))

	a.Metrics = metrics.New()
	a.Monitor = monitor.New(storage, cfg.Storage.Driver, cfg.Monitor.Interval, logger.Named("monitor"))
	a.Monitor.OnCheck(a.Metrics.SetStorageUp)

	a.Dispatcher = usecase.NewDispatcher()
	a.Dispatcher.Observe(a.Metrics.ObserveDispatch)
	a.registerCommands()
	a.registerQueries()

	if err := a.loadState(ctx); err != nil {
		_ = a.Lifecycle.Shutdown(context.Background())
		return nil, err
	}
	return a, nil
}

// loadState seeds or restores the stores and restores a remembered session.
func (a *App) loadState(ctx context.Context) error {
	restored := false
	if a.Config.Workspace.Persist {
		a.Snapshots = snapshot.New(
			local.NewWorkspaceRepository(a.Storage),
			snapshot.Stores{Tasks: a.Tasks, Notes: a.Notes, Activity: a.Activity},
			a.Monitor,
			a.clock,
			a.Logger.Named("snapshot"),
			snapshot.Config{Interval: a.Config.Workspace.SyncInterval},
		)
		a.Snapshots.OnSave(a.Metrics.ObserveSnapshot)

		ok, err := a.Snapshots.Restore(ctx)
		if err != nil && !domain.IsDomainError(err, domain.ErrCodeInvalid) {
			return fmt.Errorf("restore workspace: %w", err)
		}
		if err != nil {
			a.Logger.Warn("ignoring unreadable workspace", zap.Error(err))
		}
		restored = ok
	}

	if !restored && a.Config.Workspace.SeedDemo {
		a.Tasks.Replace(memory.DemoTasks())
		a.Notes.Replace(memory.DemoNotes())
		a.Activity.Replace(memory.DemoActivities(a.clock.Now()))
	}

	if _, err := a.Auth.Restore(ctx); err != nil && !errors.Is(err, domain.ErrKeyNotFound) {
		a.Logger.Warn("session restore failed", zap.Error(err))
	}
	return nil
}

// Start launches the storage monitor and, when enabled, workspace snapshots.
func (a *App) Start() {
	a.Monitor.Refresh()
	a.Monitor.Start()
	a.Lifecycle.Register("monitor", func(context.Context) error {
		a.Monitor.Stop()
		return nil
	})

	if a.Snapshots != nil {
		a.Snapshots.Start()
		a.Lifecycle.Register("snapshot", a.Snapshots.Stop)
	}
}

// Shutdown stops background services and closes storage.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Lifecycle.Shutdown(ctx)
}
