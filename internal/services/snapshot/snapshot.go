// Package snapshot persists the task, note and activity stores as one workspace
// document when workspace persistence is enabled.
package snapshot

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/fastygo/dashboard/domain"
	"github.com/fastygo/dashboard/repository"
)

// StorageHealth reports whether the backing store is reachable.
type StorageHealth interface {
	IsOnline() bool
}

type Config struct {
	Interval time.Duration
}

// Stores are the collections captured in a snapshot.
type Stores struct {
	Tasks    repository.TaskRepository
	Notes    repository.NoteRepository
	Activity repository.ActivityRepository
}

// Syncer saves the workspace on a cron schedule and restores it at start.
type Syncer struct {
	repo    repository.WorkspaceRepository
	stores  Stores
	health  StorageHealth
	clock   domain.Clock
	observe func(error)
	logger  *zap.Logger
	cron    *cron.Cron
	cfg     Config
}

func New(repo repository.WorkspaceRepository, stores Stores, health StorageHealth, clock domain.Clock, logger *zap.Logger, cfg Config) *Syncer {
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Second
	}
	if clock == nil {
		clock = domain.RealClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Syncer{
		repo:   repo,
		stores: stores,
		health: health,
		clock:  clock,
		logger: logger,
		cfg:    cfg,
		cron:   cron.New(cron.WithSeconds()),
	}

	schedule := fmt.Sprintf("@every %ds", max(1, int(cfg.Interval.Seconds())))
	_, _ = s.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Interval)
		defer cancel()
		if err := s.Save(ctx); err != nil {
			s.logger.Error("workspace snapshot failed", zap.Error(err))
		}
	})
	return s
}

// OnSave registers a callback invoked with the result of every save attempt.
func (s *Syncer) OnSave(fn func(error)) {
	s.observe = fn
}

func (s *Syncer) Start() {
	if s == nil || s.cron == nil {
		return
	}
	s.cron.Start()
	s.logger.Info("workspace snapshots started", zap.Duration("interval", s.cfg.Interval))
}

// Stop halts the schedule and writes a final snapshot.
func (s *Syncer) Stop(ctx context.Context) error {
	if s == nil || s.cron == nil {
		return nil
	}
	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	err := s.Save(ctx)
	s.logger.Info("workspace snapshots stopped")
	return err
}

// Restore replaces the stores with the saved workspace. It reports false when
// nothing has been saved yet.
func (s *Syncer) Restore(ctx context.Context) (bool, error) {
	ws, err := s.repo.Load(ctx)
	if err != nil {
		return false, err
	}
	if ws == nil {
		return false, nil
	}
	s.stores.Tasks.Replace(ws.Tasks)
	s.stores.Notes.Replace(ws.Notes)
	s.stores.Activity.Replace(ws.Activities)
	s.logger.Info("workspace restored",
		zap.Int("tasks", len(ws.Tasks)),
		zap.Int("notes", len(ws.Notes)),
		zap.Int("activities", len(ws.Activities)),
		zap.Time("saved_at", ws.SavedAt),
	)
	return true, nil
}

// Save writes the current stores. It is skipped while storage is offline.
func (s *Syncer) Save(ctx context.Context) error {
	if s.health != nil && !s.health.IsOnline() {
		s.logger.Debug("skipping workspace snapshot (storage offline)")
		return nil
	}
	ws := s.Capture()
	err := s.repo.Save(ctx, ws)
	if s.observe != nil {
		s.observe(err)
	}
	if err != nil {
		return err
	}
	s.logger.Debug("workspace saved", zap.Int("tasks", len(ws.Tasks)), zap.Int("notes", len(ws.Notes)))
	return nil
}

// Capture copies the stores into a workspace document.
func (s *Syncer) Capture() domain.Workspace {
	return domain.Workspace{
		Tasks:      s.stores.Tasks.List(),
		Notes:      s.stores.Notes.List(),
		Activities: s.stores.Activity.List(),
		SavedAt:    s.clock.Now(),
	}
}
