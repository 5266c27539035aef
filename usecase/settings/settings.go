package settings

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/fastygo/dashboard/domain"
	"github.com/fastygo/dashboard/pkg/logger"
	"github.com/fastygo/dashboard/repository"
	"github.com/fastygo/dashboard/usecase"
)

// SessionGate is the part of the auth gate settings needs.
type SessionGate interface {
	Current() domain.Session
	Logout(ctx context.Context) error
}

// Dependencies groups the collaborators of the settings use case.
type Dependencies struct {
	Preferences repository.PreferenceRepository
	Tasks       repository.TaskRepository
	Notes       repository.NoteRepository
	Storage     repository.KeyValueStore
	Session     SessionGate
	Clock       domain.Clock
	Notifier    usecase.Notifier
}

type UseCase struct {
	prefs    repository.PreferenceRepository
	tasks    repository.TaskRepository
	notes    repository.NoteRepository
	storage  repository.KeyValueStore
	session  SessionGate
	clock    domain.Clock
	notifier usecase.Notifier
	logger   *zap.Logger
}

func New(deps Dependencies, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if deps.Notifier == nil {
		deps.Notifier = usecase.NopNotifier{}
	}
	if deps.Clock == nil {
		deps.Clock = domain.RealClock{}
	}
	return &UseCase{
		prefs:    deps.Preferences,
		tasks:    deps.Tasks,
		notes:    deps.Notes,
		storage:  deps.Storage,
		session:  deps.Session,
		clock:    deps.Clock,
		notifier: deps.Notifier,
		logger:   logger,
	}
}

func (uc *UseCase) Theme(ctx context.Context) (domain.Theme, error) {
	return uc.prefs.Theme(ctx)
}

func (uc *UseCase) SetTheme(ctx context.Context, theme domain.Theme) (domain.Theme, error) {
	if err := uc.prefs.SetTheme(ctx, theme); err != nil {
		return "", err
	}
	uc.notifier.Success(fmt.Sprintf("Theme changed to %s", theme))
	return theme, nil
}

func (uc *UseCase) ToggleTheme(ctx context.Context) (domain.Theme, error) {
	current, err := uc.prefs.Theme(ctx)
	if err != nil {
		return "", err
	}
	return uc.SetTheme(ctx, current.Toggle())
}

// ExportFile is a rendered backup ready for download.
type ExportFile struct {
	Filename string
	Data     domain.Export
	Body     []byte
}

// Export snapshots the user, tasks and notes as indented JSON.
func (uc *UseCase) Export(ctx context.Context) (ExportFile, error) {
	now := uc.clock.Now()
	doc := domain.Export{
		Tasks:      uc.tasks.List(),
		Notes:      uc.notes.List(),
		ExportedAt: now,
	}
	if s := uc.session.Current(); s.User != nil {
		doc.User = s.User
	}

	body, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		uc.notifier.Error("Export failed")
		return ExportFile{}, domain.WrapError(domain.ErrCodeInternal, "export failed", err)
	}
	uc.notifier.Success("Data exported successfully!")
	logger.WithRequestID(ctx, uc.logger).Info("data exported",
		zap.Int("tasks", len(doc.Tasks)),
		zap.Int("notes", len(doc.Notes)),
	)
	return ExportFile{Filename: domain.ExportFilename(now), Data: doc, Body: body}, nil
}

// ImportReport describes a parsed backup. Nothing is merged into the stores.
type ImportReport struct {
	HasUser    bool   `json:"hasUser"`
	Tasks      int    `json:"tasks"`
	Notes      int    `json:"notes"`
	ExportedAt string `json:"exportedAt,omitempty"`
}

type importDocument struct {
	User       json.RawMessage   `json:"user"`
	Tasks      []json.RawMessage `json:"tasks"`
	Notes      []json.RawMessage `json:"notes"`
	ExportedAt string            `json:"exportedAt"`
}

// Import parses a backup document and reports what it holds.
func (uc *UseCase) Import(ctx context.Context, payload []byte) (ImportReport, error) {
	log := logger.WithRequestID(ctx, uc.logger)

	var doc importDocument
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		uc.notifier.Error(domain.ErrImportInvalid.Message)
		log.Warn("import rejected", zap.Error(domain.ErrImportInvalid))
		return ImportReport{}, domain.ErrImportInvalid
	}
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		uc.notifier.Error(domain.ErrImportInvalid.Message)
		log.Warn("import rejected", zap.Error(err))
		return ImportReport{}, domain.WrapError(domain.ErrCodeInvalid, domain.ErrImportInvalid.Message, errors.Join(domain.ErrImportInvalid, err))
	}

	report := ImportReport{
		HasUser:    len(doc.User) > 0 && !bytes.Equal(doc.User, []byte("null")),
		Tasks:      len(doc.Tasks),
		Notes:      len(doc.Notes),
		ExportedAt: doc.ExportedAt,
	}
	uc.notifier.Success("Data imported successfully!")
	log.Info("import parsed",
		zap.Bool("has_user", report.HasUser),
		zap.Int("tasks", report.Tasks),
		zap.Int("notes", report.Notes),
	)
	return report, nil
}

// DeleteAccount wipes every persisted key and signs out.
func (uc *UseCase) DeleteAccount(ctx context.Context) error {
	log := logger.WithRequestID(ctx, uc.logger)
	if err := uc.storage.Clear(ctx); err != nil {
		log.Error("failed to clear storage", zap.Error(err))
		return err
	}
	if err := uc.session.Logout(ctx); err != nil {
		return err
	}
	uc.notifier.Success("Account deleted. Redirecting...")
	log.Info("account deleted")
	return nil
}
