package repository

import (
	"context"

	"github.com/fastygo/dashboard/domain"
)

// SessionRepository mirrors the auth session to durable local storage.
type SessionRepository interface {
	// Load returns domain.ErrKeyNotFound when nothing is stored and
	// domain.ErrSessionCorrupt when the stored value cannot be parsed.
	Load(ctx context.Context) (domain.Session, error)
	Save(ctx context.Context, session domain.Session) error
	Clear(ctx context.Context) error
}

// PreferenceRepository persists UI preferences.
type PreferenceRepository interface {
	Theme(ctx context.Context) (domain.Theme, error)
	SetTheme(ctx context.Context, theme domain.Theme) error
}

// WorkspaceRepository persists the entity stores when workspace persistence is enabled.
type WorkspaceRepository interface {
	Load(ctx context.Context) (*domain.Workspace, error)
	Save(ctx context.Context, ws domain.Workspace) error
}
