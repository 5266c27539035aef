package local

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/fastygo/dashboard/domain"
	"github.com/fastygo/dashboard/repository"
)

type workspaceRepository struct {
	kv repository.KeyValueStore
}

func NewWorkspaceRepository(kv repository.KeyValueStore) repository.WorkspaceRepository {
	return &workspaceRepository{kv: kv}
}

// Load returns nil, nil when no snapshot has been saved yet.
func (r *workspaceRepository) Load(ctx context.Context) (*domain.Workspace, error) {
	raw, err := r.kv.Get(ctx, KeyWorkspace)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var ws domain.Workspace
	if err := json.Unmarshal(raw, &ws); err != nil {
		return nil, domain.WrapError(domain.ErrCodeInvalid, "stored workspace is unreadable", err)
	}
	return &ws, nil
}

func (r *workspaceRepository) Save(ctx context.Context, ws domain.Workspace) error {
	payload, err := json.Marshal(ws)
	if err != nil {
		return err
	}
	return r.kv.Put(ctx, KeyWorkspace, payload)
}
