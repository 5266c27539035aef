package local

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/fastygo/dashboard/domain"
	"github.com/fastygo/dashboard/repository"
)

type sessionRepository struct {
	kv repository.KeyValueStore
}

// NewSessionRepository stores the session as JSON under the "auth" key.
func NewSessionRepository(kv repository.KeyValueStore) repository.SessionRepository {
	return &sessionRepository{kv: kv}
}

func (r *sessionRepository) Load(ctx context.Context) (domain.Session, error) {
	raw, err := r.kv.Get(ctx, KeySession)
	if err != nil {
		return domain.Anonymous(), err
	}
	var session domain.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return domain.Anonymous(), domain.WrapError(domain.ErrCodeInvalid, domain.ErrSessionCorrupt.Message, errors.Join(domain.ErrSessionCorrupt, err))
	}
	return session, nil
}

func (r *sessionRepository) Save(ctx context.Context, session domain.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.kv.Put(ctx, KeySession, payload)
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	return r.kv.Delete(ctx, KeySession)
}
