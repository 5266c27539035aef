package auth

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/fastygo/dashboard/domain"
	"github.com/fastygo/dashboard/pkg/logger"
	"github.com/fastygo/dashboard/repository"
	"github.com/fastygo/dashboard/usecase"
)

// DemoUser is the identity used by the "try demo" sign-in.
var DemoUser = domain.User{
	Name:   "Demo User",
	Email:  "demo@devdashboard.app",
	Avatar: domain.DefaultAvatar("DemoUser"),
}

// Registration is the sign-up payload after boundary validation.
type Registration struct {
	Name   string
	Email  string
	Avatar string
	Bio    string
}

// UseCase is the session gate. It holds the live session and mirrors it to the
// session repository according to the persistence rules of each operation.
type UseCase struct {
	sessions repository.SessionRepository
	activity repository.ActivityRepository
	notifier usecase.Notifier
	logger   *zap.Logger

	mu      sync.RWMutex
	session domain.Session
}

func New(sessions repository.SessionRepository, activity repository.ActivityRepository, notifier usecase.Notifier, logger *zap.Logger) *UseCase {
	if notifier == nil {
		notifier = usecase.NopNotifier{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		sessions: sessions,
		activity: activity,
		notifier: notifier,
		logger:   logger,
		session:  domain.Anonymous(),
	}
}

// Restore loads a remembered session. A missing key leaves the gate signed out;
// an unreadable value is discarded.
func (uc *UseCase) Restore(ctx context.Context) (domain.Session, error) {
	log := logger.WithRequestID(ctx, uc.logger)

	stored, err := uc.sessions.Load(ctx)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrKeyNotFound):
		return uc.Current(), nil
	case errors.Is(err, domain.ErrSessionCorrupt):
		log.Warn("discarding unreadable session", zap.Error(err))
		if clearErr := uc.sessions.Clear(ctx); clearErr != nil {
			log.Error("failed to clear session", zap.Error(clearErr))
		}
		uc.set(domain.Anonymous())
		return domain.Anonymous(), nil
	default:
		log.Error("failed to load session", zap.Error(err))
		return uc.Current(), err
	}

	if !stored.Valid() {
		return uc.Current(), nil
	}
	user := stored.User.WithDefaults()
	session := domain.Session{User: &user, IsAuthenticated: true}
	uc.set(session)
	log.Info("session restored", zap.String("email", user.Email))
	return session, nil
}

// Register signs in a new account. The session is always persisted.
func (uc *UseCase) Register(ctx context.Context, reg Registration) (domain.Session, error) {
	user := domain.User{Name: reg.Name, Email: reg.Email, Avatar: reg.Avatar, Bio: reg.Bio}.WithDefaults()
	session := domain.Session{User: &user, IsAuthenticated: true}
	uc.set(session)

	if err := uc.sessions.Save(ctx, session); err != nil {
		logger.WithRequestID(ctx, uc.logger).Error("failed to persist session", zap.Error(err))
		return session, err
	}
	uc.notifier.Success("Account created successfully!")
	logger.WithRequestID(ctx, uc.logger).Info("account registered", zap.String("email", user.Email))
	return session, nil
}

// Login signs in. The session is persisted only when remember is set.
func (uc *UseCase) Login(ctx context.Context, user domain.User, remember bool) (domain.Session, error) {
	if user.Name == "" {
		user.Name = nameFromEmail(user.Email)
	}
	user = user.WithDefaults()
	session := domain.Session{User: &user, IsAuthenticated: true}
	uc.set(session)

	if remember {
		if err := uc.sessions.Save(ctx, session); err != nil {
			logger.WithRequestID(ctx, uc.logger).Error("failed to persist session", zap.Error(err))
			return session, err
		}
	}
	uc.notifier.Success("Logged in successfully!")
	logger.WithRequestID(ctx, uc.logger).Info("logged in", zap.String("email", user.Email), zap.Bool("remember", remember))
	return session, nil
}

// DemoLogin signs in as DemoUser without remembering the session.
func (uc *UseCase) DemoLogin(ctx context.Context) (domain.Session, error) {
	session, err := uc.Login(ctx, DemoUser, false)
	if err != nil {
		return session, err
	}
	uc.notifier.Success("Welcome! Exploring as Demo User")
	return session, nil
}

// Logout signs out and removes the persisted session.
func (uc *UseCase) Logout(ctx context.Context) error {
	uc.set(domain.Anonymous())
	if err := uc.sessions.Clear(ctx); err != nil {
		logger.WithRequestID(ctx, uc.logger).Error("failed to clear session", zap.Error(err))
		return err
	}
	logger.WithRequestID(ctx, uc.logger).Info("logged out")
	return nil
}

// UpdateProfile merges the patch into the signed-in user and always persists.
func (uc *UseCase) UpdateProfile(ctx context.Context, patch domain.UserPatch) (domain.User, error) {
	uc.mu.Lock()
	if !uc.session.Valid() {
		uc.mu.Unlock()
		return domain.User{}, domain.ErrUnauthorized
	}
	user := *uc.session.User
	patch.Apply(&user)
	uc.session = domain.Session{User: &user, IsAuthenticated: true}
	session := uc.session
	uc.mu.Unlock()

	if err := uc.sessions.Save(ctx, session); err != nil {
		uc.notifier.Error("Failed to update profile")
		logger.WithRequestID(ctx, uc.logger).Error("failed to persist profile", zap.Error(err))
		return user, err
	}
	if uc.activity != nil {
		uc.activity.Add(domain.ActivityInput{Action: "Updated profile", Item: user.Name, Type: domain.ActivityProfileUpdated})
	}
	uc.notifier.Success("Profile updated successfully!")
	return user, nil
}

// Current returns a copy of the live session.
func (uc *UseCase) Current() domain.Session {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return copySession(uc.session)
}

// Authenticated reports whether protected views may be shown.
func (uc *UseCase) Authenticated() bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.session.Valid()
}

func (uc *UseCase) set(session domain.Session) {
	uc.mu.Lock()
	uc.session = copySession(session)
	uc.mu.Unlock()
}

func copySession(s domain.Session) domain.Session {
	if s.User == nil {
		return s
	}
	user := *s.User
	return domain.Session{User: &user, IsAuthenticated: s.IsAuthenticated}
}

func nameFromEmail(email string) string {
	name, _, _ := strings.Cut(email, "@")
	return name
}
