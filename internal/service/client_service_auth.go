package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/work-diary/internal/adapter"
	"github.com/MKhiriev/work-diary/internal/logger"
	"github.com/MKhiriev/work-diary/internal/store"
	"github.com/MKhiriev/work-diary/models"
)

type clientAuthService struct {
	adapter  adapter.ServerAdapter
	sessions store.SessionRepository

	mu       sync.RWMutex
	user     models.User
	loggedIn bool

	now    func() time.Time
	logger *logger.Logger
}

func NewClientAuthService(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		adapter:  serverAdapter,
		sessions: sessions,
		now:      time.Now,
		logger:   logger,
	}
}

func (a *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	resp, err := a.adapter.Register(ctx, req)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	return a.start(ctx, resp)
}

func (a *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	resp, err := a.adapter.Login(ctx, req)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	return a.start(ctx, resp)
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (models.User, error) {
	session, err := a.sessions.LoadSession(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return models.User{}, ErrNotLoggedIn
	}
	if err != nil {
		return models.User{}, fmt.Errorf("error loading local session: %w", err)
	}

	a.adapter.SetToken(session.Token)
	a.setUser(session.User, true)

	return session.User, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if err := a.sessions.DeleteSession(ctx); err != nil {
		return fmt.Errorf("error deleting local session: %w", err)
	}

	a.adapter.SetToken("")
	a.setUser(models.User{}, false)

	return nil
}

func (a *clientAuthService) CurrentUser() (models.User, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.user, a.loggedIn
}

// start makes resp the active session and persists it for the next run.
func (a *clientAuthService) start(ctx context.Context, resp models.AuthResponse) (models.User, error) {
	user := resp.User.Public()

	a.adapter.SetToken(resp.Token)
	a.setUser(user, true)

	session := models.Session{Token: resp.Token, User: user, SavedAt: a.now()}
	if err := a.sessions.SaveSession(ctx, session); err != nil {
		// the token still works for this run
		a.logger.Err(err).Msg("error persisting local session")
	}

	return user, nil
}

func (a *clientAuthService) setUser(user models.User, loggedIn bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.user = user
	a.loggedIn = loggedIn
}
