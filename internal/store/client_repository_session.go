package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/work-diary/internal/logger"
	"github.com/MKhiriev/work-diary/models"
)

type localSessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalSessionRepository returns the SQLite-backed [SessionRepository].
// At most one session row exists at a time.
func NewLocalSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &localSessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localSessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	if session.SavedAt.IsZero() {
		session.SavedAt = time.Now()
	}

	_, err := l.ExecContext(ctx, saveSession,
		session.Token,
		session.User.UserID,
		session.User.Name,
		session.User.Email,
		session.SavedAt.UTC(),
	)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localSessionRepository.SaveSession").Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// LoadSession returns [ErrLocalSessionNotFound] when nobody is logged in.
func (l *localSessionRepository) LoadSession(ctx context.Context) (models.Session, error) {
	var s models.Session
	err := l.QueryRowContext(ctx, loadSession).
		Scan(&s.Token, &s.User.UserID, &s.User.Name, &s.User.Email, &s.SavedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrLocalSessionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localSessionRepository.LoadSession").Msg("failed to load session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return s, nil
}

func (l *localSessionRepository) DeleteSession(ctx context.Context) error {
	if _, err := l.ExecContext(ctx, deleteSession); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localSessionRepository.DeleteSession").Msg("failed to delete session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
