package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/work-diary/internal/config"
	"github.com/MKhiriev/work-diary/internal/logger"
)

// ClientStorages groups the client-side repositories kept in the local
// SQLite file.
type ClientStorages struct {
	// DraftRepository keeps body writes that failed to reach the server.
	DraftRepository DraftRepository
	// SessionRepository keeps the logged-in session between runs.
	SessionRepository SessionRepository

	db *DB
}

// NewClientStorages opens (and migrates) the local database at cfg.DSN.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return &ClientStorages{
		DraftRepository:   NewLocalDraftRepository(db, logger),
		SessionRepository: NewLocalSessionRepository(db, logger),
		db:                db,
	}, nil
}

// Close closes the local database.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}
