package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/work-diary/internal/config"
	"github.com/MKhiriev/work-diary/internal/logger"
)

// Storages groups the server-side repositories behind one backend.
type Storages struct {
	UserRepository  UserRepository
	DiaryRepository DiaryRepository
	Pinger          Pinger

	closer func() error
}

// NewStorages connects to CouchDB when cfg.Couch.URL is set and to
// PostgreSQL otherwise.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.Couch.URL != "" {
		log.Info().Str("backend", "couchdb").Msg("creating storages...")

		couch, err := NewConnectCouch(ctx, cfg.Couch, log)
		if err != nil {
			return nil, fmt.Errorf("couchdb connection error: %w", err)
		}

		return &Storages{
			UserRepository:  NewCouchUserRepository(couch),
			DiaryRepository: NewCouchDiaryRepository(couch),
			Pinger:          couch,
			closer:          couch.Close,
		}, nil
	}

	if cfg.DB.DSN == "" {
		return nil, errors.New("no storage backend configured")
	}

	log.Info().Str("backend", "postgres").Msg("creating storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	return &Storages{
		UserRepository:  NewUserRepository(db, log),
		DiaryRepository: NewDiaryRepository(db, log),
		Pinger:          db,
		closer:          db.Close,
	}, nil
}

// Close releases the backend connection.
func (s *Storages) Close() error {
	if s == nil || s.closer == nil {
		return nil
	}
	return s.closer()
}
