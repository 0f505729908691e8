// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/work-diary/internal/config"
	"github.com/MKhiriev/work-diary/internal/logger"
	"github.com/go-kivik/kivik/v4"
	_ "github.com/go-kivik/kivik/v4/couchdb"
)

// Document types stored in the CouchDB database.
const (
	couchTypeUser  = "user"
	couchTypeDiary = "diary"
	couchTypeDay   = "day"
)

// CouchDB holds the kivik client and the diary database handle.
type CouchDB struct {
	client *kivik.Client
	db     *kivik.DB
	logger *logger.Logger
}

// NewConnectCouch connects to CouchDB, creates the database if it does not
// exist and ensures the Mango index used by entry listing.
func NewConnectCouch(ctx context.Context, cfg config.Couch, log *logger.Logger) (*CouchDB, error) {
	client, err := kivik.New("couch", cfg.URL)
	if err != nil {
		log.Err(err).Str("func", "NewConnectCouch").Msg("error creating couchdb client")
		return nil, fmt.Errorf("%w: %w", ErrCouchRequest, err)
	}

	exists, err := client.DBExists(ctx, cfg.Name)
	if err != nil {
		log.Err(err).Str("func", "NewConnectCouch").Msg("error checking database")
		return nil, fmt.Errorf("%w: %w", ErrCouchRequest, err)
	}

	if !exists {
		if err = client.CreateDB(ctx, cfg.Name); err != nil && kivik.HTTPStatus(err) != http.StatusPreconditionFailed {
			log.Err(err).Str("func", "NewConnectCouch").Str("db", cfg.Name).Msg("error creating database")
			return nil, fmt.Errorf("%w: %w", ErrCouchRequest, err)
		}
		log.Info().Str("func", "NewConnectCouch").Str("db", cfg.Name).Msg("created couchdb database")
	}

	db := client.DB(cfg.Name)
	if err = db.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCouchRequest, err)
	}

	index := map[string]any{"fields": []string{"type", "day"}}
	if err = db.CreateIndex(ctx, "diaries", "by-type-day", index); err != nil {
		log.Err(err).Str("func", "NewConnectCouch").Msg("error creating index")
		return nil, fmt.Errorf("%w: %w", ErrCouchRequest, err)
	}

	log.Info().Str("func", "NewConnectCouch").Msg("connected to couchdb successfully")

	return &CouchDB{client: client, db: db, logger: log}, nil
}

// Ping implements [Pinger].
func (c *CouchDB) Ping(ctx context.Context) error {
	up, err := c.client.Ping(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCouchRequest, err)
	}
	if !up {
		return fmt.Errorf("%w: server is not up", ErrCouchRequest)
	}
	return nil
}

// Close releases the client's resources.
func (c *CouchDB) Close() error {
	return c.client.Close()
}

func isCouchStatus(err error, status int) bool {
	return err != nil && kivik.HTTPStatus(err) == status
}

func isCouchNotFound(err error) bool {
	return isCouchStatus(err, http.StatusNotFound)
}

func isCouchConflict(err error) bool {
	return isCouchStatus(err, http.StatusConflict)
}
