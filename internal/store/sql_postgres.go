package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/work-diary/internal/config"
	"github.com/MKhiriev/work-diary/internal/logger"
	"github.com/MKhiriev/work-diary/migrations"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	postgresMaxOpenConns    = 10
	postgresMaxIdleConns    = 4
	postgresConnMaxIdleTime = 5 * time.Minute
)

// NewConnectPostgres opens the diary database, checks that it answers and
// brings its schema up to date before handing it to the repositories.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	l := log.With().Str("func", "NewConnectPostgres").Logger()

	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		l.Err(err).Msg("cannot open diary database")
		return nil, fmt.Errorf("open diary database: %w", err)
	}
	conn.SetMaxOpenConns(postgresMaxOpenConns)
	conn.SetMaxIdleConns(postgresMaxIdleConns)
	conn.SetConnMaxIdleTime(postgresConnMaxIdleTime)

	if err = conn.PingContext(ctx); err != nil {
		l.Err(err).Msg("diary database does not answer")
		_ = conn.Close()
		return nil, fmt.Errorf("ping diary database: %w", err)
	}

	if err = migrations.MigratePostgres(conn); err != nil {
		l.Err(err).Msg("diary schema migration failed")
		_ = conn.Close()
		return nil, err
	}
	l.Info().Msg("diary database is ready")

	return &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}, nil
}

// sqlState returns the SQLSTATE of a PostgreSQL error, or "" for anything
// that did not come from the server.
func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return ""
	}
	return pgErr.Code
}
