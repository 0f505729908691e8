package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/work-diary/internal/config"
	"github.com/MKhiriev/work-diary/internal/logger"
	"github.com/MKhiriev/work-diary/migrations"
)

// localPragmas wait on a locked file instead of failing, which matters when
// a second CLI invocation runs while the first still flushes a draft.
const localPragmas = "_busy_timeout=5000&_foreign_keys=on"

// NewConnectSQLite opens the client's local database, creating its directory
// when needed, and applies the client migrations.
func NewConnectSQLite(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*DB, error) {
	l := log.With().Str("func", "NewConnectSQLite").Str("path", cfg.DSN).Logger()

	if err := ensureLocalDir(cfg.DSN); err != nil {
		l.Err(err).Msg("cannot prepare local database directory")
		return nil, err
	}

	conn, err := sql.Open("sqlite3", localDSN(cfg.DSN))
	if err != nil {
		return nil, fmt.Errorf("open local database: %w", err)
	}
	// one writer at a time keeps sqlite from returning SQLITE_BUSY to us
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		l.Err(err).Msg("local database does not open")
		return nil, fmt.Errorf("ping local database: %w", err)
	}
	if err = migrations.MigrateSQLite(conn); err != nil {
		_ = conn.Close()
		l.Err(err).Msg("local schema migration failed")
		return nil, err
	}
	l.Debug().Msg("local database is ready")

	return &DB{DB: conn, logger: log}, nil
}

// localDSN appends localPragmas to path, keeping parameters already there.
func localDSN(path string) string {
	if strings.Contains(path, "?") {
		return path + "&" + localPragmas
	}
	return path + "?" + localPragmas
}

func ensureLocalDir(path string) error {
	if path == ":memory:" || strings.HasPrefix(path, "file:") {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create local database directory: %w", err)
	}
	return nil
}
