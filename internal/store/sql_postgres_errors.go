package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed diary transaction may be
// replayed.
type ErrorClassification int

const (
	// NonRetryable is the classification of every error not known to be
	// transient, including constraint violations and bad input.
	NonRetryable ErrorClassification = iota

	// Retryable marks failures caused by concurrent writers or a dropped
	// connection. Replaying the transaction may succeed.
	Retryable
)

// retryableCodes are the PostgreSQL codes UpdateDiary replays on.
// Concurrent comment, reaction and todo mutations of one entry contend for
// the same row lock, so classes 40 and 55 are expected under load.
var retryableCodes = map[string]struct{}{
	pgerrcode.ConnectionException:    {},
	pgerrcode.ConnectionDoesNotExist: {},
	pgerrcode.ConnectionFailure:      {},
	pgerrcode.TransactionRollback:    {},
	pgerrcode.SerializationFailure:   {},
	pgerrcode.DeadlockDetected:       {},
	pgerrcode.LockNotAvailable:       {},
	pgerrcode.CannotConnectNow:       {},
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Errors that do not come from the
// pgx driver are [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	code := sqlState(err)
	if code == "" {
		return NonRetryable
	}
	return ClassifyCode(code)
}

// ClassifyCode maps a PostgreSQL error code to an [ErrorClassification].
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyCode(code string) ErrorClassification {
	if _, ok := retryableCodes[code]; ok {
		return Retryable
	}
	return NonRetryable
}

// isUniqueViolation reports whether err is a 23505, which on the users
// table means the email is taken.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
