package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/work-diary/internal/logger"
	"github.com/MKhiriev/work-diary/models"
)

var userColumns = []string{"user_id", "name", "email", "password", "created_at"}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})

	return &userRepository{db: &DB{DB: db, logger: logger.Nop()}, logger: logger.Nop()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

// ─────────────────────────────────────────────────────────────
// CreateUser
// ─────────────────────────────────────────────────────────────

func TestUserRepository_CreateUser(t *testing.T) {
	alice := models.User{UserID: "u1", Name: "Alice", Email: "alice@example.com", Password: "$2a$hash"}
	joined := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		expect  func(m sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "stored",
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("INSERT INTO users").
					WithArgs(alice.UserID, alice.Name, alice.Email, alice.Password).
					WillReturnRows(sqlmock.NewRows(userColumns).AddRow(alice.UserID, alice.Name, alice.Email, alice.Password, joined))
			},
		},
		{
			name: "email taken",
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("INSERT INTO users").WillReturnError(pgError(pgerrcode.UniqueViolation))
			},
			wantErr: ErrEmailAlreadyExists,
		},
		{
			name: "connection lost",
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("INSERT INTO users").WillReturnError(errors.New("broken pipe"))
			},
			wantErr: ErrExecutingQuery,
		},
		{
			name: "unexpected row shape",
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("INSERT INTO users").WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow("u1"))
			},
			wantErr: ErrScanningRow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)
			tt.expect(mock)

			created, err := repo.CreateUser(context.Background(), alice)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, alice.Email, created.Email)
			assert.Equal(t, joined, created.CreatedAt)
		})
	}
}

// ─────────────────────────────────────────────────────────────
// FindUserByEmail
// ─────────────────────────────────────────────────────────────

func TestUserRepository_FindUserByEmail(t *testing.T) {
	const email = "alice@example.com"

	tests := []struct {
		name     string
		rows     *sqlmock.Rows
		queryErr error
		wantErr  error
	}{
		{name: "found", rows: sqlmock.NewRows(userColumns).AddRow("u1", "Alice", email, "$2a$hash", time.Now())},
		{name: "unknown email", rows: sqlmock.NewRows(userColumns), wantErr: ErrNoUserWasFound},
		{name: "query fails", queryErr: errors.New("timeout"), wantErr: ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)
			q := mock.ExpectQuery("SELECT user_id").WithArgs(email)
			if tt.queryErr != nil {
				q.WillReturnError(tt.queryErr)
			} else {
				q.WillReturnRows(tt.rows)
			}

			found, err := repo.FindUserByEmail(context.Background(), email)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Alice", found.Name)
			assert.Equal(t, "$2a$hash", found.Password)
		})
	}
}

// ─────────────────────────────────────────────────────────────
// FindUsersByIDs
// ─────────────────────────────────────────────────────────────

func TestUserRepository_FindUsersByIDs(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	mock.ExpectQuery(`SELECT user_id, name, email, password, created_at FROM users WHERE user_id IN \(\$1,\$2\)`).
		WithArgs("u1", "u2").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow("u1", "Alice", "alice@example.com", "h1", time.Now()).
			AddRow("u2", "Bob", "bob@example.com", "h2", time.Now()))

	users, err := repo.FindUsersByIDs(context.Background(), []string{"u1", "u2"})

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Bob", users[1].Name)
}

func TestUserRepository_FindUsersByIDs_NoIDsNoQuery(t *testing.T) {
	repo, _ := newTestUserRepo(t)

	users, err := repo.FindUsersByIDs(context.Background(), nil)

	assert.NoError(t, err)
	assert.Nil(t, users)
}
