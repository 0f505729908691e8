package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/work-diary/internal/logger"
	"github.com/MKhiriev/work-diary/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDiaryRepo(t *testing.T) (*diaryRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	l := logger.Nop()
	repo := &diaryRepository{
		DB:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func diaryRows() *sqlmock.Rows {
	return sqlmock.NewRows(diaryColumns)
}

func TestDiaryRepository_UpsertByDay(t *testing.T) {
	repo, mock, db := newTestDiaryRepo(t)
	defer db.Close()

	day := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO diaries").
		WithArgs("d1", "u1", "2026-10-18", "did things").
		WillReturnRows(diaryRows().AddRow("d1", "u1", day, "did things", []byte("[]"), []byte("[]"), []byte("[]"), now, now))

	diary, err := repo.UpsertByDay(context.Background(), "d1", "u1", "2026-10-18", "did things")
	require.NoError(t, err)

	assert.Equal(t, "d1", diary.ID)
	assert.Equal(t, "u1", diary.User.ID)
	assert.Equal(t, day, diary.Date)
	assert.NotNil(t, diary.Comments)
	assert.Empty(t, diary.Comments)
	assert.NotNil(t, diary.Todos)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDiaryRepository_FindDiaryByID(t *testing.T) {
	t.Run("decodes embedded arrays", func(t *testing.T) {
		repo, mock, db := newTestDiaryRepo(t)
		defer db.Close()

		comments := []byte(`[{"_id":"c1","userId":{"_id":"u2"},"content":"nice","createdAt":"2026-10-18T10:00:00Z"}]`)
		reactions := []byte(`[{"userId":"u2","type":"heart"}]`)
		todos := []byte(`[{"_id":"t1","content":"ship","completed":true,"createdAt":"2026-10-18T10:00:00Z","updatedAt":"2026-10-18T11:00:00Z"}]`)

		mock.ExpectQuery("SELECT diary_id").
			WithArgs("d1").
			WillReturnRows(diaryRows().AddRow("d1", "u1", time.Now(), "x", comments, reactions, todos, time.Now(), time.Now()))

		diary, err := repo.FindDiaryByID(context.Background(), "d1")
		require.NoError(t, err)

		require.Len(t, diary.Comments, 1)
		assert.Equal(t, "u2", diary.Comments[0].User.ID)
		assert.Equal(t, []models.Reaction{{UserID: "u2", Type: models.ReactionHeart}}, diary.Reactions)
		require.Len(t, diary.Todos, 1)
		assert.True(t, diary.Todos[0].Completed)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock, db := newTestDiaryRepo(t)
		defer db.Close()

		mock.ExpectQuery("SELECT diary_id").WithArgs("nope").WillReturnRows(diaryRows())

		_, err := repo.FindDiaryByID(context.Background(), "nope")
		assert.ErrorIs(t, err, ErrDiaryNotFound)
	})

	t.Run("broken json", func(t *testing.T) {
		repo, mock, db := newTestDiaryRepo(t)
		defer db.Close()

		mock.ExpectQuery("SELECT diary_id").
			WithArgs("d1").
			WillReturnRows(diaryRows().AddRow("d1", "u1", time.Now(), "x", []byte("{"), []byte("[]"), []byte("[]"), time.Now(), time.Now()))

		_, err := repo.FindDiaryByID(context.Background(), "d1")
		assert.ErrorIs(t, err, ErrEncodingDocument)
	})
}

func TestDiaryRepository_ListDiaries(t *testing.T) {
	repo, mock, db := newTestDiaryRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM diaries WHERE user_id = \$1`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery(`SELECT diary_id, .* FROM diaries WHERE user_id = \$1 ORDER BY day DESC, created_at DESC LIMIT 10 OFFSET 10`).
		WithArgs("u1").
		WillReturnRows(diaryRows().
			AddRow("d2", "u1", time.Now(), "b", nil, nil, nil, time.Now(), time.Now()).
			AddRow("d1", "u1", time.Now(), "a", nil, nil, nil, time.Now(), time.Now()))

	diaries, total, err := repo.ListDiaries(context.Background(), models.DiaryFilter{UserID: "u1", Page: 2})
	require.NoError(t, err)

	assert.Equal(t, 12, total)
	require.Len(t, diaries, 2)
	assert.Equal(t, "d2", diaries[0].ID)
	assert.NotNil(t, diaries[1].Reactions)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDiaryRepository_ListDiaries_CountError(t *testing.T) {
	repo, mock, db := newTestDiaryRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT").WillReturnError(errors.New("boom"))

	_, _, err := repo.ListDiaries(context.Background(), models.DiaryFilter{})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestDiaryRepository_UpdateDiary(t *testing.T) {
	t.Run("mutates inside a transaction", func(t *testing.T) {
		repo, mock, db := newTestDiaryRepo(t)
		defer db.Close()

		updatedAt := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT diary_id .* FOR UPDATE").
			WithArgs("d1").
			WillReturnRows(diaryRows().AddRow("d1", "u1", time.Now(), "x", []byte("[]"), []byte("[]"), []byte("[]"), time.Now(), time.Now()))
		mock.ExpectQuery("UPDATE diaries").
			WithArgs("d1", "x", sqlmock.AnyArg(), []byte(`[{"userId":"u2","type":"like"}]`), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(updatedAt))
		mock.ExpectCommit()

		diary, err := repo.UpdateDiary(context.Background(), "d1", func(d *models.Diary) error {
			d.ToggleReaction("u2", models.ReactionLike)
			return nil
		})
		require.NoError(t, err)

		assert.Len(t, diary.Reactions, 1)
		assert.Equal(t, updatedAt, diary.UpdatedAt)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("mutate error rolls back", func(t *testing.T) {
		repo, mock, db := newTestDiaryRepo(t)
		defer db.Close()

		errMutate := errors.New("todo not found")

		mock.ExpectBegin()
		mock.ExpectQuery("FOR UPDATE").
			WithArgs("d1").
			WillReturnRows(diaryRows().AddRow("d1", "u1", time.Now(), "x", nil, nil, nil, time.Now(), time.Now()))
		mock.ExpectRollback()

		_, err := repo.UpdateDiary(context.Background(), "d1", func(*models.Diary) error { return errMutate })
		assert.ErrorIs(t, err, errMutate)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing entry", func(t *testing.T) {
		repo, mock, db := newTestDiaryRepo(t)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery("FOR UPDATE").WithArgs("d1").WillReturnRows(diaryRows())
		mock.ExpectRollback()

		_, err := repo.UpdateDiary(context.Background(), "d1", func(*models.Diary) error { return nil })
		assert.ErrorIs(t, err, ErrDiaryNotFound)
	})

	t.Run("retries serialization failures", func(t *testing.T) {
		repo, mock, db := newTestDiaryRepo(t)
		defer db.Close()

		for range maxUpdateAttempts {
			mock.ExpectBegin()
			mock.ExpectQuery("FOR UPDATE").WithArgs("d1").WillReturnError(pgError(pgerrcode.SerializationFailure))
			mock.ExpectRollback()
		}

		calls := 0
		_, err := repo.UpdateDiary(context.Background(), "d1", func(*models.Diary) error {
			calls++
			return nil
		})
		assert.ErrorIs(t, err, ErrConcurrentUpdate)
		assert.Zero(t, calls)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("does not retry other failures", func(t *testing.T) {
		repo, mock, db := newTestDiaryRepo(t)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery("FOR UPDATE").WithArgs("d1").WillReturnError(pgError(pgerrcode.UndefinedTable))
		mock.ExpectRollback()

		_, err := repo.UpdateDiary(context.Background(), "d1", func(*models.Diary) error { return nil })
		assert.ErrorIs(t, err, ErrExecutingQuery)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEncodeEmbedded_StripsAuthorNames(t *testing.T) {
	diary := models.Diary{
		User: models.UserRef{ID: "u1", Name: "John"},
		Comments: []models.Comment{
			{ID: "c1", User: models.UserRef{ID: "u2", Name: "Jane", Email: "jane@example.com"}, Content: "hi"},
		},
	}

	comments, _, _, err := encodeEmbedded(diary)
	require.NoError(t, err)

	assert.NotContains(t, string(comments), "Jane")
	assert.Contains(t, string(comments), `"_id":"u2"`)
	assert.Equal(t, "Jane", diary.Comments[0].User.Name)
}
