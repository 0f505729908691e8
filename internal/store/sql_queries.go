package store

import (
	"fmt"

	"github.com/MKhiriev/work-diary/models"
	sq "github.com/Masterminds/squirrel"
)

var diaryColumns = []string{
	"diary_id", "user_id", "day", "content", "comments", "reactions", "todos", "created_at", "updated_at",
}

const (
	createUser = `INSERT INTO users (user_id, name, email, password)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, name, email, password, created_at;`

	findUserByEmail = `SELECT user_id, name, email, password, created_at
    FROM users
    WHERE email = $1;`

	upsertDiary = `INSERT INTO diaries (diary_id, user_id, day, content)
		VALUES ($1, $2, $3::date, $4)
		ON CONFLICT (user_id, day) DO UPDATE
		SET content = EXCLUDED.content, updated_at = NOW()
		RETURNING diary_id, user_id, day, content, comments, reactions, todos, created_at, updated_at;`

	findDiaryByID = `SELECT diary_id, user_id, day, content, comments, reactions, todos, created_at, updated_at
		FROM diaries
		WHERE diary_id = $1;`

	lockDiaryByID = `SELECT diary_id, user_id, day, content, comments, reactions, todos, created_at, updated_at
		FROM diaries
		WHERE diary_id = $1
		FOR UPDATE;`

	updateDiary = `UPDATE diaries
		SET content = $2, comments = $3, reactions = $4, todos = $5, updated_at = NOW()
		WHERE diary_id = $1
		RETURNING updated_at;`
)

// buildFindUsersByIDsQuery selects the users whose ids are listed.
func buildFindUsersByIDsQuery(ids []string) (string, []any, error) {
	query, args, err := sq.Select("user_id", "name", "email", "password", "created_at").
		From("users").
		Where(sq.Eq{"user_id": ids}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildListDiariesQuery selects one page of entries, newest day first.
func buildListDiariesQuery(filter models.DiaryFilter) (string, []any, error) {
	filter = filter.WithDefaults()

	query, args, err := whereDiaryFilter(sq.Select(diaryColumns...).From("diaries"), filter).
		OrderBy("day DESC", "created_at DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset())).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildCountDiariesQuery counts the entries matching filter.
func buildCountDiariesQuery(filter models.DiaryFilter) (string, []any, error) {
	query, args, err := whereDiaryFilter(sq.Select("COUNT(*)").From("diaries"), filter).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func whereDiaryFilter(b sq.SelectBuilder, filter models.DiaryFilter) sq.SelectBuilder {
	if filter.UserID != "" {
		b = b.Where(sq.Eq{"user_id": filter.UserID})
	}
	if filter.Date != "" {
		b = b.Where("day = ?::date", filter.Date)
	}
	return b
}
