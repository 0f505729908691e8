package store

import (
	"context"

	"github.com/MKhiriev/work-diary/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUsersByIDs(ctx context.Context, ids []string) ([]models.User, error)
}

// DiaryRepository persists diary entries. Every implementation enforces the
// one-entry-per-(user, day) rule.
//
// Returned entries carry bare author ids; Date is midnight UTC of the
// stored calendar day.
type DiaryRepository interface {
	// UpsertByDay creates the user's entry for day (formatted as
	// [models.DayLayout]) with id, or overwrites the content of the existing one.
	UpsertByDay(ctx context.Context, id, userID, day, content string) (models.Diary, error)
	FindDiaryByID(ctx context.Context, id string) (models.Diary, error)
	// ListDiaries returns one page of entries, newest day first, and the
	// total number of entries matching the filter.
	ListDiaries(ctx context.Context, filter models.DiaryFilter) ([]models.Diary, int, error)
	// UpdateDiary atomically reads the entry, applies mutate and stores the
	// result. An error returned by mutate aborts the update and is returned
	// unchanged.
	UpdateDiary(ctx context.Context, id string, mutate func(*models.Diary) error) (models.Diary, error)
}

// Pinger reports whether the backing store answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
