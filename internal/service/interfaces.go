package service

import (
	"context"

	"github.com/MKhiriev/work-diary/models"
)

// AuthService registers users, checks credentials and issues the bearer
// tokens guarding the diary API.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// DiaryService implements the diary REST operations. Every method returns the
// full entry with author names populated and the day expressed in the
// server's time zone.
type DiaryService interface {
	// SaveToday upserts the caller's entry for the current day.
	SaveToday(ctx context.Context, userID, content string) (models.Diary, error)
	ListDiaries(ctx context.Context, filter models.DiaryFilter) (models.DiaryPage, error)
	GetDiary(ctx context.Context, id string) (models.Diary, error)

	AddComment(ctx context.Context, id, userID, content string) (models.Diary, error)
	// React applies the reaction toggle rule for userID.
	React(ctx context.Context, id, userID string, reaction models.ReactionType) (models.Diary, error)

	AddTodo(ctx context.Context, id, content string) (models.Diary, error)
	// SetTodoCompleted and DeleteTodo address the todo by id or by
	// zero-based position.
	SetTodoCompleted(ctx context.Context, id, todoRef string, completed bool) (models.Diary, error)
	DeleteTodo(ctx context.Context, id, todoRef string) (models.Diary, error)
}

// DiaryServiceWrapper defines middleware composition for DiaryService.
// Implementations wrap an existing DiaryService to add behavior such as
// validation.
type DiaryServiceWrapper interface {
	Wrap(DiaryService) DiaryService // returns a decorated DiaryService applying additional behavior
}

// AppInfoService exposes what is running.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

type idGenerator interface {
	Generate() string
}
