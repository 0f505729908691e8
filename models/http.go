package models

import "time"

// DefaultPageLimit is the page size used when the caller does not set one.
const DefaultPageLimit = 10

// SaveDiaryRequest is the payload of POST /api/diaries.
// The server upserts the caller's entry for the current day.
type SaveDiaryRequest struct {
	Content string `json:"content" validate:"notblank"`
}

// CommentRequest is the payload of POST /api/diaries/{id}/comments.
type CommentRequest struct {
	Content string `json:"content" validate:"notblank"`
}

// ReactionRequest is the payload of POST /api/diaries/{id}/reactions.
type ReactionRequest struct {
	Type ReactionType `json:"type" validate:"required,reaction"`
}

// TodoRequest is the payload of POST /api/diaries/{id}/todos.
type TodoRequest struct {
	Content string `json:"content" validate:"notblank"`
}

// TodoUpdateRequest is the payload of PUT /api/diaries/{id}/todos/{todo}.
// Completed is required; a missing field is a validation failure.
type TodoUpdateRequest struct {
	Completed *bool `json:"completed" validate:"required"`
}

// DiaryFilter selects a page of entries.
//
// An empty UserID means the team feed. Date, when set, restricts the result
// to a single calendar day formatted as [DayLayout].
type DiaryFilter struct {
	UserID string `json:"userId,omitempty" validate:"omitempty"`
	Date   string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Page   int    `json:"page,omitempty" validate:"gte=0"`
	Limit  int    `json:"limit,omitempty" validate:"gte=0,lte=100"`
}

// WithDefaults returns the filter with page 1 and [DefaultPageLimit]
// applied to unset fields.
func (f DiaryFilter) WithDefaults() DiaryFilter {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = DefaultPageLimit
	}
	return f
}

// Offset returns the number of entries preceding the requested page.
func (f DiaryFilter) Offset() int {
	f = f.WithDefaults()
	return (f.Page - 1) * f.Limit
}

// DiaryPage is one page of entries sorted by date, newest first.
type DiaryPage struct {
	Diaries     []Diary `json:"diaries"`
	TotalPages  int     `json:"totalPages"`
	CurrentPage int     `json:"currentPage"`
}

// TotalPages returns ceil(total/limit).
func TotalPages(total, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Message string `json:"message"`
}

// Draft is a body write that could not reach the server. It is kept in the
// client's local store and replayed on the next start of the same user.
type Draft struct {
	UserID    string    `json:"userId"`
	Day       string    `json:"day"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Session is the locally persisted login of the client.
type Session struct {
	Token   string    `json:"token"`
	User    User      `json:"user"`
	SavedAt time.Time `json:"savedAt"`
}
