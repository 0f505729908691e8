package service

import (
	"context"
	"time"

	"github.com/MKhiriev/work-diary/internal/mirror"
	"github.com/MKhiriev/work-diary/models"
)

// ClientAuthService obtains and keeps the bearer token of the client.
type ClientAuthService interface {
	// Register creates an account on the server, stores the returned token
	// in the adapter and persists the session locally.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login authenticates against the server and persists the session.
	// Wrong credentials surface as ErrWrongPassword.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// RestoreSession loads the session saved by a previous run.
	// Returns ErrNotLoggedIn if there is none.
	RestoreSession(ctx context.Context) (models.User, error)

	// Logout forgets the token locally. The server keeps no session state.
	Logout(ctx context.Context) error

	// CurrentUser returns the logged-in user, if any.
	CurrentUser() (models.User, bool)
}

// Synchronizer applies mutations to the local mirror optimistically and
// reconciles them with the server.
//
// Mutation methods return immediately after the mirror has been updated.
// Remote calls of one entry run one at a time in call order, calls of
// different entries run in parallel. A failed call reverts the entry to its
// last confirmed copy with the still queued mutations replayed, publishes an
// error on the status board and refetches the active view. Nothing is retried.
type Synchronizer interface {
	// Refresh fetches view from the server and makes it the active view.
	Refresh(ctx context.Context, view mirror.View) error

	AddComment(entryID, text string) *Op
	ToggleReaction(entryID string, reaction models.ReactionType) *Op
	AddTodo(entryID, text string) *Op

	// ToggleTodo and DeleteTodo accept a todo id, a temporary id handed out by
	// AddTodo, or a zero-based position in the entry's current todo list.
	ToggleTodo(entryID, todoID string) *Op
	DeleteTodo(entryID, todoID string) *Op

	// Close waits for queued remote calls to finish or ctx to expire, then
	// cancels whatever is still in flight.
	Close(ctx context.Context) error
}

// DebouncedWriter coalesces edits of today's entry body into one write per
// idle window.
type DebouncedWriter interface {
	// Type shows text as today's body right away and re-arms the idle timer.
	// Blank text cancels a pending write.
	Type(text string) error

	// Saving reports whether a write is in flight.
	Saving() bool

	// Flush sends a pending write immediately.
	Flush(ctx context.Context) error

	// Close flushes and stops the writer.
	Close(ctx context.Context) error
}

// DraftService replays body writes that could not reach the server in an
// earlier run.
type DraftService interface {
	// Replay sends the logged-in user's draft of today and drops their
	// drafts of past days.
	// It returns the number of drafts that reached the server.
	Replay(ctx context.Context) (int, error)
}

// StatusKind tells informational captions from errors.
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusError
)

// Status is one transient caption.
type Status struct {
	Kind      StatusKind
	Message   string
	ExpiresAt time.Time
}

// StatusBoard holds the transient caption shown to the user.
type StatusBoard interface {
	Info(msg string, ttl time.Duration)
	Error(msg string, ttl time.Duration)
	// Current returns the latest caption that has not expired.
	Current() (Status, bool)
}

type userSource interface {
	CurrentUser() (models.User, bool)
}

type tempIDGenerator interface {
	GenerateTemp() string
}
