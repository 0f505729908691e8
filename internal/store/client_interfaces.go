package store

import (
	"context"

	"github.com/MKhiriev/work-diary/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// DraftRepository keeps body writes that failed to reach the server,
// at most one per user and calendar day.
type DraftRepository interface {
	SaveDraft(ctx context.Context, draft models.Draft) error
	ListDrafts(ctx context.Context, userID string) ([]models.Draft, error)
	DeleteDraft(ctx context.Context, userID, day string) error
}

// SessionRepository keeps the single logged-in session of the client.
type SessionRepository interface {
	SaveSession(ctx context.Context, session models.Session) error
	LoadSession(ctx context.Context) (models.Session, error)
	DeleteSession(ctx context.Context) error
}
