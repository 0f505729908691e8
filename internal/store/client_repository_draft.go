package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/work-diary/internal/logger"
	"github.com/MKhiriev/work-diary/models"
)

type localDraftRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalDraftRepository returns the SQLite-backed [DraftRepository].
func NewLocalDraftRepository(db *DB, logger *logger.Logger) DraftRepository {
	return &localDraftRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveDraft stores draft, replacing any earlier draft of the same user and day.
func (l *localDraftRepository) SaveDraft(ctx context.Context, draft models.Draft) error {
	if draft.UpdatedAt.IsZero() {
		draft.UpdatedAt = time.Now()
	}

	if draft.UserID == "" {
		return ErrDraftWithoutUser
	}

	if _, err := l.ExecContext(ctx, saveDraft, draft.UserID, draft.Day, draft.Content, draft.UpdatedAt.UTC()); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localDraftRepository.SaveDraft").
			Str("user_id", draft.UserID).
			Str("day", draft.Day).
			Msg("failed to save draft")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// ListDrafts returns the drafts of userID ordered by day.
func (l *localDraftRepository) ListDrafts(ctx context.Context, userID string) ([]models.Draft, error) {
	rows, err := l.QueryContext(ctx, listDrafts, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localDraftRepository.ListDrafts").Msg("failed to list drafts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var drafts []models.Draft
	for rows.Next() {
		var d models.Draft
		if err = rows.Scan(&d.UserID, &d.Day, &d.Content, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		drafts = append(drafts, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return drafts, nil
}

func (l *localDraftRepository) DeleteDraft(ctx context.Context, userID, day string) error {
	if _, err := l.ExecContext(ctx, deleteDraft, userID, day); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localDraftRepository.DeleteDraft").
			Str("user_id", userID).
			Str("day", day).
			Msg("failed to delete draft")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
