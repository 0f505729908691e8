package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/work-diary/internal/adapter"
	"github.com/MKhiriev/work-diary/internal/app"
	"github.com/MKhiriev/work-diary/internal/logger"
	"github.com/MKhiriev/work-diary/internal/mirror"
	"github.com/MKhiriev/work-diary/internal/store"
	"github.com/MKhiriev/work-diary/models"
)

type draftService struct {
	mirror  *mirror.Mirror
	adapter adapter.ServerAdapter
	drafts  store.DraftRepository
	board   StatusBoard
	users   userSource

	savedTTL time.Duration
	loc      *time.Location
	now      func() time.Time

	logger *logger.Logger
}

func NewDraftService(
	m *mirror.Mirror,
	serverAdapter adapter.ServerAdapter,
	drafts store.DraftRepository,
	board StatusBoard,
	users userSource,
	savedTTL time.Duration,
	loc *time.Location,
	logger *logger.Logger,
) DraftService {
	return &draftService{
		mirror:   m,
		adapter:  serverAdapter,
		drafts:   drafts,
		board:    board,
		users:    users,
		savedTTL: savedTTL,
		loc:      loc,
		now:      time.Now,
		logger:   logger,
	}
}

// Replay implements DraftService. Only drafts of the logged-in user are
// sent; those of other users stay until they log in here again. The server
// only upserts the current day, so a draft of an earlier day cannot be
// written anymore and is dropped with a warning.
func (s *draftService) Replay(ctx context.Context) (int, error) {
	user, ok := s.users.CurrentUser()
	if !ok {
		return 0, ErrNotLoggedIn
	}

	drafts, err := s.drafts.ListDrafts(ctx, user.UserID)
	if err != nil {
		return 0, fmt.Errorf("error listing drafts: %w", err)
	}

	today := models.DayKey(s.now(), s.loc)
	restored := 0

	for _, draft := range drafts {
		if draft.Day != today {
			s.logger.Warn().Str("day", draft.Day).Int("length", len(draft.Content)).
				Msg("dropping draft of a past day")
			if err = s.drafts.DeleteDraft(ctx, user.UserID, draft.Day); err != nil {
				return restored, fmt.Errorf("error deleting stale draft: %w", err)
			}
			continue
		}

		entry, err := s.adapter.SaveDiary(ctx, draft.Content)
		if err != nil {
			return restored, fmt.Errorf("%w: %w", ErrSaveFailed, mapAdapterError(err))
		}
		s.mirror.Upsert(entry)

		if err = s.drafts.DeleteDraft(ctx, user.UserID, draft.Day); err != nil {
			return restored, fmt.Errorf("error deleting replayed draft: %w", err)
		}
		restored++
	}

	if restored > 0 {
		s.board.Info(app.MsgDraftRestored, s.savedTTL)
	}

	return restored, nil
}
