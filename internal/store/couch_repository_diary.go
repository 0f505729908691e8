// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/work-diary/internal/logger"
	"github.com/MKhiriev/work-diary/models"
)

// countLimit caps how many ids a count query pulls. Mango has no count
// operator.
const countLimit = 1 << 20

type couchDiaryDoc struct {
	ID        string            `json:"_id"`
	Rev       string            `json:"_rev,omitempty"`
	Type      string            `json:"type"`
	DiaryID   string            `json:"diary_id"`
	UserID    string            `json:"user_id"`
	Day       string            `json:"day"`
	Content   string            `json:"content"`
	Comments  []models.Comment  `json:"comments"`
	Reactions []models.Reaction `json:"reactions"`
	Todos     []models.Todo     `json:"todos"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// couchDayDoc claims a (user, day) pair for one entry.
type couchDayDoc struct {
	ID      string `json:"_id"`
	Rev     string `json:"_rev,omitempty"`
	Type    string `json:"type"`
	DiaryID string `json:"diary_id"`
}

func (d couchDiaryDoc) toModel() (models.Diary, error) {
	date, err := time.Parse(models.DayLayout, d.Day)
	if err != nil {
		return models.Diary{}, fmt.Errorf("%w: bad day %q: %w", ErrEncodingDocument, d.Day, err)
	}

	diary := models.Diary{
		ID:        d.DiaryID,
		User:      models.UserRef{ID: d.UserID},
		Content:   d.Content,
		Date:      date,
		Comments:  d.Comments,
		Reactions: d.Reactions,
		Todos:     d.Todos,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	diary.Normalize()
	return diary, nil
}

func (d *couchDiaryDoc) apply(diary models.Diary) {
	diary = stripAuthors(diary)
	d.Content = diary.Content
	d.Comments = diary.Comments
	d.Reactions = diary.Reactions
	d.Todos = diary.Todos
}

func couchDiaryDocID(id string) string {
	return "diary:" + id
}

func couchDayDocID(userID, day string) string {
	return "day:" + userID + ":" + day
}

// couchDiaryRepository is the CouchDB implementation of [DiaryRepository].
// Each entry is a "diary:<id>" document; the one-entry-per-day rule is kept
// by a "day:<user>:<day>" claim document whose id CouchDB makes unique.
// Revision conflicts are retried.
type couchDiaryRepository struct {
	*CouchDB
}

// NewCouchDiaryRepository constructs a CouchDB-backed [DiaryRepository].
func NewCouchDiaryRepository(c *CouchDB) DiaryRepository {
	c.logger.Debug().Msg("creating couchdb diary repository")
	return &couchDiaryRepository{CouchDB: c}
}

func (r *couchDiaryRepository) UpsertByDay(ctx context.Context, id, userID, day, content string) (models.Diary, error) {
	log := logger.FromContext(ctx)

	for attempt := 1; attempt <= maxUpdateAttempts; attempt++ {
		diary, retry, err := r.upsertOnce(ctx, id, userID, day, content)
		if !retry {
			if err != nil {
				log.Err(err).
					Str("func", "*couchDiaryRepository.UpsertByDay").
					Str("user_id", userID).
					Str("day", day).
					Msg("failed to upsert diary entry")
			}
			return diary, err
		}
		log.Warn().Str("func", "*couchDiaryRepository.UpsertByDay").Int("attempt", attempt).Msg("conflict, retrying upsert")
	}

	return models.Diary{}, ErrConcurrentUpdate
}

func (r *couchDiaryRepository) upsertOnce(ctx context.Context, id, userID, day, content string) (models.Diary, bool, error) {
	now := time.Now().UTC()

	var claim couchDayDoc
	err := r.db.Get(ctx, couchDayDocID(userID, day)).ScanDoc(&claim)
	switch {
	case isCouchNotFound(err):
		claim = couchDayDoc{ID: couchDayDocID(userID, day), Type: couchTypeDay, DiaryID: id}
		if _, err = r.db.Put(ctx, claim.ID, claim); err != nil {
			if isCouchConflict(err) {
				return models.Diary{}, true, nil
			}
			return models.Diary{}, false, fmt.Errorf("%w: %w", ErrCouchRequest, err)
		}
	case err != nil:
		return models.Diary{}, false, fmt.Errorf("%w: %w", ErrCouchRequest, err)
	}

	var doc couchDiaryDoc
	err = r.db.Get(ctx, couchDiaryDocID(claim.DiaryID)).ScanDoc(&doc)
	switch {
	case isCouchNotFound(err):
		doc = couchDiaryDoc{
			ID:        couchDiaryDocID(claim.DiaryID),
			Type:      couchTypeDiary,
			DiaryID:   claim.DiaryID,
			UserID:    userID,
			Day:       day,
			Comments:  []models.Comment{},
			Reactions: []models.Reaction{},
			Todos:     []models.Todo{},
			CreatedAt: now,
		}
	case err != nil:
		return models.Diary{}, false, fmt.Errorf("%w: %w", ErrCouchRequest, err)
	}

	doc.Content = content
	doc.UpdatedAt = now

	if _, err = r.db.Put(ctx, doc.ID, doc); err != nil {
		if isCouchConflict(err) {
			return models.Diary{}, true, nil
		}
		return models.Diary{}, false, fmt.Errorf("%w: %w", ErrCouchRequest, err)
	}

	diary, err := doc.toModel()
	return diary, false, err
}

func (r *couchDiaryRepository) FindDiaryByID(ctx context.Context, id string) (models.Diary, error) {
	doc, err := r.get(ctx, id)
	if err != nil {
		return models.Diary{}, err
	}
	return doc.toModel()
}

func (r *couchDiaryRepository) get(ctx context.Context, id string) (couchDiaryDoc, error) {
	var doc couchDiaryDoc
	if err := r.db.Get(ctx, couchDiaryDocID(id)).ScanDoc(&doc); err != nil {
		if isCouchNotFound(err) {
			return couchDiaryDoc{}, ErrDiaryNotFound
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "*couchDiaryRepository.get").
			Str("diary_id", id).
			Msg("failed to read diary entry")
		return couchDiaryDoc{}, fmt.Errorf("%w: %w", ErrCouchRequest, err)
	}
	return doc, nil
}

func (r *couchDiaryRepository) ListDiaries(ctx context.Context, filter models.DiaryFilter) ([]models.Diary, int, error) {
	filter = filter.WithDefaults()
	selector := diarySelector(filter)

	total, err := r.count(ctx, selector)
	if err != nil {
		return nil, 0, err
	}

	query := map[string]any{
		"selector": selector,
		"sort":     []map[string]string{{"type": "desc"}, {"day": "desc"}},
		"limit":    filter.Limit,
		"skip":     filter.Offset(),
	}

	rows := r.db.Find(ctx, query)
	defer rows.Close()

	diaries := make([]models.Diary, 0, filter.Limit)
	for rows.Next() {
		var doc couchDiaryDoc
		if err = rows.ScanDoc(&doc); err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		diary, convErr := doc.toModel()
		if convErr != nil {
			return nil, 0, convErr
		}
		diaries = append(diaries, diary)
	}
	if err = rows.Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*couchDiaryRepository.ListDiaries").Msg("failed to list diary entries")
		return nil, 0, fmt.Errorf("%w: %w", ErrCouchRequest, err)
	}

	return diaries, total, nil
}

func (r *couchDiaryRepository) count(ctx context.Context, selector map[string]any) (int, error) {
	rows := r.db.Find(ctx, map[string]any{
		"selector": selector,
		"fields":   []string{"_id"},
		"limit":    countLimit,
	})
	defer rows.Close()

	total := 0
	for rows.Next() {
		total++
	}
	if err := rows.Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*couchDiaryRepository.count").Msg("failed to count diary entries")
		return 0, fmt.Errorf("%w: %w", ErrCouchRequest, err)
	}
	return total, nil
}

func diarySelector(filter models.DiaryFilter) map[string]any {
	selector := map[string]any{
		"type": couchTypeDiary,
		"day":  map[string]any{"$gt": ""},
	}
	if filter.UserID != "" {
		selector["user_id"] = filter.UserID
	}
	if filter.Date != "" {
		selector["day"] = filter.Date
	}
	return selector
}

func (r *couchDiaryRepository) UpdateDiary(ctx context.Context, id string, mutate func(*models.Diary) error) (models.Diary, error) {
	for attempt := 1; attempt <= maxUpdateAttempts; attempt++ {
		doc, err := r.get(ctx, id)
		if err != nil {
			return models.Diary{}, err
		}

		diary, err := doc.toModel()
		if err != nil {
			return models.Diary{}, err
		}
		if err = mutate(&diary); err != nil {
			return models.Diary{}, err
		}

		doc.apply(diary)
		doc.UpdatedAt = time.Now().UTC()

		if _, err = r.db.Put(ctx, doc.ID, doc); err != nil {
			if isCouchConflict(err) {
				logger.FromContext(ctx).Warn().
					Str("func", "*couchDiaryRepository.UpdateDiary").
					Str("diary_id", id).
					Int("attempt", attempt).
					Msg("conflict, retrying diary update")
				continue
			}
			return models.Diary{}, fmt.Errorf("%w: %w", ErrCouchRequest, err)
		}

		return doc.toModel()
	}

	return models.Diary{}, ErrConcurrentUpdate
}
