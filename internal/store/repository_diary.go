// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/work-diary/internal/logger"
	"github.com/MKhiriev/work-diary/models"
)

// maxUpdateAttempts bounds how often a diary transaction is replayed after a
// retryable failure (serialization failure, deadlock, lock timeout).
const maxUpdateAttempts = 3

// diaryRepository is the PostgreSQL implementation of [DiaryRepository].
// Comments, reactions and todos are stored as JSONB arrays on the entry row;
// the (user_id, day) unique constraint backs upsert-by-day.
type diaryRepository struct {
	*DB
	logger *logger.Logger
}

// NewDiaryRepository constructs a [DiaryRepository] backed by db.
func NewDiaryRepository(db *DB, logger *logger.Logger) DiaryRepository {
	logger.Debug().Msg("creating diary repository")
	return &diaryRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *diaryRepository) UpsertByDay(ctx context.Context, id, userID, day, content string) (models.Diary, error) {
	log := logger.FromContext(ctx)

	diary, err := scanDiary(r.QueryRowContext(ctx, upsertDiary, id, userID, day, content))
	if err != nil {
		log.Err(err).
			Str("func", "*diaryRepository.UpsertByDay").
			Str("user_id", userID).
			Str("day", day).
			Msg("failed to upsert diary entry")
		return models.Diary{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return diary, nil
}

func (r *diaryRepository) FindDiaryByID(ctx context.Context, id string) (models.Diary, error) {
	diary, err := scanDiary(r.QueryRowContext(ctx, findDiaryByID, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Diary{}, ErrDiaryNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*diaryRepository.FindDiaryByID").
			Str("diary_id", id).
			Msg("failed to find diary entry")
		return models.Diary{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return diary, nil
}

func (r *diaryRepository) ListDiaries(ctx context.Context, filter models.DiaryFilter) ([]models.Diary, int, error) {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := buildCountDiariesQuery(filter)
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err = r.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*diaryRepository.ListDiaries").Msg("failed to count diary entries")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err := buildListDiariesQuery(filter)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*diaryRepository.ListDiaries").Msg("failed to list diary entries")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	diaries := make([]models.Diary, 0, filter.WithDefaults().Limit)
	for rows.Next() {
		diary, scanErr := scanDiary(rows)
		if scanErr != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		diaries = append(diaries, diary)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return diaries, total, nil
}

// UpdateDiary locks the entry row with SELECT ... FOR UPDATE, applies mutate
// and writes the embedded arrays back in the same transaction. Retryable
// failures replay the whole transaction.
func (r *diaryRepository) UpdateDiary(ctx context.Context, id string, mutate func(*models.Diary) error) (models.Diary, error) {
	var (
		diary models.Diary
		err   error
	)
	for attempt := 1; attempt <= maxUpdateAttempts; attempt++ {
		diary, err = r.updateOnce(ctx, id, mutate)
		if err == nil || r.classify(err) != Retryable {
			return diary, err
		}
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "*diaryRepository.UpdateDiary").
			Str("diary_id", id).
			Int("attempt", attempt).
			Msg("retrying diary update")
	}

	return models.Diary{}, fmt.Errorf("%w: %w", ErrConcurrentUpdate, err)
}

func (r *diaryRepository) updateOnce(ctx context.Context, id string, mutate func(*models.Diary) error) (models.Diary, error) {
	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		return models.Diary{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	diary, err := scanDiary(tx.QueryRowContext(ctx, lockDiaryByID, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Diary{}, ErrDiaryNotFound
	}
	if err != nil {
		return models.Diary{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = mutate(&diary); err != nil {
		return models.Diary{}, err
	}

	comments, reactions, todos, err := encodeEmbedded(diary)
	if err != nil {
		return models.Diary{}, err
	}

	err = tx.QueryRowContext(ctx, updateDiary, id, diary.Content, comments, reactions, todos).Scan(&diary.UpdatedAt)
	if err != nil {
		return models.Diary{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		return models.Diary{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return diary, nil
}

func scanDiary(row rowScanner) (models.Diary, error) {
	var (
		diary                      models.Diary
		comments, reactions, todos []byte
	)

	err := row.Scan(
		&diary.ID,
		&diary.User.ID,
		&diary.Date,
		&diary.Content,
		&comments,
		&reactions,
		&todos,
		&diary.CreatedAt,
		&diary.UpdatedAt,
	)
	if err != nil {
		return models.Diary{}, err
	}

	if err = decodeEmbedded(comments, &diary.Comments); err != nil {
		return models.Diary{}, err
	}
	if err = decodeEmbedded(reactions, &diary.Reactions); err != nil {
		return models.Diary{}, err
	}
	if err = decodeEmbedded(todos, &diary.Todos); err != nil {
		return models.Diary{}, err
	}
	diary.Normalize()

	return diary, nil
}

func decodeEmbedded(raw []byte, dst any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}
	return nil
}

// encodeEmbedded serializes the embedded arrays. Comment authors are reduced
// to their ids; names are populated on read.
func encodeEmbedded(diary models.Diary) (comments, reactions, todos []byte, err error) {
	diary = stripAuthors(diary)

	if comments, err = json.Marshal(diary.Comments); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}
	if reactions, err = json.Marshal(diary.Reactions); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}
	if todos, err = json.Marshal(diary.Todos); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}
	return comments, reactions, todos, nil
}

func stripAuthors(diary models.Diary) models.Diary {
	diary = diary.Clone()
	diary.User = models.UserRef{ID: diary.User.ID}
	for i := range diary.Comments {
		diary.Comments[i].User = models.UserRef{ID: diary.Comments[i].User.ID}
	}
	return diary
}
