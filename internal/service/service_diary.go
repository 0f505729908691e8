// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/work-diary/internal/logger"
	"github.com/MKhiriev/work-diary/internal/store"
	"github.com/MKhiriev/work-diary/models"
)

type diaryService struct {
	diaries store.DiaryRepository
	users   store.UserRepository
	ids     idGenerator

	// loc decides which calendar day "today" is.
	loc *time.Location
	now func() time.Time

	logger *logger.Logger
}

func NewDiaryService(diaries store.DiaryRepository, users store.UserRepository, ids idGenerator, loc *time.Location, logger *logger.Logger) DiaryService {
	if loc == nil {
		loc = time.UTC
	}
	return &diaryService{
		diaries: diaries,
		users:   users,
		ids:     ids,
		loc:     loc,
		now:     time.Now,
		logger:  logger,
	}
}

func (d *diaryService) SaveToday(ctx context.Context, userID, content string) (models.Diary, error) {
	day := models.DayKey(d.now(), d.loc)

	diary, err := d.diaries.UpsertByDay(ctx, d.ids.Generate(), userID, day, content)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Str("day", day).Msg("saving today's entry failed")
		return models.Diary{}, fmt.Errorf("error saving entry for %s: %w", day, err)
	}

	return d.present(ctx, diary)
}

func (d *diaryService) ListDiaries(ctx context.Context, filter models.DiaryFilter) (models.DiaryPage, error) {
	filter = filter.WithDefaults()

	diaries, total, err := d.diaries.ListDiaries(ctx, filter)
	if err != nil {
		return models.DiaryPage{}, fmt.Errorf("error listing entries: %w", err)
	}

	refs := make([]*models.Diary, len(diaries))
	for i := range diaries {
		refs[i] = &diaries[i]
	}
	if err = d.populate(ctx, refs...); err != nil {
		return models.DiaryPage{}, err
	}
	for i := range diaries {
		diaries[i] = d.localize(diaries[i])
	}
	if diaries == nil {
		diaries = []models.Diary{}
	}

	return models.DiaryPage{
		Diaries:     diaries,
		TotalPages:  models.TotalPages(total, filter.Limit),
		CurrentPage: filter.Page,
	}, nil
}

func (d *diaryService) GetDiary(ctx context.Context, id string) (models.Diary, error) {
	diary, err := d.diaries.FindDiaryByID(ctx, id)
	if err != nil {
		return models.Diary{}, fmt.Errorf("error getting entry %s: %w", id, err)
	}
	return d.present(ctx, diary)
}

func (d *diaryService) AddComment(ctx context.Context, id, userID, content string) (models.Diary, error) {
	now := d.now()
	return d.update(ctx, id, func(diary *models.Diary) error {
		diary.AddComment(models.Comment{
			ID:        d.ids.Generate(),
			User:      models.UserRef{ID: userID},
			Content:   content,
			CreatedAt: now,
		})
		return nil
	})
}

func (d *diaryService) React(ctx context.Context, id, userID string, reaction models.ReactionType) (models.Diary, error) {
	return d.update(ctx, id, func(diary *models.Diary) error {
		diary.ToggleReaction(userID, reaction)
		return nil
	})
}

func (d *diaryService) AddTodo(ctx context.Context, id, content string) (models.Diary, error) {
	now := d.now()
	return d.update(ctx, id, func(diary *models.Diary) error {
		diary.AddTodo(models.Todo{
			ID:        d.ids.Generate(),
			Content:   content,
			CreatedAt: now,
			UpdatedAt: now,
		})
		return nil
	})
}

func (d *diaryService) SetTodoCompleted(ctx context.Context, id, todoRef string, completed bool) (models.Diary, error) {
	now := d.now()
	return d.update(ctx, id, func(diary *models.Diary) error {
		i, ok := diary.ResolveTodo(todoRef)
		if !ok {
			return ErrTodoNotFound
		}
		diary.SetTodoCompleted(i, completed, now)
		return nil
	})
}

func (d *diaryService) DeleteTodo(ctx context.Context, id, todoRef string) (models.Diary, error) {
	return d.update(ctx, id, func(diary *models.Diary) error {
		i, ok := diary.ResolveTodo(todoRef)
		if !ok {
			return ErrTodoNotFound
		}
		diary.RemoveTodo(i)
		return nil
	})
}

func (d *diaryService) update(ctx context.Context, id string, mutate func(*models.Diary) error) (models.Diary, error) {
	diary, err := d.diaries.UpdateDiary(ctx, id, mutate)
	if errors.Is(err, ErrTodoNotFound) {
		return models.Diary{}, err
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("diary_id", id).Msg("entry update failed")
		return models.Diary{}, fmt.Errorf("error updating entry %s: %w", id, err)
	}
	return d.present(ctx, diary)
}

func (d *diaryService) present(ctx context.Context, diary models.Diary) (models.Diary, error) {
	if err := d.populate(ctx, &diary); err != nil {
		return models.Diary{}, err
	}
	return d.localize(diary), nil
}

// populate replaces bare author ids with name and email. Authors that no
// longer exist keep the bare id.
func (d *diaryService) populate(ctx context.Context, diaries ...*models.Diary) error {
	var ids []string
	for _, diary := range diaries {
		for _, id := range diary.UserIDs() {
			if !slices.Contains(ids, id) {
				ids = append(ids, id)
			}
		}
	}
	if len(ids) == 0 {
		return nil
	}

	found, err := d.users.FindUsersByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("error populating entry authors: %w", err)
	}

	users := make(map[string]models.User, len(found))
	for _, u := range found {
		users[u.UserID] = u
	}
	for _, diary := range diaries {
		diary.PopulateUsers(users)
		diary.Normalize()
	}
	return nil
}

func (d *diaryService) localize(diary models.Diary) models.Diary {
	y, m, day := diary.Date.UTC().Date()
	diary.Date = time.Date(y, m, day, 0, 0, 0, 0, d.loc)
	return diary
}
