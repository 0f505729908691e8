package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/work-diary/internal/validators"
	"github.com/MKhiriev/work-diary/models"
)

// DiaryValidationService rejects malformed input before it reaches the
// wrapped DiaryService. Every rejection wraps ErrInvalidDataProvided.
type DiaryValidationService struct {
	inner     DiaryService
	validator validators.Validator
}

func NewDiaryValidationService(validator validators.Validator) DiaryServiceWrapper {
	return &DiaryValidationService{validator: validator}
}

func (v *DiaryValidationService) SaveToday(ctx context.Context, userID, content string) (models.Diary, error) {
	if err := v.validate(ctx, models.SaveDiaryRequest{Content: content}); err != nil {
		return models.Diary{}, err
	}
	return v.inner.SaveToday(ctx, userID, content)
}

func (v *DiaryValidationService) ListDiaries(ctx context.Context, filter models.DiaryFilter) (models.DiaryPage, error) {
	if err := v.validate(ctx, filter); err != nil {
		return models.DiaryPage{}, err
	}
	return v.inner.ListDiaries(ctx, filter)
}

func (v *DiaryValidationService) GetDiary(ctx context.Context, id string) (models.Diary, error) {
	if err := requireID(id); err != nil {
		return models.Diary{}, err
	}
	return v.inner.GetDiary(ctx, id)
}

func (v *DiaryValidationService) AddComment(ctx context.Context, id, userID, content string) (models.Diary, error) {
	if err := requireID(id); err != nil {
		return models.Diary{}, err
	}
	if err := v.validate(ctx, models.CommentRequest{Content: content}); err != nil {
		return models.Diary{}, err
	}
	return v.inner.AddComment(ctx, id, userID, content)
}

func (v *DiaryValidationService) React(ctx context.Context, id, userID string, reaction models.ReactionType) (models.Diary, error) {
	if err := requireID(id); err != nil {
		return models.Diary{}, err
	}
	if err := v.validate(ctx, models.ReactionRequest{Type: reaction}); err != nil {
		return models.Diary{}, err
	}
	return v.inner.React(ctx, id, userID, reaction)
}

func (v *DiaryValidationService) AddTodo(ctx context.Context, id, content string) (models.Diary, error) {
	if err := requireID(id); err != nil {
		return models.Diary{}, err
	}
	if err := v.validate(ctx, models.TodoRequest{Content: content}); err != nil {
		return models.Diary{}, err
	}
	return v.inner.AddTodo(ctx, id, content)
}

func (v *DiaryValidationService) SetTodoCompleted(ctx context.Context, id, todoRef string, completed bool) (models.Diary, error) {
	if err := requireID(id, todoRef); err != nil {
		return models.Diary{}, err
	}
	return v.inner.SetTodoCompleted(ctx, id, todoRef, completed)
}

func (v *DiaryValidationService) DeleteTodo(ctx context.Context, id, todoRef string) (models.Diary, error) {
	if err := requireID(id, todoRef); err != nil {
		return models.Diary{}, err
	}
	return v.inner.DeleteTodo(ctx, id, todoRef)
}

func (v *DiaryValidationService) Wrap(wrapped DiaryService) DiaryService {
	v.inner = wrapped
	return v
}

func (v *DiaryValidationService) validate(ctx context.Context, obj any) error {
	if err := v.validator.Validate(ctx, obj); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

func requireID(ids ...string) error {
	for _, id := range ids {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("%w: id is required", ErrInvalidDataProvided)
		}
	}
	return nil
}
