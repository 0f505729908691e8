// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/work-diary/internal/adapter"
	"github.com/MKhiriev/work-diary/internal/app"
	"github.com/MKhiriev/work-diary/internal/logger"
	"github.com/MKhiriev/work-diary/internal/mirror"
	"github.com/MKhiriev/work-diary/models"
)

type remoteCall func(ctx context.Context) (models.Diary, error)

type synchronizer struct {
	mirror  *mirror.Mirror
	adapter adapter.ServerAdapter
	board   StatusBoard
	users   userSource
	ids     tempIDGenerator

	queues  *entryQueues
	aliases *todoAliases
	seq     atomic.Uint64

	errorTTL time.Duration
	now      func() time.Time

	ctx    context.Context
	cancel context.CancelFunc

	logger *logger.Logger
}

// NewSynchronizer returns a synchronizer operating on m. Remote calls run
// until Close is called.
func NewSynchronizer(
	m *mirror.Mirror,
	serverAdapter adapter.ServerAdapter,
	board StatusBoard,
	users userSource,
	ids tempIDGenerator,
	errorTTL time.Duration,
	logger *logger.Logger,
) Synchronizer {
	ctx, cancel := context.WithCancel(context.Background())

	return &synchronizer{
		mirror:   m,
		adapter:  serverAdapter,
		board:    board,
		users:    users,
		ids:      ids,
		queues:   newEntryQueues(),
		aliases:  newTodoAliases(),
		errorTTL: errorTTL,
		now:      time.Now,
		ctx:      ctx,
		cancel:   cancel,
		logger:   logger,
	}
}

func (s *synchronizer) Refresh(ctx context.Context, view mirror.View) error {
	page, err := s.adapter.ListDiaries(ctx, view.Filter())
	if err != nil {
		err = mapAdapterError(err)
		s.board.Error(s.failureMessage(app.MsgFetchEntriesFailed, err), s.errorTTL)
		return fmt.Errorf("%w: %w", ErrFetchEntries, err)
	}

	s.mirror.ReplaceAll(view, page)
	return nil
}

func (s *synchronizer) AddComment(entryID, text string) *Op {
	user, ok := s.users.CurrentUser()
	if !ok {
		return completedOp(ErrNotLoggedIn)
	}

	comment := models.Comment{
		ID:        s.ids.GenerateTemp(),
		User:      user.Ref(),
		Content:   text,
		CreatedAt: s.now(),
	}

	return s.mutate(entryID, app.MsgAddCommentFailed,
		func(d *models.Diary) { d.AddComment(comment) },
		func(ctx context.Context) (models.Diary, error) {
			return s.adapter.AddComment(ctx, entryID, text)
		},
	)
}

func (s *synchronizer) ToggleReaction(entryID string, reaction models.ReactionType) *Op {
	user, ok := s.users.CurrentUser()
	if !ok {
		return completedOp(ErrNotLoggedIn)
	}

	return s.mutate(entryID, app.MsgAddReactionFailed,
		func(d *models.Diary) { d.ToggleReaction(user.UserID, reaction) },
		func(ctx context.Context) (models.Diary, error) {
			return s.adapter.React(ctx, entryID, reaction)
		},
	)
}

func (s *synchronizer) AddTodo(entryID, text string) *Op {
	now := s.now()
	todo := models.Todo{
		ID:        s.ids.GenerateTemp(),
		Content:   text,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return s.mutate(entryID, app.MsgAddTodoFailed,
		func(d *models.Diary) { d.AddTodo(todo) },
		func(ctx context.Context) (models.Diary, error) {
			before, _ := s.mirror.Confirmed(entryID)

			entry, err := s.adapter.AddTodo(ctx, entryID, text)
			if err != nil {
				return entry, err
			}

			if id, ok := addedTodoID(before, entry, text); ok {
				s.aliases.bind(todo.ID, id)
			}
			return entry, nil
		},
	)
}

func (s *synchronizer) ToggleTodo(entryID, todoID string) *Op {
	todo, op := s.currentTodo(entryID, todoID)
	if op != nil {
		return op
	}

	completed := !todo.Completed
	now := s.now()

	return s.mutate(entryID, app.MsgToggleTodoFailed,
		func(d *models.Diary) {
			if i, ok := d.TodoIndex(s.aliases.resolve(todo.ID)); ok {
				d.SetTodoCompleted(i, completed, now)
			}
		},
		func(ctx context.Context) (models.Diary, error) {
			id, ok := s.aliases.lookup(todo.ID)
			if !ok {
				return models.Diary{}, ErrUnresolvedTodo
			}
			return s.adapter.SetTodoCompleted(ctx, entryID, id, completed)
		},
	)
}

func (s *synchronizer) DeleteTodo(entryID, todoID string) *Op {
	todo, op := s.currentTodo(entryID, todoID)
	if op != nil {
		return op
	}

	return s.mutate(entryID, app.MsgDeleteTodoFailed,
		func(d *models.Diary) {
			if i, ok := d.TodoIndex(s.aliases.resolve(todo.ID)); ok {
				d.RemoveTodo(i)
			}
		},
		func(ctx context.Context) (models.Diary, error) {
			id, ok := s.aliases.lookup(todo.ID)
			if !ok {
				return models.Diary{}, ErrUnresolvedTodo
			}
			return s.adapter.DeleteTodo(ctx, entryID, id)
		},
	)
}

func (s *synchronizer) Close(ctx context.Context) error {
	defer s.cancel()

	select {
	case <-s.queues.idle():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// currentTodo resolves todoRef against the entry as the user sees it now.
// A non-nil Op means the mutation has nothing to act on.
func (s *synchronizer) currentTodo(entryID, todoRef string) (models.Todo, *Op) {
	entry, ok := s.mirror.Get(entryID)
	if !ok {
		return models.Todo{}, completedOp(ErrEntryNotLoaded)
	}

	i, ok := entry.ResolveTodo(s.aliases.resolve(todoRef))
	if !ok {
		return models.Todo{}, completedOp(ErrTodoNotFound)
	}
	return entry.Todos[i], nil
}

// mutate applies fn to the mirror right away and queues call behind the
// entry's earlier mutations.
func (s *synchronizer) mutate(entryID, failMsg string, fn mirror.Mutation, call remoteCall) *Op {
	seq := s.seq.Add(1)
	if !s.mirror.Apply(entryID, seq, fn) {
		return completedOp(ErrEntryNotLoaded)
	}

	op := newOp()
	s.queues.push(s.ctx, entryID, func(ctx context.Context) {
		s.mirror.Dispatch(entryID, seq)
		entry, err := call(ctx)
		if err == nil {
			s.mirror.Confirm(entryID, seq, entry)
			op.finish(nil)
			return
		}

		err = mapAdapterError(err)
		s.logger.Err(err).Str("entry_id", entryID).Uint64("seq", seq).Msg("mutation rejected, reverting")

		s.mirror.Discard(entryID, seq)
		s.board.Error(s.failureMessage(failMsg, err), s.errorTTL)

		if ctx.Err() == nil {
			if rerr := s.Refresh(ctx, s.mirror.View()); rerr != nil {
				s.logger.Err(rerr).Msg("error refetching entries after a failed mutation")
			}
		}

		op.finish(err)
	})

	return op
}

func (s *synchronizer) failureMessage(msg string, err error) string {
	if errors.Is(err, ErrTokenIsExpiredOrInvalid) {
		return app.MsgSessionExpired
	}
	return msg
}

// addedTodoID picks the todo the server created: the one absent from the
// previously confirmed copy whose content matches, else the last one.
func addedTodoID(before, after models.Diary, content string) (string, bool) {
	var known []string
	for _, t := range before.Todos {
		known = append(known, t.ID)
	}

	for i := len(after.Todos) - 1; i >= 0; i-- {
		t := after.Todos[i]
		if t.Content == content && !slices.Contains(known, t.ID) {
			return t.ID, true
		}
	}

	if len(after.Todos) == 0 {
		return "", false
	}
	return after.Todos[len(after.Todos)-1].ID, true
}
