// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/work-diary/internal/adapter"
	"github.com/MKhiriev/work-diary/internal/app"
	"github.com/MKhiriev/work-diary/internal/config"
	"github.com/MKhiriev/work-diary/internal/logger"
	"github.com/MKhiriev/work-diary/internal/mirror"
	"github.com/MKhiriev/work-diary/internal/store"
	"github.com/MKhiriev/work-diary/models"
)

type pendingWrite struct {
	userID string
	day    string
	text   string
}

type debouncedWriter struct {
	mirror  *mirror.Mirror
	adapter adapter.ServerAdapter
	drafts  store.DraftRepository
	board   StatusBoard
	users   userSource

	interval time.Duration
	savedTTL time.Duration
	errorTTL time.Duration
	loc      *time.Location
	now      func() time.Time

	mu      sync.Mutex
	timer   *time.Timer
	pending *pendingWrite

	// writeMu keeps writes in the order their text was typed.
	writeMu sync.Mutex
	saving  atomic.Bool

	ctx    context.Context
	cancel context.CancelFunc

	logger *logger.Logger
}

func NewDebouncedWriter(
	m *mirror.Mirror,
	serverAdapter adapter.ServerAdapter,
	drafts store.DraftRepository,
	board StatusBoard,
	users userSource,
	cfg config.ClientWorkers,
	loc *time.Location,
	logger *logger.Logger,
) DebouncedWriter {
	ctx, cancel := context.WithCancel(context.Background())

	return &debouncedWriter{
		mirror:   m,
		adapter:  serverAdapter,
		drafts:   drafts,
		board:    board,
		users:    users,
		interval: cfg.DebounceInterval,
		savedTTL: cfg.SavedTTL,
		errorTTL: cfg.ErrorTTL,
		loc:      loc,
		now:      time.Now,
		ctx:      ctx,
		cancel:   cancel,
		logger:   logger,
	}
}

func (w *debouncedWriter) Type(text string) error {
	user, ok := w.users.CurrentUser()
	if !ok {
		return ErrNotLoggedIn
	}
	day := models.DayKey(w.now(), w.loc)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	if strings.TrimSpace(text) == "" {
		// blank text is never sent, so the entry shows the server body again
		if shown, ok := w.mirror.Overlay(user.UserID, day); ok {
			w.mirror.ClearOverlay(user.UserID, day, shown)
		}
		w.pending = nil
		return nil
	}

	w.mirror.SetOverlay(user.UserID, day, text)

	w.pending = &pendingWrite{userID: user.UserID, day: day, text: text}
	w.timer = time.AfterFunc(w.interval, w.fire)

	return nil
}

func (w *debouncedWriter) Saving() bool {
	return w.saving.Load()
}

func (w *debouncedWriter) Flush(ctx context.Context) error {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.mu.Unlock()

	return w.flushPending(ctx)
}

func (w *debouncedWriter) Close(ctx context.Context) error {
	defer w.cancel()
	return w.Flush(ctx)
}

func (w *debouncedWriter) fire() {
	if err := w.flushPending(w.ctx); err != nil {
		w.logger.Err(err).Msg("debounced write failed")
	}
}

// flushPending sends the latest pending text, if any.
func (w *debouncedWriter) flushPending(ctx context.Context) error {
	w.writeMu.Lock()
	defer w.writeMu.Unlock()

	w.mu.Lock()
	pending := w.pending
	w.pending = nil
	w.mu.Unlock()

	if pending == nil {
		return nil
	}
	return w.write(ctx, *pending)
}

func (w *debouncedWriter) write(ctx context.Context, p pendingWrite) error {
	// the adapter carries the token of whoever is logged in now
	if user, ok := w.users.CurrentUser(); !ok || user.UserID != p.userID {
		w.keepDraft(ctx, p)
		return fmt.Errorf("%w: %w", ErrSaveFailed, ErrNotLoggedIn)
	}

	w.saving.Store(true)
	defer w.saving.Store(false)

	entry, err := w.adapter.SaveDiary(ctx, p.text)
	if err != nil {
		err = mapAdapterError(err)
		w.board.Error(app.MsgSaveFailed, w.errorTTL)
		w.keepDraft(ctx, p)

		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	w.mirror.Upsert(entry)
	w.mirror.ClearOverlay(p.userID, p.day, p.text)
	w.board.Info(app.MsgSaved, w.savedTTL)

	if derr := w.drafts.DeleteDraft(ctx, p.userID, p.day); derr != nil {
		w.logger.Err(derr).Str("day", p.day).Msg("error deleting saved draft")
	}

	return nil
}

// keepDraft stores p for replay on the next start of its author.
func (w *debouncedWriter) keepDraft(ctx context.Context, p pendingWrite) {
	draft := models.Draft{UserID: p.userID, Day: p.day, Content: p.text, UpdatedAt: w.now()}
	if err := w.drafts.SaveDraft(context.WithoutCancel(ctx), draft); err != nil {
		w.logger.Err(err).Str("day", p.day).Msg("error keeping unsaved text as a draft")
	}
}
