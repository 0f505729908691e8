// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's view of the work-diary server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the REST transport. The package ships an HTTP implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Non-2xx answers come back as [*StatusError]. Its status class matches
// [ErrNotFound], [ErrUnauthorized] and the other sentinels with errors.Is.
package adapter

import (
	"context"

	"github.com/MKhiriev/work-diary/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the Remote Store as seen by the client. Every mutation
// returns the full updated entry as stored by the server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account and stores the returned token.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Login authenticates and stores the returned token.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// SaveDiary upserts the caller's entry for the server's current day.
	SaveDiary(ctx context.Context, content string) (models.Diary, error)

	// ListDiaries fetches one page of entries, newest first.
	ListDiaries(ctx context.Context, filter models.DiaryFilter) (models.DiaryPage, error)

	GetDiary(ctx context.Context, id string) (models.Diary, error)
	AddComment(ctx context.Context, id, content string) (models.Diary, error)
	React(ctx context.Context, id string, reaction models.ReactionType) (models.Diary, error)
	AddTodo(ctx context.Context, id, content string) (models.Diary, error)

	// SetTodoCompleted sets the completion flag of the todo addressed by
	// todoID (a todo id or a positional index).
	SetTodoCompleted(ctx context.Context, id, todoID string, completed bool) (models.Diary, error)
	DeleteTodo(ctx context.Context, id, todoID string) (models.Diary, error)
}
