// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/work-diary/internal/config"
	"github.com/MKhiriev/work-diary/internal/logger"
	"github.com/MKhiriev/work-diary/internal/utils"
	"github.com/MKhiriev/work-diary/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewAPIClient(baseURL, adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs to /api/users/register and
// keeps the returned token.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/users/register", req)
}

// Login implements [ServerAdapter]. It POSTs to /api/users/login and keeps
// the returned token.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/users/login", req)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, body any) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&auth).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = checkResponse(resp); err != nil {
		return models.AuthResponse{}, err
	}
	if auth.Token == "" {
		return models.AuthResponse{}, fmt.Errorf("%w: no token in response", ErrDecodingResponse)
	}

	h.SetToken(auth.Token)
	return auth, nil
}

func (h *httpServerAdapter) SaveDiary(ctx context.Context, content string) (models.Diary, error) {
	return h.diaryRequest(ctx, resty.MethodPost, "/api/diaries", models.SaveDiaryRequest{Content: content})
}

func (h *httpServerAdapter) ListDiaries(ctx context.Context, filter models.DiaryFilter) (models.DiaryPage, error) {
	var page models.DiaryPage

	req := h.authedRequest(ctx).SetResult(&page)
	if filter.UserID != "" {
		req.SetQueryParam("userId", filter.UserID)
	}
	if filter.Date != "" {
		req.SetQueryParam("date", filter.Date)
	}
	if filter.Page > 0 {
		req.SetQueryParam("page", strconv.Itoa(filter.Page))
	}
	if filter.Limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(filter.Limit))
	}

	resp, err := req.Get("/api/diaries")
	if err != nil {
		return models.DiaryPage{}, fmt.Errorf("list diaries request: %w", err)
	}
	if err = checkResponse(resp); err != nil {
		return models.DiaryPage{}, err
	}

	for i := range page.Diaries {
		page.Diaries[i].Normalize()
	}
	return page, nil
}

func (h *httpServerAdapter) GetDiary(ctx context.Context, id string) (models.Diary, error) {
	return h.diaryRequest(ctx, resty.MethodGet, diaryPath(id), nil)
}

func (h *httpServerAdapter) AddComment(ctx context.Context, id, content string) (models.Diary, error) {
	return h.diaryRequest(ctx, resty.MethodPost, diaryPath(id, "comments"), models.CommentRequest{Content: content})
}

func (h *httpServerAdapter) React(ctx context.Context, id string, reaction models.ReactionType) (models.Diary, error) {
	return h.diaryRequest(ctx, resty.MethodPost, diaryPath(id, "reactions"), models.ReactionRequest{Type: reaction})
}

func (h *httpServerAdapter) AddTodo(ctx context.Context, id, content string) (models.Diary, error) {
	return h.diaryRequest(ctx, resty.MethodPost, diaryPath(id, "todos"), models.TodoRequest{Content: content})
}

func (h *httpServerAdapter) SetTodoCompleted(ctx context.Context, id, todoID string, completed bool) (models.Diary, error) {
	return h.diaryRequest(ctx, resty.MethodPut, diaryPath(id, "todos", todoID), models.TodoUpdateRequest{Completed: &completed})
}

func (h *httpServerAdapter) DeleteTodo(ctx context.Context, id, todoID string) (models.Diary, error) {
	return h.diaryRequest(ctx, resty.MethodDelete, diaryPath(id, "todos", todoID), nil)
}

func (h *httpServerAdapter) diaryRequest(ctx context.Context, method, path string, body any) (models.Diary, error) {
	var diary models.Diary

	req := h.authedRequest(ctx).SetResult(&diary)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return models.Diary{}, fmt.Errorf("%s %s request: %w", method, path, err)
	}
	if err = checkResponse(resp); err != nil {
		return models.Diary{}, err
	}

	diary.Normalize()
	return diary, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func diaryPath(id string, rest ...string) string {
	parts := []string{"/api/diaries", url.PathEscape(id)}
	for _, p := range rest {
		parts = append(parts, url.PathEscape(p))
	}
	return strings.Join(parts, "/")
}
