package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/work-diary/internal/config"
	"github.com/MKhiriev/work-diary/internal/service"
	"github.com/MKhiriev/work-diary/internal/store"
	"github.com/MKhiriev/work-diary/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		registerFn func(ctx context.Context, req models.RegisterRequest) (models.User, error)
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "created",
			body:       `{"name":"Ann","email":"ann@example.com","password":"secret"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "broken json",
			body:       `{"name":`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "invalid data provided",
		},
		{
			name: "validation failure",
			body: `{"name":"A","email":"ann@example.com","password":"secret"}`,
			registerFn: func(context.Context, models.RegisterRequest) (models.User, error) {
				return models.User{}, errors.Join(service.ErrInvalidDataProvided, errors.New("name must be at least 2 characters"))
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate email",
			body: `{"name":"Ann","email":"ann@example.com","password":"secret"}`,
			registerFn: func(context.Context, models.RegisterRequest) (models.User, error) {
				return models.User{}, store.ErrEmailAlreadyExists
			},
			wantStatus: http.StatusConflict,
			wantMsg:    "User already exists",
		},
		{
			name: "store failure",
			body: `{"name":"Ann","email":"ann@example.com","password":"secret"}`,
			registerFn: func(context.Context, models.RegisterRequest) (models.User, error) {
				return models.User{}, errors.New("disk full")
			},
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestHandler(&fakeAuthService{registerFn: tt.registerFn}, nil, config.Server{}).Init()

			rec := serve(t, router, http.MethodPost, "/api/users/register", tt.body, "")
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			if tt.wantStatus == http.StatusCreated {
				var resp models.AuthResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, "token-u1", resp.Token)
				assert.Equal(t, "Ann", resp.User.Name)
				assert.Equal(t, "Bearer token-u1", rec.Header().Get("Authorization"))
				return
			}

			var resp models.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, resp.Message)
			} else {
				assert.NotEmpty(t, resp.Message)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	t.Run("success never leaks the password", func(t *testing.T) {
		auth := &fakeAuthService{loginFn: func(_ context.Context, req models.LoginRequest) (models.User, error) {
			return models.User{UserID: "u1", Email: req.Email, Password: "$2a$hash"}, nil
		}}
		router := newTestHandler(auth, nil, config.Server{}).Init()

		rec := serve(t, router, http.MethodPost, "/api/users/login", `{"email":"ann@example.com","password":"secret"}`, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "hash")
		assert.Contains(t, rec.Body.String(), `"token":"token-u1"`)
	})

	t.Run("wrong password", func(t *testing.T) {
		auth := &fakeAuthService{loginFn: func(context.Context, models.LoginRequest) (models.User, error) {
			return models.User{}, service.ErrWrongPassword
		}}
		router := newTestHandler(auth, nil, config.Server{}).Init()

		rec := serve(t, router, http.MethodPost, "/api/users/login", `{"email":"ann@example.com","password":"nope"}`, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"message":"Invalid credentials"}`, rec.Body.String())
	})

	t.Run("token creation failure", func(t *testing.T) {
		router := newTestHandler(&fakeAuthService{tokenErr: service.ErrTokenCreationFailed}, nil, config.Server{}).Init()

		rec := serve(t, router, http.MethodPost, "/api/users/login", `{"email":"ann@example.com","password":"secret"}`, "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
