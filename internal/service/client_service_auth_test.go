package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/work-diary/internal/adapter"
	"github.com/MKhiriev/work-diary/internal/app"
	"github.com/MKhiriev/work-diary/internal/logger"
	"github.com/MKhiriev/work-diary/internal/mock"
	"github.com/MKhiriev/work-diary/internal/store"
	"github.com/MKhiriev/work-diary/models"
)

var clientNow = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

func newTestClientAuth(t *testing.T) (*clientAuthService, *mock.MockServerAdapter, *mock.MockSessionRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockSessions := mock.NewMockSessionRepository(ctrl)

	svc := NewClientAuthService(mockSessions, mockAdapter, logger.Nop()).(*clientAuthService)
	svc.now = func() time.Time { return clientNow }

	return svc, mockAdapter, mockSessions
}

// ── Register / Login ────────────────────────────────────────────────────────

func TestClientAuthService_Register_Success(t *testing.T) {
	svc, mockAdapter, mockSessions := newTestClientAuth(t)
	ctx := context.Background()
	req := models.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "secret1"}
	user := models.User{UserID: "u1", Name: "Ann", Email: "ann@example.com", Password: "should-not-leak"}

	gomock.InOrder(
		mockAdapter.EXPECT().Register(ctx, req).Return(models.AuthResponse{Token: "tok", User: user}, nil),
		mockAdapter.EXPECT().SetToken("tok"),
		mockSessions.EXPECT().SaveSession(ctx, models.Session{Token: "tok", User: user.Public(), SavedAt: clientNow}).Return(nil),
	)

	got, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.Empty(t, got.Password)

	current, ok := svc.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "u1", current.UserID)
}

func TestClientAuthService_Register_Conflict(t *testing.T) {
	svc, mockAdapter, _ := newTestClientAuth(t)

	mockAdapter.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(models.AuthResponse{}, adapter.NewStatusError(http.StatusConflict, app.MsgUserAlreadyExists))

	_, err := svc.Register(context.Background(), models.RegisterRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRegisterOnServer)
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)

	_, ok := svc.CurrentUser()
	assert.False(t, ok)
}

func TestClientAuthService_Login_WrongPassword(t *testing.T) {
	svc, mockAdapter, _ := newTestClientAuth(t)

	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.AuthResponse{}, adapter.NewStatusError(http.StatusUnauthorized, app.MsgInvalidCredentials))

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "ann@example.com", Password: "nope"})
	assert.ErrorIs(t, err, ErrLoginOnServer)
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestClientAuthService_Login_SessionSaveFailureIsNotFatal(t *testing.T) {
	svc, mockAdapter, mockSessions := newTestClientAuth(t)
	user := models.User{UserID: "u1"}

	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.AuthResponse{Token: "tok", User: user}, nil)
	mockAdapter.EXPECT().SetToken("tok")
	mockSessions.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	got, err := svc.Login(context.Background(), models.LoginRequest{})
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
}

// ── RestoreSession / Logout ─────────────────────────────────────────────────

func TestClientAuthService_RestoreSession(t *testing.T) {
	tests := []struct {
		name    string
		session models.Session
		loadErr error
		wantErr error
	}{
		{
			name:    "saved session",
			session: models.Session{Token: "tok", User: models.User{UserID: "u1"}},
		},
		{
			name:    "nobody logged in",
			loadErr: store.ErrLocalSessionNotFound,
			wantErr: ErrNotLoggedIn,
		},
		{
			name:    "store failure",
			loadErr: store.ErrExecutingQuery,
			wantErr: store.ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockAdapter, mockSessions := newTestClientAuth(t)
			mockSessions.EXPECT().LoadSession(gomock.Any()).Return(tt.session, tt.loadErr)
			if tt.wantErr == nil {
				mockAdapter.EXPECT().SetToken(tt.session.Token)
			}

			user, err := svc.RestoreSession(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.session.User.UserID, user.UserID)
			_, ok := svc.CurrentUser()
			assert.True(t, ok)
		})
	}
}

func TestClientAuthService_Logout(t *testing.T) {
	svc, mockAdapter, mockSessions := newTestClientAuth(t)
	svc.setUser(models.User{UserID: "u1"}, true)

	mockSessions.EXPECT().DeleteSession(gomock.Any()).Return(nil)
	mockAdapter.EXPECT().SetToken("")

	require.NoError(t, svc.Logout(context.Background()))
	_, ok := svc.CurrentUser()
	assert.False(t, ok)
}
