package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/work-diary/internal/config"
	"github.com/MKhiriev/work-diary/internal/logger"
	"github.com/MKhiriev/work-diary/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppInfoService_Version(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.App
		build   models.AppBuildInfo
		want    string
		wantErr error
	}{
		{name: "configured", cfg: config.App{Version: "1.2.3-beta+build.42"}, build: models.NewAppBuildInfo("v9", "", ""), want: "1.2.3-beta+build.42"},
		{name: "falls back to build", build: models.NewAppBuildInfo("v1.0.0", "", "abc123"), want: "v1.0.0"},
		{name: "build without version", build: models.NewAppBuildInfo("", "", ""), wantErr: ErrVersionIsNotSpecified},
		{name: "nothing at all", wantErr: ErrVersionIsNotSpecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(tt.cfg, tt.build, logger.Nop())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, svc)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, svc.GetAppVersion(context.Background()))
		})
	}
}

func TestAppInfoService_BuildInfo(t *testing.T) {
	build := models.NewAppBuildInfo("v1.0.0", "", "abc123")
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, build, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := svc.GetBuildInfo(ctx)
	assert.Equal(t, "abc123", got.Commit)
	assert.Equal(t, models.NotAvailable, got.Date)
	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}
