package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/work-diary/internal/config"
	"github.com/MKhiriev/work-diary/internal/handler"
	"github.com/MKhiriev/work-diary/internal/logger"
	"github.com/MKhiriev/work-diary/internal/service"
	"github.com/MKhiriev/work-diary/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type versionOnly struct{}

func (versionOnly) GetAppVersion(context.Context) string { return "9.9.9" }

func (versionOnly) GetBuildInfo(context.Context) models.AppBuildInfo { return models.AppBuildInfo{} }

func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestNewServer_NothingToRun(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoTransports)
}

func TestServer_StopsWhenTransportFails(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	cfg := config.Server{HTTPAddress: freeAddress(t), GRPCAddress: busy.Addr().String()}
	handlers, err := handler.NewHandlers(&service.Services{AppInfoService: versionOnly{}}, cfg, logger.Nop())
	require.NoError(t, err)
	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- srv.(*server).run(context.Background()) }()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.Contains(t, err.Error(), "grpc")
	case <-time.After(15 * time.Second):
		t.Fatal("server kept running after a transport failed")
	}
}

func TestServer_RunsUntilContextIsDone(t *testing.T) {
	cfg := config.Server{HTTPAddress: freeAddress(t), GRPCAddress: freeAddress(t)}
	services := &service.Services{AppInfoService: versionOnly{}}

	handlers, err := handler.NewHandlers(services, cfg, logger.Nop())
	require.NoError(t, err)
	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.(*server).run(ctx) }()

	url := fmt.Sprintf("http://%s/api/version", cfg.HTTPAddress)
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("server did not shut down")
	}

	_, err = http.Get(url)
	assert.Error(t, err)
}
