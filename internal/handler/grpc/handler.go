package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/work-diary/internal/logger"
	"github.com/MKhiriev/work-diary/internal/service"
	"github.com/MKhiriev/work-diary/internal/store"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// DiaryServiceName is the service name reported by the health service next
// to the overall ("") status.
const DiaryServiceName = "workdiary.Diary"

// defaultProbeInterval is how often the document store is pinged.
const defaultProbeInterval = 10 * time.Second

// Handler is the root gRPC transport handler.
//
// It serves the standard grpc.health.v1 service and keeps its status in step
// with the document store: SERVING while pings succeed, NOT_SERVING otherwise.
type Handler struct {
	health *health.Server
	pinger store.Pinger

	probeInterval time.Duration

	logger *logger.Logger
}

// NewHandler constructs a [Handler] probing services.HealthService. The
// initial status is NOT_SERVING until the first probe succeeds.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		health:        health.NewServer(),
		pinger:        services.HealthService,
		probeInterval: defaultProbeInterval,
		logger:        logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Watch probes the store immediately and then every probe interval until ctx
// is done.
func (h *Handler) Watch(ctx context.Context) {
	ticker := time.NewTicker(h.probeInterval)
	defer ticker.Stop()

	for {
		h.Probe(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Probe pings the store once and publishes the resulting status.
func (h *Handler) Probe(ctx context.Context) {
	if h.pinger == nil {
		h.setStatus(healthpb.HealthCheckResponse_SERVING)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, h.probeInterval)
	defer cancel()

	if err := h.pinger.Ping(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("document store is not answering")
		h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
		return
	}
	h.setStatus(healthpb.HealthCheckResponse_SERVING)
}

// Shutdown switches every status to NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(DiaryServiceName, status)
}
