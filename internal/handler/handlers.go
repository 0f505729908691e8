// Package handler builds the transport handlers of the diary server from its
// services.
package handler

import (
	"errors"

	"github.com/MKhiriev/work-diary/internal/config"
	"github.com/MKhiriev/work-diary/internal/handler/grpc"
	"github.com/MKhiriev/work-diary/internal/handler/http"
	"github.com/MKhiriev/work-diary/internal/logger"
	"github.com/MKhiriev/work-diary/internal/service"
)

// ErrNoTransport is returned when the configuration enables neither the REST
// API nor the gRPC health service.
var ErrNoTransport = errors.New("no transport is enabled")

// Handlers holds one handler per enabled transport. A nil field means that
// transport is switched off.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	var h Handlers
	if cfg.HTTPAddress != "" {
		h.HTTP = http.NewHandler(services, cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		h.GRPC = grpc.NewHandler(services, logger)
	}

	if h.HTTP == nil && h.GRPC == nil {
		return nil, ErrNoTransport
	}
	logger.Info().Bool("http", h.HTTP != nil).Bool("grpc", h.GRPC != nil).Msg("handlers ready")

	return &h, nil
}
