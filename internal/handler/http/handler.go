package http

import (
	"github.com/MKhiriev/work-diary/internal/config"
	"github.com/MKhiriev/work-diary/internal/logger"
	"github.com/MKhiriev/work-diary/internal/service"
)

type Handler struct {
	services *service.Services
	cfg      config.Server

	metrics *httpMetrics
	limiter *clientLimiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		metrics:  newHTTPMetrics(),
		limiter:  newClientLimiter(cfg.RateLimit, cfg.RateBurst),
		logger:   logger,
	}
}
