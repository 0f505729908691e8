package service

import (
	"context"

	"github.com/MKhiriev/work-diary/internal/config"
	"github.com/MKhiriev/work-diary/internal/logger"
	"github.com/MKhiriev/work-diary/models"
)

type appInfoService struct {
	version string
	build   models.AppBuildInfo
}

// NewAppInfoService reports cfg.Version, or the version stamped into the
// binary when the configuration leaves it empty. One of them must be set.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version := cfg.Version
	if version == "" && build.Version != "" && build.Version != models.NotAvailable {
		version = build.Version
		logger.Info().Str("version", version).Msg("using build version")
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{version: version, build: build}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}

func (s *appInfoService) GetBuildInfo(context.Context) models.AppBuildInfo {
	return s.build
}
