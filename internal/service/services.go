package service

import (
	"fmt"

	"github.com/MKhiriev/work-diary/internal/config"
	"github.com/MKhiriev/work-diary/internal/logger"
	"github.com/MKhiriev/work-diary/internal/store"
	"github.com/MKhiriev/work-diary/internal/utils"
	"github.com/MKhiriev/work-diary/internal/validators"
	"github.com/MKhiriev/work-diary/models"
)

type Services struct {
	AuthService    AuthService
	DiaryService   DiaryService
	AppInfoService AppInfoService
	HealthService  store.Pinger
}

func NewServices(storages *store.Storages, cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("error creating services: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating services: %w", err)
	}

	validator := validators.NewDiaryValidator()
	ids := utils.NewUUIDGenerator()

	diaries := NewDiaryValidationService(validator).
		Wrap(NewDiaryService(storages.DiaryRepository, storages.UserRepository, ids, loc, logger))

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, validator, ids, cfg, logger),
		DiaryService:   diaries,
		AppInfoService: appInfo,
		HealthService:  storages.Pinger,
	}, nil
}
