package service

import (
	"github.com/MKhiriev/work-diary/internal/adapter"
	"github.com/MKhiriev/work-diary/internal/config"
	"github.com/MKhiriev/work-diary/internal/logger"
	"github.com/MKhiriev/work-diary/internal/mirror"
	"github.com/MKhiriev/work-diary/internal/store"
	"github.com/MKhiriev/work-diary/internal/utils"
)

type ClientServices struct {
	Mirror       *mirror.Mirror
	StatusBoard  StatusBoard
	AuthService  ClientAuthService
	Synchronizer Synchronizer
	Writer       DebouncedWriter
	DraftService DraftService
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg *config.ClientConfig, logger *logger.Logger) *ClientServices {
	m := mirror.New(cfg.Location)
	board := NewStatusBoard(logger)
	authSvc := NewClientAuthService(localStore.SessionRepository, serverAdapter, logger)

	return &ClientServices{
		Mirror:      m,
		StatusBoard: board,
		AuthService: authSvc,
		Synchronizer: NewSynchronizer(m, serverAdapter, board, authSvc, utils.NewUUIDGenerator(),
			cfg.Workers.ErrorTTL, logger),
		Writer: NewDebouncedWriter(m, serverAdapter, localStore.DraftRepository, board, authSvc,
			cfg.Workers, cfg.Location, logger),
		DraftService: NewDraftService(m, serverAdapter, localStore.DraftRepository, board, authSvc,
			cfg.Workers.SavedTTL, cfg.Location, logger),
	}
}
