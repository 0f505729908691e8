package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/work-diary/internal/adapter"
	"github.com/MKhiriev/work-diary/internal/config"
	"github.com/MKhiriev/work-diary/internal/logger"
	"github.com/MKhiriev/work-diary/internal/service"
	"github.com/MKhiriev/work-diary/internal/store"
	"github.com/MKhiriev/work-diary/internal/workers"
)

// Options are the command-line overrides of the client config.
type Options struct {
	ConfigPath    string
	ServerAddress string
	DSN           string
}

type App struct {
	services *service.ClientServices
	workers  *workers.Workers
	storage  io.Closer
	loc      *time.Location

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ws *workers.Workers, storage io.Closer, loc *time.Location, logger *logger.Logger) *App {
	if loc == nil {
		loc = time.Local
	}
	return &App{
		services: services,
		workers:  ws,
		storage:  storage,
		loc:      loc,
		logger:   logger,
	}
}

// Build assembles the production client: config, HTTP adapter, local SQLite
// store, services and workers.
func Build(ctx context.Context, opts Options, logger *logger.Logger) (Client, error) {
	cfg, err := config.GetClientConfig(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}
	if opts.ServerAddress != "" {
		cfg.Adapter.HTTPAddress = opts.ServerAddress
	}
	if opts.DSN != "" {
		cfg.Storage.DSN = opts.DSN
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating server adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating local storage: %w", err)
	}

	services := service.NewClientServices(storages, serverAdapter, cfg, logger)
	ws := workers.NewWorkers(workers.NewDraftReplayWorker(services.DraftService, logger))

	return NewApp(services, ws, storages, cfg.Location, logger), nil
}

func (a *App) Start(ctx context.Context) error {
	user, err := a.services.AuthService.RestoreSession(ctx)
	if errors.Is(err, service.ErrNotLoggedIn) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error restoring session: %w", err)
	}

	a.logger.Debug().Str("user_id", user.UserID).Msg("session restored")

	if a.workers != nil {
		if err = a.workers.Run(ctx); err != nil {
			// drafts stay in the local store until the next start
			a.logger.Err(err).Msg("start-up workers failed")
		}
	}

	return nil
}

func (a *App) Close(ctx context.Context) error {
	errs := []error{
		a.services.Writer.Close(ctx),
		a.services.Synchronizer.Close(ctx),
	}
	if a.storage != nil {
		errs = append(errs, a.storage.Close())
	}
	return errors.Join(errs...)
}

func (a *App) Services() *service.ClientServices {
	return a.services
}

func (a *App) Location() *time.Location {
	return a.loc
}
