package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the server base URL.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage holds the client's local database settings.
type ClientStorage struct {
	// DSN is the SQLite connection string.
	DSN string
}

// ClientWorkers contains client timing settings.
type ClientWorkers struct {
	// DebounceInterval is the idle window of the debounced body writer.
	DebounceInterval time.Duration
	// SavedTTL is how long the "Saved" caption stays visible.
	SavedTTL time.Duration
	// ErrorTTL is how long error captions stay visible.
	ErrorTTL time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the server address and timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains debounce and status caption timings.
	Workers ClientWorkers
	// Location is the time zone whose calendar day defines "today".
	Location *time.Location
	// JSONFilePath is the JSON file the config was read from, if any.
	JSONFilePath string
}

// GetClientConfig builds and validates a client-specific config view.
//
// Command-line flags are owned by the client CLI, so only defaults, the
// .env file, environment variables and the optional JSON file (jsonPath
// overrides the CONFIG variable) are consulted.
func GetClientConfig(jsonPath string) (*ClientConfig, error) {
	b := newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv()
	if jsonPath != "" {
		b.configs = append(b.configs, &StructuredConfig{JSONFilePath: jsonPath})
	}

	cfg, err := b.withJSON().build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	loc, err := cfg.App.Location()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{DSN: cfg.Storage.Local.DSN},
		Workers: ClientWorkers{
			DebounceInterval: cfg.Workers.DebounceInterval,
			SavedTTL:         cfg.Workers.SavedTTL,
			ErrorTTL:         cfg.Workers.ErrorTTL,
		},
		Location:     loc,
		JSONFilePath: cfg.JSONFilePath,
	}

	return clientCfg, clientCfg.validate()
}
