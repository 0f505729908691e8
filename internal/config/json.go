package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"
)

// jsonConfig is the layout of the optional JSON config file. Durations are
// written as Go duration strings ("1h", "30s") or as nanoseconds.
type jsonConfig struct {
	App     jsonApp     `json:"app"`
	Storage jsonStorage `json:"storage"`
	Server  jsonServer  `json:"server"`
	Adapter jsonAdapter `json:"adapter"`
	Workers jsonWorkers `json:"workers"`
}

type jsonApp struct {
	TokenSignKey  string   `json:"token_sign_key"`
	TokenIssuer   string   `json:"token_issuer"`
	TokenDuration Duration `json:"token_duration"`
	Version       string   `json:"version"`
	TimeZone      string   `json:"time_zone"`
}

type jsonStorage struct {
	DB struct {
		DSN string `json:"dsn"`
	} `json:"db"`
	Couch struct {
		URL  string `json:"url"`
		Name string `json:"name"`
	} `json:"couch"`
	Local struct {
		DSN string `json:"dsn"`
	} `json:"local"`
}

type jsonServer struct {
	HTTPAddress    string   `json:"http_address"`
	GRPCAddress    string   `json:"grpc_address"`
	RequestTimeout Duration `json:"request_timeout"`
	AllowedOrigins []string `json:"allowed_origins"`
	RateLimit      float64  `json:"rate_limit"`
	RateBurst      int      `json:"rate_burst"`
}

type jsonAdapter struct {
	HTTPAddress    string   `json:"http_address"`
	RequestTimeout Duration `json:"request_timeout"`
}

type jsonWorkers struct {
	DebounceInterval Duration `json:"debounce_interval"`
	SavedTTL         Duration `json:"saved_ttl"`
	ErrorTTL         Duration `json:"error_ttl"`
}

func (j jsonConfig) structured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  j.App.TokenSignKey,
			TokenIssuer:   j.App.TokenIssuer,
			TokenDuration: j.App.TokenDuration.std(),
			Version:       j.App.Version,
			TimeZone:      j.App.TimeZone,
		},
		Storage: Storage{
			DB:    DB(j.Storage.DB),
			Couch: Couch(j.Storage.Couch),
			Local: Local(j.Storage.Local),
		},
		Server: Server{
			HTTPAddress:    j.Server.HTTPAddress,
			GRPCAddress:    j.Server.GRPCAddress,
			RequestTimeout: j.Server.RequestTimeout.std(),
			AllowedOrigins: j.Server.AllowedOrigins,
			RateLimit:      j.Server.RateLimit,
			RateBurst:      j.Server.RateBurst,
		},
		Adapter: Adapter{
			HTTPAddress:    j.Adapter.HTTPAddress,
			RequestTimeout: j.Adapter.RequestTimeout.std(),
		},
		Workers: Workers{
			DebounceInterval: j.Workers.DebounceInterval.std(),
			SavedTTL:         j.Workers.SavedTTL.std(),
			ErrorTTL:         j.Workers.ErrorTTL.std(),
		},
	}
}

// parseJSON reads the config file at path. Unknown keys are rejected so
// that a misspelt setting does not silently fall back to its default.
func parseJSON(path string) (*StructuredConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var file jsonConfig
	if err = dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	return file.structured(), nil
}

// Duration is a [time.Duration] that decodes from "1m30s" style strings
// as well as from plain nanosecond numbers.
type Duration time.Duration

func (d Duration) std() time.Duration { return time.Duration(d) }

func (d *Duration) UnmarshalJSON(b []byte) error {
	if s, err := strconv.Unquote(string(b)); err == nil {
		v, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		*d = Duration(v)
		return nil
	}

	var ns int64
	if err := json.Unmarshal(b, &ns); err != nil {
		return fmt.Errorf("duration must be a string or nanoseconds: %w", err)
	}
	*d = Duration(ns)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.std().String())
}
