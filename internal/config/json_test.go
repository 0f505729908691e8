package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestParseJSON_AllSections(t *testing.T) {
	p := writeConfigFile(t, `{
		"app": {"token_sign_key": "k", "token_issuer": "diary", "token_duration": "1h", "time_zone": "Europe/Riga"},
		"server": {
			"http_address": ":8080", "grpc_address": ":9090", "request_timeout": "30s",
			"allowed_origins": ["http://localhost:3000"], "rate_limit": 4, "rate_burst": 8
		},
		"storage": {
			"db": {"dsn": "postgres://u:p@localhost/diary"},
			"couch": {"url": "http://localhost:5984/", "name": "diary"},
			"local": {"dsn": "client.db"}
		},
		"adapter": {"http_address": "http://localhost:8080", "request_timeout": "5s"},
		"workers": {"debounce_interval": "1s", "saved_ttl": "2s", "error_ttl": 5000000000}
	}`)

	cfg, err := parseJSON(p)
	require.NoError(t, err)

	assert.Equal(t, App{TokenSignKey: "k", TokenIssuer: "diary", TokenDuration: time.Hour, TimeZone: "Europe/Riga"}, cfg.App)
	assert.Equal(t, Server{
		HTTPAddress:    ":8080",
		GRPCAddress:    ":9090",
		RequestTimeout: 30 * time.Second,
		AllowedOrigins: []string{"http://localhost:3000"},
		RateLimit:      4,
		RateBurst:      8,
	}, cfg.Server)
	assert.Equal(t, Storage{
		DB:    DB{DSN: "postgres://u:p@localhost/diary"},
		Couch: Couch{URL: "http://localhost:5984/", Name: "diary"},
		Local: Local{DSN: "client.db"},
	}, cfg.Storage)
	assert.Equal(t, Adapter{HTTPAddress: "http://localhost:8080", RequestTimeout: 5 * time.Second}, cfg.Adapter)
	assert.Equal(t, Workers{DebounceInterval: time.Second, SavedTTL: 2 * time.Second, ErrorTTL: 5 * time.Second}, cfg.Workers)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_PartialFileLeavesZeroValues(t *testing.T) {
	cfg, err := parseJSON(writeConfigFile(t, `{"adapter": {"http_address": "diary:8080"}}`))

	require.NoError(t, err)
	assert.Equal(t, "diary:8080", cfg.Adapter.HTTPAddress)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
	assert.Zero(t, cfg.App)
}

func TestParseJSON_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr string
	}{
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing.json") },
			wantErr: "read config file",
		},
		{
			name:    "truncated",
			path:    func(t *testing.T) string { return writeConfigFile(t, `{"app": `) },
			wantErr: "decode config file",
		},
		{
			name:    "unknown key",
			path:    func(t *testing.T) string { return writeConfigFile(t, `{"server": {"adress": ":8080"}}`) },
			wantErr: "decode config file",
		},
		{
			name:    "bad duration",
			path:    func(t *testing.T) string { return writeConfigFile(t, `{"workers": {"saved_ttl": "soon"}}`) },
			wantErr: "decode config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseJSON(tt.path(t))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// ─────────────────────────────────────────────
// Duration
// ─────────────────────────────────────────────

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{in: `"1m30s"`, want: 90 * time.Second},
		{in: `1000`, want: time.Microsecond},
		{in: `null`},
		{in: `"soon"`, wantErr: true},
		{in: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.in))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.std())
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
