package utils

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyServer answers 503 for the first failures calls and 200 afterwards.
func flakyServer(t *testing.T, failures int32) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= failures {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestNewAPIClient_Configured(t *testing.T) {
	client := NewAPIClient("http://localhost:8080", 3*time.Second)

	assert.Equal(t, "http://localhost:8080", client.BaseURL)
	assert.Equal(t, 3*time.Second, client.GetClient().Timeout)
	assert.Equal(t, "application/json", client.Header.Get("Content-Type"))
	assert.Equal(t, "application/json", client.Header.Get("Accept"))
}

func TestNewAPIClient_RetriesUnavailableReads(t *testing.T) {
	srv, calls := flakyServer(t, 2)
	client := NewAPIClient(srv.URL, time.Second).SetRetryWaitTime(time.Millisecond)

	resp, err := client.R().Get("/api/diaries")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, int32(3), calls.Load())
}

func TestNewAPIClient_DoesNotRetryWrites(t *testing.T) {
	srv, calls := flakyServer(t, 1)
	client := NewAPIClient(srv.URL, time.Second).SetRetryWaitTime(time.Millisecond)

	resp, err := client.R().SetBody(map[string]string{"content": "hi"}).Post("/api/diaries/d1/comments")

	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode())
	assert.Equal(t, int32(1), calls.Load())
}
