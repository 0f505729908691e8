package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/work-diary/internal/config"
	"github.com/MKhiriev/work-diary/internal/logger"
	"github.com/MKhiriev/work-diary/internal/service"
	"github.com/MKhiriev/work-diary/internal/utils"
	"github.com/MKhiriev/work-diary/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// auth
// ─────────────────────────────────────────────

func TestAuth_Middleware(t *testing.T) {
	h := newTestHandler(nil, nil, config.Server{})

	var seenUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserID, _ = utils.UserIDFrom(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantMsg    string
		wantUserID string
	}{
		{"valid token", "Bearer token-u1", http.StatusTeapot, "", "u1"},
		{"lower-case scheme", "bearer token-u2", http.StatusTeapot, "", "u2"},
		{"missing header", "", http.StatusUnauthorized, "No authentication token, authorization denied", ""},
		{"no token", "Bearer", http.StatusUnauthorized, "Token is not valid", ""},
		{"wrong scheme", "Basic dXNlcjpwYXNz", http.StatusUnauthorized, "Token is not valid", ""},
		{"rejected token", "Bearer forged", http.StatusUnauthorized, "Token is not valid", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seenUserID = ""
			req := httptest.NewRequest(http.MethodGet, "/api/diaries", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			h.auth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantUserID, seenUserID)
			if tt.wantMsg != "" {
				var resp models.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantMsg, resp.Message)
			}
		})
	}
}

// ─────────────────────────────────────────────
// trace id + logging
// ─────────────────────────────────────────────

func TestWithTraceIDAndLogging(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&service.Services{}, config.Server{}, logger.New(&buf, "test"))

	handler := h.withTraceID(h.withLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("hello"))
	})))

	t.Run("propagates the incoming trace id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(traceIDHeader, "trace-42")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "trace-42", rec.Header().Get(traceIDHeader))

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 2)
		for _, line := range lines {
			assert.Contains(t, line, `"trace_id":"trace-42"`)
		}

		var access map[string]any
		require.NoError(t, json.Unmarshal([]byte(lines[1]), &access))
		assert.Equal(t, float64(http.StatusAccepted), access["status"])
		assert.Equal(t, float64(5), access["size"])
		assert.Equal(t, http.MethodGet, access["method"])
	})

	t.Run("generates one when absent", func(t *testing.T) {
		seen := map[string]bool{}
		for range 3 {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
			id := rec.Header().Get(traceIDHeader)
			require.NotEmpty(t, id)
			seen[id] = true
		}
		assert.Len(t, seen, 3)
	})
}

func TestValidTraceID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{id: "trace-42", want: true},
		{id: "", want: false},
		{id: "has space", want: false},
		{id: "line\nbreak", want: false},
		{id: "ünïcode", want: false},
		{id: strings.Repeat("a", maxTraceIDBytes), want: true},
		{id: strings.Repeat("a", maxTraceIDBytes+1), want: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, validTraceID(tt.id), "%q", tt.id)
	}
}

// ─────────────────────────────────────────────
// statusRecorder
// ─────────────────────────────────────────────

func TestStatusRecorder(t *testing.T) {
	rec := httptest.NewRecorder()
	sr := &statusRecorder{ResponseWriter: rec}

	assert.Equal(t, http.StatusOK, sr.Status(), "implicit 200 before anything is written")

	sr.WriteHeader(http.StatusNotFound)
	sr.WriteHeader(http.StatusInternalServerError)
	_, _ = sr.Write([]byte("abc"))
	_, _ = sr.Write([]byte("de"))

	assert.Equal(t, http.StatusNotFound, sr.Status())
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, 5, sr.size)
	assert.Same(t, rec, sr.Unwrap())
}

// ─────────────────────────────────────────────
// gzip
// ─────────────────────────────────────────────

func gzipped(t *testing.T, s string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return &buf
}

func TestWithGZip_InflatesRequestBody(t *testing.T) {
	var got string
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		got = string(body)
		assert.Empty(t, r.Header.Get("Content-Encoding"))
	}))

	req := httptest.NewRequest(http.MethodPost, "/", gzipped(t, `{"content":"zipped"}`))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"content":"zipped"}`, got)
}

func TestWithGZip_RejectsCorruptBody(t *testing.T) {
	handler := withGZip(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("next must not be called")
	}))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWithGZip_CompressesJSONResponses(t *testing.T) {
	payload := strings.Repeat(`{"content":"repeat"}`, 100)
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, payload, string(body))
}

type closeCounter struct {
	io.Reader
	closed int
}

func (c *closeCounter) Close() error {
	c.closed++
	return nil
}

func TestGzipBody_CloseOnce(t *testing.T) {
	src := &closeCounter{Reader: gzipped(t, "x")}
	body, err := newGzipBody(src)
	require.NoError(t, err)

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))

	require.NoError(t, body.Close())
	require.NoError(t, body.Close())
	assert.Equal(t, 1, src.closed)

	_, err = body.Read(make([]byte, 1))
	assert.ErrorIs(t, err, io.ErrClosedPipe)
}

// ─────────────────────────────────────────────
// CORS
// ─────────────────────────────────────────────

func TestWithCORS(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	t.Run("listed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://diary.example.com")
		rec := httptest.NewRecorder()
		withCORS([]string{"https://diary.example.com"})(ok).ServeHTTP(rec, req)

		assert.Equal(t, "https://diary.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unlisted origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		rec := httptest.NewRecorder()
		withCORS([]string{"https://diary.example.com"})(ok).ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight with wildcard", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/diaries", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()
		withCORS([]string{"*"})(ok).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
	})
}

// ─────────────────────────────────────────────
// rate limit
// ─────────────────────────────────────────────

func TestClientLimiter(t *testing.T) {
	assert.Nil(t, newClientLimiter(0, 10))

	l := newClientLimiter(1, 2)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	assert.True(t, l.allow("a"))
	assert.True(t, l.allow("a"))
	assert.False(t, l.allow("a"), "burst exhausted")
	assert.True(t, l.allow("b"), "buckets are per client")

	now = now.Add(time.Second)
	assert.True(t, l.allow("a"), "one token refilled")
}

func TestWithRateLimit_Returns429(t *testing.T) {
	router := newTestHandler(nil, nil, config.Server{RateLimit: 1, RateBurst: 1}).Init()

	first := serve(t, router, http.MethodGet, "/api/version", "", "")
	second := serve(t, router, http.MethodGet, "/api/version", "", "")

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.JSONEq(t, `{"message":"too many requests"}`, second.Body.String())
}

func TestClientLimiter_ConcurrentUse(t *testing.T) {
	l := newClientLimiter(1000, 1000)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.allow(string(rune('a' + i%5)))
		}()
	}
	wg.Wait()

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.Len(t, l.clients, 5)
}

// ─────────────────────────────────────────────
// metrics
// ─────────────────────────────────────────────

func TestMetrics_CountsByRoutePattern(t *testing.T) {
	router := newTestHandler(nil, nil, config.Server{}).Init()

	serve(t, router, http.MethodGet, "/api/diaries/d1", "", "token-u1")
	serve(t, router, http.MethodGet, "/api/diaries/d2", "", "token-u1")

	rec := serve(t, router, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Regexp(t, `http_requests_total\{method="GET",route="/api/diaries/\{id\}/?",status="200"\} 2`, body)
	assert.Contains(t, body, "http_request_duration_seconds_bucket")
}
