package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/work-diary/internal/utils"
	"github.com/go-chi/chi/v5/middleware"
)

var gzipReaders sync.Pool

// compressResponses gzips JSON and text responses for clients that accept it.
var compressResponses = middleware.Compress(5, "application/json", "text/plain")

// withGZip inflates gzip request bodies and compresses responses.
func withGZip(next http.Handler) http.Handler {
	next = compressResponses(next)

	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.Body == nil || !strings.Contains(req.Header.Get("Content-Encoding"), "gzip") {
			next.ServeHTTP(w, req)
			return
		}

		body, err := newGzipBody(req.Body)
		if err != nil {
			utils.WriteError(w, "Invalid gzip data", http.StatusBadRequest)
			return
		}

		req.Body = body
		req.Header.Del("Content-Encoding")
		next.ServeHTTP(w, req)
	})
}

// gzipBody inflates a request body with a pooled reader. Close returns the
// reader to the pool and closes the underlying body.
type gzipBody struct {
	zr  *gzip.Reader
	src io.ReadCloser
}

func newGzipBody(src io.ReadCloser) (*gzipBody, error) {
	zr, _ := gzipReaders.Get().(*gzip.Reader)
	if zr == nil {
		var err error
		if zr, err = gzip.NewReader(src); err != nil {
			return nil, err
		}
	} else if err := zr.Reset(src); err != nil {
		gzipReaders.Put(zr)
		return nil, err
	}
	return &gzipBody{zr: zr, src: src}, nil
}

func (b *gzipBody) Read(p []byte) (int, error) {
	if b.zr == nil {
		return 0, io.ErrClosedPipe
	}
	return b.zr.Read(p)
}

func (b *gzipBody) Close() error {
	if b.zr == nil {
		return nil
	}
	b.zr.Close()
	gzipReaders.Put(b.zr)
	b.zr = nil
	return b.src.Close()
}
