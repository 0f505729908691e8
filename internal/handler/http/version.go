package http

import (
	"net/http"
)

// getServerVersion answers with the configured version as plain text. Build
// metadata travels in headers so that the body stays a bare version string.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService

	build := info.GetBuildInfo(r.Context())
	w.Header().Set("X-Build-Commit", build.Commit)
	w.Header().Set("X-Build-Date", build.Date)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(info.GetAppVersion(r.Context())))
}
