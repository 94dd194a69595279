package http

import (
	"net/http"
)

// getServerVersion answers GET /api/version/ with the configured version
// string as plain text. The route is public so deploy tooling can probe a
// running instance without credentials.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(version))
}
